package domain

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/grpc"

	custodyv1 "github.com/louisbranch/custody/api/gen/go/custody/v1"
	"github.com/louisbranch/custody/internal/services/custody/domain/account"
)

// ReceiptResult lists the events a mutation committed.
type ReceiptResult struct {
	Events []EventSummary `json:"events" jsonschema:"events committed by the call"`
}

func receiptResult(op string, resp *custodyv1.ReceiptResponse, meta ToolCallMetadata, err error) (*mcp.CallToolResult, ReceiptResult, error) {
	if err != nil {
		return nil, ReceiptResult{}, fmt.Errorf("%s failed: %w", op, err)
	}
	events, err := summarizeEvents(resp.Events)
	if err != nil {
		return nil, ReceiptResult{}, err
	}
	return CallToolResultWithMetadata(meta), ReceiptResult{Events: events}, nil
}

// SetGuardianInput is the input of the set guardian tool.
type SetGuardianInput struct {
	Guardian string `json:"guardian" jsonschema:"guardian address"`
	Enabled  bool   `json:"enabled" jsonschema:"true to add the guardian, false to remove it"`
}

// SetGuardianTool defines the MCP tool schema for managing guardians.
func SetGuardianTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "custody_set_guardian",
		Description: "Enables or disables a guardian. Only the owner may call it; removing a guardian withdraws their vote.",
	}
}

// SetGuardianHandler enables or disables a guardian.
func SetGuardianHandler(client AccountClient) mcp.ToolHandlerFor[SetGuardianInput, ReceiptResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SetGuardianInput) (*mcp.CallToolResult, ReceiptResult, error) {
		resp, meta, err := invoke(ctx, grpcCallTimeout, func(ctx context.Context, opts ...grpc.CallOption) (*custodyv1.ReceiptResponse, error) {
			return client.SetGuardian(ctx, &custodyv1.SetGuardianRequest{Guardian: input.Guardian, Enabled: input.Enabled}, opts...)
		})
		return receiptResult("set guardian", resp, meta, err)
	}
}

// ProposeOwnerInput is the input of the propose owner tool.
type ProposeOwnerInput struct {
	Candidate string `json:"candidate" jsonschema:"proposed new owner address"`
}

// ProposeOwnerTool defines the MCP tool schema for recovery votes.
func ProposeOwnerTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "custody_propose_owner",
		Description: "Casts a guardian vote for a new owner. A different candidate starts a new proposal; reaching the threshold changes the owner.",
	}
}

// ProposeOwnerHandler casts a recovery vote.
func ProposeOwnerHandler(client AccountClient) mcp.ToolHandlerFor[ProposeOwnerInput, ReceiptResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ProposeOwnerInput) (*mcp.CallToolResult, ReceiptResult, error) {
		resp, meta, err := invoke(ctx, grpcCallTimeout, func(ctx context.Context, opts ...grpc.CallOption) (*custodyv1.ReceiptResponse, error) {
			return client.ProposeNewOwner(ctx, &custodyv1.ProposeNewOwnerRequest{Candidate: input.Candidate}, opts...)
		})
		return receiptResult("propose owner", resp, meta, err)
	}
}

// SetAllowanceInput is the input of the set allowance tool.
type SetAllowanceInput struct {
	Delegate string `json:"delegate" jsonschema:"delegate address"`
	Amount   string `json:"amount" jsonschema:"new allowance in base units, or ether with an eth suffix"`
}

// SetAllowanceTool defines the MCP tool schema for delegate budgets.
func SetAllowanceTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "custody_set_allowance",
		Description: "Replaces a delegate's spending allowance. Only the owner may call it; zero revokes the delegate.",
	}
}

// SetAllowanceHandler replaces a delegate allowance.
func SetAllowanceHandler(client AccountClient) mcp.ToolHandlerFor[SetAllowanceInput, ReceiptResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SetAllowanceInput) (*mcp.CallToolResult, ReceiptResult, error) {
		resp, meta, err := invoke(ctx, grpcCallTimeout, func(ctx context.Context, opts ...grpc.CallOption) (*custodyv1.ReceiptResponse, error) {
			return client.SetAllowance(ctx, &custodyv1.SetAllowanceRequest{Delegate: input.Delegate, Amount: input.Amount}, opts...)
		})
		return receiptResult("set allowance", resp, meta, err)
	}
}

// ExecuteInput is the input of the execute tool.
type ExecuteInput struct {
	Target   string `json:"target" jsonschema:"address to call"`
	Amount   string `json:"amount" jsonschema:"value to send in base units, or ether with an eth suffix"`
	Data     string `json:"data,omitempty" jsonschema:"hex-encoded call data; owner only"`
	DataText string `json:"data_text,omitempty" jsonschema:"call data as text; ignored when data is set"`
}

// ExecuteTool defines the MCP tool schema for account calls.
func ExecuteTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "custody_execute",
		Description: "Sends value and optional data from the account. The owner may call anything; delegates may send plain value within their allowance.",
	}
}

// ExecuteHandler sends a call from the account.
func ExecuteHandler(client AccountClient) mcp.ToolHandlerFor[ExecuteInput, ReceiptResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ExecuteInput) (*mcp.CallToolResult, ReceiptResult, error) {
		data, err := executeData(input)
		if err != nil {
			return nil, ReceiptResult{}, err
		}
		resp, meta, err := invoke(ctx, grpcCallTimeout, func(ctx context.Context, opts ...grpc.CallOption) (*custodyv1.ReceiptResponse, error) {
			return client.Execute(ctx, &custodyv1.ExecuteRequest{Target: input.Target, Amount: input.Amount, Data: data}, opts...)
		})
		return receiptResult("execute", resp, meta, err)
	}
}

// TransferInput is the input of the transfer tool.
type TransferInput struct {
	To     string `json:"to" jsonschema:"recipient address"`
	Amount string `json:"amount" jsonschema:"value in base units, or ether with an eth suffix"`
}

// TransferTool defines the MCP tool schema for caller transfers.
func TransferTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "custody_transfer",
		Description: "Moves value from the caller's own balance, for example to fund the custody account.",
	}
}

// TransferHandler moves the caller's own funds.
func TransferHandler(client AccountClient) mcp.ToolHandlerFor[TransferInput, ReceiptResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TransferInput) (*mcp.CallToolResult, ReceiptResult, error) {
		resp, meta, err := invoke(ctx, grpcCallTimeout, func(ctx context.Context, opts ...grpc.CallOption) (*custodyv1.ReceiptResponse, error) {
			return client.Transfer(ctx, &custodyv1.TransferRequest{To: input.To, Amount: input.Amount}, opts...)
		})
		return receiptResult("transfer", resp, meta, err)
	}
}

func executeData(input ExecuteInput) ([]byte, error) {
	if input.Data == "" {
		if input.DataText == "" {
			return nil, nil
		}
		return []byte(input.DataText), nil
	}
	var data account.CallData
	if err := data.UnmarshalText([]byte(input.Data)); err != nil {
		return nil, fmt.Errorf("execute failed: data must be hex: %w", err)
	}
	return data, nil
}
