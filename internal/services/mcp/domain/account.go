package domain

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/grpc"

	custodyv1 "github.com/louisbranch/custody/api/gen/go/custody/v1"
)

// OwnerInput is the input of the owner tool.
type OwnerInput struct{}

// OwnerResult reports the account and its current owner.
type OwnerResult struct {
	Account string `json:"account" jsonschema:"account address"`
	Owner   string `json:"owner" jsonschema:"current owner address"`
}

// OwnerTool defines the MCP tool schema for reading the owner.
func OwnerTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "custody_owner",
		Description: "Returns the custody account address and its current owner.",
	}
}

// OwnerHandler reads the current owner.
func OwnerHandler(client AccountClient) mcp.ToolHandlerFor[OwnerInput, OwnerResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ OwnerInput) (*mcp.CallToolResult, OwnerResult, error) {
		resp, meta, err := invoke(ctx, grpcCallTimeout, func(ctx context.Context, opts ...grpc.CallOption) (*custodyv1.GetOwnerResponse, error) {
			return client.GetOwner(ctx, &custodyv1.GetOwnerRequest{}, opts...)
		})
		if err != nil {
			return nil, OwnerResult{}, fmt.Errorf("get owner failed: %w", err)
		}
		return CallToolResultWithMetadata(meta), OwnerResult{Account: resp.Account, Owner: resp.Owner}, nil
	}
}

// AllowanceInput is the input of the allowance tool.
type AllowanceInput struct {
	Delegate string `json:"delegate" jsonschema:"delegate address"`
}

// AllowanceResult reports a delegate's remaining budget in base units.
type AllowanceResult struct {
	Delegate  string `json:"delegate" jsonschema:"delegate address"`
	Allowance string `json:"allowance" jsonschema:"remaining allowance in base units"`
}

// AllowanceTool defines the MCP tool schema for reading an allowance.
func AllowanceTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "custody_allowance",
		Description: "Returns how much a delegate may still spend from the account.",
	}
}

// AllowanceHandler reads a delegate allowance.
func AllowanceHandler(client AccountClient) mcp.ToolHandlerFor[AllowanceInput, AllowanceResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AllowanceInput) (*mcp.CallToolResult, AllowanceResult, error) {
		resp, meta, err := invoke(ctx, grpcCallTimeout, func(ctx context.Context, opts ...grpc.CallOption) (*custodyv1.GetAllowanceResponse, error) {
			return client.GetAllowance(ctx, &custodyv1.GetAllowanceRequest{Delegate: input.Delegate}, opts...)
		})
		if err != nil {
			return nil, AllowanceResult{}, fmt.Errorf("get allowance failed: %w", err)
		}
		return CallToolResultWithMetadata(meta), AllowanceResult{Delegate: resp.Delegate, Allowance: resp.Allowance}, nil
	}
}

// BalanceInput is the input of the balance tool.
type BalanceInput struct {
	Address string `json:"address,omitempty" jsonschema:"address to read; defaults to the custody account"`
}

// BalanceResult reports a ledger balance in base units.
type BalanceResult struct {
	Address string `json:"address" jsonschema:"address that was read"`
	Balance string `json:"balance" jsonschema:"balance in base units"`
}

// BalanceTool defines the MCP tool schema for reading a balance.
func BalanceTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "custody_balance",
		Description: "Returns the ledger balance of an address, or of the custody account when no address is given.",
	}
}

// BalanceHandler reads a ledger balance.
func BalanceHandler(client AccountClient) mcp.ToolHandlerFor[BalanceInput, BalanceResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input BalanceInput) (*mcp.CallToolResult, BalanceResult, error) {
		resp, meta, err := invoke(ctx, grpcCallTimeout, func(ctx context.Context, opts ...grpc.CallOption) (*custodyv1.GetBalanceResponse, error) {
			return client.GetBalance(ctx, &custodyv1.GetBalanceRequest{Address: input.Address}, opts...)
		})
		if err != nil {
			return nil, BalanceResult{}, fmt.Errorf("get balance failed: %w", err)
		}
		return CallToolResultWithMetadata(meta), BalanceResult{Address: resp.Address, Balance: resp.Balance}, nil
	}
}

// RecoveryInput is the input of the recovery tool.
type RecoveryInput struct{}

// RecoveryResult reports the guardian set and the recovery proposal.
type RecoveryResult struct {
	Active         bool     `json:"active" jsonschema:"whether a recovery proposal is open"`
	Candidate      string   `json:"candidate,omitempty" jsonschema:"proposed owner, when a proposal is open"`
	ProposalID     uint64   `json:"proposal_id" jsonschema:"identifier of the current proposal"`
	VoteCount      int      `json:"vote_count" jsonschema:"votes cast for the current proposal"`
	Voters         []string `json:"voters,omitempty" jsonschema:"guardians who voted for the current proposal"`
	Threshold      int      `json:"threshold" jsonschema:"votes required to change the owner"`
	LastProposalID uint64   `json:"last_proposal_id" jsonschema:"highest proposal identifier issued"`
	Guardians      []string `json:"guardians,omitempty" jsonschema:"enabled guardian addresses"`
}

// RecoveryTool defines the MCP tool schema for reading recovery status.
func RecoveryTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "custody_recovery",
		Description: "Returns the guardians, the recovery threshold and the open owner proposal, if any.",
	}
}

// RecoveryHandler reads recovery status.
func RecoveryHandler(client AccountClient) mcp.ToolHandlerFor[RecoveryInput, RecoveryResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ RecoveryInput) (*mcp.CallToolResult, RecoveryResult, error) {
		resp, meta, err := invoke(ctx, grpcCallTimeout, func(ctx context.Context, opts ...grpc.CallOption) (*custodyv1.GetRecoveryResponse, error) {
			return client.GetRecovery(ctx, &custodyv1.GetRecoveryRequest{}, opts...)
		})
		if err != nil {
			return nil, RecoveryResult{}, fmt.Errorf("get recovery failed: %w", err)
		}
		return CallToolResultWithMetadata(meta), RecoveryResult{
			Active:         resp.Active,
			Candidate:      resp.Candidate,
			ProposalID:     resp.GetProposalId(),
			VoteCount:      int(resp.GetVoteCount()),
			Voters:         resp.Voters,
			Threshold:      int(resp.GetThreshold()),
			LastProposalID: resp.GetLastProposalId(),
			Guardians:      resp.Guardians,
		}, nil
	}
}
