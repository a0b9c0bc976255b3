package domain

import (
	"context"
	"errors"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/louisbranch/custody/internal/platform/id"
	grpcmeta "github.com/louisbranch/custody/internal/services/custody/api/grpc/metadata"
)

// ToolCallMetadata carries correlation identifiers for MCP tool calls.
type ToolCallMetadata struct {
	RequestID string
}

// NewRequestID generates a request identifier for a gRPC call.
func NewRequestID() (string, error) {
	return id.NewID()
}

// NewOutgoingContext attaches request metadata to a context.
func NewOutgoingContext(ctx context.Context) (context.Context, ToolCallMetadata, error) {
	requestID, err := NewRequestID()
	if err != nil {
		return nil, ToolCallMetadata{}, err
	}
	callCtx := metadata.AppendToOutgoingContext(ctx, grpcmeta.RequestIDHeader, requestID)
	return callCtx, ToolCallMetadata{RequestID: requestID}, nil
}

// MergeResponseMetadata overlays response headers on top of sent metadata.
func MergeResponseMetadata(sent ToolCallMetadata, header metadata.MD) ToolCallMetadata {
	requestID := grpcmeta.FirstMetadataValue(header, grpcmeta.RequestIDHeader)
	if requestID == "" {
		requestID = sent.RequestID
	}
	return ToolCallMetadata{RequestID: requestID}
}

// CallToolResultWithMetadata builds a tool result with correlation metadata.
func CallToolResultWithMetadata(meta ToolCallMetadata) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Meta: map[string]any{
			grpcmeta.RequestIDHeader: meta.RequestID,
		},
	}
}

// invoke runs one account service call with a timeout and request id, and
// returns the response with the correlation metadata the server echoed.
func invoke[Resp any](ctx context.Context, timeout time.Duration, call func(context.Context, ...grpc.CallOption) (*Resp, error)) (*Resp, ToolCallMetadata, error) {
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	callCtx, callMeta, err := NewOutgoingContext(runCtx)
	if err != nil {
		return nil, ToolCallMetadata{}, err
	}
	var header metadata.MD
	resp, err := call(callCtx, grpc.Header(&header))
	if err != nil {
		return nil, callMeta, err
	}
	if resp == nil {
		return nil, callMeta, errors.New("response is missing")
	}
	return resp, MergeResponseMetadata(callMeta, header), nil
}
