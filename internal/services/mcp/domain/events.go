package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/grpc"

	custodyv1 "github.com/louisbranch/custody/api/gen/go/custody/v1"
)

// EventSummary is one committed account event.
type EventSummary struct {
	Seq       uint64         `json:"seq" jsonschema:"journal sequence number"`
	Type      string         `json:"type" jsonschema:"event type"`
	Timestamp string         `json:"ts" jsonschema:"RFC3339 commit time"`
	ActorID   string         `json:"actor_id,omitempty" jsonschema:"address that caused the event"`
	RequestID string         `json:"request_id,omitempty" jsonschema:"request that committed the event"`
	Hash      string         `json:"hash,omitempty" jsonschema:"content hash of the event"`
	Payload   map[string]any `json:"payload,omitempty" jsonschema:"event payload"`
}

func summarizeEvents(events []*custodyv1.Event) ([]EventSummary, error) {
	out := make([]EventSummary, 0, len(events))
	for _, evt := range events {
		summary := EventSummary{
			Seq:       evt.GetSeq(),
			Type:      evt.GetType(),
			ActorID:   evt.GetActorId(),
			RequestID: evt.GetRequestId(),
			Hash:      evt.GetHash(),
		}
		if evt.GetTs() != nil {
			summary.Timestamp = evt.GetTs().AsTime().UTC().Format(time.RFC3339Nano)
		}
		if payload := evt.GetPayloadJson(); payload != "" {
			if err := json.Unmarshal([]byte(payload), &summary.Payload); err != nil {
				return nil, fmt.Errorf("decode payload of event %d: %w", evt.GetSeq(), err)
			}
		}
		out = append(out, summary)
	}
	return out, nil
}

// EventListInput is the input of the event listing tool.
type EventListInput struct {
	Filter    string `json:"filter,omitempty" jsonschema:"AIP-160 filter, e.g. type = \"account.executed\" AND seq > 10"`
	PageSize  int    `json:"page_size,omitempty" jsonschema:"maximum events to return (default 50, max 500)"`
	PageToken string `json:"page_token,omitempty" jsonschema:"token from a previous page"`
	OrderBy   string `json:"order_by,omitempty" jsonschema:"seq or seq desc"`
}

// EventListResult is one page of account events.
type EventListResult struct {
	Events        []EventSummary `json:"events" jsonschema:"events in the page"`
	NextPageToken string         `json:"next_page_token,omitempty" jsonschema:"token for the next page, empty on the last page"`
}

// EventListTool defines the MCP tool schema for listing events.
func EventListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "custody_events",
		Description: "Lists committed account events from the journal, with optional filtering and paging.",
	}
}

// EventListHandler pages through the event journal.
func EventListHandler(client AccountClient) mcp.ToolHandlerFor[EventListInput, EventListResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input EventListInput) (*mcp.CallToolResult, EventListResult, error) {
		resp, meta, err := invoke(ctx, grpcLongCallTimeout, func(ctx context.Context, opts ...grpc.CallOption) (*custodyv1.ListEventsResponse, error) {
			return client.ListEvents(ctx, &custodyv1.ListEventsRequest{
				Filter:    input.Filter,
				PageSize:  int32(input.PageSize),
				PageToken: input.PageToken,
				OrderBy:   input.OrderBy,
			}, opts...)
		})
		if err != nil {
			return nil, EventListResult{}, fmt.Errorf("list events failed: %w", err)
		}
		events, err := summarizeEvents(resp.Events)
		if err != nil {
			return nil, EventListResult{}, err
		}
		return CallToolResultWithMetadata(meta), EventListResult{Events: events, NextPageToken: resp.NextPageToken}, nil
	}
}
