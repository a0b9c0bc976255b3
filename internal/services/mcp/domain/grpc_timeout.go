package domain

import "time"

// grpcCallTimeout caps the time for a single gRPC call from an MCP tool handler.
const grpcCallTimeout = 5 * time.Second

// grpcLongCallTimeout caps calls that page through the event journal.
const grpcLongCallTimeout = 10 * time.Second
