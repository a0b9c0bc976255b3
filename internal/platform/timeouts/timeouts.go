// Package timeouts defines shared timeout constants used across custody
// processes.
package timeouts

import "time"

// GRPCDial caps the wait time when dialing the custody API.
const GRPCDial = 2 * time.Second

// GRPCRequest caps a single client request to the custody API.
const GRPCRequest = 5 * time.Second

// ReadHeader limits how long the event stream server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits graceful shutdown of servers and telemetry flushes.
const Shutdown = 5 * time.Second
