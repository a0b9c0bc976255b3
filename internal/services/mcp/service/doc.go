// Package service wires MCP transports to the custody tools.
//
// It knows how to run MCP over stdio or streamable HTTP and delegates every
// tool call to the account service over gRPC.
package service
