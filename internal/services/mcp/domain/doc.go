// Package domain defines the MCP tools that expose a custody account: their
// input and output schemas and the handlers that call the account service.
package domain
