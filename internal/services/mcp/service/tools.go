package service

import (
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/custody/internal/services/mcp/domain"
)

type toolRegistration struct {
	name     string
	register func(*mcp.Server)
}

func tool[I, O any](t *mcp.Tool, handler mcp.ToolHandlerFor[I, O]) toolRegistration {
	return toolRegistration{
		name:     t.Name,
		register: func(server *mcp.Server) { mcp.AddTool(server, t, handler) },
	}
}

func accountTools(client domain.AccountClient) []toolRegistration {
	return []toolRegistration{
		tool(domain.OwnerTool(), domain.OwnerHandler(client)),
		tool(domain.AllowanceTool(), domain.AllowanceHandler(client)),
		tool(domain.BalanceTool(), domain.BalanceHandler(client)),
		tool(domain.RecoveryTool(), domain.RecoveryHandler(client)),
		tool(domain.SetGuardianTool(), domain.SetGuardianHandler(client)),
		tool(domain.ProposeOwnerTool(), domain.ProposeOwnerHandler(client)),
		tool(domain.SetAllowanceTool(), domain.SetAllowanceHandler(client)),
		tool(domain.ExecuteTool(), domain.ExecuteHandler(client)),
		tool(domain.TransferTool(), domain.TransferHandler(client)),
		tool(domain.EventListTool(), domain.EventListHandler(client)),
	}
}

func registerTools(server *mcp.Server, tools []toolRegistration) error {
	seen := make(map[string]bool, len(tools))
	for _, t := range tools {
		if seen[t.name] {
			return fmt.Errorf("duplicate MCP tool %q", t.name)
		}
		seen[t.name] = true
		t.register(server)
	}
	return nil
}
