// ABOUTME: MCP tool definitions and registration for the agentmode server
// ABOUTME: Defines JSON schemas for the routing and history tools
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/GaneshEEE/agentmode/internal/core"
	"github.com/GaneshEEE/agentmode/internal/storage"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, router *core.Router, store *storage.Storage) *Handlers {
	handlers := &Handlers{
		router: router,
		store:  store,
	}

	// 1. route_goal - Route a goal across pages and execute the tools
	server.AddTool(mcp.Tool{
		Name:        "route_goal",
		Description: "Route a natural-language goal across the selected pages, dispatch the matching AI tools, and return per-page results.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"goal": map[string]interface{}{
					"type":        "string",
					"description": "The user's free-form goal",
				},
				"space": map[string]interface{}{
					"type":        "string",
					"description": "Space key the pages belong to",
				},
				"pages": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Page titles to route across, in selection order",
				},
			},
			Required: []string{"goal", "space", "pages"},
		},
	}, handlers.RouteGoal)

	// 2. preview_routing - Plan without dispatching any tool
	server.AddTool(mcp.Tool{
		Name:        "preview_routing",
		Description: "Preview how a goal would be segmented and which tool each page would receive, without executing anything.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"goal": map[string]interface{}{
					"type":        "string",
					"description": "The user's free-form goal",
				},
				"space": map[string]interface{}{
					"type":        "string",
					"description": "Space key the pages belong to",
				},
				"pages": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Page titles to route across, in selection order",
				},
			},
			Required: []string{"goal", "space", "pages"},
		},
	}, handlers.PreviewRouting)

	// 3. list_history - List recent routing runs
	server.AddTool(mcp.Tool{
		Name:        "list_history",
		Description: "List recent Agent Mode runs with their goals and outcomes.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"limit": map[string]interface{}{
					"type":        "number",
					"description": "Maximum number of runs to return (default: 10)",
					"default":     10,
				},
			},
		},
	}, handlers.ListHistory)

	return handlers
}
