// ABOUTME: MCP tool handler implementations for the agentmode server
// ABOUTME: Routing, preview, and history handlers with soft error results
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/GaneshEEE/agentmode/internal/core"
	"github.com/GaneshEEE/agentmode/internal/models"
	"github.com/GaneshEEE/agentmode/internal/storage"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	router *core.Router
	store  *storage.Storage // nil disables history
}

// routeArgs extracts the shared goal/space/pages arguments
func routeArgs(request mcp.CallToolRequest) (goal, space string, pages []models.Page, errResult *mcp.CallToolResult) {
	goal, err := request.RequireString("goal")
	if err != nil {
		return "", "", nil, mcp.NewToolResultError("goal argument is required and must be a string")
	}
	space, err = request.RequireString("space")
	if err != nil {
		return "", "", nil, mcp.NewToolResultError("space argument is required and must be a string")
	}

	// Type assert Arguments to map for array access
	args, ok := request.Params.Arguments.(map[string]any)
	if !ok {
		return "", "", nil, mcp.NewToolResultError("pages argument is required and must be an array of strings")
	}
	raw, ok := args["pages"].([]interface{})
	if !ok {
		return "", "", nil, mcp.NewToolResultError("pages argument is required and must be an array of strings")
	}
	for _, item := range raw {
		title, ok := item.(string)
		if !ok {
			return "", "", nil, mcp.NewToolResultError("pages argument must contain only strings")
		}
		// Content type left blank so the oracle resolves it
		pages = append(pages, models.Page{Title: title})
	}
	return goal, space, pages, nil
}

// RouteGoal handles the route_goal tool
func (h *Handlers) RouteGoal(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	goal, space, pages, errResult := routeArgs(request)
	if errResult != nil {
		return errResult, nil
	}

	result, err := h.router.Route(ctx, goal, space, pages)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("routing failed: %v", err)), nil
	}

	// Persist the run when history is enabled
	var runID string
	if h.store != nil {
		entry, err := models.NewHistoryEntry(goal, space, resultPages(result), resultTabs(result))
		if err == nil {
			entry.Reasoning = result.Reasoning
			entry.Succeeded = result.Succeeded
			entry.Failed = result.Failed
			if err := h.store.SaveEntry(entry); err == nil {
				runID = entry.ID
			}
		}
	}

	response := map[string]interface{}{
		"result": result,
	}
	if runID != "" {
		response["run_id"] = runID
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}

// PreviewRouting handles the preview_routing tool
func (h *Handlers) PreviewRouting(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	goal, space, pages, errResult := routeArgs(request)
	if errResult != nil {
		return errResult, nil
	}

	plan, err := h.router.Plan(ctx, goal, space, pages)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("planning failed: %v", err)), nil
	}

	assignments := make([]map[string]interface{}, 0, len(plan.Assignments))
	for _, a := range plan.Assignments {
		assignments = append(assignments, map[string]interface{}{
			"page":         a.Page.Title,
			"content_type": string(a.Page.ContentType),
			"instruction":  a.Instruction,
			"tool":         string(a.Tool),
			"tier":         string(a.Tier),
		})
	}

	response := map[string]interface{}{
		"instructions": plan.Instructions,
		"assignments":  assignments,
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}

// ListHistory handles the list_history tool
func (h *Handlers) ListHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if h.store == nil {
		return mcp.NewToolResultError("history storage is not configured"), nil
	}

	limit := request.GetInt("limit", 10)

	entries, err := h.store.ListEntries(limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list history: %v", err)), nil
	}

	runs := make([]map[string]interface{}, 0, len(entries))
	for _, entry := range entries {
		runs = append(runs, map[string]interface{}{
			"run_id":     entry.ID,
			"goal":       entry.Goal,
			"space":      entry.Space,
			"pages":      len(entry.Pages),
			"succeeded":  entry.Succeeded,
			"failed":     entry.Failed,
			"created_at": entry.CreatedAt.Format(time.RFC3339),
		})
	}

	response := map[string]interface{}{
		"runs": runs,
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}

// resultPages rebuilds the resolved page list from a route result
func resultPages(result *models.RouteResult) []models.Page {
	pages := make([]models.Page, 0, len(result.Assignments))
	for _, ar := range result.Assignments {
		pages = append(pages, ar.Assignment.Page)
	}
	return pages
}

// resultTabs shapes a route result into history tabs; failed assignments
// keep their error text so the history shows what went wrong
func resultTabs(result *models.RouteResult) []models.ResultTab {
	tabs := make([]models.ResultTab, 0, len(result.Assignments)+2)
	for _, ar := range result.Assignments {
		content := ar.Output
		if ar.Failed() {
			content = "Error: " + ar.Err
		}
		tabs = append(tabs, models.ResultTab{
			PageTitle: ar.Assignment.Page.Title,
			Tool:      ar.Assignment.Tool,
			Content:   content,
		})
	}
	if result.Impact != "" {
		tabs = append(tabs, models.ResultTab{
			PageTitle: "Both pages",
			Tool:      models.ToolImpactAnalyzer,
			Content:   result.Impact,
		})
	}
	if result.TestStrategy != "" {
		tabs = append(tabs, models.ResultTab{
			PageTitle: "Both pages",
			Tool:      models.ToolTestSupport,
			Content:   result.TestStrategy,
		})
	}
	return tabs
}
