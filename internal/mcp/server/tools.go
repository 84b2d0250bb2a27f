package server

import (
	"context"
	"fmt"

	"hello-server/internal/mcp/protocol"
	"hello-server/internal/mcp/tools"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ToolManager publishes the tool registry on an MCP server
type ToolManager struct {
	registry *tools.Registry
}

// NewToolManager creates a new tool manager
func NewToolManager(registry *tools.Registry) *ToolManager {
	return &ToolManager{
		registry: registry,
	}
}

// RegisterTools registers all registry tools with the MCP server
func (tm *ToolManager) RegisterTools(s *server.MCPServer) error {
	if tm.registry.Count() == 0 {
		return fmt.Errorf("no tools to register")
	}

	for _, tool := range tm.registry.ListTools() {
		s.AddTool(toMCPTool(tool), tm.handleCallTool)
	}

	return nil
}

// handleCallTool forwards a tools/call request to the registry.
// Registry errors are returned as handler errors so the client receives a
// JSON-RPC error response rather than an isError result.
func (tm *ToolManager) handleCallTool(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := tm.registry.CallTool(ctx, protocol.CallToolRequest{
		Name:      request.Params.Name,
		Arguments: request.GetArguments(),
	})
	if err != nil {
		return nil, err
	}

	return toMCPResult(result), nil
}

func toMCPTool(tool protocol.Tool) mcp.Tool {
	mcpTool := mcp.NewTool(tool.Name,
		mcp.WithDescription(tool.Description),
	)

	properties := make(map[string]any, len(tool.InputSchema.Properties))
	for name, prop := range tool.InputSchema.Properties {
		schema := map[string]any{"type": prop.Type}
		if prop.Description != "" {
			schema["description"] = prop.Description
		}
		properties[name] = schema
	}

	mcpTool.InputSchema = mcp.ToolInputSchema{
		Type:       tool.InputSchema.Type,
		Properties: properties,
		Required:   tool.InputSchema.Required,
	}

	return mcpTool
}

func toMCPResult(result *protocol.ToolCallResult) *mcp.CallToolResult {
	content := make([]mcp.Content, 0, len(result.Content))
	for _, c := range result.Content {
		content = append(content, mcp.NewTextContent(c.Text))
	}

	return &mcp.CallToolResult{
		Content: content,
		IsError: result.IsError,
	}
}
