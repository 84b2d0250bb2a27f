package tools

import (
	"context"
	"fmt"

	"hello-server/internal/mcp/protocol"
)

// ToolHandler is a function that executes a local tool
type ToolHandler func(ctx context.Context, arguments map[string]interface{}) (*protocol.ToolCallResult, error)

// LocalTool pairs a tool descriptor with its handler
type LocalTool struct {
	Tool    protocol.Tool
	Handler ToolHandler
}

// Registry is the fixed set of tools served by this process.
// It is immutable once NewRegistry returns.
type Registry struct {
	order []string
	tools map[string]LocalTool
}

// NewRegistry creates a registry holding the given tools
func NewRegistry(tools ...LocalTool) (*Registry, error) {
	r := &Registry{
		order: make([]string, 0, len(tools)),
		tools: make(map[string]LocalTool, len(tools)),
	}

	for _, t := range tools {
		if t.Tool.Name == "" {
			return nil, fmt.Errorf("tool name is required")
		}
		if t.Handler == nil {
			return nil, fmt.Errorf("tool %s has no handler", t.Tool.Name)
		}
		if _, exists := r.tools[t.Tool.Name]; exists {
			return nil, fmt.Errorf("tool %s already registered", t.Tool.Name)
		}

		r.tools[t.Tool.Name] = LocalTool{Tool: t.Tool.Clone(), Handler: t.Handler}
		r.order = append(r.order, t.Tool.Name)
	}

	return r, nil
}

// NewDefaultRegistry creates the registry served by hello-server
func NewDefaultRegistry() *Registry {
	r, err := NewRegistry(SayHelloTool())
	if err != nil {
		panic(err)
	}
	return r
}

// ListTools returns copies of all registered tools in registration order
func (r *Registry) ListTools() []protocol.Tool {
	tools := make([]protocol.Tool, 0, len(r.order))
	for _, name := range r.order {
		tools = append(tools, r.tools[name].Tool.Clone())
	}
	return tools
}

// GetTool returns a copy of the named tool
func (r *Registry) GetTool(name string) (protocol.Tool, bool) {
	t, exists := r.tools[name]
	if !exists {
		return protocol.Tool{}, false
	}
	return t.Tool.Clone(), true
}

// CallTool dispatches a tools/call request to the matching handler
func (r *Registry) CallTool(ctx context.Context, request protocol.CallToolRequest) (*protocol.ToolCallResult, error) {
	t, exists := r.tools[request.Name]
	if !exists {
		return nil, protocol.NewToolNotFoundError(request.Name)
	}
	return t.Handler(ctx, request.Arguments)
}

// Count returns the number of registered tools
func (r *Registry) Count() int {
	return len(r.order)
}
