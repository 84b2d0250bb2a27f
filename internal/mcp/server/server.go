package server

import (
	"context"

	"hello-server/internal/config"
	"hello-server/internal/util"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer creates the mcp-go server announced as cfg.Name/cfg.Version.
// Every tool call is logged at debug level and every failed request at warn level.
func NewMCPServer(cfg *config.Config, logger *util.Logger) *server.MCPServer {
	hooks := &server.Hooks{}
	hooks.AddBeforeCallTool(func(ctx context.Context, id any, message *mcp.CallToolRequest) {
		logger.Debugf("tools/call %s (id: %v)", message.Params.Name, id)
	})
	hooks.AddOnError(func(ctx context.Context, id any, method mcp.MCPMethod, message any, err error) {
		logger.Warnf("%s failed (id: %v): %v", method, id, err)
	})

	return server.NewMCPServer(
		cfg.Name,
		cfg.Version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithHooks(hooks),
	)
}
