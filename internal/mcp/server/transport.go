package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"hello-server/internal/config"
	"hello-server/internal/util"

	"github.com/mark3labs/mcp-go/server"
)

// TransportManager runs the configured transport for MCP communication
type TransportManager struct {
	config *config.Config
	server *server.MCPServer
	logger *util.Logger

	stdin  io.Reader
	stdout io.Writer
}

// NewTransportManager creates a new transport manager reading os.Stdin and
// writing os.Stdout
func NewTransportManager(cfg *config.Config, mcpServer *server.MCPServer, logger *util.Logger) *TransportManager {
	return &TransportManager{
		config: cfg,
		server: mcpServer,
		logger: logger,
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}
}

// SetStreams replaces the streams used by the stdio transport
func (tm *TransportManager) SetStreams(in io.Reader, out io.Writer) {
	tm.stdin = in
	tm.stdout = out
}

// StartTransport serves the configured transport until the input stream is
// closed or ctx is cancelled. Both count as a normal shutdown.
func (tm *TransportManager) StartTransport(ctx context.Context) error {
	switch tm.config.Transport.Type {
	case config.TransportStdio:
		return tm.startStdioTransport(ctx)
	default:
		return fmt.Errorf("unsupported transport type: %s", tm.config.Transport.Type)
	}
}

// startStdioTransport starts stdio transport (standard input/output)
func (tm *TransportManager) startStdioTransport(ctx context.Context) error {
	stdioServer := server.NewStdioServer(tm.server)
	stdioServer.SetErrorLogger(tm.logger.Std())

	tm.logger.Infof("%s %s running on stdio", tm.config.Name, tm.config.Version)

	err := stdioServer.Listen(ctx, tm.stdin, tm.stdout)
	if err == nil || errors.Is(err, context.Canceled) {
		tm.logger.Debugf("stdio transport closed")
		return nil
	}

	return fmt.Errorf("stdio transport failed: %w", err)
}
