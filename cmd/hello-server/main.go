package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"hello-server/internal/config"
	mcpserver "hello-server/internal/mcp/server"
	"hello-server/internal/mcp/tools"
	"hello-server/internal/util"

	"github.com/spf13/cobra"
)

var version = "1.0.0"

type options struct {
	configPath string
	logLevel   string
	noColor    bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "hello-server",
		Short: "MCP server exposing a say_hello tool over stdio",
		Long: `hello-server speaks the Model Context Protocol (JSON-RPC 2.0) on
standard input and output and offers a single tool, say_hello, which
greets the name it is given. Logs are written to standard error.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to configuration file (.yaml, .yml or .json)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable coloured log output")

	cmd.AddCommand(newConfigCommand())

	return cmd
}

func runServer(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	// Command line flags override the config file
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level, err := util.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), level, opts.noColor)

	mcpServer := mcpserver.NewMCPServer(cfg, logger)

	toolManager := mcpserver.NewToolManager(tools.NewDefaultRegistry())
	if err := toolManager.RegisterTools(mcpServer); err != nil {
		return fmt.Errorf("failed to register tools: %w", err)
	}

	transportManager := mcpserver.NewTransportManager(cfg, mcpServer, logger)
	transportManager.SetStreams(cmd.InOrStdin(), cmd.OutOrStdout())

	if err := transportManager.StartTransport(cmd.Context()); err != nil {
		return err
	}

	logger.Debugf("MCP server shutdown complete")
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// newLogger colours level tags only when w is a terminal
func newLogger(w io.Writer, level util.Level, noColor bool) *util.Logger {
	useColor := false
	if f, ok := w.(*os.File); ok && !noColor {
		useColor = util.IsTerminal(f)
	}
	return util.NewLogger(w, level, useColor)
}
