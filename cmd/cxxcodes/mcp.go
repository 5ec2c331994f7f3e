package main

import (
	"fmt"

	"github.com/felixgeelhaar/cxxcodes/internal/infrastructure/mcp"
	"github.com/felixgeelhaar/cxxcodes/internal/infrastructure/metrics"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	mcpTransport string
	mcpHTTPAddr  string
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server for AI assistant integration",
	Long: `cxxcodes MCP (Model Context Protocol) Server.

Exposes rule normalization through the MCP protocol so assistants can
translate cppcheck output into CXX-W codes.

Tools:
  cxx_normalize_rule   - Map rule ids to CXX-W codes
  cxx_normalize_report - Normalize a cppcheck XML report

Resources:
  cxx://codes   - The code table
  cxx://config  - Current configuration
  cxx://engines - Registered report formats`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the cxxcodes MCP server.

Examples:
  cxxcodes mcp serve                     # Start with stdio transport
  cxxcodes mcp serve --transport http    # Start HTTP server
  cxxcodes mcp serve --http-addr :9090   # HTTP on custom port`,
	RunE: runMCPServer,
}

func init() {
	mcpServeCmd.Flags().StringVarP(&mcpTransport, "transport", "t", "stdio", "Transport type: stdio, http")
	mcpServeCmd.Flags().StringVar(&mcpHTTPAddr, "http-addr", ":8080", "HTTP server address (when using http transport)")

	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServer(cmd *cobra.Command, args []string) error {
	if mcpTransport != "stdio" && mcpTransport != "http" {
		return fmt.Errorf("unsupported transport: %s", mcpTransport)
	}

	// Load configuration
	cfg, err := loadConfig(nil)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	recorder := metrics.NewRecorder()
	defer func() {
		if cfg.Metrics.Textfile == "" {
			return
		}
		if err := recorder.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			logger.Warn("failed to write metrics textfile", zap.Error(err))
		}
	}()

	server := mcp.NewServer(cfg, version,
		mcp.WithMetrics(recorder),
		mcp.WithLogger(logger),
	)

	// Start server with selected transport
	ctx := cmd.Context()
	switch mcpTransport {
	case "http":
		logger.Info("starting MCP server", zap.String("addr", mcpHTTPAddr))
		return server.ServeHTTP(ctx, mcpHTTPAddr)
	default:
		return server.ServeStdio(ctx)
	}
}
