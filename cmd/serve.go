package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	internalServer "github.com/prompt-doctor/mcp-prompt-doctor/internal/server"
	"github.com/prompt-doctor/mcp-prompt-doctor/pkg/diagnostic"
	"github.com/prompt-doctor/mcp-prompt-doctor/pkg/framework"
	"github.com/prompt-doctor/mcp-prompt-doctor/pkg/prompts"
	"github.com/prompt-doctor/mcp-prompt-doctor/pkg/tools"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

const (
	serverName = "mcp-prompt-doctor"
)

// newServeCmd creates the Cobra command for starting the MCP server.
func newServeCmd() *cobra.Command {
	var (
		configPath string
		docsRoot   string

		// Transport options
		transport       string
		httpAddr        string
		sseEndpoint     string
		messageEndpoint string
		httpEndpoint    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP prompt-doctor server",
		Long: `Start the MCP prompt-doctor server to expose the prompt diagnostic engine
and the framework document library via the Model Context Protocol.

Supports multiple transport types:
  - stdio: Standard input/output (default)
  - sse: Server-Sent Events over HTTP
  - streamable-http: Streamable HTTP transport`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configPath, docsRoot, transport, httpAddr, sseEndpoint, messageEndpoint, httpEndpoint)
		},
	}

	// Add flags for configuring the server
	cmd.Flags().StringVar(&configPath, "config", "", "Scoring table override file (YAML, defaults to built-in table)")
	cmd.Flags().StringVar(&docsRoot, "docs-root", "docs", "Root directory of the framework documents")

	// Transport flags
	cmd.Flags().StringVar(&transport, "transport", "stdio", "Transport type: stdio, sse, or streamable-http")
	cmd.Flags().StringVar(&httpAddr, "http-addr", ":8080", "HTTP server address (for sse and streamable-http transports)")
	cmd.Flags().StringVar(&sseEndpoint, "sse-endpoint", "/sse", "SSE endpoint path (for sse transport)")
	cmd.Flags().StringVar(&messageEndpoint, "message-endpoint", "/message", "Message endpoint path (for sse transport)")
	cmd.Flags().StringVar(&httpEndpoint, "http-endpoint", "/mcp", "HTTP endpoint path (for streamable-http transport)")

	return cmd
}

// runServe contains the main server logic with support for multiple transports
func runServe(configPath, docsRoot, transport, httpAddr, sseEndpoint, messageEndpoint, httpEndpoint string) error {
	// Initialize logger
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Printf("Starting %s v%s", serverName, rootCmd.Version)

	// Setup graceful shutdown - listen for both SIGINT and SIGTERM
	shutdownCtx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Initialize the scoring table
	if configPath == "" {
		configPath = os.Getenv("PROMPT_DOCTOR_CONFIG") // Allow overriding the table via env var
	}
	cfg, err := loadScoringConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load scoring config: %v", err)
	}

	// Initialize the engine with a memoizing cache and the document library
	engine := diagnostic.NewCached(diagnostic.New(cfg))
	library := framework.NewLibrary(docsRoot)
	if docs, err := library.List(); err != nil {
		log.Printf("Warning: failed to list framework documents under %s: %v", docsRoot, err)
	} else {
		log.Printf("Framework library: %d documents under %s", len(docs), docsRoot)
	}

	// Create server context
	serverCtx := internalServer.NewContext(engine, library)

	// Create MCP server
	mcpSrv := mcpserver.NewMCPServer(
		serverName,
		rootCmd.Version, // Use version from root command
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithPromptCapabilities(true),
		mcpserver.WithLogging(),
	)

	// Initialize tools
	if err := initializeTools(mcpSrv, serverCtx); err != nil {
		return fmt.Errorf("failed to initialize tools: %v", err)
	}

	// Initialize prompts
	if err := prompts.RegisterPrompts(mcpSrv, serverCtx); err != nil {
		return fmt.Errorf("failed to initialize prompts: %v", err)
	}

	fmt.Printf("Starting MCP prompt-doctor server with %s transport...\n", transport)

	// Start the appropriate server based on transport type
	switch transport {
	case "stdio":
		return runStdioServer(mcpSrv)
	case "sse":
		return runSSEServer(mcpSrv, httpAddr, sseEndpoint, messageEndpoint, shutdownCtx)
	case "streamable-http":
		return runStreamableHTTPServer(mcpSrv, httpAddr, httpEndpoint, shutdownCtx)
	default:
		return fmt.Errorf("unsupported transport type: %s (supported: stdio, sse, streamable-http)", transport)
	}
}

// loadScoringConfig returns the default scoring table, or the table with
// YAML overrides applied when a path is given.
func loadScoringConfig(path string) (*diagnostic.Config, error) {
	if path == "" {
		return diagnostic.DefaultConfig(), nil
	}
	return diagnostic.LoadConfig(path)
}

// runStdioServer runs the server with STDIO transport
func runStdioServer(mcpSrv *mcpserver.MCPServer) error {
	// Start the server in a goroutine so we can handle shutdown signals
	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := mcpserver.ServeStdio(mcpSrv); err != nil {
			serverDone <- err
		}
	}()

	// Wait for server completion
	if err := <-serverDone; err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}

	fmt.Println("Server gracefully stopped")
	return nil
}

// runSSEServer runs the server with SSE transport
func runSSEServer(mcpSrv *mcpserver.MCPServer, addr, sseEndpoint, messageEndpoint string, ctx context.Context) error {
	// Create SSE server with custom endpoints
	sseServer := mcpserver.NewSSEServer(mcpSrv,
		mcpserver.WithSSEEndpoint(sseEndpoint),
		mcpserver.WithMessageEndpoint(messageEndpoint),
	)

	fmt.Printf("SSE server starting on %s\n", addr)
	fmt.Printf("  SSE endpoint: %s\n", sseEndpoint)
	fmt.Printf("  Message endpoint: %s\n", messageEndpoint)

	// Start server in goroutine
	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := sseServer.Start(addr); err != nil {
			serverDone <- err
		}
	}()

	// Wait for either shutdown signal or server completion
	select {
	case <-ctx.Done():
		fmt.Println("Shutdown signal received, stopping SSE server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := sseServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("error shutting down SSE server: %w", err)
		}
	case err := <-serverDone:
		if err != nil {
			return fmt.Errorf("SSE server stopped with error: %w", err)
		}
		fmt.Println("SSE server stopped normally")
	}

	fmt.Println("SSE server gracefully stopped")
	return nil
}

// runStreamableHTTPServer runs the server with Streamable HTTP transport
func runStreamableHTTPServer(mcpSrv *mcpserver.MCPServer, addr, endpoint string, ctx context.Context) error {
	// Create Streamable HTTP server with custom endpoint
	httpServer := mcpserver.NewStreamableHTTPServer(mcpSrv,
		mcpserver.WithEndpointPath(endpoint),
	)

	fmt.Printf("Streamable HTTP server starting on %s\n", addr)
	fmt.Printf("  HTTP endpoint: %s\n", endpoint)

	// Start server in goroutine
	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := httpServer.Start(addr); err != nil {
			serverDone <- err
		}
	}()

	// Wait for either shutdown signal or server completion
	select {
	case <-ctx.Done():
		fmt.Println("Shutdown signal received, stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("error shutting down HTTP server: %w", err)
		}
	case err := <-serverDone:
		if err != nil {
			return fmt.Errorf("HTTP server stopped with error: %w", err)
		}
		fmt.Println("HTTP server stopped normally")
	}

	fmt.Println("HTTP server gracefully stopped")
	return nil
}

// initializeTools registers all MCP tools with the server
func initializeTools(s *mcpserver.MCPServer, ctx *internalServer.Context) error {
	// Register diagnostic engine tools
	if err := tools.RegisterPromptTools(s, ctx); err != nil {
		return fmt.Errorf("failed to register prompt tools: %w", err)
	}

	// Register framework document tools
	if err := tools.RegisterFrameworkTools(s, ctx); err != nil {
		return fmt.Errorf("failed to register framework tools: %w", err)
	}

	// Health check tool
	healthTool := mcp.NewTool(
		"health",
		mcp.WithDescription("Check MCP server and diagnostic engine health"),
	)

	s.AddTool(healthTool, func(toolCtx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		// Smoke-test the engine with a known-degenerate input
		smoke := ctx.Engine.Diagnose("")
		engineStatus := "healthy"
		if smoke.Health != diagnostic.HealthCritical || !smoke.HasKind(diagnostic.KindEmptyPrompt) {
			engineStatus = "degraded: empty-prompt check failed"
		}

		libraryStatus := "available"
		docs, err := ctx.Library.List()
		if err != nil {
			libraryStatus = fmt.Sprintf("not available: %v", err)
		}

		healthStatus := fmt.Sprintf(`MCP Server Health Check:
- Server: %s v%s (healthy)
- Diagnostic engine: %s
  - Cached results: %d
- Framework library: %s
  - Documents: %d (root: %s)`,
			serverName, rootCmd.Version,
			engineStatus,
			ctx.Engine.Len(),
			libraryStatus,
			len(docs),
			ctx.Library.Root(),
		)

		return mcp.NewToolResultText(healthStatus), nil
	})

	return nil
}
