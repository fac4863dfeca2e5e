// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Enables LLM agents to route goals through agentmode via stdio
package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/GaneshEEE/agentmode/internal/config"
	"github.com/GaneshEEE/agentmode/internal/core"
	"github.com/GaneshEEE/agentmode/internal/mcp"
	"github.com/GaneshEEE/agentmode/internal/storage"
	"github.com/GaneshEEE/agentmode/internal/tools"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs agentmode as an MCP (Model Context Protocol) server, enabling
LLM agents to route goals, preview routing, and browse run history
via stdio.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically called by an MCP client)
  agentmode mcp

  # Configure in the client's MCP config:
  # {
  #   "mcpServers": {
  #     "agentmode": {
  #       "command": "agentmode",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil && verbose {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	rules, err := loadRules(cfg)
	if err != nil {
		return err
	}

	// Without an API key preview_routing and list_history still work;
	// route_goal records per-assignment errors
	var exec tools.Executor = planExecutor{}
	if cfg.OpenAIKey != "" {
		openaiExec, err := tools.NewOpenAIExecutor(&tools.ClientConfig{
			APIKey:      cfg.OpenAIKey,
			ChatModel:   cfg.ChatModel,
			VisionModel: cfg.VisionModel,
			Timeout:     cfg.Timeout,
			MaxRetries:  cfg.MaxRetries,
			RetryDelay:  cfg.RetryDelay,
		})
		if err != nil {
			return fmt.Errorf("initializing OpenAI executor: %w", err)
		}
		exec = openaiExec
	} else {
		log.Println("Warning: OPENAI_API_KEY not set - tool execution will not work")
	}

	router := core.NewRouter(exec, rules)

	// History is optional for the MCP surface
	store, err := storage.NewStorage(cfg.DataDir)
	if err != nil {
		log.Printf("Warning: history disabled: %v", err)
		store = nil
	}

	// Create MCP server
	server := mcpserver.NewMCPServer(
		"Agent Mode Router",
		"0.1.0",
	)

	// Register MCP tools
	mcp.RegisterTools(server, router, store)

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !quiet {
		log.Println("agentmode MCP server starting on stdio...")
	}

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(server)
	}()

	// Wait for shutdown signal or server error
	select {
	case <-ctx.Done():
		if !quiet {
			log.Println("Shutdown signal received, gracefully shutting down...")
		}

		if store != nil {
			if err := store.Close(); err != nil {
				log.Printf("Warning: Error closing storage: %v", err)
			}
		}

		if !quiet {
			log.Println("Shutdown complete")
		}

	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	return nil
}
