package main

import (
	"context"
	"flag"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"launchdex/internal/adapters/launcher"
	mcpadapter "launchdex/internal/adapters/mcp"
	"launchdex/internal/config"
)

func main() {
	configFlag := flag.String("config", os.Getenv("LAUNCHDEX_CONFIG"), "path to a config.toml file")
	flag.Parse()

	// stdout carries the protocol
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "launchdex-mcp"})

	cfg, _, err := config.Load(config.LoadOptions{ConfigFilePath: *configFlag})
	if err != nil {
		logger.Fatal("load config", "err", err)
	}
	logger.SetLevel(cfg.Level())

	history, closeHistory, err := cfg.OpenHistoryStore()
	if err != nil {
		logger.Fatal("open history", "err", err)
	}
	defer closeHistory()

	mcpServer := server.NewMCPServer(
		"launchdex-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterTools(mcpServer, mcpadapter.Deps{
		Index:    cfg.IndexStore(),
		History:  history,
		Launcher: launcher.New(),
	})

	logger.Debug("serving", "index", cfg.IndexPath, "history", cfg.HistoryPath)
	if err := server.ServeStdio(mcpServer); err != nil {
		closeHistory()
		logger.Fatal("serve", "err", err)
	}
}
