package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"rotawear/internal/adapters/cachefile"
	mcpadapter "rotawear/internal/adapters/mcp"
	"rotawear/internal/adapters/scanner"
	"rotawear/internal/application"
	"rotawear/internal/config"
)

func main() {
	closetFlag := flag.String("closet", "", "path to the closet (defaults to settings or ROTAWEAR_CLOSET)")
	flag.Parse()

	cachePath, err := config.CachePath()
	if err != nil {
		log.Fatalf("rotawear-mcp: %v", err)
	}
	settingsPath, err := config.SettingsPath()
	if err != nil {
		log.Fatalf("rotawear-mcp: %v", err)
	}

	var opts []config.StoreOption
	if *closetFlag != "" {
		opts = append(opts, config.WithClosetOverride(*closetFlag))
	}

	picker := application.NewPicker(
		scanner.New(),
		cachefile.New(cachePath),
		config.NewStore(settingsPath, opts...),
	)

	mcpServer := server.NewMCPServer(
		"rotawear-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, picker)
	mcpadapter.RegisterWriteTools(mcpServer, picker)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("rotawear-mcp: %v", err)
	}
}
