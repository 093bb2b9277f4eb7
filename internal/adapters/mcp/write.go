package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"rotawear/internal/application"
	"rotawear/internal/application/commands"
)

// RegisterWriteTools adds all mutating picker tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, picker *application.Picker) {
	s.AddTool(pickTool(), pickHandler(picker))
	s.AddTool(wearTool(), wearHandler(picker))
	s.AddTool(resetTool(), resetHandler(picker))
}

// --- pick ---

func pickTool() mcp.Tool {
	return mcp.NewTool("pick",
		mcp.WithDescription("Pick a random unworn outfit and mark it worn. Without a category, picks from any category that has outfits. With an outfit name, picks that specific outfit."),
		mcp.WithString("category",
			mcp.Description("Category name. Omit to pick across all categories."),
		),
		mcp.WithString("outfit",
			mcp.Description("Specific outfit file name to pick instead of a random one. Requires category."),
		),
	)
}

func pickHandler(picker *application.Picker) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		category := req.GetString("category", "")
		outfit := req.GetString("outfit", "")

		var (
			result *commands.PickResult
			err    error
		)
		if outfit != "" {
			if category == "" {
				return toolError(fmt.Errorf("outfit requires a category"))
			}
			result, err = commands.NewPickOutfitCommand(picker, category, outfit).Execute(ctx)
		} else {
			result, err = commands.NewPickRandomCommand(picker, category).Execute(ctx)
		}
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- wear ---

func wearTool() mcp.Tool {
	return mcp.NewTool("wear",
		mcp.WithDescription("Mark a specific outfit as worn without picking it."),
		mcp.WithString("category",
			mcp.Description("Category name"),
			mcp.Required(),
		),
		mcp.WithString("outfit",
			mcp.Description("Outfit file name"),
			mcp.Required(),
		),
	)
}

func wearHandler(picker *application.Picker) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		category := req.GetString("category", "")
		outfit := req.GetString("outfit", "")

		msg, err := commands.NewWearCommand(picker, category, outfit).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(msg), nil
	}
}

// --- reset ---

func resetTool() mcp.Tool {
	return mcp.NewTool("reset",
		mcp.WithDescription("Reset rotation progress for a category, or for every category."),
		mcp.WithString("category",
			mcp.Description("Category name. Omit to reset all categories."),
		),
	)
}

func resetHandler(picker *application.Picker) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		category := req.GetString("category", "")

		msg, err := commands.NewResetCommand(picker, category, category == "").Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(msg), nil
	}
}
