package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"rotawear/internal/application"
	"rotawear/internal/application/commands"
	"rotawear/internal/domain"
)

// RegisterReadTools adds all read-only picker tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, picker *application.Picker) {
	s.AddTool(categoriesTool(), categoriesHandler(picker))
	s.AddTool(outfitsTool(), outfitsHandler(picker))
	s.AddTool(statusTool(), statusHandler(picker))
	s.AddTool(wornTool(), wornHandler(picker))
}

// --- categories ---

func categoriesTool() mcp.Tool {
	return mcp.NewTool("categories",
		mcp.WithDescription("List closet categories with their state and rotation progress."),
	)
}

func categoriesHandler(picker *application.Picker) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		categories, err := commands.NewListCategoriesCommand(picker).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(categories, formatCategory)
	}
}

// --- outfits ---

func outfitsTool() mcp.Tool {
	return mcp.NewTool("outfits",
		mcp.WithDescription("List the outfits of a category. Worn outfits are marked with an asterisk."),
		mcp.WithString("category",
			mcp.Description("Category name (directory name under the closet root)"),
			mcp.Required(),
		),
	)
}

func outfitsHandler(picker *application.Picker) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		category := req.GetString("category", "")
		if category == "" {
			return toolError(fmt.Errorf("category is required"))
		}

		listings, err := commands.NewListOutfitsCommand(picker, category).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(listings, formatListing)
	}
}

// --- status ---

func statusTool() mcp.Tool {
	return mcp.NewTool("status",
		mcp.WithDescription("Report how many outfits of a category have been worn this rotation."),
		mcp.WithString("category",
			mcp.Description("Category name"),
			mcp.Required(),
		),
	)
}

func statusHandler(picker *application.Picker) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		category := req.GetString("category", "")
		if category == "" {
			return toolError(fmt.Errorf("category is required"))
		}

		result, err := commands.NewStatusCommand(picker, category).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- worn ---

func wornTool() mcp.Tool {
	return mcp.NewTool("worn",
		mcp.WithDescription("List every worn outfit across all categories."),
	)
}

func wornHandler(picker *application.Picker) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		worn, err := picker.AllWornOutfits()
		if err != nil {
			return toolError(err)
		}
		if len(worn) == 0 {
			return mcp.NewToolResultText("No outfits worn yet."), nil
		}

		var sb strings.Builder
		for _, category := range worn {
			fmt.Fprintf(&sb, "%s: %s\n", category.CategoryPath, strings.Join(category.Outfits, ", "))
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatCategory(c domain.CategoryInfo) string {
	switch c.State {
	case domain.CategoryHasOutfits:
		return fmt.Sprintf("%s  %d/%d worn", c.Category.Name, c.WornCount, c.OutfitCount)
	case domain.CategoryEmpty:
		return fmt.Sprintf("%s  (empty)", c.Category.Name)
	case domain.CategoryNoAvatarFiles:
		return fmt.Sprintf("%s  (no outfit files)", c.Category.Name)
	case domain.CategoryUserExcluded:
		return fmt.Sprintf("%s  (excluded)", c.Category.Name)
	default:
		return c.Category.Name
	}
}

func formatListing(l commands.OutfitListing) string {
	if l.Worn {
		return "* " + l.Outfit.Name
	}
	return "  " + l.Outfit.Name
}
