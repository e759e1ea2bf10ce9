// Package mcp exposes the catalog and launcher as MCP tools.
package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"launchdex/internal/application"
	"launchdex/internal/application/commands"
	"launchdex/internal/domain"
	"launchdex/internal/ports"
)

// Deps are the stores and launcher the tools operate on
type Deps struct {
	Index    ports.IndexStore
	History  ports.HistoryStore
	Launcher ports.Launcher
	Now      func() time.Time
}

// RegisterTools adds the catalog tools to the MCP server.
func RegisterTools(s *server.MCPServer, deps Deps) {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	s.AddTool(listProgramsTool(), listProgramsHandler(deps))
	s.AddTool(launchProgramTool(), launchProgramHandler(deps))
}

// --- list_programs ---

func listProgramsTool() mcp.Tool {
	return mcp.NewTool("list_programs",
		mcp.WithDescription("List indexed programs, most frequently and recently launched first."),
		mcp.WithString("query",
			mcp.Description("Fuzzy filter applied to program titles"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of programs to return (0 for all)"),
		),
	)
}

func listProgramsHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		limit := req.GetInt("limit", 0)
		if limit < 0 {
			return toolError(fmt.Errorf("limit must not be negative"))
		}

		cmd := commands.NewListCommand(deps.Index, deps.History, query, limit)
		cmd.Now = deps.Now
		ranked, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(ranked, formatRanked)
	}
}

// --- launch_program ---

func launchProgramTool() mcp.Tool {
	return mcp.NewTool("launch_program",
		mcp.WithDescription("Launch an indexed program by its absolute path and record it in the history."),
		mcp.WithString("path",
			mcp.Description("Absolute path of the program, as shown by list_programs"),
			mcp.Required(),
		),
		mcp.WithString("args",
			mcp.Description(`Arguments as a shell-quoted string, e.g. --flag "has space"`),
		),
	)
}

func launchProgramHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")
		args, err := domain.SplitArgs(req.GetString("args", ""))
		if err != nil {
			return toolError(err)
		}

		cmd := commands.NewLaunchPathCommand(deps.Index, deps.Launcher, deps.History, deps.Now)
		p, rec, err := cmd.Execute(ctx, path, args)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(fmt.Sprintf("Started %q (launched %d times)", p.Path, rec.Rank)), nil
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

func formatRanked(rp application.RankedProgram) string {
	if !rp.HasHistory {
		return fmt.Sprintf("%s  %s", application.Label(rp.Program), rp.Path)
	}
	return fmt.Sprintf("%s  %s  (rank %d, score %.3f)", application.Label(rp.Program), rp.Path, rp.Record.Rank, rp.Score)
}
