package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"mindmap/internal/application"
	"mindmap/internal/application/workspace"
	"mindmap/internal/domain"
	"mindmap/internal/frontmatter"
	"mindmap/internal/ports"
)

// RegisterTools adds every MindMap OS tool to the MCP server.
func RegisterTools(s *server.MCPServer, ws *workspace.Workspace) {
	s.AddTool(pingTool(), pingHandler)
	s.AddTool(createNoteTool(), createNoteHandler(ws))
	s.AddTool(openTodayTool(), openTodayHandler(ws))
	s.AddTool(openPeriodTool(), openPeriodHandler(ws))
	s.AddTool(scaffoldTool(), scaffoldHandler(ws))
	s.AddTool(patchFrontmatterTool(), patchFrontmatterHandler(ws))
	s.AddTool(listNotesTool(), listNotesHandler(ws))
}

// --- ping ---

func pingTool() mcp.Tool {
	return mcp.NewTool("ping",
		mcp.WithDescription("Health check, returns pong"),
	)
}

func pingHandler(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText("pong"), nil
}

// --- create_note ---

func kindNames() []string {
	var names []string
	for _, k := range domain.Kinds() {
		names = append(names, k.String())
	}
	return names
}

func createNoteTool() mcp.Tool {
	return mcp.NewTool("create_note",
		mcp.WithDescription("Create a typed note in the active folder from its template. The file is named \"<emoji><Label> - <title>.md\"; a numeric suffix is added when the name is taken."),
		mcp.WithString("kind",
			mcp.Description("Note kind"),
			mcp.Enum(kindNames()...),
			mcp.Required(),
		),
		mcp.WithString("title",
			mcp.Description("Note title. Characters illegal in filenames are stripped."),
			mcp.Required(),
		),
	)
}

func createNoteHandler(ws *workspace.Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		kind := domain.ParseKind(req.GetString("kind", ""))
		if !kind.Valid() {
			return toolError(fmt.Errorf("kind must be one of: %s", strings.Join(kindNames(), ", ")))
		}

		result, err := ws.CreateNote(ctx, kind, req.GetString("title", ""))
		if errors.Is(err, application.ErrEmptyTitle) {
			return toolError(errors.New("title is required"))
		}
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(fmt.Sprintf("%s\n%s", result.Message, result.Path)), nil
	}
}

// --- open_today ---

func openTodayTool() mcp.Tool {
	return mcp.NewTool("open_today",
		mcp.WithDescription("Write today's daily note (replacing any existing content) and return its path."),
	)
}

func openTodayHandler(ws *workspace.Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := ws.OpenToday(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Path), nil
	}
}

// --- open_period ---

func openPeriodTool() mcp.Tool {
	return mcp.NewTool("open_period",
		mcp.WithDescription("Create the note for the current week, month, quarter or year when it is missing, and return its path."),
		mcp.WithString("period",
			mcp.Description("Period to open"),
			mcp.Enum("week", "month", "quarter", "year"),
			mcp.Required(),
		),
	)
}

func openPeriodHandler(ws *workspace.Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		period, err := domain.ParsePeriod(req.GetString("period", ""))
		if err != nil {
			return toolError(err)
		}

		result, err := ws.OpenPeriod(ctx, period)
		if err != nil {
			return toolError(err)
		}

		status := "created"
		if !result.Written {
			status = "already present"
		}
		return mcp.NewToolResultText(fmt.Sprintf("%s (%s)", result.Path, status)), nil
	}
}

// --- scaffold ---

func scaffoldTool() mcp.Tool {
	return mcp.NewTool("scaffold",
		mcp.WithDescription("Create the MindMap OS starter folders, notes and templates. Existing files are never overwritten."),
	)
}

func scaffoldHandler(ws *workspace.Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := ws.Scaffold(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- patch_frontmatter ---

func patchFrontmatterTool() mcp.Tool {
	return mcp.NewTool("patch_frontmatter",
		mcp.WithDescription("Merge keys into a note's frontmatter. Keys in the patch overwrite, other keys are kept. Targets that are not markdown notes are skipped."),
		mcp.WithString("path",
			mcp.Description("Vault-relative note path"),
			mcp.Required(),
		),
		mcp.WithObject("patch",
			mcp.Description("Keys and values to set, e.g. {\"done\": true, \"status\": \"Done\"}"),
			mcp.Required(),
		),
	)
}

func patchFrontmatterHandler(ws *workspace.Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		patch, ok := req.GetArguments()["patch"].(map[string]any)
		if !ok {
			return toolError(errors.New("patch must be an object"))
		}

		result, err := ws.PatchFrontmatter(ctx, req.GetString("path", ""), frontmatter.FieldsFromMap(patch)...)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- list_notes ---

func listNotesTool() mcp.Tool {
	return mcp.NewTool("list_notes",
		mcp.WithDescription("List catalogued typed notes with their status. Run after the catalog has been synced."),
		mcp.WithString("kind",
			mcp.Description("Only list this kind. Omit to list every kind."),
			mcp.Enum(kindNames()...),
		),
	)
}

func listNotesHandler(ws *workspace.Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		kind := domain.KindUnknown
		if name := req.GetString("kind", ""); name != "" {
			if kind = domain.ParseKind(name); !kind.Valid() {
				return toolError(fmt.Errorf("unknown kind: %s", name))
			}
		}

		result, err := ws.ListNotes(ctx, kind)
		if err != nil {
			return toolError(err)
		}
		return formatNotes(result.Notes)
	}
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatNotes(notes []ports.NoteRecord) (*mcp.CallToolResult, error) {
	if len(notes) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, n := range notes {
		sb.WriteString(formatNote(n))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatNote(n ports.NoteRecord) string {
	status := n.Status
	if status == "" {
		status = "-"
	}
	if n.Done {
		status += " ✓"
	}
	return fmt.Sprintf("%-8s %-10s %s", n.Kind.String(), status, n.Path)
}
