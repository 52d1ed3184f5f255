// Package mcp exposes the tracker over the Model Context Protocol so an
// AI assistant can suggest exercises, log workouts, and read progress.
// Only the stdio transport is served; session state stays in-process.
package mcp

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/claude/fitlog/internal/catalog"
	"github.com/claude/fitlog/internal/tracker"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(store *tracker.Store, cat *catalog.Catalog, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("FitLog", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("FitLog fitness tracker. Suggest exercises from the catalog, log workouts, set goals, and read per-user progress. State is in-memory and scoped to this process."),
	)

	h := &handlers{store: store, cat: cat, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolSuggestExercises, Handler: h.suggestExercises},
		server.ServerTool{Tool: toolLogWorkout, Handler: h.logWorkout},
		server.ServerTool{Tool: toolGetWorkouts, Handler: h.getWorkouts},
		server.ServerTool{Tool: toolGetProgress, Handler: h.getProgress},
		server.ServerTool{Tool: toolSetGoal, Handler: h.setGoal},
		server.ServerTool{Tool: toolListCatalog, Handler: h.listCatalog},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resCatalog, Handler: h.catalogResource},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	store *tracker.Store
	cat   *catalog.Catalog
	log   *slog.Logger
}

// --- Resource definitions ---

var resCatalog = mcp.NewResource(
	"fitlog://catalog",
	"Exercise Catalog",
	mcp.WithResourceDescription("The full exercise catalog grouped by muscle group, with durations, calorie rates, intensities, and required equipment"),
	mcp.WithMIMEType("application/json"),
)

func (h *handlers) catalogResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	full := make(map[string][]catalog.Entry)
	for _, group := range h.cat.Groups() {
		full[group] = h.cat.Group(group)
	}

	data, err := json.Marshal(full)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
