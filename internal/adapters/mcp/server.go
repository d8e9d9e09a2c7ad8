// Package mcp exposes the dashboard as a Model Context Protocol server so
// AI agents can query the dataset as tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/gridview"
	"github.com/aretw0/gridview/pkg/domain"
	"github.com/aretw0/gridview/pkg/ports"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"
)

// QueryResponse is the structured result of the query_initiatives tool.
type QueryResponse struct {
	Tables domain.Tables `json:"tables" jsonschema_description:"Aggregated state and year count tables"`
	Total  int           `json:"total" jsonschema_description:"Number of records matching the selection"`
}

// FiguresResponse is the structured result of the render_figures tool.
type FiguresResponse struct {
	StateChart domain.Figure `json:"state_chart" jsonschema_description:"Stacked horizontal bar figure by state"`
	TimeChart  domain.Figure `json:"time_chart" jsonschema_description:"Line figure over fiscal years"`
}

// Server wraps the Dashboard and exposes it as an MCP Server.
type Server struct {
	dashboard ports.Dashboard
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(dashboard ports.Dashboard) *Server {
	s := &Server{
		dashboard: dashboard,
		mcpServer: server.NewMCPServer("gridview-mcp", strings.TrimSpace(gridview.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: get_facets
	s.mcpServer.AddTool(mcp.NewTool("get_facets",
		mcp.WithDescription("Get the selectable years, states and sources plus the default selection."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		facets := s.dashboard.Facets()
		payload := map[string]any{
			"facets":            facets,
			"default_selection": facets.DefaultSelection(),
		}
		jsonBytes, _ := json.Marshal(payload)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})

	// TOOL: query_initiatives
	queryTool := mcp.NewTool("query_initiatives",
		mcp.WithDescription("Filter the working dataset by year range, states and sources; returns both aggregated count tables."),
		mcp.WithNumber("year_min", mcp.Required(), mcp.Description("Lower fiscal year bound, inclusive")),
		mcp.WithNumber("year_max", mcp.Required(), mcp.Description("Upper fiscal year bound, inclusive")),
		mcp.WithString("states", mcp.Required(), mcp.Description("JSON array of state names")),
		mcp.WithString("sources", mcp.Required(), mcp.Description("JSON array of source labels")),
		mcp.WithOutputSchema[QueryResponse](),
	)
	s.mcpServer.AddTool(queryTool, mcp.NewStructuredToolHandler(s.handleQuery))

	// TOOL: render_figures
	figuresTool := mcp.NewTool("render_figures",
		mcp.WithDescription("Filter and aggregate, then map the tables to the bar-by-state and line-over-time figure specs."),
		mcp.WithNumber("year_min", mcp.Required(), mcp.Description("Lower fiscal year bound, inclusive")),
		mcp.WithNumber("year_max", mcp.Required(), mcp.Description("Upper fiscal year bound, inclusive")),
		mcp.WithString("states", mcp.Required(), mcp.Description("JSON array of state names")),
		mcp.WithString("sources", mcp.Required(), mcp.Description("JSON array of source labels")),
		mcp.WithOutputSchema[FiguresResponse](),
	)
	s.mcpServer.AddTool(figuresTool, mcp.NewStructuredToolHandler(s.handleFigures))
}

// Handler methods for structured tools

func (s *Server) handleQuery(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (QueryResponse, error) {
	sel, err := decodeSelection(args)
	if err != nil {
		return QueryResponse{}, err
	}

	tables := s.dashboard.Query(sel)
	return QueryResponse{
		Tables: tables,
		Total:  tables.Total(),
	}, nil
}

func (s *Server) handleFigures(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (FiguresResponse, error) {
	sel, err := decodeSelection(args)
	if err != nil {
		return FiguresResponse{}, err
	}

	stateFig, timeFig := s.dashboard.Figures(sel)
	return FiguresResponse{
		StateChart: stateFig,
		TimeChart:  timeFig,
	}, nil
}

// selectionArgs is the loosely typed tool argument shape. JSON numbers come
// in as float64 and the array arguments as JSON strings, so decoding goes
// mapstructure first, then json for the nested arrays.
type selectionArgs struct {
	YearMin float64 `mapstructure:"year_min"`
	YearMax float64 `mapstructure:"year_max"`
	States  string  `mapstructure:"states"`
	Sources string  `mapstructure:"sources"`
}

func decodeSelection(args map[string]interface{}) (domain.Selection, error) {
	var raw selectionArgs
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &raw,
	})
	if err != nil {
		return domain.Selection{}, fmt.Errorf("decoder setup failed: %w", err)
	}
	if err := decoder.Decode(args); err != nil {
		return domain.Selection{}, fmt.Errorf("invalid arguments: %w", err)
	}

	sel := domain.Selection{
		YearMin: int(raw.YearMin),
		YearMax: int(raw.YearMax),
		States:  []string{},
		Sources: []string{},
	}
	if raw.States != "" {
		if err := json.Unmarshal([]byte(raw.States), &sel.States); err != nil {
			return domain.Selection{}, fmt.Errorf("invalid states array: %w", err)
		}
	}
	if raw.Sources != "" {
		if err := json.Unmarshal([]byte(raw.Sources), &sel.Sources); err != nil {
			return domain.Selection{}, fmt.Errorf("invalid sources array: %w", err)
		}
	}
	return sel, nil
}

func (s *Server) registerResources() {
	// EXPOSE: gridview://facets
	s.mcpServer.AddResource(mcp.NewResource("gridview://facets", "Dashboard Facet Index",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(s.dashboard.Facets())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal facets: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "gridview://facets",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
