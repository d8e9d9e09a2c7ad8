package gridview

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/gridview/internal/charts"
	"github.com/aretw0/gridview/internal/query"
	csvAdapter "github.com/aretw0/gridview/pkg/adapters/csv"
	"github.com/aretw0/gridview/pkg/domain"
	"github.com/aretw0/gridview/pkg/ports"
)

// Version of the gridview module.
var Version = "0.1.0"

// Dashboard is the high-level entry point for the gridview library.
// New loads the dataset once, applies the renewable filter and builds the
// facet index; after that every method is a pure read, safe for concurrent
// use by the HTTP and MCP adapters.
type Dashboard struct {
	loader   ports.DatasetLoader
	logger   *slog.Logger
	palette  []string
	engine   *query.Engine
	renderer *charts.Renderer
	facets   domain.Facets

	loaded  int // records read from the source
	working int // records surviving the renewable filter
}

// Ensure the facade satisfies the driving port.
var _ ports.Dashboard = (*Dashboard)(nil)

// Option defines a functional option for configuring the Dashboard.
type Option func(*Dashboard)

// WithLoader injects a custom DatasetLoader, bypassing the default CSV file.
func WithLoader(l ports.DatasetLoader) Option {
	return func(d *Dashboard) {
		d.loader = l
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dashboard) {
		d.logger = logger
	}
}

// WithPalette overrides the default chart color palette.
func WithPalette(palette []string) Option {
	return func(d *Dashboard) {
		d.palette = palette
	}
}

// New initializes a Dashboard from the CSV file at dataPath.
// If WithLoader is provided, dataPath can be empty and the file is skipped.
// Loader errors and an empty working dataset are returned as-is; callers
// treat them as fatal and must not serve requests.
func New(dataPath string, opts ...Option) (*Dashboard, error) {
	d := &Dashboard{}

	for _, opt := range opts {
		opt(d)
	}

	if d.loader == nil {
		if dataPath == "" {
			return nil, fmt.Errorf("data path is required when no custom loader is provided")
		}
		d.loader = csvAdapter.NewLoader(dataPath)
	}
	if d.logger == nil {
		d.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	records, err := d.loader.Load(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}

	working := query.FilterRenewable(records)
	if len(working) == 0 {
		return nil, domain.ErrEmptyDataset
	}

	d.loaded = len(records)
	d.working = len(working)
	d.engine = query.NewEngine(working)
	d.facets = query.BuildFacets(working)
	d.renderer = charts.NewRenderer(d.palette)

	d.logger.Info("dataset loaded",
		"records", d.loaded,
		"renewable", d.working,
		"states", len(d.facets.States),
		"sources", len(d.facets.Sources),
	)

	return d, nil
}

// Facets returns the selectable facet values and default selection inputs.
func (d *Dashboard) Facets() domain.Facets {
	return d.facets
}

// Query recomputes both aggregated count tables for the selection.
func (d *Dashboard) Query(sel domain.Selection) domain.Tables {
	return d.engine.Query(sel)
}

// Figures recomputes the tables and maps them to the two chart specs.
func (d *Dashboard) Figures(sel domain.Selection) (domain.Figure, domain.Figure) {
	tables := d.engine.Query(sel)
	state := d.renderer.StateFigure(tables.ByState, sel.Sources)
	time := d.renderer.TimeFigure(tables.ByYear, sel.Sources, sel.YearMin, sel.YearMax)
	return state, time
}

// Summary produces a markdown report of the working dataset, used by the
// inspect command.
func (d *Dashboard) Summary() string {
	var b strings.Builder
	b.WriteString("# Renewable Energy Dashboard\n\n")
	fmt.Fprintf(&b, "- Records loaded: **%d**\n", d.loaded)
	fmt.Fprintf(&b, "- Renewable records: **%d**\n", d.working)
	if len(d.facets.Years) > 0 {
		fmt.Fprintf(&b, "- Fiscal years: **%d-%d**\n", d.facets.Years[0], d.facets.Years[len(d.facets.Years)-1])
	}
	fmt.Fprintf(&b, "- States: **%d**, sources: **%d**\n", len(d.facets.States), len(d.facets.Sources))

	b.WriteString("\n## Top states by initiative count\n\n")
	b.WriteString("| Rank | State | Initiatives |\n|---|---|---|\n")
	tables := d.engine.Query(domain.Selection{
		YearMin: d.facets.Years[0],
		YearMax: d.facets.Years[len(d.facets.Years)-1],
		States:  d.facets.DefaultStates,
		Sources: d.facets.Sources,
	})
	totals := make(map[string]int)
	for _, row := range tables.ByState {
		totals[row.State] += row.Count
	}
	for i, state := range d.facets.DefaultStates {
		fmt.Fprintf(&b, "| %d | %s | %d |\n", i+1, state, totals[state])
	}

	return b.String()
}
