package charts

import (
	"fmt"
	"sort"

	"github.com/aretw0/gridview/pkg/domain"
)

// Palette is the default ordered color sequence. Sources consume entries in
// selection-iteration order; when more sources than colors are selected the
// palette cycles rather than truncating (sources past the end would
// otherwise silently share plotly's fallback colors).
var Palette = []string{
	"#DF7350", "#173647", "#007786", "#3F5D6C", "#C3BCB7",
	"#9ABBD9", "#F2B880", "#8B5E88", "#D1B963", "#E58B88",
}

// Renderer maps aggregated count tables to figure specs. The mapping is
// deterministic: same table and selection in, same figure out, and every
// call allocates a fresh figure.
type Renderer struct {
	palette []string
}

// NewRenderer creates a renderer. An empty palette falls back to the default.
func NewRenderer(palette []string) *Renderer {
	if len(palette) == 0 {
		palette = Palette
	}
	return &Renderer{palette: palette}
}

// Color returns the palette color for the i-th selected source.
func (r *Renderer) Color(i int) string {
	return r.palette[i%len(r.palette)]
}

// StateFigure builds the stacked horizontal bar chart: one bar segment per
// (state, source) group, bars stacked per state, states ordered by total
// count ascending.
func (r *Renderer) StateFigure(table []domain.StateCount, sources []string) domain.Figure {
	states := statesByTotalAscending(table)

	// counts[state][source]
	counts := make(map[string]map[string]int, len(states))
	for _, row := range table {
		if counts[row.State] == nil {
			counts[row.State] = make(map[string]int)
		}
		counts[row.State][row.Source] = row.Count
	}

	fig := domain.Figure{
		Data: make([]domain.Trace, 0, len(sources)),
		Layout: domain.Layout{
			Title:   "Renewable Energy by State",
			Barmode: "stack",
			Height:  500,
			XAxis:   &domain.Axis{Title: "Number of Initiatives"},
			YAxis:   &domain.Axis{CategoryOrder: "total ascending"},
			Legend:  &domain.Legend{Title: domain.LegendTitle{Text: "Renewable Source"}},
			Margin:  &domain.Margin{L: 20, R: 20, T: 40, B: 20},
		},
	}

	for i, source := range sources {
		trace := domain.Trace{
			Type:        "bar",
			Name:        source,
			X:           []any{},
			Y:           []any{},
			Orientation: "h",
			Marker:      &domain.Marker{Color: r.Color(i)},
		}
		for _, state := range states {
			if n, ok := counts[state][source]; ok {
				trace.X = append(trace.X, n)
				trace.Y = append(trace.Y, state)
			}
		}
		fig.Data = append(fig.Data, trace)
	}

	return fig
}

// TimeFigure builds the multi-series line chart: one line per source across
// fiscal years, markers at each data point, fixed line width.
func (r *Renderer) TimeFigure(table []domain.YearCount, sources []string, yearMin, yearMax int) domain.Figure {
	// counts[source][year]
	counts := make(map[string]map[int]int)
	yearSet := make(map[int]struct{})
	for _, row := range table {
		if counts[row.Source] == nil {
			counts[row.Source] = make(map[int]int)
		}
		counts[row.Source][row.Year] = row.Count
		yearSet[row.Year] = struct{}{}
	}
	years := make([]int, 0, len(yearSet))
	for y := range yearSet {
		years = append(years, y)
	}
	sort.Ints(years)

	fig := domain.Figure{
		Data: make([]domain.Trace, 0, len(sources)),
		Layout: domain.Layout{
			Title:     fmt.Sprintf("Renewable Energy Over Time (%d-%d)", yearMin, yearMax),
			Height:    500,
			HoverMode: "x unified",
			XAxis:     &domain.Axis{Title: "Year"},
			YAxis:     &domain.Axis{Title: "Number of Initiatives"},
			Legend:    &domain.Legend{Title: domain.LegendTitle{Text: "Renewable Source"}},
			Margin:    &domain.Margin{L: 20, R: 20, T: 40, B: 20},
		},
	}

	for i, source := range sources {
		trace := domain.Trace{
			Type: "scatter",
			Name: source,
			Mode: "lines+markers",
			X:    []any{},
			Y:    []any{},
			Line: &domain.Line{Color: r.Color(i), Width: 3},
		}
		for _, year := range years {
			if n, ok := counts[source][year]; ok {
				trace.X = append(trace.X, year)
				trace.Y = append(trace.Y, n)
			}
		}
		fig.Data = append(fig.Data, trace)
	}

	return fig
}

// statesByTotalAscending returns the distinct states of the table ordered by
// their total count ascending. Ties keep table (first-encounter) order.
func statesByTotalAscending(table []domain.StateCount) []string {
	totals := make(map[string]int)
	var states []string
	for _, row := range table {
		if _, ok := totals[row.State]; !ok {
			states = append(states, row.State)
		}
		totals[row.State] += row.Count
	}
	sort.SliceStable(states, func(i, j int) bool {
		return totals[states[i]] < totals[states[j]]
	})
	return states
}
