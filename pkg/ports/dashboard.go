package ports

import "github.com/aretw0/gridview/pkg/domain"

// Dashboard is the driving port of the system: everything a presentation
// adapter needs to render the dashboard. All methods are pure reads over
// the immutable working dataset and are safe for concurrent use.
type Dashboard interface {
	// Facets returns the selectable values and the default selection inputs.
	Facets() domain.Facets

	// Query filters the working dataset by the selection and returns both
	// aggregated count tables. Recomputed in full on every call.
	Query(sel domain.Selection) domain.Tables

	// Figures runs Query and maps the tables to the stacked bar figure
	// (by state) and the line figure (over fiscal years).
	Figures(sel domain.Selection) (state domain.Figure, time domain.Figure)
}
