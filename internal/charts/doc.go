// Package charts maps aggregated count tables to plotly-shaped figure
// specs with fixed visual encoding rules. It decides trace order, state
// ordering and colors; actual drawing happens client-side.
package charts
