// Package gridview renders an interactive web dashboard over a dataset of
// renewable-energy initiatives. It loads a CSV once at startup, drops
// bookkeeping categories (consumption, verification, sold), and then
// answers stateless queries: a facet selection in, two aggregated count
// tables and two plotly figure specs out.
//
// The package follows a hexagonal layout: pkg/domain holds the value
// types, pkg/ports the boundary interfaces, pkg/adapters the loaders, and
// internal/adapters the HTTP and MCP front ends. This file's Dashboard
// type is the facade wiring them together.
package gridview
