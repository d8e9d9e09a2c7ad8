// Package domain contains the pure value types of the dashboard: records,
// selections, aggregated count tables, facet indexes and figure specs.
// It has no dependencies and no behavior beyond trivial derivations, so
// every adapter and the core can share it safely.
package domain
