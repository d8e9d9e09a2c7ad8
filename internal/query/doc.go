// Package query implements the dashboard core: the renewable exclusion
// filter, the facet index builder and the query engine that aggregates the
// working dataset into count tables.
package query
