// Package ports defines the boundary interfaces of the dashboard.
// Driven ports (DatasetLoader) are implemented by adapters the core calls
// into; the driving port (Dashboard) is implemented by the gridview facade
// and consumed by the HTTP and MCP adapters.
package ports
