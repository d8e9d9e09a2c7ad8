package domain

// Selection is the user's current filter state (year range, states, sources).
// It is supplied per request and recreated on every interaction; the server
// never stores it.
// It uses "mapstructure" tags so adapters can decode loosely typed argument
// maps (MCP tool calls) into it.
type Selection struct {
	YearMin int      `json:"year_min" mapstructure:"year_min"`
	YearMax int      `json:"year_max" mapstructure:"year_max"`
	States  []string `json:"states" mapstructure:"states"`
	Sources []string `json:"sources" mapstructure:"sources"`
}

// Empty reports whether the selection can match no rows regardless of the
// dataset. An empty state or source set is a valid selection that yields
// empty tables, not an error.
func (s Selection) Empty() bool {
	return len(s.States) == 0 || len(s.Sources) == 0
}
