package domain

// StateCount is one (State, Source) group of the state aggregation table.
type StateCount struct {
	State  string `json:"state"`
	Source string `json:"source"`
	Count  int    `json:"count"`
}

// YearCount is one (FiscalYear, Source) group of the time aggregation table.
type YearCount struct {
	Year   int    `json:"year"`
	Source string `json:"source"`
	Count  int    `json:"count"`
}

// Tables holds both aggregated count tables produced by a single query.
// They are derived values, rebuilt from scratch on every invocation.
type Tables struct {
	ByState []StateCount `json:"state_table"`
	ByYear  []YearCount  `json:"year_table"`
}

// Total returns the number of records behind the state table. For any
// selection this equals the total of the year table and the number of
// records matching the inclusion predicate.
func (t Tables) Total() int {
	sum := 0
	for _, row := range t.ByState {
		sum += row.Count
	}
	return sum
}
