package domain

// Record is one renewable-energy initiative entry.
// Records are immutable after load; the whole pipeline only reads them.
type Record struct {
	// Source is the category label of the initiative (e.g. "Solar Grant").
	Source string `json:"source"`

	// State is the two-letter or full state name as it appears in the dataset.
	State string `json:"state"`

	// FiscalYear is the fiscal year the initiative was recorded under.
	FiscalYear int `json:"fiscal_year"`
}
