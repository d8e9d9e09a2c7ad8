package domain

// Facets holds the distinct selectable values derived from the working
// dataset, plus the ranked default state selection. Built once at startup.
type Facets struct {
	// Years are the distinct fiscal years, ascending.
	Years []int `json:"years"`

	// States are the distinct state names, lexicographic ascending.
	States []string `json:"states"`

	// Sources are the distinct renewable source labels, lexicographic ascending.
	Sources []string `json:"sources"`

	// DefaultStates are the (up to) 10 states with the most records,
	// highest first. Ties keep first-encountered dataset order.
	DefaultStates []string `json:"default_states"`
}

// DefaultSelection is the dashboard's initial state: full year range, the
// top-10 states, and every source selected.
func (f Facets) DefaultSelection() Selection {
	sel := Selection{
		States:  f.DefaultStates,
		Sources: f.Sources,
	}
	if len(f.Years) > 0 {
		sel.YearMin = f.Years[0]
		sel.YearMax = f.Years[len(f.Years)-1]
	}
	return sel
}
