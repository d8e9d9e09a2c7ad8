package query

import "github.com/aretw0/gridview/pkg/domain"

// Engine answers facet queries against the immutable working dataset.
// It holds no other state, so a single instance serves concurrent readers.
type Engine struct {
	records []domain.Record
}

// NewEngine creates a query engine over the working dataset.
func NewEngine(records []domain.Record) *Engine {
	return &Engine{records: records}
}

// Query applies the inclusion predicate
//
//	YearMin <= year <= YearMax && state ∈ States && source ∈ Sources
//
// and aggregates the matching records into the state×source and
// year×source count tables. The computation runs from scratch on every
// call; groups appear in first-encounter order over the dataset, so
// identical selections always yield identical tables.
func (e *Engine) Query(sel domain.Selection) domain.Tables {
	tables := domain.Tables{
		ByState: []domain.StateCount{},
		ByYear:  []domain.YearCount{},
	}
	// An empty state or source set matches nothing. A YearMin above
	// YearMax does too; the predicate handles that on its own.
	if sel.Empty() {
		return tables
	}

	states := toSet(sel.States)
	sources := toSet(sel.Sources)

	type stateKey struct {
		state, source string
	}
	type yearKey struct {
		year   int
		source string
	}
	stateIndex := make(map[stateKey]int)
	yearIndex := make(map[yearKey]int)

	for _, r := range e.records {
		if r.FiscalYear < sel.YearMin || r.FiscalYear > sel.YearMax {
			continue
		}
		if _, ok := states[r.State]; !ok {
			continue
		}
		if _, ok := sources[r.Source]; !ok {
			continue
		}

		sk := stateKey{state: r.State, source: r.Source}
		if i, ok := stateIndex[sk]; ok {
			tables.ByState[i].Count++
		} else {
			stateIndex[sk] = len(tables.ByState)
			tables.ByState = append(tables.ByState, domain.StateCount{
				State:  r.State,
				Source: r.Source,
				Count:  1,
			})
		}

		yk := yearKey{year: r.FiscalYear, source: r.Source}
		if i, ok := yearIndex[yk]; ok {
			tables.ByYear[i].Count++
		} else {
			yearIndex[yk] = len(tables.ByYear)
			tables.ByYear = append(tables.ByYear, domain.YearCount{
				Year:   r.FiscalYear,
				Source: r.Source,
				Count:  1,
			})
		}
	}

	return tables
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
