package query

import (
	"sort"

	"github.com/aretw0/gridview/pkg/domain"
)

// defaultStateCount is how many top states the initial selection shows.
const defaultStateCount = 10

// BuildFacets derives the distinct selectable values from the working
// dataset: years ascending, states and sources lexicographic ascending,
// plus the ranked default state selection.
func BuildFacets(records []domain.Record) domain.Facets {
	yearSet := make(map[int]struct{})
	sourceSet := make(map[string]struct{})

	// State counts are collected in first-encounter order so that the
	// stable sort below keeps that order for equal counts.
	type stateCount struct {
		state string
		count int
	}
	var counts []stateCount
	index := make(map[string]int)

	for _, r := range records {
		yearSet[r.FiscalYear] = struct{}{}
		sourceSet[r.Source] = struct{}{}
		if i, ok := index[r.State]; ok {
			counts[i].count++
		} else {
			index[r.State] = len(counts)
			counts = append(counts, stateCount{state: r.State, count: 1})
		}
	}

	facets := domain.Facets{
		Years:   make([]int, 0, len(yearSet)),
		States:  make([]string, 0, len(counts)),
		Sources: make([]string, 0, len(sourceSet)),
	}
	for y := range yearSet {
		facets.Years = append(facets.Years, y)
	}
	sort.Ints(facets.Years)
	for _, c := range counts {
		facets.States = append(facets.States, c.state)
	}
	sort.Strings(facets.States)
	for s := range sourceSet {
		facets.Sources = append(facets.Sources, s)
	}
	sort.Strings(facets.Sources)

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].count > counts[j].count
	})
	top := defaultStateCount
	if len(counts) < top {
		top = len(counts)
	}
	facets.DefaultStates = make([]string, 0, top)
	for _, c := range counts[:top] {
		facets.DefaultStates = append(facets.DefaultStates, c.state)
	}

	return facets
}
