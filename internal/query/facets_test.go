package query

import (
	"fmt"
	"testing"

	"github.com/aretw0/gridview/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFacetsSortedDistinct(t *testing.T) {
	records := []domain.Record{
		{Source: "Wind", State: "TX", FiscalYear: 2021},
		{Source: "Solar", State: "CA", FiscalYear: 2019},
		{Source: "Wind", State: "CA", FiscalYear: 2020},
		{Source: "Solar", State: "TX", FiscalYear: 2019},
	}

	facets := BuildFacets(records)

	assert.Equal(t, []int{2019, 2020, 2021}, facets.Years)
	assert.Equal(t, []string{"CA", "TX"}, facets.States)
	assert.Equal(t, []string{"Solar", "Wind"}, facets.Sources)
}

func TestBuildFacetsDefaultStatesRanked(t *testing.T) {
	// 12 states: state-00 has 12 records, state-01 has 11, ... state-11 has 1.
	var records []domain.Record
	for i := 0; i < 12; i++ {
		state := fmt.Sprintf("state-%02d", i)
		for n := 0; n < 12-i; n++ {
			records = append(records, domain.Record{Source: "Solar", State: state, FiscalYear: 2020})
		}
	}

	facets := BuildFacets(records)

	require.Len(t, facets.DefaultStates, 10)
	for i := 0; i < 10; i++ {
		assert.Equal(t, fmt.Sprintf("state-%02d", i), facets.DefaultStates[i])
	}
}

func TestBuildFacetsDefaultStatesTieOrder(t *testing.T) {
	// Equal counts keep first-encountered dataset order, not alphabetical.
	records := []domain.Record{
		{Source: "Solar", State: "WY", FiscalYear: 2020},
		{Source: "Solar", State: "AK", FiscalYear: 2020},
		{Source: "Solar", State: "MT", FiscalYear: 2020},
	}

	facets := BuildFacets(records)

	assert.Equal(t, []string{"WY", "AK", "MT"}, facets.DefaultStates)
}

func TestBuildFacetsFewerThanTenStates(t *testing.T) {
	records := []domain.Record{
		{Source: "Solar", State: "CA", FiscalYear: 2020},
		{Source: "Wind", State: "CA", FiscalYear: 2020},
		{Source: "Solar", State: "TX", FiscalYear: 2020},
	}

	facets := BuildFacets(records)

	assert.Equal(t, []string{"CA", "TX"}, facets.DefaultStates)
}

func TestDefaultSelection(t *testing.T) {
	facets := domain.Facets{
		Years:         []int{2018, 2019, 2021},
		States:        []string{"AZ", "CA", "TX"},
		Sources:       []string{"Solar", "Wind"},
		DefaultStates: []string{"CA", "TX"},
	}

	sel := facets.DefaultSelection()

	assert.Equal(t, 2018, sel.YearMin)
	assert.Equal(t, 2021, sel.YearMax)
	assert.Equal(t, []string{"CA", "TX"}, sel.States)
	assert.Equal(t, []string{"Solar", "Wind"}, sel.Sources)
}
