package gridview

import (
	"testing"

	"github.com/aretw0/gridview/pkg/adapters/memory"
	"github.com/aretw0/gridview/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDashboard(t *testing.T) *Dashboard {
	t.Helper()
	loader := memory.NewLoader(
		domain.Record{Source: "Solar Grant", State: "CA", FiscalYear: 2019},
		domain.Record{Source: "Solar Grant", State: "CA", FiscalYear: 2020},
		domain.Record{Source: "Wind Lease", State: "TX", FiscalYear: 2020},
		domain.Record{Source: "Wind Consumption Report", State: "TX", FiscalYear: 2020},
		domain.Record{Source: "Hydro Permit", State: "WA", FiscalYear: 2021},
	)
	d, err := New("", WithLoader(loader))
	require.NoError(t, err)
	return d
}

func TestNewBuildsWorkingDataset(t *testing.T) {
	d := newTestDashboard(t)

	facets := d.Facets()
	// The consumption row is gone before any facet is derived.
	assert.Equal(t, []string{"Hydro Permit", "Solar Grant", "Wind Lease"}, facets.Sources)
	assert.Equal(t, []int{2019, 2020, 2021}, facets.Years)
	assert.Equal(t, []string{"CA", "TX", "WA"}, facets.States)
	assert.Equal(t, []string{"CA", "TX", "WA"}, facets.DefaultStates)
}

func TestNewRequiresPathOrLoader(t *testing.T) {
	_, err := New("")

	assert.Error(t, err)
}

func TestNewEmptyWorkingDatasetFatal(t *testing.T) {
	loader := memory.NewLoader(
		domain.Record{Source: "Wind Consumption Report", State: "TX", FiscalYear: 2020},
	)

	_, err := New("", WithLoader(loader))

	assert.ErrorIs(t, err, domain.ErrEmptyDataset)
}

func TestQueryThroughFacade(t *testing.T) {
	d := newTestDashboard(t)

	tables := d.Query(d.Facets().DefaultSelection())

	assert.Equal(t, 4, tables.Total())
}

func TestFiguresShareSelectionColors(t *testing.T) {
	d := newTestDashboard(t)
	sel := d.Facets().DefaultSelection()

	state, time := d.Figures(sel)

	require.Len(t, state.Data, len(sel.Sources))
	require.Len(t, time.Data, len(sel.Sources))
	for i := range state.Data {
		assert.Equal(t, state.Data[i].Name, time.Data[i].Name)
		assert.Equal(t, state.Data[i].Marker.Color, time.Data[i].Line.Color)
	}
}

func TestSummaryMentionsCounts(t *testing.T) {
	d := newTestDashboard(t)

	md := d.Summary()

	assert.Contains(t, md, "Records loaded: **5**")
	assert.Contains(t, md, "Renewable records: **4**")
	assert.Contains(t, md, "| 1 | CA | 2 |")
}
