package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aretw0/gridview"
	"github.com/aretw0/gridview/internal/logging"
	"github.com/aretw0/gridview/pkg/adapters/memory"
	"github.com/aretw0/gridview/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	loader := memory.NewLoader(
		domain.Record{Source: "Solar Grant", State: "CA", FiscalYear: 2019},
		domain.Record{Source: "Solar Grant", State: "CA", FiscalYear: 2020},
		domain.Record{Source: "Wind Lease", State: "TX", FiscalYear: 2020},
		domain.Record{Source: "Wind Consumption Report", State: "TX", FiscalYear: 2020},
	)
	dashboard, err := gridview.New("", gridview.WithLoader(loader))
	require.NoError(t, err)
	return NewHandler(dashboard, logging.NewNop())
}

func TestGetHealth(t *testing.T) {
	handler := newTestHandler(t)

	req, _ := http.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, "ok", resp["status"])
}

func TestGetInfo(t *testing.T) {
	handler := newTestHandler(t)

	req, _ := http.NewRequest("GET", "/info", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, "gridview-http", resp["app"])
	assert.NotEmpty(t, resp["version"])
	assert.Equal(t, "0.1.0", resp["api_version"])
}

func TestIndexServesDashboardPage(t *testing.T) {
	handler := newTestHandler(t)

	req, _ := http.NewRequest("GET", "/", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rr.Body.String(), "Renewable Energy Dashboard")
	assert.Contains(t, rr.Body.String(), "state-chart")
}

func TestGetFacets(t *testing.T) {
	handler := newTestHandler(t)

	req, _ := http.NewRequest("GET", "/api/facets", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp FacetsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, []int{2019, 2020}, resp.Years)
	assert.Equal(t, []string{"CA", "TX"}, resp.States)
	assert.Equal(t, []string{"Solar Grant", "Wind Lease"}, resp.Sources)
	assert.Equal(t, 2019, resp.Default.YearMin)
	assert.Equal(t, 2020, resp.Default.YearMax)
	assert.Equal(t, []string{"CA", "TX"}, resp.Default.States)
}

func TestPostQuery(t *testing.T) {
	handler := newTestHandler(t)

	body := `{"year_min":2019,"year_max":2020,"states":["CA","TX"],"sources":["Solar Grant","Wind Lease"]}`
	req, _ := http.NewRequest("POST", "/api/query", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var tables domain.Tables
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &tables))
	assert.Equal(t, 3, tables.Total())
}

func TestPostQueryEmptySelection(t *testing.T) {
	handler := newTestHandler(t)

	// No sources selected: empty tables, not an error, and [] not null.
	body := `{"year_min":2019,"year_max":2020,"states":["CA"],"sources":[]}`
	req, _ := http.NewRequest("POST", "/api/query", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"state_table":[]`)
	assert.Contains(t, rr.Body.String(), `"year_table":[]`)
}

func TestPostQueryInvalidBody(t *testing.T) {
	handler := newTestHandler(t)

	req, _ := http.NewRequest("POST", "/api/query", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestPostFigures(t *testing.T) {
	handler := newTestHandler(t)

	body := `{"year_min":2019,"year_max":2020,"states":["CA","TX"],"sources":["Solar Grant","Wind Lease"]}`
	req, _ := http.NewRequest("POST", "/api/figures", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp FiguresResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.StateChart.Data, 2)
	assert.Equal(t, "stack", resp.StateChart.Layout.Barmode)
	require.Len(t, resp.TimeChart.Data, 2)
	assert.Equal(t, "scatter", resp.TimeChart.Data[0].Type)
}

func TestMetricsExposed(t *testing.T) {
	handler := newTestHandler(t)

	// One query first so the counter has something to show.
	body := `{"year_min":2019,"year_max":2020,"states":["CA"],"sources":["Solar Grant"]}`
	req, _ := http.NewRequest("POST", "/api/query", strings.NewReader(body))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	req, _ = http.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "gridview_queries_total 1")
}
