package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coredash "github.com/kilianp07/chargeinsight/core/dashboard"
	"github.com/kilianp07/chargeinsight/core/prediction"
	"github.com/kilianp07/chargeinsight/fixtures"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	bundle, err := fixtures.Default()
	require.NoError(t, err)
	b := &coredash.Builder{Forecaster: prediction.NewSeasonal(prediction.WithRandom(prediction.NewSeededSource(42)))}
	return NewHandler(coredash.NewService(b, bundle, nil), nil)
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), rr.Body.String())
	return out
}

func TestDashboard_Range(t *testing.T) {
	h := newTestHandler(t)

	rr := do(t, h, http.MethodGet, "/api/dashboard?range=30d", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	dto := decode[DashboardDTO](t, rr)
	assert.Equal(t, "30d", dto.Range)
	assert.Equal(t, "2025-05-07", dto.Anchor)
	assert.Equal(t, "ok", dto.FilterOutcome)
	assert.Len(t, dto.Daily, 30)
	assert.Len(t, dto.SessionSeries, 30)
	require.Len(t, dto.HourlySeries, 12)
	assert.Equal(t, "00:00", dto.HourlySeries[0].Label)
	assert.Len(t, dto.ForecastSeries, prediction.Horizon)
	assert.Equal(t, "May 8", dto.ForecastSeries[0].Label)
	assert.Len(t, dto.Heatmap.Cells, 7)
	assert.Len(t, dto.Heatmap.Cells[0], 24)
	assert.Len(t, dto.Stations, 5)
	assert.Len(t, dto.Forecast.Predictions, prediction.Horizon)
	assert.NotEmpty(t, dto.RunID)
	assert.Nil(t, dto.Stored)
}

func TestDashboard_UnknownRangeFallsBack(t *testing.T) {
	h := newTestHandler(t)
	dto := decode[DashboardDTO](t, do(t, h, http.MethodGet, "/api/dashboard?range=90d", ""))
	assert.Equal(t, "7d", dto.Range)
	assert.Len(t, dto.Daily, 8)
	assert.Equal(t, "2025-04-30", dto.Daily[0].Date)
}

func TestSummary(t *testing.T) {
	h := newTestHandler(t)
	dto := decode[SummaryDTO](t, do(t, h, http.MethodGet, "/api/summary?range=7d", ""))
	assert.True(t, dto.HasData)
	assert.Equal(t, 137, dto.TotalSessions)
	assert.InDelta(t, 1677.5, dto.TotalEnergy, 1e-9)
	require.NotNil(t, dto.PeakDay)
	assert.Equal(t, "2025-05-06", dto.PeakDay.Date)
	assert.Equal(t, 25, dto.PeakDay.Sessions)
}

func TestInsights(t *testing.T) {
	h := newTestHandler(t)
	dto := decode[InsightDTO](t, do(t, h, http.MethodGet, "/api/insights?range=7d", ""))
	assert.Equal(t, "local-analysis", dto.Source)
	assert.True(t, strings.HasPrefix(dto.Text, "• Over the 8 days analyzed (Apr 30 to May 7), there were 137 charging sessions"), dto.Text)
	require.NotNil(t, dto.Details)
	assert.Equal(t, 8, dto.Details.Days)
	assert.Equal(t, "18:00", dto.Details.PeakHour)
	assert.Equal(t, "Station-04", dto.Details.TopStation)
	assert.Equal(t, "Station-03", dto.Details.BottomStation)
	assert.NotNil(t, dto.Details.WeekdayWeekendDiff)
}

func TestForecast(t *testing.T) {
	h := newTestHandler(t)
	dto := decode[ForecastDTO](t, do(t, h, http.MethodGet, "/api/forecast?range=14d", ""))
	require.Len(t, dto.Predictions, prediction.Horizon)
	assert.Equal(t, "2025-05-08", dto.Predictions[0].Date)
	assert.Equal(t, "2025-05-14", dto.Predictions[6].Date)
	assert.Equal(t, "local-analysis", dto.Source)
	assert.True(t, strings.HasPrefix(dto.Insight, "Based on 15 days of data"), dto.Insight)
}

func TestCurrentAndSetRange(t *testing.T) {
	h := newTestHandler(t)

	rr := do(t, h, http.MethodGet, "/api/dashboard/current", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = do(t, h, http.MethodPost, "/api/dashboard/range", `{"range":"14d"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	set := decode[DashboardDTO](t, rr)
	require.NotNil(t, set.Stored)
	assert.True(t, *set.Stored)
	assert.Equal(t, "14d", set.Range)

	cur := decode[DashboardDTO](t, do(t, h, http.MethodGet, "/api/dashboard/current", ""))
	assert.Equal(t, set.RunID, cur.RunID)
	assert.Len(t, cur.Daily, 15)

	rr = do(t, h, http.MethodPost, "/api/dashboard/range", `{"range":"1y"}`)
	assert.Equal(t, "7d", decode[DashboardDTO](t, rr).Range)

	rr = do(t, h, http.MethodPost, "/api/dashboard/range", `{"range":`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRouting(t *testing.T) {
	h := newTestHandler(t)
	assert.Equal(t, http.StatusMethodNotAllowed, do(t, h, http.MethodPost, "/api/summary", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/api/unknown", "").Code)
}
