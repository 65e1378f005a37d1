package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Eursukkul/aquaagro-admin/internal/models"
	"github.com/Eursukkul/aquaagro-admin/internal/repository"
	"github.com/Eursukkul/aquaagro-admin/internal/service"
	"github.com/Eursukkul/aquaagro-admin/internal/stats"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newDashboardHandler() *DashboardHandler {
	analytics := repository.NewAnalyticsRepository()
	return NewDashboardHandler(
		service.NewDashboardService(analytics, repository.NewCatalogRepository(), stats.NewTally()),
		service.NewReportService(analytics),
		service.NewSettingsService(repository.DefaultSettings(), zap.NewNop()),
	)
}

func TestOverview_Handler(t *testing.T) {
	e := newEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil), rec)

	require.NoError(t, newDashboardHandler().Overview(c))

	var ov service.Overview
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ov))
	assert.Equal(t, service.AttractionSummary{Open: 5, Total: 6}, ov.Activities)
	assert.Zero(t, ov.Live.Bookings)
}

func TestReport_Handler(t *testing.T) {
	e := newEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/reports?period=monthly", nil), rec)

	require.NoError(t, newDashboardHandler().Report(c))

	var r service.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &r))
	assert.Equal(t, service.PeriodMonthly, r.Period)
	assert.Len(t, r.Revenue, 1)
}

func TestReport_Handler_UnknownPeriod(t *testing.T) {
	e := newEcho()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/reports?period=daily", nil), httptest.NewRecorder())

	err := newDashboardHandler().Report(c)

	assert.Equal(t, http.StatusBadRequest, httpCode(t, err))
}

func TestExportReport_Handler(t *testing.T) {
	e := newEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/reports/export", nil), rec)

	require.NoError(t, newDashboardHandler().ExportReport(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, mimeXLSX, rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "aquaagro-report-yearly.xlsx")
	// xlsx files are zip archives
	assert.Equal(t, "PK", rec.Body.String()[:2])
}

func TestUpdateSettings_Handler(t *testing.T) {
	h := newDashboardHandler()
	e := newEcho()

	next := repository.DefaultSettings()
	next.ParkName = "AquaAgro North"
	next.Features.MaintenanceMode = true
	body, err := json.Marshal(next)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPut, "/api/v1/settings", string(body)), rec)
	require.NoError(t, h.UpdateSettings(c))

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil), rec)
	require.NoError(t, h.GetSettings(c))

	var got models.Settings
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "AquaAgro North", got.ParkName)
	assert.True(t, got.Features.MaintenanceMode)
}

func TestUpdateSettings_Handler_Invalid(t *testing.T) {
	h := newDashboardHandler()
	e := newEcho()

	next := repository.DefaultSettings()
	next.ContactEmail = "not-an-email"
	body, err := json.Marshal(next)
	require.NoError(t, err)

	c := e.NewContext(jsonRequest(http.MethodPut, "/api/v1/settings", string(body)), httptest.NewRecorder())
	err = h.UpdateSettings(c)

	assert.Equal(t, http.StatusBadRequest, httpCode(t, err))

	rec := httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil), rec)
	require.NoError(t, h.GetSettings(c))
	assert.Contains(t, rec.Body.String(), "info@aquaagro.com")
}
