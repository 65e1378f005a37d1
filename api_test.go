package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Eursukkul/aquaagro-admin/internal/booking"
	"github.com/Eursukkul/aquaagro-admin/internal/consumer"
	"github.com/Eursukkul/aquaagro-admin/internal/pricing"
	"github.com/Eursukkul/aquaagro-admin/internal/repository"
	"github.com/Eursukkul/aquaagro-admin/internal/service"
	"github.com/Eursukkul/aquaagro-admin/internal/stats"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

type testServer struct {
	e     *echo.Echo
	clock *booking.ManualClock
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	log := zap.NewNop()
	clock := booking.NewManualClock(time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC))

	tally := stats.NewTally()
	catalogRepo := repository.NewCatalogRepository()
	analyticsRepo := repository.NewAnalyticsRepository()
	bookingSvc := service.NewBookingService(service.BookingDeps{
		Rates:     pricing.DefaultRates(),
		Repo:      repository.NewMemoryBookingRepository(),
		Drafts:    repository.NewMemoryDraftStore(time.Hour, clock.Now),
		Confirmer: booking.NewConfirmer(time.Second, clock),
		Clock:     clock,
		Publisher: consumer.LocalPublisher{Consumer: consumer.NewBookingConsumer(tally, log)},
		Logger:    log,
	})
	t.Cleanup(func() {
		bookingSvc.Shutdown()
		goleak.VerifyNone(t)
	})

	e := newRouter(log, services{
		catalog:   service.NewCatalogService(catalogRepo),
		booking:   bookingSvc,
		dashboard: service.NewDashboardService(analyticsRepo, catalogRepo, tally),
		reports:   service.NewReportService(analyticsRepo),
		settings:  service.NewSettingsService(repository.DefaultSettings(), log),
	})
	return &testServer{e: e, clock: clock}
}

func (s *testServer) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestAPI_BookingFlow(t *testing.T) {
	s := newTestServer(t)
	var ref string

	t.Run("SaveDraft", func(t *testing.T) {
		rec := s.do(t, http.MethodPut, "/api/v1/drafts/form-1",
			`{"tier":"combo","visit_date":"2026-07-02","adults":2,"children":1}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, float64(105), decode(t, rec)["total"])
	})

	t.Run("SubmitDraft", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/api/v1/bookings", `{"draft_id":"form-1"}`)
		require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
		body := decode(t, rec)
		assert.Equal(t, "processing", body["status"])
		ref = body["reference"].(string)
		require.NotEmpty(t, ref)
	})

	t.Run("ProcessingUntilClockFires", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/api/v1/bookings/"+ref, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "processing", decode(t, rec)["status"])

		rec = s.do(t, http.MethodGet, "/api/v1/bookings", "")
		assert.Equal(t, float64(0), decode(t, rec)["showing"])
	})

	t.Run("Confirmed", func(t *testing.T) {
		s.clock.Advance(time.Second)

		require.Eventually(t, func() bool {
			rec := s.do(t, http.MethodGet, "/api/v1/bookings?tier=combo", "")
			return decode(t, rec)["showing"] == float64(1)
		}, 2*time.Second, 5*time.Millisecond)

		rec := s.do(t, http.MethodGet, "/api/v1/bookings/"+ref, "")
		assert.Equal(t, "confirmed", decode(t, rec)["status"])
	})

	t.Run("DashboardCountsTickets", func(t *testing.T) {
		require.Eventually(t, func() bool {
			live := decode(t, s.do(t, http.MethodGet, "/api/v1/dashboard", ""))["live_bookings"].(map[string]any)
			return live["tickets_sold"] == float64(3) && live["revenue"] == float64(105)
		}, 2*time.Second, 5*time.Millisecond)
	})

	t.Run("DraftConsumed", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/api/v1/drafts/form-1", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAPI_CloseWhileProcessing(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/v1/bookings",
		`{"tier":"water-park","visit_date":"2026-07-05","adults":1}`)
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	ref := decode(t, rec)["reference"].(string)

	rec = s.do(t, http.MethodDelete, "/api/v1/bookings/"+ref, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cancelled", decode(t, rec)["status"])

	s.clock.Advance(time.Second)

	rec = s.do(t, http.MethodGet, "/api/v1/bookings/"+ref, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = s.do(t, http.MethodGet, "/api/v1/bookings", "")
	assert.Equal(t, float64(0), decode(t, rec)["showing"])
}

func TestAPI_Errors(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name, method, target, body string
		code                       int
		message                    string
	}{
		{"unknown ride", http.MethodGet, "/api/v1/rides/WR999", "", http.StatusNotFound, "ride not found"},
		{"unknown period", http.MethodGet, "/api/v1/reports?period=daily", "", http.StatusBadRequest, service.ErrUnknownPeriod.Error()},
		{"past visit date", http.MethodPost, "/api/v1/bookings", `{"tier":"combo","visit_date":"2026-06-30","adults":1}`, http.StatusUnprocessableEntity, service.ErrIncompleteDraft.Error()},
		{"malformed body", http.MethodPost, "/api/v1/bookings", `{"tier":`, http.StatusBadRequest, "invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.message, decode(t, rec)["message"])
		})
	}
}

func TestAPI_Health(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode(t, rec)["status"])
}
