package main

import (
	"net/http"

	"github.com/Eursukkul/aquaagro-admin/internal/handler"
	"github.com/Eursukkul/aquaagro-admin/internal/middleware"
	"github.com/Eursukkul/aquaagro-admin/internal/service"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

type services struct {
	catalog   service.CatalogService
	booking   service.BookingService
	dashboard service.DashboardService
	reports   service.ReportService
	settings  service.SettingsService
}

func newRouter(log *zap.Logger, svc services) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.ErrorHandler(log)
	e.Validator = middleware.NewValidator()
	e.Use(echoMw.RequestID())
	e.Use(middleware.RequestLogger(log))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "service": "aquaagro-admin"})
	})

	api := e.Group("/api/v1")
	handler.NewCatalogHandler(svc.catalog).RegisterRoutes(api)
	handler.NewBookingHandler(svc.booking).RegisterRoutes(api)
	handler.NewDashboardHandler(svc.dashboard, svc.reports, svc.settings).RegisterRoutes(api)

	return e
}
