package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Eursukkul/aquaagro-admin/internal/models"
	"github.com/Eursukkul/aquaagro-admin/internal/service"
	"github.com/labstack/echo/v4"
)

const mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type DashboardHandler struct {
	dashboard service.DashboardService
	reports   service.ReportService
	settings  service.SettingsService
}

func NewDashboardHandler(dashboard service.DashboardService, reports service.ReportService, settings service.SettingsService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, reports: reports, settings: settings}
}

func (h *DashboardHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/dashboard", h.Overview)
	g.GET("/reports", h.Report)
	g.GET("/reports/export", h.ExportReport)
	g.GET("/settings", h.GetSettings)
	g.PUT("/settings", h.UpdateSettings)
}

func (h *DashboardHandler) Overview(c echo.Context) error {
	ov, err := h.dashboard.Overview(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, ov)
}

func (h *DashboardHandler) Report(c echo.Context) error {
	r, err := h.reports.Build(c.Request().Context(), c.QueryParam("period"))
	if err != nil {
		return reportError(err)
	}
	return c.JSON(http.StatusOK, r)
}

func (h *DashboardHandler) ExportReport(c echo.Context) error {
	period := c.QueryParam("period")
	data, err := h.reports.Export(c.Request().Context(), period)
	if err != nil {
		return reportError(err)
	}

	if period == "" {
		period = string(service.PeriodYearly)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="aquaagro-report-%s.xlsx"`, period))
	return c.Blob(http.StatusOK, mimeXLSX, data)
}

func (h *DashboardHandler) GetSettings(c echo.Context) error {
	return c.JSON(http.StatusOK, h.settings.Get(c.Request().Context()))
}

func (h *DashboardHandler) UpdateSettings(c echo.Context) error {
	var req models.Settings
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.settings.Update(c.Request().Context(), req))
}

func reportError(err error) error {
	if errors.Is(err, service.ErrUnknownPeriod) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
