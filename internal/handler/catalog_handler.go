package handler

import (
	"errors"
	"net/http"

	"github.com/Eursukkul/aquaagro-admin/internal/dto"
	"github.com/Eursukkul/aquaagro-admin/internal/models"
	"github.com/Eursukkul/aquaagro-admin/internal/service"
	"github.com/labstack/echo/v4"
)

type CatalogHandler struct {
	svc service.CatalogService
}

func NewCatalogHandler(svc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

func (h *CatalogHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/rides", h.ListRides)
	g.GET("/rides/:id", h.GetRide)
	g.GET("/activities", h.ListActivities)
	g.GET("/activities/:id", h.GetActivity)
	g.GET("/staff", h.ListStaff)
	g.GET("/staff/:id", h.GetStaff)
}

func (h *CatalogHandler) ListRides(c echo.Context) error {
	list, err := h.svc.ListRides(c.Request().Context(), criteriaFrom(c, "status"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	items := make([]dto.RideResponse, len(list.Rides))
	for i, r := range list.Rides {
		items[i] = dto.ToRideResponse(r)
	}

	return c.JSON(http.StatusOK, dto.ListResponse[dto.RideResponse]{
		Items:   items,
		Showing: len(items),
		Total:   list.Summary.Total,
		Summary: list.Summary,
	})
}

func (h *CatalogHandler) GetRide(c echo.Context) error {
	ride, err := h.svc.GetRide(c.Request().Context(), c.Param("id"))
	if err != nil {
		return lookupError(err, "ride not found")
	}
	return c.JSON(http.StatusOK, dto.ToRideResponse(*ride))
}

func (h *CatalogHandler) ListActivities(c echo.Context) error {
	list, err := h.svc.ListActivities(c.Request().Context(), criteriaFrom(c, "status", "guide"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	items := make([]dto.ActivityResponse, len(list.Activities))
	for i, a := range list.Activities {
		items[i] = dto.ToActivityResponse(a)
	}

	return c.JSON(http.StatusOK, dto.ListResponse[dto.ActivityResponse]{
		Items:   items,
		Showing: len(items),
		Total:   list.Summary.Total,
		Summary: list.Summary,
	})
}

func (h *CatalogHandler) GetActivity(c echo.Context) error {
	activity, err := h.svc.GetActivity(c.Request().Context(), c.Param("id"))
	if err != nil {
		return lookupError(err, "activity not found")
	}
	return c.JSON(http.StatusOK, dto.ToActivityResponse(*activity))
}

func (h *CatalogHandler) ListStaff(c echo.Context) error {
	list, err := h.svc.ListStaff(c.Request().Context(), criteriaFrom(c, "department", "status", "shift"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ListResponse[models.StaffMember]{
		Items:   list.Staff,
		Showing: len(list.Staff),
		Total:   list.Summary.Total,
		Summary: list.Summary,
	})
}

func (h *CatalogHandler) GetStaff(c echo.Context) error {
	member, err := h.svc.GetStaff(c.Request().Context(), c.Param("id"))
	if err != nil {
		return lookupError(err, "staff member not found")
	}
	return c.JSON(http.StatusOK, member)
}

func lookupError(err error, notFoundMsg string) error {
	if errors.Is(err, service.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, notFoundMsg)
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
