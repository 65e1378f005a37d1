package handler

import (
	"errors"
	"net/http"

	"github.com/Eursukkul/aquaagro-admin/internal/dto"
	"github.com/Eursukkul/aquaagro-admin/internal/models"
	"github.com/Eursukkul/aquaagro-admin/internal/service"
	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/tiers", h.ListTiers)
	g.GET("/quote", h.Quote)

	g.PUT("/drafts/:id", h.SaveDraft)
	g.GET("/drafts/:id", h.GetDraft)

	g.POST("/bookings", h.CreateBooking)
	g.GET("/bookings", h.ListBookings)
	g.GET("/bookings/:ref", h.GetBooking)
	g.DELETE("/bookings/:ref", h.CloseBooking)
}

func (h *BookingHandler) ListTiers(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Tiers())
}

func (h *BookingHandler) Quote(c echo.Context) error {
	var q dto.QuoteQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid quote parameters")
	}
	if err := c.Validate(&q); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.svc.Quote(q.TierID, q.Adults, q.Children))
}

func (h *BookingHandler) SaveDraft(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "draft id is required")
	}

	var req dto.DraftRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	draft := req.ToDraft()
	if err := h.svc.SaveDraft(c.Request().Context(), id, draft); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.DraftResponse{
		ID:    id,
		Draft: draft,
		Total: h.svc.Quote(draft.TierID, draft.Adults, draft.Children).Total,
	})
}

func (h *BookingHandler) GetDraft(c echo.Context) error {
	id := c.Param("id")
	draft, err := h.svc.GetDraft(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrDraftNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.DraftResponse{
		ID:    id,
		Draft: *draft,
		Total: h.svc.Quote(draft.TierID, draft.Adults, draft.Children).Total,
	})
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	var b *models.Booking
	var err error
	if req.DraftID != "" {
		b, err = h.svc.SubmitDraft(ctx, req.DraftID)
	} else {
		b, err = h.svc.Submit(ctx, req.ToDraft())
	}
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDraftNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrIncompleteDraft):
			return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusAccepted, dto.ToBookingResponse(b))
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	b, err := h.svc.Status(c.Request().Context(), c.Param("ref"))
	if err != nil {
		return bookingLookupError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(b))
}

func (h *BookingHandler) CloseBooking(c echo.Context) error {
	b, err := h.svc.Close(c.Request().Context(), c.Param("ref"))
	if err != nil {
		return bookingLookupError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(b))
}

func (h *BookingHandler) ListBookings(c echo.Context) error {
	bookings, err := h.svc.ListBookings(c.Request().Context(), criteriaFrom(c, "tier", "status"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	items := make([]dto.BookingResponse, len(bookings))
	for i := range bookings {
		items[i] = dto.ToBookingResponse(&bookings[i])
	}

	return c.JSON(http.StatusOK, dto.ListResponse[dto.BookingResponse]{
		Items:   items,
		Showing: len(items),
		Total:   len(items),
	})
}

func bookingLookupError(err error) error {
	if errors.Is(err, service.ErrBookingNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
