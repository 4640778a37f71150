package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/gwalharshu287-lang/Service-get/internal/api/dto"
	"github.com/gwalharshu287-lang/Service-get/internal/api/middleware"
	"github.com/gwalharshu287-lang/Service-get/internal/api/respond"
	"github.com/gwalharshu287-lang/Service-get/internal/model"
	bookingrepo "github.com/gwalharshu287-lang/Service-get/internal/repository/booking"
	"github.com/gwalharshu287-lang/Service-get/internal/repository/pro"
	bookingsvc "github.com/gwalharshu287-lang/Service-get/internal/service/booking"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/booking/mock.go -package=mocks

type bookingService interface {
	Create(ctx context.Context, actor model.User, req bookingsvc.CreateRequest) (model.Booking, error)
	UpdateStatus(ctx context.Context, actor model.User, id uuid.UUID, status model.BookingStatus) (model.Booking, error)
	ListForActor(ctx context.Context, actor model.User) ([]model.Booking, error)
}

type Handler struct {
	service   bookingService
	validator *validator.Validate
}

func NewHandler(s bookingService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

// Create opens a PENDING booking for the current session's user.
func (h *Handler) Create(c *ginext.Context) {
	sess, ok := middleware.Session(c)
	if !ok {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("session required"))
		return
	}

	var req dto.CreateBookingRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid date, expected YYYY-MM-DD"))
		return
	}

	b, err := h.service.Create(c.Request.Context(), sess.User, bookingsvc.CreateRequest{
		ProID:   req.ProID,
		Date:    date,
		Time:    req.Time,
		Notes:   req.Notes,
		Address: req.Address,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookingsvc.ErrValidation):
			respond.Fail(c.Writer, http.StatusBadRequest, err)
		case errors.Is(err, pro.ErrProNotFound):
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("professional not found"))
		default:
			zlog.Logger.Error().Err(err).Str("pro_id", req.ProID).Msg("failed to create booking")
			respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		}
		return
	}

	respond.Created(c.Writer, b)
}

// UpdateStatus transitions a booking to the requested status.
func (h *Handler) UpdateStatus(c *ginext.Context) {
	sess, ok := middleware.Session(c)
	if !ok {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("session required"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid booking id"))
		return
	}

	var req dto.UpdateBookingStatusRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	b, err := h.service.UpdateStatus(c.Request.Context(), sess.User, id, model.BookingStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, bookingrepo.ErrBookingNotFound):
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("booking not found"))
		case errors.Is(err, bookingrepo.ErrInvalidTransition):
			respond.Fail(c.Writer, http.StatusConflict, fmt.Errorf("booking cannot move to %s", req.Status))
		case errors.Is(err, bookingsvc.ErrForbidden):
			respond.Fail(c.Writer, http.StatusForbidden, fmt.Errorf("not allowed to modify this booking"))
		default:
			zlog.Logger.Error().Err(err).Str("booking_id", id.String()).Msg("failed to update booking status")
			respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		}
		return
	}

	respond.OK(c.Writer, b)
}

// List returns the current actor's bookings, most recent first.
func (h *Handler) List(c *ginext.Context) {
	sess, ok := middleware.Session(c)
	if !ok {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("session required"))
		return
	}

	bookings, err := h.service.ListForActor(c.Request.Context(), sess.User)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to list bookings")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, bookings)
}
