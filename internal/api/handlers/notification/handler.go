package notification

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/gwalharshu287-lang/Service-get/internal/api/respond"
	"github.com/gwalharshu287-lang/Service-get/internal/model"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/notification/mock.go -package=mocks

type notifService interface {
	List(ctx context.Context) ([]model.Notification, error)
	Dismiss(ctx context.Context, id uuid.UUID) error
}

type Handler struct {
	service notifService
}

func NewHandler(s notifService) *Handler {
	return &Handler{service: s}
}

// List returns every visible notification, most recent first.
func (h *Handler) List(c *ginext.Context) {
	notifications, err := h.service.List(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to list notifications")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, notifications)
}

// Dismiss removes a notification immediately. Dismissing an id that already
// expired is a no-op, so this always succeeds for well-formed ids.
func (h *Handler) Dismiss(c *ginext.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		zlog.Logger.Error().Err(err).Interface("idStr", idStr).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	if err := h.service.Dismiss(c.Request.Context(), id); err != nil {
		zlog.Logger.Error().Err(err).Interface("id", id).Msg("failed to dismiss notification")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "notification dismissed")
}
