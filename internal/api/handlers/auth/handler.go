package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/gwalharshu287-lang/Service-get/internal/api/dto"
	"github.com/gwalharshu287-lang/Service-get/internal/api/middleware"
	"github.com/gwalharshu287-lang/Service-get/internal/api/respond"
	"github.com/gwalharshu287-lang/Service-get/internal/model"
	"github.com/gwalharshu287-lang/Service-get/internal/repository/pro"
	"github.com/gwalharshu287-lang/Service-get/internal/service/session"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/auth/mock.go -package=mocks

type sessionService interface {
	Login(ctx context.Context, req session.LoginRequest) (model.Session, error)
	Logout(ctx context.Context, token uuid.UUID) error
	ToggleFavorite(ctx context.Context, token uuid.UUID, proID string) ([]string, error)
}

type Handler struct {
	service   sessionService
	validator *validator.Validate
}

func NewHandler(s sessionService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

// Login starts a session for a demo identity and returns it, token included.
func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest

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

	sess, err := h.service.Login(c.Request.Context(), session.LoginRequest{
		Role:     model.Role(req.Role),
		Name:     req.Name,
		Email:    req.Email,
		Location: req.Location,
		ProID:    req.ProID,
	})
	if err != nil {
		if errors.Is(err, pro.ErrProNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("professional profile not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("role", req.Role).Msg("failed to create session")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, sess)
}

// Logout ends the current session and cancels its pending push timers.
func (h *Handler) Logout(c *ginext.Context) {
	sess, ok := middleware.Session(c)
	if !ok {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("session required"))
		return
	}

	if err := h.service.Logout(c.Request.Context(), sess.Token); err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("session not found"))
			return
		}

		zlog.Logger.Error().Err(err).Msg("failed to end session")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "logged out")
}

// Me returns the current session.
func (h *Handler) Me(c *ginext.Context) {
	sess, ok := middleware.Session(c)
	if !ok {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("session required"))
		return
	}

	respond.OK(c.Writer, sess)
}

// ToggleFavorite flips a professional in the session's favorites and returns
// the updated list.
func (h *Handler) ToggleFavorite(c *ginext.Context) {
	sess, ok := middleware.Session(c)
	if !ok {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("session required"))
		return
	}

	proID := c.Param("proId")
	if proID == "" {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing professional id"))
		return
	}

	favorites, err := h.service.ToggleFavorite(c.Request.Context(), sess.Token, proID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("session not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("pro_id", proID).Msg("failed to toggle favorite")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, favorites)
}
