package chat

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
	chatsvc "github.com/gwalharshu287-lang/Service-get/internal/service/chat"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/chat/mock.go -package=mocks

type chatService interface {
	Send(ctx context.Context, sender model.User, proID string, req chatsvc.SendRequest) (model.ChatMessage, error)
	Messages(ctx context.Context, proID string) ([]model.ChatMessage, error)
	StartCall(ctx context.Context, sess model.Session, proID string, kind model.CallKind) (model.Call, error)
	Call(ctx context.Context, callID uuid.UUID) (model.Call, error)
	EndCall(ctx context.Context, callID uuid.UUID) (model.CallLog, error)
	CallHistory(ctx context.Context) ([]model.CallLog, error)
}

type Handler struct {
	service   chatService
	validator *validator.Validate
}

func NewHandler(s chatService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

// Messages returns the conversation with a professional in chronological
// order.
func (h *Handler) Messages(c *ginext.Context) {
	proID := c.Param("proId")
	if proID == "" {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing professional id"))
		return
	}

	msgs, err := h.service.Messages(c.Request.Context(), proID)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("pro_id", proID).Msg("failed to list messages")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, msgs)
}

// Send appends a message to the conversation with a professional.
func (h *Handler) Send(c *ginext.Context) {
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

	var req dto.SendMessageRequest

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

	send := chatsvc.SendRequest{
		Type:     model.MessageType(req.Type),
		Text:     req.Text,
		ImageURL: req.ImageURL,
	}
	if req.Address != "" {
		send.Location = &model.Location{Address: req.Address, Lat: req.Lat, Lng: req.Lng}
	}

	m, err := h.service.Send(c.Request.Context(), sess.User, proID, send)
	if err != nil {
		switch {
		case errors.Is(err, chatsvc.ErrEmptyMessage):
			respond.Fail(c.Writer, http.StatusBadRequest, err)
		case errors.Is(err, pro.ErrProNotFound):
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("professional not found"))
		default:
			zlog.Logger.Error().Err(err).Str("pro_id", proID).Msg("failed to send message")
			respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		}
		return
	}

	respond.Created(c.Writer, m)
}

// StartCall begins a simulated call with a professional.
func (h *Handler) StartCall(c *ginext.Context) {
	sess, ok := middleware.Session(c)
	if !ok {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("session required"))
		return
	}

	var req dto.StartCallRequest

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

	call, err := h.service.StartCall(c.Request.Context(), sess, req.ProID, model.CallKind(req.Kind))
	if err != nil {
		if errors.Is(err, pro.ErrProNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("professional not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("pro_id", req.ProID).Msg("failed to start call")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, call)
}

// Call returns the state of an active call.
func (h *Handler) Call(c *ginext.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid call id"))
		return
	}

	call, err := h.service.Call(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, chatsvc.ErrCallNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("call not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("call_id", id.String()).Msg("failed to get call")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, call)
}

// EndCall finishes an active call and returns its history entry.
func (h *Handler) EndCall(c *ginext.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid call id"))
		return
	}

	log, err := h.service.EndCall(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, chatsvc.ErrCallNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("call not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("call_id", id.String()).Msg("failed to end call")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, log)
}

// CallHistory returns finished calls, most recent first.
func (h *Handler) CallHistory(c *ginext.Context) {
	logs, err := h.service.CallHistory(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to list call history")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, logs)
}
