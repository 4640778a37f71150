package pro

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/gwalharshu287-lang/Service-get/internal/api/dto"
	"github.com/gwalharshu287-lang/Service-get/internal/api/respond"
	"github.com/gwalharshu287-lang/Service-get/internal/model"
	prorepo "github.com/gwalharshu287-lang/Service-get/internal/repository/pro"
	prosvc "github.com/gwalharshu287-lang/Service-get/internal/service/pro"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/pro/mock.go -package=mocks

type proService interface {
	List(ctx context.Context) ([]model.ProProfile, error)
	Get(ctx context.Context, id string) (model.ProProfile, error)
	Onboard(ctx context.Context, req prosvc.OnboardRequest) (model.ProProfile, error)
	DraftBio(ctx context.Context, profession string, traits []string) string
}

type Handler struct {
	service   proService
	validator *validator.Validate
}

func NewHandler(s proService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

// List returns the professional directory, newest profiles first.
func (h *Handler) List(c *ginext.Context) {
	pros, err := h.service.List(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to list professionals")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, pros)
}

// Get returns one profile by id.
func (h *Handler) Get(c *ginext.Context) {
	id := c.Param("id")
	if id == "" {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing professional id"))
		return
	}

	p, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, prorepo.ErrProNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("professional not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("pro_id", id).Msg("failed to get professional")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, p)
}

// Onboard registers a new professional profile.
func (h *Handler) Onboard(c *ginext.Context) {
	var req dto.OnboardProRequest

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

	p, err := h.service.Onboard(c.Request.Context(), prosvc.OnboardRequest{
		Name:        req.Name,
		Category:    model.ParseCategory(req.Category),
		Description: req.Description,
		HourlyRate:  req.HourlyRate,
		Experience:  req.Experience,
		Mobile:      req.Mobile,
		Address:     req.Address,
		Location:    req.Location,
		PhotoCount:  req.PhotoCount,
	})
	if err != nil {
		if errors.Is(err, prosvc.ErrValidation) {
			respond.Fail(c.Writer, http.StatusBadRequest, err)
			return
		}

		zlog.Logger.Error().Err(err).Str("name", req.Name).Msg("failed to onboard professional")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, p)
}

// DraftBio returns an AI-drafted bio, or the fixed fallback when the
// generator is unavailable. It never fails.
func (h *Handler) DraftBio(c *ginext.Context) {
	var req dto.DraftBioRequest

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

	bio := h.service.DraftBio(c.Request.Context(), req.Profession, req.Traits)

	respond.OK(c.Writer, bio)
}
