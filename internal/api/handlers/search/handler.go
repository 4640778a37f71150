package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/gwalharshu287-lang/Service-get/internal/api/dto"
	"github.com/gwalharshu287-lang/Service-get/internal/api/respond"
	searchsvc "github.com/gwalharshu287-lang/Service-get/internal/service/search"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/search/mock.go -package=mocks

type searchService interface {
	Search(ctx context.Context, query string) (searchsvc.Result, error)
}

type Handler struct {
	service   searchService
	validator *validator.Validate
}

func NewHandler(s searchService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

// Search runs a smart search: AI category classification with a plain-text
// filter fallback. Classifier failures never surface here.
func (h *Handler) Search(c *ginext.Context) {
	var req dto.SearchRequest

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

	result, err := h.service.Search(c.Request.Context(), req.Query)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("query", req.Query).Msg("search failed")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, result)
}
