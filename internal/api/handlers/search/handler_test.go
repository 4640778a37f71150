package search

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/gwalharshu287-lang/Service-get/internal/api/dto"
	mocks "github.com/gwalharshu287-lang/Service-get/internal/mocks/api/handlers/search"
	"github.com/gwalharshu287-lang/Service-get/internal/model"
	searchsvc "github.com/gwalharshu287-lang/Service-get/internal/service/search"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MocksearchService) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMocksearchService(ctrl)
	handler := NewHandler(mockService, validator.New())
	return handler, mockService
}

func TestHandler_Search_Success(t *testing.T) {
	handler, mockService := setupHandler(t)
	query := "my ceiling fan is not working"

	bodyBytes, _ := json.Marshal(dto.SearchRequest{Query: query})
	req := httptest.NewRequest(http.MethodPost, "/search", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().Search(gomock.Any(), query).Return(searchsvc.Result{
		Pros:      []model.ProProfile{{ID: "p1", Category: model.CategoryElectrician}},
		Category:  model.CategoryElectrician,
		AIMatched: true,
	}, nil)

	handler.Search(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Search_EmptyQuery(t *testing.T) {
	handler, _ := setupHandler(t)

	bodyBytes, _ := json.Marshal(dto.SearchRequest{})
	req := httptest.NewRequest(http.MethodPost, "/search", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Search(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Search_BadBody(t *testing.T) {
	handler, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/search", bytes.NewReader([]byte("not json")))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Search(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}
