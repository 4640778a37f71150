package pro

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
	mocks "github.com/gwalharshu287-lang/Service-get/internal/mocks/api/handlers/pro"
	"github.com/gwalharshu287-lang/Service-get/internal/model"
	prorepo "github.com/gwalharshu287-lang/Service-get/internal/repository/pro"
	prosvc "github.com/gwalharshu287-lang/Service-get/internal/service/pro"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MockproService) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockproService(ctrl)
	handler := NewHandler(mockService, validator.New())
	return handler, mockService
}

func TestHandler_List_Success(t *testing.T) {
	handler, mockService := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/pros", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		List(gomock.Any()).
		Return([]model.ProProfile{{ID: "p1", Name: "Robert Fox"}}, nil)

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Get_NotFound(t *testing.T) {
	handler, mockService := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/pros/p404", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "p404"}}

	mockService.EXPECT().
		Get(gomock.Any(), "p404").
		Return(model.ProProfile{}, prorepo.ErrProNotFound)

	handler.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestHandler_Onboard_Success(t *testing.T) {
	handler, mockService := setupHandler(t)

	reqBody := dto.OnboardProRequest{
		Name:       "Sam Carter",
		Category:   "Plumber",
		HourlyRate: 60,
	}
	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/pros", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		Onboard(gomock.Any(), prosvc.OnboardRequest{
			Name:       "Sam Carter",
			Category:   model.CategoryPlumber,
			HourlyRate: 60,
		}).
		Return(model.ProProfile{Name: "Sam Carter", Category: model.CategoryPlumber}, nil)

	handler.Onboard(c)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
}

func TestHandler_Onboard_ValidationError(t *testing.T) {
	handler, mockService := setupHandler(t)

	reqBody := dto.OnboardProRequest{
		Name:       "  ",
		Category:   "Plumber",
		HourlyRate: 60,
	}
	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/pros", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		Onboard(gomock.Any(), gomock.Any()).
		Return(model.ProProfile{}, prosvc.ErrValidation)

	handler.Onboard(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_DraftBio_Success(t *testing.T) {
	handler, mockService := setupHandler(t)

	reqBody := dto.DraftBioRequest{Profession: "Electrician", Traits: []string{"Punctual"}}
	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/pros/bio", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		DraftBio(gomock.Any(), "Electrician", []string{"Punctual"}).
		Return("Punctual electrician serving Bandra West.")

	handler.DraftBio(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.Contains(t, w.Body.String(), "Punctual electrician")
}
