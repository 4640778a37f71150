package chat

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/gwalharshu287-lang/Service-get/internal/api/dto"
	mocks "github.com/gwalharshu287-lang/Service-get/internal/mocks/api/handlers/chat"
	"github.com/gwalharshu287-lang/Service-get/internal/model"
	prorepo "github.com/gwalharshu287-lang/Service-get/internal/repository/pro"
	chatsvc "github.com/gwalharshu287-lang/Service-get/internal/service/chat"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MockchatService) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockchatService(ctrl)
	handler := NewHandler(mockService, validator.New())
	return handler, mockService
}

func testSession() model.Session {
	return model.Session{
		Token: uuid.New(),
		User:  model.User{ID: uuid.New(), Name: "Alex Johnson", Role: model.RoleClient},
	}
}

func TestHandler_Messages_Success(t *testing.T) {
	handler, mockService := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/chats/p1/messages", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "proId", Value: "p1"}}

	mockService.EXPECT().
		Messages(gomock.Any(), "p1").
		Return([]model.ChatMessage{{Type: model.MessageTypeText, Text: "Hello"}}, nil)

	handler.Messages(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Send_Success(t *testing.T) {
	handler, mockService := setupHandler(t)
	sess := testSession()

	bodyBytes, _ := json.Marshal(dto.SendMessageRequest{Type: "text", Text: "On my way"})
	req := httptest.NewRequest(http.MethodPost, "/chats/p1/messages", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "proId", Value: "p1"}}
	c.Set("session", sess)

	mockService.EXPECT().
		Send(gomock.Any(), sess.User, "p1", chatsvc.SendRequest{Type: model.MessageTypeText, Text: "On my way"}).
		Return(model.ChatMessage{Type: model.MessageTypeText, Text: "On my way"}, nil)

	handler.Send(c)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
}

func TestHandler_Send_RejectsCallType(t *testing.T) {
	handler, _ := setupHandler(t)

	// A client must not be able to forge call entries through the message
	// endpoint; only the call lifecycle produces them.
	bodyBytes, _ := json.Marshal(dto.SendMessageRequest{Type: "call", Text: "fake call"})
	req := httptest.NewRequest(http.MethodPost, "/chats/p1/messages", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "proId", Value: "p1"}}
	c.Set("session", testSession())

	handler.Send(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Send_EmptyMessage(t *testing.T) {
	handler, mockService := setupHandler(t)
	sess := testSession()

	bodyBytes, _ := json.Marshal(dto.SendMessageRequest{Type: "text"})
	req := httptest.NewRequest(http.MethodPost, "/chats/p1/messages", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "proId", Value: "p1"}}
	c.Set("session", sess)

	mockService.EXPECT().
		Send(gomock.Any(), sess.User, "p1", chatsvc.SendRequest{Type: model.MessageTypeText}).
		Return(model.ChatMessage{}, chatsvc.ErrEmptyMessage)

	handler.Send(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_StartCall_Success(t *testing.T) {
	handler, mockService := setupHandler(t)
	sess := testSession()

	bodyBytes, _ := json.Marshal(dto.StartCallRequest{ProID: "p1", Kind: "audio"})
	req := httptest.NewRequest(http.MethodPost, "/calls", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set("session", sess)

	mockService.EXPECT().
		StartCall(gomock.Any(), sess, "p1", model.CallKindAudio).
		Return(model.Call{ID: uuid.New(), ProID: "p1", State: model.CallStateCalling}, nil)

	handler.StartCall(c)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
}

func TestHandler_StartCall_BadKind(t *testing.T) {
	handler, _ := setupHandler(t)

	bodyBytes, _ := json.Marshal(dto.StartCallRequest{ProID: "p1", Kind: "hologram"})
	req := httptest.NewRequest(http.MethodPost, "/calls", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set("session", testSession())

	handler.StartCall(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_StartCall_ProNotFound(t *testing.T) {
	handler, mockService := setupHandler(t)
	sess := testSession()

	bodyBytes, _ := json.Marshal(dto.StartCallRequest{ProID: "p404", Kind: "video"})
	req := httptest.NewRequest(http.MethodPost, "/calls", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set("session", sess)

	mockService.EXPECT().
		StartCall(gomock.Any(), sess, "p404", model.CallKindVideo).
		Return(model.Call{}, prorepo.ErrProNotFound)

	handler.StartCall(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestHandler_EndCall_NotFound(t *testing.T) {
	handler, mockService := setupHandler(t)
	id := uuid.New()

	req := httptest.NewRequest(http.MethodPost, "/calls/"+id.String()+"/end", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	c.Set("session", testSession())

	mockService.EXPECT().
		EndCall(gomock.Any(), id).
		Return(model.CallLog{}, chatsvc.ErrCallNotFound)

	handler.EndCall(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestHandler_CallHistory_Success(t *testing.T) {
	handler, mockService := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/calls/history", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set("session", testSession())

	mockService.EXPECT().
		CallHistory(gomock.Any()).
		Return([]model.CallLog{{Kind: model.CallKindAudio, Duration: "42s"}}, nil)

	handler.CallHistory(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}
