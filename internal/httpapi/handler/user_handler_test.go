package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"newshub/internal/httpapi/apperr"
	"newshub/internal/httpapi/handler"
	"newshub/internal/httpapi/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func stringPtr(s string) *string { return &s }

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func setupUserRouter(mockService *MockUserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewUserHandler(mockService)
	h.RegisterRoutes(r.Group("/api"))
	return r
}

func TestUserHandler_List(t *testing.T) {
	mockService := new(MockUserService)
	r := setupUserRouter(mockService)

	expected := []models.User{
		{Username: "butter_bridge", Name: "jonny", AvatarURL: stringPtr("https://example.com/a.jpg")},
		{Username: "lurker", Name: "do_nothing"},
	}
	mockService.On("GetAll", mock.Anything).Return(expected, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/users", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]any
	json.Unmarshal(w.Body.Bytes(), &response)
	users := response["users"].([]any)
	assert.Len(t, users, 2)

	first := users[0].(map[string]any)
	assert.Equal(t, "butter_bridge", first["username"])
	assert.Equal(t, "jonny", first["name"])
}

func TestUserHandler_GetByUsername(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockUserService)
		r := setupUserRouter(mockService)

		expected := &models.User{Username: "butter_bridge", Name: "jonny"}
		mockService.On("GetByUsername", mock.Anything, "butter_bridge").Return(expected, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/users/butter_bridge", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]any
		json.Unmarshal(w.Body.Bytes(), &response)
		user := response["user"].(map[string]any)
		assert.Equal(t, "butter_bridge", user["username"])
	})

	t.Run("NotFound", func(t *testing.T) {
		mockService := new(MockUserService)
		r := setupUserRouter(mockService)

		mockService.On("GetByUsername", mock.Anything, "notauser").
			Return(nil, apperr.NotFound("User not found")).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/users/notauser", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		var response map[string]any
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Equal(t, "User not found", response["msg"])
	})
}
