package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/storefront/storefront-api/internal/domain"
	"github.com/storefront/storefront-api/internal/store"
)

func userRouter(svc *MockUserService) http.Handler {
	h := NewUserHandler(svc)
	r := chi.NewRouter()
	r.Post("/users", h.CreateUser)
	r.Get("/users", h.ListUsers)
	r.Get("/users/{id}", h.GetUser)
	r.Delete("/users/{id}", h.DeleteUser)
	return r
}

func TestUserHandler_CreateUser(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := &MockUserService{}
		user := &domain.User{
			ID:        uuid.New(),
			Username:  "alice",
			Email:     "alice@example.com",
			CreatedAt: time.Now().UTC(),
		}
		svc.On("CreateUser", mock.Anything, "alice", "alice@example.com").Return(user, nil)

		body := bytes.NewBufferString(`{"username":"alice","email":"alice@example.com"}`)
		req := httptest.NewRequest(http.MethodPost, "/users", body)
		rec := httptest.NewRecorder()
		userRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp UserResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, user.ID.String(), resp.ID)
		assert.Equal(t, "alice", resp.Username)
	})

	t.Run("invalid email rejected before the service runs", func(t *testing.T) {
		svc := &MockUserService{}

		body := bytes.NewBufferString(`{"username":"alice","email":"nope"}`)
		req := httptest.NewRequest(http.MethodPost, "/users", body)
		rec := httptest.NewRecorder()
		userRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("malformed body", func(t *testing.T) {
		svc := &MockUserService{}

		req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString(`{`))
		rec := httptest.NewRecorder()
		userRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("duplicate email maps to conflict", func(t *testing.T) {
		svc := &MockUserService{}
		svc.On("CreateUser", mock.Anything, "alice", "alice@example.com").
			Return(nil, store.ErrEmailExists)

		body := bytes.NewBufferString(`{"username":"alice","email":"alice@example.com"}`)
		req := httptest.NewRequest(http.MethodPost, "/users", body)
		rec := httptest.NewRecorder()
		userRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusConflict, rec.Code)
		var resp map[string]any
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "Email already exists", resp["error"])
	})
}

func TestUserHandler_GetUser(t *testing.T) {
	userID := uuid.New()

	t.Run("found", func(t *testing.T) {
		svc := &MockUserService{}
		svc.On("GetUser", mock.Anything, userID).
			Return(&domain.User{ID: userID, Username: "alice", Email: "alice@example.com"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/users/"+userID.String(), nil)
		rec := httptest.NewRecorder()
		userRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("absent maps to 404", func(t *testing.T) {
		svc := &MockUserService{}
		svc.On("GetUser", mock.Anything, userID).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/users/"+userID.String(), nil)
		rec := httptest.NewRecorder()
		userRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid id maps to 400", func(t *testing.T) {
		svc := &MockUserService{}

		req := httptest.NewRequest(http.MethodGet, "/users/not-a-uuid", nil)
		rec := httptest.NewRecorder()
		userRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "GetUser", mock.Anything, mock.Anything)
	})
}

func TestUserHandler_ListUsers(t *testing.T) {
	svc := &MockUserService{}
	svc.On("GetAllUsers", mock.Anything).Return([]*domain.User{
		{ID: uuid.New(), Username: "alice", Email: "alice@example.com"},
		{ID: uuid.New(), Username: "bob", Email: "bob@example.com"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	userRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp []UserResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp, 2)
}

func TestUserHandler_DeleteUser(t *testing.T) {
	userID := uuid.New()

	t.Run("deleted", func(t *testing.T) {
		svc := &MockUserService{}
		svc.On("DeleteUser", mock.Anything, userID).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/users/"+userID.String(), nil)
		rec := httptest.NewRecorder()
		userRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("absent maps to 404", func(t *testing.T) {
		svc := &MockUserService{}
		svc.On("DeleteUser", mock.Anything, userID).Return(store.ErrUserNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/users/"+userID.String(), nil)
		rec := httptest.NewRecorder()
		userRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
