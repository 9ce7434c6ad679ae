package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/storefront/storefront-api/internal/service"
	"github.com/storefront/storefront-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation error", service.NewUserNotFoundValidation(userID), http.StatusBadRequest},
		{"wrapped validation error", fmt.Errorf("create: %w", service.NewValidationError("bad payload", nil)), http.StatusBadRequest},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"order not found", fmt.Errorf("lookup: %w", store.ErrOrderNotFound), http.StatusNotFound},
		{"notification not found", store.ErrNotificationNotFound, http.StatusNotFound},
		{"email exists", store.ErrEmailExists, http.StatusConflict},
		{"username exists", store.ErrUsernameExists, http.StatusConflict},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"infrastructure error", errors.New("connection reset"), http.StatusInternalServerError},
		{"transaction failure", store.ErrTransactionFailed, http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	userID := uuid.New()

	t.Run("validation messages pass through", func(t *testing.T) {
		err := service.NewUserNotFoundValidation(userID)
		assert.Equal(t, fmt.Sprintf("User with ID %s not found", userID), GetSafeErrorMessage(err))
	})

	t.Run("store sentinels map to fixed phrases", func(t *testing.T) {
		assert.Equal(t, "User not found", GetSafeErrorMessage(store.ErrUserNotFound))
		assert.Equal(t, "Email already exists", GetSafeErrorMessage(store.ErrEmailExists))
	})

	t.Run("internal details never leak", func(t *testing.T) {
		err := errors.New("pq: connect to db.internal:5432 refused, password=hunter2")
		msg := GetSafeErrorMessage(err)
		assert.Equal(t, "An unexpected error occurred", msg)
	})

	t.Run("nil error", func(t *testing.T) {
		assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
	})
}
