package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundSentinels(t *testing.T) {
	// Entity-specific sentinels are all members of the ErrNotFound family.
	for _, err := range []error{ErrUserNotFound, ErrOrderNotFound, ErrNotificationNotFound} {
		assert.True(t, errors.Is(err, ErrNotFound), "expected %v to match ErrNotFound", err)
		assert.True(t, IsNotFoundError(err))
	}

	assert.False(t, IsNotFoundError(ErrDuplicate))
	assert.False(t, IsNotFoundError(nil))

	// Wrapping preserves the family.
	wrapped := fmt.Errorf("lookup failed: %w", ErrOrderNotFound)
	assert.True(t, IsNotFoundError(wrapped))
}

func TestDuplicateSentinels(t *testing.T) {
	for _, err := range []error{ErrEmailExists, ErrUsernameExists} {
		assert.True(t, errors.Is(err, ErrDuplicate), "expected %v to match ErrDuplicate", err)
		assert.True(t, IsDuplicateError(err))
	}

	assert.False(t, IsDuplicateError(ErrNotFound))
}

func TestStoreError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewStoreError("user", "create", "insert failed", cause)

	assert.Equal(t, "create operation on user failed: insert failed: connection reset", err.Error())
	assert.True(t, errors.Is(err, cause))

	var storeErr *StoreError
	assert.True(t, errors.As(err, &storeErr))
	assert.Equal(t, "user", storeErr.Entity)

	// Without a wrapped cause the message stands alone.
	bare := NewStoreError("order", "update", "no rows affected", nil)
	assert.Equal(t, "update operation on order failed: no rows affected", bare.Error())
}
