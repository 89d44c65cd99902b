package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundError(t *testing.T) {
	t.Parallel()

	err := NewNotFoundError("quote", "42")

	assert.EqualError(t, err, `quote with id "42" not found`)
	assert.True(t, IsNotFound(err))
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, IsConflict(err))

	var typed *NotFoundError
	require.ErrorAs(t, err, &typed)
	assert.Equal(t, "quote", typed.Entity)
	assert.Equal(t, "42", typed.ID)
}

func TestNotFoundErrorWithoutID(t *testing.T) {
	t.Parallel()

	err := NewNotFoundError("voter", "")

	assert.EqualError(t, err, "voter not found")
}

func TestConflictError(t *testing.T) {
	t.Parallel()

	err := NewConflictError("vote", "retries exhausted")

	assert.EqualError(t, err, "vote conflict: retries exhausted")
	assert.True(t, IsConflict(err))
	assert.False(t, IsValidation(err))
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	err := NewValidationError("value", "must be -1, 0, or 1")

	assert.EqualError(t, err, "validation failed for value: must be -1, 0, or 1")
	assert.True(t, IsValidation(err))

	bare := NewValidationError("", "text required")
	assert.EqualError(t, bare, "validation failed: text required")
}

func TestUnavailableError(t *testing.T) {
	t.Parallel()

	err := NewUnavailableError("store", "database locked")

	assert.EqualError(t, err, "store unavailable: database locked")
	assert.True(t, IsUnavailable(err))

	bare := NewUnavailableError("store", "")
	assert.EqualError(t, bare, "store unavailable")
}

func TestErrorWrappingSurvivesFmt(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("casting vote: %w", NewNotFoundError("quote", "9"))

	assert.True(t, IsNotFound(err))

	var typed *NotFoundError
	assert.ErrorAs(t, err, &typed)
}

func TestIsForbidden(t *testing.T) {
	t.Parallel()

	assert.True(t, IsForbidden(ErrForbidden))
	assert.True(t, IsForbidden(fmt.Errorf("deleting quote: %w", ErrForbidden)))
	assert.False(t, IsForbidden(ErrNotFound))
}
