package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	t.Run("collects messages per field", func(t *testing.T) {
		verr := NewValidationError()
		verr.Add("name", "The name field is required.")
		verr.Add("reference", "The reference field is required.")
		verr.Add("name", "The name field must be at least 2 characters.")

		assert.True(t, verr.Has("name"))
		assert.False(t, verr.Has("description"))
		assert.Len(t, verr.Fields["name"], 2)
		assert.Equal(t,
			"validation failed: name: The name field is required.; The name field must be at least 2 characters., reference: The reference field is required.",
			verr.Error())
	})

	t.Run("OrNil of empty error is untyped nil", func(t *testing.T) {
		var err error = NewValidationError().OrNil()
		assert.Nil(t, err)

		var nilErr *ValidationError
		assert.NoError(t, nilErr.OrNil())
	})

	t.Run("merge", func(t *testing.T) {
		verr := FieldError("name", "a")
		verr.Merge(FieldError("name", "b"))
		verr.Merge(nil)
		assert.Equal(t, []string{"a", "b"}, verr.Fields["name"])
	})

	t.Run("zero value is usable", func(t *testing.T) {
		var verr ValidationError
		verr.Add("x", "y")
		assert.True(t, verr.Has("x"))
	})
}

func TestPersistenceError(t *testing.T) {
	cause := errors.New("connection reset")
	err := fmt.Errorf("service: %w", NewPersistenceError("delete customer", cause))

	var perr *PersistenceError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "delete customer", perr.Op)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "delete customer: connection reset", perr.Error())
}

func TestDomainErrorSentinels(t *testing.T) {
	wrapped := fmt.Errorf("find: %w", ErrNotFound)
	assert.ErrorIs(t, wrapped, ErrNotFound)

	var derr *DomainError
	require.True(t, errors.As(wrapped, &derr))
	assert.Equal(t, "NOT_FOUND", derr.Code)
}
