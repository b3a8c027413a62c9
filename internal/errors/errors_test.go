package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "calendar"}
		assert.Equal(t, "calendar not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "calendar"}
		err2 := &NotFoundError{Entity: "calendar"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "calendar"}
		err2 := &NotFoundError{Entity: "reservation"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrCalendarNotFound, ErrCalendarNotFound))
		assert.False(t, errors.Is(ErrCalendarNotFound, ErrOrganizationNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrReservationNotFound))
		assert.False(t, IsNotFound(ErrUserNameExists))
	})

	t.Run("IsNotFound sees through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("loading page: %w", ErrOrganizationNotFound)
		assert.True(t, IsNotFound(wrapped))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "user", Context: "with this user name"}
		assert.Equal(t, "user already exists with this user name", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "user"}
		assert.Equal(t, "user already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		assert.True(t, errors.Is(ErrUserNameExists, ErrEmailExists))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrUserNameExists))
		assert.True(t, IsAlreadyExists(ErrEmailExists))
		assert.False(t, IsAlreadyExists(ErrUserNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "name", Message: "is required"}
		assert.Equal(t, "validation error: name - is required", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "is required"}
		assert.Equal(t, "validation error: is required", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("name", "is required")
		assert.True(t, IsValidation(err))
		assert.True(t, IsValidation(ErrInvalidPaginationParams))
		assert.True(t, IsValidation(ErrInvalidTimeRange))
		assert.False(t, IsValidation(ErrCalendarNotFound))
	})
}

func TestAuthenticationError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		assert.Equal(t, "invalid user name or password", ErrInvalidCredentials.Error())
	})

	t.Run("IsAuthentication helper", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrInvalidCredentials))
		assert.True(t, IsAuthentication(ErrNoAuthenticatedUser))
		assert.False(t, IsAuthentication(ErrTenantMismatch))
	})
}

func TestAuthorizationError(t *testing.T) {
	t.Run("IsAuthorization helper", func(t *testing.T) {
		assert.True(t, IsAuthorization(ErrTenantMismatch))
		assert.False(t, IsAuthorization(ErrInvalidCredentials))
		assert.False(t, IsAuthorization(ErrCalendarNotFound))
	})

	t.Run("IsAuthorization sees through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("guard: %w", ErrTenantMismatch)
		assert.True(t, IsAuthorization(wrapped))
	})
}

func TestConstructors(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("booking")
		assert.Equal(t, "booking not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("calendar", "in this organization")
		assert.Equal(t, "calendar already exists in this organization", err.Error())
		assert.True(t, IsAlreadyExists(err))
	})

	t.Run("NewAuthenticationError", func(t *testing.T) {
		err := NewAuthenticationError("token expired")
		assert.True(t, IsAuthentication(err))
	})

	t.Run("NewAuthorizationError", func(t *testing.T) {
		err := NewAuthorizationError("forbidden")
		assert.True(t, IsAuthorization(err))
	})
}
