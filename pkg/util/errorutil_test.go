package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToDomainError_PassesThrough(t *testing.T) {
	err := NewConflict("User already exists")

	domainErr := ToDomainError(err)
	assert.Equal(t, "CONFLICT", domainErr.Code)
	assert.Equal(t, http.StatusBadRequest, domainErr.HTTPStatus)
	assert.Equal(t, "User already exists", domainErr.Message)
}

func TestToDomainError_UnwrapsWrappedErrors(t *testing.T) {
	inner := NewUnauthorized("Invalid password")
	wrapped := fmt.Errorf("login: %w", inner)

	domainErr := ToDomainError(wrapped)
	assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
	assert.Equal(t, http.StatusUnauthorized, domainErr.HTTPStatus)
}

func TestToDomainError_GenericBecomesInternal(t *testing.T) {
	domainErr := ToDomainError(errors.New("connection refused"))
	assert.Equal(t, "INTERNAL_ERROR", domainErr.Code)
	assert.Equal(t, http.StatusInternalServerError, domainErr.HTTPStatus)
	assert.Equal(t, "internal server error", domainErr.Message)
}

func TestStoreError_KeepsCauseOutOfClientMessage(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := NewStoreError("Failed to fetch issues", cause)

	domainErr := ToDomainError(err)
	assert.Equal(t, "Failed to fetch issues", domainErr.Message)
	assert.ErrorIs(t, domainErr, cause)
}
