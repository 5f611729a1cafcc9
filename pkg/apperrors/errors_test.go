package apperrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := StorageError(cause)

	assert.ErrorIs(t, err, cause)

	var appErr *AppError
	assert.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &appErr))
	assert.Equal(t, CodeStorageFatal, appErr.Code)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode)
}

func TestDomainFactories(t *testing.T) {
	t.Parallel()

	assert.Equal(t, http.StatusNotFound, NotFound("job", "Job not found").HTTPCode)
	assert.Equal(t, http.StatusConflict, Conflict("application", "dup").HTTPCode)
	assert.Equal(t, http.StatusForbidden, Forbidden("application", "not yours").HTTPCode)
	assert.Equal(t, http.StatusBadRequest, InvalidStatus("job", "bad").HTTPCode)
	assert.Equal(t, http.StatusUnauthorized, ErrInvalidCredentials.HTTPCode)
	assert.Equal(t, "Bad credentials", ErrInvalidCredentials.Message)
}

func TestMarshalHidesInternals(t *testing.T) {
	t.Parallel()

	err := Wrap(errors.New("pq: relation does not exist"),
		CodeStorageFatal, "storage", "Storage unavailable", http.StatusInternalServerError)

	raw, jerr := json.Marshal(err)
	assert.NoError(t, jerr)
	assert.NotContains(t, string(raw), "relation does not exist")
	assert.NotContains(t, string(raw), "500")
	assert.Contains(t, string(raw), "Storage unavailable")
}

func TestPartitionFailureCarriesTable(t *testing.T) {
	t.Parallel()

	err := PartitionFailure("jobs_2024", errors.New("timeout"))
	assert.Equal(t, CodePartitionFailure, err.Code)
	assert.Contains(t, err.Error(), "jobs_2024")
	assert.ErrorContains(t, err, "timeout")
}

func TestAsAppError(t *testing.T) {
	t.Parallel()

	appErr, ok := AsAppError(NotFound("user", "User not found"))
	assert.True(t, ok)
	assert.Equal(t, CodeNotFound, appErr.Code)

	_, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
}
