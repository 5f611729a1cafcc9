package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=worker employer admin"`
	Name  string `json:"name" validate:"omitempty,max=5"`
}

func TestValidatePasses(t *testing.T) {
	t.Parallel()

	v := New()
	err := v.Validate(sampleRequest{Email: "a@b.com", Role: "worker"})
	assert.NoError(t, err)
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	t.Parallel()

	v := New()
	err := v.Validate(sampleRequest{Email: "not-an-email", Role: "superuser", Name: "toolongname"})
	assert.Error(t, err)

	vErr, ok := err.(*ValidationError)
	assert.True(t, ok)
	assert.Contains(t, vErr.Errors, "email")
	assert.Contains(t, vErr.Errors, "role")
	assert.Contains(t, vErr.Errors, "name")
	assert.Equal(t, "must be a valid email address", vErr.Errors["email"])
	assert.Equal(t, "must be one of: worker employer admin", vErr.Errors["role"])
}

func TestValidationErrorMessage(t *testing.T) {
	t.Parallel()

	err := &ValidationError{Errors: map[string]string{"email": "is required"}}
	assert.Contains(t, err.Error(), "email")
	assert.Contains(t, err.Error(), "is required")
}
