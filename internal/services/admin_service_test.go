package services

import (
	"net/http"
	"testing"

	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
)

func TestUpdateJobRejectsInvertedSalaryBounds(t *testing.T) {
	t.Parallel()

	// The bounds check runs before any storage access, so no repositories
	// are needed to exercise it.
	svc := NewAdminService(nil, nil, nil, nil, nil, nil, nil, nil)

	min := 90000.0
	max := 40000.0
	err := svc.UpdateJob("admin-1", "job-1", dto.AdminUpdateJobRequest{
		SalaryMin: &min,
		SalaryMax: &max,
	})

	appErr, ok := apperrors.AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
	assert.Contains(t, appErr.Message, "salary_min")
}
