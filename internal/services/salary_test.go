package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSalaryRange(t *testing.T) {
	t.Parallel()

	min := 30000.0
	max := 55000.0

	assert.Equal(t, "₹30000 - ₹55000", FormatSalaryRange(&min, &max))
	assert.Equal(t, "₹30000 - ₹0", FormatSalaryRange(&min, nil))
	assert.Equal(t, "₹0 - ₹55000", FormatSalaryRange(nil, &max))
	assert.Equal(t, "Not disclosed", FormatSalaryRange(nil, nil))

	fractional := 1250.5
	assert.Equal(t, "₹1250.5 - ₹1250.5", FormatSalaryRange(&fractional, &fractional))
}
