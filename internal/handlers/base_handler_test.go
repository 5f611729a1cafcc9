package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"jobboard_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext(t *testing.T, id string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "id", Value: id}}
	return c, rec
}

func TestPathIDAcceptsUUID(t *testing.T) {
	h := NewBaseHandler(validator.New())
	c, rec := testContext(t, "7d3f9c2a-5b1e-4f6d-8a9b-0c1d2e3f4a5b")

	id, ok := h.PathID(c, "id")
	assert.True(t, ok)
	assert.Equal(t, "7d3f9c2a-5b1e-4f6d-8a9b-0c1d2e3f4a5b", id)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPathIDRejectsMalformedID(t *testing.T) {
	h := NewBaseHandler(validator.New())

	for _, bad := range []string{"", "not-a-uuid", "12345", "7d3f9c2a-5b1e"} {
		c, rec := testContext(t, bad)

		_, ok := h.PathID(c, "id")
		// A malformed ID is a 400 at the edge, never a storage error.
		assert.False(t, ok, "expected %q to be rejected", bad)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid ID format")
	}
}
