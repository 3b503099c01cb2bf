//go:build unit

package httperr_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel-booking/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbortWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	cause := errors.New("no rooms")
	httperr.AbortWithError(c, http.StatusConflict, cause, "No rooms available for selected dates")

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":{"message":"No rooms available for selected dates"}}`, rec.Body.String())

	require.Len(t, c.Errors, 1)
	assert.Same(t, cause, c.Errors[0].Err)
	resp, ok := httperr.FromError(c.Errors[0])
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, resp.Status)
}

func TestAbortWithError_NilPanics(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Panics(t, func() {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Invalid request")
	})
}

func TestFromError(t *testing.T) {
	t.Run("private errors carry no envelope", func(t *testing.T) {
		_, ok := httperr.FromError(&gin.Error{Err: errors.New("x"), Type: gin.ErrorTypePrivate, Meta: httperr.Internal()})
		assert.False(t, ok)
	})

	t.Run("nil", func(t *testing.T) {
		_, ok := httperr.FromError(nil)
		assert.False(t, ok)
	})
}

func TestInternal_Envelope(t *testing.T) {
	raw, err := json.Marshal(httperr.Internal())
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":{"message":"Internal server error"}}`, string(raw))
}
