//go:build unit

package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"travel-booking/internal/handler/httperr"
	"travel-booking/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setup := func() (*gin.Engine, *bytes.Buffer, *string) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		var seen string
		r := gin.New()
		r.Use(middleware.RequestLogger(logger))
		r.GET("/api/payments/verify", func(c *gin.Context) {
			seen = c.GetString(httperr.RequestIDKey)
			c.Status(http.StatusNotFound)
		})
		return r, &buf, &seen
	}

	t.Run("reuses inbound request id", func(t *testing.T) {
		r, buf, seen := setup()
		req := httptest.NewRequest(http.MethodGet, "/api/payments/verify?tx_ref=BK-1-ABCDEF12", nil)
		req.Header.Set(middleware.RequestIDHeader, "cb-42")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, "cb-42", *seen)
		assert.Equal(t, "cb-42", rec.Header().Get(middleware.RequestIDHeader))
		out := buf.String()
		assert.Contains(t, out, "tx_ref=BK-1-ABCDEF12")
		assert.Contains(t, out, "status_code=404")
		assert.Contains(t, out, "level=WARN")
	})

	t.Run("generates request id", func(t *testing.T) {
		r, _, seen := setup()
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/payments/verify", nil))

		_, err := uuid.Parse(*seen)
		require.NoError(t, err)
		assert.Equal(t, *seen, rec.Header().Get(middleware.RequestIDHeader))
	})
}
