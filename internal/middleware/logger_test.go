package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRig := func() (*gin.Engine, *observer.ObservedLogs) {
		core, logs := observer.New(zap.InfoLevel)
		r := gin.New()
		r.Use(Logger(zap.New(core)))
		r.GET("/books", func(c *gin.Context) { c.Status(http.StatusOK) })
		r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })
		return r, logs
	}

	t.Run("logs method, path with query and status", func(t *testing.T) {
		r, logs := newRig()
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books?page=2", nil))

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, zap.InfoLevel, entry.Level)
		assert.Equal(t, "request completed", entry.Message)
		fields := entry.ContextMap()
		assert.Equal(t, "GET", fields["method"])
		assert.Equal(t, "/books?page=2", fields["path"])
		assert.Equal(t, int64(http.StatusOK), fields["status"])
	})

	t.Run("server errors log at error level", func(t *testing.T) {
		r, logs := newRig()
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, zap.ErrorLevel, logs.All()[0].Level)
	})
}
