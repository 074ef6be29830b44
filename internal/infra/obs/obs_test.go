package obs

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	gin "github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestIDMiddleware(t *testing.T) {
	t.Run("honors an incoming id", func(t *testing.T) {
		router := gin.New()
		router.Use(Middleware{}.RequestID())
		var seen string
		router.GET("/", func(c *gin.Context) {
			seen = RequestIDFromContext(c.Request.Context())
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "req-abc")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, "req-abc", seen)
		assert.Equal(t, "req-abc", rec.Header().Get("X-Request-ID"))
	})

	t.Run("mints one when absent", func(t *testing.T) {
		router := gin.New()
		router.Use(Middleware{}.RequestID())
		var seen string
		router.GET("/", func(c *gin.Context) {
			seen = RequestIDFromContext(c.Request.Context())
			c.Status(http.StatusOK)
		})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get("X-Request-ID"))
	})
}

func TestRequestIDFromContext(t *testing.T) {
	assert.Empty(t, RequestIDFromContext(context.Background()))
	ctx := WithRequestID(context.Background(), "req-1")
	assert.Equal(t, "req-1", RequestIDFromContext(ctx))
}

func TestReadyz(t *testing.T) {
	newRouter := func(ready func() error) *gin.Engine {
		router := gin.New()
		h := HealthHandlers{Ready: ready}
		router.GET("/livez", h.Livez)
		router.GET("/readyz", h.Readyz)
		return router
	}

	t.Run("ready", func(t *testing.T) {
		router := newRouter(func() error { return nil })
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unready store surfaces as 503", func(t *testing.T) {
		router := newRouter(func() error { return errors.New("no default season configured") })
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("liveness is unconditional", func(t *testing.T) {
		router := newRouter(func() error { return errors.New("boom") })
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/livez", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
