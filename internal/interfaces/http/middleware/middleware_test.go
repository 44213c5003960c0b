package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"vendor-desk.backend/internal/interfaces/http/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestIDMiddleware())

	var fromGin, fromCtx string
	r.GET("/", func(c *gin.Context) {
		fromGin = c.GetString(middleware.RequestIDKey)
		fromCtx, _ = c.Request.Context().Value("request_id").(string)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotEmpty(t, fromGin)
	assert.Equal(t, fromGin, fromCtx)
}

func TestRequestIDMiddleware_KeepsIncomingHeader(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestIDMiddleware())

	var got string
	r.GET("/", func(c *gin.Context) {
		got = c.GetString(middleware.RequestIDKey)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "caller-chosen")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "caller-chosen", got)
}

func TestLoggerAndMetricsMiddlewarePassThrough(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}
