package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/dailyledger/backend/internal/interfaces/http/middleware"
)

func newObservedEngine(handler gin.HandlerFunc) (*gin.Engine, *observer.ObservedLogs) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.InfoLevel)
	log := zap.New(core)

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(Recovery(log))
	engine.Use(GinMiddleware(log))
	engine.GET("/ping", handler)
	return engine, logs
}

func TestGinMiddlewareLogsRequestID(t *testing.T) {
	engine, logs := newObservedEngine(func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-abc-123")
	engine.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("HTTP Request").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "req-abc-123", entries[0].ContextMap()["request_id"])
}

func TestGinMiddlewarePropagatesRequestContext(t *testing.T) {
	var ctxID string
	var ctxLogger *zap.Logger
	engine, _ := newObservedEngine(func(c *gin.Context) {
		ctxID = GetRequestID(c.Request.Context())
		ctxLogger = FromContext(c.Request.Context())
		c.String(http.StatusOK, "pong")
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-ctx-1")
	engine.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "req-ctx-1", ctxID)
	require.NotNil(t, ctxLogger)
	assert.True(t, ctxLogger.Core().Enabled(zapcore.InfoLevel), "request context carries the real logger, not a no-op")
}

func TestRecoveryLogsRequestID(t *testing.T) {
	engine, logs := newObservedEngine(func(c *gin.Context) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-panic-9")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	entries := logs.FilterMessage("Panic recovered").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "req-panic-9", entries[0].ContextMap()["request_id"])
}

func TestGetGinLoggerFallsBackToContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.InfoLevel)
	log := zap.New(core)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/ping", nil)
	c.Request = c.Request.WithContext(WithContext(c.Request.Context(), log))

	GetGinLogger(c).Info("via context")

	assert.Len(t, logs.FilterMessage("via context").All(), 1)
}
