package logger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"vendor-desk.backend/pkg/logger"
)

func TestGetLoggerBeforeInitIsSafe(t *testing.T) {
	assert.NotNil(t, logger.GetLogger())
	// must not panic
	logger.Info(context.Background(), "noop")
}

func TestWithContext(t *testing.T) {
	assert.NotNil(t, logger.WithContext(nil))

	ctx := context.WithValue(context.Background(), string(logger.RequestIDKey), "req-1")
	assert.NotNil(t, logger.WithContext(ctx))

	typed := context.WithValue(context.Background(), logger.RequestIDKey, "req-2")
	assert.NotNil(t, logger.WithContext(typed))
}

func TestInitIsIdempotent(t *testing.T) {
	logger.Init("development")
	first := logger.GetLogger()
	logger.Init("production")
	assert.Same(t, first, logger.GetLogger())
}
