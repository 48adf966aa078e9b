package logging

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	prev := globalLogger
	globalLogger = zap.New(core)
	t.Cleanup(func() { globalLogger = prev })
	return logs
}

func TestInitAndSetLevel(t *testing.T) {
	require.NoError(t, Init(Config{Level: "error", Format: "json"}))
	assert.Equal(t, zapcore.ErrorLevel, globalLevel.Level())

	SetLevel("debug")
	assert.Equal(t, zapcore.DebugLevel, globalLevel.Level())

	SetLevel("nonsense")
	assert.Equal(t, zapcore.DebugLevel, globalLevel.Level(), "invalid level is ignored")
}

func TestInitUnknownLevelFallsBackToWarn(t *testing.T) {
	require.NoError(t, Init(Config{Level: "loud", Format: "console"}))
	assert.Equal(t, zapcore.WarnLevel, globalLevel.Level())
}

func TestWithRequestID(t *testing.T) {
	logs := observe(t)
	ctx := WithRequestID(context.Background(), "abc")
	WithContext(ctx).Info("hello")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "abc", logs.All()[0].ContextMap()["request_id"])
}

func TestMiddlewareLogsRequest(t *testing.T) {
	logs := observe(t)
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("tea"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/analysis", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	entries := logs.FilterMessage("request completed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/api/analysis", fields["path"])
	assert.Equal(t, int64(http.StatusTeapot), fields["status"])
	assert.Equal(t, int64(3), fields["size"])
}
