package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/reqguard/pkg/logger"
)

type ctxKey struct{}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	return rec
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	t.Run("group", func(t *testing.T) {
		t.Parallel()
		attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
		require.Equal(t, slog.KindGroup, attr.Value.Kind())
		assert.Len(t, attr.Value.Group(), 2)
	})

	t.Run("errors skip nil", func(t *testing.T) {
		t.Parallel()
		err1, err2 := errors.New("first"), errors.New("second")
		attr := logger.Errors(err1, nil, err2)
		require.Equal(t, "errors", attr.Key)
		assert.Len(t, attr.Value.Group(), 2)
		assert.True(t, logger.Errors(nil).Equal(slog.Attr{}))
	})

	t.Run("empty values", func(t *testing.T) {
		t.Parallel()
		assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
		assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
		assert.True(t, logger.Lang("").Equal(slog.Attr{}))
	})

	t.Run("keys", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			attr slog.Attr
			key  string
		}{
			{logger.RequestID("abc"), "request_id"},
			{logger.Component("validation"), "component"},
			{logger.Method("GET"), "method"},
			{logger.Path("/users"), "path"},
			{logger.Status(400), "status"},
			{logger.Count("failed_fields", 2), "failed_fields"},
			{logger.Field("email.name"), "field"},
			{logger.Rule("length"), "rule"},
			{logger.Lang("it"), "lang"},
			{logger.Duration(time.Second), "duration"},
		}
		for _, tt := range tests {
			assert.Equal(t, tt.key, tt.attr.Key)
		}
	})
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json output with static attrs", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithAttr(slog.String("service", "api")),
		)

		log.Info("hello", logger.Component("test"))

		rec := decode(t, &buf)
		assert.Equal(t, "hello", rec["msg"])
		assert.Equal(t, "api", rec["service"])
		assert.Equal(t, "test", rec["component"])
	})

	t.Run("level by name", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithLevelName("warn"))

		log.Info("skipped")
		assert.Zero(t, buf.Len())

		log.Warn("kept")
		assert.NotZero(t, buf.Len())
	})

	t.Run("context values", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithContextValue("tenant", ctxKey{}),
		)

		ctx := context.WithValue(context.Background(), ctxKey{}, "acme")
		log.InfoContext(ctx, "scoped")

		assert.Equal(t, "acme", decode(t, &buf)["tenant"])
	})

	t.Run("environment presets", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithEnvironment("prod", "api"))

		log.Debug("hidden")
		log.Info("visible")

		rec := decode(t, &buf)
		assert.Equal(t, string(logger.Production), rec["env"])
		assert.Equal(t, "api", rec["service"])
	})

	t.Run("invalid format panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })
	})
}

func TestParseLevel(t *testing.T) {
	t.Parallel()
	assert.Equal(t, slog.LevelDebug, logger.ParseLevel("debug"))
	assert.Equal(t, slog.LevelError, logger.ParseLevel("ERROR"))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel("nope"))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel(""))
}
