package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger_Environments(t *testing.T) {
	for _, env := range []string{"prod", "local", "dev", "docker"} {
		l, err := NewLogger(env, "")
		require.NoError(t, err, env)
		assert.NotNil(t, l)
	}
}

func TestNewLogger_UnknownEnv(t *testing.T) {
	_, err := NewLogger("staging", "")
	assert.ErrorContains(t, err, "unknown environment")
}

func TestNewLogger_LevelOverride(t *testing.T) {
	l, err := NewLogger("prod", "warn")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))

	_, err = NewLogger("prod", "loud")
	assert.ErrorContains(t, err, "invalid log level")
}

func TestFromContext_DefaultsToNop(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
	assert.False(t, l.Core().Enabled(zapcore.ErrorLevel))
}

func TestWith_AddsFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := WithLogger(context.Background(), zap.New(core).With(zap.String("request_id", "r1")))

	ctx = With(ctx, zap.String("language", "te"))
	FromContext(ctx).Info("answered")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "r1", fields["request_id"])
	assert.Equal(t, "te", fields["language"])
}

func TestWith_NoStoredLogger(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, ctx, With(ctx, zap.String("k", "v")))
}
