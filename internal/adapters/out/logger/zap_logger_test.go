package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suchimauz/dentist-timeslots-generator/internal/core/ports/out"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger(t *testing.T) {
	t.Run("Module And Fields", func(t *testing.T) {
		core, logs := observer.New(zap.DebugLevel)
		logger := NewFromZap(zap.New(core)).
			WithModule("TimeSlotsService").
			WithFields(out.LogFields{"clinicId": "c1", "start": 1})

		logger.Info("timeslots.generate.started", out.LogFields{"start": 2})

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, "timeslots.generate.started", entry.Message)
		assert.Equal(t, "TimeSlotsService", entry.LoggerName)
		assert.Equal(t, zapcore.InfoLevel, entry.Level)

		fields := entry.ContextMap()
		assert.Equal(t, "c1", fields["clinicId"])
		assert.EqualValues(t, 2, fields["start"])
	})

	t.Run("Unknown Module", func(t *testing.T) {
		core, logs := observer.New(zap.DebugLevel)
		NewFromZap(zap.New(core)).Warn("cache.store_failed", out.LogFields{})

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, "unknown", logs.All()[0].LoggerName)
	})

	t.Run("Level Filtering", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		logger := NewFromZap(zap.New(core))

		logger.Debug("hidden", out.LogFields{})
		logger.Error("visible", out.LogFields{})

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, "visible", logs.All()[0].Message)
	})

	t.Run("WithFields Does Not Leak", func(t *testing.T) {
		core, logs := observer.New(zap.DebugLevel)
		base := NewFromZap(zap.New(core))
		_ = base.WithFields(out.LogFields{"requestId": "r1"})

		base.Info("plain", out.LogFields{})

		require.Equal(t, 1, logs.Len())
		assert.NotContains(t, logs.All()[0].ContextMap(), "requestId")
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zap.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zap.WarnLevel, parseLevel("WARN"))
	assert.Equal(t, zap.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zap.InfoLevel, parseLevel("verbose"))
}
