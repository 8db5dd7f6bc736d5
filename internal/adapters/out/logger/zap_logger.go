package logger

import (
	"strings"
	"time"

	"github.com/suchimauz/dentist-timeslots-generator/internal/core/ports/out"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ZapLogger struct {
	logger        *zap.Logger
	defaultFields out.LogFields
	module        string
}

type Options struct {
	Level    string
	JSON     bool
	Location *time.Location
}

func NewZapLogger(opts Options) (*ZapLogger, error) {
	location := opts.Location
	if location == nil {
		location = time.UTC
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Encoding = "json"
	if !opts.JSON {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Encoding = "console"
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zapConfig.Level = zap.NewAtomicLevelAt(parseLevel(opts.Level))
	zapConfig.EncoderConfig.TimeKey = "timestamp"
	zapConfig.EncoderConfig.MessageKey = "event"
	zapConfig.EncoderConfig.NameKey = "module"
	// Используем таймзону для форматирования времени
	zapConfig.EncoderConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.In(location).Format("2006-01-02 15:04:05.000"))
	}

	zapLogger, err := zapConfig.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}

	return NewFromZap(zapLogger), nil
}

func NewFromZap(zapLogger *zap.Logger) *ZapLogger {
	return &ZapLogger{
		logger:        zapLogger,
		defaultFields: make(out.LogFields),
	}
}

func NewNopLogger() *ZapLogger {
	return NewFromZap(zap.NewNop())
}

func parseLevel(level string) zapcore.Level {
	switch out.LogLevel(strings.ToUpper(level)) {
	case out.LogLevelDebug:
		return zap.DebugLevel
	case out.LogLevelWarn:
		return zap.WarnLevel
	case out.LogLevelError:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

func (l *ZapLogger) WithFields(fields out.LogFields) out.LoggerPort {
	newLogger := &ZapLogger{
		logger:        l.logger,
		defaultFields: make(out.LogFields, len(l.defaultFields)+len(fields)),
		module:        l.module,
	}

	// Копируем существующие поля
	for k, v := range l.defaultFields {
		newLogger.defaultFields[k] = v
	}

	// Добавляем новые поля
	for k, v := range fields {
		newLogger.defaultFields[k] = v
	}

	return newLogger
}

func (l *ZapLogger) WithModule(module string) out.LoggerPort {
	return &ZapLogger{
		logger:        l.logger,
		defaultFields: l.defaultFields,
		module:        module,
	}
}

func (l *ZapLogger) Debug(event string, fields out.LogFields) {
	l.log(zap.DebugLevel, event, fields)
}

func (l *ZapLogger) Info(event string, fields out.LogFields) {
	l.log(zap.InfoLevel, event, fields)
}

func (l *ZapLogger) Warn(event string, fields out.LogFields) {
	l.log(zap.WarnLevel, event, fields)
}

func (l *ZapLogger) Error(event string, fields out.LogFields) {
	l.log(zap.ErrorLevel, event, fields)
}

func (l *ZapLogger) Sync() error {
	return l.logger.Sync()
}

func (l *ZapLogger) log(level zapcore.Level, event string, fields out.LogFields) {
	if !l.logger.Core().Enabled(level) {
		return
	}

	module := l.module
	if module == "" {
		module = "unknown"
	}

	zapFields := make([]zap.Field, 0, len(l.defaultFields)+len(fields))
	for k, v := range l.defaultFields {
		if _, overridden := fields[k]; overridden {
			continue
		}
		zapFields = append(zapFields, zap.Any(k, v))
	}
	for k, v := range fields {
		zapFields = append(zapFields, zap.Any(k, v))
	}

	if entry := l.logger.Named(module).Check(level, event); entry != nil {
		entry.Write(zapFields...)
	}
}
