package log

import (
	"context"

	"github.com/on-the-ground/fossen_go/internal/handlers"
	"github.com/on-the-ground/fossen_go/shared/helper"
	"go.uber.org/zap"
)

// LogLevel defines the severity level for log messages.
type LogLevel string

const (
	// LogInfo is used for general informational messages.
	LogInfo LogLevel = "info"

	// LogWarn is used for potentially harmful situations.
	LogWarn LogLevel = "warn"

	// LogError is used for error events that might still allow the application to continue running.
	LogError LogLevel = "error"

	// LogDebug is used for debugging messages with detailed internal information.
	LogDebug LogLevel = "debug"
)

// LogPayload is the payload structure for the log handler.
// It contains the log level, message string, and optional structured fields.
type LogPayload struct {
	Level   LogLevel
	Message string
	Fields  map[string]interface{}
}

type handlerKey struct{}

// WithZapLogHandler registers a fire-and-forget log handler backed by a zap.Logger.
// Payloads are written by a single worker goroutine in the order they were sent.
// The teardown function flushes buffered payloads, syncs the logger and returns
// the context the handler was registered on.
func WithZapLogHandler(
	ctx context.Context,
	bufferSize int,
	logger *zap.Logger,
) (context.Context, func() context.Context) {
	handler := handlers.NewFireAndForgetHandler(
		ctx,
		bufferSize,
		func(ctx context.Context, payload LogPayload) {
			fields := make([]zap.Field, 0, len(payload.Fields))
			for k, v := range payload.Fields {
				fields = append(fields, zap.Any(k, v))
			}

			switch payload.Level {
			case LogInfo:
				logger.Info(payload.Message, fields...)
			case LogWarn:
				logger.Warn(payload.Message, fields...)
			case LogError:
				logger.Error(payload.Message, fields...)
			case LogDebug:
				logger.Debug(payload.Message, fields...)
			default:
				logger.Info(payload.Message, fields...)
			}
		},
		func() {
			// stdout/stderr syncers report EINVAL on some platforms; nothing to do about it
			_ = logger.Sync()
		},
	)
	ctxWith := context.WithValue(ctx, handlerKey{}, handler)

	return ctxWith, func() context.Context {
		handler.Close()
		return ctx
	}
}

// LogEff sends a structured log entry to the handler registered in ctx.
// Without a registered handler the entry is dropped.
func LogEff(ctx context.Context, level LogLevel, msg string, fields map[string]interface{}) {
	handler, ok := helper.GetTypedValueOf2[handlers.FireAndForgetHandler[LogPayload]](func() (any, bool) {
		v := ctx.Value(handlerKey{})
		return v, v != nil
	})
	if !ok {
		return
	}
	handler.FireAndForget(ctx, LogPayload{
		Level:   level,
		Message: msg,
		Fields:  fields,
	})
}
