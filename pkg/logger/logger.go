package logger

import (
	"context"

	"go.uber.org/zap"
	"telegram-alerts/pkg/trace"
)

// NewLogger JSON 输出，用于部署环境
func NewLogger() *zap.Logger {
	l, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	return l
}

// NewDevelopment 控制台输出，--dry-run 时使用
func NewDevelopment() *zap.Logger {
	l, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	return l
}

// WithTrace 带上请求的 trace_id（如果有）
func WithTrace(ctx context.Context, logger *zap.Logger) *zap.Logger {
	if traceID := trace.FromContext(ctx); traceID != "" {
		return logger.With(zap.String("trace_id", traceID))
	}
	return logger
}
