package logger

import (
	"go.uber.org/zap"
)

var Log *zap.Logger

func NewLogger() *zap.Logger {
	l, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	Log = l
	return l
}

// WithRequestID attaches a request id field when one is present.
func WithRequestID(requestID string, logger *zap.Logger) *zap.Logger {
	if requestID != "" {
		return logger.With(zap.String("request_id", requestID))
	}
	return logger
}
