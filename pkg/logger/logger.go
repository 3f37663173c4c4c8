package logger

import (
	"fmt"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// AppLogger wraps zap with otelzap so log entries carry the active trace
// context.
type AppLogger struct {
	Logger      *otelzap.Logger
	serviceName string
}

func NewAppLogger(serviceName string) (*AppLogger, error) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.TimeKey = "timestamp"

	zapLogger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to create zap logger: %w", err)
	}

	return &AppLogger{
		Logger:      otelzap.New(zapLogger),
		serviceName: serviceName,
	}, nil
}

func (l *AppLogger) ServiceName() string {
	return l.serviceName
}

func (l *AppLogger) Sync() error {
	return l.Logger.Sync()
}
