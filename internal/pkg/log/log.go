package log

import (
	"context"
	"fmt"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// Logger is the ctx-aware logging facade used by usecases and repositories.
type Logger interface {
	Info(ctx context.Context, message string, data ...interface{})
	Warn(ctx context.Context, message string, data ...interface{})
	Error(ctx context.Context, message string, data ...interface{})
}

var global *otelzap.Logger

type logger struct {
	log *otelzap.Logger
}

// Setup builds the otelzap logger used directly by handlers and tests.
func Setup() *otelzap.Logger {
	zapLogger, err := zap.NewProduction()
	if err != nil {
		zapLogger = zap.NewNop()
	}
	return otelzap.New(zapLogger)
}

// SetupLogger is kept as an alias of Setup for the wiring in cmd/main.go.
func SetupLogger() *otelzap.Logger {
	return Setup()
}

func Init(l *otelzap.Logger) {
	global = l
}

func GetLogger() Logger {
	if global == nil {
		Init(Setup())
	}
	return &logger{log: global}
}

func (l *logger) Info(ctx context.Context, message string, data ...interface{}) {
	l.log.Ctx(ctx).Info(withData(message, data...))
}

func (l *logger) Warn(ctx context.Context, message string, data ...interface{}) {
	l.log.Ctx(ctx).Warn(withData(message, data...))
}

func (l *logger) Error(ctx context.Context, message string, data ...interface{}) {
	l.log.Ctx(ctx).Error(withData(message, data...))
}

func withData(message string, data ...interface{}) string {
	if len(data) == 0 {
		return message
	}
	return fmt.Sprintf("%s: %v", message, data)
}
