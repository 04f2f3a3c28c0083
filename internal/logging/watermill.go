package logging

import (
	"github.com/ThreeDotsLabs/watermill"
	"go.uber.org/zap"
)

// WatermillLogger adapts zap to Watermill's LoggerAdapter.
type WatermillLogger struct {
	log    *zap.Logger
	fields watermill.LogFields
}

func NewWatermillLogger(logger *zap.Logger) watermill.LoggerAdapter {
	return &WatermillLogger{
		log:    logger.Named("watermill"),
		fields: make(watermill.LogFields),
	}
}

func (l *WatermillLogger) Error(msg string, err error, fields watermill.LogFields) {
	l.log.Error(msg, append(l.toFields(fields), zap.Error(err))...)
}

func (l *WatermillLogger) Info(msg string, fields watermill.LogFields) {
	l.log.Info(msg, l.toFields(fields)...)
}

func (l *WatermillLogger) Debug(msg string, fields watermill.LogFields) {
	l.log.Debug(msg, l.toFields(fields)...)
}

// Trace maps to debug; zap has no finer level.
func (l *WatermillLogger) Trace(msg string, fields watermill.LogFields) {
	l.log.Debug(msg, l.toFields(fields)...)
}

func (l *WatermillLogger) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &WatermillLogger{
		log:    l.log,
		fields: l.fields.Add(fields),
	}
}

func (l *WatermillLogger) toFields(fields watermill.LogFields) []zap.Field {
	out := make([]zap.Field, 0, len(l.fields)+len(fields)+1)
	for k, v := range l.fields {
		out = append(out, zap.Any(k, v))
	}
	for k, v := range fields {
		out = append(out, zap.Any(k, v))
	}
	return out
}
