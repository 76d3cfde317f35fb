package logger

import (
	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger. Debug level switches to the development
// encoder; anything else gets production JSON output. A non-empty Sentry DSN
// additionally forwards warn-and-above entries to Sentry.
func New(level, sentryDSN string) (*zap.Logger, error) {
	var (
		log *zap.Logger
		err error
	)
	if level == "debug" {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}

	if sentryDSN != "" {
		opt, err := Sentry(sentryDSN)
		if err != nil {
			return nil, err
		}
		log = log.WithOptions(opt)
	}

	return log, nil
}

// Sentry wraps the logger core with a hook that mirrors warn, error and
// fatal entries to Sentry.
func Sentry(dsn string) (zap.Option, error) {
	err := sentry.Init(sentry.ClientOptions{
		Dsn: dsn,
	})
	if err != nil {
		return nil, err
	}

	return zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return zapcore.RegisterHooks(core, func(entry zapcore.Entry) error {
			if entry.Level == zapcore.WarnLevel ||
				entry.Level == zapcore.ErrorLevel ||
				entry.Level == zapcore.FatalLevel {
				sentry.CaptureEvent(&sentry.Event{
					Timestamp: entry.Time,
					Logger:    entry.LoggerName,
					Message:   entry.Message,
					Extra: map[string]any{
						"Stack":  entry.Stack,
						"Caller": entry.Caller.String(),
					},
					Level: sentryLevel(entry.Level),
				})
			}

			return nil
		})
	}), nil
}

func sentryLevel(zapLevel zapcore.Level) sentry.Level {
	switch zapLevel {
	case zapcore.ErrorLevel:
		return sentry.LevelError
	case zapcore.WarnLevel:
		return sentry.LevelWarning
	case zapcore.FatalLevel:
		return sentry.LevelFatal
	}

	return sentry.LevelInfo
}
