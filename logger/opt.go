package logger

import (
	"log"

	"github.com/xy-planning-network/trailhead"
)

// A LoggerOptFn is a functional option configuring a TrailheadLogger when constructing a new one.
type LoggerOptFn func(*TrailheadLogger)

// WithEnv sets the environment TrailheadLogger is operating in.
func WithEnv(env trailhead.Environment) func(*TrailheadLogger) {
	return func(l *TrailheadLogger) {
		l.env = env
	}
}

// WithLevel sets the log level TrailheadLogger uses.
func WithLevel(level LogLevel) func(*TrailheadLogger) {
	return func(l *TrailheadLogger) {
		l.ll = level
	}
}

// WithLogger sets the log.Logger TrailheadLogger uses.
func WithLogger(log *log.Logger) func(*TrailheadLogger) {
	return func(l *TrailheadLogger) {
		l.l = log
	}
}

// WithSkip sets the number of frames in the call stack
// to skip in order to log the desired file and line number
// of the calling code.
func WithSkip(skip int) func(*TrailheadLogger) {
	return func(l *TrailheadLogger) {
		l.skip = skip
	}
}
