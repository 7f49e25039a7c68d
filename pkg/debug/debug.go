// Package debug provides conditional debug logging for adpf.
//
// Debug logging is enabled by setting the ADPF_DEBUG environment variable or
// passing --debug:
//
//	ADPF_DEBUG=1 adpf export
//
// When enabled, messages go to stderr through a zap development logger.
// When disabled (default), all functions are no-ops.
//
// Usage:
//
//	debug.Log("rendering %s", id)
//	defer debug.LogEnterExit("export.Bundle")()
//	debug.With("export written", zap.String("path", p))
package debug

import (
	"io"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu      sync.RWMutex
	enabled bool
	logger  *zap.Logger
)

func init() {
	if os.Getenv("ADPF_DEBUG") != "" {
		SetEnabled(true)
	}
}

// NewLogger returns a development-style console logger writing to w.
func NewLogger(w io.Writer) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000000")
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), zapcore.DebugLevel)
	return zap.New(core).Named("adpf")
}

// Enabled returns whether debug logging is enabled.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetEnabled turns debug logging on or off.
func SetEnabled(e bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = e
	if e && logger == nil {
		logger = NewLogger(os.Stderr)
	}
}

// SetLogger replaces the backing logger.
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

func active() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	if !enabled || logger == nil {
		return nil
	}
	return logger
}

// Log writes a printf-style debug message.
func Log(format string, args ...any) {
	if l := active(); l != nil {
		l.Sugar().Debugf(format, args...)
	}
}

// With writes a structured debug message.
func With(msg string, fields ...zap.Field) {
	if l := active(); l != nil {
		l.Debug(msg, fields...)
	}
}

// LogTiming writes how long name took.
func LogTiming(name string, d time.Duration) {
	if l := active(); l != nil {
		l.Debug("timing", zap.String("name", name), zap.Duration("took", d))
	}
}

// LogIf writes a debug message only if cond is true.
func LogIf(cond bool, format string, args ...any) {
	if !cond {
		return
	}
	Log(format, args...)
}

// LogEnterExit logs function entry and exit with timing:
//
//	defer debug.LogEnterExit("myFunc")()
func LogEnterExit(name string) func() {
	l := active()
	if l == nil {
		return func() {}
	}
	l.Debug("-> " + name)
	start := time.Now()
	return func() {
		l.Debug("<- "+name, zap.Duration("took", time.Since(start)))
	}
}

// Dump logs a value with its type.
func Dump(name string, v any) {
	if l := active(); l != nil {
		l.Sugar().Debugf("%s: %T = %+v", name, v, v)
	}
}

// Section logs a section header for visual organization.
func Section(name string) {
	if l := active(); l != nil {
		l.Debug("=== " + name + " ===")
	}
}

// Sync flushes buffered log entries.
func Sync() {
	if l := active(); l != nil {
		_ = l.Sync()
	}
}
