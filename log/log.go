package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"
)

const (
	LevelError int = iota
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace

	// skips runtime.Callers, output and the exported level function
	calldepth  = 3
	timeFormat = "15:04:05.000"
)

// slogTrace sits one step below slog's debug level
const slogTrace = slog.LevelDebug - 4

var (
	level  atomic.Int32
	logger atomic.Pointer[slog.Logger]
)

func init() {
	level.Store(int32(LevelError))
	SetOutput(io.Discard)
}

// LevelError = 0
// LevelWarn = 1
// LevelInfo  = 2
// LevelDebug  = 3
// LevelTrace = 4
func SetLevel(l int) {
	level.Store(int32(l))
}

// ParseLevel maps a level name (error, warn, info, debug, trace) to its value
func ParseLevel(name string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "error", "":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "trace":
		return LevelTrace, nil
	}
	return LevelError, fmt.Errorf("unknown log level %q", name)
}

// SetOutput sends logs to w. Output is colored when w is a terminal
func SetOutput(w io.Writer) {
	noColor := true
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		noColor = false
	}
	h := tint.NewHandler(w, &tint.Options{
		AddSource:  true,
		Level:      slogTrace,
		TimeFormat: timeFormat,
		NoColor:    noColor,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey && len(groups) == 0 {
				if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == slogTrace {
					a.Value = slog.StringValue("TRC")
				}
			}
			return a
		},
	})
	logger.Store(slog.New(h))
}

// Logger returns the slog.Logger backing this package
func Logger() *slog.Logger {
	return logger.Load()
}

func enabled(l int) bool {
	return int(level.Load()) >= l
}

func output(lvl slog.Level, format string, args ...any) {
	message := format
	if len(args) > 0 {
		message = fmt.Sprintf(format, args...)
	}
	var pcs [1]uintptr
	runtime.Callers(calldepth, pcs[:])
	r := slog.NewRecord(time.Now(), lvl, message, pcs[0])
	_ = logger.Load().Handler().Handle(context.Background(), r)
}

func Trace(format string, args ...any) {
	if !enabled(LevelTrace) {
		return
	}
	output(slogTrace, format, args...)
}

func Debug(format string, args ...any) {
	if !enabled(LevelDebug) {
		return
	}
	output(slog.LevelDebug, format, args...)
}

func Info(format string, args ...any) {
	if !enabled(LevelInfo) {
		return
	}
	output(slog.LevelInfo, format, args...)
}

func Warn(format string, args ...any) {
	if !enabled(LevelWarn) {
		return
	}
	output(slog.LevelWarn, format, args...)
}

func Error(format string, args ...any) {
	if !enabled(LevelError) {
		return
	}
	output(slog.LevelError, format, args...)
}
