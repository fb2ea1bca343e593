package log

import (
	"context"
	"fmt"
	"io"
	stdlog "log"
	"log/slog"
	"os"
	"runtime"
	"time"
)

func Green(format string, v ...interface{}) string {
	return fmt.Sprintf("\033[32m"+format+"\033[0m", v...)
}

func Yellow(format string, v ...interface{}) string {
	return fmt.Sprintf("\033[33m"+format+"\033[0m", v...)
}

func Red(format string, v ...interface{}) string {
	return fmt.Sprintf("\033[31m"+format+"\033[0m", v...)
}

func Cyan(format string, v ...interface{}) string {
	return fmt.Sprintf("\033[36m"+format+"\033[0m", v...)
}

func Gray(format string, v ...interface{}) string {
	return fmt.Sprintf("\033[90m"+format+"\033[0m", v...)
}

// LogHandler is a minimal colored console handler. Groups added via
// WithGroup are rendered inside the level tag, e.g. [INFO/GIN].
type LogHandler struct {
	w     io.Writer
	level slog.Level
	group string
	attrs []slog.Attr
}

func NewHandler(w io.Writer, level slog.Level) *LogHandler {
	return &LogHandler{w: w, level: level}
}

func (h *LogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *LogHandler) Handle(_ context.Context, r slog.Record) error {
	var file string
	var line int
	if r.PC != 0 {
		fs := runtime.CallersFrames([]uintptr{r.PC})
		f, _ := fs.Next()
		file = f.File
		line = f.Line
	}

	tag := levelTag(r.Level, h.group)
	msg := r.Time.Format("2006/01/02 15:04:05") + " " + tag + " " + r.Message
	if file != "" {
		msg += " " + Gray("(%s:%d)", file, line)
	}

	appendAttr := func(a slog.Attr) {
		msg += fmt.Sprintf(" %s=%s", Cyan("%s", a.Key), Yellow("%v", a.Value))
	}
	for _, a := range h.attrs {
		appendAttr(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(a)
		return true
	})

	msg += "\n"
	_, err := h.w.Write([]byte(msg))
	return err
}

func (h *LogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)
	return &clone
}

func (h *LogHandler) WithGroup(name string) slog.Handler {
	clone := *h
	if name != "" {
		clone.group = name
	}
	return &clone
}

func levelTag(level slog.Level, group string) string {
	name := "INFO"
	color := Green
	switch {
	case level < slog.LevelInfo:
		name, color = "DEBUG", Cyan
	case level >= slog.LevelError:
		name, color = "ERROR", Red
	case level >= slog.LevelWarn:
		name, color = "WARN", Yellow
	}
	if group != "" {
		return color("[%s/%s]", name, group)
	}
	return color("[%s]", name)
}

// SetupGlobalLogger routes both slog and the standard library logger through
// the colored handler.
func SetupGlobalLogger(level slog.Level) {
	handler := NewHandler(os.Stdout, level)
	slog.SetDefault(slog.New(handler))

	stdlog.SetFlags(0)
	stdlog.SetPrefix("")
	stdlog.SetOutput(&writerAdapter{handler: handler, level: level})
}

// writerAdapter turns plain log writes into slog records.
type writerAdapter struct {
	handler slog.Handler
	level   slog.Level
}

func (w *writerAdapter) Write(p []byte) (n int, err error) {
	msg := string(p)
	if len(msg) > 0 && msg[len(msg)-1] == '\n' {
		msg = msg[:len(msg)-1]
	}

	var pcs [1]uintptr
	runtime.Callers(4, pcs[:]) // skip [Callers, Write, log.Output, log.Printf/etc]

	r := slog.NewRecord(time.Now(), w.level, msg, pcs[0])
	return len(p), w.handler.Handle(context.Background(), r)
}
