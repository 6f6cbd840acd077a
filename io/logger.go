package argvio

import (
	"fmt"
	"io"
	"time"
)

// Level is the severity of a log message.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the tag rendered in front of messages at this level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger writes tagged, optionally timestamped messages. Warnings and errors
// go to the error writer, everything else to the output writer.
type Logger struct {
	out        io.Writer
	err        io.Writer
	min        Level
	styler     *Styler
	withTime   bool
	timeFormat string
	now        func() time.Time
}

// NewLogger returns a logger writing info/debug to out and warn/error to err.
func NewLogger(out, err io.Writer) *Logger {
	return &Logger{
		out:        out,
		err:        err,
		min:        LevelInfo,
		styler:     &Styler{},
		timeFormat: "15:04:05",
		now:        time.Now,
	}
}

func (l *Logger) withStyler(s *Styler) *Logger { l.styler = s; return l }

// SetLevel sets the minimum level that is emitted.
func (l *Logger) SetLevel(min Level) *Logger { l.min = min; return l }

// WithTime prefixes messages with a wall-clock timestamp.
func (l *Logger) WithTime() *Logger { l.withTime = true; return l }

func (l *Logger) tag(level Level) string {
	t := "[" + level.String() + "]"
	switch level {
	case LevelDebug:
		return l.styler.Dim(t)
	case LevelInfo:
		return l.styler.Blue(t)
	case LevelWarn:
		return l.styler.Yellow(t)
	case LevelError:
		return l.styler.Red(t)
	}
	return t
}

func (l *Logger) log(level Level, format string, args ...any) {
	if level < l.min {
		return
	}
	w := l.out
	if level >= LevelWarn {
		w = l.err
	}
	prefix := l.tag(level)
	if l.withTime {
		prefix = l.now().Format(l.timeFormat) + " " + prefix
	}
	fmt.Fprintf(w, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}

// Debugf logs at debug level.
func (l *Logger) Debugf(format string, args ...any) { l.log(LevelDebug, format, args...) }

// Infof logs at info level.
func (l *Logger) Infof(format string, args ...any) { l.log(LevelInfo, format, args...) }

// Warnf logs at warn level.
func (l *Logger) Warnf(format string, args ...any) { l.log(LevelWarn, format, args...) }

// Errorf logs at error level.
func (l *Logger) Errorf(format string, args ...any) { l.log(LevelError, format, args...) }
