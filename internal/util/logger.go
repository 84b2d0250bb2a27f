package util

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Level is a logging severity
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[Level]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

var levelAttributes = map[Level][]color.Attribute{
	LevelDebug: {color.FgHiBlack},
	LevelInfo:  {color.FgCyan},
	LevelWarn:  {color.FgYellow},
	LevelError: {color.FgRed, color.Bold},
}

// String returns the upper-case level name
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// ParseLevel parses a log_level config value
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level: %s", s)
	}
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Logger writes leveled log lines. It must not be given stdout, which
// carries protocol traffic.
type Logger struct {
	out   io.Writer
	std   *log.Logger
	level Level
	tags  map[Level]string
}

// NewLogger creates a logger writing lines at or above level to out.
// Level tags are coloured when useColor is set.
func NewLogger(out io.Writer, level Level, useColor bool) *Logger {
	tags := make(map[Level]string, len(levelNames))
	for lvl, name := range levelNames {
		tag := "[" + name + "]"
		if useColor {
			c := color.New(levelAttributes[lvl]...)
			c.EnableColor()
			tag = c.Sprint(tag)
		}
		tags[lvl] = tag
	}

	return &Logger{
		out:   out,
		std:   log.New(out, "", log.LstdFlags),
		level: level,
		tags:  tags,
	}
}

// Level returns the minimum level that is written
func (l *Logger) Level() Level {
	return l.level
}

// Enabled reports whether lines at level are written
func (l *Logger) Enabled(level Level) bool {
	return level >= l.level
}

func (l *Logger) logf(level Level, format string, args ...interface{}) {
	if !l.Enabled(level) {
		return
	}
	l.std.Printf("%s %s", l.tags[level], fmt.Sprintf(format, args...))
}

// Debugf logs at debug level
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logf(LevelDebug, format, args...)
}

// Infof logs at info level
func (l *Logger) Infof(format string, args ...interface{}) {
	l.logf(LevelInfo, format, args...)
}

// Warnf logs at warn level
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logf(LevelWarn, format, args...)
}

// Errorf logs at error level
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logf(LevelError, format, args...)
}

// Std returns a standard library logger that writes error-tagged lines,
// for libraries that accept a *log.Logger
func (l *Logger) Std() *log.Logger {
	return log.New(l.out, l.tags[LevelError]+" ", log.LstdFlags)
}
