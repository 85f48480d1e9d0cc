package game

import (
	"fmt"
	"io"
	"log"
	"os"
)

var EnableDebug = false

type DebugLevel int

const (
	LevelInfo DebugLevel = iota
	LevelWarn
	LevelError
)

func (l DebugLevel) String() string {
	switch l {
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	}
	return "INFO"
}

// DebugSink receives every debug line. The browser build swaps in the
// console; native builds write through the standard logger.
type DebugSink func(level DebugLevel, args ...interface{})

var debugLog = log.New(os.Stderr, "freddies ", log.LstdFlags|log.Lmicroseconds)

var debugSink DebugSink = logSink

func logSink(level DebugLevel, args ...interface{}) {
	debugLog.Println(append([]interface{}{level.String()}, args...)...)
}

// SetDebugSink replaces the output target. A nil sink restores the default.
func SetDebugSink(sink DebugSink) {
	if sink == nil {
		sink = logSink
	}
	debugSink = sink
}

// SetDebugOutput redirects the default sink, e.g. to a file while a
// terminal UI owns the screen.
func SetDebugOutput(w io.Writer) {
	debugLog.SetOutput(w)
}

// Debug logs a message if debug mode is enabled.
func Debug(args ...interface{}) {
	if EnableDebug {
		debugSink(LevelInfo, args...)
	}
}

// Debugf logs a formatted message if debug mode is enabled.
func Debugf(format string, args ...interface{}) {
	if EnableDebug {
		debugSink(LevelInfo, fmt.Sprintf(format, args...))
	}
}

// DebugWarn logs a warning if debug mode is enabled.
func DebugWarn(args ...interface{}) {
	if EnableDebug {
		debugSink(LevelWarn, args...)
	}
}

// DebugError logs an error if debug mode is enabled.
func DebugError(args ...interface{}) {
	if EnableDebug {
		debugSink(LevelError, args...)
	}
}
