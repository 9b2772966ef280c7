// Package logging is the leveled stderr logger shared by the plotting binaries.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
	"time"
)

// Level represents severity.
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[string]Level{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

var currentLevel int32 = int32(LevelInfo)

var baseLogger = log.New(os.Stderr, "", log.Ldate|log.Ltime|log.Lmicroseconds)

// SetLogLevel parses and sets the global log level. Unknown names are ignored
// and reported as false.
func SetLogLevel(s string) bool {
	l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return false
	}
	atomic.StoreInt32(&currentLevel, int32(l))
	return true
}

// SetOutput redirects log output (tests capture it into a buffer).
func SetOutput(w io.Writer) { baseLogger.SetOutput(w) }

// GetLogLevel returns the current global log level.
func GetLogLevel() Level { return Level(atomic.LoadInt32(&currentLevel)) }

func logf(l Level, tag, format string, args ...interface{}) {
	if GetLogLevel() > l {
		return
	}
	prefix := "INFO"
	switch l {
	case LevelDebug:
		prefix = "DEBUG"
	case LevelWarn:
		prefix = "WARN"
	case LevelError:
		prefix = "ERROR"
	}
	if tag != "" {
		prefix += "] [" + tag
	}
	// Without args the input is printed verbatim, so a literal % in a path or
	// percentage label survives.
	if len(args) == 0 {
		baseLogger.Printf("[%s] %s", prefix, format)
		return
	}
	baseLogger.Printf("[%s] %s", prefix, fmt.Sprintf(format, args...))
}

func Debugf(format string, a ...interface{}) { logf(LevelDebug, "", format, a...) }
func Infof(format string, a ...interface{})  { logf(LevelInfo, "", format, a...) }
func Warnf(format string, a ...interface{})  { logf(LevelWarn, "", format, a...) }
func Errorf(format string, a ...interface{}) { logf(LevelError, "", format, a...) }

// TimeTrack logs the time elapsed since start at debug level.
//
//	defer logging.TimeTrack(time.Now(), "load config")
func TimeTrack(start time.Time, label string) {
	Debugf("%s took %s", label, time.Since(start))
}

// Scope tags every line with a component and, once narrowed with With, the
// fields of the unit being worked on:
//
//	[INFO] [batch pair=rational_neumann] wrote results/rational_neumann.png
type Scope struct {
	tag string
}

// For returns the scope of a component such as "batch" or "viewer".
func For(component string) Scope { return Scope{tag: component} }

// With returns a copy of s with key=value appended to the tag.
func (s Scope) With(key, value string) Scope {
	return Scope{tag: s.tag + " " + key + "=" + value}
}

func (s Scope) Debugf(format string, a ...interface{}) { logf(LevelDebug, s.tag, format, a...) }
func (s Scope) Infof(format string, a ...interface{})  { logf(LevelInfo, s.tag, format, a...) }
func (s Scope) Warnf(format string, a ...interface{})  { logf(LevelWarn, s.tag, format, a...) }
func (s Scope) Errorf(format string, a ...interface{}) { logf(LevelError, s.tag, format, a...) }

// TimeTrack logs, at debug level, how long the scope's work took.
func (s Scope) TimeTrack(start time.Time, label string) {
	s.Debugf("%s took %s", label, time.Since(start))
}
