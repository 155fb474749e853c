package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/v2pro/plz/countlog"
	"github.com/v2pro/plz/countlog/output"
	"github.com/v2pro/plz/countlog/output/hrf"
)

func init() {
	// stdout carries bindump and hexdump output
	countlog.EventWriter = output.NewEventWriter(output.EventWriterConfig{
		Format: &hrf.Format{},
		Writer: os.Stderr,
	})
}

type logLevel int

const (
	levelDebug logLevel = iota
	levelInfo
	levelWarn
	levelError
)

func parseLevel(s string) (logLevel, error) {
	switch strings.ToLower(s) {
	case "debug":
		return levelDebug, nil
	case "info":
		return levelInfo, nil
	case "warn", "warning":
		return levelWarn, nil
	case "error":
		return levelError, nil
	default:
		return 0, fmt.Errorf("unknown verbosity %q: want error, warn, info or debug", s)
	}
}

// countLogger forwards ihex and dump log calls to countlog, dropping anything below level.
//
// countlog builds its formatter for an event from the first call's property types, so every
// event is sent with a single string property holding the rendered key-value pairs.
type countLogger struct {
	level logLevel
}

var logger = &countLogger{level: levelWarn}

func (l *countLogger) Debug(msg string, keysAndValues ...interface{}) {
	if l.level <= levelDebug {
		countlog.Debug("event!ihex."+msg, "fields", formatFields(keysAndValues))
	}
}

func (l *countLogger) Info(msg string, keysAndValues ...interface{}) {
	if l.level <= levelInfo {
		countlog.Info("event!ihex."+msg, "fields", formatFields(keysAndValues))
	}
}

func (l *countLogger) Warn(msg string, keysAndValues ...interface{}) {
	if l.level <= levelWarn {
		countlog.Warn("event!ihex."+msg, "fields", formatFields(keysAndValues))
	}
}

func (l *countLogger) Error(msg string, keysAndValues ...interface{}) {
	if l.level <= levelError {
		countlog.Error("event!ihex."+msg, "fields", formatFields(keysAndValues))
	}
}

// formatFields renders key-value pairs as "key=value key=value".
func formatFields(keysAndValues []interface{}) string {
	var b strings.Builder
	for i := 0; i < len(keysAndValues); i += 2 {
		if i > 0 {
			b.WriteByte(' ')
		}
		if i+1 == len(keysAndValues) {
			fmt.Fprintf(&b, "%v", keysAndValues[i])
			break
		}
		fmt.Fprintf(&b, "%v=%v", keysAndValues[i], keysAndValues[i+1])
	}
	return b.String()
}
