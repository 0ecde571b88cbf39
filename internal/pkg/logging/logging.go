// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package logging is the Finder and Doer processes' structured log sink,
// per spec §6: "Log entries [are] JSON objects with at least a
// type/level classifier and a value or message payload." Like
// internal/pkg/term/log it writes to an injectable io.Writer, but its
// Logger has one method per level (Debug, Info, Warning, Error,
// Critical) and every call emits one JSON object rather than colored
// terminal text, since these processes run
// unattended and their output is read by a log aggregator, not a human
// at a terminal.
package logging

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/sqlxpert/lights-off-aws/internal/pkg/config"
)

// DiagnosticWriter is a default destination for log output. Nothing in
// this package writes to it; New takes its own io.Writer.
var DiagnosticWriter io.Writer = os.Stdout

// now is overridden in tests so entries have a deterministic timestamp.
var now = time.Now

// entry is the wire shape of one log line: a JSON object per call.
type entry struct {
	Time  string                 `json:"time"`
	Type  string                 `json:"type"`
	Value string                 `json:"value"`
	Data  map[string]interface{} `json:"data,omitempty"`
}

var levelRank = map[config.LogLevel]int{
	config.LogLevelDebug:    0,
	config.LogLevelInfo:     1,
	config.LogLevelWarning:  2,
	config.LogLevelError:    3,
	config.LogLevelCritical: 4,
}

// Logger writes one JSON object per call to an underlying writer,
// suppressing entries below its configured threshold.
type Logger struct {
	w         io.Writer
	threshold config.LogLevel
}

// New returns a Logger that writes to w, emitting entries at or above
// threshold. An unrecognized threshold is treated as LogLevelInfo.
func New(w io.Writer, threshold config.LogLevel) *Logger {
	if _, ok := levelRank[threshold]; !ok {
		threshold = config.LogLevelInfo
	}
	return &Logger{w: w, threshold: threshold}
}

func (l *Logger) log(level config.LogLevel, value string, data map[string]interface{}) {
	if levelRank[level] < levelRank[l.threshold] {
		return
	}
	e := entry{
		Time:  now().UTC().Format(time.RFC3339),
		Type:  string(level),
		Value: value,
		Data:  data,
	}
	body, err := json.Marshal(e)
	if err != nil {
		// Marshaling a map[string]interface{} built from our own typed
		// values should never fail; if it does, fall back to a minimal
		// line rather than losing the entry silently.
		body = []byte(`{"type":"ERROR","value":"failed to marshal log entry"}`)
	}
	l.w.Write(append(body, '\n'))
}

// Debug logs at DEBUG level.
func (l *Logger) Debug(value string, data map[string]interface{}) {
	l.log(config.LogLevelDebug, value, data)
}

// Info logs at INFO level.
func (l *Logger) Info(value string, data map[string]interface{}) {
	l.log(config.LogLevelInfo, value, data)
}

// Warning logs at WARNING level.
func (l *Logger) Warning(value string, data map[string]interface{}) {
	l.log(config.LogLevelWarning, value, data)
}

// Error logs at ERROR level.
func (l *Logger) Error(value string, data map[string]interface{}) {
	l.log(config.LogLevelError, value, data)
}

// Critical logs at CRITICAL level.
func (l *Logger) Critical(value string, data map[string]interface{}) {
	l.log(config.LogLevelCritical, value, data)
}
