// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	successPrefix = color.New(color.FgGreen, color.Bold).Sprint("✔ Success!")
	errorPrefix   = color.New(color.FgRed, color.Bold).Sprint("✘ Error!")
	warningPrefix = color.New(color.FgYellow, color.Bold).Sprint("Note:")
	debugPrefix   = color.New(color.Faint).Sprint("[debug]")
)

// Logger writes colored, leveled messages to an underlying writer.
type Logger struct {
	w io.Writer
}

// New returns a Logger that writes to w.
func New(w io.Writer) *Logger {
	return &Logger{w: w}
}

func (l *Logger) write(prefix string, v []interface{}) {
	fmt.Fprintf(l.w, "%s %s", prefix, fmt.Sprint(v...))
}

func (l *Logger) writeln(prefix string, v []interface{}) {
	fmt.Fprintf(l.w, "%s %s\n", prefix, fmt.Sprint(v...))
}

func (l *Logger) writef(prefix, format string, v []interface{}) {
	fmt.Fprintf(l.w, "%s %s", prefix, fmt.Sprintf(format, v...))
}

// Success prints a success-prefixed message.
func (l *Logger) Success(v ...interface{}) { l.write(successPrefix, v) }

// Successln prints a success-prefixed message with a trailing newline.
func (l *Logger) Successln(v ...interface{}) { l.writeln(successPrefix, v) }

// Successf prints a formatted success-prefixed message.
func (l *Logger) Successf(format string, v ...interface{}) { l.writef(successPrefix, format, v) }

// Error prints an error-prefixed message.
func (l *Logger) Error(v ...interface{}) { l.write(errorPrefix, v) }

// Errorln prints an error-prefixed message with a trailing newline.
func (l *Logger) Errorln(v ...interface{}) { l.writeln(errorPrefix, v) }

// Errorf prints a formatted error-prefixed message.
func (l *Logger) Errorf(format string, v ...interface{}) { l.writef(errorPrefix, format, v) }

// Warning prints a warning-prefixed message.
func (l *Logger) Warning(v ...interface{}) { l.write(warningPrefix, v) }

// Warningln prints a warning-prefixed message with a trailing newline.
func (l *Logger) Warningln(v ...interface{}) { l.writeln(warningPrefix, v) }

// Warningf prints a formatted warning-prefixed message.
func (l *Logger) Warningf(format string, v ...interface{}) { l.writef(warningPrefix, format, v) }

// Info prints an unprefixed message.
func (l *Logger) Info(v ...interface{}) { fmt.Fprint(l.w, v...) }

// Infoln prints an unprefixed message with a trailing newline.
func (l *Logger) Infoln(v ...interface{}) { fmt.Fprintln(l.w, v...) }

// Infof prints a formatted, unprefixed message.
func (l *Logger) Infof(format string, v ...interface{}) { fmt.Fprintf(l.w, format, v...) }

// Debug prints a debug message.
func (l *Logger) Debug(v ...interface{}) { l.write(debugPrefix, v) }

// Debugln prints a debug message with a trailing newline.
func (l *Logger) Debugln(v ...interface{}) { l.writeln(debugPrefix, v) }

// Debugf prints a formatted debug message.
func (l *Logger) Debugf(format string, v ...interface{}) { l.writef(debugPrefix, format, v) }
