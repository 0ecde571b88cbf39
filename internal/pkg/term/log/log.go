// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package log prints colored, leveled diagnostic output for schedctl.
// It is package-level convenience on top of Logger, writing to a single
// shared destination (DiagnosticWriter) so CLI subcommands can call
// log.PrintError-style functions without threading a logger through.
// The Finder and Doer processes use internal/pkg/logging instead, which
// emits one JSON object per entry rather than colored text.
package log

import (
	"io"
	"os"
)

// DiagnosticWriter is where package-level Print* functions write. Tests
// replace it with a strings.Builder.
var DiagnosticWriter io.Writer = os.Stderr

func defaultLogger() *Logger {
	return New(DiagnosticWriter)
}

// PrintSuccess prints a success-prefixed message.
func PrintSuccess(v ...interface{}) { defaultLogger().Success(v...) }

// PrintSuccessln prints a success-prefixed message with a trailing newline.
func PrintSuccessln(v ...interface{}) { defaultLogger().Successln(v...) }

// PrintSuccessf prints a formatted success-prefixed message.
func PrintSuccessf(format string, v ...interface{}) { defaultLogger().Successf(format, v...) }

// PrintError prints an error-prefixed message.
func PrintError(v ...interface{}) { defaultLogger().Error(v...) }

// PrintErrorln prints an error-prefixed message with a trailing newline.
func PrintErrorln(v ...interface{}) { defaultLogger().Errorln(v...) }

// PrintErrorf prints a formatted error-prefixed message.
func PrintErrorf(format string, v ...interface{}) { defaultLogger().Errorf(format, v...) }

// PrintWarning prints a warning-prefixed message.
func PrintWarning(v ...interface{}) { defaultLogger().Warning(v...) }

// PrintWarningln prints a warning-prefixed message with a trailing newline.
func PrintWarningln(v ...interface{}) { defaultLogger().Warningln(v...) }

// PrintWarningf prints a formatted warning-prefixed message.
func PrintWarningf(format string, v ...interface{}) { defaultLogger().Warningf(format, v...) }

// Print prints an unprefixed message.
func Print(v ...interface{}) { defaultLogger().Info(v...) }

// Println prints an unprefixed message with a trailing newline.
func Println(v ...interface{}) { defaultLogger().Infoln(v...) }

// Printf prints a formatted, unprefixed message.
func Printf(format string, v ...interface{}) { defaultLogger().Infof(format, v...) }

// PrintDebug prints a debug message.
func PrintDebug(v ...interface{}) { defaultLogger().Debug(v...) }

// PrintDebugln prints a debug message with a trailing newline.
func PrintDebugln(v ...interface{}) { defaultLogger().Debugln(v...) }

// PrintDebugf prints a formatted debug message.
func PrintDebugf(format string, v ...interface{}) { defaultLogger().Debugf(format, v...) }
