// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package color assigns terminal colors for schedctl's diagnostic output.
package color

import (
	"os"
	"strconv"

	"github.com/fatih/color"
)

const colorEnvVar = "COLOR"

// lookupEnv is overridden in tests.
var lookupEnv = os.LookupEnv

// DisableColorBasedOnEnvVar turns off color output when the COLOR
// environment variable is explicitly set to a falsy value, leaving
// fatih/color's own terminal-detection default otherwise.
func DisableColorBasedOnEnvVar() {
	v, ok := lookupEnv(colorEnvVar)
	if !ok {
		return
	}
	enabled, err := strconv.ParseBool(v)
	if err != nil {
		return
	}
	color.NoColor = !enabled
}

var (
	// Emphasis highlights a value the operator should pay attention to,
	// such as a resource ID or an operation name.
	Emphasis = color.New(color.FgCyan, color.Bold).SprintFunc()
	// Faint renders supporting detail, such as a timestamp.
	Faint = color.New(color.Faint).SprintFunc()
)

var paletteColors = []*color.Color{
	color.New(color.FgRed),
	color.New(color.FgGreen),
	color.New(color.FgYellow),
	color.New(color.FgBlue),
	color.New(color.FgMagenta),
	color.New(color.FgCyan),
	color.New(color.FgRed, color.Bold),
	color.New(color.FgGreen, color.Bold),
	color.New(color.FgYellow, color.Bold),
	color.New(color.FgBlue, color.Bold),
}

// ColorGenerator returns a function that cycles through a fixed ten-color
// palette, one color per call, wrapping back to the start.
func ColorGenerator() func() *color.Color {
	i := 0
	return func() *color.Color {
		c := paletteColors[i%len(paletteColors)]
		i++
		return c
	}
}
