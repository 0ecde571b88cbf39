// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package color

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

type envVar struct {
	env map[string]string
}

func (e *envVar) lookupEnv(key string) (string, bool) {
	v, ok := e.env[key]
	return v, ok
}

func TestColorEnvVarSetToFalse(t *testing.T) {
	env := &envVar{
		env: map[string]string{colorEnvVar: "false"},
	}
	lookupEnv = env.lookupEnv

	DisableColorBasedOnEnvVar()

	require.True(t, color.NoColor, "expected to be true when COLOR is disabled")
}

func TestColorEnvVarSetToTrue(t *testing.T) {
	env := &envVar{
		env: map[string]string{colorEnvVar: "true"},
	}
	lookupEnv = env.lookupEnv

	DisableColorBasedOnEnvVar()

	require.False(t, color.NoColor, "expected to be false when COLOR is enabled")
}

func TestColorEnvVarNotSet(t *testing.T) {
	before := color.NoColor
	env := &envVar{
		env: make(map[string]string),
	}
	lookupEnv = env.lookupEnv

	DisableColorBasedOnEnvVar()

	require.Equal(t, before, color.NoColor, "unset COLOR should leave the prior setting untouched")
}

func TestColorGenerator(t *testing.T) {
	newColor := ColorGenerator()
	colors := make(map[*color.Color]struct{})
	for i := 0; i < 50; i++ {
		c := newColor()
		colors[c] = struct{}{}
		require.NotNil(t, c)
	}
	require.Equal(t, 10, len(colors))
}
