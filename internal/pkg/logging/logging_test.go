// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sqlxpert/lights-off-aws/internal/pkg/config"
)

func TestLogger_Log(t *testing.T) {
	fixedTime := time.Date(2026, 7, 30, 12, 0, 0, 0, time.UTC)
	restore := now
	now = func() time.Time { return fixedTime }
	defer func() { now = restore }()

	testCases := map[string]struct {
		threshold   config.LogLevel
		call        func(l *Logger)
		wantedEmpty bool
		wantedJSON  string
	}{
		"info entry at info threshold": {
			threshold: config.LogLevelInfo,
			call: func(l *Logger) {
				l.Info("enqueued operation request", map[string]interface{}{"rsrc_id": "i-0123456789abcdef0"})
			},
			wantedJSON: `{"time":"2026-07-30T12:00:00Z","type":"INFO","value":"enqueued operation request","data":{"rsrc_id":"i-0123456789abcdef0"}}` + "\n",
		},
		"debug entry suppressed at info threshold": {
			threshold: config.LogLevelInfo,
			call: func(l *Logger) {
				l.Debug("scanning catalog entry", nil)
			},
			wantedEmpty: true,
		},
		"error entry always passes info threshold": {
			threshold: config.LogLevelInfo,
			call: func(l *Logger) {
				l.Error("permanent provider error", map[string]interface{}{"code": "AccessDenied"})
			},
			wantedJSON: `{"time":"2026-07-30T12:00:00Z","type":"ERROR","value":"permanent provider error","data":{"code":"AccessDenied"}}` + "\n",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			var b strings.Builder
			l := New(&b, tc.threshold)

			tc.call(l)

			if tc.wantedEmpty {
				require.Empty(t, b.String())
				return
			}
			require.Equal(t, tc.wantedJSON, b.String())
		})
	}
}

func TestNew_UnrecognizedThresholdFallsBackToInfo(t *testing.T) {
	var b strings.Builder
	l := New(&b, config.LogLevel("BOGUS"))
	l.Debug("should be suppressed", nil)
	require.Empty(t, b.String())
}
