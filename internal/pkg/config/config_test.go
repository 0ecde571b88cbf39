// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	testCases := map[string]struct {
		setEnv      func(t *testing.T)
		wantedCfg   Config
		wantedError string
	}{
		"defaults with only required keys set": {
			setEnv: func(t *testing.T) {
				t.Setenv("OPERATION_QUEUE_URL", "https://sqs.us-west-2.amazonaws.com/123456789012/ops")
				t.Setenv("OPERATION_DEAD_LETTER_QUEUE_URL", "https://sqs.us-west-2.amazonaws.com/123456789012/ops-dlq")
			},
			wantedCfg: Config{
				Enable:                          true,
				CopyTags:                        true,
				LogLevel:                        LogLevelInfo,
				FindLambdaFnTimeoutSecs:         DefaultFindLambdaFnTimeoutSecs,
				DoLambdaFnTimeoutSecs:           DefaultDoLambdaFnTimeoutSecs,
				OperationQueueVisibilityTimeoutSecs:             DefaultOperationQueueVisibilityTimeoutSecs,
				QueueMessageBytesMax:                            DefaultQueueMessageBytesMax,
				OperationFailedQueueMessageRetentionPeriodSecs: DefaultOperationFailedQueueMessageRetentionSecs,
				DoLambdaFnReservedConcurrentExecutions:         DefaultDoLambdaFnReservedConcurrentExecutions,
				OperationQueueURL:                               "https://sqs.us-west-2.amazonaws.com/123456789012/ops",
				OperationDeadLetterQueueURL:                     "https://sqs.us-west-2.amazonaws.com/123456789012/ops-dlq",
			},
		},
		"missing required queue URL": {
			setEnv: func(t *testing.T) {
				t.Setenv("OPERATION_DEAD_LETTER_QUEUE_URL", "https://sqs.us-west-2.amazonaws.com/123456789012/ops-dlq")
			},
			wantedError: "required environment variable OPERATION_QUEUE_URL is not set",
		},
		"invalid log level": {
			setEnv: func(t *testing.T) {
				t.Setenv("OPERATION_QUEUE_URL", "https://sqs.us-west-2.amazonaws.com/123456789012/ops")
				t.Setenv("OPERATION_DEAD_LETTER_QUEUE_URL", "https://sqs.us-west-2.amazonaws.com/123456789012/ops-dlq")
				t.Setenv("LOG_LEVEL", "VERBOSE")
			},
			wantedError: `LOG_LEVEL="VERBOSE" is not one of DEBUG, INFO, WARNING, ERROR, CRITICAL`,
		},
		"invalid bool": {
			setEnv: func(t *testing.T) {
				t.Setenv("OPERATION_QUEUE_URL", "https://sqs.us-west-2.amazonaws.com/123456789012/ops")
				t.Setenv("OPERATION_DEAD_LETTER_QUEUE_URL", "https://sqs.us-west-2.amazonaws.com/123456789012/ops-dlq")
				t.Setenv("ENABLE", "maybe")
			},
			wantedError: `parse ENABLE="maybe" as bool: strconv.ParseBool: parsing "maybe": invalid syntax`,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			tc.setEnv(t)

			cfg, err := FromEnv()

			if tc.wantedError != "" {
				require.EqualError(t, err, tc.wantedError)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantedCfg, cfg)
		})
	}
}
