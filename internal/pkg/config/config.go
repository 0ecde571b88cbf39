// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package config loads the Finder and Doer processes' environment-variable
// configuration, per spec §6. Both processes are one-shot and take no
// flags or config file: everything needed to run one cycle is threaded
// through environment variables, the way copilot-cli's own Lambda
// custom-resource binaries are configured.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// LogLevel is one of the five thresholds spec §6 names.
type LogLevel string

// Valid log levels, most to least verbose.
const (
	LogLevelDebug    LogLevel = "DEBUG"
	LogLevelInfo     LogLevel = "INFO"
	LogLevelWarning  LogLevel = "WARNING"
	LogLevelError    LogLevel = "ERROR"
	LogLevelCritical LogLevel = "CRITICAL"
)

func (l LogLevel) valid() bool {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarning, LogLevelError, LogLevelCritical:
		return true
	default:
		return false
	}
}

// Default values applied when the corresponding environment variable is
// unset. Queue and Lambda-function tunables default to the values spec §6
// documents as the reference deployment's own defaults.
const (
	DefaultLogLevel                                   = LogLevelInfo
	DefaultFindLambdaFnTimeoutSecs                     = 60
	DefaultDoLambdaFnTimeoutSecs                       = 30
	DefaultOperationQueueVisibilityTimeoutSecs         = 90
	DefaultQueueMessageBytesMax                        = 32 * 1024
	DefaultOperationFailedQueueMessageRetentionSecs    = 7 * 24 * 60 * 60
	DefaultDoLambdaFnReservedConcurrentExecutions      = 5
)

// Config is the full set of environment-sourced settings for one Finder
// or Doer invocation.
type Config struct {
	// Enable gates whether the Finder does anything at all this cycle.
	Enable bool
	// CopyTags controls whether non-reserved parent tags propagate to
	// backup children.
	CopyTags bool
	// LogLevel is the threshold below which log entries are suppressed.
	LogLevel LogLevel

	FindLambdaFnTimeoutSecs int
	DoLambdaFnTimeoutSecs   int

	OperationQueueVisibilityTimeoutSecs             int
	QueueMessageBytesMax                            int
	OperationFailedQueueMessageRetentionPeriodSecs int

	DoLambdaFnReservedConcurrentExecutions int

	// QueueKMSKeyID and LogKMSKeyID are optional CMK identifiers for
	// server-side encryption of queue payloads and log data. Empty
	// means the provider default (AWS-managed) key.
	QueueKMSKeyID string
	LogKMSKeyID   string

	// OperationQueueURL and OperationDeadLetterQueueURL address the
	// queues the Finder sends to and the Doer consumes from and routes
	// permanent failures to, respectively. Unlike the tunables above,
	// these have no sensible default: both must be set.
	OperationQueueURL           string
	OperationDeadLetterQueueURL string
}

func lookupBool(key string, def bool) (bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("parse %s=%q as bool: %w", key, v, err)
	}
	return b, nil
}

func lookupInt(key string, def int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s=%q as int: %w", key, v, err)
	}
	return n, nil
}

func lookupRequired(key string) (string, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return "", fmt.Errorf("required environment variable %s is not set", key)
	}
	return v, nil
}

// FromEnv populates a Config from the process environment, applying the
// documented defaults for every optional key and returning an error if a
// required key is missing or any value fails to parse.
func FromEnv() (Config, error) {
	var cfg Config
	var err error

	if cfg.Enable, err = lookupBool("ENABLE", true); err != nil {
		return Config{}, err
	}
	if cfg.CopyTags, err = lookupBool("COPY_TAGS", true); err != nil {
		return Config{}, err
	}

	logLevel := LogLevel(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = DefaultLogLevel
	}
	if !logLevel.valid() {
		return Config{}, fmt.Errorf("LOG_LEVEL=%q is not one of DEBUG, INFO, WARNING, ERROR, CRITICAL", logLevel)
	}
	cfg.LogLevel = logLevel

	if cfg.FindLambdaFnTimeoutSecs, err = lookupInt("FIND_LAMBDA_FN_TIMEOUT_SECS", DefaultFindLambdaFnTimeoutSecs); err != nil {
		return Config{}, err
	}
	if cfg.DoLambdaFnTimeoutSecs, err = lookupInt("DO_LAMBDA_FN_TIMEOUT_SECS", DefaultDoLambdaFnTimeoutSecs); err != nil {
		return Config{}, err
	}
	if cfg.OperationQueueVisibilityTimeoutSecs, err = lookupInt("OPERATION_QUEUE_VISIBILITY_TIMEOUT_SECS", DefaultOperationQueueVisibilityTimeoutSecs); err != nil {
		return Config{}, err
	}
	if cfg.QueueMessageBytesMax, err = lookupInt("QUEUE_MESSAGE_BYTES_MAX", DefaultQueueMessageBytesMax); err != nil {
		return Config{}, err
	}
	if cfg.OperationFailedQueueMessageRetentionPeriodSecs, err = lookupInt("OPERATION_FAILED_QUEUE_MESSAGE_RETENTION_PERIOD_SECS", DefaultOperationFailedQueueMessageRetentionSecs); err != nil {
		return Config{}, err
	}
	if cfg.DoLambdaFnReservedConcurrentExecutions, err = lookupInt("DO_LAMBDA_FN_RESERVED_CONCURRENT_EXECUTIONS", DefaultDoLambdaFnReservedConcurrentExecutions); err != nil {
		return Config{}, err
	}

	cfg.QueueKMSKeyID = os.Getenv("QUEUE_KMS_KEY_ID")
	cfg.LogKMSKeyID = os.Getenv("LOG_KMS_KEY_ID")

	if cfg.OperationQueueURL, err = lookupRequired("OPERATION_QUEUE_URL"); err != nil {
		return Config{}, err
	}
	if cfg.OperationDeadLetterQueueURL, err = lookupRequired("OPERATION_DEAD_LETTER_QUEUE_URL"); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
