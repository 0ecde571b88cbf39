// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Command doer is the scheduler's queue-consumer process (spec §4.4): a
// pool of workers that long-poll the operation queue, apply the
// expiration discipline, and invoke the matching catalog operation for
// each message. It takes no flags; everything comes from the process
// environment and the AWS session's default credential chain.
package main

import (
	"context"
	"os"
	"time"

	"github.com/sqlxpert/lights-off-aws/internal/pkg/aws/session"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/aws/sqs"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/catalog"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/config"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/doer"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/logging"
)

func main() {
	if err := run(); err != nil {
		logging.New(os.Stdout, config.LogLevelError).Critical("doer invocation failed", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	log := logging.New(os.Stdout, cfg.LogLevel)

	provider := &session.Provider{}
	sess, err := provider.Default()
	if err != nil {
		return err
	}

	driver := &doer.Driver{
		Catalog:    catalog.Build(sess),
		Receiver:   sqs.New(sess, cfg.OperationQueueURL),
		DeadLetter: sqs.New(sess, cfg.OperationDeadLetterQueueURL),
		Cfg:        cfg,
		Log:        log,
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.DoLambdaFnTimeoutSecs)*time.Second)
	defer cancel()

	return driver.Run(ctx, cfg.DoLambdaFnReservedConcurrentExecutions)
}
