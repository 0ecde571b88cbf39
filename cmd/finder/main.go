// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Command finder is the scheduler's cycle-anchored scan process
// (spec §4.3). It is invoked once per cycle by an external trigger
// (spec §5), one minute after the cycle boundary, and takes no flags:
// everything it needs comes from the process environment and the AWS
// session's default credential chain.
package main

import (
	"context"
	"os"
	"time"

	awssession "github.com/aws/aws-sdk-go/aws/session"

	"github.com/sqlxpert/lights-off-aws/internal/pkg/aws/identity"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/aws/session"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/aws/sqs"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/catalog"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/config"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/finder"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/logging"
)

func main() {
	if err := run(); err != nil {
		logging.New(os.Stdout, config.LogLevelError).Critical("finder invocation failed", map[string]interface{}{"error": err.Error()})
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

	logCallerIdentity(sess, log)

	driver := &finder.Driver{
		Catalog: catalog.Build(sess),
		Sender:  sqs.New(sess, cfg.OperationQueueURL),
		Cfg:     cfg,
		Log:     log,
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.FindLambdaFnTimeoutSecs)*time.Second)
	defer cancel()

	return driver.Run(ctx)
}

func logCallerIdentity(sess *awssession.Session, log *logging.Logger) {
	caller, err := identity.New(sess).Get()
	if err != nil {
		log.Warning("could not determine caller identity", map[string]interface{}{"error": err.Error()})
		return
	}
	log.Debug("running as", map[string]interface{}{"account": caller.Account, "arn": caller.ARN})
}
