// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package main is the entrypoint for schedctl, the operator diagnostics
// CLI for the scheduler.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sqlxpert/lights-off-aws/internal/pkg/cli"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/term/color"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/term/log"
)

func init() {
	color.DisableColorBasedOnEnvVar()
	cobra.EnableCommandSorting = false // Maintain the order in which we add commands.
}

func main() {
	if err := cli.BuildRootCmd().Execute(); err != nil {
		log.PrintErrorln(err.Error())
		os.Exit(1)
	}
}
