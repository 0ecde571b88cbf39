// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package cli implements schedctl, an operator diagnostics CLI for the
// scheduler. It never drives a cycle itself: every subcommand is a
// read-only or dry-run tool for validating a schedule tag, previewing
// catalog coverage, or cross-checking fleet membership against Resource
// Groups (spec §1's Non-goals exclude an interactive surface for the
// scheduler's own operation, not for tooling that sits beside it).
package cli

import (
	"github.com/spf13/cobra"

	"github.com/sqlxpert/lights-off-aws/internal/pkg/term/log"
)

// BuildRootCmd assembles the schedctl command tree.
func BuildRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedctl",
		Short: "Operator diagnostics for the lights-off-aws scheduler",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// If we don't set a Run() function the help menu doesn't show up.
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(buildTagCmd())
	cmd.AddCommand(buildCatalogCmd())
	cmd.AddCommand(buildScheduleCmd())
	cmd.AddCommand(buildFleetCmd())

	return cmd
}

func printErrorAndReturn(err error) error {
	log.PrintErrorln(err.Error())
	return err
}
