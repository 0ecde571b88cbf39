// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sqlxpert/lights-off-aws/internal/pkg/cycle"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/schedule"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/term/color"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/term/log"
)

func buildTagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Inspect an operation tag's schedule value",
	}
	cmd.AddCommand(buildTagValidateCmd())
	cmd.AddCommand(buildTagMatchesCmd())
	return cmd
}

func buildTagValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <schedule-value>",
		Short: "Parse a schedule tag value and print the rejection reason, if any",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := schedule.Parse(args[0])
			if err != nil {
				return printErrorAndReturn(err)
			}
			log.PrintSuccessln(fmt.Sprintf("%q parses to a valid schedule", args[0]))
			if expr, ok := s.ReduceToCron(); ok {
				log.Printf("equivalent cron expression: %s\n", color.Emphasis(expr))
			}
			return nil
		},
	}
}

func buildTagMatchesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "matches <schedule-value> <RFC3339-cycle-instant>",
		Short: "Check whether a schedule value matches an arbitrary cycle instant",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := schedule.Parse(args[0])
			if err != nil {
				return printErrorAndReturn(err)
			}
			parsed, err := cycle.ParseInstant(args[1])
			if err != nil {
				return printErrorAndReturn(fmt.Errorf("parse cycle instant %q: %w", args[1], err))
			}
			// Floor to the enclosing cycle boundary: a Doer never sees an
			// unaligned instant, and matching against one here would
			// silently never fire, masking the real behavior.
			at := cycle.FromTime(parsed.Time())
			if s.Matches(at.Tuple()) {
				log.PrintSuccessln(fmt.Sprintf("matches at %s", at.String()))
			} else {
				log.PrintWarningln(fmt.Sprintf("does not match at %s", at.String()))
			}
			return nil
		},
	}
}
