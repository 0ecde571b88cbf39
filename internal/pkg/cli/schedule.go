// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"time"

	"github.com/lnquy/cron"
	"github.com/spf13/cobra"
	robfigcron "github.com/robfig/cron/v3"

	"github.com/sqlxpert/lights-off-aws/internal/pkg/cycle"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/schedule"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/term/color"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/term/log"
)

const defaultNextCount = 5

func buildScheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Describe a schedule tag value or preview its next matches",
	}
	cmd.AddCommand(buildScheduleDescribeCmd())
	cmd.AddCommand(buildScheduleNextCmd())
	return cmd
}

// buildScheduleDescribeCmd renders an English sentence for a schedule, for
// the subset that reduces to plain cron fields. Compound terms (H:M, uTH:M,
// dTH:M) pair values across dimensions in a way lnquy/cron's five
// independent fields can't express, so those schedules get a plain notice
// instead of a fabricated description.
func buildScheduleDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <schedule-value>",
		Short: "Render a schedule tag value as an English sentence, when possible",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := schedule.Parse(args[0])
			if err != nil {
				return printErrorAndReturn(err)
			}
			expr, ok := s.ReduceToCron()
			if !ok {
				log.PrintWarningln("schedule uses a compound term (H:M, uTH:M, or dTH:M); no plain-English description is available")
				return nil
			}
			desc, err := cron.NewDescriptor()
			if err != nil {
				return printErrorAndReturn(fmt.Errorf("build cron descriptor: %w", err))
			}
			sentence, err := desc.ToDescription(expr, cron.Locale_en)
			if err != nil {
				return printErrorAndReturn(fmt.Errorf("describe cron expression %q: %w", expr, err))
			}
			log.Printf("%s (cron: %s)\n", color.Emphasis(sentence), expr)
			return nil
		},
	}
}

// buildScheduleNextCmd previews upcoming matching cycle instants. It always
// walks cycle instants forward and tests Matches directly, since that works
// for every schedule shape, including compound terms that can't reduce to
// cron. When the schedule does reduce, robfig/cron/v3 parses the same
// synthesized expression and computes its own Next as an independent
// cross-check against our matcher; a mismatch is reported rather than
// silently trusted.
func buildScheduleNextCmd() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "next <schedule-value>",
		Short: "Preview the next matching cycle instants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := schedule.Parse(args[0])
			if err != nil {
				return printErrorAndReturn(err)
			}

			var cronSched robfigcron.Schedule
			if expr, ok := s.ReduceToCron(); ok {
				cronSched, err = robfigcron.ParseStandard(expr)
				if err != nil {
					return printErrorAndReturn(fmt.Errorf("parse synthesized cron expression %q: %w", expr, err))
				}
			}

			prev := cycle.Now().Time()
			at := prev
			found := 0
			for found < count {
				at = at.Add(cycle.Length)
				instant := cycle.FromTime(at)
				if !s.Matches(instant.Tuple()) {
					continue
				}
				found++
				line := instant.String()
				if cronSched != nil {
					if want := cronSched.Next(prev); !want.Equal(instant.Time()) {
						line = fmt.Sprintf("%s (cross-check mismatch: robfig/cron expects %s)", line, want.Format(time.RFC3339))
					}
					prev = instant.Time()
				}
				log.Println(line)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&count, "count", defaultNextCount, "number of upcoming matches to print")
	return cmd
}
