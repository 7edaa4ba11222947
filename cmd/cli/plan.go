// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"
	"strings"

	"boxing-timer/internal/countdown"
	"boxing-timer/internal/session"

	"github.com/spf13/cobra"
)

func newPlanCmd(opts *rootOptions) *cobra.Command {
	flags := &timerFlags{}
	cmd := &cobra.Command{
		Use:     "plan",
		Short:   "Print the interval plan without starting the timer",
		Example: "  boxtimer plan\n  boxtimer plan --rounds 12 --rest-seconds 30",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(cmd, opts)
			if err != nil {
				return err
			}
			printPlan(cmd, cfg)
			return nil
		},
	}
	flags.register(cmd, opts)
	return cmd
}

func printPlan(cmd *cobra.Command, cfg session.Config) {
	out := cmd.OutOrStdout()

	statusColor.Fprintf(out, "Session plan: %d round(s)\n", cfg.Rounds)
	fmt.Fprintf(out, "  %-3s %-12s %-8s %s\n", "#", "INTERVAL", "LENGTH", "STARTS AT")
	fmt.Fprintf(out, "  %-3s %-12s %-8s %s\n", strings.Repeat("-", 3), strings.Repeat("-", 12), strings.Repeat("-", 8), strings.Repeat("-", 9))

	elapsed := 0
	position := 0
	for iv := range session.Intervals(cfg) {
		position++
		label := identifierColor.Sprint(fmt.Sprintf("%-12s", iv.Label))
		fmt.Fprintf(out, "  %-3d %s %-8s %s\n", position, label, countdown.FormatClock(iv.Seconds), countdown.FormatClock(elapsed))
		elapsed += iv.Seconds
	}

	bell := "on"
	if !cfg.Bell {
		bell = "off"
	}
	fmt.Fprintf(out, "\nTotal: %s across %d interval(s) ", countdown.FormatClock(session.TotalSeconds(cfg)), position)
	dimColor.Fprintf(out, "(bell %s)\n", bell)
}
