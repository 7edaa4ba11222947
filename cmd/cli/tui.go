// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"boxing-timer/internal/logger"
	"boxing-timer/internal/session"
	"boxing-timer/internal/ui"

	"github.com/spf13/cobra"
)

func newTUICmd(opts *rootOptions) *cobra.Command {
	flags := &timerFlags{}
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the timer in a full-screen terminal view",
		Long: `Runs the same session as the root command in a full-screen view with a
progress bar and a preview of the next interval.

Keys: space/p pause or resume, q/ctrl+c stop.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(cmd, opts)
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Info("tui session started", "rounds", cfg.Rounds, "intervals", session.Count(cfg))
			state, err := ui.Run(ctx, cfg)
			if err != nil {
				logger.Error("tui session failed", "error", err)
				return err
			}
			logger.Info("tui session finished", "state", state)

			out := cmd.OutOrStdout()
			if state == session.StateCancelled {
				fmt.Fprintln(out, session.StoppedNotice)
				return nil
			}
			successColor.Fprintln(out, "Session complete.")
			return nil
		},
	}
	flags.register(cmd, opts)
	return cmd
}
