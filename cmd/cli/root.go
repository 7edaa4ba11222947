// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"boxing-timer/internal/config"
	"boxing-timer/internal/countdown"
	"boxing-timer/internal/logger"
	"boxing-timer/internal/session"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	statusColor     = color.New(color.FgCyan)
	errorColor      = color.New(color.FgRed)
	successColor    = color.New(color.FgGreen)
	identifierColor = color.New(color.FgBlue)
	dimColor        = color.New(color.Faint)
)

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	verbose    bool
	noColor    bool
}

// path returns the preferences file to use, honouring --config.
func (o *rootOptions) path() (string, error) {
	if o.configPath == "" {
		return config.DefaultConfigPath()
	}
	return config.ResolvePath(o.configPath)
}

func (o *rootOptions) loadConfig() (config.Config, error) {
	path, err := o.path()
	if err != nil {
		return config.Config{}, err
	}
	return config.LoadConfigFrom(path)
}

func (o *rootOptions) saveConfig(cfg config.Config) error {
	path, err := o.path()
	if err != nil {
		return err
	}
	return config.SaveConfigTo(path, cfg)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	flags := &timerFlags{}

	rootCmd := &cobra.Command{
		Use:   "boxtimer",
		Short: "Boxing style round timer",
		Long: `A command-line interval timer for boxing-style workouts.

Runs an optional warmup followed by timed rounds with rest periods in between,
counting each interval down on a single line and ringing the terminal bell
when an interval ends. Press Ctrl+C to stop early.

Named presets are stored in ~/.config/boxing-timer/config.yaml.`,
		Example: "  boxtimer\n  boxtimer --rounds 12 --round-seconds 120 --rest-seconds 30\n  boxtimer --preset sparring",
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			logger.InitLogger(logger.Options{Stderr: opts.verbose, Level: level})
			if opts.noColor {
				color.NoColor = true
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(cmd, opts)
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true
			return runTimer(cmd, cfg, !opts.noColor)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to the preferences file (default ~/.config/boxing-timer/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Write debug logs to stderr as well as the log file")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable coloured output")
	flags.register(rootCmd, opts)

	rootCmd.AddCommand(newPlanCmd(opts))
	rootCmd.AddCommand(newTUICmd(opts))
	rootCmd.AddCommand(newPresetCmd(opts))

	return rootCmd
}

// runTimer counts the whole session down on the command's output stream.
// An interrupt stops the session cleanly and is not reported as an error.
func runTimer(cmd *cobra.Command, cfg session.Config, colored bool) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	renderer := countdown.NewRenderer(out, countdown.WithBell(cfg.Bell), countdown.WithColor(colored))
	driver := session.NewDriver(cfg, renderer, out)
	driver.OnInterval = func(position int, iv session.Interval) {
		logger.Debug("interval started", "position", position, "label", iv.Label, "seconds", iv.Seconds)
	}

	logger.Info("session started",
		"rounds", cfg.Rounds,
		"round_seconds", cfg.RoundSeconds,
		"rest_seconds", cfg.RestSeconds,
		"warmup_seconds", cfg.WarmupSeconds,
		"bell", cfg.Bell,
		"intervals", session.Count(cfg),
	)

	state, err := driver.Run(ctx)
	if err != nil {
		logger.Error("session failed", "state", state, "error", err)
		return err
	}
	logger.Info("session finished", "state", state)
	return nil
}

// RunCLI executes the command tree and exits non-zero on failure.
func RunCLI() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
