// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"

	"boxing-timer/internal/config"
	"boxing-timer/internal/countdown"
	"boxing-timer/internal/session"

	"github.com/spf13/cobra"
)

// timerFlags are the session flags shared by the root, plan, tui and
// preset save commands.
type timerFlags struct {
	rounds        int
	roundSeconds  int
	restSeconds   int
	warmupSeconds int
	noBell        bool
	preset        string
}

func (f *timerFlags) register(cmd *cobra.Command, opts *rootOptions) {
	fs := cmd.Flags()
	fs.IntVar(&f.rounds, "rounds", session.DefaultRounds, "Number of rounds")
	fs.IntVar(&f.roundSeconds, "round-seconds", session.DefaultRoundSeconds, "Seconds per round")
	fs.IntVar(&f.restSeconds, "rest-seconds", session.DefaultRestSeconds, "Seconds of rest between rounds")
	fs.IntVar(&f.warmupSeconds, "warmup-seconds", session.DefaultWarmupSeconds, "Optional warmup before round 1")
	fs.BoolVar(&f.noBell, "no-bell", false, "Disable the terminal bell")
	fs.StringVarP(&f.preset, "preset", "p", "", "Start from a saved preset (default: the configured default preset)")
	_ = cmd.RegisterFlagCompletionFunc("preset", presetCompletionFunc(opts))
}

// resolve builds the session configuration. Built-in defaults are
// overridden by the selected preset, which is overridden by any flag given
// explicitly on the command line. The result is validated.
func (f *timerFlags) resolve(cmd *cobra.Command, opts *rootOptions) (session.Config, error) {
	cfg := session.DefaultConfig()

	file, err := opts.loadConfig()
	if err != nil {
		return session.Config{}, err
	}
	name := f.preset
	if name == "" {
		name = file.DefaultPreset
	}
	if name != "" {
		p, err := file.Find(name)
		if err != nil {
			return session.Config{}, err
		}
		cfg = p.Session()
	}

	fs := cmd.Flags()
	if fs.Changed("rounds") {
		cfg.Rounds = f.rounds
	}
	if fs.Changed("round-seconds") {
		cfg.RoundSeconds = f.roundSeconds
	}
	if fs.Changed("rest-seconds") {
		cfg.RestSeconds = f.restSeconds
	}
	if fs.Changed("warmup-seconds") {
		cfg.WarmupSeconds = f.warmupSeconds
	}
	if fs.Changed("no-bell") {
		cfg.Bell = !f.noBell
	}

	if err := cfg.Validate(); err != nil {
		return session.Config{}, err
	}
	return cfg, nil
}

// presetCompletionFunc offers saved preset names for shell completion.
func presetCompletionFunc(opts *rootOptions) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg, err := opts.loadConfig()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return presetNames(cfg), cobra.ShellCompDirectiveNoFileComp
	}
}

// presetNames lists presets as completion candidates with a short description.
func presetNames(cfg config.Config) []string {
	names := make([]string, 0, len(cfg.Presets))
	for _, p := range cfg.Presets {
		names = append(names, fmt.Sprintf("%s\t%d x %s", p.Name, p.Rounds, countdown.FormatClock(p.RoundSeconds)))
	}
	return names
}
