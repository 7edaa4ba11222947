// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"
	"strings"

	"boxing-timer/internal/config"
	"boxing-timer/internal/countdown"
	"boxing-timer/internal/logger"

	"github.com/spf13/cobra"
)

// newPresetCmd is the parent command for all preset-related subcommands.
func newPresetCmd(opts *rootOptions) *cobra.Command {
	presetCmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage saved session presets",
		Long: `Provides subcommands to save, list, remove and select named session presets.
A preset stores rounds, round/rest/warmup lengths and the bell setting.
The default preset is used whenever --preset is not given.`,
	}

	presetCmd.AddCommand(newPresetListCmd(opts))
	presetCmd.AddCommand(newPresetSaveCmd(opts))
	presetCmd.AddCommand(newPresetRemoveCmd(opts))
	presetCmd.AddCommand(newPresetUseCmd(opts))
	return presetCmd
}

func newPresetListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved presets",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			out := cmd.OutOrStdout()

			if len(cfg.Presets) == 0 {
				fmt.Fprintln(out, "No presets saved. Use 'boxtimer preset save <name>' to create one.")
				return nil
			}

			fmt.Fprintf(out, "  %-16s %-7s %-7s %-7s %-7s %s\n", "NAME", "ROUNDS", "ROUND", "REST", "WARMUP", "BELL")
			fmt.Fprintf(out, "  %-16s %-7s %-7s %-7s %-7s %s\n", strings.Repeat("-", 16), strings.Repeat("-", 6), strings.Repeat("-", 5), strings.Repeat("-", 5), strings.Repeat("-", 6), strings.Repeat("-", 4))
			for _, p := range cfg.Presets {
				marker := " "
				if p.Name == cfg.DefaultPreset {
					marker = "*"
				}
				bell := "on"
				if p.NoBell {
					bell = "off"
				}
				name := identifierColor.Sprint(fmt.Sprintf("%-16s", p.Name))
				fmt.Fprintf(out, "%s %s %-7d %-7s %-7s %-7s %s\n", marker, name, p.Rounds,
					countdown.FormatClock(p.RoundSeconds), countdown.FormatClock(p.RestSeconds), countdown.FormatClock(p.WarmupSeconds), bell)
			}
			if cfg.DefaultPreset != "" {
				dimColor.Fprintln(out, "\n* default preset")
			}
			return nil
		},
	}
}

func newPresetSaveCmd(opts *rootOptions) *cobra.Command {
	flags := &timerFlags{}
	var makeDefault bool

	cmd := &cobra.Command{
		Use:   "save <name> [flags]",
		Short: "Save the effective session settings as a named preset",
		Long: `Saves the session settings that the timer would run with, after applying
--preset and any explicit flags, under the given name. An existing preset with
the same name is replaced.`,
		Example: "  boxtimer preset save sparring --rounds 6 --round-seconds 120 --rest-seconds 30\n  boxtimer preset save quiet --no-bell --default",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if err := config.ValidatePresetName(name); err != nil {
				return err
			}
			sessionCfg, err := flags.resolve(cmd, opts)
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true

			cfg, err := opts.loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			cfg.Upsert(config.PresetFromSession(name, sessionCfg))
			if makeDefault {
				if err := cfg.SetDefault(name); err != nil {
					return err
				}
			}
			if err := opts.saveConfig(cfg); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			logger.Info("preset saved", "name", name, "default", makeDefault)
			successColor.Fprintf(cmd.OutOrStdout(), "Preset '%s' saved.\n", name)
			return nil
		},
	}
	flags.register(cmd, opts)
	cmd.Flags().BoolVar(&makeDefault, "default", false, "Also make this the default preset")
	return cmd
}

func newPresetRemoveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "remove <name>",
		Aliases:           []string{"rm"},
		Short:             "Remove a saved preset",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: presetArgCompletion(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			cfg, err := opts.loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			wasDefault := cfg.DefaultPreset == name
			if err := cfg.Remove(name); err != nil {
				return err
			}
			cmd.SilenceUsage = true
			if err := opts.saveConfig(cfg); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			logger.Info("preset removed", "name", name)
			out := cmd.OutOrStdout()
			successColor.Fprintf(out, "Preset '%s' removed.\n", name)
			if wasDefault {
				errorColor.Fprintln(out, "It was the default preset; built-in defaults apply again.")
			}
			return nil
		},
	}
}

func newPresetUseCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "use <name>",
		Short:             "Make a preset the default",
		Long:              `Makes the named preset the default for every run. Pass an empty name ("") to go back to the built-in defaults.`,
		Example:           "  boxtimer preset use sparring\n  boxtimer preset use \"\"",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: presetArgCompletion(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			cfg, err := opts.loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if err := cfg.SetDefault(name); err != nil {
				return err
			}
			cmd.SilenceUsage = true
			if err := opts.saveConfig(cfg); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			logger.Info("default preset changed", "name", name)
			out := cmd.OutOrStdout()
			if name == "" {
				successColor.Fprintln(out, "Default preset cleared.")
			} else {
				successColor.Fprintf(out, "Default preset set to '%s'.\n", name)
			}
			return nil
		},
	}
}

// presetArgCompletion completes the single preset-name argument.
func presetArgCompletion(opts *rootOptions) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	complete := presetCompletionFunc(opts)
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) != 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return complete(cmd, args, toComplete)
	}
}
