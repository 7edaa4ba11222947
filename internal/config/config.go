// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package config handles the user preferences file: reading and writing it,
// managing named session presets, and choosing the default preset.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode"

	"boxing-timer/internal/session"

	"gopkg.in/yaml.v3"
)

const appName = "boxing-timer"

var (
	ErrPresetNotFound    = errors.New("preset not found")
	ErrInvalidPresetName = errors.New("preset name must be non-empty and contain no whitespace")
)

// Preset is a named session configuration saved in the config file.
type Preset struct {
	// Name is the unique identifier used with --preset
	Name string `yaml:"name"`

	// Rounds is the number of work rounds
	Rounds int `yaml:"rounds"`

	// RoundSeconds is the length of a round in seconds
	RoundSeconds int `yaml:"round_seconds"`

	// RestSeconds is the rest between rounds in seconds
	RestSeconds int `yaml:"rest_seconds"`

	// WarmupSeconds is the optional warmup before round 1
	WarmupSeconds int `yaml:"warmup_seconds"`

	// NoBell disables the terminal bell for this preset
	NoBell bool `yaml:"no_bell,omitempty"`
}

// Config represents the top-level preferences file
type Config struct {
	// DefaultPreset is applied when no --preset flag is given (optional)
	DefaultPreset string `yaml:"default_preset,omitempty"`

	// Presets is the list of saved session presets
	Presets []Preset `yaml:"presets"`
}

// PresetFromSession captures a session configuration under name.
func PresetFromSession(name string, cfg session.Config) Preset {
	return Preset{
		Name:          name,
		Rounds:        cfg.Rounds,
		RoundSeconds:  cfg.RoundSeconds,
		RestSeconds:   cfg.RestSeconds,
		WarmupSeconds: cfg.WarmupSeconds,
		NoBell:        !cfg.Bell,
	}
}

// Session converts the preset back into a session configuration.
func (p Preset) Session() session.Config {
	return session.Config{
		Rounds:        p.Rounds,
		RoundSeconds:  p.RoundSeconds,
		RestSeconds:   p.RestSeconds,
		WarmupSeconds: p.WarmupSeconds,
		Bell:          !p.NoBell,
	}
}

// Validate checks the preset name and its session values.
func (p Preset) Validate() error {
	if err := ValidatePresetName(p.Name); err != nil {
		return err
	}
	if err := p.Session().Validate(); err != nil {
		return fmt.Errorf("preset %q: %w", p.Name, err)
	}
	return nil
}

// ValidatePresetName rejects empty names and names containing whitespace.
func ValidatePresetName(name string) error {
	if name == "" || strings.ContainsFunc(name, unicode.IsSpace) {
		return fmt.Errorf("%w: %q", ErrInvalidPresetName, name)
	}
	return nil
}

// Find returns the preset called name.
func (c Config) Find(name string) (Preset, error) {
	for _, p := range c.Presets {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrPresetNotFound, name)
}

// Upsert adds p, replacing any preset with the same name in place.
func (c *Config) Upsert(p Preset) {
	for i := range c.Presets {
		if c.Presets[i].Name == p.Name {
			c.Presets[i] = p
			return
		}
	}
	c.Presets = append(c.Presets, p)
}

// Remove deletes the preset called name. Removing the default preset also
// clears DefaultPreset.
func (c *Config) Remove(name string) error {
	before := len(c.Presets)
	c.Presets = slices.DeleteFunc(c.Presets, func(p Preset) bool {
		return p.Name == name
	})
	if len(c.Presets) == before {
		return fmt.Errorf("%w: %q", ErrPresetNotFound, name)
	}
	if c.DefaultPreset == name {
		c.DefaultPreset = ""
	}
	return nil
}

// SetDefault marks name as the default preset. An empty name clears it.
func (c *Config) SetDefault(name string) error {
	if name != "" {
		if _, err := c.Find(name); err != nil {
			return err
		}
	}
	c.DefaultPreset = name
	return nil
}

func DefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, appName, "config.yaml"), nil
}

func LoadConfig() (Config, error) {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return Config{}, err
	}
	return LoadConfigFrom(configPath)
}

// LoadConfigFrom reads the config file at configPath. A missing file yields
// an empty configuration.
func LoadConfigFrom(configPath string) (Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	for _, p := range cfg.Presets {
		if err := p.Validate(); err != nil {
			return Config{}, fmt.Errorf("invalid preset in %s: %w", configPath, err)
		}
	}

	return cfg, nil
}

func EnsureConfigDir(configPath string) error {
	configDir := filepath.Dir(configPath)
	err := os.MkdirAll(configDir, 0750) // rwxr-x---
	if err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", configDir, err)
	}
	return nil
}

func SaveConfig(cfg Config) error {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return err
	}
	return SaveConfigTo(configPath, cfg)
}

// SaveConfigTo writes cfg to configPath, creating its directory if needed.
func SaveConfigTo(configPath string, cfg Config) error {
	err := EnsureConfigDir(configPath)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	// Write with permissions rw-r----- (0640)
	err = os.WriteFile(configPath, data, 0640)
	if err != nil {
		return fmt.Errorf("failed to write config file %s: %w", configPath, err)
	}

	return nil
}

func ResolvePath(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path, fmt.Errorf("could not get user home directory to resolve path '%s': %w", path, err)
	}

	return filepath.Join(homeDir, path[2:]), nil
}
