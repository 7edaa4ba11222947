// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package session describes a workout session: the configuration a user
// picks, the ordered intervals derived from it, and the driver that counts
// those intervals down one after another.
package session

import "errors"

// Default values used when neither a preset nor a flag overrides them.
const (
	DefaultRounds        = 3
	DefaultRoundSeconds  = 180
	DefaultRestSeconds   = 60
	DefaultWarmupSeconds = 10
)

var (
	ErrInvalidRounds        = errors.New("--rounds must be at least 1")
	ErrNegativeRoundSeconds = errors.New("--round-seconds cannot be negative")
	ErrNegativeRestSeconds  = errors.New("--rest-seconds cannot be negative")
	ErrNegativeWarmup       = errors.New("--warmup-seconds cannot be negative")
)

// Config is the immutable description of a session. It is passed by value;
// nothing in this module mutates a Config after it has been validated.
type Config struct {
	// Rounds is the number of work intervals.
	Rounds int
	// RoundSeconds is the length of each work interval.
	RoundSeconds int
	// RestSeconds is the pause between two rounds. Zero disables rests.
	RestSeconds int
	// WarmupSeconds is an optional interval before round 1. Zero disables it.
	WarmupSeconds int
	// Bell rings the terminal bell at the end of every interval.
	Bell bool
}

// DefaultConfig returns the built-in session: 3 rounds of 3 minutes with
// 1 minute rests and a 10 second warmup.
func DefaultConfig() Config {
	return Config{
		Rounds:        DefaultRounds,
		RoundSeconds:  DefaultRoundSeconds,
		RestSeconds:   DefaultRestSeconds,
		WarmupSeconds: DefaultWarmupSeconds,
		Bell:          true,
	}
}

// Validate reports the first constraint the configuration violates.
func (c Config) Validate() error {
	switch {
	case c.Rounds < 1:
		return ErrInvalidRounds
	case c.RoundSeconds < 0:
		return ErrNegativeRoundSeconds
	case c.RestSeconds < 0:
		return ErrNegativeRestSeconds
	case c.WarmupSeconds < 0:
		return ErrNegativeWarmup
	}
	return nil
}
