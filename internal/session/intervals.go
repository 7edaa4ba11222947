// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package session

import (
	"fmt"
	"iter"
	"slices"
	"time"
)

// Kind identifies what an interval is for.
type Kind string

const (
	KindWarmup Kind = "warmup"
	KindRound  Kind = "round"
	KindRest   Kind = "rest"
)

// Interval is one labelled, timed segment of a session.
type Interval struct {
	Label   string
	Seconds int
	Kind    Kind
	// Round is the 1-based round number for round intervals, the round
	// just finished for rest intervals, and 0 for the warmup.
	Round int
}

// Duration returns the interval length as a time.Duration.
func (i Interval) Duration() time.Duration {
	return time.Duration(i.Seconds) * time.Second
}

// Intervals yields the intervals of a session in order: the warmup if one
// is configured, then every round with a rest between consecutive rounds.
// There is never a rest after the last round. Zero-length intervals are
// still yielded.
//
// The configuration must already be valid.
func Intervals(cfg Config) iter.Seq[Interval] {
	return func(yield func(Interval) bool) {
		if cfg.WarmupSeconds > 0 {
			if !yield(Interval{Label: "Warmup", Seconds: cfg.WarmupSeconds, Kind: KindWarmup}) {
				return
			}
		}
		for round := 1; round <= cfg.Rounds; round++ {
			label := fmt.Sprintf("Round %d/%d", round, cfg.Rounds)
			if !yield(Interval{Label: label, Seconds: cfg.RoundSeconds, Kind: KindRound, Round: round}) {
				return
			}
			if round != cfg.Rounds && cfg.RestSeconds > 0 {
				if !yield(Interval{Label: "Rest", Seconds: cfg.RestSeconds, Kind: KindRest, Round: round}) {
					return
				}
			}
		}
	}
}

// Plan materializes the full interval sequence.
func Plan(cfg Config) []Interval {
	return slices.Collect(Intervals(cfg))
}

// Count returns the number of intervals Intervals yields, without producing them.
func Count(cfg Config) int {
	n := cfg.Rounds
	if cfg.WarmupSeconds > 0 {
		n++
	}
	if cfg.RestSeconds > 0 && cfg.Rounds > 1 {
		n += cfg.Rounds - 1
	}
	return n
}

// TotalSeconds is the nominal length of the whole session.
func TotalSeconds(cfg Config) int {
	total := 0
	for iv := range Intervals(cfg) {
		total += iv.Seconds
	}
	return total
}
