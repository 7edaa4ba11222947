// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package countdown renders a single evolving status line that counts an
// interval down to zero, one update per second.
package countdown

import (
	"context"
	"fmt"
	"io"
	"time"

	"boxing-timer/internal/session"

	"github.com/fatih/color"
)

// BellChar is written after an interval ends when the bell is enabled.
const BellChar = "\a"

var (
	warmupColor = color.New(color.FgCyan, color.Bold)
	roundColor  = color.New(color.FgGreen, color.Bold)
	restColor   = color.New(color.FgYellow, color.Bold)
)

// Renderer writes countdown lines to an output stream. It is not safe for
// concurrent use; a session has exactly one renderer writing to stdout.
type Renderer struct {
	out   io.Writer
	clock Clock
	bell  bool
	color bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(r *Renderer) { r.clock = c }
}

// WithBell enables or disables the completion bell.
func WithBell(enabled bool) Option {
	return func(r *Renderer) { r.bell = enabled }
}

// WithColor colours interval labels by kind. fatih/color still drops the
// escape codes when stdout is not a terminal.
func WithColor(enabled bool) Option {
	return func(r *Renderer) { r.color = enabled }
}

// NewRenderer returns a renderer writing to out. The bell and colour are off
// unless enabled through options.
func NewRenderer(out io.Writer, opts ...Option) *Renderer {
	r := &Renderer{out: out, clock: SystemClock()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FormatClock formats seconds as MM:SS with both fields zero-padded.
func FormatClock(seconds int) string {
	minutes, secs := seconds/60, seconds%60
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}

// Countdown renders iv, colouring its label by kind when colour is enabled.
func (r *Renderer) Countdown(ctx context.Context, iv session.Interval) error {
	return r.Run(ctx, r.paint(iv), iv.Seconds)
}

// Run counts seconds down to zero inclusive, rewriting the same line once
// per second. A zero-length countdown prints 00:00 once and does not wait.
// After zero the line is terminated and the bell rings if enabled.
//
// Ticks are anchored to the start of the countdown, so time lost writing a
// line is taken out of the next wait instead of accumulating.
//
// If ctx is cancelled during a wait, Run returns ctx.Err() immediately and
// leaves the current line unterminated.
func (r *Renderer) Run(ctx context.Context, label string, seconds int) error {
	start := r.clock.Now()
	for remaining := seconds; remaining >= 0; remaining-- {
		if _, err := fmt.Fprintf(r.out, "\r%s: %s   ", label, FormatClock(remaining)); err != nil {
			return fmt.Errorf("failed to write countdown: %w", err)
		}
		if remaining == 0 {
			break
		}

		tick := time.Duration(seconds-remaining+1) * time.Second
		wait := start.Add(tick).Sub(r.clock.Now())
		if wait <= 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-r.clock.After(wait):
		}
	}

	if _, err := io.WriteString(r.out, "\n"); err != nil {
		return fmt.Errorf("failed to write countdown: %w", err)
	}
	if r.bell {
		if _, err := io.WriteString(r.out, BellChar); err != nil {
			return fmt.Errorf("failed to ring bell: %w", err)
		}
	}
	return nil
}

func (r *Renderer) paint(iv session.Interval) string {
	if !r.color {
		return iv.Label
	}
	switch iv.Kind {
	case session.KindWarmup:
		return warmupColor.Sprint(iv.Label)
	case session.KindRest:
		return restColor.Sprint(iv.Label)
	default:
		return roundColor.Sprint(iv.Label)
	}
}
