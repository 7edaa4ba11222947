// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package session

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// State is the lifecycle stage of a Driver.
type State string

const (
	StateNotStarted State = "not_started"
	StateRunning    State = "running"
	StateCompleted  State = "completed"
	StateCancelled  State = "cancelled"
)

// StoppedNotice is printed when a running session is interrupted.
const StoppedNotice = "Timer stopped."

// ErrAlreadyStarted is returned when Run is called on a driver that has run before.
var ErrAlreadyStarted = errors.New("session already started")

// Countdowner counts a single interval down. It must return the context's
// error promptly once ctx is cancelled.
type Countdowner interface {
	Countdown(ctx context.Context, iv Interval) error
}

// Driver runs every interval of a session in order through a Countdowner.
// A Driver runs at most once.
type Driver struct {
	cfg       Config
	countdown Countdowner
	out       io.Writer
	state     State

	// OnInterval, if set, is called with the 1-based position of each
	// interval just before it is counted down.
	OnInterval func(position int, iv Interval)
}

// NewDriver creates a driver for cfg. The stopped notice is written to out.
func NewDriver(cfg Config, countdown Countdowner, out io.Writer) *Driver {
	return &Driver{
		cfg:       cfg,
		countdown: countdown,
		out:       out,
		state:     StateNotStarted,
	}
}

// State reports where the driver is in its lifecycle.
func (d *Driver) State() State {
	return d.state
}

// Run counts down every interval in sequence. Cancelling ctx at any point
// stops the session: the current output line is terminated, the stopped
// notice is printed, and Run returns StateCancelled with a nil error.
// Errors other than cancellation are returned wrapped.
func (d *Driver) Run(ctx context.Context) (State, error) {
	if d.state != StateNotStarted {
		return d.state, ErrAlreadyStarted
	}
	d.state = StateRunning

	position := 0
	for iv := range Intervals(d.cfg) {
		if ctx.Err() != nil {
			return d.stop()
		}
		position++
		if d.OnInterval != nil {
			d.OnInterval(position, iv)
		}
		if err := d.countdown.Countdown(ctx, iv); err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return d.stop()
			}
			d.state = StateCancelled
			return d.state, fmt.Errorf("countdown for %q failed: %w", iv.Label, err)
		}
	}

	d.state = StateCompleted
	return d.state, nil
}

func (d *Driver) stop() (State, error) {
	d.state = StateCancelled
	fmt.Fprintf(d.out, "\n%s\n", StoppedNotice)
	return d.state, nil
}
