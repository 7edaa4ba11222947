// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package countdown

import "time"

// Clock is the time source the renderer waits on.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time                         { return time.Now() }
func (systemClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// SystemClock returns the wall clock backed by the time package.
func SystemClock() Clock {
	return systemClock{}
}
