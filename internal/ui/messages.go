// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

// startMsg moves the model from not started to running.
type startMsg struct{}

// tickMsg is delivered once per second. Ticks from an older generation are
// ignored; the generation changes on pause and resume so a tick scheduled
// before a pause cannot fire after it.
type tickMsg struct{ gen int }
