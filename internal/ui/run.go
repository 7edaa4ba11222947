// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"context"
	"errors"
	"fmt"
	"os"

	"boxing-timer/internal/session"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the full-screen timer and blocks until the session completes
// or is stopped. Signals are left to ctx; a cancelled context ends the
// program and is reported as StateCancelled, not as an error.
func Run(ctx context.Context, cfg session.Config) (session.State, error) {
	m := NewModel(cfg, os.Stdout)
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithoutSignalHandler())
	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil || errors.Is(err, tea.ErrProgramKilled) {
			return session.StateCancelled, nil
		}
		return session.StateCancelled, fmt.Errorf("timer view failed: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm.State(), nil
	}
	return session.StateCompleted, nil
}
