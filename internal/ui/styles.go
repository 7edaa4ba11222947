// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"boxing-timer/internal/session"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	warmupStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	roundStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	restStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	clockStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Italic(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	panelStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 2)
)

// kindStyle picks the label style for an interval kind.
func kindStyle(k session.Kind) lipgloss.Style {
	switch k {
	case session.KindWarmup:
		return warmupStyle
	case session.KindRest:
		return restStyle
	default:
		return roundStyle
	}
}
