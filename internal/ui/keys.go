// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// This file defines the keyboard bindings for the full-screen timer.

package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the timer view.
type KeyMap struct {
	Pause key.Binding // Pause or resume the countdown
	Quit  key.Binding // Stop the session
}

// DefaultKeyMap provides the default keybindings.
var DefaultKeyMap = KeyMap{
	Pause: key.NewBinding(
		key.WithKeys(" ", "p"),
		key.WithHelp("space/p", "pause/resume"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q/ctrl+c", "stop"),
	),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
