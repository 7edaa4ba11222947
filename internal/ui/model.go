// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"boxing-timer/internal/countdown"
	"boxing-timer/internal/session"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

const maxProgressWidth = 60

// Model is the bubbletea model for a full-screen session.
type Model struct {
	cfg       session.Config
	plan      []session.Interval
	index     int
	remaining int
	paused    bool
	state     session.State
	gen       int
	rings     int

	bell     io.Writer
	keys     KeyMap
	help     help.Model
	progress progress.Model
}

// NewModel builds a model for cfg. The bell character is written to bell
// at the end of every interval when cfg.Bell is set.
func NewModel(cfg session.Config, bell io.Writer) Model {
	return Model{
		cfg:      cfg,
		plan:     session.Plan(cfg),
		state:    session.StateNotStarted,
		bell:     bell,
		keys:     DefaultKeyMap,
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage(), progress.WithWidth(maxProgressWidth)),
	}
}

// State reports the session state.
func (m Model) State() session.State {
	return m.state
}

func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return startMsg{} }
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.progress.Width = min(maxProgressWidth, max(10, msg.Width-8))
		m.help.Width = msg.Width
		return m, nil

	case startMsg:
		if m.state != session.StateNotStarted {
			return m, nil
		}
		m.state = session.StateRunning
		return m.enter()

	case tickMsg:
		if msg.gen != m.gen || m.paused || m.state != session.StateRunning {
			return m, nil
		}
		m.remaining--
		if m.remaining > 0 {
			return m, m.tick()
		}
		m.remaining = 0
		ring := m.ring()
		m.index++
		next, cmd := m.enter()
		return next, tea.Sequence(ring, cmd)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			if m.state == session.StateRunning || m.state == session.StateNotStarted {
				m.state = session.StateCancelled
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			if m.state != session.StateRunning {
				return m, nil
			}
			m.paused = !m.paused
			m.gen++
			if m.paused {
				return m, nil
			}
			return m, m.tick()
		}
	}
	return m, nil
}

// enter starts the interval at m.index. Zero-length intervals complete on
// the spot. When the plan is exhausted the session is completed.
func (m Model) enter() (Model, tea.Cmd) {
	var cmds []tea.Cmd
	for m.index < len(m.plan) && m.plan[m.index].Seconds == 0 {
		cmds = append(cmds, m.ring())
		m.index++
	}
	if m.index >= len(m.plan) {
		m.state = session.StateCompleted
		cmds = append(cmds, tea.Quit)
		return m, tea.Sequence(cmds...)
	}
	m.remaining = m.plan[m.index].Seconds
	m.gen++
	cmds = append(cmds, m.tick())
	return m, tea.Batch(cmds...)
}

func (m Model) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// ring counts the completion signal and returns the command that writes it.
func (m *Model) ring() tea.Cmd {
	if !m.cfg.Bell || m.bell == nil {
		return nil
	}
	m.rings++
	w := m.bell
	return func() tea.Msg {
		_, _ = io.WriteString(w, countdown.BellChar)
		return nil
	}
}

func (m Model) View() string {
	if m.state == session.StateCompleted || m.state == session.StateCancelled {
		return ""
	}
	if m.index >= len(m.plan) {
		return ""
	}

	current := m.plan[m.index]
	var b strings.Builder

	b.WriteString(titleStyle.Render("Boxing Timer"))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  interval %d of %d", m.index+1, len(m.plan))))
	b.WriteString("\n\n")

	b.WriteString(kindStyle(current.Kind).Render(current.Label))
	b.WriteString(clockStyle.Render(countdown.FormatClock(m.remaining)))
	if m.paused {
		b.WriteString(pausedStyle.Render("paused"))
	}
	b.WriteString("\n\n")

	done := 0.0
	if current.Seconds > 0 {
		done = float64(current.Seconds-m.remaining) / float64(current.Seconds)
	}
	b.WriteString(m.progress.ViewAs(done))
	b.WriteString("\n\n")

	if m.index+1 < len(m.plan) {
		next := m.plan[m.index+1]
		b.WriteString(dimStyle.Render(fmt.Sprintf("Next: %s (%s)", next.Label, countdown.FormatClock(next.Seconds))))
	} else {
		b.WriteString(dimStyle.Render("Last interval"))
	}

	return panelStyle.Render(b.String()) + "\n" + m.help.View(m.keys) + "\n"
}
