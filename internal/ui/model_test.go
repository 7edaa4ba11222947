// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"bytes"
	"strings"
	"testing"

	"boxing-timer/internal/session"

	tea "github.com/charmbracelet/bubbletea"
)

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelStartsFirstInterval(t *testing.T) {
	m := NewModel(session.Config{Rounds: 2, RoundSeconds: 3, RestSeconds: 2, WarmupSeconds: 1}, nil)
	if m.State() != session.StateNotStarted {
		t.Fatalf("initial state = %s", m.State())
	}
	if _, ok := m.Init()().(startMsg); !ok {
		t.Fatal("Init should emit startMsg")
	}

	m, cmd := update(t, m, startMsg{})
	if m.State() != session.StateRunning {
		t.Fatalf("state = %s, want running", m.State())
	}
	if cmd == nil {
		t.Fatal("expected a tick command")
	}
	if m.index != 0 || m.remaining != 1 {
		t.Fatalf("index=%d remaining=%d, want warmup with 1s", m.index, m.remaining)
	}
	if !strings.Contains(m.View(), "Warmup") || !strings.Contains(m.View(), "00:01") {
		t.Fatalf("view missing warmup: %q", m.View())
	}
}

func TestModelRunsToCompletion(t *testing.T) {
	var bell bytes.Buffer
	cfg := session.Config{Rounds: 2, RoundSeconds: 2, RestSeconds: 1, WarmupSeconds: 1, Bell: true}
	m := NewModel(cfg, &bell)
	m, _ = update(t, m, startMsg{})

	var labels []string
	for i := 0; i < 20 && m.State() == session.StateRunning; i++ {
		labels = append(labels, m.plan[m.index].Label)
		m, _ = update(t, m, tickMsg{gen: m.gen})
	}
	if m.State() != session.StateCompleted {
		t.Fatalf("state = %s, want completed", m.State())
	}
	if m.rings != 4 {
		t.Fatalf("rang %d times, want 4", m.rings)
	}
	want := "Warmup,Round 1/2,Round 1/2,Rest,Round 2/2,Round 2/2"
	if got := strings.Join(labels, ","); got != want {
		t.Fatalf("ticked intervals %s, want %s", got, want)
	}
	if m.View() != "" {
		t.Fatalf("completed view should be empty, got %q", m.View())
	}
}

func TestModelZeroLengthIntervals(t *testing.T) {
	m := NewModel(session.Config{Rounds: 1, Bell: true}, &bytes.Buffer{})
	m, cmd := update(t, m, startMsg{})
	if m.State() != session.StateCompleted {
		t.Fatalf("state = %s, want completed", m.State())
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if m.rings != 1 {
		t.Fatalf("rang %d times, want 1", m.rings)
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	m := NewModel(session.Config{Rounds: 1, RoundSeconds: 5}, nil)
	m, _ = update(t, m, startMsg{})
	stale := m.gen - 1

	m, _ = update(t, m, tickMsg{gen: stale})
	if m.remaining != 5 {
		t.Fatalf("stale tick changed remaining to %d", m.remaining)
	}
}

func TestModelPauseResume(t *testing.T) {
	m := NewModel(session.Config{Rounds: 1, RoundSeconds: 5}, nil)
	m, _ = update(t, m, startMsg{})
	before := m.gen

	m, cmd := update(t, m, keyMsg("p"))
	if !m.paused || cmd != nil {
		t.Fatalf("paused=%v cmd=%v, want paused with no tick", m.paused, cmd)
	}
	if !strings.Contains(m.View(), "paused") {
		t.Fatalf("view should show paused: %q", m.View())
	}

	m, _ = update(t, m, tickMsg{gen: m.gen})
	if m.remaining != 5 {
		t.Fatalf("tick while paused changed remaining to %d", m.remaining)
	}
	m, _ = update(t, m, tickMsg{gen: before})
	if m.remaining != 5 {
		t.Fatalf("pre-pause tick changed remaining to %d", m.remaining)
	}

	m, cmd = update(t, m, keyMsg("p"))
	if m.paused || cmd == nil {
		t.Fatalf("paused=%v cmd=%v, want resumed with a tick", m.paused, cmd)
	}
	m, _ = update(t, m, tickMsg{gen: m.gen})
	if m.remaining != 4 {
		t.Fatalf("remaining = %d, want 4", m.remaining)
	}
}

func TestModelQuitCancels(t *testing.T) {
	m := NewModel(session.DefaultConfig(), nil)
	m, _ = update(t, m, startMsg{})

	m, cmd := update(t, m, keyMsg("q"))
	if m.State() != session.StateCancelled {
		t.Fatalf("state = %s, want cancelled", m.State())
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("quit key should return tea.Quit")
	}

	m, _ = update(t, m, tickMsg{gen: m.gen})
	if m.State() != session.StateCancelled {
		t.Fatal("ticks after quit must not resume the session")
	}
}

func TestModelViewShowsNext(t *testing.T) {
	m := NewModel(session.Config{Rounds: 2, RoundSeconds: 65, RestSeconds: 30}, nil)
	m, _ = update(t, m, startMsg{})
	view := m.View()
	for _, want := range []string{"Round 1/2", "01:05", "Next: Rest (00:30)", "interval 1 of 3"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}
