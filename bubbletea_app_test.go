// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	config := defaults()
	config.Generator.Seed = 1
	m := InitialModel(NewSession(config, io.Discard), config)
	return send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T", updated)
	}
	return next
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelInsertThroughInput(t *testing.T) {
	m := newTestModel(t)

	m = send(t, m, keyRunes("1"))
	if m.focus != focusInput || m.pending == nil || m.pending.action != actionInsert {
		t.Fatalf("menu choice 1 did not open the insert prompt")
	}

	m = send(t, m, keyRunes("42"))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if !m.session.Tree().Contains(42) {
		t.Fatalf("key 42 was not inserted")
	}
	if m.focus != focusMenu || m.pending != nil {
		t.Errorf("input not closed after enter")
	}
	if m.failed || !strings.Contains(m.status, "done (1 keys") {
		t.Errorf("unexpected status %q", m.status)
	}
	if !strings.Contains(m.output.View(), "Key 42 added to the tree.") {
		t.Errorf("output pane does not show the insert message")
	}
}

func TestModelInvalidKeySetsError(t *testing.T) {
	m := newTestModel(t)

	m = send(t, m, keyRunes("4"))
	m = send(t, m, keyRunes("abc"))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if !m.failed || !strings.Contains(m.status, "invalid key") {
		t.Errorf("status = %q, failed = %v; want invalid key error", m.status, m.failed)
	}
}

func TestModelEscCancelsInput(t *testing.T) {
	m := newTestModel(t)

	m = send(t, m, keyRunes("5"))
	m = send(t, m, keyRunes("7"))
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)

	if cmd != nil {
		t.Errorf("esc in the input should not quit")
	}
	if m.focus != focusMenu || m.input.Value() != "" {
		t.Errorf("esc did not reset the input")
	}
}

func TestModelPruneAndQuit(t *testing.T) {
	m := newTestModel(t)
	for _, k := range []int{1, 2, 3, 4, 5, 6, 7} {
		m.session.Tree().Insert(k)
	}

	m = send(t, m, keyRunes("6"))
	if got := m.session.Tree().InOrder(); len(got) != 1 || got[0] != 1 {
		t.Errorf("after prune tree = %v; want [1]", got)
	}
	if !strings.Contains(m.output.View(), "pass 2") {
		t.Errorf("output pane does not show the prune passes")
	}

	_, cmd := m.Update(keyRunes("7"))
	if cmd == nil {
		t.Fatalf("menu choice 7 returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("menu choice 7 did not quit")
	}
}

func TestModelView(t *testing.T) {
	config := defaults()
	m := InitialModel(NewSession(config, io.Discard), config)
	if got := m.View(); got != "Initializing..." {
		t.Errorf("View before sizing = %q", got)
	}

	m = send(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})
	if !strings.Contains(m.View(), "too small") {
		t.Errorf("small terminal not reported")
	}

	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if !strings.Contains(m.View(), "Menu") {
		t.Errorf("menu pane missing from view")
	}
}
