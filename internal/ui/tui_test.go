package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"todoapp/internal/todo"
)

func keyMsg(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testModel(t *testing.T, list todo.List) *tuiModel {
	t.Helper()
	path := filepath.Join(t.TempDir(), "todo.dat")
	if err := todo.Save(list, path); err != nil {
		t.Fatalf("seed save failed: %v", err)
	}
	return newTUIModel(path, list)
}

func TestTUIToggle(t *testing.T) {
	m := testModel(t, todo.List{
		{Label: "a", Complete: false},
		{Label: "b", Complete: false},
	})

	m.Update(keyMsg("j"))
	if m.cursor != 1 {
		t.Fatalf("cursor: got %d, want 1", m.cursor)
	}

	m.Update(keyMsg(" "))
	if !m.list[1].Complete {
		t.Error("item 2 should be complete after toggle")
	}

	// The toggle must be persisted.
	data, err := os.ReadFile(m.path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(data), `{"label":"b","complete":true}`) {
		t.Errorf("persisted file missing toggled item: %q", string(data))
	}
}

func TestTUIDelete(t *testing.T) {
	m := testModel(t, todo.List{
		{Label: "a", Complete: false},
		{Label: "b", Complete: false},
	})

	m.Update(keyMsg("j"))
	m.Update(keyMsg("d"))

	if len(m.list) != 1 {
		t.Fatalf("expected 1 item after delete, got %d", len(m.list))
	}
	if m.list[0].Label != "a" {
		t.Errorf("remaining item: got %s, want a", m.list[0].Label)
	}
	if m.cursor != 0 {
		t.Errorf("cursor should clamp to %d, got %d", 0, m.cursor)
	}
}

func TestTUICursorBounds(t *testing.T) {
	m := testModel(t, todo.List{{Label: "only", Complete: false}})

	m.Update(keyMsg("k"))
	if m.cursor != 0 {
		t.Errorf("cursor moved above top: %d", m.cursor)
	}
	m.Update(keyMsg("j"))
	if m.cursor != 0 {
		t.Errorf("cursor moved past bottom: %d", m.cursor)
	}
}

func TestTUIViewShowsRows(t *testing.T) {
	m := testModel(t, todo.List{
		{Label: "first", Complete: false},
		{Label: "second", Complete: true},
	})

	view := m.View()
	if !strings.Contains(view, "1: first") || !strings.Contains(view, "2: second") {
		t.Errorf("view missing rows: %q", view)
	}
}
