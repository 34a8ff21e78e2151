package ui

import (
	"strings"
	"testing"

	"todoapp/internal/todo"
)

func TestRenderListEmpty(t *testing.T) {
	var out strings.Builder
	RenderList(&out, todo.List{}, true)

	if !strings.Contains(out.String(), "Nothing to do!") {
		t.Errorf("empty list message missing: %q", out.String())
	}
	if !strings.Contains(out.String(), "Run `todo help` for help.") {
		t.Errorf("help pointer missing: %q", out.String())
	}
}

func TestRenderListRows(t *testing.T) {
	list := todo.List{
		{Label: "first", Complete: false},
		{Label: "second", Complete: true},
	}

	var out strings.Builder
	RenderList(&out, list, true)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d: %q", len(lines), out.String())
	}
	if lines[0] != "☐ 1: first" {
		t.Errorf("row 1: got %q", lines[0])
	}
	if lines[1] != "☑ 2: second" {
		t.Errorf("row 2: got %q", lines[1])
	}
}
