// Package ui renders the todo list and provides the interactive mode.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"todoapp/internal/todo"
)

var checkedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

// RenderList writes the list to w, one row per item with its 1-based
// position. Completed rows are drawn green unless noColor is set. An
// empty list gets a dedicated message instead of an empty table.
func RenderList(w io.Writer, list todo.List, noColor bool) {
	if len(list) == 0 {
		fmt.Fprintln(w, "Nothing to do!\n\nRun `todo help` for help.")
		return
	}

	for i, item := range list {
		row := fmt.Sprintf("%s %d: %s", checkbox(item.Complete), i+1, item.Label)
		if item.Complete && !noColor {
			row = checkedStyle.Render(row)
		}
		fmt.Fprintln(w, row)
	}
}

func checkbox(complete bool) string {
	if complete {
		return "☑"
	}
	return "☐"
}
