package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"todoapp/internal/todo"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	footerStyle = lipgloss.NewStyle().Faint(true)
)

// RunTUI starts the interactive list on the terminal. Mutations (toggle,
// delete) are persisted to path as they happen.
func RunTUI(ctx context.Context, path string, list todo.List) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	model := newTUIModel(path, list)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := program.Run()
	if err != nil {
		return err
	}
	if m, ok := finalModel.(*tuiModel); ok && m.saveErr != nil {
		return m.saveErr
	}
	return nil
}

// IsTTY reports whether w is attached to a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, _ := f.Stat()
	return (info.Mode() & os.ModeCharDevice) != 0
}

type tuiModel struct {
	path    string
	list    todo.List
	cursor  int
	saveErr error
}

func newTUIModel(path string, list todo.List) *tuiModel {
	return &tuiModel{path: path, list: list}
}

func (m *tuiModel) Init() tea.Cmd {
	return nil
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "down", "j":
			if m.cursor < len(m.list)-1 {
				m.cursor++
			}
			return m, nil
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case " ", "x":
			if len(m.list) > 0 {
				m.list[m.cursor].Complete = !m.list[m.cursor].Complete
				return m.persist()
			}
			return m, nil
		case "d":
			if len(m.list) > 0 {
				m.list = append(m.list[:m.cursor], m.list[m.cursor+1:]...)
				if m.cursor >= len(m.list) && m.cursor > 0 {
					m.cursor--
				}
				return m.persist()
			}
			return m, nil
		}
	}
	return m, nil
}

// persist saves the list; a failed save quits the TUI so the error
// reaches the process boundary.
func (m *tuiModel) persist() (tea.Model, tea.Cmd) {
	if err := todo.Save(m.list, m.path); err != nil {
		m.saveErr = err
		return m, tea.Quit
	}
	return m, nil
}

func (m *tuiModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("todo"))
	b.WriteString("\n\n")

	if len(m.list) == 0 {
		b.WriteString("Nothing to do!\n")
	}

	for i, item := range m.list {
		marker := "  "
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
		}
		row := fmt.Sprintf("%s%s %d: %s", marker, checkbox(item.Complete), i+1, item.Label)
		if item.Complete {
			row = checkedStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render("j/k: move   space: toggle   d: delete   q: quit"))
	b.WriteString("\n")
	return b.String()
}
