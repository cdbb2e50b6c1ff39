package wsbrowser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	switch m.st {
	case stateInput:
		return m.viewInput()
	case stateLoading:
		return dimStyle.Render(fmt.Sprintf("loading %q...", m.query))
	case stateGraph:
		return m.viewGraph()
	case stateError:
		return lipgloss.JoinVertical(lipgloss.Left,
			errorStyle.Render(fmt.Sprintf("error: %v", m.err)),
			dimStyle.Render("(press q to try another word)"),
		)
	}
	return ""
}

func (m Model) viewInput() string {
	header := headerStyle.Render("wordspace browser")
	prompt := promptBoxStyle.Render("word: " + m.query + "█")
	hint := dimStyle.Render("Enter to load · Esc to quit")
	return lipgloss.JoinVertical(lipgloss.Left, header, prompt, hint)
}

func (m Model) viewGraph() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(m.center))
	if len(m.history) > 0 {
		b.WriteString("  ")
		b.WriteString(dimStyle.Render("(" + strings.Join(m.history, " > ") + ")"))
	}
	b.WriteString("\n\n")

	neighbors := m.currentNeighbors()
	if len(neighbors) == 0 {
		b.WriteString(dimStyle.Render("no stored neighbors for this word\n"))
	}
	u := m.graph.IndexOf(m.center)
	for i, w := range neighbors {
		score := m.graph.Adjacency.At(u, m.graph.IndexOf(w))
		line := fmt.Sprintf("%-24s %s", w, scoreStyle.Render(fmt.Sprintf("%.4f", score)))
		if i == m.cursor {
			line = "> " + cursorRowStyle.Render(line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("↑/↓ select · Enter jump · b back · q new word · Ctrl+C quit"))
	return b.String()
}
