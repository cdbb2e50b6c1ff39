package wsbrowser

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkrause/wordspace/internal/simgraph"
	"github.com/mkrause/wordspace/internal/wordspace"
)

type graphLoadedMsg struct {
	word  string
	graph *simgraph.Graph
}

type graphErrMsg struct{ err error }

// loadGraph is a tea.Cmd that builds the local neighbor graph around word in
// the background, mirroring the teacher's performSearch.
func loadGraph(ws *wordspace.CachedHandle, word string, depth, breadthMax int) tea.Cmd {
	return func() tea.Msg {
		if _, ok := ws.Vector(word); !ok {
			return graphErrMsg{err: errNotFound(word)}
		}
		g, err := simgraph.Build(ws, []string{word}, depth, breadthMax)
		if err != nil {
			return graphErrMsg{err: err}
		}
		return graphLoadedMsg{word: word, graph: g}
	}
}

type notFoundError string

func (e notFoundError) Error() string { return string(e) }

func errNotFound(word string) error {
	return notFoundError(word + ": not found in vocabulary")
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case graphLoadedMsg:
		m.graph = msg.graph
		m.center = msg.word
		m.cursor = 0
		m.st = stateGraph
		m.err = nil
		return m, nil

	case graphErrMsg:
		m.err = msg.err
		m.st = stateError
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.updateKey(msg)
	}

	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.st {
	case stateInput:
		return m.updateInput(msg)
	case stateGraph:
		return m.updateGraph(msg)
	case stateError:
		switch msg.String() {
		case "q", "esc":
			m.st = stateInput
			m.query = ""
			m.err = nil
		}
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		if m.query == "" {
			return m, nil
		}
		m.st = stateLoading
		return m, loadGraph(m.ws, m.query, m.depth, m.breadthMax)
	case tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyBackspace:
		if len(m.query) > 0 {
			m.query = m.query[:len(m.query)-1]
		}
	case tea.KeySpace:
		m.query += " "
	case tea.KeyRunes:
		m.query += string(msg.Runes)
	}
	return m, nil
}

func (m Model) updateGraph(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	neighbors := m.currentNeighbors()

	switch msg.String() {
	case "q", "esc":
		m.st = stateInput
		m.graph = nil
		m.history = nil
		m.query = ""
		return m, nil

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(neighbors)-1 {
			m.cursor++
		}

	case "enter":
		if len(neighbors) == 0 {
			return m, nil
		}
		next := neighbors[m.cursor]
		m.history = append(m.history, m.center)
		m.st = stateLoading
		return m, loadGraph(m.ws, next, m.depth, m.breadthMax)

	case "b", "backspace":
		if len(m.history) == 0 {
			return m, nil
		}
		prev := m.history[len(m.history)-1]
		m.history = m.history[:len(m.history)-1]
		m.st = stateLoading
		return m, loadGraph(m.ws, prev, m.depth, m.breadthMax)
	}

	return m, nil
}

// currentNeighbors returns the words adjacent to m.center in m.graph, sorted
// by edge weight descending.
func (m Model) currentNeighbors() []string {
	if m.graph == nil {
		return nil
	}
	u := m.graph.IndexOf(m.center)
	if u < 0 {
		return nil
	}
	type scored struct {
		word  string
		score float64
	}
	var out []scored
	_, cols := m.graph.Adjacency.Dims()
	for j := 0; j < cols; j++ {
		if w := m.graph.Adjacency.At(u, j); w != 0 {
			out = append(out, scored{m.graph.Words[j], w})
		}
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1].score < out[j].score; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	words := make([]string, len(out))
	for i, s := range out {
		words[i] = s.word
	}
	return words
}
