// Package wsbrowser implements an interactive terminal browser for walking
// a word space's nearest-neighbor graph one hop at a time: type a word,
// see its stored neighbors, select one to re-center the graph on it, step
// back through visited words.
//
// Grounded on the teacher's internal/tui (the same AppState-driven
// Model/Update/View split and tea.Cmd-wrapped background query), styled
// with lipgloss the way liuprestin-relurpify/app/relurpish/tui does —
// the teacher's own TUI renders bare strings with raw ANSI escapes, so the
// styling approach here is adopted from the rest of the example pack
// rather than the teacher itself.
package wsbrowser

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkrause/wordspace/internal/simgraph"
	"github.com/mkrause/wordspace/internal/wordspace"
)

// state is the current screen, mirroring the teacher's AppState.
type state int

const (
	stateInput state = iota
	stateLoading
	stateGraph
	stateError
)

// Model holds the browser's state.
type Model struct {
	ws *wordspace.CachedHandle

	depth      int
	breadthMax int

	st    state
	query string

	graph  *simgraph.Graph
	center string
	cursor int

	history []string

	err error

	width, height int
}

// New creates a browser model over an already-opened word space. initialWord,
// if non-empty, is loaded immediately instead of prompting for input.
func New(ws *wordspace.CachedHandle, initialWord string, depth, breadthMax int) Model {
	if depth <= 0 {
		depth = 1
	}
	if breadthMax <= 0 {
		breadthMax = 10
	}

	m := Model{
		ws:         ws,
		depth:      depth,
		breadthMax: breadthMax,
		st:         stateInput,
		query:      initialWord,
	}
	if initialWord != "" {
		m.st = stateLoading
	}
	return m
}

// Init kicks off the graph load of the initial word, if one was given.
// Alt-screen mode is requested by the program that runs the model.
func (m Model) Init() tea.Cmd {
	if m.query != "" {
		return loadGraph(m.ws, m.query, m.depth, m.breadthMax)
	}
	return nil
}
