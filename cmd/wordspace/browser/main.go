// browser is an interactive terminal program for walking a word space's
// nearest-neighbor graph one hop at a time.
//
// Usage:
//
//	browser --path ./testdata/animals
//	browser --path ./testdata/animals cat
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkrause/wordspace/internal/recovery"
	"github.com/mkrause/wordspace/internal/wordspace"
	"github.com/mkrause/wordspace/internal/wsbrowser"
)

func main() {
	path := flag.String("path", "", "path to the word space (directory for sparse, file for dense)")
	memory := flag.Bool("memory", false, "force the word space fully into memory on open")
	depth := flag.Int("depth", 1, "hops to expand per graph load")
	breadth := flag.Int("breadth", 10, "max neighbors followed per word per hop")
	flag.Parse()

	if *path == "" {
		fmt.Fprintln(os.Stderr, "Error: --path is required")
		os.Exit(1)
	}

	var initialWord string
	if args := flag.Args(); len(args) > 0 {
		initialWord = args[0]
	}

	r := recovery.NewWordSpaceRecovery(recovery.DefaultRetryConfig())
	h, err := r.OpenWithFallback(*path, *memory)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening word space: %v\n", err)
		os.Exit(1)
	}
	ch := wordspace.NewCachedHandle(h)

	model := wsbrowser.New(ch, initialWord, *depth, *breadth)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running browser: %v\n", err)
		os.Exit(1)
	}
}
