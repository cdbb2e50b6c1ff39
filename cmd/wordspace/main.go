// wordspace is a command-line demo for querying a pre-computed distributional
// word-similarity database: vector lookup, nearest-neighbor search, vector
// composition, analogy solving, and short-text similarity.
//
// Usage:
//
//	wordspace --path ./testdata/animals info
//	wordspace --path ./testdata/animals neighbors cat
//	wordspace --path ./testdata/animals analogy king man woman
package main

import (
	"fmt"
	"os"

	"github.com/mkrause/wordspace/internal/wscli"
)

func main() {
	if err := wscli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
