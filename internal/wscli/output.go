package wscli

import (
	"fmt"

	"github.com/mkrause/wordspace/internal/wsapi"
)

// ANSI color helpers, gated by --no-color/NO_COLOR — the same inline
// color() closure idiom as the teacher's search command, lifted out here
// since every subcommand in this package needs it.

func color(code string) string {
	if noColor {
		return ""
	}
	return code
}

func colors() (reset, bold, cyan, yellow, gray string) {
	return color("\x1b[0m"), color("\x1b[1m"), color("\x1b[36m"), color("\x1b[33m"), color("\x1b[90m")
}

// printNeighbors renders a ranked neighbor list in the requested format
// (table, list, or json), shared by the neighbors/nn/cluster/compose/
// analogy commands — they all end with "here is a ranked word list".
func printNeighbors(words []string, scores []float64) {
	reset, bold, cyan, yellow, _ := colors()

	switch outputFormat {
	case "json":
		fmt.Print("[")
		for i := range words {
			if i > 0 {
				fmt.Print(",")
			}
			fmt.Printf("{\"word\":%q,\"score\":%.4f}", words[i], scores[i])
		}
		fmt.Println("]")

	case "table":
		fmt.Printf("%s%-3s %-32s %-10s%s\n", bold, "#", "Word", "Score", reset)
		for i := range words {
			fmt.Printf("%-3d %-32s %-10.4f\n", i+1, words[i], scores[i])
		}

	default: // list
		for i := range words {
			fmt.Printf("%s%d.%s %s%s%s  %s%.4f%s\n", bold, i+1, reset, cyan, words[i], reset, yellow, scores[i], reset)
		}
	}
}

// printNeighborResults is printNeighbors for callers already holding a
// []wsapi.Neighbor, e.g. ExhaustiveNN's result.
func printNeighborResults(neighbors []wsapi.Neighbor) {
	words := make([]string, len(neighbors))
	scores := make([]float64, len(neighbors))
	for i, n := range neighbors {
		words[i] = n.Word
		scores[i] = n.Score
	}
	printNeighbors(words, scores)
}
