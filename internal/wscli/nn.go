package wscli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkrause/wordspace/internal/wordspace"
)

var (
	nnTopN  int
	nnGraph bool
	nnSeed  int64
)

var nnCmd = &cobra.Command{
	Use:   "nn <word>",
	Short: "Find a word's nearest neighbors by vector distance (dense word spaces)",
	Long: `Scan the word space's dense vectors for the entries nearest to <word>'s
own vector (spec.md §4.8). --graph switches from an exhaustive scan to a
randomized best-first graph search seeded by --seed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		word, err := requireWord(args[0])
		if err != nil {
			return err
		}

		h, err := openWordSpace()
		if err != nil {
			return err
		}
		measure := resolveMeasure(h)

		entry, ok := h.Vector(word)
		if !ok {
			return fmt.Errorf("%q not found in vocabulary", word)
		}
		if entry.Dense == nil {
			return fmt.Errorf("%q has no dense vector; try 'neighbors' for a sparse SIM word space", word)
		}

		if nnGraph {
			neighbors, err := wordspace.GraphSearchNN(h, entry.Dense, wordspace.NewRandSource(nnSeed))
			if err != nil {
				return err
			}
			printNeighborResults(neighbors)
			return nil
		}

		neighbors := wordspace.ExhaustiveNN(h, entry.Dense, nnTopN, measure, map[string]bool{word: true})
		printNeighborResults(neighbors)
		return nil
	},
}

func init() {
	nnCmd.Flags().IntVar(&nnTopN, "top", 10, "number of nearest words to print")
	nnCmd.Flags().BoolVar(&nnGraph, "graph", false, "use randomized best-first graph search instead of an exhaustive scan")
	nnCmd.Flags().Int64Var(&nnSeed, "seed", 1, "random seed for --graph")
}
