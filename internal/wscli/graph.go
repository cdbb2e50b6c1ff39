package wscli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkrause/wordspace/internal/simgraph"
)

var (
	graphDepth      int
	graphBreadthMax int
)

var graphCmd = &cobra.Command{
	Use:   "graph <word> [word...]",
	Short: "Print the local neighbor-list graph around one or more seed words",
	Long: `Expand outward from the given seed words following each visited word's
stored SimilarWords list, and print the resulting neighborhood as an edge
list (word, word, similarity). This is the same local graph
cmd/wordspace/browser walks interactively.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := openWordSpace()
		if err != nil {
			return err
		}

		seeds := make([]string, len(args))
		for i, a := range args {
			w, err := requireWord(a)
			if err != nil {
				return err
			}
			seeds[i] = w
		}

		g, err := simgraph.Build(h, seeds, graphDepth, graphBreadthMax)
		if err != nil {
			return err
		}

		_, cols := g.Adjacency.Dims()
		for i, u := range g.Words {
			for j := 0; j < cols; j++ {
				if w := g.Adjacency.At(i, j); w != 0 {
					fmt.Printf("%s\t%s\t%.4f\n", u, g.Words[j], w)
				}
			}
		}
		return nil
	},
}

func init() {
	graphCmd.Flags().IntVar(&graphDepth, "depth", 1, "number of hops to expand from the seed words")
	graphCmd.Flags().IntVar(&graphBreadthMax, "breadth", 10, "max neighbors followed per word per hop")
}
