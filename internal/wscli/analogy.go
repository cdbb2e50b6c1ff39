package wscli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkrause/wordspace/internal/wordspace"
)

var analogySeed int64

var analogyCmd = &cobra.Command{
	Use:   "analogy <b1> <a2> <b2>",
	Short: `Solve "b1 is to ? as b2 is to a2" and print ranked candidates for ?`,
	Long: `Solve a1 in the analogy b1:a1 :: b2:a2 by the vector-offset method
(spec.md §4.9): vec(a1) ≈ vec(b1) + vec(a2) - vec(b2), a1 itself is
unknown, solved for by nearest-neighbor search.

Given --approx, an approximate randomized search is used instead of an
exhaustive scan, seeded by --seed for reproducibility.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		b1, err := requireWord(args[0])
		if err != nil {
			return err
		}
		a2, err := requireWord(args[1])
		if err != nil {
			return err
		}
		b2, err := requireWord(args[2])
		if err != nil {
			return err
		}

		h, err := openWordSpace()
		if err != nil {
			return err
		}

		approx, _ := cmd.Flags().GetBool("approx")
		if approx {
			neighbors, ok, err := wordspace.SolveAnalogyApprox(h, b1, a2, b2, wordspace.NewRandSource(analogySeed))
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("could not solve analogy: one of the three words is missing or has no dense vector")
			}
			printNeighborResults(neighbors)
			return nil
		}

		neighbors, ok := wordspace.SolveAnalogy(h, b1, a2, b2)
		if !ok {
			return fmt.Errorf("could not solve analogy: one of the three words is missing or has no dense vector")
		}
		printNeighborResults(neighbors)
		return nil
	},
}

func init() {
	analogyCmd.Flags().Bool("approx", false, "use randomized graph-search instead of an exhaustive scan")
	analogyCmd.Flags().Int64Var(&analogySeed, "seed", 1, "random seed for --approx")
}
