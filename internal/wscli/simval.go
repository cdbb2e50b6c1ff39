package wscli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var secondOrder bool

var simvalCmd = &cobra.Command{
	Use:   "simval <word1> <word2>",
	Short: "Print the similarity score between two words",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		w1, err := requireWord(args[0])
		if err != nil {
			return err
		}
		w2, err := requireWord(args[1])
		if err != nil {
			return err
		}

		h, err := openWordSpace()
		if err != nil {
			return err
		}
		measure := resolveMeasure(h)

		if secondOrder {
			score, err := h.SecondOrderSimilarity(w1, w2, measure)
			if err != nil {
				return err
			}
			fmt.Printf("%s\t%s\t%.4f\n", w1, w2, score)
			return nil
		}

		fmt.Printf("%s\t%s\t%.4f\n", w1, w2, h.SemanticSimilarity(w1, w2, measure))
		return nil
	},
}

func init() {
	simvalCmd.Flags().BoolVar(&secondOrder, "second-order", false, "use second-order (neighbor-list overlap) similarity instead of vector similarity")
}
