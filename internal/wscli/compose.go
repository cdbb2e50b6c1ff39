package wscli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkrause/wordspace/internal/wordspace"
)

var (
	composeA, composeB, composeC float64
	composeLambda                float64
	composeTopN                  int
)

var composeCmd = &cobra.Command{
	Use:   "compose <operator> <word1> <word2>",
	Short: "Combine two word vectors with an operator and print the nearest words to the result",
	Long: `Combine two word vectors with one of the spec's compositional operators —
ADDITION, SUBTRACTION, MULTIPLICATION, EXTREMA, COMBINED, or DILATION — and
print the vocabulary entries nearest to the resulting vector.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		op := wordspace.Operator(strings.ToUpper(args[0]))
		w1, err := requireWord(args[1])
		if err != nil {
			return err
		}
		w2, err := requireWord(args[2])
		if err != nil {
			return err
		}

		h, err := openWordSpace()
		if err != nil {
			return err
		}
		measure := resolveMeasure(h)

		e1, ok := h.Vector(w1)
		if !ok {
			return fmt.Errorf("%q not found in vocabulary", w1)
		}
		e2, ok := h.Vector(w2)
		if !ok {
			return fmt.Errorf("%q not found in vocabulary", w2)
		}

		weights := wordspace.NewCombinedWeights(composeA, composeB, composeC)
		dilation := wordspace.NewDilationParam(composeLambda)

		if e1.Dense != nil && e2.Dense != nil {
			result, err := wordspace.ComposeDense(op, e1.Dense, e2.Dense, weights, dilation)
			if err != nil {
				return err
			}
			skip := map[string]bool{w1: true, w2: true}
			neighbors := wordspace.ExhaustiveNN(h, result, composeTopN, measure, skip)
			printNeighborResults(neighbors)
			return nil
		}

		result := wordspace.ComposeSparse(op, e1.Sparse, e2.Sparse, weights, dilation)
		skip := map[string]bool{w1: true, w2: true}
		neighbors := wordspace.ExhaustiveNNSparse(h, result, composeTopN, measure, skip)
		printNeighborResults(neighbors)
		return nil
	},
}

func init() {
	composeCmd.Flags().Float64Var(&composeA, "a", 0, "COMBINED operator weight a (default: spec default)")
	composeCmd.Flags().Float64Var(&composeB, "b", 0, "COMBINED operator weight b (default: spec default)")
	composeCmd.Flags().Float64Var(&composeC, "c", 0, "COMBINED operator weight c (default: spec default)")
	composeCmd.Flags().Float64Var(&composeLambda, "lambda", 0, "DILATION operator lambda (default: spec default)")
	composeCmd.Flags().IntVar(&composeTopN, "top", 10, "number of nearest words to print")
}
