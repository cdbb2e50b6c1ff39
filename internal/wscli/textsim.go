package wscli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkrause/wordspace/internal/wordspace"
)

var textsimSymmetric bool

var textsimCmd = &cobra.Command{
	Use:   "textsim <text1> <text2>",
	Short: "Print the similarity between two short texts (spec.md §4.10)",
	Long: `Tokenize both texts on whitespace, drop stopwords, greedily align each
word of text1 with its most similar remaining word of text2, and average
the alignment scores weighted by inverse corpus frequency. By default this
is the directed measure (text1 as hypothesis, text2 as text); --symmetric
scores both directions and averages them.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := openWordSpace()
		if err != nil {
			return err
		}
		measure := resolveMeasure(h)

		var score float64
		if textsimSymmetric {
			score = wordspace.SymmetricTextSimilarity(h, args[0], args[1], measure)
		} else {
			score = wordspace.DirectedTextSimilarity(h, args[0], args[1], measure)
		}

		fmt.Printf("%.4f\n", score)
		return nil
	},
}

func init() {
	textsimCmd.Flags().BoolVar(&textsimSymmetric, "symmetric", false, "average both directions instead of scoring text1 against text2 only")
}
