package wscli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var vectorCmd = &cobra.Command{
	Use:   "vector <word>",
	Short: "Print a word's frequency, collocations, and raw feature vector",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		word, err := requireWord(args[0])
		if err != nil {
			return err
		}

		h, err := openWordSpace()
		if err != nil {
			return err
		}

		entry, ok := h.Vector(word)
		if !ok {
			return fmt.Errorf("%q not found in vocabulary", word)
		}

		fmt.Printf("Word:       %s\n", entry.Word)
		fmt.Printf("ID:         %d\n", entry.ID)
		fmt.Printf("Frequency:  %d\n", entry.Freq)

		switch {
		case entry.Dense != nil:
			fmt.Printf("Dense vector (%d dims):\n", len(entry.Dense))
			for i, v := range entry.Dense {
				if v == 0 {
					continue
				}
				fmt.Printf("  [%d] %.6f\n", i, v)
			}
		case entry.Sparse != nil:
			fmt.Printf("Sparse vector (%d active features):\n", len(entry.Sparse))
			for feature, v := range entry.Sparse {
				fmt.Printf("  %-24s %.6f\n", feature, v)
			}
		}

		if cols, ok := h.Collocations(word); ok && len(cols) > 0 {
			fmt.Printf("Collocations:\n")
			for _, c := range cols {
				fmt.Printf("  %-24s %.6f\n", c.Word, c.Significance)
			}
		}

		return nil
	},
}
