package wscli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print summary statistics for the word space",
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := openWordSpace()
		if err != nil {
			return err
		}

		fmt.Printf("Kind:                 %s\n", h.Kind())
		fmt.Printf("Content type:         %s\n", h.ContentType())
		fmt.Printf("Similarity measure:   %s\n", h.SimilarityMeasure())
		fmt.Printf("Vocabulary size:      %d\n", h.NumberOfWords())
		fmt.Printf("Feature dimensions:   %d\n", h.NumberOfFeatureWords())
		fmt.Printf("Stored neighbors:     %d\n", h.NumberOfSimilarWords())
		fmt.Printf("Token count:          %d\n", h.TokenCount())
		fmt.Printf("Frequency range:      %d - %d\n", h.MinFreq(), h.MaxFreq())
		if sw := h.Stopwords(); len(sw) > 0 {
			fmt.Printf("Stopwords:            %d\n", len(sw))
		}
		return nil
	},
}
