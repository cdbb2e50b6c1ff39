package wscli

import (
	"fmt"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/mkrause/wordspace/internal/recovery"
	"github.com/mkrause/wordspace/internal/wsapi"
)

var neighborsCmd = &cobra.Command{
	Use:     "neighbors <word>",
	Aliases: []string{"similar"},
	Short:   "List a word's stored nearest neighbors (SIM word spaces only)",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		word, err := requireWord(args[0])
		if err != nil {
			return err
		}

		h, err := openWordSpace()
		if err != nil {
			return err
		}

		if _, ok := h.Vector(word); !ok {
			if suggestion, ok := suggestCorrection(word, h); ok {
				return fmt.Errorf("%q not found; did you mean %q?", word, suggestion)
			}
			return fmt.Errorf("%q not found in vocabulary", word)
		}

		neighbors, err := h.SimilarWords(word)
		if err != nil {
			return err
		}

		words := make([]string, len(neighbors))
		scores := make([]float64, len(neighbors))
		for i, n := range neighbors {
			words[i] = n.Word
			scores[i] = n.Score
		}
		printNeighbors(words, scores)
		return nil
	},
}

// suggestCorrection tries internal/recovery's cheap lowercase/plural/prefix
// cascade first, then falls back to a fuzzy.Find ranked match against the
// whole vocabulary — sahilm/fuzzy is the teacher's own choice for "did you
// mean" suggestions (internal/search.FuzzySearcher.SuggestCorrections),
// generalized here from command names to vocabulary words.
func suggestCorrection(word string, ws wsapi.WordSpace) (string, bool) {
	if match, ok := recovery.NewWordRecovery().RecoverLookup(word, ws); ok {
		return match, true
	}

	it := ws.Vocabulary()
	var vocab []string
	for {
		w, ok := it.Next()
		if !ok {
			break
		}
		vocab = append(vocab, w)
	}

	matches := fuzzy.Find(word, vocab)
	if len(matches) == 0 {
		return "", false
	}
	return vocab[matches[0].Index], true
}
