package wscli

import (
	"fmt"

	"github.com/mkrause/wordspace/internal/recovery"
	"github.com/mkrause/wordspace/internal/similarity"
	"github.com/mkrause/wordspace/internal/validation"
	"github.com/mkrause/wordspace/internal/wordspace"
)

// openWordSpace opens the --path word space with retry and fallback
// (internal/recovery), wrapping the result in a CachedHandle so a
// multi-query subcommand (graph, cluster) doesn't repeat identical
// SimilarWords/SemanticSimilarity calls against disk.
func openWordSpace() (*wordspace.CachedHandle, error) {
	r := recovery.NewWordSpaceRecovery(recovery.DefaultRetryConfig())
	h, err := r.OpenWithFallback(wordSpacePath, loadIntoMemory)
	if err != nil {
		return nil, fmt.Errorf("open word space: %w", err)
	}
	return wordspace.NewCachedHandle(h), nil
}

// resolveMeasure returns the --measure flag's value if set, otherwise the
// word space's own configured measure.
func resolveMeasure(h *wordspace.CachedHandle) similarity.Measure {
	switch measureFlag {
	case "KOLB", "kolb":
		return similarity.Kolb
	case "COSINE", "cosine":
		return similarity.Cosine
	default:
		return h.SimilarityMeasure()
	}
}

// requireWord validates a single positional word argument, the one
// validation.ValidateWord is built for.
func requireWord(raw string) (string, error) {
	return validation.ValidateWord(raw)
}
