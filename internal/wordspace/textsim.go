package wordspace

import (
	"strings"

	"github.com/mkrause/wordspace/internal/similarity"
	"github.com/mkrause/wordspace/internal/wsapi"
)

// DirectedTextSimilarity scores hypothesis against text using greedy
// alignment weighted by inverse corpus frequency (spec.md §4.10, the
// Jijkoun/De Rijke measure).
func DirectedTextSimilarity(ws wsapi.WordSpace, hypothesis, text string, m similarity.Measure) float64 {
	hyp := filterStopwords(ws, strings.Fields(hypothesis))
	txt := filterStopwords(ws, strings.Fields(text))
	if len(hyp) == 0 || len(txt) == 0 {
		return 0
	}

	pool := make([]string, len(txt))
	copy(pool, txt)

	var weightedSum, weightSum float64
	for _, h := range hyp {
		maxSim := -1.0
		bestIdx := -1
		for i, t := range pool {
			s := wordSim(ws, h, t, m)
			if s > maxSim {
				maxSim, bestIdx = s, i
			}
		}
		if bestIdx >= 0 {
			pool = append(pool[:bestIdx], pool[bestIdx+1:]...)
		}
		w := icfWeight(ws, h)
		weightedSum += maxSim * w
		weightSum += w
	}
	if weightSum == 0 {
		return 0
	}
	return weightedSum / weightSum
}

// SymmetricTextSimilarity is the arithmetic mean of the two directed
// similarities (spec.md §4.10).
func SymmetricTextSimilarity(ws wsapi.WordSpace, text1, text2 string, m similarity.Measure) float64 {
	return (DirectedTextSimilarity(ws, text1, text2, m) + DirectedTextSimilarity(ws, text2, text1, m)) / 2
}

func filterStopwords(ws wsapi.WordSpace, tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if !ws.IsStopword(t) {
			out = append(out, t)
		}
	}
	return out
}

// wordSim: identical strings (case-insensitive) score 1.0; otherwise the
// chosen measure between the two words' vectors, with cosine remapped from
// [-1,1] to [0,1] (spec.md §4.10).
func wordSim(ws wsapi.WordSpace, a, b string, m similarity.Measure) float64 {
	if strings.EqualFold(a, b) {
		return 1.0
	}
	ea, okA := ws.Vector(a)
	eb, okB := ws.Vector(b)
	if !okA || !okB {
		return 0
	}

	var s float64
	switch {
	case ea.Dense != nil && eb.Dense != nil:
		got, err := similarity.Dense(m, ea.Dense, eb.Dense)
		if err != nil {
			return 0
		}
		s = got
	case ea.Sparse != nil && eb.Sparse != nil:
		s = similarity.Sparse(m, ea.Sparse, eb.Sparse)
	default:
		return 0
	}

	if m == similarity.Cosine {
		return (s + 1) / 2
	}
	return s
}

func icfWeight(ws wsapi.WordSpace, word string) float64 {
	tokenCount := ws.TokenCount()
	if tokenCount == 0 {
		return 1
	}
	icf := float64(ws.Frequency(word)) / float64(tokenCount)
	icfMin := float64(ws.MinFreq()) / float64(tokenCount)
	icfMax := float64(ws.MaxFreq()) / float64(tokenCount)
	if icfMax == icfMin {
		return 1
	}
	return 1 - (icf-icfMin)/(icfMax-icfMin)
}
