package wordspace

import (
	"github.com/mkrause/wordspace/internal/similarity"
	"github.com/mkrause/wordspace/internal/vecalg"
	"github.com/mkrause/wordspace/internal/wsapi"
)

// OutlierFilter keeps, from word's top-nSim similar words, only those that
// also appear in the top-nSim list of at least one other member of that
// same set; original order and scores are preserved (spec.md §4.9).
func OutlierFilter(ws wsapi.WordSpace, word string) ([]wsapi.Neighbor, error) {
	topN, err := ws.SimilarWords(word)
	if err != nil {
		return nil, err
	}

	var out []wsapi.Neighbor
	for _, cand := range topN {
		if corroboratedByPeer(ws, topN, cand.Word) {
			out = append(out, cand)
		}
	}
	return out, nil
}

func corroboratedByPeer(ws wsapi.WordSpace, topN []wsapi.Neighbor, candWord string) bool {
	for _, other := range topN {
		if other.Word == candWord {
			continue
		}
		otherNeighbors, err := ws.SimilarWords(other.Word)
		if err != nil {
			continue
		}
		for _, on := range otherNeighbors {
			if on.Word == candWord {
				return true
			}
		}
	}
	return false
}

// SetGrowth sums the vectors of words and returns the nearest neighbors of
// the combined vector, excluding the inputs, truncated to n (spec.md §4.9).
func SetGrowth(ws wsapi.WordSpace, words []string, n int, m similarity.Measure) ([]wsapi.Neighbor, bool) {
	if len(words) == 0 {
		return nil, false
	}
	first, ok := ws.Vector(words[0])
	if !ok {
		return nil, false
	}
	skip := exclude(words...)

	if first.Dense != nil {
		sum := make(vecalg.Dense, len(first.Dense))
		copy(sum, first.Dense)
		for _, w := range words[1:] {
			e, ok := ws.Vector(w)
			if !ok || e.Dense == nil {
				return nil, false
			}
			var err error
			sum, err = vecalg.Add(sum, e.Dense)
			if err != nil {
				return nil, false
			}
		}
		return ExhaustiveNN(ws, sum, n, m, skip), true
	}

	sum := copySparse(first.Sparse)
	for _, w := range words[1:] {
		e, ok := ws.Vector(w)
		if !ok || e.Sparse == nil {
			return nil, false
		}
		sum = vecalg.AddSparse(sum, e.Sparse)
	}
	return ExhaustiveNNSparse(ws, sum, n, m, skip), true
}

// HighestRankingSimilarity computes, for each vocabulary word not in
// inputWords, the product of the ranks at which each input word appears in
// that word's top-nSim neighbor list (rank 1 = closest; absence counts as
// a factor of 1), keeping only words whose rank product exceeds 1, sorted
// ascending by rank product (spec.md §4.9). Intended for in-memory word
// spaces only — it is O(V) SimilarWords lookups.
func HighestRankingSimilarity(ws wsapi.WordSpace, inputWords []string) []wsapi.Neighbor {
	input := exclude(inputWords...)
	var out []wsapi.Neighbor

	it := ws.Vocabulary()
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		if input[v] {
			continue
		}
		neighbors, err := ws.SimilarWords(v)
		if err != nil {
			continue
		}
		product := rankProduct(neighbors, inputWords)
		if product > 1 {
			out = append(out, wsapi.Neighbor{Word: v, Score: product})
		}
	}

	sortAscending(out)
	return out
}

// HighestRankingCollocation is HighestRankingSimilarity but ranks are taken
// from each word's collocation list instead of its similar-words list
// (sparse back-end only, per spec.md §4.9).
func HighestRankingCollocation(ws wsapi.WordSpace, inputWords []string) []wsapi.Neighbor {
	input := exclude(inputWords...)
	var out []wsapi.Neighbor

	it := ws.Vocabulary()
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		if input[v] {
			continue
		}
		cols, ok := ws.Collocations(v)
		if !ok {
			continue
		}
		product := 1.0
		for _, iw := range inputWords {
			rank := collocationRank(cols, iw)
			if rank > 0 {
				product *= float64(rank)
			}
		}
		if product > 1 {
			out = append(out, wsapi.Neighbor{Word: v, Score: product})
		}
	}

	sortAscending(out)
	return out
}

func rankProduct(neighbors []wsapi.Neighbor, inputWords []string) float64 {
	product := 1.0
	for _, iw := range inputWords {
		for i, n := range neighbors {
			if n.Word == iw {
				product *= float64(i + 1)
				break
			}
		}
	}
	return product
}

func collocationRank(cols []wsapi.Collocation, word string) int {
	for i, c := range cols {
		if c.Word == word {
			return i + 1
		}
	}
	return 0
}

func sortAscending(ns []wsapi.Neighbor) {
	for i := 1; i < len(ns); i++ {
		j := i
		for j > 0 && ns[j-1].Score > ns[j].Score {
			ns[j-1], ns[j] = ns[j], ns[j-1]
			j--
		}
	}
}
