package wordspace

import (
	"math/rand"
	"sort"

	"github.com/mkrause/wordspace/internal/constants"
	"github.com/mkrause/wordspace/internal/similarity"
	"github.com/mkrause/wordspace/internal/vecalg"
	"github.com/mkrause/wordspace/internal/wsapi"
	"github.com/mkrause/wordspace/internal/wsconfig"
	"github.com/mkrause/wordspace/internal/wserrors"
)

// RandSource is the seedable random source graph search draws its initial
// candidate set from (spec.md §5: "randomized graph-search draws random
// start words; the random number source must be seedable for testing").
type RandSource interface {
	Intn(n int) int
}

// NewRandSource wraps a seed into a RandSource usable by GraphSearchNN and
// SolveAnalogyApprox; the same seed always produces the same traversal.
func NewRandSource(seed int64) RandSource {
	return rand.New(rand.NewSource(seed))
}

// ExhaustiveNN scans the whole vocabulary, scoring query against every
// entry's dense vector with m, keeping entries with positive similarity,
// sorted descending and truncated to maxN (spec.md §4.8). Per-entry errors
// are skipped rather than aborting the scan.
func ExhaustiveNN(ws wsapi.WordSpace, query vecalg.Dense, maxN int, m similarity.Measure, skip map[string]bool) []wsapi.Neighbor {
	var out []wsapi.Neighbor
	it := ws.Vocabulary()
	for {
		word, ok := it.Next()
		if !ok {
			break
		}
		if skip[word] {
			continue
		}
		e, ok := ws.Vector(word)
		if !ok || e.Dense == nil {
			continue
		}
		s, err := similarity.Dense(m, query, e.Dense)
		if err != nil || s <= 0 {
			continue
		}
		out = append(out, wsapi.Neighbor{Word: word, ID: e.ID, Score: s})
	}
	return sortTruncate(out, maxN)
}

// ExhaustiveNNSparse is ExhaustiveNN over sparse vectors.
func ExhaustiveNNSparse(ws wsapi.WordSpace, query vecalg.Sparse, maxN int, m similarity.Measure, skip map[string]bool) []wsapi.Neighbor {
	var out []wsapi.Neighbor
	it := ws.Vocabulary()
	for {
		word, ok := it.Next()
		if !ok {
			break
		}
		if skip[word] {
			continue
		}
		e, ok := ws.Vector(word)
		if !ok || e.Sparse == nil {
			continue
		}
		s := similarity.Sparse(m, query, e.Sparse)
		if s <= 0 {
			continue
		}
		out = append(out, wsapi.Neighbor{Word: word, ID: e.ID, Score: s})
	}
	return sortTruncate(out, maxN)
}

func sortTruncate(ns []wsapi.Neighbor, maxN int) []wsapi.Neighbor {
	sort.SliceStable(ns, func(i, j int) bool { return ns[i].Score > ns[j].Score })
	if maxN > 0 && len(ns) > maxN {
		ns = ns[:maxN]
	}
	return ns
}

// GraphSearchNN implements best-first nearest-neighbor search over the
// stored neighborhood graph (spec.md §4.8, SIM only): draw
// constants.GraphSearchInitSetSize random vocabulary ids, start from the
// one closest to query, then repeatedly hop to the best-scoring unexamined
// neighbor of the current word until no improvement is found.
func GraphSearchNN(ws wsapi.WordSpace, query vecalg.Dense, rng RandSource) ([]wsapi.Neighbor, error) {
	if ws.ContentType() != wsconfig.ContentSIM {
		return nil, wserrors.WrongWorkspaceType("GraphSearchNN")
	}
	v := ws.NumberOfWords()
	if v == 0 {
		return nil, nil
	}
	if rng == nil {
		rng = NewRandSource(1)
	}

	bestID, bestScore, ok := bestOfRandomDraws(ws, query, rng, v)
	if !ok {
		return nil, nil
	}

	maxN := ws.NumberOfSimilarWords()
	w, s := bestID, bestScore
	var result []wsapi.Neighbor
	for {
		neighbors, err := ws.Neighbors(w)
		if err != nil {
			return result, err
		}
		nextID, nextScore, found := bestNeighbor(ws, query, neighbors, maxN)
		if !found || nextScore <= s {
			break
		}
		w, s = nextID, nextScore
		word, _ := ws.GetWord(w)
		result = append(result, wsapi.Neighbor{Word: word, ID: w, Score: s})
	}

	return sortTruncate(result, maxN), nil
}

func bestOfRandomDraws(ws wsapi.WordSpace, query vecalg.Dense, rng RandSource, v int) (int, float64, bool) {
	bestID := -1
	bestScore := -2.0
	for i := 0; i < constants.GraphSearchInitSetSize; i++ {
		id := rng.Intn(v)
		word, ok := ws.GetWord(id)
		if !ok {
			continue
		}
		e, ok := ws.Vector(word)
		if !ok || e.Dense == nil {
			continue
		}
		s, err := similarity.Dense(ws.SimilarityMeasure(), query, e.Dense)
		if err != nil {
			continue
		}
		if bestID < 0 || s > bestScore {
			bestID, bestScore = id, s
		}
	}
	return bestID, bestScore, bestID >= 0
}

func bestNeighbor(ws wsapi.WordSpace, query vecalg.Dense, neighbors []wsapi.Neighbor, maxN int) (int, float64, bool) {
	bestID := -1
	bestScore := -2.0
	for i, n := range neighbors {
		if maxN > 0 && i >= maxN {
			break
		}
		word, ok := ws.GetWord(n.ID)
		if !ok {
			continue
		}
		e, ok := ws.Vector(word)
		if !ok || e.Dense == nil {
			continue
		}
		s, err := similarity.Dense(ws.SimilarityMeasure(), query, e.Dense)
		if err != nil {
			continue
		}
		if bestID < 0 || s > bestScore {
			bestID, bestScore = n.ID, s
		}
	}
	return bestID, bestScore, bestID >= 0
}

// ShortestPath runs breadth-first search over the neighborhood graph from
// sourceID to targetID, returning the path in reverse order (target →
// source), per spec.md §4.8. Assumes the graph is connected for SIM spaces
// with nSim ≥ 50; returns (nil, false) if no path is found within the
// searched component.
func ShortestPath(ws wsapi.WordSpace, sourceID, targetID int) ([]int, bool, error) {
	if ws.ContentType() != wsconfig.ContentSIM {
		return nil, false, wserrors.WrongWorkspaceType("ShortestPath")
	}
	if sourceID == targetID {
		return []int{sourceID}, true, nil
	}

	visited := map[int]bool{sourceID: true}
	predecessor := map[int]int{}
	queue := []int{sourceID}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		neighbors, err := ws.Neighbors(cur)
		if err != nil {
			return nil, false, err
		}
		for _, n := range neighbors {
			if visited[n.ID] {
				continue
			}
			visited[n.ID] = true
			predecessor[n.ID] = cur
			if n.ID == targetID {
				return reconstructPath(predecessor, sourceID, targetID), true, nil
			}
			queue = append(queue, n.ID)
		}
	}
	return nil, false, nil
}

func reconstructPath(predecessor map[int]int, sourceID, targetID int) []int {
	path := []int{targetID}
	cur := targetID
	for cur != sourceID {
		cur = predecessor[cur]
		path = append(path, cur)
	}
	return path
}
