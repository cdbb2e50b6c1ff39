// Package simgraph assembles a small similarity adjacency matrix around a
// set of seed words by breadth-first expansion over a word space's
// neighbor lists, the local-graph structure internal/wsbrowser
// walks interactively and that "wordspace graph" prints as an edge list.
//
// The adjacency matrix is a compressed-sparse-row matrix rather than a
// dense one: a breadth-first expansion a few hops out from one seed word
// touches a handful of vocabulary entries out of a store that can hold
// hundreds of thousands, so a dense V×V matrix would waste almost all of
// its memory on zeros. Grounded on iseurie-litevec's Doc.SkipgramPs, which
// builds a *sparse.CSR the same way — indptr/indices/data slices assembled
// row by row, then handed to sparse.NewCSR.
package simgraph

import (
	cs "github.com/james-bowman/sparse"

	"github.com/mkrause/wordspace/internal/wsapi"
)

// Graph is a local similarity neighborhood: Words[i] names row/column i of
// Adjacency, and Adjacency.At(i, j) is the stored similarity between
// Words[i] and Words[j] (0 where no edge was discovered).
type Graph struct {
	Words     []string
	Adjacency *cs.CSR
}

// IndexOf returns the row/column index of word within g.Words, or -1.
func (g *Graph) IndexOf(word string) int {
	for i, w := range g.Words {
		if w == word {
			return i
		}
	}
	return -1
}

// Build expands outward from seeds for up to depth hops, following each
// visited word's stored SimilarWords list (breadthMax widest per hop), and
// returns the resulting neighborhood as a CSR adjacency matrix. A word
// space with no stored neighbor lists (COL) yields a graph containing only
// the seeds, with no edges.
func Build(ws wsapi.WordSpace, seeds []string, depth, breadthMax int) (*Graph, error) {
	if breadthMax <= 0 {
		breadthMax = 10
	}

	index := make(map[string]int)
	var words []string
	edges := make(map[[2]int]float64)

	indexFor := func(w string) int {
		if id, ok := index[w]; ok {
			return id
		}
		id := len(words)
		index[w] = id
		words = append(words, w)
		return id
	}

	frontier := make([]string, 0, len(seeds))
	for _, s := range seeds {
		indexFor(s)
		frontier = append(frontier, s)
	}

	for hop := 0; hop < depth; hop++ {
		var next []string
		for _, w := range frontier {
			neighbors, err := ws.SimilarWords(w)
			if err != nil {
				continue
			}
			u := indexFor(w)
			if len(neighbors) > breadthMax {
				neighbors = neighbors[:breadthMax]
			}
			for _, n := range neighbors {
				v := indexFor(n.Word)
				edges[[2]int{u, v}] = n.Score
				next = append(next, n.Word)
			}
		}
		frontier = next
		if len(frontier) == 0 {
			break
		}
	}

	indptr := make([]int, len(words)+1)
	rowEdges := make([][][2]float64, len(words)) // [][]{col, weight}
	for key, weight := range edges {
		row := key[0]
		rowEdges[row] = append(rowEdges[row], [2]float64{float64(key[1]), weight})
	}

	var indices []int
	var data []float64
	for row := range words {
		for _, ce := range rowEdges[row] {
			indices = append(indices, int(ce[0]))
			data = append(data, ce[1])
		}
		indptr[row+1] = len(indices)
	}

	return &Graph{
		Words:     words,
		Adjacency: cs.NewCSR(len(words), len(words), indptr, indices, data),
	}, nil
}
