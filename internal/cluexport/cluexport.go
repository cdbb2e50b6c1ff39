// Package cluexport writes the three output-file contracts spec.md §6
// assigns to the core: a plain word-frequency list, and the two CLUTO
// sparse input formats (graph + feature matrix), each paired with a
// rowLabels.dat-style label file. These are writers only — the offline
// builder that produces a word space, and any CLUTO clustering step
// downstream of these files, are out of scope (spec.md §1 Non-goals).
//
// Grounded on the teacher's internal/database/cascading_boost.go
// re-rank-then-emit shape, generalized from a scored command list to a
// scored neighbor/feature list; per-entry iteration errors are skipped and
// tallied rather than aborting the whole export, per spec.md §7's bulk-scan
// recovery policy.
package cluexport

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/mkrause/wordspace/internal/wsapi"
)

// WriteFrequencyList writes one "word\tfrequency" line per vocabulary
// entry, in iteration order, per spec.md §6. Entries that fail to write are
// skipped and counted toward the returned tally.
func WriteFrequencyList(w io.Writer, ws wsapi.WordSpace) (skipped int, err error) {
	it := ws.Vocabulary()
	for {
		word, ok := it.Next()
		if !ok {
			break
		}
		if _, werr := fmt.Fprintf(w, "%s\t%d\n", word, ws.Frequency(word)); werr != nil {
			skipped++
			continue
		}
	}
	return skipped, nil
}

// WriteSparseGraph writes the CLUTO sparse-graph format over the first n
// vocabulary words in iteration order: graphW gets one line per word with
// space-separated "neighborLocalId similarity" pairs (neighbors below
// minSim, or outside the first-n set, are omitted), labelsW gets the words
// themselves one per line in the same order. Neighbor IDs are 1-based
// positions within the first-n set, per spec.md §6.
func WriteSparseGraph(graphW, labelsW io.Writer, ws wsapi.WordSpace, n int, minSim float64) (skipped int, err error) {
	words, localID := firstNWords(ws, n)
	for _, word := range words {
		if _, werr := fmt.Fprintln(labelsW, word); werr != nil {
			skipped++
			continue
		}
		neighbors, nerr := ws.SimilarWords(word)
		if nerr != nil {
			skipped++
			fmt.Fprintln(graphW)
			continue
		}
		var parts []string
		for _, nb := range neighbors {
			if nb.Score < minSim {
				continue
			}
			id, ok := localID[nb.Word]
			if !ok {
				continue
			}
			parts = append(parts, strconv.Itoa(id), strconv.FormatFloat(nb.Score, 'g', -1, 64))
		}
		if _, werr := fmt.Fprintln(graphW, strings.Join(parts, " ")); werr != nil {
			skipped++
		}
	}
	return skipped, nil
}

// WriteSparseMatrix writes the CLUTO sparse-matrix format over the first n
// vocabulary words in iteration order: matrixW gets one line per word with
// space-separated "featureId value" pairs from that word's sparse vector,
// labelsW gets the words themselves. Feature IDs are interned in first-use
// order across the whole export (features within a word are visited in
// sorted key order for a deterministic assignment), per spec.md §6.
func WriteSparseMatrix(matrixW, labelsW io.Writer, ws wsapi.WordSpace, n int) (skipped int, err error) {
	words, _ := firstNWords(ws, n)
	featureID := make(map[string]int)
	nextID := 1

	for _, word := range words {
		if _, werr := fmt.Fprintln(labelsW, word); werr != nil {
			skipped++
			continue
		}
		e, ok := ws.Vector(word)
		if !ok || e.Sparse == nil {
			skipped++
			fmt.Fprintln(matrixW)
			continue
		}

		keys := make([]string, 0, len(e.Sparse))
		for k := range e.Sparse {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(keys)*2)
		for _, k := range keys {
			id, ok := featureID[k]
			if !ok {
				id = nextID
				featureID[k] = id
				nextID++
			}
			parts = append(parts, strconv.Itoa(id), strconv.FormatFloat(e.Sparse[k], 'g', -1, 64))
		}
		if _, werr := fmt.Fprintln(matrixW, strings.Join(parts, " ")); werr != nil {
			skipped++
		}
	}
	return skipped, nil
}

// firstNWords returns the first n words from ws's vocabulary iterator and a
// map from word to its 1-based position in that list.
func firstNWords(ws wsapi.WordSpace, n int) ([]string, map[string]int) {
	it := ws.Vocabulary()
	words := make([]string, 0, n)
	localID := make(map[string]int, n)
	for len(words) < n {
		w, ok := it.Next()
		if !ok {
			break
		}
		words = append(words, w)
		localID[w] = len(words)
	}
	return words, localID
}
