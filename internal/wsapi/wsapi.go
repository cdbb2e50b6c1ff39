// Package wsapi defines the shared contract both word-space back-ends
// implement, so that composition, nearest-neighbor search, text similarity,
// and cluster utilities can be written once against an interface rather
// than duplicated per back-end (spec.md §9 Design Notes: "re-architect as a
// tagged variant whose methods dispatch on the variant").
//
// It intentionally has no dependency on sparsestore or densestore, which
// both import it — the dependency runs one way to avoid a cycle, with the
// wordspace package wiring the concrete back-ends to this interface.
package wsapi

import (
	"github.com/mkrause/wordspace/internal/similarity"
	"github.com/mkrause/wordspace/internal/vecalg"
	"github.com/mkrause/wordspace/internal/wsconfig"
)

// Kind distinguishes storage layout: SPARSE (inverted index) or DENSE
// (matrix). Orthogonal to wsconfig.ContentType (COL vs SIM).
type Kind int

const (
	Sparse Kind = iota
	Dense
)

func (k Kind) String() string {
	if k == Dense {
		return "DENSE"
	}
	return "SPARSE"
}

// Neighbor is a scored vocabulary entry, used for similar-words lists and
// nearest-neighbor search results. Similarities are never negative in a
// stored SIM neighbor list; a zero entry terminates that list.
type Neighbor struct {
	Word  string
	ID    int
	Score float64
}

// Collocation is a (feature-key-as-word, significance) pair produced by
// stripping relation suffixes from a sparse feature vector and summing
// duplicates (spec.md §4.3).
type Collocation struct {
	Word        string
	Significance float64
}

// Entry is a vocabulary record as returned to a caller. Exactly one of
// Sparse or Dense is non-nil, matching the back-end that produced it.
// Dense aliases the back-end's matrix row and must not be mutated; Sparse
// is a fresh map safe to mutate (but not necessarily to hold onto — a
// sparse back-end reading from disk may rebuild it per query).
type Entry struct {
	Word   string
	ID     int
	Freq   int
	Sparse vecalg.Sparse
	Dense  vecalg.Dense
}

// VocabIterator walks a word space's vocabulary with no defined order,
// mirroring spec.md §4.3's "enumerate vocabulary via an iterator with no
// defined order; remove is unsupported."
type VocabIterator struct {
	words []string
	i     int
}

func NewVocabIterator(words []string) *VocabIterator {
	return &VocabIterator{words: words}
}

// Next returns the next word and true, or ("", false) once exhausted.
func (it *VocabIterator) Next() (string, bool) {
	if it == nil || it.i >= len(it.words) {
		return "", false
	}
	w := it.words[it.i]
	it.i++
	return w, true
}

// WordSpace is the single polymorphic contract a caller queries, whichever
// back-end produced it. COL instances return (nil, false)/wrong-type for
// every SIM-only operation (SimilarWords, SecondOrderSimilarity).
type WordSpace interface {
	Kind() Kind
	ContentType() wsconfig.ContentType
	SimilarityMeasure() similarity.Measure

	NumberOfWords() int
	NumberOfFeatureWords() int
	NumberOfSimilarWords() int
	TokenCount() int64
	MinFreq() int
	MaxFreq() int
	Stopwords() []string
	IsStopword(w string) bool

	Frequency(word string) int
	Vector(word string) (*Entry, bool)
	Collocations(word string) ([]Collocation, bool)
	SimilarWords(word string) ([]Neighbor, error)
	SemanticSimilarity(w1, w2 string, m similarity.Measure) float64
	SecondOrderSimilarity(w1, w2 string, m similarity.Measure) (float64, error)

	GetWord(id int) (string, bool)
	Vocabulary() *VocabIterator

	// Neighbors returns the stored top-nSim neighbor list for id, used by
	// graph-based nearest-neighbor search and the rank utilities. SIM only.
	Neighbors(id int) ([]Neighbor, error)
}
