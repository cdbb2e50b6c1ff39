// Package densestore implements the dense (matrix) word-space back-end:
// one row per vocabulary word in a serialized float matrix, with optional
// character n-gram rows for out-of-vocabulary reconstruction and optional
// neighbor matrices for SIM word spaces (spec.md §4.4).
//
// Word and n-gram lookup go through a minimal perfect hash (internal/mph);
// mph.Table already folds spec.md §9's wordIndex2id array into itself —
// Lookup returns the key's original build-order id, not its raw hash slot,
// after the secondary membership check (comparing the stored key at that
// slot against the query) — so this package indexes words/freq/matrix by
// the id Lookup returns and keeps no separate index→id array of its own.
//
// Row access and matrix framing follow the teacher's embedding.go: a
// bufio.Reader plus encoding/binary.Read calls, [len:u16][bytes] word
// framing, row slices returned by gonum's mat.Dense.RawRowView aliasing the
// backing array exactly the way embedding.Index.WordVectors rows do.
package densestore

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/mkrause/wordspace/internal/mph"
	"github.com/mkrause/wordspace/internal/ngram"
	"github.com/mkrause/wordspace/internal/similarity"
	"github.com/mkrause/wordspace/internal/vecalg"
	"github.com/mkrause/wordspace/internal/wsapi"
	"github.com/mkrause/wordspace/internal/wsconfig"
	"github.com/mkrause/wordspace/internal/wserrors"
)

// NgramData carries the optional subword matrix described in spec.md §4.4.
type NgramData struct {
	MinN, MaxN int
	Keys       []string // ngram id -> string
	Matrix     *mat.Dense
}

// NeighborData carries the optional SIM neighbor matrices. IDs[i] and
// Sims[i] are parallel, length nSim, a zero similarity terminates the list
// early for word i.
type NeighborData struct {
	NSim int
	IDs  [][]int32
	Sims *mat.Dense
}

// Store is the dense matrix word-space back-end. It implements
// wsapi.WordSpace.
type Store struct {
	cfg    *wsconfig.Config
	words  []string // id -> word
	wordH  *mph.Table
	matrix *mat.Dense // V x D
	freq   []int32

	ngrams    *NgramData
	ngramH    *mph.Table
	neighbors *NeighborData
}

// New builds a Store directly from in-memory data, constructing the
// minimal perfect hashes over words (and n-grams, if present). Used both
// by the binary loader and directly by tests and the offline-fixture
// builders that do not round-trip through serialization.
func New(cfg *wsconfig.Config, words []string, matrix *mat.Dense, freq []int32, ngrams *NgramData, neighbors *NeighborData) (*Store, error) {
	rows, _ := matrix.Dims()
	if rows != len(words) {
		return nil, fmt.Errorf("matrix has %d rows, want %d (len(words))", rows, len(words))
	}
	wordH, err := mph.Build(words)
	if err != nil {
		return nil, wserrors.CorruptIndex("dense word hash", err)
	}

	s := &Store{cfg: cfg, words: words, wordH: wordH, matrix: matrix, freq: freq, neighbors: neighbors}

	if ngrams != nil {
		ngramH, err := mph.Build(ngrams.Keys)
		if err != nil {
			return nil, wserrors.CorruptIndex("dense ngram hash", err)
		}
		s.ngrams = ngrams
		s.ngramH = ngramH
	}
	return s, nil
}

func (s *Store) Kind() wsapi.Kind                      { return wsapi.Dense }
func (s *Store) ContentType() wsconfig.ContentType     { return s.cfg.ContentType }
func (s *Store) SimilarityMeasure() similarity.Measure { return similarity.Measure(s.cfg.SimilarityMeasure) }
func (s *Store) NumberOfWords() int                    { return len(s.words) }
func (s *Store) NumberOfFeatureWords() int              { return s.cfg.NumberFeatureWords }
func (s *Store) NumberOfSimilarWords() int              { return s.cfg.NumberOfSimilarWords }
func (s *Store) TokenCount() int64                      { return s.cfg.TokenCount }
func (s *Store) MinFreq() int                           { return s.cfg.MinFreq }
func (s *Store) MaxFreq() int                           { return s.cfg.MaxFreq }
func (s *Store) Stopwords() []string                    { return s.cfg.Stopwords }
func (s *Store) IsStopword(w string) bool               { return s.cfg.IsStopword(w) }

func (s *Store) wordID(word string) (int, bool) {
	return s.wordH.Lookup(word)
}

func (s *Store) Frequency(word string) int {
	id, ok := s.wordID(word)
	if !ok {
		return 0
	}
	return int(s.freq[id])
}

// GetWordVector returns the row at id, aliasing the matrix.
func (s *Store) GetWordVector(id int) vecalg.Dense {
	return vecalg.Dense(s.matrix.RawRowView(id))
}

// GetWordEmbedding returns word's row if known; otherwise, if n-gram data
// is present, the sum of the vectors of all n-grams of the padded word
// (OOV synthesis, spec.md §4.6); the zero vector if none match. Without
// n-gram data, OOV returns (nil, false).
func (s *Store) GetWordEmbedding(word string) (vecalg.Dense, bool) {
	if id, ok := s.wordID(word); ok {
		row := s.matrix.RawRowView(id)
		out := make(vecalg.Dense, len(row))
		copy(out, row)
		return out, true
	}
	if s.ngrams == nil {
		return nil, false
	}
	return s.reconstructFromNgrams(word), true
}

func (s *Store) reconstructFromNgrams(word string) vecalg.Dense {
	_, d := s.matrix.Dims()
	sum := make(vecalg.Dense, d)
	for _, g := range ngram.Extract(word, s.ngrams.MinN, s.ngrams.MaxN) {
		id, ok := s.ngramH.Lookup(g)
		if !ok {
			continue
		}
		row := s.ngrams.Matrix.RawRowView(id)
		for i, x := range row {
			sum[i] += x
		}
	}
	return sum
}

func (s *Store) Vector(word string) (*wsapi.Entry, bool) {
	id, ok := s.wordID(word)
	if !ok {
		return nil, false
	}
	return &wsapi.Entry{Word: word, ID: id, Freq: int(s.freq[id]), Dense: s.GetWordVector(id)}, true
}

// Collocations is not defined for the dense back-end (spec.md §4.3 scopes
// it to the sparse store); dense word spaces always report not-found.
func (s *Store) Collocations(word string) ([]wsapi.Collocation, bool) {
	return nil, false
}

// SimilarWords returns pairs taken from the neighbor matrices' first
// numberOfSimilarWords columns, stopping at the first zero similarity
// (spec.md §4.4).
func (s *Store) SimilarWords(word string) ([]wsapi.Neighbor, error) {
	if s.neighbors == nil {
		return nil, wserrors.WrongWorkspaceType("SimilarWords")
	}
	id, ok := s.wordID(word)
	if !ok {
		return nil, nil
	}
	return s.neighborsOf(id), nil
}

func (s *Store) neighborsOf(id int) []wsapi.Neighbor {
	ids := s.neighbors.IDs[id]
	out := make([]wsapi.Neighbor, 0, len(ids))
	for i, nid := range ids {
		sim := s.neighbors.Sims.At(id, i)
		if sim == 0 {
			break
		}
		w := ""
		if int(nid) >= 0 && int(nid) < len(s.words) {
			w = s.words[nid]
		}
		out = append(out, wsapi.Neighbor{Word: w, ID: int(nid), Score: sim})
	}
	return out
}

func (s *Store) Neighbors(id int) ([]wsapi.Neighbor, error) {
	if s.neighbors == nil {
		return nil, wserrors.WrongWorkspaceType("Neighbors")
	}
	if id < 0 || id >= len(s.words) {
		return nil, nil
	}
	return s.neighborsOf(id), nil
}

func (s *Store) SemanticSimilarity(w1, w2 string, m similarity.Measure) float64 {
	id1, ok1 := s.wordID(w1)
	id2, ok2 := s.wordID(w2)
	if !ok1 || !ok2 {
		return -2
	}
	got, _ := similarity.Dense(m, s.GetWordVector(id1), s.GetWordVector(id2))
	return got
}

// SecondOrderSimilarity builds two sparse vectors keyed by neighbor-id-as-
// string and applies the chosen measure (spec.md §9 Open Question (c)).
func (s *Store) SecondOrderSimilarity(w1, w2 string, m similarity.Measure) (float64, error) {
	if s.neighbors == nil {
		return 0, wserrors.WrongWorkspaceType("SecondOrderSimilarity")
	}
	id1, ok1 := s.wordID(w1)
	id2, ok2 := s.wordID(w2)
	if !ok1 || !ok2 {
		return -2, nil
	}
	v1 := neighborVector(s.neighborsOf(id1))
	v2 := neighborVector(s.neighborsOf(id2))
	return similarity.Sparse(m, v1, v2), nil
}

func neighborVector(ns []wsapi.Neighbor) vecalg.Sparse {
	v := make(vecalg.Sparse, len(ns))
	for _, n := range ns {
		v[fmt.Sprintf("%d", n.ID)] = n.Score
	}
	return v
}

func (s *Store) GetWord(id int) (string, bool) {
	if id < 0 || id >= len(s.words) {
		return "", false
	}
	return s.words[id], true
}

func (s *Store) Vocabulary() *wsapi.VocabIterator {
	return wsapi.NewVocabIterator(s.words)
}
