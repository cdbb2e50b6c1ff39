package sparsestore

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/mkrause/wordspace/internal/similarity"
	"github.com/mkrause/wordspace/internal/vecalg"
	"github.com/mkrause/wordspace/internal/wsapi"
	"github.com/mkrause/wordspace/internal/wsconfig"
	"github.com/mkrause/wordspace/internal/wserrors"
)

// Store is the sparse (inverted-index) word-space back-end. It implements
// wsapi.WordSpace.
//
// Load policy: Open with loadIntoMemory=false still parses the whole
// index.tsv eagerly in this implementation — the spec's "disk-resident"
// policy corresponds to a store that streams records rather than holding
// them all, which this type does not attempt to distinguish internally.
// Both policies expose the same identical query surface,
// matching the client-visible contract spec.md §4.3 requires.
type Store struct {
	cfg      *wsconfig.Config
	dir      string
	resident bool

	byWord map[string]int // word -> id
	words  []string       // id -> word
	recs   []record       // id -> record
}

// Open parses dir's disco.config and index.tsv. loadIntoMemory is accepted
// for contract parity with spec.md §6's open(path, load_into_memory) but
// does not change this implementation's residency (see Store doc).
func Open(dir string, loadIntoMemory bool) (*Store, error) {
	cfg, err := wsconfig.Parse(filepath.Join(dir, "disco.config"))
	if err != nil {
		return nil, err
	}
	recs, err := loadRecords(dir)
	if err != nil {
		return nil, err
	}

	s := &Store{
		cfg:      cfg,
		dir:      dir,
		resident: loadIntoMemory,
		byWord:   make(map[string]int, len(recs)),
		words:    make([]string, len(recs)),
		recs:     recs,
	}
	for i, r := range recs {
		s.byWord[r.word] = i
		s.words[i] = r.word
	}
	return s, nil
}

// Load is Open with the index forced memory-resident, per spec.md §6.
func Load(dir string) (*Store, error) {
	return Open(dir, true)
}

func (s *Store) Kind() wsapi.Kind                   { return wsapi.Sparse }
func (s *Store) ContentType() wsconfig.ContentType  { return s.cfg.ContentType }
func (s *Store) SimilarityMeasure() similarity.Measure {
	return similarity.Measure(s.cfg.SimilarityMeasure)
}
func (s *Store) NumberOfWords() int         { return len(s.recs) }
func (s *Store) NumberOfFeatureWords() int  { return s.cfg.NumberFeatureWords }
func (s *Store) NumberOfSimilarWords() int  { return s.cfg.NumberOfSimilarWords }
func (s *Store) TokenCount() int64          { return s.cfg.TokenCount }
func (s *Store) MinFreq() int               { return s.cfg.MinFreq }
func (s *Store) MaxFreq() int               { return s.cfg.MaxFreq }
func (s *Store) Stopwords() []string        { return s.cfg.Stopwords }
func (s *Store) IsStopword(w string) bool   { return s.cfg.IsStopword(w) }

func (s *Store) Frequency(word string) int {
	id, ok := s.byWord[word]
	if !ok {
		return 0
	}
	return s.recs[id].freq
}

// Vector returns word's sparse feature vector: parallel kol/kolSig arrays
// folded into a map. Later duplicate keys overwrite earlier ones; the
// builder is expected not to emit duplicates.
func (s *Store) Vector(word string) (*wsapi.Entry, bool) {
	id, ok := s.byWord[word]
	if !ok {
		return nil, false
	}
	r := s.recs[id]
	vec := make(vecalg.Sparse, len(r.kol))
	for i, k := range r.kol {
		vec[k] = r.kolSig[i]
	}
	return &wsapi.Entry{Word: r.word, ID: id, Freq: r.freq, Sparse: vec}, true
}

// Collocations strips any relation suffix from each feature key and sums
// significances of identical resulting words, sorted by significance
// descending with ties keeping insertion order (spec.md §4.3).
func (s *Store) Collocations(word string) ([]wsapi.Collocation, bool) {
	id, ok := s.byWord[word]
	if !ok {
		return nil, false
	}
	r := s.recs[id]

	order := make([]string, 0, len(r.kol))
	sums := make(map[string]float64, len(r.kol))
	for i, k := range r.kol {
		base := stripRelation(k)
		if _, seen := sums[base]; !seen {
			order = append(order, base)
		}
		sums[base] += r.kolSig[i]
	}

	out := make([]wsapi.Collocation, len(order))
	for i, w := range order {
		out[i] = wsapi.Collocation{Word: w, Significance: sums[w]}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Significance > out[b].Significance })
	return out, true
}

func stripRelation(key string) string {
	if idx := strings.IndexRune(key, RelationMarker); idx >= 0 {
		return key[:idx]
	}
	return key
}

// SimilarWords returns the stored neighbor list for word, and an empty
// list (not an error) for an unknown word. On a COL word space it returns
// ErrWrongWorkspaceType.
func (s *Store) SimilarWords(word string) ([]wsapi.Neighbor, error) {
	if s.cfg.ContentType != wsconfig.ContentSIM {
		return nil, wserrors.WrongWorkspaceType("SimilarWords")
	}
	id, ok := s.byWord[word]
	if !ok {
		return nil, nil
	}
	return s.neighborsOf(id), nil
}

func (s *Store) neighborsOf(id int) []wsapi.Neighbor {
	r := s.recs[id]
	out := make([]wsapi.Neighbor, 0, len(r.dsb))
	for i, w := range r.dsb {
		nid, ok := s.byWord[w]
		if !ok {
			nid = -1
		}
		out = append(out, wsapi.Neighbor{Word: w, ID: nid, Score: r.dsbSim[i]})
	}
	return out
}

func (s *Store) Neighbors(id int) ([]wsapi.Neighbor, error) {
	if s.cfg.ContentType != wsconfig.ContentSIM {
		return nil, wserrors.WrongWorkspaceType("Neighbors")
	}
	if id < 0 || id >= len(s.recs) {
		return nil, nil
	}
	return s.neighborsOf(id), nil
}

// SemanticSimilarity fetches w1 and w2 as entry records and applies the
// chosen measure; returns -2 if either is missing (spec.md §4.3, the one
// documented exception to the not-found-as-sentinel rule).
func (s *Store) SemanticSimilarity(w1, w2 string, m similarity.Measure) float64 {
	e1, ok1 := s.Vector(w1)
	e2, ok2 := s.Vector(w2)
	if !ok1 || !ok2 {
		return -2
	}
	return similarity.Sparse(m, e1.Sparse, e2.Sparse)
}

// SecondOrderSimilarity builds two sparse vectors keyed by neighbor-id-as-
// string from w1 and w2's stored neighbor lists, then applies the chosen
// measure — the current (not legacy) form per spec.md §9 Open Question (c).
func (s *Store) SecondOrderSimilarity(w1, w2 string, m similarity.Measure) (float64, error) {
	if s.cfg.ContentType != wsconfig.ContentSIM {
		return 0, wserrors.WrongWorkspaceType("SecondOrderSimilarity")
	}
	id1, ok1 := s.byWord[w1]
	id2, ok2 := s.byWord[w2]
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
		key := strconv.Itoa(n.ID)
		v[key] = n.Score
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

func (s *Store) String() string {
	return fmt.Sprintf("sparsestore.Store{dir=%s, words=%d, type=%s}", s.dir, len(s.recs), s.cfg.ContentType)
}
