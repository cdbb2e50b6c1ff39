// Package testutil provides shared fixtures for exercising the sparse and
// dense word-space back-ends in tests, replacing the teacher's database
// fixture builders (GetSampleCommands, CreateDefaultTestDatabase, ...) with
// equivalents for a word space's on-disk and in-memory shapes.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/mkrause/wordspace/internal/densestore"
	"github.com/mkrause/wordspace/internal/sparsestore"
	"github.com/mkrause/wordspace/internal/wsconfig"
)

// CreateTempDir creates a temporary directory for testing, returning its
// path and a cleanup function. Prefer t.TempDir() in new tests; this exists
// for callers that need cleanup decoupled from a *testing.T (e.g. benchmark
// setup shared across subtests).
func CreateTempDir() (string, func()) {
	dir, err := os.MkdirTemp("", "wordspace-test-*")
	if err != nil {
		panic(err)
	}
	return dir, func() { os.RemoveAll(dir) }
}

// SampleSimConfig is a disco.config fixture for a 3-word SIM sparse word
// space (vocabularySize=3, numberOfSimilarWords=2), shared across the
// cluexport, simgraph, wsbrowser, and wscli test suites to avoid redefining
// the same cat/dog/kitten disco.config text in every package.
const SampleSimConfig = `vocabularySize=3
numberFeatureWords=10
tokencount=1000
minFreq=1
maxFreq=100
numberOfSimilarWords=2
similarityMeasure=COSINE
dontCompute2ndOrder=false
`

// SampleColConfig is the COL (vectors only, no stored neighbor lists)
// counterpart to SampleSimConfig.
const SampleColConfig = `vocabularySize=3
dontCompute2ndOrder=true
`

// SampleSimIndex returns the sparse index.tsv body for SampleSimConfig: cat,
// dog, and kitten, each with a two-feature sparse vector (one feature
// carrying a relation-marker suffix) and a two-entry neighbor list. marker
// is sparsestore.RelationMarker, passed in by the caller to avoid this
// package importing sparsestore just for that one rune.
func SampleSimIndex(marker rune) string {
	return "cat\t10\tanimal domestic" + string(marker) + "subj\t0.8 0.4\tdog kitten\t0.9 0.7\n" +
		"dog\t8\tanimal loyal\t0.7 0.6\tcat wolf\t0.85 0.5\n" +
		"kitten\t3\tanimal young\t0.5 0.3\tcat dog\t0.7 0.4\n"
}

// WriteSparseFixture writes a disco.config + index.tsv sparse word-space
// directory under a fresh t.TempDir() and returns its path, generalizing
// the teacher's CreateTempDir+SaveDatabase pair to the sparse back-end's
// two-file-per-directory layout (spec.md §6).
func WriteSparseFixture(t testing.TB, config, index string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "disco.config"), []byte(config), 0644); err != nil {
		t.Fatalf("testutil: write disco.config: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "index.tsv"), []byte(index), 0644); err != nil {
		t.Fatalf("testutil: write index.tsv: %v", err)
	}
	return dir
}

// OpenSparseFixture writes and opens SampleSimConfig/SampleSimIndex (or, if
// col is true, SampleColConfig over the same index, whose stored neighbor
// lists a COL store does not serve), returning the ready-to-query store.
func OpenSparseFixture(t testing.TB, col bool) *sparsestore.Store {
	t.Helper()
	config := SampleSimConfig
	if col {
		config = SampleColConfig
	}
	dir := WriteSparseFixture(t, config, SampleSimIndex(sparsestore.RelationMarker))
	s, err := sparsestore.Open(dir, false)
	if err != nil {
		t.Fatalf("testutil: sparsestore.Open: %v", err)
	}
	return s
}

// AnalogyDenseFixture builds the in-memory dense word space used throughout
// spec.md §8's worked examples: king, man, woman, queen placed so that
// king - man + woman is closest to queen, plus an unrelated "apple" as a
// distractor. It carries the same vectors as the buildAnalogySpace helper
// in internal/densestore's tests.
func AnalogyDenseFixture(t testing.TB) (*densestore.Store, []string) {
	t.Helper()
	words := []string{"king", "man", "woman", "queen", "apple"}
	data := []float64{
		1, 1, 0, 0, // king: royal + male
		0, 1, 0, 0, // man: male
		0, 0, 1, 0, // woman: female
		1, 0, 1, 0, // queen: royal + female
		0, 0, 0, 1, // apple: unrelated
	}
	matrix := mat.NewDense(len(words), 4, data)
	freq := make([]int32, len(words))
	cfg := &wsconfig.Config{
		VocabularySize:     len(words),
		NumberFeatureWords: 4,
		ContentType:        wsconfig.ContentCOL,
		SimilarityMeasure:  wsconfig.MeasureCosine,
	}
	s, err := densestore.New(cfg, words, matrix, freq, nil, nil)
	if err != nil {
		t.Fatalf("testutil: densestore.New: %v", err)
	}
	return s, words
}
