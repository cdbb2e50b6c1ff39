package wsconfig

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mkrause/wordspace/internal/wserrors"
)

func writeConfig(t *testing.T, dir string, body string) string {
	t.Helper()
	path := filepath.Join(dir, "disco.config")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestParseSIMConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
vocabularySize=1000
numberFeatureWords=100
tokencount=500000
minFreq=5
maxFreq=9999
numberOfSimilarWords=50
stopwords=the a an
weightingMethod=MI
similarityMeasure=COSINE
dontCompute2ndOrder=false
discoVersion=3.0
ngramRange=3-6
`)

	cfg, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if cfg.VocabularySize != 1000 {
		t.Errorf("VocabularySize = %d, want 1000", cfg.VocabularySize)
	}
	if cfg.ContentType != ContentSIM {
		t.Errorf("ContentType = %v, want SIM", cfg.ContentType)
	}
	if cfg.NumberOfSimilarWords != 50 {
		t.Errorf("NumberOfSimilarWords = %d, want 50", cfg.NumberOfSimilarWords)
	}
	if !cfg.IsStopword("a") || cfg.IsStopword("xylophone") {
		t.Errorf("IsStopword mismatch: stopwords=%v", cfg.Stopwords)
	}
	if cfg.SimilarityMeasure != MeasureCosine {
		t.Errorf("SimilarityMeasure = %v, want COSINE", cfg.SimilarityMeasure)
	}
	if !cfg.HasNgrams() || cfg.NgramMinN != 3 || cfg.NgramMaxN != 6 {
		t.Errorf("n-gram range not parsed: min=%d max=%d", cfg.NgramMinN, cfg.NgramMaxN)
	}
}

func TestParseCOLConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "vocabularySize=10\ndontCompute2ndOrder=true\n")

	cfg, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.ContentType != ContentCOL {
		t.Errorf("ContentType = %v, want COL", cfg.ContentType)
	}
}

func TestParseUnknownKeysIgnored(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "vocabularySize=10\nlemma=true\nboundaryMarks=<>\n# a comment\n")

	cfg, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if v, ok := cfg.Raw("lemma"); !ok || v != "true" {
		t.Errorf("Raw(lemma) = %q,%v want true,true", v, ok)
	}
}

func TestParseMissingVocabularySize(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "weightingMethod=MI\n")

	_, err := Parse(path)
	if !errors.Is(err, wserrors.ErrCorruptConfig) {
		t.Fatalf("expected ErrCorruptConfig, got %v", err)
	}
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "nope.config"))
	if !errors.Is(err, wserrors.ErrCorruptConfig) {
		t.Fatalf("expected ErrCorruptConfig, got %v", err)
	}
}
