// Package recovery provides error recovery mechanisms for opening a word
// space and for degrading a failed lookup to a best-effort match.
package recovery

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/mkrause/wordspace/internal/similarity"
	"github.com/mkrause/wordspace/internal/vecalg"
	"github.com/mkrause/wordspace/internal/wordspace"
	"github.com/mkrause/wordspace/internal/wsapi"
	"github.com/mkrause/wordspace/internal/wsconfig"
	"github.com/mkrause/wordspace/internal/wserrors"
)

// RetryConfig holds configuration for retry operations.
type RetryConfig struct {
	MaxAttempts   int
	BaseDelay     time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
}

// DefaultRetryConfig returns a sensible default retry configuration.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:   3,
		BaseDelay:     100 * time.Millisecond,
		MaxDelay:      5 * time.Second,
		BackoffFactor: 2.0,
	}
}

// WordSpaceRecovery handles word space opening with retry and fallback
// strategies, replacing the teacher's DatabaseRecovery.
type WordSpaceRecovery struct {
	retryConfig RetryConfig
}

// NewWordSpaceRecovery creates a new word space recovery instance.
func NewWordSpaceRecovery(config RetryConfig) *WordSpaceRecovery {
	return &WordSpaceRecovery{retryConfig: config}
}

// OpenWithFallback attempts to open the word space at primaryPath with
// retry, then falls back to a path+".backup" sibling, then to a tiny
// embedded word space as a last resort so a caller (the CLI, the browser)
// always has something to query rather than crashing outright.
func (wr *WordSpaceRecovery) OpenWithFallback(primaryPath string, loadIntoMemory bool) (*wordspace.Handle, error) {
	h, err := wr.openWithRetry(primaryPath, loadIntoMemory)
	if err == nil {
		return h, nil
	}
	primaryErr := err

	fallbackStrategies := []struct {
		name string
		fn   func() (*wordspace.Handle, error)
	}{
		{
			name: "backup word space",
			fn:   func() (*wordspace.Handle, error) { return wr.openBackup(primaryPath, loadIntoMemory) },
		},
		{
			name: "embedded minimal word space",
			fn:   wr.openEmbedded,
		},
	}

	for _, strategy := range fallbackStrategies {
		if h, err := strategy.fn(); err == nil {
			fmt.Printf("Warning: could not open %s (%v); using %s instead\n", primaryPath, primaryErr, strategy.name)
			return h, nil
		}
	}

	return nil, fmt.Errorf("all word space opening strategies failed: %w", primaryErr)
}

// openWithRetry attempts to open the word space with exponential backoff retry.
func (wr *WordSpaceRecovery) openWithRetry(path string, loadIntoMemory bool) (*wordspace.Handle, error) {
	var lastErr error

	for attempt := 1; attempt <= wr.retryConfig.MaxAttempts; attempt++ {
		h, err := wordspace.Open(path, loadIntoMemory)
		if err == nil {
			return h, nil
		}
		lastErr = err

		if !wr.shouldRetry(err) {
			break
		}
		if attempt < wr.retryConfig.MaxAttempts {
			time.Sleep(wr.calculateDelay(attempt))
		}
	}

	return nil, lastErr
}

// shouldRetry determines if an error is worth retrying. A missing path,
// a permission failure, or a structurally corrupt word space will not
// succeed on a later attempt.
func (wr *WordSpaceRecovery) shouldRetry(err error) bool {
	if os.IsNotExist(err) || os.IsPermission(err) {
		return false
	}
	if errors.Is(err, wserrors.ErrCorruptConfig) || errors.Is(err, wserrors.ErrCorruptIndex) {
		return false
	}
	return true
}

func (wr *WordSpaceRecovery) calculateDelay(attempt int) time.Duration {
	delay := float64(wr.retryConfig.BaseDelay) * math.Pow(wr.retryConfig.BackoffFactor, float64(attempt-1))
	if delay > float64(wr.retryConfig.MaxDelay) {
		delay = float64(wr.retryConfig.MaxDelay)
	}
	return time.Duration(delay)
}

// openBackup attempts to open a path+".backup" sibling of primaryPath.
func (wr *WordSpaceRecovery) openBackup(primaryPath string, loadIntoMemory bool) (*wordspace.Handle, error) {
	backupPath := primaryPath + ".backup"
	if _, err := os.Stat(backupPath); err != nil {
		return nil, fmt.Errorf("backup word space not found at %s: %w", backupPath, err)
	}
	return wordspace.Open(backupPath, loadIntoMemory)
}

// openEmbedded returns a tiny hardcoded in-memory word space as an
// unconditional last resort.
func (wr *WordSpaceRecovery) openEmbedded() (*wordspace.Handle, error) {
	return &wordspace.Handle{WordSpace: newEmbeddedWordSpace()}, nil
}

// WordRecovery handles lookup failures with graceful degradation to a
// best-effort vocabulary match, replacing the teacher's SearchRecovery.
type WordRecovery struct{}

// NewWordRecovery creates a new word recovery instance.
func NewWordRecovery() *WordRecovery { return &WordRecovery{} }

// RecoverLookup tries a handful of cheap variants of word against ws's
// vocabulary when the exact word is absent — case folding, stripping a
// trailing plural "s", and a vocabulary prefix scan — and returns the
// first variant found along with the word that matched.
func (wr *WordRecovery) RecoverLookup(word string, ws wsapi.WordSpace) (string, bool) {
	strategies := []struct {
		name string
		fn   func(string, wsapi.WordSpace) (string, bool)
	}{
		{"lowercase", wr.lowercaseMatch},
		{"strip trailing s", wr.stripPluralMatch},
		{"vocabulary prefix", wr.prefixMatch},
	}

	for _, strategy := range strategies {
		if match, ok := strategy.fn(word, ws); ok {
			return match, true
		}
	}
	return "", false
}

func (wr *WordRecovery) lowercaseMatch(word string, ws wsapi.WordSpace) (string, bool) {
	lower := strings.ToLower(word)
	if lower == word {
		return "", false
	}
	if _, ok := ws.Vector(lower); ok {
		return lower, true
	}
	return "", false
}

func (wr *WordRecovery) stripPluralMatch(word string, ws wsapi.WordSpace) (string, bool) {
	if !strings.HasSuffix(word, "s") || len(word) < 2 {
		return "", false
	}
	singular := word[:len(word)-1]
	if _, ok := ws.Vector(singular); ok {
		return singular, true
	}
	return "", false
}

func (wr *WordRecovery) prefixMatch(word string, ws wsapi.WordSpace) (string, bool) {
	if len(word) < 2 {
		return "", false
	}
	it := ws.Vocabulary()
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		if strings.HasPrefix(v, word) {
			return v, true
		}
	}
	return "", false
}

// embeddedWordSpace is a minimal COL, dense, in-memory wsapi.WordSpace used
// as a final opening fallback. It carries no stored neighbor lists.
type embeddedWordSpace struct {
	words []string
	ids   map[string]int
	vecs  []vecalg.Dense
}

func newEmbeddedWordSpace() *embeddedWordSpace {
	words := []string{"word", "space", "vector", "similarity", "neighbor"}
	vecs := []vecalg.Dense{
		{1, 0, 0},
		{0.9, 0.1, 0},
		{0, 1, 0},
		{0.1, 0.9, 0},
		{0, 0, 1},
	}
	ids := make(map[string]int, len(words))
	for i, w := range words {
		ids[w] = i
	}
	return &embeddedWordSpace{words: words, ids: ids, vecs: vecs}
}

func (e *embeddedWordSpace) Kind() wsapi.Kind                        { return wsapi.Dense }
func (e *embeddedWordSpace) ContentType() wsconfig.ContentType       { return wsconfig.ContentCOL }
func (e *embeddedWordSpace) SimilarityMeasure() similarity.Measure   { return similarity.Cosine }
func (e *embeddedWordSpace) NumberOfWords() int                      { return len(e.words) }
func (e *embeddedWordSpace) NumberOfFeatureWords() int               { return 3 }
func (e *embeddedWordSpace) NumberOfSimilarWords() int               { return 0 }
func (e *embeddedWordSpace) TokenCount() int64                       { return int64(len(e.words)) }
func (e *embeddedWordSpace) MinFreq() int                            { return 1 }
func (e *embeddedWordSpace) MaxFreq() int                            { return 1 }
func (e *embeddedWordSpace) Stopwords() []string                     { return nil }
func (e *embeddedWordSpace) IsStopword(string) bool                  { return false }
func (e *embeddedWordSpace) Frequency(string) int                    { return 1 }

func (e *embeddedWordSpace) Vector(word string) (*wsapi.Entry, bool) {
	id, ok := e.ids[word]
	if !ok {
		return nil, false
	}
	return &wsapi.Entry{Word: word, ID: id, Freq: 1, Dense: e.vecs[id]}, true
}

func (e *embeddedWordSpace) Collocations(string) ([]wsapi.Collocation, bool) { return nil, false }

func (e *embeddedWordSpace) SimilarWords(word string) ([]wsapi.Neighbor, error) {
	return nil, wserrors.WrongWorkspaceType("SimilarWords")
}

func (e *embeddedWordSpace) SemanticSimilarity(w1, w2 string, m similarity.Measure) float64 {
	e1, ok1 := e.Vector(w1)
	e2, ok2 := e.Vector(w2)
	if !ok1 || !ok2 {
		return -2
	}
	score, err := similarity.Dense(m, e1.Dense, e2.Dense)
	if err != nil {
		return -2
	}
	return score
}

func (e *embeddedWordSpace) SecondOrderSimilarity(w1, w2 string, m similarity.Measure) (float64, error) {
	return 0, wserrors.WrongWorkspaceType("SecondOrderSimilarity")
}

func (e *embeddedWordSpace) GetWord(id int) (string, bool) {
	if id < 0 || id >= len(e.words) {
		return "", false
	}
	return e.words[id], true
}

func (e *embeddedWordSpace) Vocabulary() *wsapi.VocabIterator {
	return wsapi.NewVocabIterator(e.words)
}

func (e *embeddedWordSpace) Neighbors(id int) ([]wsapi.Neighbor, error) {
	return nil, wserrors.WrongWorkspaceType("Neighbors")
}
