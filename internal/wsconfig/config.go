// Package wsconfig parses the disco.config key=value file that accompanies
// a word space (spec.md §6) into a validated Config record.
//
// The file format is deliberately simple — one "key=value" per line, blank
// lines and "#"-prefixed lines ignored — so a bufio.Scanner line parser is
// used rather than pulling in a config library, the same choice the teacher
// makes for its own flat Config struct.
package wsconfig

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mkrause/wordspace/internal/wserrors"
)

// ContentType distinguishes a word space with vectors only (COL) from one
// that also carries precomputed neighbor lists (SIM).
type ContentType string

const (
	ContentCOL ContentType = "COL"
	ContentSIM ContentType = "SIM"
)

// SimilarityMeasureName names the measure used to build a SIM word space's
// stored neighbor lists.
type SimilarityMeasureName string

const (
	MeasureCosine SimilarityMeasureName = "COSINE"
	MeasureKolb   SimilarityMeasureName = "KOLB"
)

// Config is the parsed disco.config metadata describing a word space.
type Config struct {
	// VocabularySize is the number of vocabulary entries, V.
	VocabularySize int
	// NumberFeatureWords is the feature dimensionality, D, for dense stores.
	NumberFeatureWords int
	// TokenCount is the corpus token count used for icf weighting.
	TokenCount int64
	// MinFreq, MaxFreq bound observed word frequencies.
	MinFreq int
	MaxFreq int
	// Stopwords is the space-separated stopword list from the config file.
	Stopwords []string
	// ContentType is COL or SIM, derived from dontCompute2ndOrder.
	ContentType ContentType
	// NumberOfSimilarWords is the stored neighbor-list width, nSim.
	NumberOfSimilarWords int
	// NgramMinN, NgramMaxN bound stored character n-gram lengths; both zero
	// means no subword data.
	NgramMinN int
	NgramMaxN int
	// WeightingMethod names the feature-weighting scheme used to build the
	// store (kept opaque; the core does not recompute weights).
	WeightingMethod string
	// SimilarityMeasure is the measure used to build stored neighbor lists.
	SimilarityMeasure SimilarityMeasureName
	// DiscoVersion records the builder version string, informational only.
	DiscoVersion string

	raw map[string]string
}

// Raw returns the value of an unrecognized key, for callers that need a
// field this struct doesn't surface directly. Ok is false if absent.
func (c *Config) Raw(key string) (string, bool) {
	v, ok := c.raw[key]
	return v, ok
}

// Parse reads a disco.config file at path and returns the validated Config.
// Unknown keys are ignored; missing optional keys revert to documented
// defaults. A missing or unparsable required field is ErrCorruptConfig.
func Parse(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, wserrors.CorruptConfig(path, err)
	}
	defer f.Close()

	raw := make(map[string]string)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		raw[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, wserrors.CorruptConfig(path, err)
	}

	cfg, err := fromRaw(raw)
	if err != nil {
		return nil, wserrors.CorruptConfig(path, err)
	}
	return cfg, nil
}

func fromRaw(raw map[string]string) (*Config, error) {
	cfg := &Config{raw: raw}

	var err error
	if cfg.VocabularySize, err = intField(raw, "vocabularySize", 0); err != nil {
		return nil, err
	}
	if cfg.NumberFeatureWords, err = intField(raw, "numberFeatureWords", 0); err != nil {
		return nil, err
	}
	tc, err := int64Field(raw, "tokencount", 0)
	if err != nil {
		return nil, err
	}
	cfg.TokenCount = tc
	if cfg.MinFreq, err = intField(raw, "minFreq", 0); err != nil {
		return nil, err
	}
	if cfg.MaxFreq, err = intField(raw, "maxFreq", 0); err != nil {
		return nil, err
	}
	if cfg.NumberOfSimilarWords, err = intField(raw, "numberOfSimilarWords", 0); err != nil {
		return nil, err
	}

	ngramRange := strings.TrimSpace(raw["ngramRange"])
	cfg.NgramMinN, cfg.NgramMaxN, err = parseNgramRange(ngramRange)
	if err != nil {
		return nil, err
	}

	if v, ok := raw["stopwords"]; ok && strings.TrimSpace(v) != "" {
		cfg.Stopwords = strings.Fields(v)
	}

	cfg.WeightingMethod = raw["weightingMethod"]
	cfg.DiscoVersion = raw["discoVersion"]

	measure := strings.ToUpper(strings.TrimSpace(raw["similarityMeasure"]))
	switch measure {
	case string(MeasureKolb):
		cfg.SimilarityMeasure = MeasureKolb
	case "", string(MeasureCosine):
		cfg.SimilarityMeasure = MeasureCosine
	default:
		return nil, fmt.Errorf("unknown similarityMeasure %q", measure)
	}

	dontCompute2nd := strings.EqualFold(strings.TrimSpace(raw["dontCompute2ndOrder"]), "true")
	if dontCompute2nd {
		cfg.ContentType = ContentCOL
	} else {
		cfg.ContentType = ContentSIM
	}

	if cfg.VocabularySize <= 0 {
		return nil, fmt.Errorf("vocabularySize missing or non-positive")
	}
	return cfg, nil
}

func parseNgramRange(v string) (minN, maxN int, err error) {
	if v == "" {
		return 0, 0, nil
	}
	lo, hi, ok := strings.Cut(v, "-")
	if !ok {
		return 0, 0, fmt.Errorf("malformed ngramRange %q", v)
	}
	minN, err = strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return 0, 0, fmt.Errorf("malformed ngramRange %q: %w", v, err)
	}
	maxN, err = strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return 0, 0, fmt.Errorf("malformed ngramRange %q: %w", v, err)
	}
	return minN, maxN, nil
}

func intField(raw map[string]string, key string, def int) (int, error) {
	v, ok := raw[key]
	if !ok || strings.TrimSpace(v) == "" {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("field %s: %w", key, err)
	}
	return n, nil
}

func int64Field(raw map[string]string, key string, def int64) (int64, error) {
	v, ok := raw[key]
	if !ok || strings.TrimSpace(v) == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("field %s: %w", key, err)
	}
	return n, nil
}

// HasNgrams reports whether the config declares a subword n-gram range.
func (c *Config) HasNgrams() bool {
	return c.NgramMaxN > 0 && c.NgramMaxN >= c.NgramMinN
}

// IsStopword reports whether w is in the configured stopword list.
func (c *Config) IsStopword(w string) bool {
	for _, s := range c.Stopwords {
		if s == w {
			return true
		}
	}
	return false
}
