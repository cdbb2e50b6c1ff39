// Package constants centralizes the tuning values shared across the
// word-space back-ends, the compositional operators, and nearest-neighbor
// search. Grouping them here keeps the same algorithm tunable from one
// place, the role this package plays in the teacher application.
package constants

import "time"

// Analogy and exhaustive nearest-neighbor result caps.
const (
	// AnalogyMaxResults bounds solveAnalogy's ranked candidate list.
	AnalogyMaxResults = 12

	// ExhaustiveNNBufferMultiplier is a result-slice sizing factor. The
	// exhaustive search in internal/wordspace does not read it; that search
	// grows its result slice as it scans.
	ExhaustiveNNBufferMultiplier = 3
)

// Graph-search (best-first ANN) parameters, spec.md §4.8.
const (
	// GraphSearchInitSetSize is the number of random vocabulary IDs drawn
	// before picking the best-scoring start word.
	GraphSearchInitSetSize = 100
)

// Composition operator defaults, spec.md §4.7.
const (
	// CombinedDefaultA, CombinedDefaultB, CombinedDefaultC are the default
	// (a, b, c) weights for the COMBINED operator: a*u + b*v + c*(u⊙v).
	CombinedDefaultA = 0.95
	CombinedDefaultB = 0.0
	CombinedDefaultC = 0.05

	// DilationDefaultLambda is the default λ for the DILATION operator.
	DilationDefaultLambda = 2.0
)

// Short-text similarity tokenization, spec.md §4.10.
const (
	// MinTokenLength is a minimum token length, matching the teacher's own
	// MinWordLength value. The text-similarity tokenizer in internal/wordspace
	// splits on whitespace only and does not apply it.
	MinTokenLength = 1
)

// Query result caching, mirrors the teacher's cache package defaults.
const (
	DefaultCacheTTL      = 5 * time.Minute
	DefaultCacheCapacity = 1000
)

// MaxQueryLength bounds a raw word string accepted by validation, reusing
// the teacher's own bound for user-supplied text.
const MaxQueryLength = 1000

// Nearest-neighbor result-count bounds for callers that accept a caller-
// supplied limit instead of always taking a word space's own nSim width.
const (
	// DefaultNNLimit is used when a caller passes limit == 0.
	DefaultNNLimit = 10
	// MaxNNLimit caps an explicit caller-supplied limit.
	MaxNNLimit = 100
)
