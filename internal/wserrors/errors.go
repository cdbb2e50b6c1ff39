// Package wserrors defines the typed error kinds shared by every word-space
// back-end and query operator.
//
// "Not found" is deliberately NOT one of these kinds: a missing word is a
// normal outcome, returned as (value, false) or a nil pointer, never as an
// error. SemanticSimilarity is the one documented exception, which keeps
// returning the -2 sentinel for backward compatibility rather than an error
// or a bool (see DESIGN.md, Open Question a).
package wserrors

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Wrap with fmt.Errorf("%w: ...", ErrX) and unwrap
// with errors.Is, the same idiom the teacher uses for its DatabaseError
// and SearchError wrapping.
var (
	// ErrWrongWorkspaceType is returned when a neighbor-requiring operation
	// (SimilarWords, graph search, shortest path) is called on a COL word space.
	ErrWrongWorkspaceType = errors.New("operation requires a SIM word space")

	// ErrCorruptConfig is returned when disco.config cannot be parsed or is
	// missing a required field. Fatal at open.
	ErrCorruptConfig = errors.New("corrupt word space config")

	// ErrCorruptIndex is returned when the sparse store directory is
	// unreadable or malformed. Fatal at open or at the failing operation.
	ErrCorruptIndex = errors.New("corrupt sparse index")

	// ErrShape is returned when dense vectors of mismatched length are
	// combined. Never recovered by the core.
	ErrShape = errors.New("mismatched vector shape")

	// ErrIO wraps an underlying storage failure. Fatal at the current
	// operation, not at the handle scope.
	ErrIO = errors.New("word space I/O failure")

	// ErrParse is returned for a bad query token during sparse search.
	// Callers typically treat this as not-found rather than propagating it.
	ErrParse = errors.New("unparsable query token")
)

// WrongWorkspaceType wraps ErrWrongWorkspaceType with the operation name.
func WrongWorkspaceType(op string) error {
	return fmt.Errorf("%w: %s", ErrWrongWorkspaceType, op)
}

// CorruptConfig wraps ErrCorruptConfig with the offending path and cause.
func CorruptConfig(path string, cause error) error {
	return fmt.Errorf("%w: %s: %v", ErrCorruptConfig, path, cause)
}

// CorruptIndex wraps ErrCorruptIndex with the offending path and cause.
func CorruptIndex(path string, cause error) error {
	return fmt.Errorf("%w: %s: %v", ErrCorruptIndex, path, cause)
}

// Shape wraps ErrShape with the two mismatched lengths.
func Shape(lenA, lenB int) error {
	return fmt.Errorf("%w: %d vs %d", ErrShape, lenA, lenB)
}

// IO wraps ErrIO with the operation and cause.
func IO(op string, cause error) error {
	return fmt.Errorf("%w: %s: %v", ErrIO, op, cause)
}

// Parse wraps ErrParse with the offending token.
func Parse(token string) error {
	return fmt.Errorf("%w: %q", ErrParse, token)
}
