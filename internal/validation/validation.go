// Package validation provides input validation and sanitization utilities
// for the strings a caller hands to a word space: single vocabulary lookup
// words, nearest-neighbor result limits, and output filenames.
package validation

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/mkrause/wordspace/internal/constants"
)

// ValidateWord validates and sanitizes a single vocabulary lookup word
// (Vector, SimilarWords, Frequency, and friends all key on one token —
// spec.md §4.1's word space is indexed on whitespace-tokenized words, not
// phrases). Control characters are stripped, surrounding whitespace is
// trimmed, and a word containing internal whitespace is rejected rather
// than silently collapsed, since a multi-token input is a caller error for
// these single-word lookups.
func ValidateWord(word string) (string, error) {
	if len(word) == 0 {
		return "", fmt.Errorf("word cannot be empty")
	}

	if len(word) > constants.MaxQueryLength {
		return "", fmt.Errorf("word too long (max %d characters)", constants.MaxQueryLength)
	}

	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, word)

	cleaned = strings.TrimSpace(cleaned)

	if len(cleaned) == 0 {
		return "", fmt.Errorf("word contains no valid characters")
	}

	if strings.ContainsAny(cleaned, " \t") {
		return "", fmt.Errorf("word must be a single token, got %q", cleaned)
	}

	return cleaned, nil
}

// ValidateLimit validates a caller-supplied nearest-neighbor result count.
// limit == 0 defaults to constants.DefaultNNLimit; a limit above
// constants.MaxNNLimit is capped (returned alongside an error so a caller
// can choose to use the capped value rather than fail outright).
func ValidateLimit(limit int) (int, error) {
	if limit < 0 {
		return 0, fmt.Errorf("limit cannot be negative")
	}

	if limit == 0 {
		return constants.DefaultNNLimit, nil
	}

	if limit > constants.MaxNNLimit {
		return constants.MaxNNLimit, fmt.Errorf("limit too large (max %d)", constants.MaxNNLimit)
	}

	return limit, nil
}

// SanitizeFilename sanitizes filenames for safe filesystem operations, used
// by internal/cluexport's CLI-facing output paths (frequency list, CLUTO
// graph/matrix files) before they reach CreateSecureFile.
func SanitizeFilename(filename string) string {
	unsafe := []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|"}
	cleaned := filename

	for _, char := range unsafe {
		cleaned = strings.ReplaceAll(cleaned, char, "_")
	}

	cleaned = strings.Trim(cleaned, " .")

	if len(cleaned) > 255 {
		cleaned = cleaned[:255]
	}

	return cleaned
}
