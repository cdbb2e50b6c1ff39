// Package ngram extracts character n-grams from words, the subword unit the
// dense back-end uses both to build its n-gram matrix and to reconstruct
// vectors for out-of-vocabulary words (spec.md §4.5, §4.6).
//
// Extraction operates on runes, not bytes, so multi-byte UTF-8 sequences
// count as one character each — the same choice the teacher's embedding
// tokenizer makes by ranging over []rune rather than indexing a string
// directly. Input is first NFD-normalized with golang.org/x/text/unicode/norm
// so a precomposed character and its combining-mark-plus-base-letter
// equivalent fully decompose to the same rune sequence, instead of one
// form's combining mark landing on an n-gram boundary the other form never
// hits.
package ngram

import "golang.org/x/text/unicode/norm"

const (
	BoundaryBegin = '<'
	BoundaryEnd   = '>'
)

// Pad wraps w with the boundary-begin and boundary-end markers after
// normalizing it to NFD.
func Pad(w string) string {
	return string(BoundaryBegin) + norm.NFD.String(w) + string(BoundaryEnd)
}

// Raw returns every contiguous run of exactly n runes in s, left to right,
// with no boundary padding. Empty input or n<1 produces no output.
func Raw(s string, n int) []string {
	if n < 1 || s == "" {
		return nil
	}
	runes := []rune(norm.NFD.String(s))
	if n > len(runes) {
		return nil
	}
	out := make([]string, 0, len(runes)-n+1)
	for start := 0; start+n <= len(runes); start++ {
		out = append(out, string(runes[start:start+n]))
	}
	return out
}

// Extract pads w with the boundary markers, then returns every contiguous
// run of length n for each n in [minN, maxN], ordered by increasing n and
// then by left-to-right start position. This is the form used to build and
// query the dense back-end's n-gram store (spec.md §4.6 subword
// reconstruction). Empty input or maxN<1 produces no n-grams; minN is
// clamped to 1.
func Extract(w string, minN, maxN int) []string {
	if minN < 1 {
		minN = 1
	}
	if maxN < 1 || w == "" {
		return nil
	}

	padded := []rune(Pad(w))
	var out []string
	for n := minN; n <= maxN; n++ {
		if n > len(padded) {
			break
		}
		for start := 0; start+n <= len(padded); start++ {
			out = append(out, string(padded[start:start+n]))
		}
	}
	return out
}
