package wserrors

import (
	"errors"
	"testing"
)

func TestSentinelsUnwrap(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"wrong workspace type", WrongWorkspaceType("SimilarWords"), ErrWrongWorkspaceType},
		{"corrupt config", CorruptConfig("disco.config", errors.New("eof")), ErrCorruptConfig},
		{"corrupt index", CorruptIndex("/data/index", errors.New("bad magic")), ErrCorruptIndex},
		{"shape", Shape(3, 4), ErrShape},
		{"io", IO("open", errors.New("disk full")), ErrIO},
		{"parse", Parse("foo bar"), ErrParse},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !errors.Is(tc.err, tc.want) {
				t.Fatalf("errors.Is(%v, %v) = false, want true", tc.err, tc.want)
			}
		})
	}
}

func TestSentinelsDistinct(t *testing.T) {
	all := []error{ErrWrongWorkspaceType, ErrCorruptConfig, ErrCorruptIndex, ErrShape, ErrIO, ErrParse}
	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Fatalf("sentinel %d unexpectedly matches sentinel %d", i, j)
			}
		}
	}
}
