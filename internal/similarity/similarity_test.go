package similarity

import (
	"errors"
	"math"
	"testing"

	"github.com/mkrause/wordspace/internal/vecalg"
	"github.com/mkrause/wordspace/internal/wserrors"
)

func TestCosineDenseIdenticalVectors(t *testing.T) {
	u := vecalg.Dense{1, 2, 3}
	got, err := Dense(Cosine, u, u)
	if err != nil {
		t.Fatalf("Dense: %v", err)
	}
	if math.Abs(got-1.0) > 1e-9 {
		t.Fatalf("cosine(u,u) = %v, want 1", got)
	}
}

func TestCosineDenseOrthogonal(t *testing.T) {
	u := vecalg.Dense{1, 0}
	v := vecalg.Dense{0, 1}
	got, err := Dense(Cosine, u, v)
	if err != nil {
		t.Fatalf("Dense: %v", err)
	}
	if math.Abs(got) > 1e-9 {
		t.Fatalf("cosine(u,v) = %v, want 0", got)
	}
}

func TestCosineDenseShapeError(t *testing.T) {
	_, err := Dense(Cosine, vecalg.Dense{1}, vecalg.Dense{1, 2})
	if !errors.Is(err, wserrors.ErrShape) {
		t.Fatalf("expected ErrShape, got %v", err)
	}
}

func TestCosineDenseOppositeVectors(t *testing.T) {
	u := vecalg.Dense{1, 0}
	v := vecalg.Dense{-1, 0}
	got, _ := Dense(Cosine, u, v)
	if math.Abs(got-(-1.0)) > 1e-9 {
		t.Fatalf("cosine(u,-u) = %v, want -1", got)
	}
}

func TestKolbDenseRangeZeroToOne(t *testing.T) {
	u := vecalg.Dense{1, 2, 0}
	v := vecalg.Dense{1, 0, 3}
	got, err := Dense(Kolb, u, v)
	if err != nil {
		t.Fatalf("Dense: %v", err)
	}
	// only dim 0 has both positive: numer = 2*(1+1) = 4, denom = (1+2+0)+(1+0+3) = 7
	want := 4.0 / 7.0
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("kolb(u,v) = %v, want %v", got, want)
	}
	if got < 0 || got > 1 {
		t.Fatalf("kolb(u,v) = %v, out of [0,1]", got)
	}
}

func TestKolbDenseIdenticalIsOne(t *testing.T) {
	u := vecalg.Dense{1, 2, 3}
	got, err := Dense(Kolb, u, u)
	if err != nil {
		t.Fatalf("Dense: %v", err)
	}
	if math.Abs(got-1.0) > 1e-9 {
		t.Fatalf("kolb(u,u) = %v, want 1", got)
	}
}

func TestCosineSparseMatchesDense(t *testing.T) {
	u := vecalg.Sparse{"a": 1, "b": 2}
	v := vecalg.Sparse{"a": 1, "c": 3}

	got := Sparse(Cosine, u, v)
	// dot = 1, uu = 5, vv = 10
	want := 1.0 / math.Sqrt(5*10)
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("cosine sparse = %v, want %v", got, want)
	}
}

func TestKolbSparseMissingFeaturesAreZero(t *testing.T) {
	u := vecalg.Sparse{"a": 2}
	v := vecalg.Sparse{"b": 3}

	got := Sparse(Kolb, u, v)
	if got != 0 {
		t.Fatalf("kolb sparse with disjoint keys = %v, want 0", got)
	}
}

func TestCosineZeroVectorNoPanic(t *testing.T) {
	u := vecalg.Dense{0, 0}
	v := vecalg.Dense{1, 1}
	got, err := Dense(Cosine, u, v)
	if err != nil {
		t.Fatalf("Dense: %v", err)
	}
	if got != 0 {
		t.Fatalf("cosine with zero vector = %v, want 0", got)
	}
}
