// Package similarity implements the two measures word spaces compare
// vectors with: Cosine and KOLB (a Dice-style measure). Each has a dense
// overload and a sparse overload, mirroring the teacher's
// embedding.CosineSimilarity (dense) and nlp/tfidf.go's cosineSimilarity
// (sparse map dot product). There is no overload taking backend entry
// records; callers pass an entry's Dense or Sparse vector.
package similarity

import (
	"math"

	"github.com/mkrause/wordspace/internal/vecalg"
	"github.com/mkrause/wordspace/internal/wserrors"
)

// Measure names a similarity function selectable from a word space's
// config record or a query.
type Measure string

const (
	Cosine Measure = "COSINE"
	Kolb   Measure = "KOLB"
)

// Dense computes the named measure between two dense vectors.
func Dense(m Measure, u, v vecalg.Dense) (float64, error) {
	switch m {
	case Kolb:
		return kolbDense(u, v)
	default:
		return cosineDense(u, v)
	}
}

// Sparse computes the named measure between two sparse vectors.
func Sparse(m Measure, u, v vecalg.Sparse) float64 {
	if m == Kolb {
		return kolbSparse(u, v)
	}
	return cosineSparse(u, v)
}

// cosineDense is dot(u,v) / sqrt(dot(u,u)*dot(v,v)).
func cosineDense(u, v vecalg.Dense) (float64, error) {
	uv, err := vecalg.Dot(u, v)
	if err != nil {
		return 0, err
	}
	uu, _ := vecalg.Dot(u, u)
	vv, _ := vecalg.Dot(v, v)
	denom := math.Sqrt(uu * vv)
	if denom == 0 {
		return 0, nil
	}
	return uv / denom, nil
}

func cosineSparse(u, v vecalg.Sparse) float64 {
	uv := vecalg.DotSparse(u, v)
	uu := vecalg.DotSparse(u, u)
	vv := vecalg.DotSparse(v, v)
	denom := math.Sqrt(uu * vv)
	if denom == 0 {
		return 0
	}
	return uv / denom
}

// kolbDense is 2*Σ[u_i+v_i where both positive] / Σ(u_i+v_i). Callers must
// not pass vectors with negative components; behavior is otherwise
// undefined (spec's documented precondition, not a runtime-checked one).
func kolbDense(u, v vecalg.Dense) (float64, error) {
	if len(u) != len(v) {
		return 0, wserrors.Shape(len(u), len(v))
	}
	var numer, denom float64
	for i := range u {
		denom += u[i] + v[i]
		if u[i] > 0 && v[i] > 0 {
			numer += u[i] + v[i]
		}
	}
	if denom == 0 {
		return 0, nil
	}
	return 2 * numer / denom, nil
}

func kolbSparse(u, v vecalg.Sparse) float64 {
	var numer float64
	small, big := u, v
	if len(v) < len(u) {
		small, big = v, u
	}
	for k, x := range small {
		if y, ok := big[k]; ok {
			numer += x + y
		}
	}
	var denom float64
	for _, x := range u {
		denom += x
	}
	for _, y := range v {
		denom += y
	}
	if denom == 0 {
		return 0
	}
	return 2 * numer / denom
}
