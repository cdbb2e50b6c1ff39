// Package vecalg implements the vector algebra shared by every back-end and
// compositional operator: element-wise add/sub/mul, scalar multiply, dot
// product, per-dimension extrema, averaging, L2 norm and normalization —
// once for dense float slices and once for sparse feature maps.
//
// The dense API mirrors the loop shapes in the teacher's
// embedding.CosineSimilarity and EmbedQuery for the operations with no
// gonum equivalent (element-wise add/sub/mul, extrema, averaging); Dot and
// Norm instead go through gonum.org/v1/gonum/floats' BLAS-backed routines,
// the same dependency densestore already pulls in for its backing matrix.
// The sparse API mirrors nlp/tfidf.go's map[int]float64 term-vector
// bookkeeping — gonum's floats package operates on []float64 and has no
// counterpart for a sparse map, so that half stays hand-rolled.
package vecalg

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/mkrause/wordspace/internal/wserrors"
)

// Dense is a fixed-length sequence of floats. Vectors returned by a back-end
// may alias shared storage (a matrix row); callers must not mutate a Dense
// value obtained from a back-end without copying it first.
type Dense []float64

// Add returns u + v element-wise.
func Add(u, v Dense) (Dense, error) {
	if len(u) != len(v) {
		return nil, wserrors.Shape(len(u), len(v))
	}
	out := make(Dense, len(u))
	for i := range u {
		out[i] = u[i] + v[i]
	}
	return out, nil
}

// Sub returns u - v element-wise.
func Sub(u, v Dense) (Dense, error) {
	if len(u) != len(v) {
		return nil, wserrors.Shape(len(u), len(v))
	}
	out := make(Dense, len(u))
	for i := range u {
		out[i] = u[i] - v[i]
	}
	return out, nil
}

// Mul returns the element-wise (Hadamard) product u ⊙ v.
func Mul(u, v Dense) (Dense, error) {
	if len(u) != len(v) {
		return nil, wserrors.Shape(len(u), len(v))
	}
	out := make(Dense, len(u))
	for i := range u {
		out[i] = u[i] * v[i]
	}
	return out, nil
}

// Scale returns u scaled by the scalar s. It does not mutate u.
func Scale(u Dense, s float64) Dense {
	out := make(Dense, len(u))
	for i, x := range u {
		out[i] = x * s
	}
	return out
}

// Dot returns the dot product of u and v.
func Dot(u, v Dense) (float64, error) {
	if len(u) != len(v) {
		return 0, wserrors.Shape(len(u), len(v))
	}
	return floats.Dot(u, v), nil
}

// Extrema returns, per dimension, the operand with the larger absolute
// value; ties keep u's value.
func Extrema(u, v Dense) (Dense, error) {
	if len(u) != len(v) {
		return nil, wserrors.Shape(len(u), len(v))
	}
	out := make(Dense, len(u))
	for i := range u {
		if math.Abs(v[i]) > math.Abs(u[i]) {
			out[i] = v[i]
		} else {
			out[i] = u[i]
		}
	}
	return out, nil
}

// Average returns the element-wise mean of vs. All vectors must share the
// same length.
func Average(vs []Dense) (Dense, error) {
	if len(vs) == 0 {
		return nil, nil
	}
	n := len(vs[0])
	sum := make(Dense, n)
	for _, v := range vs {
		if len(v) != n {
			return nil, wserrors.Shape(n, len(v))
		}
		for i, x := range v {
			sum[i] += x
		}
	}
	inv := 1.0 / float64(len(vs))
	for i := range sum {
		sum[i] *= inv
	}
	return sum, nil
}

// Norm returns the L2 (Euclidean) norm of u.
func Norm(u Dense) float64 {
	return floats.Norm(u, 2)
}

// Normalize returns u scaled to unit length. The zero vector is returned
// unchanged (a copy).
func Normalize(u Dense) Dense {
	n := Norm(u)
	if n == 0 {
		out := make(Dense, len(u))
		copy(out, u)
		return out
	}
	return Scale(u, 1/n)
}

// Reject returns the component of a orthogonal to b: a − b·(a·b / b·b).
// Used to strip a semantic direction (e.g. gender) from a word vector.
func Reject(a, b Dense) (Dense, error) {
	ab, err := Dot(a, b)
	if err != nil {
		return nil, err
	}
	bb, err := Dot(b, b)
	if err != nil {
		return nil, err
	}
	if bb == 0 {
		out := make(Dense, len(a))
		copy(out, a)
		return out, nil
	}
	proj := Scale(b, ab/bb)
	return Sub(a, proj)
}
