package wordspace

import (
	"strings"

	"github.com/mkrause/wordspace/internal/constants"
	"github.com/mkrause/wordspace/internal/similarity"
	"github.com/mkrause/wordspace/internal/vecalg"
	"github.com/mkrause/wordspace/internal/wsapi"
)

// Operator names a vector composition combinator (spec.md §4.7).
type Operator string

const (
	Addition       Operator = "ADDITION"
	Subtraction    Operator = "SUBTRACTION"
	Multiplication Operator = "MULTIPLICATION"
	Extrema        Operator = "EXTREMA"
	Combined       Operator = "COMBINED"
	Dilation       Operator = "DILATION"
)

// CombinedWeights are the (a,b,c) coefficients for the COMBINED operator;
// the zero value selects the spec's documented defaults.
type CombinedWeights struct {
	A, B, C float64
	set     bool
}

func NewCombinedWeights(a, b, c float64) CombinedWeights {
	return CombinedWeights{A: a, B: b, C: c, set: true}
}

func (w CombinedWeights) resolved() (a, b, c float64) {
	if !w.set {
		return constants.CombinedDefaultA, constants.CombinedDefaultB, constants.CombinedDefaultC
	}
	return w.A, w.B, w.C
}

// Dilation lambda; zero selects the documented default.
type DilationParam struct {
	Lambda float64
	set    bool
}

func NewDilationParam(lambda float64) DilationParam { return DilationParam{Lambda: lambda, set: true} }

func (p DilationParam) resolved() float64 {
	if !p.set {
		return constants.DilationDefaultLambda
	}
	return p.Lambda
}

// ComposeDense applies op to u and v. combined/dilation use their documented
// defaults unless overridden via opts.
func ComposeDense(op Operator, u, v vecalg.Dense, weights CombinedWeights, dilation DilationParam) (vecalg.Dense, error) {
	switch op {
	case Subtraction:
		return vecalg.Sub(u, v)
	case Multiplication:
		return vecalg.Mul(u, v)
	case Extrema:
		return vecalg.Extrema(u, v)
	case Combined:
		a, b, c := weights.resolved()
		uv, err := vecalg.Mul(u, v)
		if err != nil {
			return nil, err
		}
		sum := vecalg.Scale(u, a)
		bv := vecalg.Scale(v, b)
		cuv := vecalg.Scale(uv, c)
		out, err := vecalg.Add(sum, bv)
		if err != nil {
			return nil, err
		}
		return vecalg.Add(out, cuv)
	case Dilation:
		lambda := dilation.resolved()
		uu, err := vecalg.Dot(u, u)
		if err != nil {
			return nil, err
		}
		uvDot, err := vecalg.Dot(u, v)
		if err != nil {
			return nil, err
		}
		term1 := vecalg.Scale(v, uu)
		term2 := vecalg.Scale(u, (lambda-1)*uvDot)
		return vecalg.Add(term1, term2)
	default: // Addition
		return vecalg.Add(u, v)
	}
}

// ComposeSparse is the sparse-representation counterpart of ComposeDense.
func ComposeSparse(op Operator, u, v vecalg.Sparse, weights CombinedWeights, dilation DilationParam) vecalg.Sparse {
	switch op {
	case Subtraction:
		return vecalg.SubSparse(u, v)
	case Multiplication:
		return vecalg.MulSparse(u, v)
	case Extrema:
		return vecalg.ExtremaSparse(u, v)
	case Combined:
		a, b, c := weights.resolved()
		uv := vecalg.MulSparse(u, v)
		sum := vecalg.ScaleSparse(copySparse(u), a)
		bv := vecalg.ScaleSparse(copySparse(v), b)
		cuv := vecalg.ScaleSparse(uv, c)
		return vecalg.AddSparse(vecalg.AddSparse(sum, bv), cuv)
	case Dilation:
		lambda := dilation.resolved()
		uu := vecalg.DotSparse(u, u)
		uvDot := vecalg.DotSparse(u, v)
		term1 := vecalg.ScaleSparse(copySparse(v), uu)
		term2 := vecalg.ScaleSparse(copySparse(u), (lambda-1)*uvDot)
		return vecalg.AddSparse(term1, term2)
	default: // Addition
		return vecalg.AddSparse(u, v)
	}
}

func copySparse(s vecalg.Sparse) vecalg.Sparse {
	out := make(vecalg.Sparse, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// ComposeListDense folds at least two dense vectors left using op. A nil
// element after the first two is skipped. Returns (nil, false) if fewer
// than two vectors are supplied or either of the first two is nil.
func ComposeListDense(op Operator, vs []vecalg.Dense, weights CombinedWeights, dilation DilationParam) (vecalg.Dense, bool, error) {
	if len(vs) < 2 || vs[0] == nil || vs[1] == nil {
		return nil, false, nil
	}
	acc, err := ComposeDense(op, vs[0], vs[1], weights, dilation)
	if err != nil {
		return nil, false, err
	}
	for _, v := range vs[2:] {
		if v == nil {
			continue
		}
		acc, err = ComposeDense(op, acc, v, weights, dilation)
		if err != nil {
			return nil, false, err
		}
	}
	return acc, true, nil
}

// ComposeListSparse is the sparse counterpart of ComposeListDense.
func ComposeListSparse(op Operator, vs []vecalg.Sparse, weights CombinedWeights, dilation DilationParam) (vecalg.Sparse, bool) {
	if len(vs) < 2 || vs[0] == nil || vs[1] == nil {
		return nil, false
	}
	acc := ComposeSparse(op, vs[0], vs[1], weights, dilation)
	for _, v := range vs[2:] {
		if v == nil {
			continue
		}
		acc = ComposeSparse(op, acc, v, weights, dilation)
	}
	return acc, true
}

// TextCompositionSimilarity tokenizes text1 and text2 on whitespace, looks
// up each token's vector in ws, folds each side with op, then scores the
// two folds with m (spec.md §4.7).
func TextCompositionSimilarity(ws wsapi.WordSpace, text1, text2 string, op Operator, m similarity.Measure) (float64, bool) {
	toks1 := strings.Fields(text1)
	toks2 := strings.Fields(text2)
	if len(toks1) < 2 || len(toks2) < 2 {
		return 0, false
	}

	v1, ok1 := foldTokens(ws, toks1, op)
	v2, ok2 := foldTokens(ws, toks2, op)
	if !ok1 || !ok2 {
		return 0, false
	}

	switch {
	case v1.Dense != nil && v2.Dense != nil:
		s, err := similarity.Dense(m, v1.Dense, v2.Dense)
		if err != nil {
			return 0, false
		}
		return s, true
	case v1.Sparse != nil && v2.Sparse != nil:
		return similarity.Sparse(m, v1.Sparse, v2.Sparse), true
	default:
		return 0, false
	}
}

type foldedVec struct {
	Dense  vecalg.Dense
	Sparse vecalg.Sparse
}

func foldTokens(ws wsapi.WordSpace, tokens []string, op Operator) (foldedVec, bool) {
	var dense []vecalg.Dense
	var sparse []vecalg.Sparse
	allDense, allSparse := true, true
	for _, tok := range tokens {
		e, ok := ws.Vector(tok)
		if !ok {
			return foldedVec{}, false
		}
		if e.Dense != nil {
			dense = append(dense, e.Dense)
			allSparse = false
		}
		if e.Sparse != nil {
			sparse = append(sparse, e.Sparse)
			allDense = false
		}
	}
	if allDense && len(dense) >= 2 {
		v, ok, err := ComposeListDense(op, dense, CombinedWeights{}, DilationParam{})
		if err != nil || !ok {
			return foldedVec{}, false
		}
		return foldedVec{Dense: v}, true
	}
	if allSparse && len(sparse) >= 2 {
		v, ok := ComposeListSparse(op, sparse, CombinedWeights{}, DilationParam{})
		if !ok {
			return foldedVec{}, false
		}
		return foldedVec{Sparse: v}, true
	}
	return foldedVec{}, false
}

// SolveAnalogy computes offset = a2 - b2 and returns the nearest neighbors
// of b1+offset by cosine, up to constants.AnalogyMaxResults results. A
// missing input word yields (nil, false) (spec.md §4.7).
func SolveAnalogy(ws wsapi.WordSpace, b1, a2, b2 string) ([]wsapi.Neighbor, bool) {
	target, ok := analogyTarget(ws, b1, a2, b2)
	if !ok {
		return nil, false
	}
	return ExhaustiveNN(ws, target, constants.AnalogyMaxResults, similarity.Cosine, exclude(b1, a2, b2)), true
}

// SolveAnalogyApprox is SolveAnalogy but walks the neighborhood graph
// instead of scanning the whole vocabulary.
func SolveAnalogyApprox(ws wsapi.WordSpace, b1, a2, b2 string, rng RandSource) ([]wsapi.Neighbor, bool, error) {
	target, ok := analogyTarget(ws, b1, a2, b2)
	if !ok {
		return nil, false, nil
	}
	ns, err := GraphSearchNN(ws, target, rng)
	return ns, true, err
}

// SolveAnalogyAverageOffset averages the (a,b) offsets across several pairs
// before adding the result to b1.
func SolveAnalogyAverageOffset(ws wsapi.WordSpace, b1 string, pairs [][2]string) ([]wsapi.Neighbor, bool) {
	eb1, ok := ws.Vector(b1)
	if !ok {
		return nil, false
	}

	if eb1.Dense != nil {
		offsets := make([]vecalg.Dense, 0, len(pairs))
		for _, p := range pairs {
			ea, okA := ws.Vector(p[0])
			eb, okB := ws.Vector(p[1])
			if !okA || !okB {
				return nil, false
			}
			off, err := vecalg.Sub(ea.Dense, eb.Dense)
			if err != nil {
				return nil, false
			}
			offsets = append(offsets, off)
		}
		avgOffset, err := vecalg.Average(offsets)
		if err != nil {
			return nil, false
		}
		target, err := vecalg.Add(eb1.Dense, avgOffset)
		if err != nil {
			return nil, false
		}
		excl := map[string]bool{b1: true}
		for _, p := range pairs {
			excl[p[0]] = true
			excl[p[1]] = true
		}
		return ExhaustiveNN(ws, target, constants.AnalogyMaxResults, similarity.Cosine, excl), true
	}

	offsets := make([]vecalg.Sparse, 0, len(pairs))
	for _, p := range pairs {
		ea, okA := ws.Vector(p[0])
		eb, okB := ws.Vector(p[1])
		if !okA || !okB {
			return nil, false
		}
		offsets = append(offsets, vecalg.SubSparse(ea.Sparse, eb.Sparse))
	}
	avgOffset := vecalg.AverageSparse(offsets)
	target := vecalg.AddSparse(eb1.Sparse, avgOffset)
	excl := map[string]bool{b1: true}
	for _, p := range pairs {
		excl[p[0]] = true
		excl[p[1]] = true
	}
	return ExhaustiveNNSparse(ws, target, constants.AnalogyMaxResults, similarity.Cosine, excl), true
}

func analogyTarget(ws wsapi.WordSpace, b1, a2, b2 string) (vecalg.Dense, bool) {
	eb1, ok1 := ws.Vector(b1)
	ea2, ok2 := ws.Vector(a2)
	eb2, ok3 := ws.Vector(b2)
	if !ok1 || !ok2 || !ok3 || eb1.Dense == nil || ea2.Dense == nil || eb2.Dense == nil {
		return nil, false
	}
	offset, err := vecalg.Sub(ea2.Dense, eb2.Dense)
	if err != nil {
		return nil, false
	}
	target, err := vecalg.Add(eb1.Dense, offset)
	if err != nil {
		return nil, false
	}
	return target, true
}

func exclude(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}
