// Package eqqp: assembled problem form and solver options.
package eqqp

import "gonum.org/v1/gonum/mat"

// defaultRankTolerance is the rcond passed to SVD rank detection: singular
// values below defaultRankTolerance·σmax are treated as zero.
const defaultRankTolerance = 1e-12

// Standard is the dense assembled form of an equality-constrained QP:
//
//	minimize ½·xᵀGx + cᵀx  subject to  A·x = b
//
// over the full n-variable index space. A Standard is built fresh by Assemble
// for each solve and never mutated afterwards.
type Standard struct {
	// G is the n×n Hessian, the sum of all scattered quadratic term
	// contributions. It need not be positive definite.
	G *mat.SymDense

	// C is the n-vector of accumulated linear cost coefficients.
	C *mat.VecDense

	// A stacks the equality terms row-wise (m×n). Nil when m == 0.
	A *mat.Dense

	// B is the m-vector of stacked right-hand sides. Nil when m == 0.
	B *mat.VecDense
}

// Dims returns the variable count n and constraint row count m.
func (p *Standard) Dims() (n, m int) {
	n = p.C.Len()
	if p.B != nil {
		m = p.B.Len()
	}

	return n, m
}

// Options configures the solver's numerical policy.
//
// Fields:
//   - RankTolerance: relative cutoff for SVD rank detection in the
//     least-squares solves. Must be non-negative; zero keeps every nonzero
//     singular value.
type Options struct {
	RankTolerance float64
}

// DefaultOptions returns the recommended configuration.
func DefaultOptions() Options {
	return Options{RankTolerance: defaultRankTolerance}
}
