package eqqp

// Test-Bridge (White-Box) for the strategy pair.
//
// Purpose:
//   - Expose the unexported range-space and full-KKT strategies to eqqp_test
//     so tests can force a specific path and read the internal multipliers,
//     without widening the production API (Solve chooses the path itself and
//     never reports y).
//
// Provided Surface:
//   - SolveRangeSpace_TestOnly / SolveFullKKT_TestOnly: thin pass-throughs.

import (
	"gonum.org/v1/gonum/mat"
)

// SolveRangeSpace_TestOnly forwards to the private range-space strategy.
// chol must hold a successful factorization of p.G.
func SolveRangeSpace_TestOnly(p *Standard, chol *mat.Cholesky, opts Options) (x, y *mat.VecDense, err error) {
	return solveRangeSpace(p, chol, opts)
}

// SolveFullKKT_TestOnly forwards to the private full-KKT strategy.
func SolveFullKKT_TestOnly(p *Standard, opts Options) (*mat.VecDense, error) {
	return solveFullKKT(p, opts)
}
