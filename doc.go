// Package mathprog is a small mathematical-programming toolkit for
// building convex optimization problems over named decision variables
// and solving them with interchangeable solver backends.
//
// 🚀 What is mathprog?
//
//	A pure-Go library (dense linear algebra via gonum) that brings together:
//		• Program construction: decision variables, quadratic costs,
//		  linear equality / inequality / bounding-box constraints
//		• A direct equality-constrained QP solver (range-space fast path,
//		  full-KKT fallback)
//		• Stable solver identity tokens for dispatch and reporting
//
// ✨ Why choose mathprog?
//
//   - Minimal API – add terms over variable subsets, call Solve, read values
//   - Robust numerics – Cholesky fast path, SVD minimum-norm fallback
//   - No failure surface for well-posed convex problems – degeneracy is
//     absorbed by least-squares solves, not surfaced as errors
//
// Everything is organized under three subpackages:
//
//	core/          — Program, Variable, term bindings, SolverID, Solver contract
//	eqqp/          — equality-constrained QP: dense assembly + KKT solve
//	interiorpoint/ — identity stub reserving the ID of an external NLP backend
//
// Quick sketch:
//
//	p := core.NewProgram()
//	x, _ := p.NewVariables(2, "x")
//	p.AddQuadraticCost(Q, b, x)                  // ½ xᵀQx + bᵀx
//	p.AddLinearEqualityConstraint(A, rhs, x)     // A·x = rhs
//	eqqp.New(nil).Solve(p)
//	v, _ := p.Value(x[0])
//
// Dive into the per-package doc.go files for algorithm outlines and
// complexity notes.
//
//	go get github.com/brandon-northcutt/mathprog
package mathprog
