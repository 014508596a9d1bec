// Package eqqp solves equality-constrained convex quadratic programs
//
//	minimize ½·xᵀGx + cᵀx  subject to  A·x = b
//
// by direct matrix decomposition — a single-shot linear-algebra solve, not an
// iterative QP method.
//
// Algorithm Outline:
//  1. Assemble: scatter the program's sparse, variable-indexed quadratic cost
//     terms additively into a dense n×n Hessian G and n-vector c; stack its
//     equality terms row-wise into a dense m×n matrix A and m-vector b.
//  2. Test G for positive definiteness with a Cholesky factorization.
//  3. Range-space path (G positive definite):
//     M = G⁻¹Aᵀ via Cholesky solves, Schur complement S = A·M,
//     multipliers y from the least-squares solve of S·y = Mᵀc + b,
//     then x from G·x = Aᵀy − c.
//  4. Full-KKT fallback (G not positive definite): minimum-norm SVD solve of
//     the augmented (n+m)×(n+m) system
//     ⎡ G  -Aᵀ ⎤ ⎡x⎤   ⎡-c⎤
//     ⎣ A   0  ⎦ ⎣y⎦ = ⎣ b⎦
//  5. Either way, optimal cost = ½·xᵀGx + cᵀx at the computed x.
//
// The path choice is a pure function of G's positive definiteness; there is
// no retry between the two. Singular or rank-deficient constraint systems are
// absorbed by the least-squares solves, which return a minimum-norm solution
// instead of failing — a well-posed convex program always reports
// core.SolutionFound.
//
// Complexity:
//
//	Range-space: one n×n Cholesky plus an m×m least-squares solve.
//	Full KKT:    one (n+m)×(n+m) SVD — strictly more general, worse constants.
//
// Preconditions (asserted, not recovered): the program contains only
// quadratic costs and linear equality constraints. Presence of linear
// inequality or bounding-box terms is caller misuse and panics.
//
// See Nocedal & Wright, Numerical Optimization, ch. 16 (Quadratic
// Programming) for the underlying theory.
package eqqp
