// Package eqqp: the KKT solver and its strategy pair.
package eqqp

import (
	"errors"
	"fmt"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/brandon-northcutt/mathprog/core"
)

// Sentinel errors for solver misuse. A well-posed convex program never
// produces an error: numerical degeneracy is absorbed by the least-squares
// solves, not reported.
var (
	// ErrEmptyProgram indicates a program with no decision variables.
	ErrEmptyProgram = errors.New("eqqp: program has no decision variables")

	// ErrBadTolerance indicates a negative Options.RankTolerance.
	ErrBadTolerance = errors.New("eqqp: RankTolerance must be non-negative")

	// ErrFactorization indicates that an SVD failed to converge. Not expected
	// for finite input data.
	ErrFactorization = errors.New("eqqp: singular value decomposition failed")
)

// solverName is the stable identity reported for dispatch and diagnostics.
const solverName = "equality-constrained-qp"

// solverID constructs the identity token once; every call to ID returns the
// same immutable value, safe for concurrent reads across parallel solves.
var solverID = sync.OnceValue(func() core.SolverID {
	return core.NewSolverID(solverName)
})

// ID returns the solver's stable identity token.
func ID() core.SolverID { return solverID() }

// Solver is the equality-constrained QP backend. The zero value is not
// usable; construct with New.
type Solver struct {
	opts Options
}

// Solver satisfies the shared backend contract.
var _ core.Solver = (*Solver)(nil)

// New returns a Solver with the given options, or DefaultOptions when opts
// is nil.
func New(opts *Options) *Solver {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	return &Solver{opts: o}
}

// ID implements core.Solver.
func (s *Solver) ID() core.SolverID { return ID() }

// Available implements core.Solver; this backend is always built in.
func (s *Solver) Available() bool { return true }

// Solve assembles prog into dense standard form, picks a strategy by testing
// the Hessian for positive definiteness, computes the optimal point, and
// writes x, the optimal cost ½·xᵀGx + cᵀx, and this solver's identity back
// into prog.
//
// Panics when prog contains linear inequality or bounding-box terms: the
// caller contract admits only quadratic costs and linear equality
// constraints, and a violation is programmer error, not a runtime condition.
func (s *Solver) Solve(prog *core.Program) (core.SolutionResult, error) {
	assertSupportedTerms(prog)

	if s.opts.RankTolerance < 0 {
		return core.SolverError, ErrBadTolerance
	}
	if prog.NumVariables() == 0 {
		return core.SolverError, ErrEmptyProgram
	}

	p := Assemble(prog)

	// Positive definiteness decides the strategy; the test result is final,
	// with no retry between the two paths.
	var (
		x    *mat.VecDense
		chol mat.Cholesky
		err  error
	)
	if chol.Factorize(p.G) {
		x, _, err = solveRangeSpace(p, &chol, s.opts)
		if err != nil {
			return core.SolverError, fmt.Errorf("eqqp: range-space solve: %w", err)
		}
	} else {
		x, err = solveFullKKT(p, s.opts)
		if err != nil {
			return core.SolverError, fmt.Errorf("eqqp: full KKT solve: %w", err)
		}
	}

	cost := 0.5*mat.Inner(x, p.G, x) + mat.Dot(p.C, x)

	if err := prog.SetSolution(x); err != nil {
		return core.SolverError, err
	}
	prog.SetOptimalCost(cost)
	prog.SetSolverResult(ID(), core.SolutionFound)

	return core.SolutionFound, nil
}

// assertSupportedTerms enforces the caller contract: only quadratic costs
// and linear equality constraints may be present.
func assertSupportedTerms(prog *core.Program) {
	if len(prog.LinearConstraints()) > 0 {
		panic("eqqp: program contains linear inequality constraints")
	}
	if len(prog.BoundingBoxConstraints()) > 0 {
		panic("eqqp: program contains bounding-box constraints")
	}
}

// solveRangeSpace is the fast path, valid only for positive definite G
// (chol holds its factorization).
//
// It avoids forming the full (n+m)×(n+m) system:
//
//	M = G⁻¹Aᵀ        (Cholesky solves, never an explicit inverse)
//	S = A·M          (m×m Schur complement, symmetric PSD)
//	S·y = Mᵀc + b    (minimum-norm least squares — tolerates redundant rows)
//	G·x = Aᵀy − c    (Cholesky solve reusing the factorization)
//
// The multipliers y are returned for diagnostics but not exposed through the
// Program interface.
func solveRangeSpace(p *Standard, chol *mat.Cholesky, opts Options) (x, y *mat.VecDense, err error) {
	n, m := p.Dims()
	x = mat.NewVecDense(n, nil)

	if m == 0 {
		// Unconstrained: x = −G⁻¹c.
		var negC mat.VecDense
		negC.ScaleVec(-1, p.C)
		if err = ignoreConditioning(chol.SolveVecTo(x, &negC)); err != nil {
			return nil, nil, err
		}

		return x, nil, nil
	}

	// M = G⁻¹Aᵀ (n×m).
	var aiG mat.Dense
	if err = ignoreConditioning(chol.SolveTo(&aiG, p.A.T())); err != nil {
		return nil, nil, err
	}

	// S = A·M.
	var schur mat.Dense
	schur.Mul(p.A, &aiG)

	// S·y = Mᵀc + b.
	rhs := mat.NewVecDense(m, nil)
	rhs.MulVec(aiG.T(), p.C)
	rhs.AddVec(rhs, p.B)
	y, err = lsqMinNorm(&schur, rhs, opts.RankTolerance)
	if err != nil {
		return nil, nil, err
	}

	// G·x = Aᵀy − c.
	grad := mat.NewVecDense(n, nil)
	grad.MulVec(p.A.T(), y)
	grad.SubVec(grad, p.C)
	if err = ignoreConditioning(chol.SolveVecTo(x, grad)); err != nil {
		return nil, nil, err
	}

	return x, y, nil
}

// solveFullKKT is the universal fallback for Hessians that are not positive
// definite. It forms the augmented system
//
//	⎡ G  -Aᵀ ⎤ ⎡x⎤   ⎡-c⎤
//	⎣ A   0  ⎦ ⎣y⎦ = ⎣ b⎦
//
// and solves it by minimum-norm SVD least squares, since the augmented matrix
// may itself be singular. x is the first n entries of the solution.
func solveFullKKT(p *Standard, opts Options) (*mat.VecDense, error) {
	n, m := p.Dims()

	kkt := mat.NewDense(n+m, n+m, nil)
	kkt.Slice(0, n, 0, n).(*mat.Dense).Copy(p.G)
	if m > 0 {
		kkt.Slice(n, n+m, 0, n).(*mat.Dense).Copy(p.A)
		kkt.Slice(0, n, n, n+m).(*mat.Dense).Scale(-1, p.A.T())
	}

	rhs := mat.NewVecDense(n+m, nil)
	for i := 0; i < n; i++ {
		rhs.SetVec(i, -p.C.AtVec(i))
	}
	for i := 0; i < m; i++ {
		rhs.SetVec(n+i, p.B.AtVec(i))
	}

	sol, err := lsqMinNorm(kkt, rhs, opts.RankTolerance)
	if err != nil {
		return nil, err
	}

	return mat.VecDenseCopyOf(sol.SliceVec(0, n)), nil
}

// lsqMinNorm returns the minimum-norm least-squares solution of a·x = b,
// treating singular values below tol·σmax as zero. Rank deficiency yields a
// best-fit solution rather than an error.
func lsqMinNorm(a mat.Matrix, b *mat.VecDense, tol float64) (*mat.VecDense, error) {
	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDThin) {
		return nil, ErrFactorization
	}

	_, cols := a.Dims()
	x := mat.NewVecDense(cols, nil)

	rank := svd.Rank(tol)
	if rank == 0 {
		// All-zero operator: the minimum-norm solution is the origin.
		return x, nil
	}
	svd.SolveVecTo(x, b, rank)

	return x, nil
}

// ignoreConditioning drops mat.Condition warnings: gonum still produces a
// usable result for ill-conditioned systems, and degeneracy is handled by
// the least-squares policy rather than surfaced to the caller.
func ignoreConditioning(err error) error {
	var cond mat.Condition
	if errors.As(err, &cond) {
		return nil
	}

	return err
}
