package eqqp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/brandon-northcutt/mathprog/core"
	"github.com/brandon-northcutt/mathprog/eqqp"
)

const tol = 1e-9

// buildSharedBudget constructs: minimize x0² + x1² subject to x0 + x1 = 1.
// In standard form G = 2·I, c = 0, A = [1 1], b = [1]; the optimum is
// x = (0.5, 0.5) with cost 0.5.
func buildSharedBudget(t *testing.T) (*core.Program, []core.Variable) {
	t.Helper()
	p := core.NewProgram()
	x, err := p.NewVariables(2, "x")
	require.NoError(t, err)

	require.NoError(t, p.AddQuadraticCost(
		mat.NewSymDense(2, []float64{2, 0, 0, 2}),
		mat.NewVecDense(2, nil),
		x,
	))
	require.NoError(t, p.AddLinearEqualityConstraint(
		mat.NewDense(1, 2, []float64{1, 1}),
		mat.NewVecDense(1, []float64{1}),
		x,
	))

	return p, x
}

// TestSolve_EndToEnd solves the shared-budget problem and checks solution,
// cost, outcome and solver identity stamped on the program.
func TestSolve_EndToEnd(t *testing.T) {
	p, x := buildSharedBudget(t)

	result, err := eqqp.New(nil).Solve(p)
	require.NoError(t, err)
	assert.Equal(t, core.SolutionFound, result, "well-posed convex QP always succeeds")

	v0, err := p.Value(x[0])
	require.NoError(t, err)
	v1, err := p.Value(x[1])
	require.NoError(t, err)
	assert.InDelta(t, 0.5, v0, tol)
	assert.InDelta(t, 0.5, v1, tol)
	assert.InDelta(t, 0.5, p.OptimalCost(), tol)

	assert.Equal(t, core.SolutionFound, p.Result())
	assert.Equal(t, eqqp.ID(), p.SolverID(), "program records this backend's identity")
}

// TestSolve_DegenerateFallback exercises the full-KKT path: with no cost at
// all (G = 0, not positive definite) and constraints x = (3, 4), the
// fallback must reproduce the unique feasible point at zero cost.
func TestSolve_DegenerateFallback(t *testing.T) {
	p := core.NewProgram()
	x, _ := p.NewVariables(2, "x")

	require.NoError(t, p.AddLinearEqualityConstraint(
		mat.NewDense(2, 2, []float64{1, 0, 0, 1}),
		mat.NewVecDense(2, []float64{3, 4}),
		x,
	))

	result, err := eqqp.New(nil).Solve(p)
	require.NoError(t, err)
	assert.Equal(t, core.SolutionFound, result)

	sol := p.Solution()
	require.Len(t, sol, 2)
	assert.InDelta(t, 3.0, sol[0], tol)
	assert.InDelta(t, 4.0, sol[1], tol)
	assert.InDelta(t, 0.0, p.OptimalCost(), tol)
}

// TestSolve_UnconstrainedPositiveDefinite covers m = 0 on the fast path:
// minimize ½·xᵀGx + cᵀx with G = 2·I, c = (−2, −4) has the stationary point
// x = (1, 2) and cost −5.
func TestSolve_UnconstrainedPositiveDefinite(t *testing.T) {
	p := core.NewProgram()
	x, _ := p.NewVariables(2, "x")

	require.NoError(t, p.AddQuadraticCost(
		mat.NewSymDense(2, []float64{2, 0, 0, 2}),
		mat.NewVecDense(2, []float64{-2, -4}),
		x,
	))

	result, err := eqqp.New(nil).Solve(p)
	require.NoError(t, err)
	assert.Equal(t, core.SolutionFound, result)

	v0, _ := p.Value(x[0])
	v1, _ := p.Value(x[1])
	assert.InDelta(t, 1.0, v0, tol)
	assert.InDelta(t, 2.0, v1, tol)
	assert.InDelta(t, -5.0, p.OptimalCost(), tol)
}

// TestSolve_RedundantConstraintsTolerated duplicates the equality row: the
// stacked A is rank deficient, and the minimum-norm least-squares step must
// absorb the redundancy without changing the optimum.
func TestSolve_RedundantConstraintsTolerated(t *testing.T) {
	p := core.NewProgram()
	x, _ := p.NewVariables(2, "x")

	require.NoError(t, p.AddQuadraticCost(
		mat.NewSymDense(2, []float64{2, 0, 0, 2}),
		mat.NewVecDense(2, nil),
		x,
	))
	row := []float64{1, 1}
	for i := 0; i < 2; i++ {
		require.NoError(t, p.AddLinearEqualityConstraint(
			mat.NewDense(1, 2, row),
			mat.NewVecDense(1, []float64{1}),
			x,
		))
	}

	result, err := eqqp.New(nil).Solve(p)
	require.NoError(t, err)
	assert.Equal(t, core.SolutionFound, result)

	sol := p.Solution()
	assert.InDelta(t, 0.5, sol[0], tol)
	assert.InDelta(t, 0.5, sol[1], tol)
}

// TestSolve_ReportedCostMatchesDefinition recomputes ½·xᵀGx + cᵀx from the
// returned assignment and compares it with the recorded optimal cost.
func TestSolve_ReportedCostMatchesDefinition(t *testing.T) {
	p := core.NewProgram()
	x, _ := p.NewVariables(2, "x")

	g := mat.NewSymDense(2, []float64{2, 0, 0, 4})
	c := mat.NewVecDense(2, []float64{1, -1})
	require.NoError(t, p.AddQuadraticCost(g, c, x))
	require.NoError(t, p.AddLinearEqualityConstraint(
		mat.NewDense(1, 2, []float64{1, -1}),
		mat.NewVecDense(1, []float64{2}),
		x,
	))

	_, err := eqqp.New(nil).Solve(p)
	require.NoError(t, err)

	xv := mat.NewVecDense(2, p.Solution())
	independent := 0.5*mat.Inner(xv, g, xv) + mat.Dot(c, xv)
	assert.InDelta(t, independent, p.OptimalCost(), tol,
		"recorded cost must equal the objective evaluated at x")
}

// TestSolve_Deterministic solves two identically built programs and demands
// bitwise-identical assignments.
func TestSolve_Deterministic(t *testing.T) {
	p1, _ := buildSharedBudget(t)
	p2, _ := buildSharedBudget(t)

	_, err := eqqp.New(nil).Solve(p1)
	require.NoError(t, err)
	_, err = eqqp.New(nil).Solve(p2)
	require.NoError(t, err)

	assert.Equal(t, p1.Solution(), p2.Solution(), "repeated solves are deterministic")
	assert.Equal(t, p1.OptimalCost(), p2.OptimalCost())
}

// TestStrategies_AgreeOnPositiveDefinite forces both paths on the same
// positive definite problem through the white-box bridge; the optima must
// coincide within numerical tolerance.
func TestStrategies_AgreeOnPositiveDefinite(t *testing.T) {
	std := &eqqp.Standard{
		G: mat.NewSymDense(2, []float64{4, 1, 1, 3}),
		C: mat.NewVecDense(2, []float64{1, 2}),
		A: mat.NewDense(1, 2, []float64{1, 1}),
		B: mat.NewVecDense(1, []float64{1}),
	}

	var chol mat.Cholesky
	require.True(t, chol.Factorize(std.G), "test Hessian must be positive definite")

	fast, _, err := eqqp.SolveRangeSpace_TestOnly(std, &chol, eqqp.DefaultOptions())
	require.NoError(t, err)
	slow, err := eqqp.SolveFullKKT_TestOnly(std, eqqp.DefaultOptions())
	require.NoError(t, err)

	assert.InDelta(t, fast.AtVec(0), slow.AtVec(0), 1e-8)
	assert.InDelta(t, fast.AtVec(1), slow.AtVec(1), 1e-8)
}

// TestRangeSpace_KKTResiduals checks first-order optimality on the fast
// path: primal feasibility A·x = b and stationarity G·x + c − Aᵀy = 0 for
// the recovered multipliers.
func TestRangeSpace_KKTResiduals(t *testing.T) {
	std := &eqqp.Standard{
		G: mat.NewSymDense(2, []float64{4, 1, 1, 3}),
		C: mat.NewVecDense(2, []float64{1, 2}),
		A: mat.NewDense(1, 2, []float64{1, 1}),
		B: mat.NewVecDense(1, []float64{1}),
	}

	var chol mat.Cholesky
	require.True(t, chol.Factorize(std.G))

	x, y, err := eqqp.SolveRangeSpace_TestOnly(std, &chol, eqqp.DefaultOptions())
	require.NoError(t, err)
	require.NotNil(t, y, "constrained problems recover multipliers")

	// Primal feasibility: A·x − b ≈ 0.
	var ax mat.VecDense
	ax.MulVec(std.A, x)
	ax.SubVec(&ax, std.B)
	assert.InDelta(t, 0.0, mat.Norm(&ax, 2), tol, "A·x = b within tolerance")

	// Stationarity: G·x + c − Aᵀy ≈ 0.
	var grad mat.VecDense
	grad.MulVec(std.G, x)
	grad.AddVec(&grad, std.C)
	var aty mat.VecDense
	aty.MulVec(std.A.T(), y)
	grad.SubVec(&grad, &aty)
	assert.InDelta(t, 0.0, mat.Norm(&grad, 2), tol, "Lagrangian gradient vanishes")
}

// TestSolve_PanicsOnUnsupportedConstraints verifies the precondition assert:
// inequality or box terms indicate caller misuse and must panic, not error.
func TestSolve_PanicsOnUnsupportedConstraints(t *testing.T) {
	p := core.NewProgram()
	x, _ := p.NewVariables(2, "x")
	require.NoError(t, p.AddLinearConstraint(
		mat.NewDense(1, 2, []float64{1, 0}),
		mat.NewVecDense(1, []float64{0}),
		mat.NewVecDense(1, []float64{1}),
		x,
	))

	assert.Panics(t, func() { _, _ = eqqp.New(nil).Solve(p) },
		"linear inequality terms are outside the caller contract")

	q := core.NewProgram()
	y, _ := q.NewVariables(1, "y")
	require.NoError(t, q.AddBoundingBoxConstraint(
		mat.NewVecDense(1, []float64{0}),
		mat.NewVecDense(1, []float64{1}),
		y,
	))

	assert.Panics(t, func() { _, _ = eqqp.New(nil).Solve(q) },
		"bounding-box terms are outside the caller contract")
}

// TestSolve_InputValidation covers the two error sentinels: empty programs
// and a negative rank tolerance.
func TestSolve_InputValidation(t *testing.T) {
	empty := core.NewProgram()
	result, err := eqqp.New(nil).Solve(empty)
	assert.ErrorIs(t, err, eqqp.ErrEmptyProgram)
	assert.Equal(t, core.SolverError, result)

	p, _ := buildSharedBudget(t)
	bad := eqqp.Options{RankTolerance: -1}
	result, err = eqqp.New(&bad).Solve(p)
	assert.ErrorIs(t, err, eqqp.ErrBadTolerance)
	assert.Equal(t, core.SolverError, result)
}

// TestSolver_Identity verifies the identity contract: stable token across
// calls and instances, and availability.
func TestSolver_Identity(t *testing.T) {
	s1 := eqqp.New(nil)
	s2 := eqqp.New(nil)

	assert.Equal(t, s1.ID(), s2.ID(), "identity is process-wide, not per-instance")
	assert.Equal(t, eqqp.ID(), s1.ID())
	assert.Equal(t, "equality-constrained-qp", s1.ID().Name())
	assert.True(t, s1.Available())
}
