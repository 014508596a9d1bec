// Package core: the Program container.
//
// Program owns the decision-variable index space, the ordered term
// collections, and the solution store that solvers write back into.
package core

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Program is a mathematical program under construction.
//
// Terms are validated when added and kept in insertion order; solvers rely on
// both properties. A Program must not be mutated or solved concurrently with
// itself, but independent Programs may be solved in parallel.
type Program struct {
	vars []Variable

	quadCosts []QuadraticCostBinding
	eqCons    []LinearEqualityBinding
	linCons   []LinearBinding
	boxCons   []BoundingBoxBinding

	solution    []float64
	optimalCost float64
	solverID    SolverID
	result      SolutionResult
	solved      bool
}

// NewProgram returns an empty Program.
func NewProgram() *Program { return &Program{} }

// NewVariable appends one decision variable with the given name and returns
// its handle. The handle's Index is the next free global index.
func (p *Program) NewVariable(name string) Variable {
	v := Variable{id: len(p.vars), name: name}
	p.vars = append(p.vars, v)

	return v
}

// NewVariables appends n decision variables named prefix(0) … prefix(n-1)
// and returns their handles in index order.
// Returns ErrInvalidCount when n <= 0.
func (p *Program) NewVariables(n int, prefix string) ([]Variable, error) {
	if n <= 0 {
		return nil, ErrInvalidCount
	}

	vs := make([]Variable, n)
	for i := 0; i < n; i++ {
		vs[i] = p.NewVariable(fmt.Sprintf("%s(%d)", prefix, i))
	}

	return vs, nil
}

// NumVariables returns the size of the decision-variable index space.
func (p *Program) NumVariables() int { return len(p.vars) }

// VariableIndex returns v's position in the global index space, or
// ErrUnknownVariable when v does not belong to this Program.
func (p *Program) VariableIndex(v Variable) (int, error) {
	if err := p.checkVars([]Variable{v}); err != nil {
		return 0, err
	}

	return v.id, nil
}

// checkVars verifies that a binding's variable subset is non-empty and that
// every handle belongs to this Program.
func (p *Program) checkVars(vars []Variable) error {
	if len(vars) == 0 {
		return ErrEmptyBinding
	}
	for _, v := range vars {
		if v.id < 0 || v.id >= len(p.vars) || p.vars[v.id] != v {
			return fmt.Errorf("%w: %q", ErrUnknownVariable, v.name)
		}
	}

	return nil
}

// AddQuadraticCost appends the cost term ½·zᵀQz + bᵀz over the subset z
// given by vars. Q must be k×k and b length k, k = len(vars).
// Contributions over overlapping subsets are summed by solvers, never
// overwritten.
func (p *Program) AddQuadraticCost(q *mat.SymDense, b *mat.VecDense, vars []Variable) error {
	if q == nil || b == nil {
		return ErrNilTerm
	}
	if err := p.checkVars(vars); err != nil {
		return err
	}
	if q.SymmetricDim() != len(vars) || b.Len() != len(vars) {
		return fmt.Errorf("%w: quadratic cost %d×%d, b %d over %d vars",
			ErrDimensionMismatch, q.SymmetricDim(), q.SymmetricDim(), b.Len(), len(vars))
	}

	p.quadCosts = append(p.quadCosts, QuadraticCostBinding{
		Cost: QuadraticCost{Q: q, B: b},
		Vars: append([]Variable(nil), vars...),
	})

	return nil
}

// AddLinearEqualityConstraint appends the constraint A·z = rhs over the
// subset z given by vars. A must be r×k and rhs length r, k = len(vars).
// Rows stack after previously added equality terms, in insertion order.
func (p *Program) AddLinearEqualityConstraint(a *mat.Dense, rhs *mat.VecDense, vars []Variable) error {
	if a == nil || rhs == nil {
		return ErrNilTerm
	}
	if err := p.checkVars(vars); err != nil {
		return err
	}
	r, k := a.Dims()
	if k != len(vars) || rhs.Len() != r {
		return fmt.Errorf("%w: equality term %d×%d, rhs %d over %d vars",
			ErrDimensionMismatch, r, k, rhs.Len(), len(vars))
	}

	p.eqCons = append(p.eqCons, LinearEqualityBinding{
		Constraint: LinearEqualityConstraint{A: a, Rhs: rhs},
		Vars:       append([]Variable(nil), vars...),
	})

	return nil
}

// AddLinearConstraint appends lower ≤ A·z ≤ upper over the subset z.
// The equality-constrained QP backend does not accept programs containing
// such terms; they exist for backends that do.
func (p *Program) AddLinearConstraint(a *mat.Dense, lower, upper *mat.VecDense, vars []Variable) error {
	if a == nil || lower == nil || upper == nil {
		return ErrNilTerm
	}
	if err := p.checkVars(vars); err != nil {
		return err
	}
	r, k := a.Dims()
	if k != len(vars) || lower.Len() != r || upper.Len() != r {
		return fmt.Errorf("%w: linear term %d×%d, bounds %d/%d over %d vars",
			ErrDimensionMismatch, r, k, lower.Len(), upper.Len(), len(vars))
	}

	p.linCons = append(p.linCons, LinearBinding{
		Constraint: LinearConstraint{A: a, Lower: lower, Upper: upper},
		Vars:       append([]Variable(nil), vars...),
	})

	return nil
}

// AddBoundingBoxConstraint appends lower ≤ z ≤ upper element-wise over the
// subset z. Stored for bound-capable backends only.
func (p *Program) AddBoundingBoxConstraint(lower, upper *mat.VecDense, vars []Variable) error {
	if lower == nil || upper == nil {
		return ErrNilTerm
	}
	if err := p.checkVars(vars); err != nil {
		return err
	}
	if lower.Len() != len(vars) || upper.Len() != len(vars) {
		return fmt.Errorf("%w: box bounds %d/%d over %d vars",
			ErrDimensionMismatch, lower.Len(), upper.Len(), len(vars))
	}

	p.boxCons = append(p.boxCons, BoundingBoxBinding{
		Constraint: BoundingBoxConstraint{Lower: lower, Upper: upper},
		Vars:       append([]Variable(nil), vars...),
	})

	return nil
}

// QuadraticCosts returns the quadratic cost bindings in insertion order.
// The returned slice is a copy; the bindings share the caller's matrices.
func (p *Program) QuadraticCosts() []QuadraticCostBinding {
	return append([]QuadraticCostBinding(nil), p.quadCosts...)
}

// LinearEqualityConstraints returns the equality bindings in insertion order.
func (p *Program) LinearEqualityConstraints() []LinearEqualityBinding {
	return append([]LinearEqualityBinding(nil), p.eqCons...)
}

// LinearConstraints returns the two-sided linear bindings in insertion order.
func (p *Program) LinearConstraints() []LinearBinding {
	return append([]LinearBinding(nil), p.linCons...)
}

// BoundingBoxConstraints returns the box bindings in insertion order.
func (p *Program) BoundingBoxConstraints() []BoundingBoxBinding {
	return append([]BoundingBoxBinding(nil), p.boxCons...)
}

// SetSolution writes the decision-variable assignment back into the Program.
// x must have length NumVariables. Called by solver backends.
func (p *Program) SetSolution(x *mat.VecDense) error {
	if x == nil {
		return ErrNilTerm
	}
	if x.Len() != len(p.vars) {
		return fmt.Errorf("%w: solution length %d for %d vars",
			ErrDimensionMismatch, x.Len(), len(p.vars))
	}

	p.solution = make([]float64, x.Len())
	for i := range p.solution {
		p.solution[i] = x.AtVec(i)
	}
	p.solved = true

	return nil
}

// SetOptimalCost records the objective value at the solution.
func (p *Program) SetOptimalCost(cost float64) { p.optimalCost = cost }

// SetSolverResult records which backend produced the solution and its outcome.
func (p *Program) SetSolverResult(id SolverID, r SolutionResult) {
	p.solverID = id
	p.result = r
}

// Value returns the solved value of v.
// Returns ErrNotSolved before any solve, ErrUnknownVariable for foreign handles.
func (p *Program) Value(v Variable) (float64, error) {
	if err := p.checkVars([]Variable{v}); err != nil {
		return 0, err
	}
	if !p.solved {
		return 0, ErrNotSolved
	}

	return p.solution[v.id], nil
}

// Solution returns a copy of the full assignment in index order,
// or nil before any solve.
func (p *Program) Solution() []float64 {
	if !p.solved {
		return nil
	}

	return append([]float64(nil), p.solution...)
}

// OptimalCost returns the recorded objective value (0 before any solve).
func (p *Program) OptimalCost() float64 { return p.optimalCost }

// SolverID returns the identity of the backend that last wrote a result.
func (p *Program) SolverID() SolverID { return p.solverID }

// Result returns the outcome recorded by the last solve.
func (p *Program) Result() SolutionResult { return p.result }
