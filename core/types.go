// Package core: shared types and sentinel errors.
//
// This file declares Variable, SolverID, SolutionResult, the Solver
// interface, and the package sentinel error set.
package core

import "errors"

// Sentinel errors for program construction and solution access.
var (
	// ErrNilTerm indicates a nil matrix or vector argument to an Add method.
	ErrNilTerm = errors.New("core: nil term matrix or vector")

	// ErrEmptyBinding indicates a term bound to an empty variable subset.
	ErrEmptyBinding = errors.New("core: binding references no variables")

	// ErrDimensionMismatch indicates a term whose shape does not match the
	// number of bound variables or its own right-hand side.
	ErrDimensionMismatch = errors.New("core: dimension mismatch")

	// ErrUnknownVariable indicates a Variable that does not belong to the
	// Program it was used with.
	ErrUnknownVariable = errors.New("core: unknown variable")

	// ErrInvalidCount indicates a non-positive variable count.
	ErrInvalidCount = errors.New("core: variable count must be > 0")

	// ErrNotSolved indicates that solution values were requested before a
	// solver wrote a solution back into the Program.
	ErrNotSolved = errors.New("core: program has not been solved")
)

// Variable is a handle to one decision variable of a Program.
//
// Variables are created only through Program.NewVariable or
// Program.NewVariables; the zero value is not a valid handle.
// Index is the variable's position in the dense, zero-based global
// index space of its Program.
type Variable struct {
	id   int
	name string
}

// Index returns the variable's position in the global index space.
func (v Variable) Index() int { return v.id }

// Name returns the variable's human-readable name.
func (v Variable) Name() string { return v.name }

// String implements fmt.Stringer.
func (v Variable) String() string { return v.name }

// SolverID is an immutable identity token for a solver backend.
//
// IDs are compared by name; each backend constructs its token exactly once
// (see sync.OnceValue in the solver packages) and returns the same value from
// every call, so IDs are safe for concurrent reads and map keys.
type SolverID struct {
	name string
}

// NewSolverID constructs an identity token with the given name.
func NewSolverID(name string) SolverID { return SolverID{name: name} }

// Name returns the token's name.
func (id SolverID) Name() string { return id.name }

// String implements fmt.Stringer.
func (id SolverID) String() string { return id.name }

// SolutionResult is the outcome vocabulary shared by all solver backends.
type SolutionResult int

const (
	// SolutionFound means the backend produced an optimal assignment.
	SolutionFound SolutionResult = iota

	// Infeasible means the backend proved no assignment satisfies the
	// constraints.
	Infeasible

	// Unbounded means the objective decreases without bound.
	Unbounded

	// SolverError means the backend failed for an internal reason.
	SolverError
)

// String implements fmt.Stringer.
func (r SolutionResult) String() string {
	switch r {
	case SolutionFound:
		return "solution found"
	case Infeasible:
		return "infeasible"
	case Unbounded:
		return "unbounded"
	case SolverError:
		return "solver error"
	default:
		return "unknown result"
	}
}

// Solver is the contract every backend implements.
//
// ID must return the same token on every call. Available reports whether the
// backend can actually solve (identity-only stubs return false). Solve reads
// the program's term collections, writes the solution back via SetSolution,
// SetOptimalCost and SetSolverResult, and returns the outcome.
type Solver interface {
	ID() SolverID
	Available() bool
	Solve(p *Program) (SolutionResult, error)
}
