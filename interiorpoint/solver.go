// Package interiorpoint reserves the solver identity for an external
// interior-point nonlinear-programming backend.
//
// The package carries no algorithmic content: it exists so the framework can
// dispatch on and report a stable identity for a backend that is linked in
// separately (or not at all). It follows the same file-level contract as the
// algorithmic backends — an ID accessor backed by a one-time-constructed,
// immutable token.
package interiorpoint

import (
	"errors"
	"sync"

	"github.com/brandon-northcutt/mathprog/core"
)

// ErrUnavailable is returned by Solve: this build contains no interior-point
// backend.
var ErrUnavailable = errors.New("interiorpoint: solver backend not built in")

// solverName is the stable identity reported for dispatch and diagnostics.
const solverName = "interior-point"

var solverID = sync.OnceValue(func() core.SolverID {
	return core.NewSolverID(solverName)
})

// ID returns the backend's stable identity token.
func ID() core.SolverID { return solverID() }

// Solver is the identity-only stub implementing core.Solver.
type Solver struct{}

// ID implements core.Solver.
func (Solver) ID() core.SolverID { return ID() }

// Available implements core.Solver; always false for the stub.
func (Solver) Available() bool { return false }

// Solve implements core.Solver and always fails with ErrUnavailable.
func (Solver) Solve(*core.Program) (core.SolutionResult, error) {
	return core.SolverError, ErrUnavailable
}
