// Package core defines the central Program, Variable, and term-binding types,
// and the contract shared by every solver backend in mathprog.
//
// 🚀 What is core?
//
//	The bookkeeping layer of a mathematical program:
//		• Variable  — a handle into the dense, zero-based decision-variable
//		  index space of one Program
//		• Program   — ordered collections of cost and constraint terms, each
//		  bound to a subset of the variables, plus the solution store that
//		  solvers write back into
//		• Bindings  — (term, variable subset) pairs; terms are expressed in
//		  the local coordinates of their subset
//		• SolverID  — immutable identity token distinguishing solver backends
//		• Solver    — the interface every backend implements
//
// ✨ Design rules:
//
//   - Shapes are validated when a term is added (sentinel errors, errors.Is);
//     solvers may therefore treat stored bindings as well-formed.
//   - A Program is not safe for concurrent mutation or concurrent solving of
//     the same instance; distinct Programs may be solved in parallel freely.
//   - Term order is preserved: constraint rows stack in insertion order.
//
// Errors:
//
//	ErrNilTerm           - a nil matrix or vector was passed to an Add method.
//	ErrEmptyBinding      - a term references no variables.
//	ErrDimensionMismatch - term shape does not match its variable subset.
//	ErrUnknownVariable   - a variable does not belong to this Program.
//	ErrInvalidCount      - requested variable count is not positive.
//	ErrNotSolved         - solution values requested before any solve.
package core
