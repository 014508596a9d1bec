// Package core: cost and constraint terms plus their variable bindings.
//
// A term is expressed in the local coordinates of its variable subset:
// entry i of a term vector (and row/column i of a term matrix) refers to
// the i-th bound variable, not to a global index. Solvers scatter local
// entries to global positions through Variable.Index.
package core

import "gonum.org/v1/gonum/mat"

// QuadraticCost represents ½·zᵀQz + bᵀz over its bound variable subset z.
//
// Q must be symmetric (enforced by the *mat.SymDense type) but is not
// required to be positive definite; solvers decide how to handle indefinite
// Hessians.
type QuadraticCost struct {
	// Q is the k×k quadratic coefficient matrix, k = number of bound variables.
	Q *mat.SymDense

	// B is the k-vector of linear coefficients.
	B *mat.VecDense
}

// LinearEqualityConstraint represents A·z = Rhs over its bound subset z.
type LinearEqualityConstraint struct {
	// A is the r×k coefficient matrix; r is this term's row count.
	A *mat.Dense

	// Rhs is the r-vector right-hand side.
	Rhs *mat.VecDense
}

// LinearConstraint represents Lower ≤ A·z ≤ Upper over its bound subset z.
//
// It is stored by the Program but not handled by the equality-constrained QP
// backend, which asserts its absence.
type LinearConstraint struct {
	A     *mat.Dense
	Lower *mat.VecDense
	Upper *mat.VecDense
}

// BoundingBoxConstraint represents Lower ≤ z ≤ Upper element-wise.
//
// Stored but, like LinearConstraint, outside the equality-constrained QP
// backend's support.
type BoundingBoxConstraint struct {
	Lower *mat.VecDense
	Upper *mat.VecDense
}

// QuadraticCostBinding pairs a QuadraticCost with the variables it reads.
type QuadraticCostBinding struct {
	Cost QuadraticCost
	Vars []Variable
}

// LinearEqualityBinding pairs a LinearEqualityConstraint with its variables.
type LinearEqualityBinding struct {
	Constraint LinearEqualityConstraint
	Vars       []Variable
}

// LinearBinding pairs a LinearConstraint with its variables.
type LinearBinding struct {
	Constraint LinearConstraint
	Vars       []Variable
}

// BoundingBoxBinding pairs a BoundingBoxConstraint with its variables.
type BoundingBoxBinding struct {
	Constraint BoundingBoxConstraint
	Vars       []Variable
}
