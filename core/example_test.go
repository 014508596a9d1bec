// Package core_test provides runnable examples for building programs.
package core_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/brandon-northcutt/mathprog/core"
)

// ExampleProgram demonstrates constructing a two-variable program with one
// quadratic cost and one equality constraint, then inspecting its shape.
func ExampleProgram() {
	// 1) Create a program and two decision variables x(0), x(1).
	p := core.NewProgram()
	x, _ := p.NewVariables(2, "x")

	// 2) Add the cost x(0)² + x(1)², written as ½·xᵀQx with Q = 2·I.
	q := mat.NewSymDense(2, []float64{2, 0, 0, 2})
	b := mat.NewVecDense(2, nil)
	_ = p.AddQuadraticCost(q, b, x)

	// 3) Constrain x(0) + x(1) = 1.
	a := mat.NewDense(1, 2, []float64{1, 1})
	rhs := mat.NewVecDense(1, []float64{1})
	_ = p.AddLinearEqualityConstraint(a, rhs, x)

	fmt.Printf("vars=%d costs=%d equalities=%d\n",
		p.NumVariables(), len(p.QuadraticCosts()), len(p.LinearEqualityConstraints()))
	fmt.Printf("second variable: %s at index %d\n", x[1], x[1].Index())
	// Output:
	// vars=2 costs=1 equalities=1
	// second variable: x(1) at index 1
}
