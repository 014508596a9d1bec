// Package eqqp: dense problem assembly.
package eqqp

import (
	"gonum.org/v1/gonum/mat"

	"github.com/brandon-northcutt/mathprog/core"
)

// Assemble converts prog's sparse, variable-indexed terms into the dense
// Standard form over the full index space of size prog.NumVariables().
//
// Quadratic terms scatter additively: the same global variable may appear in
// any number of cost terms and every contribution is summed into G and C.
// Equality terms stack row-wise in insertion order: each term occupies a
// contiguous row block of its own row count, with its local columns placed at
// the bound variables' global indices and zeros elsewhere.
//
// Assembly always succeeds for terms accepted by core's Add validation;
// prog must hold at least one variable.
func Assemble(prog *core.Program) *Standard {
	n := prog.NumVariables()

	g := mat.NewSymDense(n, nil)
	c := mat.NewVecDense(n, nil)

	for _, qc := range prog.QuadraticCosts() {
		scatterQuadratic(g, c, qc)
	}

	m := 0
	for _, ec := range prog.LinearEqualityConstraints() {
		r, _ := ec.Constraint.A.Dims()
		m += r
	}
	if m == 0 {
		return &Standard{G: g, C: c}
	}

	a := mat.NewDense(m, n, nil)
	b := mat.NewVecDense(m, nil)

	row := 0
	for _, ec := range prog.LinearEqualityConstraints() {
		row += stackEquality(a, b, row, ec)
	}

	return &Standard{G: g, C: c, A: a, B: b}
}

// scatterQuadratic adds one quadratic term's local Q into G and local b into
// c at the binding's global indices. Each unordered index pair is accumulated
// exactly once through the upper triangle; Q's own symmetry supplies the
// mirrored entry.
func scatterQuadratic(g *mat.SymDense, c *mat.VecDense, qc core.QuadraticCostBinding) {
	k := len(qc.Vars)
	for i := 0; i < k; i++ {
		gi := qc.Vars[i].Index()
		for j := 0; j < k; j++ {
			gj := qc.Vars[j].Index()
			if gi <= gj {
				g.SetSym(gi, gj, g.At(gi, gj)+qc.Cost.Q.At(i, j))
			}
		}
		c.SetVec(gi, c.AtVec(gi)+qc.Cost.B.AtVec(i))
	}
}

// stackEquality places one equality term's local columns into a's rows
// [row, row+r) at the binding's global column indices, copies its right-hand
// side into b, and returns the term's row count r.
func stackEquality(a *mat.Dense, b *mat.VecDense, row int, ec core.LinearEqualityBinding) int {
	r, _ := ec.Constraint.A.Dims()
	for j, v := range ec.Vars {
		col := v.Index()
		for i := 0; i < r; i++ {
			a.Set(row+i, col, ec.Constraint.A.At(i, j))
		}
	}
	for i := 0; i < r; i++ {
		b.SetVec(row+i, ec.Constraint.Rhs.AtVec(i))
	}

	return r
}
