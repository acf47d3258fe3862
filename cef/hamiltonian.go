package cef

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/crysfield/rareearth"
	"github.com/katalvlaran/crysfield/stevens"
)

// coefficient pairs one Stevens operator with the accessor for its B_l^m.
type coefficient struct {
	op stevens.Operator
	b  func(Params) float64
}

var diagonalTerms = []coefficient{
	{stevens.O20, func(p Params) float64 { return p.B20 }},
	{stevens.O40, func(p Params) float64 { return p.B40 }},
	{stevens.O60, func(p Params) float64 { return p.B60 }},
}

// offDiagonalTerms groups the Δm>0 operators by the superdiagonal they fill.
var offDiagonalTerms = map[int][]coefficient{
	2: {
		{stevens.O22, func(p Params) float64 { return p.B22 }},
		{stevens.O42, func(p Params) float64 { return p.B42 }},
		{stevens.O62, func(p Params) float64 { return p.B62 }},
	},
	3: {
		{stevens.O43, func(p Params) float64 { return p.B43 }},
		{stevens.O63, func(p Params) float64 { return p.B63 }},
	},
	4: {
		{stevens.O44, func(p Params) float64 { return p.B44 }},
		{stevens.O64, func(p Params) float64 { return p.B64 }},
	},
	6: {
		{stevens.O66, func(p Params) float64 { return p.B66 }},
	},
}

// CEFHamiltonian assembles Σ B_l^m·O_l^m in the |J,m⟩ basis. Row index i
// corresponds to m = i−J. Only the upper triangle is computed; SymDense
// mirrors it. Complexity: O(size²).
func (md *Model) CEFHamiltonian() *mat.SymDense {
	size := md.Ion.Size()
	j := md.Ion.J
	squaredJ := md.Ion.SquaredJ()
	h := mat.NewSymDense(size, nil)
	for row := 0; row < size; row++ {
		m1 := float64(row) - j
		diag := 0.0
		for _, term := range diagonalTerms {
			if b := term.b(md.Params); b != 0 {
				diag += b * stevens.Diagonal(term.op, squaredJ, m1)
			}
		}
		h.SetSym(row, row, diag)

		for delta, terms := range offDiagonalTerms {
			column := row + delta
			if column >= size {
				continue
			}
			m2 := float64(column) - j
			v := 0.0
			for _, term := range terms {
				if b := term.b(md.Params); b != 0 {
					v += b * stevens.Element(term.op, squaredJ, m1, m2)
				}
			}
			h.SetSym(row, column, v)
		}
	}
	return h
}

// ZeemanHamiltonian builds the −gμ_B(J_z·H_z + J_x·H_x) term for the given
// field. H_z enters on the diagonal as −gμ_B·m·H_z; H_x on the first
// superdiagonal as −½gμ_B·√(J(J+1)−m(m+1))·H_x.
func (md *Model) ZeemanHamiltonian(field Field) *mat.SymDense {
	size := md.Ion.Size()
	j := md.Ion.J
	squaredJ := md.Ion.SquaredJ()
	g := md.Ion.Lande
	h := mat.NewSymDense(size, nil)
	for row := 0; row < size; row++ {
		m1 := float64(row) - j
		h.SetSym(row, row, -g*rareearth.BohrMagneton*m1*field.Z)
		if row < size-1 {
			m2 := m1 + 1
			h.SetSym(row, row+1,
				-0.5*g*rareearth.BohrMagneton*math.Sqrt(squaredJ-m1*m2)*field.X)
		}
	}
	return h
}

// TotalHamiltonian returns the CEF term plus the Zeeman term for the
// model's stored field.
func (md *Model) TotalHamiltonian() *mat.SymDense {
	var total mat.SymDense
	total.AddSym(md.CEFHamiltonian(), md.ZeemanHamiltonian(md.Field))
	return &total
}
