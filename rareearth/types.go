// Package rareearth defines the Element type, sentinel errors and physical
// constants for the rare-earth table.
package rareearth

import "errors"

// ErrUnknownElement indicates a symbol outside the tabulated Ce…Yb range.
var ErrUnknownElement = errors.New("rareearth: unknown rare-earth symbol")

// Physical constants shared across the library.
const (
	// F4 is the fourth-order denominator of the Lea–Leask–Wolf scheme.
	F4 = 60.0

	// BohrMagneton is μ_B expressed in meV/T.
	BohrMagneton = 5.788382e-2
)

// RadialIntegrals holds the ⟨r^k⟩ expectation values (in units of a₀^k)
// for k = 2, 4, 6.
type RadialIntegrals struct {
	R2, R4, R6 float64
}

// StevensFactors holds the reduced matrix elements α (k=2), β (k=4),
// γ (k=6) of the Stevens operator-equivalent method.
type StevensFactors struct {
	Alpha, Beta, Gamma float64
}

// Element describes one trivalent rare-earth ion in its ground multiplet.
type Element struct {
	// Symbol is the chemical symbol, e.g. "Pr".
	Symbol string
	// FElectrons is the number of 4f electrons of the trivalent ion.
	FElectrons int
	// J is the total angular momentum quantum number of the ground multiplet.
	J float64
	// Lande is the Landé g-factor.
	Lande float64
	// F6 is the sixth-order LLW denominator; zero when the cubic
	// parameterization is undefined for this ion.
	F6 float64
	// Radial holds the ⟨r^k⟩ integrals.
	Radial RadialIntegrals
	// Stevens holds the α, β, γ reduced matrix elements.
	Stevens StevensFactors
}

// Size returns the dimension 2J+1 of the |J,m⟩ basis.
func (e Element) Size() int {
	return int(2*e.J) + 1
}

// SquaredJ returns J(J+1), the ladder-operator normalization constant.
func (e Element) SquaredJ() float64 {
	return e.J * (e.J + 1)
}

// SupportsCubic reports whether the cubic LLW parameterization is defined
// for this ion (it requires a nonzero F6 denominator).
func (e Element) SupportsCubic() bool {
	return e.F6 != 0
}
