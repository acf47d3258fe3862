package cef

import (
	"math"

	"github.com/katalvlaran/crysfield/rareearth"
)

// CubicParams expands the LLW (W, x) pair into the four nonzero B_l^m of a
// cubic CEF:
//
//	B40 = W·x/F4    B44 = 5·B40
//	B60 = W·(1−|x|)/F6    B64 = −21·B60
//
// Returns ErrCubicUnsupported for ions without an F6 denominator
// (Ce, Sm, Eu).
func CubicParams(ion rareearth.Element, llw LLW) (Params, error) {
	if !ion.SupportsCubic() {
		return Params{}, ErrCubicUnsupported
	}
	b40 := llw.W * llw.X / rareearth.F4
	b60 := llw.W * (1 - math.Abs(llw.X)) / ion.F6
	return Params{
		B40: b40,
		B44: 5 * b40,
		B60: b60,
		B64: -21 * b60,
	}, nil
}

// NewCubic returns a Model for a cubic compound described by the LLW
// parameters.
func NewCubic(ion rareearth.Element, llw LLW) (*Model, error) {
	p, err := CubicParams(ion, llw)
	if err != nil {
		return nil, err
	}
	return New(ion, p), nil
}
