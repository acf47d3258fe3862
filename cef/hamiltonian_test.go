package cef_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crysfield/cef"
	"github.com/katalvlaran/crysfield/rareearth"
	"github.com/katalvlaran/crysfield/stevens"
)

const eps = 1e-12

func ion(t *testing.T, symbol string) rareearth.Element {
	t.Helper()
	e, err := rareearth.Lookup(symbol)
	require.NoError(t, err)
	return e
}

// TestCEFHamiltonian_FreeIon verifies that zero parameters give a zero
// Hamiltonian.
func TestCEFHamiltonian_FreeIon(t *testing.T) {
	md := cef.New(ion(t, "Pr"), cef.Params{})
	h := md.CEFHamiltonian()
	n, _ := h.Dims()
	require.Equal(t, 9, n)
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			require.Equal(t, 0.0, h.At(i, k))
		}
	}
}

// TestCEFHamiltonian_B20 checks the diagonal against the closed-form
// O20 = 3m² − J(J+1) for a pure B20 model.
func TestCEFHamiltonian_B20(t *testing.T) {
	e := ion(t, "Pr") // J = 4, size 9
	const b20 = 0.25
	md := cef.New(e, cef.Params{B20: b20})
	h := md.CEFHamiltonian()
	for row := 0; row < e.Size(); row++ {
		m := float64(row) - e.J
		require.InDelta(t, b20*(3*m*m-e.SquaredJ()), h.At(row, row), eps, "row %d", row)
	}
	// No off-diagonal coupling from a diagonal operator.
	require.Equal(t, 0.0, h.At(0, 2))
	require.Equal(t, 0.0, h.At(0, 4))
}

// TestCEFHamiltonian_B44 checks that a pure B44 model fills exactly the
// fourth superdiagonal with ½·B44·(ladder product) elements, mirrored.
func TestCEFHamiltonian_B44(t *testing.T) {
	e := ion(t, "Pr")
	const b44 = 0.1
	md := cef.New(e, cef.Params{B44: b44})
	h := md.CEFHamiltonian()
	size := e.Size()
	for row := 0; row < size; row++ {
		for col := row; col < size; col++ {
			want := 0.0
			if col == row+4 {
				m1 := float64(row) - e.J
				m2 := float64(col) - e.J
				want = b44 * stevens.Element(stevens.O44, e.SquaredJ(), m1, m2)
			}
			require.InDelta(t, want, h.At(row, col), eps, "(%d,%d)", row, col)
			require.InDelta(t, want, h.At(col, row), eps, "(%d,%d) mirror", col, row)
		}
	}
}

// TestZeemanHamiltonian_Axial checks the diagonal −gμ_B·m·H_z ladder and
// that a purely axial field leaves the off-diagonal empty.
func TestZeemanHamiltonian_Axial(t *testing.T) {
	e := ion(t, "Ce") // J = 5/2
	md := cef.New(e, cef.Params{})
	const hz = 3.0
	h := md.ZeemanHamiltonian(cef.Field{Z: hz})
	for row := 0; row < e.Size(); row++ {
		m := float64(row) - e.J
		require.InDelta(t, -e.Lande*rareearth.BohrMagneton*m*hz, h.At(row, row), eps)
		if row < e.Size()-1 {
			require.Equal(t, 0.0, h.At(row, row+1))
		}
	}
}

// TestZeemanHamiltonian_Transverse checks the first superdiagonal of a
// transverse field against −½gμ_B·√(J(J+1)−m(m+1))·H_x.
func TestZeemanHamiltonian_Transverse(t *testing.T) {
	e := ion(t, "Ce")
	md := cef.New(e, cef.Params{})
	const hx = 2.0
	h := md.ZeemanHamiltonian(cef.Field{X: hx})
	for row := 0; row < e.Size()-1; row++ {
		m := float64(row) - e.J
		want := -0.5 * e.Lande * rareearth.BohrMagneton * math.Sqrt(e.SquaredJ()-m*(m+1)) * hx
		require.InDelta(t, want, h.At(row, row+1), eps, "row %d", row)
		require.Equal(t, 0.0, h.At(row, row))
	}
}

// TestTotalHamiltonian_Sum verifies Total = CEF + Zeeman entrywise.
func TestTotalHamiltonian_Sum(t *testing.T) {
	e := ion(t, "Pr")
	md := cef.New(e, cef.Params{B20: 0.1, B40: 0.01, B44: 0.05})
	md.Field = cef.Field{Z: 1.5, X: 0.5}
	total := md.TotalHamiltonian()
	hCEF := md.CEFHamiltonian()
	hZee := md.ZeemanHamiltonian(md.Field)
	size := e.Size()
	for i := 0; i < size; i++ {
		for k := 0; k < size; k++ {
			require.InDelta(t, hCEF.At(i, k)+hZee.At(i, k), total.At(i, k), eps, "(%d,%d)", i, k)
		}
	}
}
