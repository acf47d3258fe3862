package cef_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crysfield/cef"
	"github.com/katalvlaran/crysfield/rareearth"
)

// TestCubicParams_Pr expands a known LLW pair for Pr (F6 = 1260).
func TestCubicParams_Pr(t *testing.T) {
	e := ion(t, "Pr")
	llw := cef.LLW{W: -0.505, X: -0.107}
	p, err := cef.CubicParams(e, llw)
	require.NoError(t, err)

	wantB40 := llw.W * llw.X / rareearth.F4
	wantB60 := llw.W * (1 - 0.107) / 1260
	require.InDelta(t, wantB40, p.B40, eps)
	require.InDelta(t, 5*wantB40, p.B44, eps)
	require.InDelta(t, wantB60, p.B60, eps)
	require.InDelta(t, -21*wantB60, p.B64, eps)
	// Cubic symmetry never populates the other coefficients.
	require.Equal(t, 0.0, p.B20)
	require.Equal(t, 0.0, p.B22)
	require.Equal(t, 0.0, p.B66)
}

// TestCubicParams_Unsupported rejects ions without an F6 denominator.
func TestCubicParams_Unsupported(t *testing.T) {
	for _, symbol := range []string{"Ce", "Sm", "Eu"} {
		_, err := cef.CubicParams(ion(t, symbol), cef.LLW{W: 1, X: 0.5})
		require.ErrorIs(t, err, cef.ErrCubicUnsupported, symbol)

		_, err = cef.NewCubic(ion(t, symbol), cef.LLW{W: 1, X: 0.5})
		require.True(t, errors.Is(err, cef.ErrCubicUnsupported), symbol)
	}
}

// TestCubicParams_XExtremes: at x = ±1 the sixth-order terms vanish; at
// x = 0 the fourth-order terms vanish.
func TestCubicParams_XExtremes(t *testing.T) {
	e := ion(t, "Tb")
	p, err := cef.CubicParams(e, cef.LLW{W: 2, X: 1})
	require.NoError(t, err)
	require.Equal(t, 0.0, p.B60)
	require.Equal(t, 0.0, p.B64)
	require.InDelta(t, 2.0/rareearth.F4, p.B40, eps)

	p, err = cef.CubicParams(e, cef.LLW{W: 2, X: 0})
	require.NoError(t, err)
	require.Equal(t, 0.0, p.B40)
	require.Equal(t, 0.0, p.B44)
	require.InDelta(t, 2.0/e.F6, p.B60, eps)
}
