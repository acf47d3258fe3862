package spectrum

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/crysfield/transition"
)

// Chi returns the single-ion susceptibility at one temperature, split into
// the Curie (quasi-degenerate) and Van Vleck (inter-level) contributions
// per axis. Levels closer than 1e-5·T (meV) count as degenerate. Units are
// g²μ_B²/meV per ion; multiply by N_A·μ_B² externally for molar values.
// Returns ErrNonPositiveTemperature at T ≤ 0 (the Curie term divides by T).
// Complexity: O(n²).
func Chi(lande float64, levels []float64, tm *transition.Matrices, kelvin float64) (Susceptibility, error) {
	if len(levels) != tm.Size {
		return Susceptibility{}, ErrDimensionMismatch
	}
	t := TemperatureMeV(kelvin)
	if t <= 0 {
		return Susceptibility{}, ErrNonPositiveTemperature
	}
	weights, z := partition(levels, t)

	var s Susceptibility
	for r := 0; r < tm.Size; r++ {
		for c := 0; c < tm.Size; c++ {
			jz2 := tm.Jz[r][c] * tm.Jz[r][c]
			jp2 := tm.JPlus[r][c] * tm.JPlus[r][c]
			jm2 := tm.JMinus[r][c] * tm.JMinus[r][c]
			gap := levels[c] - levels[r]
			if math.Abs(gap) < 1e-5*t {
				s.CurieZ += jz2 * weights[r]
				s.CurieX += 0.25 * (jp2 + jm2) * weights[r]
			} else {
				s.VanVleckZ += 2 * jz2 * weights[r] / gap
				s.VanVleckX += 0.5 * (jp2 + jm2) * weights[r] / gap
			}
		}
	}

	coeff := lande * lande / z
	s.CurieZ *= coeff / t
	s.CurieX *= coeff / t
	s.VanVleckZ *= coeff
	s.VanVleckX *= coeff
	return s, nil
}

// DefaultTemperatureGrid is the conventional 1…300 K sweep in 1 K steps.
func DefaultTemperatureGrid() []float64 {
	return floats.Span(make([]float64, 300), 1, 300)
}

// ChiCurve sweeps Chi over a temperature grid and derives the powder
// average and its inverse at every point. Complexity: O(len(kelvins)·n²).
func ChiCurve(lande float64, levels []float64, tm *transition.Matrices, kelvins []float64) ([]ChiPoint, error) {
	out := make([]ChiPoint, len(kelvins))
	for i, k := range kelvins {
		s, err := Chi(lande, levels, tm, k)
		if err != nil {
			return nil, err
		}
		total := s.Powder()
		out[i] = ChiPoint{
			Kelvin:  k,
			Chi:     s,
			Total:   total,
			Inverse: 1 / total,
		}
	}
	return out, nil
}
