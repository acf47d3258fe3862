package spectrum

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// TemperatureMeV converts a lattice temperature from kelvin to meV.
func TemperatureMeV(kelvin float64) float64 {
	return kelvin / KelvinPerMeV
}

// Boltzmann returns the normalized thermal populations of the given levels
// (meV) at the given temperature. At T ≤ 0 the entire population sits on
// the first level. Complexity: O(n).
func Boltzmann(levels []float64, kelvin float64) []float64 {
	pop := make([]float64, len(levels))
	if len(levels) == 0 {
		return pop
	}
	t := TemperatureMeV(kelvin)
	if t <= 0 {
		pop[0] = 1
		return pop
	}
	for i, e := range levels {
		pop[i] = math.Exp(-e / t)
	}
	floats.Scale(1/floats.Sum(pop), pop)
	return pop
}

// partition returns the unnormalized Boltzmann weights and their sum; the
// susceptibility formulas need both separately.
func partition(levels []float64, tMeV float64) ([]float64, float64) {
	w := make([]float64, len(levels))
	for i, e := range levels {
		w[i] = math.Exp(-e / tMeV)
	}
	return w, floats.Sum(w)
}
