package spectrum

import (
	"math"

	"github.com/katalvlaran/crysfield/transition"
)

// degeneracyTol decides whether a level belongs to the ground multiplet in
// the T ≤ 0 branch.
const degeneracyTol = 1e-9

// ComputeMoments returns the thermal averages ⟨J_z⟩ and ⟨J_x⟩ and the
// magnetic moments g·⟨J⟩ (Bohr magnetons). At positive temperature the
// averages are Boltzmann-weighted over all levels; at T ≤ 0 they average
// over the degenerate ground multiplet. ⟨J_x⟩ uses (J+ + J−)/2 on the
// diagonal. Complexity: O(n).
func ComputeMoments(lande float64, levels []float64, tm *transition.Matrices, kelvin float64) (Moments, error) {
	if len(levels) != tm.Size {
		return Moments{}, ErrDimensionMismatch
	}
	var jz, jx float64
	if TemperatureMeV(kelvin) > 0 {
		pop := Boltzmann(levels, kelvin)
		for i := range levels {
			jz += tm.Jz[i][i] * pop[i]
			jx += 0.5 * (tm.JPlus[i][i] + tm.JMinus[i][i]) * pop[i]
		}
	} else {
		ground := levels[0]
		count := 0
		for i, e := range levels {
			if math.Abs(e-ground) > degeneracyTol {
				continue
			}
			jz += tm.Jz[i][i]
			jx += 0.5 * (tm.JPlus[i][i] + tm.JMinus[i][i])
			count++
		}
		jz /= float64(count)
		jx /= float64(count)
	}
	return Moments{
		JzAvg:   jz,
		JxAvg:   jx,
		MomentZ: lande * jz,
		MomentX: lande * jx,
	}, nil
}
