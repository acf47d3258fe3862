package spectrum

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/crysfield/transition"
)

// AllPeaks lists every level-pair transition with nonzero thermal weight:
// for initial level a and final level b the peak sits at E_b − E_a with
// intensity Probability[b][a]·population[a]. Quasi-elastic (negative and
// zero energy) transfers are included. Complexity: O(n²).
func AllPeaks(levels []float64, tm *transition.Matrices, kelvin float64) ([]Peak, error) {
	if len(levels) != tm.Size {
		return nil, ErrDimensionMismatch
	}
	pop := Boltzmann(levels, kelvin)
	peaks := make([]Peak, 0, tm.Size*tm.Size)
	for a := 0; a < tm.Size; a++ {
		for b := 0; b < tm.Size; b++ {
			intensity := tm.Probability[b][a] * pop[a]
			if intensity > 0 {
				peaks = append(peaks, Peak{Energy: levels[b] - levels[a], Intensity: intensity})
			}
		}
	}
	return peaks, nil
}

// Peaks reduces AllPeaks to the resolvable spectrum: peaks closer than
// opts.Resolution merge into one peak at their intensity-weighted mean
// energy, merged peaks below opts.Threshold are discarded, and the total
// intensity is pinned to the dipole sum rule 2j(j+1)/3 by adjusting the
// first (lowest-energy, quasi-elastic) peak. The result is sorted by
// energy. Complexity: O(n⁴) worst case over n levels.
func Peaks(j float64, levels []float64, tm *transition.Matrices, kelvin float64, opts PeakOptions) ([]Peak, error) {
	all, err := AllPeaks(levels, tm, kelvin)
	if err != nil {
		return nil, err
	}

	result := make([]Peak, 0, len(all))
	for i := range all {
		sum := all[i].Energy * all[i].Intensity
		for k := range all {
			if k == i || all[i].Intensity <= 0 {
				continue
			}
			if math.Abs(all[i].Energy-all[k].Energy) < opts.Resolution {
				all[i].Intensity += all[k].Intensity
				sum += all[k].Energy * all[k].Intensity
				all[k].Intensity = 0
			}
		}
		if all[i].Intensity > opts.Threshold {
			result = append(result, Peak{
				Energy:    sum / all[i].Intensity,
				Intensity: all[i].Intensity,
			})
		}
	}
	sort.Slice(result, func(a, b int) bool { return result[a].Energy < result[b].Energy })

	if len(result) > 0 {
		wantTotal := 2 * j * (j + 1) / 3
		rest := 0.0
		for _, p := range result[1:] {
			rest += p.Intensity
		}
		if total := result[0].Intensity + rest; total != wantTotal {
			result[0].Intensity = wantTotal - rest
		}
	}
	return result, nil
}

// Energies projects the peak list onto its transition energies.
func Energies(peaks []Peak) []float64 {
	out := make([]float64, len(peaks))
	for i, p := range peaks {
		out[i] = p.Energy
	}
	return out
}

// Intensities projects the peak list onto its intensities.
func Intensities(peaks []Peak) []float64 {
	out := make([]float64, len(peaks))
	for i, p := range peaks {
		out[i] = p.Intensity
	}
	return out
}

// EnergyGrid returns the conventional 501-point energy-transfer grid
// spanning ±1.1 × the highest level energy.
func EnergyGrid(levels []float64) []float64 {
	top := 0.0
	if len(levels) > 0 {
		top = levels[len(levels)-1]
	}
	return floats.Span(make([]float64, 501), -1.1*top, 1.1*top)
}
