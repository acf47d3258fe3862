package spectrum

import "github.com/katalvlaran/crysfield/lineshape"

// crossSectionScale converts summed squared dipole matrix elements to the
// neutron cross section in mbarn·sr⁻¹·meV⁻¹ per magnetic ion; multiplied
// by the squared Landé factor of the ion.
const crossSectionScale = 72.65

// CrossSection evaluates the broadened scattering intensity on the given
// energy-transfer grid: Σᵢ Iᵢ·profile(E − Eᵢ), scaled by 72.65·g². The
// profile follows width: Sigma only → Gaussian, Gamma only → Lorentzian,
// both → pseudo-Voigt. Returns ErrNoWidth when neither is set.
// Complexity: O(len(energies)·len(peaks)).
func CrossSection(energies []float64, peaks []Peak, width Width, lande float64) ([]float64, error) {
	profile, err := width.profile()
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(energies))
	scale := crossSectionScale * lande * lande
	for i, e := range energies {
		v := 0.0
		for _, p := range peaks {
			v += p.Intensity * profile(e, p.Energy)
		}
		out[i] = v * scale
	}
	return out, nil
}

// DefaultWidth is the conventional fallback when no instrument resolution
// is known: a Gaussian sigma of 1% of the grid span.
func DefaultWidth(energies []float64) Width {
	if len(energies) < 2 {
		return Width{Sigma: 1}
	}
	return Width{Sigma: 0.01 * (energies[len(energies)-1] - energies[0])}
}

// profile resolves the Width into a center-bound line shape.
func (w Width) profile() (func(arg, center float64) float64, error) {
	switch {
	case w.Sigma != 0 && w.Gamma != 0:
		return func(arg, center float64) float64 {
			return lineshape.PseudoVoigt(arg, center, w.Sigma, w.Gamma)
		}, nil
	case w.Sigma != 0:
		return func(arg, center float64) float64 {
			return lineshape.Gaussian(arg, center, w.Sigma)
		}, nil
	case w.Gamma != 0:
		return func(arg, center float64) float64 {
			return lineshape.Lorentzian(arg, center, w.Gamma)
		}, nil
	}
	return nil, ErrNoWidth
}
