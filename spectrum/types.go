// Package spectrum defines observable types, options and sentinel errors.
package spectrum

import "errors"

// Sentinel errors for spectrum operations.
var (
	// ErrDimensionMismatch indicates levels and operator matrices disagree.
	ErrDimensionMismatch = errors.New("spectrum: level count must match matrix dimension")
	// ErrNonPositiveTemperature indicates a thermal observable that is
	// undefined at T ≤ 0 (susceptibility divides by T).
	ErrNonPositiveTemperature = errors.New("spectrum: temperature must be positive")
	// ErrNoWidth indicates a cross section with neither a Gaussian sigma
	// nor a Lorentzian gamma.
	ErrNoWidth = errors.New("spectrum: width must set sigma, gamma, or both")
)

// KelvinPerMeV converts lattice temperature to energy units:
// T[meV] = T[K] / KelvinPerMeV.
const KelvinPerMeV = 11.6045

// Peak is one inelastic transition: energy transfer in meV and intensity
// in units of the squared dipole matrix element.
type Peak struct {
	Energy    float64
	Intensity float64
}

// PeakOptions tunes peak merging in Peaks.
type PeakOptions struct {
	// Resolution is the energy window (meV) within which peaks merge.
	Resolution float64
	// Threshold discards merged peaks with smaller intensity.
	Threshold float64
}

// DefaultPeakOptions mirrors the conventional instrument-independent
// defaults: 0.01 meV merge window, 1e-4 intensity cutoff.
func DefaultPeakOptions() PeakOptions {
	return PeakOptions{Resolution: 1e-2, Threshold: 1e-4}
}

// Width selects the broadening profile of a cross section: only Sigma set
// gives a Gaussian, only Gamma a Lorentzian, both a pseudo-Voigt.
type Width struct {
	Sigma float64
	Gamma float64
}

// Susceptibility is the single-ion susceptibility at one temperature, per
// axis and split into Curie and Van Vleck parts. Units: g²μ_B²/meV per ion.
type Susceptibility struct {
	CurieZ, CurieX       float64
	VanVleckZ, VanVleckX float64
}

// Z returns the total z-axis susceptibility.
func (s Susceptibility) Z() float64 { return s.CurieZ + s.VanVleckZ }

// X returns the total x-axis susceptibility.
func (s Susceptibility) X() float64 { return s.CurieX + s.VanVleckX }

// Powder returns the polycrystalline average (χ_z + 2χ_x)/3.
func (s Susceptibility) Powder() float64 { return (s.Z() + 2*s.X()) / 3 }

// ChiPoint is one sample of a susceptibility temperature sweep.
type ChiPoint struct {
	Kelvin  float64
	Chi     Susceptibility
	Total   float64 // powder average
	Inverse float64 // 1/Total
}

// Moments holds thermal angular-momentum averages and the corresponding
// magnetic moments in Bohr magnetons (μ = g·⟨J⟩).
type Moments struct {
	JzAvg, JxAvg     float64
	MomentZ, MomentX float64
}
