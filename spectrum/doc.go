// Package spectrum derives thermal and spectroscopic observables from a
// diagonalized CEF model: level populations, inelastic transition peaks,
// broadened neutron cross sections, magnetic moments and the single-ion
// susceptibility.
//
// What:
//
//   - Boltzmann: normalized level populations at a lattice temperature;
//     kelvin is converted to meV by 1/11.6045, and T ≤ 0 collapses the
//     population onto the ground level.
//   - AllPeaks / Peaks: every level-pair transition weighted by the
//     initial-state population; Peaks additionally merges peaks closer
//     than Resolution, discards those below Threshold, and applies the
//     total-intensity sum rule 2J(J+1)/3 to the first (quasi-elastic)
//     peak.
//   - EnergyGrid / CrossSection: an energy-transfer grid and the broadened
//     scattering intensity Σ Iᵢ·profile(E−Eᵢ), scaled by 72.65·g²
//     (mbarn·sr⁻¹·meV⁻¹ per magnetic ion).
//   - Moments: thermal averages ⟨J_z⟩, ⟨J_x⟩ and the magnetic moments
//     g·⟨J⟩ in Bohr magnetons.
//   - Chi / ChiCurve: Curie and Van Vleck susceptibility contributions per
//     axis, the powder average (χ_z + 2χ_x)/3 and its inverse over a
//     temperature grid.
//   - WriteTSV: tab-separated datafile export of any computed curve.
//
// Inputs come from packages cef (levels, eigenvectors) and transition
// (operator matrices); nothing here diagonalizes or allocates models.
//
// Errors:
//
//   - ErrDimensionMismatch: levels and matrices disagree in size.
//   - ErrNonPositiveTemperature: susceptibility requested at T ≤ 0.
//   - ErrNoWidth: a cross section requested with neither σ nor γ.
package spectrum
