// Package lineshape provides the normalized peak profiles used to broaden
// discrete transition energies into measurable spectra.
//
// What:
//
//   - Gaussian: unit-area Gauss profile; FWHM = 2√(2·ln2)·σ, maximum
//     1/(σ√(2π)).
//   - Lorentzian: unit-area Lorentz profile; FWHM = 2γ, maximum 1/(πγ).
//   - PseudoVoigt: unit-area Thompson–Cox–Hastings mixture of the two,
//     with the standard fifth-order FWHM combination and the cubic η
//     mixing polynomial.
//   - MultiPeak: constant background plus a sum of amplitude-scaled
//     profiles.
//
// Why:
//
//   - Package spectrum convolves CEF transition peaks with one of these
//     profiles to produce an inelastic neutron scattering cross section;
//     they are equally usable as fit models for measured spectra.
//
// All profiles are pure functions of float64 and allocate nothing.
package lineshape
