// Package plotting renders computed crystal-field observables as line
// plots: inelastic scattering spectra and inverse-susceptibility curves.
//
// The functions return a *plot.Plot (gonum.org/v1/plot) so callers can
// restyle axes or overlay measured data before saving; Save writes the
// figure in any format gonum/plot infers from the file extension
// (.png, .pdf, .svg, ...).
//
// Errors:
//
//   - ErrLengthMismatch: x and y series of differing lengths.
//   - ErrEmptySeries: nothing to plot.
package plotting
