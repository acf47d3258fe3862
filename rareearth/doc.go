// Package rareearth provides tabular data for the trivalent rare-earth ions
// used in crystal-electric-field (CEF) calculations.
//
// What:
//
//   - Element describes one ion: number of 4f electrons, ground-state total
//     angular momentum J, Landé g-factor, basis size 2J+1, Stevens factors
//     α, β, γ, the F6 denominator of the Lea–Leask–Wolf scheme, and the
//     radial integrals ⟨r²⟩, ⟨r⁴⟩, ⟨r⁶⟩.
//   - Lookup resolves an Element by chemical symbol ("Ce" … "Yb").
//   - Physical constants: F4 and the Bohr magneton in meV/T.
//
// Why:
//
//   - CEF Hamiltonians (package cef) need J, the Stevens factors and the
//     LLW denominators for every supported ion.
//   - Zeeman terms and magnetic moments need the Landé factor and μ_B.
//
// Errors:
//
//   - ErrUnknownElement: the requested symbol is not a tabulated rare earth.
//
// The table covers Ce through Yb. Ions with a zero F6 denominator (Ce, Sm,
// Eu) cannot be described by the cubic LLW parameterization; see
// Element.SupportsCubic.
package rareearth
