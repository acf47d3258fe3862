// Package crysfield computes crystal-electric-field (CEF) level schemes and
// neutron-scattering observables for trivalent rare-earth ions.
//
// 🚀 What is crysfield?
//
//	A pure-Go library that brings together:
//		• Rare-earth tables: ground-state J, Landé factors, Stevens factors
//		• Stevens operators: O20…O66 matrix elements in the |J,m⟩ basis
//		• Hamiltonians: CEF (Stevens expansion) + Zeeman terms, diagonalized
//		  with gonum's symmetric eigensolver
//		• Transition matrices: J_z, J+, J− and dipole transition
//		  probabilities in the eigenbasis
//		• Observables: Boltzmann populations, inelastic peaks, broadened
//		  spectra, magnetic moments, Curie/Van Vleck susceptibility
//		• Rendering: spectrum and susceptibility plots via gonum/plot
//
// ✨ Why choose crysfield?
//
//   - Deterministic – no global state, every routine is a pure computation
//   - Explicit errors – sentinel errors per package, checked with errors.Is
//   - Conventional basis – row index i ↔ m = i−J everywhere, documented
//   - Extensible – each stage consumes plain matrices, so any stage can be
//     replaced by your own eigensolver or peak model
//
// Everything is organized under topical subpackages:
//
//	rareearth/  — tabular ion data (Ce…Yb) and physical constants
//	stevens/    — Stevens operator and ladder-operator matrix elements
//	cef/        — CEF/Zeeman Hamiltonians, diagonalization, cubic (LLW) models
//	transition/ — J_z, J±, and transition-probability matrices in the eigenbasis
//	lineshape/  — Gaussian, Lorentzian, pseudo-Voigt peak profiles
//	spectrum/   — populations, peaks, cross sections, moments, susceptibility
//	plotting/   — PNG/PDF rendering of computed curves
//
// Quick sketch of the pipeline:
//
//	rareearth ─► cef ─► transition ─► spectrum ─► plotting
//	               │                      ▲
//	               └── eigenfunctions ────┘
//
// See each package's doc.go for contracts, complexity and error taxonomy.
package crysfield
