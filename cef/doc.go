// Package cef assembles and diagonalizes crystal-electric-field (CEF)
// Hamiltonians for trivalent rare-earth ions in the |J,m⟩ basis.
//
// What:
//
//   - Params holds the eleven B_l^m coefficients of a CEF Hamiltonian of at
//     most cubic symmetry (meV).
//   - Model couples an ion (package rareearth) with its parameters and an
//     external magnetic field; it produces:
//     CEFHamiltonian    — Σ B_l^m·O_l^m over the Stevens operators,
//     ZeemanHamiltonian — −gμ_B(J_z·H_z + J_x·H_x),
//     TotalHamiltonian  — their sum, as gonum *mat.SymDense.
//   - Eigensystem diagonalizes the total Hamiltonian with gonum's
//     symmetric eigensolver; eigenvalues ascend and the eigenvector matrix
//     follows the row index i ↔ m = i−J convention expected by package
//     transition.
//   - Cubic models use the Lea–Leask–Wolf (W, x) parameterization:
//     B40 = Wx/F4, B44 = 5·B40, B60 = W(1−|x|)/F6, B64 = −21·B60.
//   - SaveParams / LoadParams persist a model as a YAML parameter file.
//
// Why:
//
//   - The eigenvectors feed the transition-matrix builder; the eigenvalues
//     feed Boltzmann populations and peak energies (package spectrum).
//
// Errors:
//
//   - ErrCubicUnsupported: the ion has no LLW F6 denominator (Ce, Sm, Eu).
//   - ErrEigenFailed: the symmetric eigendecomposition did not converge.
//   - ErrBadParamsFile: a parameter file names an unknown ion or fails to
//     parse.
//
// Units: energies in meV, magnetic fields in Tesla, μ_B in meV/T.
package cef
