// Package stevens computes matrix elements of the Stevens operator
// equivalents O_l^m in the |J,m⟩ basis.
//
// What:
//
//   - Lowering: the square-rooted product of repeated lowering-operator
//     matrix elements, √∏ₛ (J(J+1) − (n−s)(n−s−1)).
//   - Element: ⟨m₁|O_l^m|m₂⟩ for the eleven operators appearing in a CEF
//     Hamiltonian of at most cubic symmetry:
//     O20, O40, O60 (diagonal, m₂ = m₁) and
//     O22, O42, O62, O43, O63, O44, O64, O66 (coupling m₂ = m₁ + Δm).
//
// Why:
//
//   - A CEF Hamiltonian is the sum Σ B_l^m · O_l^m; package cef assembles
//     it row by row from these matrix elements.
//
// Conventions:
//
//   - squaredJ is always J(J+1), passed explicitly so callers precompute it
//     once per model.
//   - Operator.Delta reports the |Δm| the operator couples (0, 2, 3, 4, 6);
//     Element takes the lower m as m1 and the upper m as m2 = m1 + Δm.
//
// All functions are pure and allocation-free.
package stevens
