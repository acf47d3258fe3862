// Package transition builds the angular-momentum operator matrices J_z, J+,
// J− and the dipole transition probabilities between the eigenstates of a
// diagonalized crystal-electric-field Hamiltonian.
//
// What:
//
//   - Compute consumes the total angular momentum J, its precomputed
//     normalization J(J+1), and the real eigenvector matrix of the
//     Hamiltonian in the |J,m⟩ basis; it returns the four square matrices
//     of size 2J+1 expressed in the eigenbasis.
//   - The transition probability between eigenstates r and c is
//     ((2·Jz[r][c])² + (J+[r][c])² + (J−[r][c])²) / 3,
//     the polycrystalline average of the squared dipole matrix elements.
//
// Basis convention:
//
//   - Row index i of the eigenvector matrix corresponds to the magnetic
//     quantum number m = i − J: index 0 ↔ m = −J, index 2J ↔ m = +J.
//     Sign and ordering of m fix the ladder-operator coefficients, so this
//     mapping is load-bearing and must match the eigensolver's (package
//     cef emits it).
//   - Column k of the eigenvector matrix is eigenstate k; entries are real
//     and the columns are assumed orthonormal (not verified).
//
// Guarantees on return:
//
//   - Jz and Probability are exactly symmetric.
//   - JMinus[c][r] == JPlus[r][c] for every r, c (the lowering operator is
//     the adjoint of the raising operator for real eigenvectors).
//   - Probability has an all-zero diagonal: no self-transition intensity is
//     defined.
//
// Errors:
//
//   - ErrInvalidDimension: the eigenvector matrix is empty.
//   - ErrRaggedEigenvectors: the eigenvector matrix is not square.
//   - ErrMomentumDimension: j does not equal (size−1)/2.
//   - ErrInconsistentMomentum: squaredJ differs from j(j+1).
//
// Complexity: O(size³) time, O(size²) memory. The (r,c) pairs write
// disjoint cells and read only the shared eigenvector matrix, so the
// off-diagonal pass could be partitioned across pairs without locking;
// the implementation runs single-threaded.
package transition
