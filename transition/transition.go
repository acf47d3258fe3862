package transition

import "math"

// Compute builds J_z, J+, J− and the transition-probability matrix in the
// eigenbasis of a diagonalized CEF Hamiltonian.
//
// Inputs:
//
//   - j: total angular momentum quantum number; must equal (size−1)/2.
//   - squaredJ: j(j+1), passed precomputed; validated against j.
//   - eigenfunctions: size×size real matrix; eigenfunctions[i][k] is the
//     coefficient of basis state |m = i−j⟩ in eigenstate k. Columns are
//     assumed orthonormal (not verified).
//
// Algorithm outline (size = 2j+1):
//
//  1. Diagonal J_z: ⟨k|J_z|k⟩ = Σᵢ eigenfunctions[i][k]²·(i−j); the top
//     basis index (m = j) is added once explicitly, the rest in a loop.
//  2. Diagonal ladder terms: ⟨k|J+|k⟩ accumulates
//     eigenfunctions[i+1][k]·eigenfunctions[i][k]·√(squaredJ − m(m+1))
//     over i = 0…size−2 with m = i−j; ⟨k|J−|k⟩ = ⟨k|J+|k⟩ (real vectors).
//  3. Off-diagonal J_z for each pair r < c, mirrored to (c,r).
//  4. Off-diagonal ladder terms for each pair r < c; the triangles are
//     cross-symmetrized: JPlus[c][r] = JMinus[r][c] and
//     JMinus[c][r] = JPlus[r][c].
//  5. Probability[r][c] = ((2·Jz[r][c])² + JPlus[r][c]² + JMinus[r][c]²)/3,
//     mirrored; the diagonal stays zero.
//
// The returned matrices are freshly allocated; the input is never mutated.
// Complexity: O(size³) time, O(size²) memory.
func Compute(j, squaredJ float64, eigenfunctions [][]float64) (*Matrices, error) {
	size := len(eigenfunctions)
	if size < 1 {
		return nil, ErrInvalidDimension
	}
	for _, row := range eigenfunctions {
		if len(row) != size {
			return nil, ErrRaggedEigenvectors
		}
	}
	if math.Abs(j-float64(size-1)/2) > momentumTol {
		return nil, ErrMomentumDimension
	}
	if math.Abs(squaredJ-j*(j+1)) > momentumTol {
		return nil, ErrInconsistentMomentum
	}

	m := &Matrices{
		Size:        size,
		Jz:          newSquare(size),
		JPlus:       newSquare(size),
		JMinus:      newSquare(size),
		Probability: newSquare(size),
	}

	top := size - 1 // basis index of m = +j
	for row := 0; row < size; row++ {
		// Diagonal expectation values.
		m.Jz[row][row] += eigenfunctions[top][row] * eigenfunctions[top][row] * (float64(top) - j)
		for i := 0; i < size-1; i++ {
			mqn := float64(i) - j
			m.Jz[row][row] += eigenfunctions[i][row] * eigenfunctions[i][row] * mqn
			m.JPlus[row][row] += eigenfunctions[i+1][row] * eigenfunctions[i][row] *
				math.Sqrt(squaredJ-mqn*(mqn+1))
		}
		// For a real eigenvector the lowering expectation equals the raising one.
		m.JMinus[row][row] = m.JPlus[row][row]

		for column := row + 1; column < size; column++ {
			m.Jz[row][column] += eigenfunctions[top][row] * eigenfunctions[top][column] * (float64(top) - j)
			for i := 0; i < size-1; i++ {
				mqn1 := float64(i) - j
				mqn2 := mqn1 + 1
				m.Jz[row][column] += eigenfunctions[i][row] * eigenfunctions[i][column] * mqn1
				root := math.Sqrt(squaredJ - mqn1*mqn2)
				m.JPlus[row][column] += eigenfunctions[i+1][row] * eigenfunctions[i][column] * root
				m.JMinus[row][column] += eigenfunctions[i][row] * eigenfunctions[i+1][column] * root
			}
			twice := 2 * m.Jz[row][column]
			m.Probability[row][column] = (twice*twice +
				m.JPlus[row][column]*m.JPlus[row][column] +
				m.JMinus[row][column]*m.JMinus[row][column]) / 3

			// Mirror the triangle: J_z and the probability are symmetric,
			// the ladder operators swap roles across the diagonal.
			m.Jz[column][row] = m.Jz[row][column]
			m.JPlus[column][row] = m.JMinus[row][column]
			m.JMinus[column][row] = m.JPlus[row][column]
			m.Probability[column][row] = m.Probability[row][column]
		}
	}

	return m, nil
}
