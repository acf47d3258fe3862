// Package transition defines the result type and sentinel errors for the
// transition-matrix builder.
package transition

import "errors"

// Sentinel errors for transition operations.
var (
	// ErrInvalidDimension indicates an empty eigenvector matrix.
	ErrInvalidDimension = errors.New("transition: eigenvector matrix must have at least one row")
	// ErrRaggedEigenvectors indicates the eigenvector matrix is not square.
	ErrRaggedEigenvectors = errors.New("transition: eigenvector matrix must be square")
	// ErrMomentumDimension indicates j does not match the matrix dimension 2j+1.
	ErrMomentumDimension = errors.New("transition: j must equal (size-1)/2")
	// ErrInconsistentMomentum indicates squaredJ differs from j(j+1).
	ErrInconsistentMomentum = errors.New("transition: squaredJ must equal j*(j+1)")
)

// momentumTol bounds the allowed drift between j, squaredJ and the matrix
// dimension; the three are logically redundant and divergence is a caller bug.
const momentumTol = 1e-9

// Matrices holds the four operator matrices in the eigenbasis. All are
// Size×Size; rows and columns index eigenstates, not |J,m⟩ basis states.
type Matrices struct {
	// Size is the dimension 2J+1.
	Size int
	// Jz is the z-component operator; symmetric.
	Jz [][]float64
	// JPlus is the raising operator.
	JPlus [][]float64
	// JMinus is the lowering operator; JMinus[c][r] == JPlus[r][c].
	JMinus [][]float64
	// Probability is the polycrystalline dipole transition probability;
	// symmetric with a zero diagonal.
	Probability [][]float64
}

// newSquare allocates a zeroed size×size matrix.
func newSquare(size int) [][]float64 {
	m := make([][]float64, size)
	for i := range m {
		m[i] = make([]float64, size)
	}
	return m
}
