package transition_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crysfield/transition"
)

const eps = 1e-12

// identity returns the size×size identity matrix: eigenstates equal to the
// |J,m⟩ basis states.
func identity(size int) [][]float64 {
	m := make([][]float64, size)
	for i := range m {
		m[i] = make([]float64, size)
		m[i][i] = 1
	}
	return m
}

// TestCompute_Validation exercises the error taxonomy.
func TestCompute_Validation(t *testing.T) {
	cases := []struct {
		name     string
		j        float64
		squaredJ float64
		eigf     [][]float64
		err      error
	}{
		{"Empty", 0, 0, [][]float64{}, transition.ErrInvalidDimension},
		{"Ragged", 0.5, 0.75, [][]float64{{1}, {0, 1}}, transition.ErrRaggedEigenvectors},
		{"NotSquare", 0.5, 0.75, [][]float64{{1, 0}}, transition.ErrRaggedEigenvectors},
		{"WrongJ", 1, 2, identity(2), transition.ErrMomentumDimension},
		{"DriftedSquaredJ", 0.5, 0.80, identity(2), transition.ErrInconsistentMomentum},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := transition.Compute(tc.j, tc.squaredJ, tc.eigf)
			if !errors.Is(err, tc.err) {
				t.Errorf("Compute error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestCompute_SingleState covers the degenerate J = 0 multiplet: every
// matrix reduces to a single zero entry and no index runs out of range.
func TestCompute_SingleState(t *testing.T) {
	m, err := transition.Compute(0, 0, [][]float64{{1}})
	require.NoError(t, err)
	require.Equal(t, 1, m.Size)
	require.Equal(t, 0.0, m.Jz[0][0])
	require.Equal(t, 0.0, m.JPlus[0][0])
	require.Equal(t, 0.0, m.JMinus[0][0])
	require.Equal(t, 0.0, m.Probability[0][0])
}

// TestCompute_SpinHalfIdentity pins the J = 1/2 case with the identity
// eigenbasis: J_z is diag(−1/2, +1/2), the only nonzero ladder element is
// the raising transition from the m=−1/2 state to the m=+1/2 state, and the
// polycrystalline transition probability is 1/3 in each direction.
func TestCompute_SpinHalfIdentity(t *testing.T) {
	m, err := transition.Compute(0.5, 0.75, identity(2))
	require.NoError(t, err)

	require.InDelta(t, -0.5, m.Jz[0][0], eps)
	require.InDelta(t, 0.5, m.Jz[1][1], eps)
	require.InDelta(t, 0, m.Jz[0][1], eps)
	require.InDelta(t, 0, m.Jz[1][0], eps)

	// ⟨1|J+|0⟩ = √(3/4 − (−1/2)(+1/2)) = 1 and its adjoint mirror.
	require.InDelta(t, 1, m.JPlus[1][0], eps)
	require.InDelta(t, 1, m.JMinus[0][1], eps)
	require.InDelta(t, 0, m.JPlus[0][1], eps)
	require.InDelta(t, 0, m.JMinus[1][0], eps)

	want := 1.0 / 3.0 // ((2·0)² + 0² + 1²)/3
	require.InDelta(t, want, m.Probability[0][1], eps)
	require.InDelta(t, want, m.Probability[1][0], eps)
	require.Equal(t, 0.0, m.Probability[0][0])
	require.Equal(t, 0.0, m.Probability[1][1])
}

// TestCompute_IdentityEigenbasis verifies that with eigenstates equal to
// basis states J_z is exactly diagonal with entries i − j.
func TestCompute_IdentityEigenbasis(t *testing.T) {
	const j = 2.0 // size 5
	m, err := transition.Compute(j, j*(j+1), identity(5))
	require.NoError(t, err)
	for i := 0; i < m.Size; i++ {
		require.InDelta(t, float64(i)-j, m.Jz[i][i], eps, "Jz[%d][%d]", i, i)
		for c := 0; c < m.Size; c++ {
			if c != i {
				require.InDelta(t, 0, m.Jz[i][c], eps, "Jz[%d][%d]", i, c)
			}
		}
	}
}

// mixedEigenvectors returns an orthonormal, non-trivial real eigenvector
// matrix for a 4-state system (J = 3/2): two Givens rotations applied to
// the identity.
func mixedEigenvectors() [][]float64 {
	c1, s1 := math.Cos(0.3), math.Sin(0.3)
	c2, s2 := math.Cos(1.1), math.Sin(1.1)
	return [][]float64{
		{c1, 0, 0, -s1},
		{0, c2, -s2, 0},
		{0, s2, c2, 0},
		{s1, 0, 0, c1},
	}
}

// TestCompute_SymmetryInvariants checks the documented symmetry guarantees on a
// non-trivial eigenbasis: J_z and Probability symmetric, JMinus the
// transpose of JPlus, zero probability diagonal.
func TestCompute_SymmetryInvariants(t *testing.T) {
	const j = 1.5
	m, err := transition.Compute(j, j*(j+1), mixedEigenvectors())
	require.NoError(t, err)

	for r := 0; r < m.Size; r++ {
		require.Equal(t, 0.0, m.Probability[r][r], "Probability[%d][%d]", r, r)
		for c := 0; c < m.Size; c++ {
			require.InDelta(t, m.Jz[r][c], m.Jz[c][r], eps, "Jz asymmetry at (%d,%d)", r, c)
			require.InDelta(t, m.Probability[r][c], m.Probability[c][r], eps, "Probability asymmetry at (%d,%d)", r, c)
			require.InDelta(t, m.JPlus[r][c], m.JMinus[c][r], eps, "adjoint mismatch at (%d,%d)", r, c)
		}
	}
}

// TestCompute_TraceJz checks that the trace of J_z is preserved under the
// basis change: Σ m over m = −j…j is zero for any orthonormal eigenbasis.
func TestCompute_TraceJz(t *testing.T) {
	const j = 1.5
	m, err := transition.Compute(j, j*(j+1), mixedEigenvectors())
	require.NoError(t, err)
	trace := 0.0
	for i := 0; i < m.Size; i++ {
		trace += m.Jz[i][i]
	}
	require.InDelta(t, 0, trace, eps)
}

// TestCompute_SignFlip negates one eigenvector column and verifies that
// diagonals and probabilities are unchanged while off-diagonal operator
// entries involving that eigenstate flip sign.
func TestCompute_SignFlip(t *testing.T) {
	const j = 1.5
	const flipped = 2
	eigf := mixedEigenvectors()
	base, err := transition.Compute(j, j*(j+1), eigf)
	require.NoError(t, err)

	for i := range eigf {
		eigf[i][flipped] = -eigf[i][flipped]
	}
	neg, err := transition.Compute(j, j*(j+1), eigf)
	require.NoError(t, err)

	for r := 0; r < base.Size; r++ {
		require.InDelta(t, base.Jz[r][r], neg.Jz[r][r], eps)
		require.InDelta(t, base.JPlus[r][r], neg.JPlus[r][r], eps)
		for c := 0; c < base.Size; c++ {
			require.InDelta(t, base.Probability[r][c], neg.Probability[r][c], eps,
				"Probability changed at (%d,%d)", r, c)
			if r == c {
				continue
			}
			sign := 1.0
			if (r == flipped) != (c == flipped) {
				sign = -1
			}
			require.InDelta(t, sign*base.Jz[r][c], neg.Jz[r][c], eps, "Jz at (%d,%d)", r, c)
			require.InDelta(t, sign*base.JPlus[r][c], neg.JPlus[r][c], eps, "JPlus at (%d,%d)", r, c)
			require.InDelta(t, sign*base.JMinus[r][c], neg.JMinus[r][c], eps, "JMinus at (%d,%d)", r, c)
		}
	}
}

// TestCompute_InputNotMutated guards the read-only contract on the
// eigenvector matrix.
func TestCompute_InputNotMutated(t *testing.T) {
	eigf := mixedEigenvectors()
	want := mixedEigenvectors()
	const j = 1.5
	_, err := transition.Compute(j, j*(j+1), eigf)
	require.NoError(t, err)
	require.Equal(t, want, eigf)
}
