package stevens

import "math"

// Operator enumerates the Stevens operator equivalents O_l^m supported by
// the cubic and lower-symmetry CEF Hamiltonians.
type Operator int

const (
	// O20, O40, O60 are diagonal in m.
	O20 Operator = iota
	O40
	O60
	// O22, O42, O62 couple states with Δm = 2.
	O22
	O42
	O62
	// O43, O63 couple states with Δm = 3.
	O43
	O63
	// O44, O64 couple states with Δm = 4.
	O44
	O64
	// O66 couples states with Δm = 6.
	O66
)

// Delta returns the |Δm| coupled by the operator: 0 for the diagonal
// operators, otherwise the trailing digit of the operator name.
func (op Operator) Delta() int {
	switch op {
	case O20, O40, O60:
		return 0
	case O22, O42, O62:
		return 2
	case O43, O63:
		return 3
	case O44, O64:
		return 4
	case O66:
		return 6
	}
	return -1
}

// String returns the conventional O_l^m name, e.g. "O44".
func (op Operator) String() string {
	names := [...]string{"O20", "O40", "O60", "O22", "O42", "O62", "O43", "O63", "O44", "O64", "O66"}
	if op < 0 || int(op) >= len(names) {
		return "O??"
	}
	return names[op]
}

// Lowering returns the matrix element of degree successive applications of
// the lowering operator J− starting from magnetic quantum number n:
//
//	√( ∏_{s=0}^{degree-1} [J(J+1) − (n−s)(n−s−1)] )
//
// The product vanishes when the chain reaches m = −J; a chain that would
// step past the bottom of the multiplet returns 0 rather than NaN.
// Complexity: O(degree).
func Lowering(n, squaredJ float64, degree int) float64 {
	result := 1.0
	for s := 0; s < degree; s++ {
		step := n - float64(s)
		result *= squaredJ - step*(step-1)
	}
	if result <= 0 {
		return 0
	}
	return math.Sqrt(result)
}

// Element returns the matrix element ⟨m1|op|m2⟩ with m2 = m1 + op.Delta().
// For the diagonal operators m2 is ignored. squaredJ must be J(J+1).
//
// The polynomials follow Hutchings' operator-equivalent tables; the
// off-diagonal elements carry the ½ or ¼ prefactors of the (O_l^m + h.c.)
// symmetrized combinations.
func Element(op Operator, squaredJ, m1, m2 float64) float64 {
	x := squaredJ
	m := m1
	n := m2
	switch op {
	case O20:
		return 3*m*m - x
	case O40:
		m2p := m * m
		return 35*m2p*m2p - 30*x*m2p + 25*m2p - 6*x + 3*x*x
	case O60:
		m2p := m * m
		m4p := m2p * m2p
		return 231*m4p*m2p - 315*x*m4p + 735*m4p +
			105*x*x*m2p - 525*x*m2p + 294*m2p -
			5*x*x*x + 40*x*x - 60*x
	case O22:
		return 0.5 * Lowering(n, x, 2)
	case O42:
		return (3.5*(m*m+n*n) - x - 5) * 0.5 * Lowering(n, x, 2)
	case O62:
		m2p, n2p := m*m, n*n
		return (16.5*(m2p*m2p+n2p*n2p) - 9*(m2p+n2p)*x - 61.5*(m2p+n2p) +
			x*x + 10*x + 102) * 0.5 * Lowering(n, x, 2)
	case O43:
		return 0.25 * Lowering(n, x, 3) * (m + n)
	case O63:
		return 0.25 * (11*(m*m*m+n*n*n) - 3*(m+n)*x - 59*(m+n)) * Lowering(n, x, 3)
	case O44:
		return 0.5 * Lowering(n, x, 4)
	case O64:
		return (5.5*(m*m+n*n) - x - 38) * 0.5 * Lowering(n, x, 4)
	case O66:
		return 0.5 * Lowering(n, x, 6)
	}
	return 0
}

// Diagonal returns ⟨m|op|m⟩ for the three diagonal operators; it is a
// convenience wrapper over Element with m2 unused.
func Diagonal(op Operator, squaredJ, m float64) float64 {
	return Element(op, squaredJ, m, m)
}
