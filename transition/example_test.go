package transition_test

import (
	"fmt"

	"github.com/katalvlaran/crysfield/transition"
)

// ExampleCompute builds the operator matrices for a free J = 1/2 ion whose
// eigenstates coincide with the |J,m⟩ basis states. The only dipole-active
// matrix element is the raising transition |−1/2⟩ → |+1/2⟩.
func ExampleCompute() {
	eigenfunctions := [][]float64{
		{1, 0}, // |m = −1/2⟩
		{0, 1}, // |m = +1/2⟩
	}
	m, err := transition.Compute(0.5, 0.75, eigenfunctions)
	if err != nil {
		fmt.Println("compute:", err)
		return
	}
	fmt.Printf("Jz diag      = [%.1f %.1f]\n", m.Jz[0][0], m.Jz[1][1])
	fmt.Printf("<1|J+|0>     = %.1f\n", m.JPlus[1][0])
	fmt.Printf("P(0 -> 1)    = %.4f\n", m.Probability[0][1])
	// Output:
	// Jz diag      = [-0.5 0.5]
	// <1|J+|0>     = 1.0
	// P(0 -> 1)    = 0.3333
}
