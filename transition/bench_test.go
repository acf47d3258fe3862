package transition_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/crysfield/transition"
)

// benchmarkCompute runs the builder for a multiplet of 2j+1 states using a
// dense orthogonal eigenvector matrix (a product of plane rotations). It
// resets the timer after setup and fails on unexpected errors.
func benchmarkCompute(b *testing.B, j float64) {
	size := int(2*j) + 1
	eigf := make([][]float64, size)
	for i := range eigf {
		eigf[i] = make([]float64, size)
		eigf[i][i] = 1
	}
	// Rotate successive basis pairs to densify the matrix.
	for k := 0; k+1 < size; k++ {
		c, s := math.Cos(0.4+float64(k)), math.Sin(0.4+float64(k))
		for i := range eigf {
			a, bb := eigf[i][k], eigf[i][k+1]
			eigf[i][k], eigf[i][k+1] = c*a-s*bb, s*a+c*bb
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := transition.Compute(j, j*(j+1), eigf); err != nil {
			b.Fatalf("Compute failed: %v", err)
		}
	}
}

func BenchmarkCompute_Ce(b *testing.B)  { benchmarkCompute(b, 2.5) } // size 6
func BenchmarkCompute_Pr(b *testing.B)  { benchmarkCompute(b, 4) }   // size 9
func BenchmarkCompute_Ho(b *testing.B)  { benchmarkCompute(b, 8) }   // size 17
func BenchmarkCompute_J25(b *testing.B) { benchmarkCompute(b, 25) }  // stress, size 51
