package cef

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/crysfield/transition"
)

// Eigensystem diagonalizes the total Hamiltonian (CEF + Zeeman) with
// gonum's symmetric eigensolver. Eigenvalues are returned ascending; with
// opts.GroundStateZero the whole spectrum is shifted so the ground level
// sits at zero. Vectors follow the row index i ↔ m = i−J convention.
// Complexity: O(size³).
func (md *Model) Eigensystem(opts EigenOptions) (*Eigensystem, error) {
	return Diagonalize(md.TotalHamiltonian(), opts)
}

// Diagonalize factorizes an arbitrary symmetric Hamiltonian in the |J,m⟩
// basis. Exposed separately so callers with their own Hamiltonian terms
// (exchange, quadrupolar, ...) can reuse the eigensolver and the basis
// convention.
func Diagonalize(h *mat.SymDense, opts EigenOptions) (*Eigensystem, error) {
	var eig mat.EigenSym
	if ok := eig.Factorize(h, true); !ok {
		return nil, ErrEigenFailed
	}
	values := eig.Values(nil)
	if opts.GroundStateZero && len(values) > 0 {
		ground := values[0] // ascending order
		for i := range values {
			values[i] -= ground
		}
	}

	var dense mat.Dense
	eig.VectorsTo(&dense)
	size, _ := dense.Dims()
	vectors := make([][]float64, size)
	for i := 0; i < size; i++ {
		vectors[i] = make([]float64, size)
		for k := 0; k < size; k++ {
			vectors[i][k] = dense.At(i, k)
		}
	}

	return &Eigensystem{Values: values, Vectors: vectors}, nil
}

// Transitions diagonalizes the model and builds the angular-momentum and
// transition-probability matrices in the resulting eigenbasis.
func (md *Model) Transitions(opts EigenOptions) (*Eigensystem, *transition.Matrices, error) {
	es, err := md.Eigensystem(opts)
	if err != nil {
		return nil, nil, err
	}
	tm, err := transition.Compute(md.Ion.J, md.Ion.SquaredJ(), es.Vectors)
	if err != nil {
		return nil, nil, err
	}
	return es, tm, nil
}
