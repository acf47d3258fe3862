// Package cef defines the model types, options and sentinel errors for
// Hamiltonian assembly and diagonalization.
package cef

import (
	"errors"

	"github.com/katalvlaran/crysfield/rareearth"
)

// Sentinel errors for cef operations.
var (
	// ErrCubicUnsupported indicates an ion outside the LLW cubic scheme.
	ErrCubicUnsupported = errors.New("cef: ion has no cubic LLW parameterization")
	// ErrEigenFailed indicates the symmetric eigendecomposition failed.
	ErrEigenFailed = errors.New("cef: symmetric eigendecomposition failed")
	// ErrBadParamsFile indicates an unreadable or inconsistent parameter file.
	ErrBadParamsFile = errors.New("cef: invalid parameter file")
)

// Params holds the CEF coefficients B_l^m in meV. The zero value is the
// free-ion limit (no crystal-field splitting).
type Params struct {
	B20 float64 `yaml:"B20,omitempty"`
	B40 float64 `yaml:"B40,omitempty"`
	B60 float64 `yaml:"B60,omitempty"`
	B22 float64 `yaml:"B22,omitempty"`
	B42 float64 `yaml:"B42,omitempty"`
	B62 float64 `yaml:"B62,omitempty"`
	B43 float64 `yaml:"B43,omitempty"`
	B63 float64 `yaml:"B63,omitempty"`
	B44 float64 `yaml:"B44,omitempty"`
	B64 float64 `yaml:"B64,omitempty"`
	B66 float64 `yaml:"B66,omitempty"`
}

// Field is an external magnetic field in Tesla. Z couples to J_z on the
// diagonal; X couples to J_x on the first superdiagonal.
type Field struct {
	Z float64 `yaml:"z"`
	X float64 `yaml:"x"`
}

// LLW is the Lea–Leask–Wolf parameterization of a cubic CEF: W sets the
// overall energy scale (meV), X ∈ [−1,1] balances fourth- against
// sixth-order terms.
type LLW struct {
	W float64 `yaml:"w"`
	X float64 `yaml:"x"`
}

// Model describes one rare-earth compound: the host crystal (free-form
// label), the ion, the CEF coefficients and the applied field.
type Model struct {
	Crystal string
	Ion     rareearth.Element
	Params  Params
	Field   Field
}

// New returns a Model for the given ion and CEF coefficients with no
// applied field.
func New(ion rareearth.Element, p Params) *Model {
	return &Model{Ion: ion, Params: p}
}

// EigenOptions tunes Eigensystem.
type EigenOptions struct {
	// GroundStateZero shifts the spectrum so the lowest eigenvalue is 0.
	GroundStateZero bool
}

// DefaultEigenOptions returns the conventional settings: level energies
// measured from the ground state.
func DefaultEigenOptions() EigenOptions {
	return EigenOptions{GroundStateZero: true}
}

// Eigensystem is the diagonalized total Hamiltonian.
type Eigensystem struct {
	// Values are the level energies in meV, ascending.
	Values []float64
	// Vectors[i][k] is the coefficient of basis state |m = i−J⟩ in
	// eigenstate k; columns are orthonormal.
	Vectors [][]float64
}
