package cef

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/crysfield/rareearth"
)

// modelFile is the on-disk YAML layout of a parameter set. The ion is
// stored by symbol and re-resolved against the rareearth table on load, so
// files never carry (possibly stale) physical constants.
type modelFile struct {
	Crystal    string `yaml:"crystal,omitempty"`
	RareEarth  string `yaml:"rare_earth"`
	Parameters Params `yaml:"parameters"`
	Field      Field  `yaml:"magnet_field,omitempty"`
}

// SaveParams writes the model as a YAML parameter file.
func SaveParams(w io.Writer, md *Model) error {
	out, err := yaml.Marshal(modelFile{
		Crystal:    md.Crystal,
		RareEarth:  md.Ion.Symbol,
		Parameters: md.Params,
		Field:      md.Field,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadParamsFile, err)
	}
	_, err = w.Write(out)
	return err
}

// LoadParams reads a YAML parameter file and resolves its ion symbol.
// Returns ErrBadParamsFile for malformed YAML or an unknown ion.
func LoadParams(r io.Reader) (*Model, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var mf modelFile
	if err = yaml.Unmarshal(raw, &mf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadParamsFile, err)
	}
	ion, err := rareearth.Lookup(mf.RareEarth)
	if err != nil {
		return nil, fmt.Errorf("%w: rare_earth %q", ErrBadParamsFile, mf.RareEarth)
	}
	return &Model{
		Crystal: mf.Crystal,
		Ion:     ion,
		Params:  mf.Parameters,
		Field:   mf.Field,
	}, nil
}
