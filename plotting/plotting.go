package plotting

import (
	"errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/crysfield/spectrum"
)

// Sentinel errors for plotting operations.
var (
	// ErrLengthMismatch indicates x and y series of differing lengths.
	ErrLengthMismatch = errors.New("plotting: series lengths must match")
	// ErrEmptySeries indicates an empty data series.
	ErrEmptySeries = errors.New("plotting: series must not be empty")
)

// Spectrum plots a broadened scattering intensity against energy transfer.
func Spectrum(energies, intensity []float64, title string) (*plot.Plot, error) {
	line, err := lineSeries(energies, intensity)
	if err != nil {
		return nil, err
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Energy transfer (meV)"
	p.Y.Label.Text = "S(Q,ω) (mbarn·sr⁻¹·meV⁻¹)"
	p.Add(line)
	return p, nil
}

// InverseSusceptibility plots 1/χ of a temperature sweep; a straight line
// signals Curie–Weiss behavior, curvature reveals crystal-field effects.
func InverseSusceptibility(curve []spectrum.ChiPoint, title string) (*plot.Plot, error) {
	if len(curve) == 0 {
		return nil, ErrEmptySeries
	}
	xs := make([]float64, len(curve))
	ys := make([]float64, len(curve))
	for i, pt := range curve {
		xs[i] = pt.Kelvin
		ys[i] = pt.Inverse
	}
	line, err := lineSeries(xs, ys)
	if err != nil {
		return nil, err
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Temperature (K)"
	p.Y.Label.Text = "1/χ (meV/g²μ_B²)"
	p.Add(line)
	return p, nil
}

// Save writes the figure at the conventional 6×4 inch size; the format
// follows the file extension.
func Save(p *plot.Plot, path string) error {
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

// lineSeries builds a plotter.Line from parallel x/y slices.
func lineSeries(xs, ys []float64) (*plotter.Line, error) {
	if len(xs) != len(ys) {
		return nil, ErrLengthMismatch
	}
	if len(xs) == 0 {
		return nil, ErrEmptySeries
	}
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return plotter.NewLine(pts)
}
