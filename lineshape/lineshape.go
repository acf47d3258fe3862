package lineshape

import "math"

// Profile is a normalized line shape: unit integral over (−∞,∞), peaked at
// center, with one width parameter (σ for Gaussian, γ for Lorentzian).
type Profile func(arg, center, width float64) float64

// Gaussian returns the normalized Gauss profile at arg.
// FWHM is 2√(2·ln2)·sigma; the maximum is 1/(sigma·√(2π)).
func Gaussian(arg, center, sigma float64) float64 {
	d := arg - center
	return math.Exp(-d*d/(2*sigma*sigma)) / (sigma * math.Sqrt(2*math.Pi))
}

// Lorentzian returns the normalized Lorentz profile at arg.
// FWHM is 2·gamma; the maximum is 1/(π·gamma).
func Lorentzian(arg, center, gamma float64) float64 {
	d := arg - center
	return (gamma / math.Pi) / (d*d + gamma*gamma)
}

// PseudoVoigt returns the normalized pseudo-Voigt profile at arg: the
// Thompson–Cox–Hastings linear mixture η·L + (1−η)·G, where the total FWHM
// follows the fifth-order combination of the Gaussian and Lorentzian
// widths and η its cubic mixing polynomial.
func PseudoVoigt(arg, center, sigma, gamma float64) float64 {
	fg := 2 * sigma * math.Sqrt(2*math.Log(2))
	fl := 2 * gamma
	fg2 := fg * fg
	fl2 := fl * fl
	total := math.Pow(
		fg2*fg2*fg+
			2.69269*fg2*fg2*fl+
			2.42843*fg2*fg*fl2+
			4.47163*fg2*fl2*fl+
			0.07842*fg*fl2*fl2+
			fl2*fl2*fl,
		0.2,
	)
	ratio := fl / total
	eta := 1.36603*ratio - 0.47719*ratio*ratio + 0.11116*ratio*ratio*ratio
	return (1-eta)*Gaussian(arg, center, sigma) + eta*Lorentzian(arg, center, gamma)
}

// Peak is one amplitude-scaled profile term of a multi-peak model.
type Peak struct {
	Center    float64
	Width     float64
	Amplitude float64
}

// MultiPeak evaluates background + Σ amplitudeᵢ·profile(arg, centerᵢ, widthᵢ).
func MultiPeak(profile Profile, arg, background float64, peaks ...Peak) float64 {
	sum := background
	for _, p := range peaks {
		sum += p.Amplitude * profile(arg, p.Center, p.Width)
	}
	return sum
}
