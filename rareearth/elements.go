package rareearth

// The table follows Hutchings' convention for the Stevens factors; values
// are the exact rational factors evaluated in float64. Radial integrals are
// the Freeman–Desclaux Dirac–Fock values.
var elements = []Element{
	{
		Symbol:     "Ce",
		FElectrons: 1,
		J:          2.5,
		Lande:      6.0 / 7.0,
		F6:         0,
		Radial:     RadialIntegrals{R2: 0.3666, R4: 0.3108, R6: 0.5119},
		Stevens:    StevensFactors{Alpha: -2.0 / 35.0, Beta: 2.0 / 315.0, Gamma: 0},
	},
	{
		Symbol:     "Pr",
		FElectrons: 2,
		J:          4,
		Lande:      4.0 / 5.0,
		F6:         1260,
		Radial:     RadialIntegrals{R2: 0.3380, R4: 0.2670, R6: 0.4150},
		Stevens:    StevensFactors{Alpha: -52.0 / 2475.0, Beta: -4.0 / 5445.0, Gamma: 272.0 / 4459455.0},
	},
	{
		Symbol:     "Nd",
		FElectrons: 3,
		J:          4.5,
		Lande:      8.0 / 11.0,
		F6:         2520,
		Radial:     RadialIntegrals{R2: 0.3120, R4: 0.2015, R6: 0.3300},
		Stevens:    StevensFactors{Alpha: -7.0 / 1089.0, Beta: -136.0 / 467181.0, Gamma: -1615.0 / 42513471.0},
	},
	{
		Symbol:     "Pm",
		FElectrons: 4,
		J:          4,
		Lande:      3.0 / 5.0,
		F6:         1260,
		Radial:     RadialIntegrals{R2: 0.2917, R4: 0.1488, R6: 0.2787},
		Stevens:    StevensFactors{Alpha: 14.0 / 1815.0, Beta: 952.0 / 2335905.0, Gamma: 2584.0 / 3864861.0},
	},
	{
		Symbol:     "Sm",
		FElectrons: 5,
		J:          2.5,
		Lande:      2.0 / 7.0,
		F6:         0,
		Radial:     RadialIntegrals{R2: 0.2728, R4: 0.1772, R6: 0.2317},
		Stevens:    StevensFactors{Alpha: 13.0 / 315.0, Beta: 26.0 / 10395.0, Gamma: 0},
	},
	{
		Symbol:     "Eu",
		FElectrons: 6,
		J:          0,
		Lande:      0,
		F6:         0,
		Radial:     RadialIntegrals{R2: 0.2569, R4: 0.1584, R6: 0.1985},
		Stevens:    StevensFactors{},
	},
	{
		Symbol:     "Gd",
		FElectrons: 7,
		J:          3.5,
		Lande:      2,
		F6:         1260,
		Radial:     RadialIntegrals{R2: 0.2428, R4: 0.1427, R6: 0.1720},
		Stevens:    StevensFactors{},
	},
	{
		Symbol:     "Tb",
		FElectrons: 8,
		J:          6,
		Lande:      3.0 / 2.0,
		F6:         7560,
		Radial:     RadialIntegrals{R2: 0.2302, R4: 0.1295, R6: 0.1505},
		Stevens:    StevensFactors{Alpha: -1.0 / 99.0, Beta: 2.0 / 16335.0, Gamma: -1.0 / 891891.0},
	},
	{
		Symbol:     "Dy",
		FElectrons: 9,
		J:          7.5,
		Lande:      4.0 / 3.0,
		F6:         13860,
		Radial:     RadialIntegrals{R2: 0.2188, R4: 0.1180, R6: 0.1328},
		Stevens:    StevensFactors{Alpha: -2.0 / 315.0, Beta: -8.0 / 135135.0, Gamma: 4.0 / 3864861.0},
	},
	{
		Symbol:     "Ho",
		FElectrons: 10,
		J:          8,
		Lande:      5.0 / 4.0,
		F6:         13860,
		Radial:     RadialIntegrals{R2: 0.2085, R4: 0.1081, R6: 0.1810},
		Stevens:    StevensFactors{Alpha: -1.0 / 450.0, Beta: -1.0 / 30030.0, Gamma: -5.0 / 3864861.0},
	},
	{
		Symbol:     "Er",
		FElectrons: 11,
		J:          7.5,
		Lande:      6.0 / 5.0,
		F6:         13860,
		Radial:     RadialIntegrals{R2: 0.1991, R4: 0.0996, R6: 0.1058},
		Stevens:    StevensFactors{Alpha: 4.0 / 1575.0, Beta: 2.0 / 45045.0, Gamma: 8.0 / 3864861.0},
	},
	{
		Symbol:     "Tm",
		FElectrons: 12,
		J:          6,
		Lande:      7.0 / 6.0,
		F6:         7560,
		Radial:     RadialIntegrals{R2: 0.1905, R4: 0.0921, R6: 0.0953},
		Stevens:    StevensFactors{Alpha: 1.0 / 99.0, Beta: 8.0 / 49005.0, Gamma: -5.0 / 891891.0},
	},
	{
		Symbol:     "Yb",
		FElectrons: 13,
		J:          3.5,
		Lande:      8.0 / 7.0,
		F6:         1260,
		Radial:     RadialIntegrals{R2: 0.1826, R4: 0.0854, R6: 0.0863},
		Stevens:    StevensFactors{Alpha: 2.0 / 63.0, Beta: -2.0 / 1155.0, Gamma: 4.0 / 27027.0},
	},
}

// Lookup returns the tabulated Element for the given chemical symbol.
// Returns ErrUnknownElement for symbols outside Ce…Yb.
// Complexity: O(n) over a 13-entry table.
func Lookup(symbol string) (Element, error) {
	for _, e := range elements {
		if e.Symbol == symbol {
			return e, nil
		}
	}
	return Element{}, ErrUnknownElement
}

// Symbols returns the chemical symbols of every tabulated ion, in order of
// increasing 4f electron count.
func Symbols() []string {
	out := make([]string, len(elements))
	for i, e := range elements {
		out[i] = e.Symbol
	}
	return out
}

// CubicSymbols returns the symbols of the ions supported by the cubic LLW
// parameterization (nonzero F6).
func CubicSymbols() []string {
	out := make([]string, 0, len(elements))
	for _, e := range elements {
		if e.SupportsCubic() {
			out = append(out, e.Symbol)
		}
	}
	return out
}
