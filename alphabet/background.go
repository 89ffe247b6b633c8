// SPDX-License-Identifier: MIT

package alphabet

// robinson holds the Robinson & Robinson (1991) amino-acid frequencies in
// AA column order (ACDEFGHIKLMNPQRSTVWY), per thousand residues.
var robinson = [20]float64{
	78.05, // A
	19.25, // C
	53.64, // D
	62.95, // E
	38.56, // F
	73.77, // G
	21.99, // H
	51.42, // I
	57.44, // K
	90.19, // L
	22.43, // M
	44.87, // N
	52.03, // P
	42.64, // Q
	51.29, // R
	71.20, // S
	58.41, // T
	64.41, // V
	13.30, // W
	32.16, // Y
}

// BuiltinBackground returns a fresh copy of the default background for t, in
// column order, and whether one exists.
//
// DNA and RNA use a uniform 0.25; AA uses the Robinson–Robinson frequencies
// normalized to sum to 1. Custom, reduced and ambiguous alphabets have none.
func BuiltinBackground(t Type) ([]float64, bool) {
	switch t {
	case DNA, RNA:
		return []float64{0.25, 0.25, 0.25, 0.25}, true
	case AA:
		var total float64
		for _, f := range robinson {
			total += f
		}
		out := make([]float64, len(robinson))
		for j, f := range robinson {
			out[j] = f / total
		}
		return out, true
	}

	return nil, false
}
