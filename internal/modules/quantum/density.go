package quantum

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// BornRule returns |ψ|², the probability density of a single amplitude.
func BornRule(amplitude complex128) float64 {
	re, im := real(amplitude), imag(amplitude)
	return re*re + im*im
}

// Density applies the Born rule to every complex amplitude.
func Density(amplitude []complex128) []float64 {
	density := make([]float64, len(amplitude))
	for i, a := range amplitude {
		density[i] = BornRule(a)
	}
	return density
}

// RealDensity squares every real amplitude.
func RealDensity(amplitude []float64) []float64 {
	density := make([]float64, len(amplitude))
	floats.MulTo(density, amplitude, amplitude)
	return density
}

// Normalization integrates density over grid with the trapezoidal rule.
// Grids shorter than two points integrate to 0.
func Normalization(grid, density []float64) float64 {
	if len(grid) < 2 || len(grid) != len(density) {
		return 0
	}
	return integrate.Trapezoidal(grid, density)
}
