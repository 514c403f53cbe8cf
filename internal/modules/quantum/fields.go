// Package quantum evaluates the closed-form wavefunctions plotted by quantumlab.
package quantum

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
)

// DoubleSlit superposes the waves of two point slits at every screen position x.
//
// Both path lengths are taken as sqrt(x² + (±d/2)²). Squaring drops the sign of the
// slit offset, so r1 == r2 and the resulting density is flat at 4.
func DoubleSlit(grid []float64, p SlitParams) (Interference, error) {
	if p.Wavelength <= 0 || math.IsNaN(p.Wavelength) {
		return Interference{}, ErrInvalidWavelength
	}

	k := p.WaveNumber()
	half := p.SlitDistance / 2
	amplitude := make([]complex128, len(grid))
	for i, x := range grid {
		r1 := math.Sqrt(x*x + half*half)
		r2 := math.Sqrt(x*x + (-half)*(-half))
		amplitude[i] = cmplx.Exp(complex(0, k*r1)) + cmplx.Exp(complex(0, k*r2))
	}

	return Interference{
		Params:    p,
		Grid:      append([]float64(nil), grid...),
		Amplitude: amplitude,
		Density:   Density(amplitude),
	}, nil
}

// ParticleInBox evaluates ψn(x) = sqrt(2/L)·sin(nπx/L) over grid.
func ParticleInBox(grid []float64, p BoxParams) (Box, error) {
	if err := p.Validate(); err != nil {
		return Box{}, err
	}

	norm := math.Sqrt(2 / p.Width)
	wave := float64(p.Level) * math.Pi / p.Width
	amplitude := make([]float64, len(grid))
	for i, x := range grid {
		amplitude[i] = norm * math.Sin(wave*x)
	}

	return Box{
		Params:    p,
		Grid:      append([]float64(nil), grid...),
		Amplitude: amplitude,
		Density:   RealDensity(amplitude),
	}, nil
}

// WavePacket evaluates exp(-(x-c)²)·sin(k(x-c) + ωt), one frame of a packet heading for the barrier.
func WavePacket(grid []float64, p PacketParams) Packet {
	amplitude := make([]float64, len(grid))
	for i, x := range grid {
		rel := x - p.Center
		amplitude[i] = math.Exp(-rel*rel) * math.Sin(p.Carrier*rel+p.PhaseSpeed*p.Time)
	}

	return Packet{
		Params:    p,
		Grid:      append([]float64(nil), grid...),
		Amplitude: amplitude,
	}
}

// Peak returns the grid position and value of the largest density sample.
// An empty density yields (0, 0).
func Peak(grid, density []float64) (x, value float64) {
	if len(density) == 0 || len(grid) != len(density) {
		return 0, 0
	}
	i := floats.MaxIdx(density)
	return grid[i], density[i]
}
