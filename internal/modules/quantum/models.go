package quantum

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

var (
	// ErrInvalidLevel is returned for a box quantum number below 1.
	ErrInvalidLevel = errors.New("quantum number must be at least 1")
	// ErrInvalidWidth is returned for a box width that is not positive.
	ErrInvalidWidth = errors.New("box width must be positive")
	// ErrInvalidWavelength is returned for a wavelength that is not positive.
	ErrInvalidWavelength = errors.New("wavelength must be positive")
)

// SlitParams configures the double-slit source.
type SlitParams struct {
	Wavelength   float64 // λ
	SlitDistance float64 // d, distance between the two slits
}

// DefaultSlitParams returns λ = 1.0, d = 3.0.
func DefaultSlitParams() SlitParams {
	return SlitParams{Wavelength: 1.0, SlitDistance: 3.0}
}

// WaveNumber returns k = 2π/λ.
func (p SlitParams) WaveNumber() float64 {
	return 2 * math.Pi / p.Wavelength
}

// Interference is the superposed amplitude of both slits over a screen grid.
type Interference struct {
	Params    SlitParams
	Grid      []float64
	Amplitude []complex128
	Density   []float64
}

// BoxParams configures an infinite square well.
type BoxParams struct {
	Width float64 // L
	Level int     // n
}

// DefaultBoxParams returns L = 1.0, n = 2.
func DefaultBoxParams() BoxParams {
	return BoxParams{Width: 1.0, Level: 2}
}

// Validate rejects wells that have no stationary state.
func (p BoxParams) Validate() error {
	if p.Level < 1 {
		return ErrInvalidLevel
	}
	if p.Width <= 0 || math.IsNaN(p.Width) || math.IsInf(p.Width, 0) {
		return ErrInvalidWidth
	}
	return nil
}

// Nodes returns the interior zeros of level n: kL/n for k = 1..n-1.
func (p BoxParams) Nodes() []float64 {
	if p.Level < 2 {
		return []float64{}
	}
	nodes := make([]float64, 0, p.Level-1)
	for k := 1; k < p.Level; k++ {
		nodes = append(nodes, float64(k)*p.Width/float64(p.Level))
	}
	return nodes
}

// Box is the stationary wavefunction of level n over a grid spanning the well.
type Box struct {
	Params    BoxParams
	Grid      []float64
	Amplitude []float64
	Density   []float64
}

// Sphere is the unit-sphere wireframe sampled on an angular mesh, row-major.
type Sphere struct {
	Rows   int
	Cols   int
	Points []r3.Vec
}

// At returns the point at row i, column j.
func (s Sphere) At(i, j int) r3.Vec {
	return s.Points[i*s.Cols+j]
}

// PacketParams configures the tunneling wave packet frame.
type PacketParams struct {
	Center      float64 // x of the envelope peak
	Carrier     float64 // spatial frequency of the carrier
	PhaseSpeed  float64 // carrier phase advance per unit time
	Time        float64
	BarrierLow  float64
	BarrierHigh float64
}

// DefaultPacketParams places a packet left of a barrier spanning [-2, 2].
func DefaultPacketParams() PacketParams {
	return PacketParams{
		Center:      -6,
		Carrier:     5,
		PhaseSpeed:  0.1,
		Time:        0,
		BarrierLow:  -2,
		BarrierHigh: 2,
	}
}

// Packet is a single frame of the tunneling wave packet.
type Packet struct {
	Params    PacketParams
	Grid      []float64
	Amplitude []float64
}
