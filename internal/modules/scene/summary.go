package scene

// Summary is the numeric content of a scene, as served by the viewer API.
type Summary struct {
	Kind   string         `json:"kind" msgpack:"kind"`
	Title  string         `json:"title" msgpack:"title"`
	X      []float64      `json:"x,omitempty" msgpack:"x,omitempty"`
	Y      []float64      `json:"y,omitempty" msgpack:"y,omitempty"`
	Points [][3]float64   `json:"points,omitempty" msgpack:"points,omitempty"`
	Arrow  *[2][3]float64 `json:"arrow,omitempty" msgpack:"arrow,omitempty"`
	Labels []string       `json:"labels,omitempty" msgpack:"labels,omitempty"`
}

// Summary flattens the curve.
func (p Plot2D) Summary() Summary {
	s := Summary{
		Kind:  "2d",
		Title: p.Title,
		X:     append([]float64(nil), p.X...),
		Y:     append([]float64(nil), p.Y...),
	}
	for _, b := range p.Bands {
		if b.Label != "" {
			s.Labels = append(s.Labels, b.Label)
		}
	}
	return s
}

// Summary flattens the wireframe, the arrow and the label texts.
func (p Plot3D) Summary() Summary {
	points := make([][3]float64, len(p.Surface.Points))
	for i, v := range p.Surface.Points {
		points[i] = [3]float64{v.X, v.Y, v.Z}
	}

	tip := p.Arrow.Tip()
	arrow := [2][3]float64{
		{p.Arrow.Origin.X, p.Arrow.Origin.Y, p.Arrow.Origin.Z},
		{tip.X, tip.Y, tip.Z},
	}

	labels := make([]string, 0, len(p.Labels))
	for _, l := range p.Labels {
		labels = append(labels, l.Text)
	}

	return Summary{
		Kind:   "3d",
		Title:  p.Title,
		Points: points,
		Arrow:  &arrow,
		Labels: labels,
	}
}
