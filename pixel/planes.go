package pixel

// Plane extracts channel c as a single-channel image
func (m *Image) Plane(c int) (*Image, error) {
	if c < 0 || c >= m.channels {
		return nil, ErrChannelOutOfRange
	}

	out := &Image{
		width:    m.width,
		height:   m.height,
		channels: 1,
		Data:     make([]float64, m.width*m.height),
	}
	for i := range out.Data {
		out.Data[i] = m.Data[i*m.channels+c]
	}
	return out, nil
}

// FromPlanes interleaves single-channel planes into one image.
// All planes must be single-channel and share the same width and height.
func FromPlanes(planes ...*Image) (*Image, error) {
	if len(planes) == 0 || planes[0] == nil {
		return nil, ErrInvalidDimensions
	}

	width, height := planes[0].width, planes[0].height
	for _, p := range planes {
		if p == nil || p.channels != 1 || p.width != width || p.height != height {
			return nil, ErrShapeMismatch
		}
	}

	numComponents := len(planes)
	out, err := New(width, height, numComponents)
	if err != nil {
		return nil, err
	}

	numPixels := width * height
	for p := 0; p < numPixels; p++ {
		for c := 0; c < numComponents; c++ {
			out.Data[p*numComponents+c] = planes[c].Data[p]
		}
	}
	return out, nil
}
