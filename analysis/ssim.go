package analysis

import "github.com/thundermage117/codec/pixel"

const (
	ssimC1     = 6.5025  // (0.01*255)^2
	ssimC2     = 58.5225 // (0.03*255)^2
	ssimKernel = 8
	ssimStride = 4
)

// window accumulates statistics over the square of offsets
// [-half, half] around (x, y), clipped to the plane.
type window struct {
	x0, x1, y0, y1 int
	width          int
	count          float64
}

func newWindow(x, y, width, height int) window {
	half := ssimKernel / 2
	w := window{
		x0:    max(0, x-half),
		x1:    min(width-1, x+half),
		y0:    max(0, y-half),
		y1:    min(height-1, y+half),
		width: width,
	}
	w.count = float64((w.x1 - w.x0 + 1) * (w.y1 - w.y0 + 1))
	return w
}

func (w window) mean(d []float64) float64 {
	var sum float64
	for y := w.y0; y <= w.y1; y++ {
		for x := w.x0; x <= w.x1; x++ {
			sum += d[y*w.width+x]
		}
	}
	return sum / w.count
}

func (w window) covariance(d1, d2 []float64, m1, m2 float64) float64 {
	var sum float64
	for y := w.y0; y <= w.y1; y++ {
		for x := w.x0; x <= w.x1; x++ {
			i := y*w.width + x
			sum += (d1[i] - m1) * (d2[i] - m2)
		}
	}
	return sum / w.count
}

// SSIM returns the mean structural similarity of channel 0 of a and b.
//
// Statistics use a uniform window reaching ssimKernel/2 samples each way
// from the centre, clipped at the edges, with centres every ssimStride
// samples. It returns 0 if the shapes differ; identical inputs give exactly 1.
func SSIM(a, b *pixel.Image) float64 {
	if !a.SameShape(b) {
		return 0
	}

	d1, d2 := a.Data, b.Data
	if a.Channels() != 1 {
		pa, err := a.Plane(0)
		if err != nil {
			return 0
		}
		pb, err := b.Plane(0)
		if err != nil {
			return 0
		}
		d1, d2 = pa.Data, pb.Data
	}

	width, height := a.Width(), a.Height()
	var total float64
	n := 0
	for y := 0; y < height; y += ssimStride {
		for x := 0; x < width; x += ssimStride {
			w := newWindow(x, y, width, height)
			ux := w.mean(d1)
			uy := w.mean(d2)
			sx2 := w.covariance(d1, d1, ux, ux)
			sy2 := w.covariance(d2, d2, uy, uy)
			sxy := w.covariance(d1, d2, ux, uy)

			num := (2*ux*uy + ssimC1) * (2*sxy + ssimC2)
			den := (ux*ux + uy*uy + ssimC1) * (sx2 + sy2 + ssimC2)
			total += num / den
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return total / float64(n)
}
