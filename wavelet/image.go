package wavelet

// MaxLevels caps the number of decomposition levels for a full image
const MaxLevels = 6

// Extent is the even-rounded region transformed at one decomposition level
type Extent struct {
	W int
	H int
}

// Levels returns how many times width and height can both be halved while
// each remains at least 2, capped at MaxLevels.
func Levels(width, height int) int {
	levels := 0
	w, h := width, height
	for w >= 2 && h >= 2 {
		levels++
		w >>= 1
		h >>= 1
	}
	return min(levels, MaxLevels)
}

// Layout returns the region transformed at each level, finest first.
// Each region is the previous LL quadrant rounded down to even dimensions;
// an odd trailing row or column is left untransformed at that level.
// Layout stops early once a region would be smaller than 2x2.
func Layout(width, height, levels int) []Extent {
	layout := make([]Extent, 0, levels)
	w, h := width, height
	for lev := 0; lev < levels; lev++ {
		if w < 2 || h < 2 {
			break
		}
		e := Extent{W: w &^ 1, H: h &^ 1}
		layout = append(layout, e)
		w, h = e.W/2, e.H/2
	}
	return layout
}

// ForwardImage applies a multi-level 2D Haar decomposition in-place to a
// row-major single-plane buffer of width*height samples.
// Each level transforms rows then columns of the current region.
func ForwardImage(data []float64, width, height, levels int) {
	layout := Layout(width, height, levels)
	buf := make([]float64, max(width, height))
	tmp := make([]float64, max(width, height))

	for _, e := range layout {
		// Rows
		for y := 0; y < e.H; y++ {
			row := data[y*width : y*width+e.W]
			forward1D(row, tmp)
		}

		// Columns
		col := buf[:e.H]
		for x := 0; x < e.W; x++ {
			for y := 0; y < e.H; y++ {
				col[y] = data[y*width+x]
			}
			forward1D(col, tmp)
			for y := 0; y < e.H; y++ {
				data[y*width+x] = col[y]
			}
		}
	}
}

// InverseImage reverses ForwardImage in-place. Levels are undone from the
// coarsest to the finest, columns before rows.
func InverseImage(data []float64, width, height, levels int) {
	if levels <= 0 {
		return
	}
	layout := Layout(width, height, levels)
	buf := make([]float64, max(width, height))
	tmp := make([]float64, max(width, height))

	for lev := len(layout) - 1; lev >= 0; lev-- {
		e := layout[lev]

		// Columns
		col := buf[:e.H]
		for x := 0; x < e.W; x++ {
			for y := 0; y < e.H; y++ {
				col[y] = data[y*width+x]
			}
			inverse1D(col, tmp)
			for y := 0; y < e.H; y++ {
				data[y*width+x] = col[y]
			}
		}

		// Rows
		for y := 0; y < e.H; y++ {
			row := data[y*width : y*width+e.W]
			inverse1D(row, tmp)
		}
	}
}
