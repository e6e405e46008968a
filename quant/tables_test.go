package quant

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Every table entry stays >= 1 across the whole quality range
func TestTableFloor(t *testing.T) {
	for q := 1; q <= 100; q++ {
		luma, chroma := Tables(float64(q))
		for i := 0; i < 64; i++ {
			if luma[i] < 1 || chroma[i] < 1 {
				t.Fatalf("quality %d: entry %d below 1 (luma=%v chroma=%v)", q, i, luma[i], chroma[i])
			}
		}
	}
}

func TestTableAtQuality50MatchesBase(t *testing.T) {
	luma, chroma := Tables(50)
	for i := 0; i < 64; i++ {
		assert.Equal(t, float64(LumaBase[i]), luma[i])
		assert.Equal(t, float64(ChromaBase[i]), chroma[i])
	}
}

func TestTableAt100IsAllOnes(t *testing.T) {
	luma, chroma := Tables(100)
	for i := 0; i < 64; i++ {
		assert.Equal(t, 1.0, luma[i])
		assert.Equal(t, 1.0, chroma[i])
	}
}

// Higher quality never produces coarser tables
func TestTableMonotonic(t *testing.T) {
	prev := NewTable(LumaBase, 1)
	for q := 2; q <= 100; q++ {
		cur := NewTable(LumaBase, float64(q))
		assert.LessOrEqual(t, cur.Sum(), prev.Sum(), "quality %d", q)
		for i := range cur {
			assert.LessOrEqual(t, cur[i], prev[i], "quality %d entry %d", q, i)
		}
		prev = cur
	}
}

func TestScale(t *testing.T) {
	tests := []struct {
		quality float64
		want    float64
	}{
		{1, 50},
		{10, 5},
		{25, 2},
		{50, 1},
		{75, 0.5},
		{90, 0.2},
		{100, 0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, Scale(tt.quality), 1e-12, "quality %v", tt.quality)
	}
}

func TestValidateQuality(t *testing.T) {
	tests := []struct {
		quality float64
		wantErr bool
	}{
		{-1, true},
		{0, true},
		{0.5, false},
		{1, false},
		{100, false},
		{100.1, true},
	}

	for _, tt := range tests {
		err := ValidateQuality(tt.quality)
		if tt.wantErr {
			assert.True(t, errors.Is(err, ErrInvalidQuality), "quality %v", tt.quality)
		} else {
			assert.NoError(t, err, "quality %v", tt.quality)
		}
	}
}

func TestQuantizeDequantize(t *testing.T) {
	assert.Equal(t, 3.0, Quantize(31, 10))
	assert.Equal(t, -2.0, Quantize(-17, 10))
	assert.Equal(t, 30.0, Dequantize(Quantize(31, 10), 10))
}

func TestDWTBaseStep(t *testing.T) {
	tests := []struct {
		quality float64
		want    float64
	}{
		{50, 32},
		{90, 6.4},
		{25, 64},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("q%g", tt.quality), func(t *testing.T) {
			assert.InDelta(t, tt.want, DWTBaseStep(tt.quality), 1e-9)
		})
	}
}

func TestGrid(t *testing.T) {
	luma := NewTable(LumaBase, 50)
	g := luma.Grid()
	assert.Equal(t, 16.0, g[0][0])
	assert.Equal(t, 99.0, g[7][7])
	assert.Equal(t, 55.0, g[1][7])
	assert.Equal(t, luma.At(1, 7), g[1][7])
}
