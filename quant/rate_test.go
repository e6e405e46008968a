package quant

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateBits(t *testing.T) {
	assert.Equal(t, 400.0, EstimateBits(nil))
	assert.Equal(t, 400.0+4*0.5, EstimateBits([]float64{0, 0.2, -0.4, 0}))
	// |8| costs log2(8)+3 = 6, |-1| costs 3
	assert.Equal(t, 400.0+6+3, EstimateBits([]float64{8, -1}))
}

func TestMeasureRate(t *testing.T) {
	n, err := MeasureRate(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	zeros := make([]float64, 4096)
	zeroBytes, err := MeasureRate(zeros)
	require.NoError(t, err)
	assert.Greater(t, zeroBytes, 0)

	noisy := make([]float64, 4096)
	state := uint32(12345)
	for i := range noisy {
		state = state*1664525 + 1013904223
		noisy[i] = float64(int32(state>>16)%200) - 100
	}
	noisyBytes, err := MeasureRate(noisy)
	require.NoError(t, err)

	t.Logf("zeros: %d bytes, noisy: %d bytes", zeroBytes, noisyBytes)
	assert.Less(t, zeroBytes, noisyBytes)
	assert.Less(t, zeroBytes, 100)
}

func TestMeasureRateRejectsNonFinite(t *testing.T) {
	_, err := MeasureRate([]float64{1, math.NaN()})
	assert.Error(t, err)
}
