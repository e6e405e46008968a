package quant

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// headerBits is the fixed overhead added by EstimateBits
const headerBits = 400.0

// EstimateBits returns a heuristic bit count for a set of quantization
// indices. Near-zero values cost half a bit; others cost log2|v| plus a
// sign bit and two bits of overhead.
func EstimateBits(indices []float64) float64 {
	var total float64
	for _, v := range indices {
		a := math.Abs(v)
		if a < 0.5 {
			total += 0.5
		} else {
			total += math.Log2(a) + 3.0
		}
	}
	return total + headerBits
}

func mustNewZstdEncoder() *zstd.Encoder {
	enc, err := zstd.NewWriter(
		nil,
		zstd.WithEncoderConcurrency(1),
		zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
		zstd.WithLowerEncoderMem(true),
	)
	if err != nil {
		panic(err)
	}
	return enc
}

var zstdEncPool = sync.Pool{
	New: func() any {
		return mustNewZstdEncoder()
	},
}

// serialize rounds each index and writes it as a zig-zag varint
func serialize(indices []float64) ([]byte, error) {
	out := make([]byte, 0, len(indices))
	var tmp [binary.MaxVarintLen64]byte
	for i, v := range indices {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("index %d is not finite", i)
		}
		n := binary.PutVarint(tmp[:], int64(math.Round(v)))
		out = append(out, tmp[:n]...)
	}
	return out, nil
}

// MeasureRate serializes the indices and returns the zstd-compressed size
// in bytes. The figure is a measured rate for comparison with EstimateBits;
// the compressed stream itself is discarded.
func MeasureRate(indices []float64) (int, error) {
	if len(indices) == 0 {
		return 0, nil
	}

	raw, err := serialize(indices)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize indices: %w", err)
	}

	enc := zstdEncPool.Get().(*zstd.Encoder)
	out := enc.EncodeAll(raw, nil)
	zstdEncPool.Put(enc)
	return len(out), nil
}
