package codec

import (
	"math"

	dicomcodec "github.com/cocosip/go-dicom/pkg/imaging/codec"

	"github.com/thundermage117/codec/chroma"
)

// Ensure Parameters implements codec.Parameters
var _ dicomcodec.Parameters = (*Parameters)(nil)

// Parameters is the mutable builder for a Config.
// It also satisfies the generic name-keyed parameter interface so a codec
// can be configured from any source that speaks it.
type Parameters struct {
	// Quality factor (1-100, higher = better quality). Default: 75
	Quality float64

	// Quantize enables coefficient quantization. Default: true
	Quantize bool

	// Chroma subsampling mode. Default: 4:4:4
	Chroma chroma.Mode

	// Transform kind. Default: DCT
	Transform TransformKind

	// Parallel plane processing. Default: false
	Parallel bool

	// internal storage for compatibility with generic parameter interface
	params map[string]interface{}
}

// NewParameters creates Parameters with default values
func NewParameters() *Parameters {
	def := DefaultConfig()
	return &Parameters{
		Quality:   def.Quality,
		Quantize:  def.Quantize,
		Chroma:    def.Chroma,
		Transform: def.Transform,
		Parallel:  def.Parallel,
		params:    make(map[string]interface{}),
	}
}

// FromParameters converts generic parameters to Parameters.
// Typed Parameters are returned as-is; anything else is read by name on
// top of the defaults. A nil argument yields the defaults.
func FromParameters(p dicomcodec.Parameters) *Parameters {
	if p == nil {
		return NewParameters()
	}
	if cp, ok := p.(*Parameters); ok {
		return cp
	}

	out := NewParameters()
	for _, name := range []string{"quality", "quantize", "chroma", "transform", "parallel"} {
		if v := p.GetParameter(name); v != nil {
			out.SetParameter(name, v)
		}
	}
	return out
}

// GetParameter retrieves a parameter by name (implements codec.Parameters)
func (p *Parameters) GetParameter(name string) interface{} {
	switch name {
	case "quality":
		return p.Quality
	case "quantize":
		return p.Quantize
	case "chroma":
		return p.Chroma
	case "transform":
		return p.Transform
	case "parallel":
		return p.Parallel
	default:
		return p.params[name]
	}
}

// SetParameter sets a parameter value (implements codec.Parameters).
// Values of the wrong type are ignored.
func (p *Parameters) SetParameter(name string, value interface{}) {
	switch name {
	case "quality":
		switch v := value.(type) {
		case float64:
			p.Quality = v
		case float32:
			p.Quality = float64(v)
		case int:
			p.Quality = float64(v)
		}
	case "quantize":
		if v, ok := value.(bool); ok {
			p.Quantize = v
		}
	case "chroma":
		switch v := value.(type) {
		case chroma.Mode:
			p.Chroma = v
		case int:
			p.Chroma = chroma.FromInt(v)
		case string:
			if m, err := chroma.ParseMode(v); err == nil {
				p.Chroma = m
			}
		}
	case "transform":
		switch v := value.(type) {
		case TransformKind:
			p.Transform = v
		case int:
			p.Transform = TransformKind(v)
		case string:
			if k, err := ParseTransform(v); err == nil {
				p.Transform = k
			}
		}
	case "parallel":
		if v, ok := value.(bool); ok {
			p.Parallel = v
		}
	default:
		if p.params == nil {
			p.params = make(map[string]interface{})
		}
		p.params[name] = value
	}
}

// Validate normalizes out-of-range values.
// Quality above 100 becomes 100, quality in (0, 1) becomes 1, and a
// non-positive quality falls back to the default. Unknown chroma modes and
// transform kinds fall back to 4:4:4 and DCT.
func (p *Parameters) Validate() error {
	switch {
	case math.IsNaN(p.Quality) || p.Quality <= 0:
		p.Quality = DefaultConfig().Quality
	case p.Quality < 1:
		p.Quality = 1
	case p.Quality > 100:
		p.Quality = 100
	}
	if !p.Chroma.Valid() {
		p.Chroma = chroma.Mode444
	}
	if !p.Transform.Valid() {
		p.Transform = TransformDCT
	}
	return nil
}

// WithQuality sets the quality factor and returns the parameters for chaining
func (p *Parameters) WithQuality(quality float64) *Parameters {
	p.Quality = quality
	return p
}

// WithQuantization enables or disables quantization and returns the parameters for chaining
func (p *Parameters) WithQuantization(enabled bool) *Parameters {
	p.Quantize = enabled
	return p
}

// WithChroma sets the chroma subsampling mode and returns the parameters for chaining
func (p *Parameters) WithChroma(mode chroma.Mode) *Parameters {
	p.Chroma = mode
	return p
}

// WithTransform sets the transform kind and returns the parameters for chaining
func (p *Parameters) WithTransform(kind TransformKind) *Parameters {
	p.Transform = kind
	return p
}

// WithParallel enables or disables parallel plane processing and returns the parameters for chaining
func (p *Parameters) WithParallel(parallel bool) *Parameters {
	p.Parallel = parallel
	return p
}

// Config returns the immutable configuration described by p
func (p *Parameters) Config() Config {
	return Config{
		Quality:   p.Quality,
		Quantize:  p.Quantize,
		Chroma:    p.Chroma,
		Transform: p.Transform,
		Parallel:  p.Parallel,
	}
}
