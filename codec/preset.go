package codec

import (
	"sort"
	"sync"

	"github.com/thundermage117/codec/chroma"
)

// Preset is a named codec configuration
type Preset struct {
	Name        string
	Description string
	Config      Config
}

// PresetRegistry manages named presets
type PresetRegistry struct {
	mu      sync.RWMutex
	presets map[string]Preset
}

// NewPresetRegistry creates an empty registry
func NewPresetRegistry() *PresetRegistry {
	return &PresetRegistry{presets: make(map[string]Preset)}
}

var defaultPresets = NewPresetRegistry()

func init() {
	builtin := []Preset{
		{"jpeg-high", "block DCT, quality 90, 4:4:4", Config{Quality: 90, Quantize: true, Chroma: chroma.Mode444, Transform: TransformDCT}},
		{"jpeg-medium", "block DCT, quality 75, 4:2:2", Config{Quality: 75, Quantize: true, Chroma: chroma.Mode422, Transform: TransformDCT}},
		{"jpeg-low", "block DCT, quality 25, 4:2:0", Config{Quality: 25, Quantize: true, Chroma: chroma.Mode420, Transform: TransformDCT}},
		{"wavelet-high", "Haar DWT, quality 90, 4:4:4", Config{Quality: 90, Quantize: true, Chroma: chroma.Mode444, Transform: TransformDWT}},
		{"wavelet-low", "Haar DWT, quality 25, 4:2:0", Config{Quality: 25, Quantize: true, Chroma: chroma.Mode420, Transform: TransformDWT}},
		{"lossless", "block DCT without quantization", Config{Quality: 100, Quantize: false, Chroma: chroma.Mode444, Transform: TransformDCT}},
	}
	for _, p := range builtin {
		if err := defaultPresets.Register(p); err != nil {
			panic(err)
		}
	}
}

// RegisterPreset adds or replaces a preset in the default registry
func RegisterPreset(p Preset) error {
	return defaultPresets.Register(p)
}

// LookupPreset retrieves a preset from the default registry
func LookupPreset(name string) (Preset, error) {
	return defaultPresets.Lookup(name)
}

// Presets returns every preset in the default registry sorted by name
func Presets() []Preset {
	return defaultPresets.List()
}

// Register adds or replaces a preset. The config must be valid.
func (r *PresetRegistry) Register(p Preset) error {
	if err := p.Config.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.presets[p.Name] = p
	return nil
}

// Lookup retrieves a preset by name
func (r *PresetRegistry) Lookup(name string) (Preset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.presets[name]
	if !ok {
		return Preset{}, ErrPresetNotFound
	}
	return p, nil
}

// List returns all presets sorted by name
func (r *PresetRegistry) List() []Preset {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Preset, 0, len(r.presets))
	for _, p := range r.presets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
