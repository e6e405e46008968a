package codec

import "errors"

var (
	// ErrInvalidQuality is returned when the quality factor is outside (0, 100]
	ErrInvalidQuality = errors.New("invalid quality (must be in (0, 100])")

	// ErrInvalidParameter is returned when a configuration field is not recognised
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidImage is returned when the input is not a 3-channel B,G,R image
	ErrInvalidImage = errors.New("invalid image (need 3 channels B,G,R)")

	// ErrPresetNotFound is returned when a preset is not found in the registry
	ErrPresetNotFound = errors.New("preset not found")
)
