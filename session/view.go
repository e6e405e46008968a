package session

import (
	"fmt"
	"strings"
)

// ViewMode selects what View renders
type ViewMode int

const (
	// ViewRGB is the reconstructed image
	ViewRGB ViewMode = iota
	// ViewArtifacts is the amplified absolute difference from the original
	ViewArtifacts
	// ViewY is the reconstructed luma plane
	ViewY
	// ViewCr is the reconstructed red-difference plane, tinted red by default
	ViewCr
	// ViewCb is the reconstructed blue-difference plane, tinted blue by default
	ViewCb
	// ViewEdgeDistortion compares gradient magnitudes of original and reconstruction
	ViewEdgeDistortion
	// ViewBlocking highlights discontinuities on the 8x8 block grid
	ViewBlocking
)

var viewNames = map[ViewMode]string{
	ViewRGB:            "rgb",
	ViewArtifacts:      "artifacts",
	ViewY:              "y",
	ViewCr:             "cr",
	ViewCb:             "cb",
	ViewEdgeDistortion: "edges",
	ViewBlocking:       "blocking",
}

// String returns the name accepted by ParseViewMode
func (m ViewMode) String() string {
	if s, ok := viewNames[m]; ok {
		return s
	}
	return fmt.Sprintf("ViewMode(%d)", int(m))
}

// ParseViewMode accepts the names returned by ViewMode.String
func ParseViewMode(s string) (ViewMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for m, name := range viewNames {
		if name == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidView, s)
}

// ViewModes returns every view mode in numeric order
func ViewModes() []ViewMode {
	return []ViewMode{ViewRGB, ViewArtifacts, ViewY, ViewCr, ViewCb, ViewEdgeDistortion, ViewBlocking}
}
