package imageio

import (
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	// registered decoders
	_ "golang.org/x/image/webp"

	"github.com/thundermage117/codec/pixel"
)

// JPEGQuality is the quality used when saving .jpg files
const JPEGQuality = 95

// ErrUnsupportedFormat is returned for an unknown file extension
var ErrUnsupportedFormat = errors.New("imageio: unsupported format")

// Format is an output file format
type Format string

// Supported formats. Only PNG, BMP, TIFF and WebP outputs are lossless.
const (
	// FormatPNG is lossless PNG
	FormatPNG Format = "png"
	// FormatJPEG is baseline JPEG at JPEGQuality
	FormatJPEG Format = "jpeg"
	// FormatGIF is paletted GIF
	FormatGIF Format = "gif"
	// FormatBMP is uncompressed BMP
	FormatBMP Format = "bmp"
	// FormatTIFF is Deflate-compressed TIFF
	FormatTIFF Format = "tiff"
	// FormatWebP is lossless WebP
	FormatWebP Format = "webp"
)

// FormatFromPath picks the format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	case ".gif":
		return FormatGIF, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	case ".webp":
		return FormatWebP, nil
	}
	return "", errors.Wrapf(ErrUnsupportedFormat, "extension of %q", path)
}

// Decode reads an image in any registered format
func Decode(r io.Reader) (*pixel.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", errors.Wrap(err, "decode image")
	}
	m, err := FromImage(img)
	if err != nil {
		return nil, "", err
	}
	return m, format, nil
}

// Load reads an image file into a B,G,R pixel.Image
func Load(path string) (*pixel.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()

	m, _, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return m, nil
}

// LoadImage reads an image file without conversion
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	return img, nil
}

// Encode writes a 1- or 3-channel image in the given format.
// WebP output is lossless.
func Encode(w io.Writer, format Format, m *pixel.Image) error {
	img, err := ToRGBA(m)
	if err != nil {
		return err
	}

	switch format {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
	case FormatGIF:
		err = gif.Encode(w, img, nil)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case FormatWebP:
		err = nativewebp.Encode(w, img, nil)
	default:
		return errors.Wrapf(ErrUnsupportedFormat, "%q", format)
	}
	return errors.Wrapf(err, "encode %s", format)
}

// Save writes an image file, choosing the format from the extension
func Save(path string, m *pixel.Image) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := Encode(f, format, m); err != nil {
		f.Close()
		return err
	}
	return errors.WithStack(f.Close())
}

// Fit scales img down so neither side exceeds maxDim, keeping the aspect
// ratio. Images already small enough, or maxDim <= 0, are returned as-is.
func Fit(img image.Image, maxDim int) image.Image {
	b := img.Bounds()
	if maxDim <= 0 || (b.Dx() <= maxDim && b.Dy() <= maxDim) {
		return img
	}
	return resize.Thumbnail(uint(maxDim), uint(maxDim), img, resize.Lanczos3)
}
