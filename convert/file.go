package convert

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register the gif decoder
	_ "image/jpeg" // register the jpeg decoder
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register the webp decoder

	"github.com/gogpu/bitpaint"
)

// ErrUnsupportedFormat is returned when a file extension has no encoder.
var ErrUnsupportedFormat = errors.New("convert: unsupported image format")

// EncodePNG writes bm as a PNG using p and the optional alpha override.
func EncodePNG(w io.Writer, bm *bitpaint.Bitmap, p Palette, alpha *AlphaPair) error {
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	return enc.Encode(w, ToImage(bm, p, alpha))
}

// DecodePNG reads a PNG and thresholds it into a bitmap.
func DecodePNG(r io.Reader, threshold float64) (*bitpaint.Bitmap, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("convert: decode png: %w", err)
	}
	return FromImage(img, threshold), nil
}

// Decode reads any registered image format (PNG, BMP, TIFF, WebP, GIF,
// JPEG) and thresholds it into a bitmap.
func Decode(r io.Reader, threshold float64) (*bitpaint.Bitmap, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("convert: decode: %w", err)
	}
	return FromImage(img, threshold), format, nil
}

// Encode writes bm in the named format: "png", "bmp" or "tiff".
func Encode(w io.Writer, format string, bm *bitpaint.Bitmap, p Palette, alpha *AlphaPair) error {
	switch strings.ToLower(format) {
	case "png":
		return EncodePNG(w, bm, p, alpha)
	case "bmp":
		return bmp.Encode(w, ToImage(bm, p, alpha))
	case "tiff", "tif":
		return tiff.Encode(w, ToImage(bm, p, alpha), &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// FormatOf returns the format name for a file path based on its extension.
func FormatOf(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

// SavePNG writes bm as a PNG file regardless of the extension.
func SavePNG(path string, bm *bitpaint.Bitmap, p Palette, alpha *AlphaPair) error {
	return save(path, "png", bm, p, alpha)
}

// Save writes bm to path in the format given by the extension. Paths
// without an extension are written as PNG.
func Save(path string, bm *bitpaint.Bitmap, p Palette, alpha *AlphaPair) error {
	format := FormatOf(path)
	if format == "" {
		format = "png"
	}
	return save(path, format, bm, p, alpha)
}

func save(path, format string, bm *bitpaint.Bitmap, p Palette, alpha *AlphaPair) (err error) {
	switch strings.ToLower(format) {
	case "png", "bmp", "tiff", "tif":
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := Encode(f, format, bm, p, alpha); err != nil {
		return fmt.Errorf("convert: save %s: %w", path, err)
	}
	bitpaint.Logger().Info("convert: bitmap written", "path", path,
		"width", bm.Width(), "height", bm.Height())
	return nil
}

// LoadPNG reads a PNG file and thresholds it into a bitmap.
func LoadPNG(path string, threshold float64) (*bitpaint.Bitmap, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return DecodePNG(f, threshold)
}

// Load reads an image file in any registered format and thresholds it.
func Load(path string, threshold float64) (*bitpaint.Bitmap, string, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, "", err
	}
	defer func() {
		_ = f.Close()
	}()
	return Decode(f, threshold)
}
