package logo

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"

	// Decoders for the formats logos are published in.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// DefaultSize is the edge length of a stored thumbnail in pixels.
const DefaultSize = 64

// MaxSourcePixels bounds the decoded size of a source logo (4096×4096).
const MaxSourcePixels = 4096 * 4096

// ErrImageTooLarge is returned for sources whose header declares more than
// MaxSourcePixels pixels. The header is checked before any pixel is decoded.
var ErrImageTooLarge = errors.New("image too large")

// alphaNRGBA makes the PNG encoder keep the alpha channel even when every
// pixel is opaque, so every artifact is color type 6 (RGBA).
type alphaNRGBA struct {
	*image.NRGBA
}

func (alphaNRGBA) Opaque() bool { return false }

// Normalize decodes raw image bytes and returns a size×size NRGBA thumbnail.
// The source is stretched to the square without preserving aspect ratio.
func Normalize(data []byte, size int) (*image.NRGBA, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image config: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("decode image: empty %s image", format)
	}
	if int64(cfg.Width)*int64(cfg.Height) > MaxSourcePixels {
		return nil, fmt.Errorf("%w: %s %dx%d", ErrImageTooLarge, format, cfg.Width, cfg.Height)
	}

	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	b := src.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("decode image: empty %s image", format)
	}

	// Convert first so paletted and alpha-less sources scale the same way.
	rgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), src, b.Min, draw.Src)

	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), rgba, rgba.Bounds(), draw.Src, nil)

	return dst, nil
}

// EncodePNG encodes img as an RGBA PNG.
func EncodePNG(img *image.NRGBA) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, alphaNRGBA{img}); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
