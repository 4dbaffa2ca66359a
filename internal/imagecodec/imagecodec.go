package imagecodec

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"strings"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
)

// ErrDecode reports that a payload could not be turned into a raster.
var ErrDecode = errors.New("invalid image data")

// DefaultMaxDimension bounds the longer side of a decoded raster.
// Camera uploads routinely exceed 4K; the face engine gains nothing
// from more pixels than this.
const DefaultMaxDimension = 1280

const jpegQuality = 90

// Raster is a decoded image normalized to the RGBA color model. It is
// produced only by Decode; downstream components never build one by
// hand.
type Raster struct {
	img *image.RGBA
}

// Width returns the raster width in pixels.
func (r *Raster) Width() int { return r.img.Bounds().Dx() }

// Height returns the raster height in pixels.
func (r *Raster) Height() int { return r.img.Bounds().Dy() }

// Pix exposes the raw RGBA pixel buffer.
func (r *Raster) Pix() []byte { return r.img.Pix }

// EncodeJPEG renders the raster into the canonical wire and storage
// form used by the reference store and the face engine.
func (r *Raster) EncodeJPEG() ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, r.img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode turns a base64 payload, optionally carrying a data-URL prefix,
// into a normalized Raster. JPEG, PNG, GIF and BMP sources are
// accepted; the result is always RGBA and never larger than maxDim on
// either side. A zero maxDim applies DefaultMaxDimension.
func Decode(encoded string, maxDim int) (*Raster, error) {
	if maxDim <= 0 {
		maxDim = DefaultMaxDimension
	}

	payload := strings.TrimSpace(encoded)
	if payload == "" {
		return nil, fmt.Errorf("%w: empty payload", ErrDecode)
	}
	// Strip a data:image/...;base64, header if present.
	if idx := strings.IndexByte(payload, ','); idx >= 0 && strings.Contains(payload[:idx], ";base64") {
		payload = payload[idx+1:]
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return normalize(src, maxDim), nil
}

// normalize converts any decoded image to RGBA, downscaling when the
// longer side exceeds maxDim while keeping the aspect ratio.
func normalize(src image.Image, maxDim int) *Raster {
	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width <= maxDim && height <= maxDim {
		rgba := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.Draw(rgba, rgba.Bounds(), src, bounds.Min, draw.Src)
		return &Raster{img: rgba}
	}

	var newWidth, newHeight int
	if width > height {
		newWidth = maxDim
		newHeight = int(float64(height) * float64(maxDim) / float64(width))
	} else {
		newHeight = maxDim
		newWidth = int(float64(width) * float64(maxDim) / float64(height))
	}
	if newWidth < 1 {
		newWidth = 1
	}
	if newHeight < 1 {
		newHeight = 1
	}

	resized := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	xdraw.CatmullRom.Scale(resized, resized.Bounds(), src, bounds, xdraw.Over, nil)
	return &Raster{img: resized}
}
