package imagecodec

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
)

func testImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 37), G: uint8(y * 53), B: uint8((x + y) * 11), A: 255})
		}
	}
	return img
}

func encodeBase64PNG(t *testing.T, img image.Image) string {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func encodeBase64BMP(t *testing.T, img image.Image) string {
	t.Helper()
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, img); err != nil {
		t.Fatalf("encode bmp: %v", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestDecodeNormalizesAcrossSourceFormats(t *testing.T) {
	img := testImage(8, 6)

	fromPNG, err := Decode(encodeBase64PNG(t, img), 0)
	if err != nil {
		t.Fatalf("decode png payload: %v", err)
	}
	fromBMP, err := Decode(encodeBase64BMP(t, img), 0)
	if err != nil {
		t.Fatalf("decode bmp payload: %v", err)
	}

	if fromPNG.Width() != 8 || fromPNG.Height() != 6 {
		t.Fatalf("unexpected png raster size: %dx%d", fromPNG.Width(), fromPNG.Height())
	}
	if fromBMP.Width() != fromPNG.Width() || fromBMP.Height() != fromPNG.Height() {
		t.Fatalf("format changed dimensions: %dx%d vs %dx%d",
			fromBMP.Width(), fromBMP.Height(), fromPNG.Width(), fromPNG.Height())
	}
	if !bytes.Equal(fromPNG.Pix(), fromBMP.Pix()) {
		t.Fatal("same pixels decoded differently from png and bmp")
	}
}

func TestDecodeStripsDataURLPrefix(t *testing.T) {
	payload := "data:image/png;base64," + encodeBase64PNG(t, testImage(4, 4))

	raster, err := Decode(payload, 0)
	if err != nil {
		t.Fatalf("decode data url payload: %v", err)
	}
	if raster.Width() != 4 || raster.Height() != 4 {
		t.Fatalf("unexpected raster size: %dx%d", raster.Width(), raster.Height())
	}
}

func TestDecodeDownscalesOversizedImages(t *testing.T) {
	payload := encodeBase64PNG(t, testImage(40, 20))

	raster, err := Decode(payload, 10)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if raster.Width() != 10 {
		t.Fatalf("expected width capped at 10, got %d", raster.Width())
	}
	if raster.Height() != 5 {
		t.Fatalf("expected aspect ratio preserved (height 5), got %d", raster.Height())
	}
}

func TestDecodeRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"empty":          "",
		"whitespace":     "   ",
		"not base64":     "!!!not-base64!!!",
		"not an image":   base64.StdEncoding.EncodeToString([]byte("plain text, no pixels")),
		"truncated data": encodeBase64PNG(t, testImage(4, 4))[:12],
	}
	for name, payload := range cases {
		if _, err := Decode(payload, 0); !errors.Is(err, ErrDecode) {
			t.Errorf("%s: expected ErrDecode, got %v", name, err)
		}
	}
}

func TestEncodeJPEGRoundTrips(t *testing.T) {
	raster, err := Decode(encodeBase64PNG(t, testImage(16, 16)), 0)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	jpegBytes, err := raster.EncodeJPEG()
	if err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}

	decoded, err := Decode(base64.StdEncoding.EncodeToString(jpegBytes), 0)
	if err != nil {
		t.Fatalf("decode jpeg round trip: %v", err)
	}
	if decoded.Width() != 16 || decoded.Height() != 16 {
		t.Fatalf("jpeg round trip changed dimensions: %dx%d", decoded.Width(), decoded.Height())
	}
}
