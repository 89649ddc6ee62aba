package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png encode failed: %v", err)
	}
	return buf.Bytes()
}

func TestValidate_TypeAndSizeRules(t *testing.T) {
	if err := Validate("image/gif", 10); err != ErrUnsupportedType {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
	if err := Validate("image/jpeg", MaxUploadBytes+1); err != ErrTooLarge {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
	if err := Validate("image/png", 1024); err != nil {
		t.Fatalf("valid file rejected: %v", err)
	}
}

func TestDataURL_EncodesAndDownscales(t *testing.T) {
	raw := encodePNG(t, 1600, 200)

	url, err := DataURL(raw, "image/png")
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	const prefix = "data:image/jpeg;base64,"
	if !strings.HasPrefix(url, prefix) {
		t.Fatalf("unexpected data URL prefix: %.40s", url)
	}

	decoded, err := base64.StdEncoding.DecodeString(url[len(prefix):])
	if err != nil {
		t.Fatalf("payload is not valid base64: %v", err)
	}
	img, err := jpeg.Decode(bytes.NewReader(decoded))
	if err != nil {
		t.Fatalf("payload is not a valid jpeg: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() > 800 || bounds.Dy() > 800 {
		t.Fatalf("image not downscaled: %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestDataURL_WebPPassesThrough(t *testing.T) {
	raw := []byte{0x52, 0x49, 0x46, 0x46, 0x00, 0x00}
	url, err := DataURL(raw, "image/webp")
	if err != nil {
		t.Fatalf("webp conversion failed: %v", err)
	}
	if !strings.HasPrefix(url, "data:image/webp;base64,") {
		t.Fatalf("unexpected prefix: %.40s", url)
	}
}

func TestDataURL_RejectsBeforeDecoding(t *testing.T) {
	if _, err := DataURL([]byte("not an image"), "text/plain"); err != ErrUnsupportedType {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}
