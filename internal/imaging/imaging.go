// Package imaging turns uploaded product photos into the encoded image
// strings the repositories store. Files are validated before any repository
// work happens.
package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // register PNG decoding

	"github.com/nfnt/resize"
)

const (
	// MaxUploadBytes caps uploads at 5 MiB.
	MaxUploadBytes = 5 << 20
	// maxDimension bounds the longer edge after downscaling.
	maxDimension = 800
	jpegQuality  = 80
)

var (
	ErrUnsupportedType = errors.New("unsupported image type")
	ErrTooLarge        = errors.New("image exceeds the size limit")
)

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

// Validate rejects unsupported or oversized files. Runs before decoding so
// bad uploads never reach the repository layer.
func Validate(contentType string, size int64) error {
	if !allowedTypes[contentType] {
		return ErrUnsupportedType
	}
	if size > MaxUploadBytes {
		return ErrTooLarge
	}
	return nil
}

// DataURL converts raw image bytes into a base64 data URL, downscaling
// JPEG/PNG input to at most maxDimension on the longer edge. WebP is stored
// as-is since the storefront renders it directly.
func DataURL(raw []byte, contentType string) (string, error) {
	if err := Validate(contentType, int64(len(raw))); err != nil {
		return "", err
	}

	if contentType == "image/webp" {
		return "data:image/webp;base64," + base64.StdEncoding.EncodeToString(raw), nil
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	scaled := resize.Thumbnail(maxDimension, maxDimension, img, resize.Lanczos3)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, scaled, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", fmt.Errorf("encode image: %w", err)
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
