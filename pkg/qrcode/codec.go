package qr

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
)

// EncodeImage writes img to w in the given format.
func EncodeImage(w io.Writer, img image.Image, format imaging.Format) error {
	if err := imaging.Encode(w, img, format); err != nil {
		return fmt.Errorf("%w: encode %s: %w", ErrImageGeneration, format, err)
	}
	return nil
}

// Bytes serializes img in the given format.
func Bytes(img image.Image, format imaging.Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeImage(&buf, img, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes img to path, picking the format from the file extension.
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("%w: save %s: %w", ErrImageGeneration, path, err)
	}
	return nil
}

// ParseFormat maps a format name or file extension ("png", ".jpg") to a format.
func ParseFormat(name string) (imaging.Format, error) {
	f, err := imaging.FormatFromExtension(name)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrImageGeneration, err)
	}
	return f, nil
}
