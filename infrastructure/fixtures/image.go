// Package fixtures produces the static input files upload steps consume.
// Everything here is a pure function of its arguments; no network, no
// shared state.
package fixtures

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
)

const (
	defaultWidth  = 100
	defaultHeight = 100
)

// WriteImage writes a solid-color PNG of the given size to path, creating
// parent directories as needed.
func WriteImage(path string, width, height int, c color.Color) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", width, height)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create fixture directory: %w", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create fixture file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode fixture png: %w", err)
	}
	return nil
}

// WritePlaceholder writes the plain white placeholder used as a generic
// wardrobe item image.
func WritePlaceholder(dir string) (string, error) {
	path := filepath.Join(dir, "placeholder.png")
	if err := WriteImage(path, defaultWidth, defaultHeight, color.White); err != nil {
		return "", err
	}
	return path, nil
}

// WriteNonClothing writes a plain brown image that contains no detectable
// clothing item, standing in for the wooden-plank photo the rejection
// flow was originally checked with.
func WriteNonClothing(dir string) (string, error) {
	path := filepath.Join(dir, "wooden-plank.png")
	if err := WriteImage(path, defaultWidth, defaultHeight, color.RGBA{R: 139, G: 105, B: 20, A: 255}); err != nil {
		return "", err
	}
	return path, nil
}
