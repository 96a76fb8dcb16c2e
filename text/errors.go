package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrInvalidSize is returned when a face is configured with a
	// non-positive size or DPI.
	ErrInvalidSize = errors.New("text: size and dpi must be positive")

	// ErrGlyphNotFound is returned when the font has no glyph for a code.
	ErrGlyphNotFound = errors.New("text: glyph not found")
)

// RasterizationError is returned when a character code cannot be rasterized.
type RasterizationError struct {
	Code rune
	Err  error
}

func (e *RasterizationError) Error() string {
	return fmt.Sprintf("text: rasterization failed for code %U: %v", e.Code, e.Err)
}

func (e *RasterizationError) Unwrap() error {
	return e.Err
}
