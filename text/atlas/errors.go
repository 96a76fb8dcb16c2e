package atlas

import (
	"errors"
	"fmt"
)

// Sentinel errors for atlas package.
var (
	// ErrNilRasterizer is returned when Build is called without a rasterizer.
	ErrNilRasterizer = errors.New("atlas: nil rasterizer")

	// ErrAllocationFailed is returned when a glyph cannot be given a slot.
	ErrAllocationFailed = errors.New("atlas: failed to allocate glyph slot")

	// ErrBitmapSize is returned when a rasterizer reports a bitmap shorter
	// than Width*Height.
	ErrBitmapSize = errors.New("atlas: glyph bitmap smaller than its dimensions")

	// ErrInvalidManifest is returned by ReadManifest for malformed input.
	ErrInvalidManifest = errors.New("atlas: invalid manifest")
)

// ConfigError represents a build configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "atlas: invalid config." + e.Field + ": " + e.Reason
}

// TextureSizeError is returned when the packed texture would exceed the
// configured maximum dimension. No partial atlas is produced.
type TextureSizeError struct {
	Width, Height int
	Max           int
}

func (e *TextureSizeError) Error() string {
	return fmt.Sprintf("atlas: texture %dx%d exceeds maximum dimension %d", e.Width, e.Height, e.Max)
}
