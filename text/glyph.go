package text

import (
	"golang.org/x/image/math/fixed"
)

// Glyph is a rasterized character.
type Glyph struct {
	// Bitmap holds 8-bit coverage, row-major, with a stride of Width.
	// It is nil when the glyph has no visible ink (e.g. space).
	Bitmap []byte

	// Width and Height are the bitmap dimensions in pixels.
	Width, Height int

	// Advance is the pen displacement after drawing this glyph,
	// in 26.6 fixed-point pixels.
	Advance fixed.Point26_6

	// Bounds is the ink box relative to the pen origin, in 26.6 fixed-point
	// pixels. Y grows upwards: Min.Y is the bottom of the ink (negative for
	// descenders) and Max.Y its top.
	Bounds fixed.Rectangle26_6
}

// At returns the coverage at (x, y), or 0 outside the bitmap.
func (g Glyph) At(x, y int) byte {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return 0
	}
	return g.Bitmap[y*g.Width+x]
}

// Empty reports whether the glyph has no bitmap to write.
func (g Glyph) Empty() bool {
	return g.Width <= 0 || g.Height <= 0
}

// Rasterizer turns character codes into glyphs.
//
// Implementations are expected to be deterministic: rasterizing the same code
// twice yields the same glyph, and a failure repeats identically.
type Rasterizer interface {
	Rasterize(r rune) (Glyph, error)
}

// RasterizerFunc adapts an ordinary function to the Rasterizer interface.
type RasterizerFunc func(r rune) (Glyph, error)

// Rasterize implements Rasterizer.
func (f RasterizerFunc) Rasterize(r rune) (Glyph, error) {
	return f(r)
}

// Pixels converts a 26.6 fixed-point value to pixels.
func Pixels(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
