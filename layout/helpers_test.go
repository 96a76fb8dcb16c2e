package layout

import (
	"testing"

	"golang.org/x/image/math/fixed"

	"github.com/gogpu/texter/text"
	"github.com/gogpu/texter/text/atlas"
)

// testSlotHeight is the SlotHeight of testAtlas: 10px glyphs plus 1 row of
// padding.
const testSlotHeight = 11

// monoRasterizer produces 8x10 glyphs with a 10px advance whose ink box
// starts at (1, -2). Spaces are empty.
var monoRasterizer = text.RasterizerFunc(func(r rune) (text.Glyph, error) {
	g := text.Glyph{Advance: fixed.Point26_6{X: fixed.I(10)}}
	if r == ' ' || r == '\t' {
		return g, nil
	}
	g.Width, g.Height = 8, 10
	g.Bitmap = make([]byte, 80)
	g.Bounds = fixed.Rectangle26_6{Min: fixed.P(1, -2), Max: fixed.P(9, 8)}
	return g, nil
})

// testAtlas covers printable ASCII.
func testAtlas(t *testing.T) *atlas.Atlas {
	t.Helper()
	a, err := atlas.Build(monoRasterizer, ' ', 95)
	if err != nil {
		t.Fatalf("atlas.Build() error = %v", err)
	}
	return a
}

func bufferOf(t *testing.T, s string) *Buffer {
	t.Helper()
	b := NewBuffer(0)
	if err := b.Set([]rune(s)); err != nil {
		t.Fatalf("Set(%q) error = %v", s, err)
	}
	return b
}

func equalPositions(a, b []Vec2) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
