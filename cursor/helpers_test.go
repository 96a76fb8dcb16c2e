package cursor

import (
	"testing"

	"golang.org/x/image/math/fixed"

	"github.com/gogpu/texter/layout"
	"github.com/gogpu/texter/text"
	"github.com/gogpu/texter/text/atlas"
)

const lineHeight = 11

// newEngine returns an engine over printable ASCII where every glyph is
// 8x10 with a 10px advance.
func newEngine(t *testing.T, opts ...layout.Option) *layout.Engine {
	t.Helper()
	r := text.RasterizerFunc(func(c rune) (text.Glyph, error) {
		g := text.Glyph{Advance: fixed.Point26_6{X: fixed.I(10)}}
		if c == ' ' {
			return g, nil
		}
		g.Width, g.Height = 8, 10
		g.Bitmap = make([]byte, 80)
		g.Bounds = fixed.Rectangle26_6{Max: fixed.P(8, 10)}
		return g, nil
	})
	a, err := atlas.Build(r, ' ', 95)
	if err != nil {
		t.Fatalf("atlas.Build() error = %v", err)
	}
	return layout.NewEngine(a, opts...)
}

func laidOut(t *testing.T, s string) (*layout.Buffer, layout.Result) {
	t.Helper()
	buf := layout.NewBuffer(0)
	if err := buf.Set([]rune(s)); err != nil {
		t.Fatal(err)
	}
	return buf, newEngine(t).Layout(buf)
}

func typeAll(t *testing.T, m *Model, s string) {
	t.Helper()
	for _, r := range s {
		if err := m.Apply(r); err != nil {
			t.Fatalf("Apply(%q) error = %v", r, err)
		}
	}
}
