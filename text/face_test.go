package text

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func testFace(t *testing.T, opts ...FaceOption) *Face {
	t.Helper()
	face, err := NewFace(goregular.TTF, opts...)
	if err != nil {
		t.Fatalf("NewFace() error = %v", err)
	}
	t.Cleanup(func() { _ = face.Close() })
	return face
}

func TestNewFace_Errors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		opts []FaceOption
		want error
	}{
		{"empty data", nil, nil, ErrEmptyFontData},
		{"zero size", goregular.TTF, []FaceOption{WithSize(0)}, ErrInvalidSize},
		{"negative dpi", goregular.TTF, []FaceOption{WithDPI(-1)}, ErrInvalidSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFace(tt.data, tt.opts...)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewFace() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNewFace_InvalidData(t *testing.T) {
	if _, err := NewFace([]byte("not a font")); err == nil {
		t.Error("NewFace(garbage) should fail")
	}
}

func TestFace_Name(t *testing.T) {
	face := testFace(t)
	if got := face.Name(); got != "Go" {
		t.Errorf("Name() = %q, want %q", got, "Go")
	}
}

func TestFace_RasterizeLetter(t *testing.T) {
	face := testFace(t, WithSize(32))

	g, err := face.Rasterize('a')
	if err != nil {
		t.Fatalf("Rasterize('a') error = %v", err)
	}
	if g.Empty() {
		t.Fatal("Rasterize('a') returned an empty glyph")
	}
	if len(g.Bitmap) != g.Width*g.Height {
		t.Errorf("len(Bitmap) = %d, want %d", len(g.Bitmap), g.Width*g.Height)
	}
	if g.Advance.X <= 0 {
		t.Errorf("Advance.X = %v, want > 0", g.Advance.X)
	}
	if w := (g.Bounds.Max.X - g.Bounds.Min.X).Round(); w != g.Width {
		t.Errorf("Bounds width = %d, want %d", w, g.Width)
	}
	if h := (g.Bounds.Max.Y - g.Bounds.Min.Y).Round(); h != g.Height {
		t.Errorf("Bounds height = %d, want %d", h, g.Height)
	}
	if g.Bounds.Max.Y <= 0 {
		t.Errorf("Bounds.Max.Y = %v, want ink above the baseline", g.Bounds.Max.Y)
	}

	var ink bool
	for _, c := range g.Bitmap {
		if c != 0 {
			ink = true
			break
		}
	}
	if !ink {
		t.Error("Rasterize('a') bitmap has no coverage")
	}
}

func TestFace_RasterizeDescender(t *testing.T) {
	face := testFace(t, WithSize(32))

	g, err := face.Rasterize('p')
	if err != nil {
		t.Fatalf("Rasterize('p') error = %v", err)
	}
	if g.Bounds.Min.Y >= 0 {
		t.Errorf("Bounds.Min.Y = %v, want below the baseline", g.Bounds.Min.Y)
	}
}

func TestFace_RasterizeSpace(t *testing.T) {
	face := testFace(t)

	g, err := face.Rasterize(' ')
	if err != nil {
		t.Fatalf("Rasterize(' ') error = %v", err)
	}
	if !g.Empty() {
		t.Errorf("space should be empty, got %dx%d", g.Width, g.Height)
	}
	if g.Bitmap != nil {
		t.Error("space should have no bitmap")
	}
	if g.Advance.X <= 0 {
		t.Errorf("space Advance.X = %v, want > 0", g.Advance.X)
	}
}

func TestFace_RasterizeMissing(t *testing.T) {
	face := testFace(t)

	_, err := face.Rasterize('一')
	var rerr *RasterizationError
	if !errors.As(err, &rerr) {
		t.Fatalf("Rasterize(U+4E00) error = %v, want *RasterizationError", err)
	}
	if rerr.Code != '一' {
		t.Errorf("RasterizationError.Code = %U, want U+4E00", rerr.Code)
	}
	if !errors.Is(err, ErrGlyphNotFound) {
		t.Errorf("error should wrap ErrGlyphNotFound, got %v", err)
	}
}

func TestFace_RasterizeDeterministic(t *testing.T) {
	face := testFace(t)

	a, err := face.Rasterize('g')
	if err != nil {
		t.Fatal(err)
	}
	b, err := face.Rasterize('g')
	if err != nil {
		t.Fatal(err)
	}
	if a.Width != b.Width || a.Height != b.Height || a.Advance != b.Advance {
		t.Errorf("repeated Rasterize('g') differs: %+v vs %+v", a.Bounds, b.Bounds)
	}
	for i := range a.Bitmap {
		if a.Bitmap[i] != b.Bitmap[i] {
			t.Fatalf("bitmap differs at %d", i)
		}
	}
}

func TestFace_Kern(t *testing.T) {
	face := testFace(t, WithSize(48))

	if k := face.Kern('a', '一'); k.X != 0 || k.Y != 0 {
		t.Errorf("Kern with a missing glyph = %v, want zero", k)
	}

	k := face.Kern('A', 'V')
	if k.Y != 0 {
		t.Errorf("Kern('A','V').Y = %v, want 0", k.Y)
	}
	if k.X > 0 {
		t.Errorf("Kern('A','V').X = %v, want a tightening (<= 0)", k.X)
	}
	t.Logf("Kern('A','V') = %v", k.X)
}

func TestFace_Metrics(t *testing.T) {
	face := testFace(t, WithSize(20))
	m := face.Metrics()
	if m.Ascent <= 0 || m.Height <= 0 {
		t.Errorf("Metrics() = %+v, want positive ascent and height", m)
	}
}
