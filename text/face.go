package text

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Face rasterizes and kerns glyphs from a TrueType/OpenType font using
// golang.org/x/image/font/opentype.
//
// Face implements both Rasterizer and Kerner. It keeps a scratch buffer
// between calls and is NOT safe for concurrent use; the atlas builder calls
// it from a single goroutine.
type Face struct {
	font   *opentype.Font
	face   font.Face
	buf    sfnt.Buffer
	ppem   fixed.Int26_6
	config faceConfig
}

// NewFace parses font data (TTF or OTF) and prepares a face at the
// configured size.
func NewFace(data []byte, opts ...FaceOption) (*Face, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	cfg, err := newFaceConfig(opts)
	if err != nil {
		return nil, err
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	otFace, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    cfg.size,
		DPI:     cfg.dpi,
		Hinting: cfg.hinting,
	})
	if err != nil {
		return nil, fmt.Errorf("text: failed to create face: %w", err)
	}

	return &Face{
		font:   f,
		face:   otFace,
		ppem:   fixed.Int26_6(cfg.ppem()*64 + 0.5),
		config: cfg,
	}, nil
}

// Name returns the font family name, or an empty string if the font has none.
func (f *Face) Name() string {
	if name, err := f.font.Name(&f.buf, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

// Metrics returns the face's vertical metrics.
func (f *Face) Metrics() font.Metrics {
	return f.face.Metrics()
}

// Rasterize implements Rasterizer.
//
// The bitmap is taken from the face's coverage mask with the pen at the
// origin. A code the font maps to .notdef is reported as ErrGlyphNotFound.
func (f *Face) Rasterize(r rune) (Glyph, error) {
	gi, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil {
		return Glyph{}, &RasterizationError{Code: r, Err: err}
	}
	if gi == 0 {
		return Glyph{}, &RasterizationError{Code: r, Err: ErrGlyphNotFound}
	}

	dr, mask, maskp, advance, ok := f.face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		return Glyph{}, &RasterizationError{Code: r, Err: ErrGlyphNotFound}
	}

	// dr is y-down with the baseline at 0; flip it into the y-up ink box.
	g := Glyph{
		Width:   dr.Dx(),
		Height:  dr.Dy(),
		Advance: fixed.Point26_6{X: advance},
		Bounds: fixed.Rectangle26_6{
			Min: fixed.P(dr.Min.X, -dr.Max.Y),
			Max: fixed.P(dr.Max.X, -dr.Min.Y),
		},
	}
	if g.Empty() || mask == nil {
		return g, nil
	}

	dst := image.NewAlpha(image.Rect(0, 0, g.Width, g.Height))
	draw.Draw(dst, dst.Bounds(), mask, maskp, draw.Src)
	g.Bitmap = dst.Pix
	return g, nil
}

// Kern implements Kerner using the font's kern table.
// Pairs without data, and codes missing from the font, yield zero.
func (f *Face) Kern(left, right rune) fixed.Point26_6 {
	x0, err := f.font.GlyphIndex(&f.buf, left)
	if err != nil || x0 == 0 {
		return fixed.Point26_6{}
	}
	x1, err := f.font.GlyphIndex(&f.buf, right)
	if err != nil || x1 == 0 {
		return fixed.Point26_6{}
	}
	k, err := f.font.Kern(&f.buf, x0, x1, f.ppem, f.config.hinting)
	if err != nil {
		return fixed.Point26_6{}
	}
	return fixed.Point26_6{X: k}
}

// Close releases the face.
func (f *Face) Close() error {
	return f.face.Close()
}
