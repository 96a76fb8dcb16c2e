package atlas

import (
	"errors"
	"image"

	"golang.org/x/image/math/fixed"

	"github.com/gogpu/texter/internal/logging"
	"github.com/gogpu/texter/text"
)

// BBox is a glyph's ink box in whole pixels, relative to the pen origin.
// Y grows upward: MinY is negative for descenders.
type BBox struct {
	MinX, MinY, MaxX, MaxY int
}

// Dx returns the box width.
func (b BBox) Dx() int { return b.MaxX - b.MinX }

// Dy returns the box height.
func (b BBox) Dy() int { return b.MaxY - b.MinY }

// GlyphMetrics describes one packed glyph.
type GlyphMetrics struct {
	// Advance is the pen displacement in 26.6 units, exactly as the
	// rasterizer reported it.
	Advance fixed.Point26_6

	// Bounds is the ink box relative to the pen origin.
	Bounds BBox

	// Width and Height are the bitmap size in pixels.
	Width, Height int

	// Slot is the cell index in the texture strip.
	Slot int
}

// AdvancePixels converts a 26.6 advance to pixels.
func AdvancePixels(adv fixed.Point26_6) (dx, dy float32) {
	return text.Pixels(adv.X), text.Pixels(adv.Y)
}

// Atlas is a packed glyph strip for the codes [start, start+count).
type Atlas struct {
	img   *image.Alpha
	alloc *SlotAllocator

	// SlotWidth and SlotHeight are the cell size. SlotHeight includes the
	// padding rows and doubles as the line height in layout.
	SlotWidth, SlotHeight int

	maxHeight int
	start     rune
	count     int
	metrics   []GlyphMetrics // per slot; a trailing blank slot follows the range
	blankCode rune
	blank     GlyphMetrics
}

// Build rasterizes every code in [start, start+count) once and packs the
// results into a single strip texture.
//
// Any rasterization failure aborts the build with a *text.RasterizationError
// naming the failing code.
func Build(r text.Rasterizer, start rune, count int, opts ...Option) (*Atlas, error) {
	if r == nil {
		return nil, ErrNilRasterizer
	}

	cfg := defaultConfig()
	cfg.start = start
	cfg.count = count
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	glyphs := make([]text.Glyph, 0, count+1)
	var maxWidth, maxHeight int
	add := func(code rune) error {
		g, err := r.Rasterize(code)
		if err != nil {
			return rasterizationError(code, err)
		}
		if len(g.Bitmap) < g.Width*g.Height {
			return &text.RasterizationError{Code: code, Err: ErrBitmapSize}
		}
		maxWidth = max(maxWidth, g.Width)
		maxHeight = max(maxHeight, g.Height)
		glyphs = append(glyphs, g)
		return nil
	}

	for i := range count {
		if err := add(start + rune(i)); err != nil {
			return nil, err
		}
	}

	blankSlot := int(cfg.blank - start)
	if cfg.blank < start || blankSlot >= count {
		if err := add(cfg.blank); err != nil {
			return nil, err
		}
		blankSlot = count
	}

	slotWidth := max(maxWidth, 1)
	slotHeight := maxHeight + cfg.padding
	alloc := NewSlotAllocator(slotWidth, slotHeight, len(glyphs))
	bounds := alloc.Bounds()
	if bounds.Dx() > cfg.maxTextureSize || bounds.Dy() > cfg.maxTextureSize {
		return nil, &TextureSizeError{Width: bounds.Dx(), Height: bounds.Dy(), Max: cfg.maxTextureSize}
	}

	img := image.NewAlpha(bounds)
	metrics := make([]GlyphMetrics, len(glyphs))
	for i, g := range glyphs {
		cell, ok := alloc.Allocate()
		if !ok {
			break
		}
		writeBottomAligned(img, cell, maxHeight, g)
		metrics[i] = GlyphMetrics{
			Advance: g.Advance,
			Bounds:  pixelBounds(g.Bounds),
			Width:   g.Width,
			Height:  g.Height,
			Slot:    i,
		}
	}

	if !alloc.IsFull() || alloc.Allocated() != len(glyphs) {
		return nil, ErrAllocationFailed
	}

	a := &Atlas{
		img:        img,
		alloc:      alloc,
		SlotWidth:  slotWidth,
		SlotHeight: slotHeight,
		maxHeight:  maxHeight,
		start:      start,
		count:      count,
		metrics:    metrics,
		blankCode:  cfg.blank,
		blank:      metrics[blankSlot],
	}

	logging.Logger().Info("atlas built",
		"start", start,
		"count", count,
		"slots", len(glyphs),
		"slotWidth", slotWidth,
		"slotHeight", slotHeight,
	)
	return a, nil
}

// writeBottomAligned copies g into cell so that its last bitmap row lands
// on row maxHeight-1 of the cell. Empty glyphs write nothing.
func writeBottomAligned(img *image.Alpha, cell image.Rectangle, maxHeight int, g text.Glyph) {
	if g.Empty() {
		return
	}
	top := cell.Min.Y + maxHeight - g.Height
	for y := range g.Height {
		off := img.PixOffset(cell.Min.X, top+y)
		copy(img.Pix[off:off+g.Width], g.Bitmap[y*g.Width:(y+1)*g.Width])
	}
}

func pixelBounds(b fixed.Rectangle26_6) BBox {
	return BBox{
		MinX: b.Min.X.Floor(),
		MinY: b.Min.Y.Floor(),
		MaxX: b.Max.X.Ceil(),
		MaxY: b.Max.Y.Ceil(),
	}
}

func rasterizationError(code rune, err error) error {
	var rerr *text.RasterizationError
	if errors.As(err, &rerr) {
		return err
	}
	return &text.RasterizationError{Code: code, Err: err}
}

// Image returns the packed coverage texture. The caller must not modify it.
func (a *Atlas) Image() *image.Alpha {
	return a.img
}

// Range returns the first code and the number of codes in the atlas.
func (a *Atlas) Range() (start rune, count int) {
	return a.start, a.count
}

// Contains reports whether code is inside the atlas range.
func (a *Atlas) Contains(code rune) bool {
	return code >= a.start && int(code-a.start) < a.count
}

// Metrics returns the metrics for code, or false if code is outside the
// atlas range.
func (a *Atlas) Metrics(code rune) (GlyphMetrics, bool) {
	if !a.Contains(code) {
		return GlyphMetrics{}, false
	}
	return a.metrics[code-a.start], true
}

// Blank returns the metrics of the blank glyph used for newlines.
func (a *Atlas) Blank() GlyphMetrics {
	return a.blank
}

// BlankCode returns the code the blank glyph was rasterized from.
func (a *Atlas) BlankCode() rune {
	return a.blankCode
}

// Slot returns the texture slot for code. The blank code resolves to the
// blank slot even when it lies outside the range.
func (a *Atlas) Slot(code rune) (int, bool) {
	if m, ok := a.Metrics(code); ok {
		return m.Slot, true
	}
	if code == a.blankCode {
		return a.blank.Slot, true
	}
	return 0, false
}

// Slots returns the number of cells in the texture, including a trailing
// blank slot if one was added.
func (a *Atlas) Slots() int {
	return a.alloc.Capacity()
}

// SlotMetrics returns the metrics of the glyph packed into slot.
func (a *Atlas) SlotMetrics(slot int) (GlyphMetrics, bool) {
	if slot < 0 || slot >= len(a.metrics) {
		return GlyphMetrics{}, false
	}
	return a.metrics[slot], true
}

// SlotRect returns the texture rectangle of a cell, padding included.
func (a *Atlas) SlotRect(slot int) image.Rectangle {
	return a.alloc.Rect(slot)
}

// GlyphRect returns the texture rectangle holding code's bitmap.
// Empty glyphs yield an empty rectangle.
func (a *Atlas) GlyphRect(code rune) (image.Rectangle, bool) {
	m, ok := a.Metrics(code)
	if !ok {
		if code != a.blankCode {
			return image.Rectangle{}, false
		}
		m = a.blank
	}
	return a.inkRect(m), true
}

// SlotInkRect returns the texture rectangle holding the bitmap stored in
// slot, or an empty rectangle when slot is out of range.
func (a *Atlas) SlotInkRect(slot int) image.Rectangle {
	m, ok := a.SlotMetrics(slot)
	if !ok {
		return image.Rectangle{}
	}
	return a.inkRect(m)
}

func (a *Atlas) inkRect(m GlyphMetrics) image.Rectangle {
	cell := a.SlotRect(m.Slot)
	bottom := cell.Min.Y + a.maxHeight
	return image.Rect(0, bottom-m.Height, m.Width, bottom)
}
