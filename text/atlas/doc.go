// Package atlas packs the glyphs of a contiguous character range into one
// 8-bit coverage texture and records per-code metrics for layout.
//
// The texture is a single vertical strip: every glyph gets a cell of
// SlotWidth x SlotHeight pixels, stacked top to bottom in code order. Glyph
// bitmaps are bottom-aligned inside their cell so that a renderer can place
// all quads on a shared baseline.
//
//	a, err := atlas.Build(face, 'a', 26)
//	if err != nil {
//		return err
//	}
//	m, ok := a.Metrics('q')
//
// Advances are kept in the rasterizer's 26.6 fixed-point units. Consumers
// convert at the point of use, see AdvancePixels.
//
// An Atlas is immutable once built and may be shared between goroutines.
package atlas
