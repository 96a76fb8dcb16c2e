// Package text provides the glyph capabilities the texter core consumes.
//
// The core never talks to a font library directly. It depends on two small
// interfaces:
//
//   - Rasterizer: turns a character code into a coverage bitmap, a pen
//     advance and an ink bounding box.
//   - Kerner: returns the advance adjustment for an ordered pair of codes.
//
// Both report metrics in 26.6 fixed-point pixels (1/64 pixel units), the
// convention of FreeType and golang.org/x/image/math/fixed. Consumers convert
// explicitly with Pixels at each use site; nothing in this package converts
// silently.
//
// # Adapters
//
// Face implements both interfaces on top of golang.org/x/image/font/opentype:
//
//	face, err := text.NewFace(goregular.TTF, text.WithSize(24))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer face.Close()
//
//	g, err := face.Rasterize('a')
//
// ShapedKerner measures kerning by shaping code pairs with the HarfBuzz port
// in github.com/go-text/typesetting. It picks up GPOS kerning that the legacy
// kern table read by Face does not carry.
package text
