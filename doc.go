// Package texter renders editable text from a pre-built glyph atlas.
//
// # Overview
//
// Glyphs are rasterized once into a packed atlas (package text/atlas).
// While the user types, the character buffer is laid out into positioned
// glyph instances (package layout) and a single cursor is kept in sync with
// the layout (package cursor). A renderer only needs the atlas texture and
// the instance list.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/texter"
//		"github.com/gogpu/texter/text"
//		"github.com/gogpu/texter/text/atlas"
//		"golang.org/x/image/font/gofont/goregular"
//	)
//
//	face, _ := text.NewFace(goregular.TTF, text.WithSize(24))
//	a, _ := atlas.Build(face, ' ', 95)
//
//	ed := texter.NewEditor(a, texter.WithBoxWidth(400), texter.WithKerning(face))
//	_ = ed.TypeString("hello world")
//	for _, inst := range ed.Instances() {
//		// draw a.SlotRect(inst.Slot) at inst.Position
//	}
//
// # Coordinate System
//
// Screen space is y-up:
//   - The origin is the pen position of the first character
//   - X increases right
//   - Y increases up; each new line is one atlas SlotHeight lower
//
// # Control Codes
//
// The editor works on single-byte character codes. A few codes are
// reserved for editing and are never rendered: Backspace (0x08, and Delete
// 0x7F), Newline (0x0A, and CarriageReturn 0x0D), and the four cursor
// movements 0x11-0x14. See package layout.
//
// # Logging
//
// texter is silent by default. SetLogger enables structured logging for
// all sub-packages.
package texter
