// Package layout turns a stream of character codes into positioned glyph
// instances.
//
// A layout pass runs over the whole Buffer:
//
//  1. every code is decoded once into a Token,
//  2. pens are advanced glyph by glyph (with kerning) and lines are wrapped
//     at the last whitespace when the box width is exceeded,
//  3. Backspace codes delete themselves and the code before them,
//  4. one Instance per glyph is emitted for the renderer.
//
// Screen space is y-up. A new line starts one atlas SlotHeight below the
// previous one.
package layout
