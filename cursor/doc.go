// Package cursor maps between buffer indices and screen positions and runs
// the single-cursor edit state machine.
//
// A cursor index i is in [0, Len]. Index Len is the end of the text; its
// screen position is layout.Result.End. Vertical movement is a
// nearest-glyph search over the laid-out positions, so the column is not
// preserved across lines of different lengths.
package cursor
