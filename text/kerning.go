package text

import (
	"golang.org/x/image/math/fixed"
)

// Kerner looks up the advance adjustment between two adjacent codes.
//
// The pair is identified by character code. Codes map one-to-one onto atlas
// slots, so this is equivalent to a lookup by glyph index. Implementations
// return the zero vector when they have no data for a pair; kerning is never
// an error.
type Kerner interface {
	Kern(left, right rune) fixed.Point26_6
}

// KernFunc adapts an ordinary function to the Kerner interface.
type KernFunc func(left, right rune) fixed.Point26_6

// Kern implements Kerner.
func (f KernFunc) Kern(left, right rune) fixed.Point26_6 {
	return f(left, right)
}

// NoKerning is a Kerner that never adjusts.
var NoKerning Kerner = KernFunc(func(rune, rune) fixed.Point26_6 {
	return fixed.Point26_6{}
})

// KernPair is the key of a KernPairs table.
type KernPair struct {
	Left, Right rune
}

// KernPairs is a static kerning table.
type KernPairs map[KernPair]fixed.Point26_6

// Kern implements Kerner.
func (p KernPairs) Kern(left, right rune) fixed.Point26_6 {
	return p[KernPair{Left: left, Right: right}]
}
