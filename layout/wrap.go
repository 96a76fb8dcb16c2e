package layout

import (
	"fmt"
	"strings"
)

// WrapMode specifies what happens when a line exceeds the box width and
// contains no whitespace to break at.
type WrapMode uint8

const (
	// WrapWord breaks at whitespace only. A word longer than the box
	// overflows and is never split. This is the default.
	WrapWord WrapMode = iota

	// WrapWordChar breaks at whitespace first, then moves the overflowing
	// glyph alone to a new line.
	WrapWordChar

	// WrapNone disables wrapping; lines may exceed the box width.
	WrapNone
)

// String returns the string representation of the wrap mode.
func (m WrapMode) String() string {
	switch m {
	case WrapWord:
		return "Word"
	case WrapWordChar:
		return "WordChar"
	case WrapNone:
		return "None"
	default:
		return "Unknown"
	}
}

// ParseWrapMode parses the case-insensitive name of a wrap mode.
func ParseWrapMode(s string) (WrapMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "word":
		return WrapWord, nil
	case "wordchar", "word-char", "word_char":
		return WrapWordChar, nil
	case "none":
		return WrapNone, nil
	default:
		return WrapWord, fmt.Errorf("layout: unknown wrap mode %q", s)
	}
}
