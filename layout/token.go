package layout

import "github.com/gogpu/texter/text/atlas"

// Control codes. They are interpreted before any atlas lookup, so an atlas
// whose range covers them never renders them as glyphs.
const (
	Backspace      rune = 0x08
	Newline        rune = 0x0A
	CarriageReturn rune = 0x0D
	CursorUp       rune = 0x11
	CursorDown     rune = 0x12
	CursorLeft     rune = 0x13
	CursorRight    rune = 0x14
	Delete         rune = 0x7F
)

// Kind classifies a decoded code.
type Kind uint8

const (
	// KindUnrecognized is a code that is neither a control code nor in the
	// atlas. It is skipped by layout.
	KindUnrecognized Kind = iota

	// KindGlyph is a code with an atlas slot.
	KindGlyph

	// KindBackspace deletes itself and the preceding code.
	KindBackspace

	// KindNewline ends the current line.
	KindNewline

	// KindDirection moves the cursor and never reaches layout output.
	KindDirection
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindUnrecognized:
		return "Unrecognized"
	case KindGlyph:
		return "Glyph"
	case KindBackspace:
		return "Backspace"
	case KindNewline:
		return "Newline"
	case KindDirection:
		return "Direction"
	default:
		return "Unknown"
	}
}

// Direction is a cursor movement.
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "None"
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Token is a decoded code. Slot is valid for KindGlyph, Dir for
// KindDirection.
type Token struct {
	Kind Kind
	Code rune
	Slot int
	Dir  Direction
}

// Decode classifies code against the atlas.
func Decode(code rune, a *atlas.Atlas) Token {
	tok := Token{Code: code}
	switch code {
	case Backspace, Delete:
		tok.Kind = KindBackspace
	case Newline, CarriageReturn:
		tok.Kind = KindNewline
	case CursorUp:
		tok.Kind, tok.Dir = KindDirection, DirUp
	case CursorDown:
		tok.Kind, tok.Dir = KindDirection, DirDown
	case CursorLeft:
		tok.Kind, tok.Dir = KindDirection, DirLeft
	case CursorRight:
		tok.Kind, tok.Dir = KindDirection, DirRight
	default:
		if a == nil {
			break
		}
		if slot, ok := a.Slot(code); ok {
			tok.Kind, tok.Slot = KindGlyph, slot
		}
	}
	return tok
}

// IsWhitespace reports whether tok is a glyph that may end a line.
func (t Token) IsWhitespace() bool {
	return t.Kind == KindGlyph && (t.Code == ' ' || t.Code == '\t')
}
