// Package script parses edit scripts: plain-text keystroke recordings that
// can be replayed through an editor.
//
//	# greet, then fix a typo
//	type "helo"
//	left
//	type "l"
//	right
//	newline 2
//	backspace
//
// Every statement sits on its own line. Key statements take an optional
// repeat count.
package script

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/gogpu/texter/layout"
)

var (
	scriptLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "Comment", Pattern: `#[^\n]*`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Int", Pattern: `\d+`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	})

	scriptParser = participle.MustBuild[Script](
		participle.Lexer(scriptLexer),
		participle.Elide("Whitespace", "Comment"),
	)
)

// Script is a parsed edit script.
type Script struct {
	Statements []*Statement `parser:"Newline* ( @@ Newline* )*"`
}

// Statement is one line of a script.
type Statement struct {
	Pos  lexer.Position `parser:"" json:"-"`
	Type *TypeStatement `parser:"  @@"`
	Key  *KeyStatement  `parser:"| @@"`
}

// TypeStatement types literal text.
type TypeStatement struct {
	Text StringLiteral `parser:"'type' @String"`
}

// KeyStatement presses a named key Count times (once when omitted).
type KeyStatement struct {
	Key   string `parser:"@( 'backspace' | 'newline' | 'up' | 'down' | 'left' | 'right' )"`
	Count *int   `parser:"@Int?"`
}

// StringLiteral is a Go-style quoted string, unquoted on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

var keyCodes = map[string]rune{
	"backspace": layout.Backspace,
	"newline":   layout.Newline,
	"up":        layout.CursorUp,
	"down":      layout.CursorDown,
	"left":      layout.CursorLeft,
	"right":     layout.CursorRight,
}

// MaxCount bounds a key statement's repeat count. No buffer holds more
// codes than this, so larger counts could never take effect.
const MaxCount = layout.DefaultCapacity

// ErrCountTooLarge is returned for a repeat count above MaxCount.
var ErrCountTooLarge = errors.New("script: repeat count too large")

// Parse parses a script from an io.Reader.
func Parse(r io.Reader) (*Script, error) {
	s, err := scriptParser.Parse("", r)
	if err != nil {
		return nil, err
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// ParseString parses a script from a string.
func ParseString(input string) (*Script, error) {
	s, err := scriptParser.ParseString("", input)
	if err != nil {
		return nil, err
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Script) validate() error {
	for _, st := range s.Statements {
		if st.Key != nil && st.Key.Count != nil && *st.Key.Count > MaxCount {
			return fmt.Errorf("%s: %s %d: %w", st.Pos, st.Key.Key, *st.Key.Count, ErrCountTooLarge)
		}
	}
	return nil
}

// Codes expands the script into the code stream it stands for.
func (s *Script) Codes() []rune {
	var out []rune
	for _, st := range s.Statements {
		out = append(out, st.Codes()...)
	}
	return out
}

// Codes expands a single statement.
func (st *Statement) Codes() []rune {
	switch {
	case st.Type != nil:
		return []rune(string(st.Type.Text))
	case st.Key != nil:
		n := 1
		if st.Key.Count != nil {
			n = min(*st.Key.Count, MaxCount)
		}
		code := keyCodes[st.Key.Key]
		out := make([]rune, n)
		for i := range out {
			out[i] = code
		}
		return out
	default:
		return nil
	}
}

// String renders the statement back in script syntax.
func (st *Statement) String() string {
	switch {
	case st.Type != nil:
		return "type " + strconv.Quote(string(st.Type.Text))
	case st.Key != nil:
		if st.Key.Count == nil {
			return st.Key.Key
		}
		return st.Key.Key + " " + strconv.Itoa(*st.Key.Count)
	default:
		return ""
	}
}

// String renders the script, one statement per line.
func (s *Script) String() string {
	var b strings.Builder
	for _, st := range s.Statements {
		b.WriteString(st.String())
		b.WriteByte('\n')
	}
	return b.String()
}
