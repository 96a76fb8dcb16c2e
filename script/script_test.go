package script_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/texter/layout"
	"github.com/gogpu/texter/script"
)

const sampleScript = `
# greet, then fix a typo
type "helo"
left
type "l"
right 1

newline 2
backspace
type "tab\there"
`

func TestParseString(t *testing.T) {
	s, err := script.ParseString(sampleScript)
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	if len(s.Statements) != 7 {
		t.Fatalf("len(Statements) = %d, want 7", len(s.Statements))
	}

	first := s.Statements[0]
	if first.Type == nil || string(first.Type.Text) != "helo" {
		t.Errorf("Statements[0] = %+v, want type \"helo\"", first)
	}
	if first.Pos.Line != 3 {
		t.Errorf("Statements[0].Pos.Line = %d, want 3", first.Pos.Line)
	}
	nl := s.Statements[4]
	if nl.Key == nil || nl.Key.Key != "newline" || nl.Key.Count == nil || *nl.Key.Count != 2 {
		t.Errorf("Statements[4] = %+v, want newline 2", nl)
	}
}

func TestCodes(t *testing.T) {
	s, err := script.ParseString(sampleScript)
	if err != nil {
		t.Fatal(err)
	}

	want := []rune("helo")
	want = append(want, layout.CursorLeft, 'l', layout.CursorRight,
		layout.Newline, layout.Newline, layout.Backspace)
	want = append(want, []rune("tab\there")...)

	if got := s.Codes(); string(got) != string(want) {
		t.Errorf("Codes() = %q, want %q", got, want)
	}
}

func TestParse_Reader(t *testing.T) {
	s, err := script.Parse(strings.NewReader("up 3\ndown\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	got := s.Codes()
	want := []rune{layout.CursorUp, layout.CursorUp, layout.CursorUp, layout.CursorDown}
	if string(got) != string(want) {
		t.Errorf("Codes() = %q, want %q", got, want)
	}
}

func TestParse_ZeroCount(t *testing.T) {
	s, err := script.ParseString("backspace 0")
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Codes(); len(got) != 0 {
		t.Errorf("Codes() = %q, want none", got)
	}
}

func TestParse_Empty(t *testing.T) {
	for _, in := range []string{"", "\n\n", "# only a comment\n"} {
		s, err := script.ParseString(in)
		if err != nil {
			t.Errorf("ParseString(%q) error = %v", in, err)
			continue
		}
		if len(s.Codes()) != 0 {
			t.Errorf("ParseString(%q) produced codes", in)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []string{
		`jump`,
		`type helo`,
		`type "unterminated`,
		`left "x"`,
	}
	for _, in := range tests {
		if _, err := script.ParseString(in); err == nil {
			t.Errorf("ParseString(%q) should fail", in)
		}
	}
}

func TestParse_CountLimit(t *testing.T) {
	s, err := script.ParseString("backspace 1000")
	if err != nil {
		t.Fatalf("ParseString(backspace %d) error = %v", script.MaxCount, err)
	}
	if got := len(s.Codes()); got != script.MaxCount {
		t.Errorf("len(Codes()) = %d, want %d", got, script.MaxCount)
	}

	for _, in := range []string{"backspace 1001", "type \"x\"\nleft 1000000000"} {
		if _, err := script.ParseString(in); !errors.Is(err, script.ErrCountTooLarge) {
			t.Errorf("ParseString(%q) error = %v, want ErrCountTooLarge", in, err)
		}
		if _, err := script.Parse(strings.NewReader(in)); !errors.Is(err, script.ErrCountTooLarge) {
			t.Errorf("Parse(%q) error = %v, want ErrCountTooLarge", in, err)
		}
	}
}

func TestStatementCodes_Clamped(t *testing.T) {
	n := 1 << 30
	st := &script.Statement{Key: &script.KeyStatement{Key: "left", Count: &n}}
	if got := len(st.Codes()); got != script.MaxCount {
		t.Errorf("len(Codes()) = %d, want %d", got, script.MaxCount)
	}
}

func TestString(t *testing.T) {
	s, err := script.ParseString("type \"a\\\"b\"\nleft 2\nright\n")
	if err != nil {
		t.Fatal(err)
	}
	want := "type \"a\\\"b\"\nleft 2\nright\n"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	again, err := script.ParseString(s.String())
	if err != nil {
		t.Fatal(err)
	}
	if string(again.Codes()) != string(s.Codes()) {
		t.Error("String() output does not parse back to the same codes")
	}
}
