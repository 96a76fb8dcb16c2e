package texter

import (
	"fmt"
	"io"

	"github.com/gogpu/texter/cursor"
	"github.com/gogpu/texter/document"
	"github.com/gogpu/texter/layout"
	"github.com/gogpu/texter/text/atlas"
)

// Editor is a single-cursor text editor over a glyph atlas.
// It is not safe for concurrent use.
type Editor struct {
	atlas *atlas.Atlas
	model *cursor.Model
	cfg   editorConfig
}

// NewEditor creates an empty editor.
func NewEditor(a *atlas.Atlas, opts ...Option) *Editor {
	cfg := defaultEditorConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	engine := layout.NewEngine(a,
		layout.WithOrigin(cfg.origin),
		layout.WithBoxWidth(cfg.boxWidth),
		layout.WithKerning(cfg.kerner),
		layout.WithWrapMode(cfg.wrap),
	)
	return &Editor{
		atlas: a,
		model: cursor.NewModel(engine, layout.NewBuffer(cfg.capacity)),
		cfg:   cfg,
	}
}

// Type applies one code: a character, a control code or a cursor movement.
func (e *Editor) Type(r rune) error {
	return e.model.Apply(r)
}

// TypeString applies every rune of s in order and stops at the first error.
func (e *Editor) TypeString(s string) error {
	for _, r := range s {
		if err := e.model.Apply(r); err != nil {
			return err
		}
	}
	return nil
}

// TypeCodes applies codes in order and stops at the first error.
func (e *Editor) TypeCodes(codes []rune) error {
	for _, r := range codes {
		if err := e.model.Apply(r); err != nil {
			return err
		}
	}
	return nil
}

// Atlas returns the editor's atlas.
func (e *Editor) Atlas() *atlas.Atlas { return e.atlas }

// Instances returns the glyph instances of the current layout.
func (e *Editor) Instances() []layout.Instance { return e.model.Result().Instances }

// Positions returns the pen position of every code.
func (e *Editor) Positions() []layout.Vec2 { return e.model.Result().Positions }

// Result returns the full current layout.
func (e *Editor) Result() layout.Result { return e.model.Result() }

// Cursor returns the cursor index.
func (e *Editor) Cursor() int { return e.model.Index() }

// SetCursor moves the cursor, clamped to the text.
func (e *Editor) SetCursor(i int) { e.model.SetIndex(i) }

// CursorPosition returns the cursor's screen position.
func (e *Editor) CursorPosition() layout.Vec2 { return e.model.Position() }

// Len returns the number of codes in the buffer.
func (e *Editor) Len() int { return e.model.Buffer().Len() }

// Text returns the buffer contents.
func (e *Editor) Text() string { return e.model.Buffer().String() }

// Load replaces the buffer with a document read from r and puts the cursor
// at the end.
func (e *Editor) Load(r io.Reader) error {
	codes, err := document.Decode(r, document.WithCharmap(e.cfg.charmap))
	if err != nil {
		return err
	}
	if err := e.model.Reset(codes); err != nil {
		return fmt.Errorf("texter: load %d codes: %w", len(codes), err)
	}
	return nil
}

// Save writes the buffer to w.
func (e *Editor) Save(w io.Writer) error {
	return document.Encode(w, e.model.Buffer().Codes(), document.WithCharmap(e.cfg.charmap))
}
