package cursor

import (
	"github.com/gogpu/texter/internal/logging"
	"github.com/gogpu/texter/layout"
)

// Model is a buffer, a layout engine and one cursor. Every Apply re-runs
// layout, so Result always describes the current buffer.
//
// Model is not safe for concurrent use.
type Model struct {
	buf    *layout.Buffer
	engine *layout.Engine
	index  int
	res    layout.Result
}

// NewModel creates a model over buf (a new DefaultCapacity buffer if nil)
// with the cursor at the end of the text.
func NewModel(e *layout.Engine, buf *layout.Buffer) *Model {
	if buf == nil {
		buf = layout.NewBuffer(layout.DefaultCapacity)
	}
	m := &Model{buf: buf, engine: e}
	m.relayout()
	m.index = buf.Len()
	return m
}

// Apply feeds one code to the model.
//
// Glyphs and newlines are inserted at the cursor, Backspace removes the code
// before it, directions move it. Unrecognized codes are logged and ignored.
// The only error is layout.ErrBufferFull.
func (m *Model) Apply(r rune) error {
	tok := m.engine.Decode(r)

	var err error
	switch tok.Kind {
	case layout.KindGlyph, layout.KindNewline:
		m.index, err = Insert(m.index, r, m.buf)

	case layout.KindBackspace:
		if m.buf.Full() {
			// No room for the code itself; delete directly.
			m.index = Delete(m.index, m.buf)
		} else {
			m.index, err = Insert(m.index, r, m.buf)
		}

	case layout.KindDirection:
		m.index = Step(m.index, tok.Dir, m.engine.SlotHeight(), m.res)

	default:
		logging.Logger().Debug("cursor: ignoring code", "code", r)
	}

	m.relayout()
	return err
}

// Reset replaces the buffer contents and puts the cursor at the end.
func (m *Model) Reset(codes []rune) error {
	if err := m.buf.Set(codes); err != nil {
		return err
	}
	m.relayout()
	m.index = m.buf.Len()
	return nil
}

// SetIndex moves the cursor, clamped to [0, Len].
func (m *Model) SetIndex(i int) {
	m.index = clamp(i, m.buf.Len())
}

// Index returns the cursor index.
func (m *Model) Index() int { return m.index }

// Result returns the latest layout.
func (m *Model) Result() layout.Result { return m.res }

// Position returns the cursor's screen position.
func (m *Model) Position() layout.Vec2 { return PositionOf(m.index, m.res) }

// Buffer returns the model's buffer. Callers must not modify it directly.
func (m *Model) Buffer() *layout.Buffer { return m.buf }

// Engine returns the model's layout engine.
func (m *Model) Engine() *layout.Engine { return m.engine }

// relayout lays the buffer out again. A pass that resolved backspaces
// placed the surviving codes while the removed ones were still present, so
// the compacted buffer gets one more pass.
func (m *Model) relayout() {
	n := m.buf.Len()
	m.res = m.engine.Layout(m.buf)
	if m.buf.Len() < n {
		m.res = m.engine.Layout(m.buf)
	}
	m.index = clamp(m.index, m.buf.Len())
}
