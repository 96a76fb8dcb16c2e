package layout

import (
	"math"

	"github.com/gogpu/texter/internal/logging"
	"github.com/gogpu/texter/text"
	"github.com/gogpu/texter/text/atlas"
)

// Instance is one glyph placed for rendering. Position is the bottom-left
// corner of the glyph's ink box.
type Instance struct {
	Position Vec2
	Slot     int
}

// Result is the output of a layout pass.
type Result struct {
	// Instances holds one entry per emitted glyph, in buffer order.
	Instances []Instance

	// Positions holds the pen position of every code, index aligned with
	// the buffer after the pass.
	Positions []Vec2

	// End is the pen position after the last code: the screen position of
	// the end-of-text cursor.
	End Vec2

	// Lines is the number of lines, counting the line End is on.
	Lines int
}

// Engine lays out buffers against one atlas. It holds no per-pass state and
// may be reused for any number of passes.
type Engine struct {
	atlas *atlas.Atlas
	cfg   engineConfig
}

// NewEngine creates an engine for a.
func NewEngine(a *atlas.Atlas, opts ...Option) *Engine {
	cfg := defaultEngineConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Engine{atlas: a, cfg: cfg}
}

// Atlas returns the engine's atlas.
func (e *Engine) Atlas() *atlas.Atlas { return e.atlas }

// Origin returns the pen position of the first code.
func (e *Engine) Origin() Vec2 { return e.cfg.origin }

// BoxWidth returns the wrap width.
func (e *Engine) BoxWidth() float32 { return e.cfg.boxWidth }

// WrapMode returns the wrap mode.
func (e *Engine) WrapMode() WrapMode { return e.cfg.wrap }

// SlotHeight returns the line height in pixels.
func (e *Engine) SlotHeight() float32 { return float32(e.atlas.SlotHeight) }

// Decode classifies code against the engine's atlas.
func (e *Engine) Decode(code rune) Token {
	return Decode(code, e.atlas)
}

// pass is the scratch state of one Layout call.
type pass struct {
	e          *Engine
	codes      []rune
	tokens     []Token
	positions  []Vec2
	lineStarts []int // line start index in effect when each code was placed
	removed    []bool

	pen       Vec2
	lineStart int
}

// Layout positions every code of buf and emits glyph instances.
//
// Backspace codes are resolved here: each one is removed from buf together
// with the nearest preceding code still present. After Layout returns,
// len(Result.Positions) == buf.Len().
func (e *Engine) Layout(buf *Buffer) Result {
	n := buf.Len()
	p := &pass{
		e:          e,
		codes:      buf.codes,
		tokens:     make([]Token, n),
		positions:  make([]Vec2, n),
		lineStarts: make([]int, n),
		removed:    make([]bool, n),
		pen:        e.cfg.origin,
	}
	for i, c := range p.codes {
		p.tokens[i] = e.Decode(c)
	}

	for i := range n {
		p.place(i)
	}

	tokens, positions := p.tokens, p.positions
	if p.anyRemoved() {
		keep := make([]bool, n)
		for i, r := range p.removed {
			keep[i] = !r
		}
		buf.compact(keep)
		tokens = compact(tokens, keep)
		positions = compact(positions, keep)
	}

	return Result{
		Instances: e.emit(tokens, positions),
		Positions: positions,
		End:       p.pen,
		Lines:     e.lineCount(p.pen),
	}
}

// place runs the first pass for code i.
func (p *pass) place(i int) {
	tok := p.tokens[i]
	p.positions[i] = p.pen
	p.lineStarts[i] = p.lineStart

	switch tok.Kind {
	case KindGlyph:
		p.pen = p.pen.Add(p.e.advance(p.tokens, i))
		if p.shouldWrap() {
			p.wrap(i)
		}

	case KindBackspace:
		p.removed[i] = true
		j := i - 1
		for j >= 0 && p.removed[j] {
			j--
		}
		if j >= 0 {
			p.removed[j] = true
			p.pen = p.positions[j]
			p.lineStart = p.lineStarts[j]
		}
		p.positions[i] = p.pen

	case KindNewline:
		p.pen = Vec2{X: p.e.cfg.origin.X, Y: p.pen.Y - p.e.SlotHeight()}
		p.lineStart = i + 1

	default:
		logging.Logger().Debug("layout: skipping code",
			"index", i, "code", tok.Code, "kind", tok.Kind.String())
	}
}

func (p *pass) shouldWrap() bool {
	cfg := p.e.cfg
	if cfg.boxWidth <= 0 || cfg.wrap == WrapNone {
		return false
	}
	return p.pen.X-cfg.origin.X >= cfg.boxWidth
}

// wrap breaks the current line after glyph i overflowed the box.
func (p *pass) wrap(i int) {
	w := i
	for w >= p.lineStart && !p.tokens[w].IsWhitespace() {
		w--
	}

	switch {
	case w == i:
		// Trailing whitespace hangs past the box edge.
		return

	case w >= p.lineStart:
		shift := V2(p.positions[w+1].X-p.e.cfg.origin.X, p.e.SlotHeight())
		for k := w + 1; k <= i; k++ {
			p.positions[k] = p.positions[k].Sub(shift)
			p.lineStarts[k] = w + 1
		}
		p.lineStart = w + 1
		logging.Logger().Debug("layout: word wrap", "index", i, "break", w)

	case p.e.cfg.wrap == WrapWordChar && i > p.lineStart:
		p.positions[i] = Vec2{X: p.e.cfg.origin.X, Y: p.positions[i].Y - p.e.SlotHeight()}
		p.lineStarts[i] = i
		p.lineStart = i
		logging.Logger().Debug("layout: character wrap", "index", i)

	default:
		// No break opportunity: the word overflows.
		return
	}

	p.pen = p.positions[i].Add(p.e.advance(p.tokens, i))
}

func (p *pass) anyRemoved() bool {
	for _, r := range p.removed {
		if r {
			return true
		}
	}
	return false
}

// advance returns the pen displacement after glyph i: its advance plus the
// kerning against the next code when that is a glyph too.
func (e *Engine) advance(tokens []Token, i int) Vec2 {
	m, _ := e.atlas.SlotMetrics(tokens[i].Slot)
	dx, dy := atlas.AdvancePixels(m.Advance)
	if i+1 < len(tokens) && tokens[i+1].Kind == KindGlyph {
		dx += text.Pixels(e.cfg.kerner.Kern(tokens[i].Code, tokens[i+1].Code).X)
	}
	return V2(dx, dy)
}

// emit runs the second pass.
func (e *Engine) emit(tokens []Token, positions []Vec2) []Instance {
	instances := make([]Instance, 0, len(tokens))
	for i, tok := range tokens {
		var m atlas.GlyphMetrics
		switch tok.Kind {
		case KindGlyph:
			m, _ = e.atlas.SlotMetrics(tok.Slot)
		case KindNewline:
			m = e.atlas.Blank()
		default:
			continue
		}
		instances = append(instances, Instance{
			Position: positions[i].Add(V2(float32(m.Bounds.MinX), float32(m.Bounds.MinY))),
			Slot:     m.Slot,
		})
	}
	return instances
}

func (e *Engine) lineCount(end Vec2) int {
	h := e.SlotHeight()
	if h <= 0 {
		return 1
	}
	return int(math.Round(float64((e.cfg.origin.Y-end.Y)/h))) + 1
}

func compact[T any](s []T, keep []bool) []T {
	out := s[:0]
	for i, v := range s {
		if keep[i] {
			out = append(out, v)
		}
	}
	return out
}
