package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// ShapedKerner measures pair kerning with go-text/typesetting's HarfBuzz
// shaper. Shaping "AV" moves the V left compared to shaping "A" alone; that
// difference is the kerning of the pair. Unlike Face.Kern, this sees GPOS
// pair adjustments as well as the legacy kern table.
//
// Results are memoized. ShapedKerner is safe for concurrent use: the
// HarfbuzzShaper and the go-text Face it shapes with are not, so every
// lookup runs under a mutex.
type ShapedKerner struct {
	mu     sync.Mutex
	face   *font.Face
	size   fixed.Int26_6
	shaper shaping.HarfbuzzShaper

	pairs    map[KernPair]fixed.Point26_6
	advances map[rune]fixed.Int26_6
}

// NewShapedKerner parses font data with go-text/typesetting.
// Only the size-related options (WithSize, WithDPI) apply.
func NewShapedKerner(data []byte, opts ...FaceOption) (*ShapedKerner, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	cfg, err := newFaceConfig(opts)
	if err != nil {
		return nil, err
	}

	// ParseTTF returns a *Face which embeds the read-only *Font.
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	return &ShapedKerner{
		face:     face,
		size:     fixed.Int26_6(cfg.ppem()*64 + 0.5),
		pairs:    make(map[KernPair]fixed.Point26_6),
		advances: make(map[rune]fixed.Int26_6),
	}, nil
}

// Kern implements Kerner.
func (k *ShapedKerner) Kern(left, right rune) fixed.Point26_6 {
	key := KernPair{Left: left, Right: right}

	k.mu.Lock()
	defer k.mu.Unlock()

	if v, ok := k.pairs[key]; ok {
		return v
	}

	var v fixed.Point26_6
	out := k.shape([]rune{left, right})
	// A ligature or a missing glyph collapses the pair; there is nothing
	// to compare against, so the pair gets no adjustment.
	if len(out.Glyphs) == 2 && out.Glyphs[0].GlyphID != 0 && out.Glyphs[1].GlyphID != 0 {
		v.X = out.Glyphs[0].Advance - k.advance(left)
	}
	k.pairs[key] = v
	return v
}

// advance returns the standalone advance of r. Must be called with mu held.
func (k *ShapedKerner) advance(r rune) fixed.Int26_6 {
	if a, ok := k.advances[r]; ok {
		return a
	}
	var a fixed.Int26_6
	if out := k.shape([]rune{r}); len(out.Glyphs) == 1 {
		a = out.Glyphs[0].Advance
	}
	k.advances[r] = a
	return a
}

// shape runs the HarfBuzz shaper over runes. Must be called with mu held.
func (k *ShapedKerner) shape(runes []rune) shaping.Output {
	return k.shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      k.face,
		Size:      k.size,
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	})
}

// detectScript returns the script of the first non-space rune, or Latin.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
