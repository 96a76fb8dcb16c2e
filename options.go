package texter

import (
	"golang.org/x/text/encoding/charmap"

	"github.com/gogpu/texter/layout"
	"github.com/gogpu/texter/text"
)

// Option configures an Editor during creation.
//
// Example:
//
//	ed := texter.NewEditor(a,
//	    texter.WithOrigin(layout.V2(16, 480)),
//	    texter.WithBoxWidth(600),
//	)
type Option func(*editorConfig)

// editorConfig holds optional configuration for Editor creation.
type editorConfig struct {
	origin   layout.Vec2
	boxWidth float32
	kerner   text.Kerner
	wrap     layout.WrapMode
	capacity int
	charmap  *charmap.Charmap
}

// defaultEditorConfig returns the default editor options.
func defaultEditorConfig() editorConfig {
	return editorConfig{
		kerner:   text.NoKerning,
		wrap:     layout.WrapWord,
		capacity: layout.DefaultCapacity,
		charmap:  charmap.ISO8859_1,
	}
}

// WithOrigin sets the pen position of the first character.
func WithOrigin(origin layout.Vec2) Option {
	return func(c *editorConfig) {
		c.origin = origin
	}
}

// WithBoxWidth sets the wrap width in pixels. Zero disables wrapping.
func WithBoxWidth(width float32) Option {
	return func(c *editorConfig) {
		c.boxWidth = width
	}
}

// WithKerning sets the kerning source, typically the *text.Face the atlas
// was built from.
func WithKerning(k text.Kerner) Option {
	return func(c *editorConfig) {
		c.kerner = k
	}
}

// WithWrapMode sets how words longer than the box are handled.
func WithWrapMode(m layout.WrapMode) Option {
	return func(c *editorConfig) {
		c.wrap = m
	}
}

// WithCapacity sets the maximum number of codes the editor holds.
// Default: layout.DefaultCapacity.
func WithCapacity(n int) Option {
	return func(c *editorConfig) {
		c.capacity = n
	}
}

// WithCharmap sets the single-byte encoding used by Load and Save.
// Default: ISO 8859-1.
func WithCharmap(cm *charmap.Charmap) Option {
	return func(c *editorConfig) {
		if cm != nil {
			c.charmap = cm
		}
	}
}
