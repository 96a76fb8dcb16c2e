package layout

import "github.com/gogpu/texter/text"

// Option configures an Engine.
type Option func(*engineConfig)

type engineConfig struct {
	origin   Vec2
	boxWidth float32
	kerner   text.Kerner
	wrap     WrapMode
}

func defaultEngineConfig() engineConfig {
	return engineConfig{
		kerner: text.NoKerning,
		wrap:   WrapWord,
	}
}

// WithOrigin sets the pen position of the first code.
func WithOrigin(origin Vec2) Option {
	return func(c *engineConfig) {
		c.origin = origin
	}
}

// WithBoxWidth sets the line width that triggers wrapping.
// Zero or negative disables wrapping.
func WithBoxWidth(width float32) Option {
	return func(c *engineConfig) {
		c.boxWidth = width
	}
}

// WithKerning sets the kerning source. Nil selects text.NoKerning.
func WithKerning(k text.Kerner) Option {
	return func(c *engineConfig) {
		if k == nil {
			k = text.NoKerning
		}
		c.kerner = k
	}
}

// WithWrapMode sets the wrap mode. Default: WrapWord.
func WithWrapMode(m WrapMode) Option {
	return func(c *engineConfig) {
		c.wrap = m
	}
}
