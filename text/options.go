package text

import "golang.org/x/image/font"

// FaceOption configures Face and ShapedKerner creation.
type FaceOption func(*faceConfig)

// faceConfig holds configuration for Face.
type faceConfig struct {
	size    float64
	dpi     float64
	hinting font.Hinting
}

// defaultFaceConfig returns the default face configuration.
func defaultFaceConfig() faceConfig {
	return faceConfig{
		size:    16,
		dpi:     72,
		hinting: font.HintingFull,
	}
}

// ppem returns the pixels per em of the configuration.
func (c faceConfig) ppem() float64 {
	return c.size * c.dpi / 72
}

// WithSize sets the font size in points.
func WithSize(points float64) FaceOption {
	return func(c *faceConfig) {
		c.size = points
	}
}

// WithDPI sets the resolution used to convert points to pixels.
// The default of 72 makes one point equal one pixel.
func WithDPI(dpi float64) FaceOption {
	return func(c *faceConfig) {
		c.dpi = dpi
	}
}

// WithHinting sets the hinting mode used for outlines and advances.
func WithHinting(h font.Hinting) FaceOption {
	return func(c *faceConfig) {
		c.hinting = h
	}
}

func newFaceConfig(opts []FaceOption) (faceConfig, error) {
	cfg := defaultFaceConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.size <= 0 || cfg.dpi <= 0 {
		return cfg, ErrInvalidSize
	}
	return cfg, nil
}
