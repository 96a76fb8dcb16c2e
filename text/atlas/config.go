package atlas

// DefaultMaxTextureSize is the largest texture dimension Build accepts by
// default. It matches the limit most GPU backends guarantee for 2D textures.
const DefaultMaxTextureSize = 8192

// maxCodes is the size of the addressable single-byte code space.
const maxCodes = 256

// Option configures Build.
type Option func(*config)

type config struct {
	start          rune
	count          int
	blank          rune
	padding        int
	maxTextureSize int
}

func defaultConfig() config {
	return config{
		blank:          ' ',
		padding:        1,
		maxTextureSize: DefaultMaxTextureSize,
	}
}

// WithBlank sets the code rasterized for newline placeholders.
// Default: ' '. A blank outside the built range gets one extra trailing slot.
func WithBlank(code rune) Option {
	return func(c *config) {
		c.blank = code
	}
}

// WithPadding sets the number of empty rows below each glyph cell.
// Default: 1. Must be at least 1.
func WithPadding(rows int) Option {
	return func(c *config) {
		c.padding = rows
	}
}

// WithMaxTextureSize sets the largest allowed texture width or height.
// Default: DefaultMaxTextureSize.
func WithMaxTextureSize(n int) Option {
	return func(c *config) {
		c.maxTextureSize = n
	}
}

// Validate checks if the configuration is valid.
func (c *config) Validate() error {
	if c.count < 1 {
		return &ConfigError{Field: "Count", Reason: "must be at least 1"}
	}
	if c.count > maxCodes {
		return &ConfigError{Field: "Count", Reason: "must be at most 256"}
	}
	if c.start < 0 {
		return &ConfigError{Field: "Start", Reason: "must be non-negative"}
	}
	if int(c.start)+c.count > maxCodes {
		return &ConfigError{Field: "Start", Reason: "range must end at or before 256"}
	}
	if c.blank < 0 {
		return &ConfigError{Field: "Blank", Reason: "must be non-negative"}
	}
	if c.padding < 1 {
		return &ConfigError{Field: "Padding", Reason: "must be at least 1"}
	}
	if c.maxTextureSize < 1 {
		return &ConfigError{Field: "MaxTextureSize", Reason: "must be at least 1"}
	}
	return nil
}
