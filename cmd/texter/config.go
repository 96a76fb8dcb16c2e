package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/font"
	"golang.org/x/text/encoding/charmap"

	"github.com/gogpu/texter"
	"github.com/gogpu/texter/document"
	"github.com/gogpu/texter/layout"
	"github.com/gogpu/texter/text"
	"github.com/gogpu/texter/text/atlas"
)

// Config is the demo's TOML configuration file.
type Config struct {
	Font     FontConfig     `toml:"font"`
	Atlas    AtlasConfig    `toml:"atlas"`
	Layout   LayoutConfig   `toml:"layout"`
	Document DocumentConfig `toml:"document"`
}

// FontConfig selects the face size and hinting.
type FontConfig struct {
	Size    float64 `toml:"size"`
	DPI     float64 `toml:"dpi"`
	Hinting string  `toml:"hinting"`
}

// AtlasConfig selects the rasterized code range.
type AtlasConfig struct {
	Start          int `toml:"start"`
	Count          int `toml:"count"`
	Padding        int `toml:"padding"`
	MaxTextureSize int `toml:"max_texture_size"`
}

// LayoutConfig configures the layout engine.
type LayoutConfig struct {
	BoxWidth float32 `toml:"box_width"`
	OriginX  float32 `toml:"origin_x"`
	OriginY  float32 `toml:"origin_y"`
	Wrap     string  `toml:"wrap"`
	Kerning  string  `toml:"kerning"`
	Capacity int     `toml:"capacity"`
}

// DocumentConfig selects the persisted buffer encoding.
type DocumentConfig struct {
	Charmap string `toml:"charmap"`
}

// defaultConfig covers printable ASCII at 24pt.
func defaultConfig() Config {
	return Config{
		Font: FontConfig{
			Size:    24,
			DPI:     72,
			Hinting: "full",
		},
		Atlas: AtlasConfig{
			Start:          ' ',
			Count:          95,
			Padding:        1,
			MaxTextureSize: atlas.DefaultMaxTextureSize,
		},
		Layout: LayoutConfig{
			BoxWidth: 400,
			Wrap:     "word",
			Kerning:  "none",
			Capacity: layout.DefaultCapacity,
		},
		Document: DocumentConfig{
			Charmap: "ISO-8859-1",
		},
	}
}

// ParseError reports a configuration file that could not be decoded.
type ParseError struct {
	Path   string
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %v", e.Path, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("parse error in %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// loadConfig reads path over the defaults. An empty path yields the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return parseConfig(path, data)
}

func parseConfig(source string, data []byte) (Config, error) {
	cfg := defaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		perr := &ParseError{Path: source, Err: err}
		var derr *toml.DecodeError
		var serr *toml.StrictMissingError
		switch {
		case errors.As(err, &derr):
			perr.Line, perr.Column = derr.Position()
		case errors.As(err, &serr) && len(serr.Errors) > 0:
			perr.Line, perr.Column = serr.Errors[0].Position()
			perr.Err = fmt.Errorf("unknown key %s", strings.Join(serr.Errors[0].Key(), "."))
		}
		return cfg, perr
	}
	return cfg, nil
}

func parseHinting(s string) (font.Hinting, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return font.HintingNone, nil
	case "vertical":
		return font.HintingVertical, nil
	case "full":
		return font.HintingFull, nil
	}
	return font.HintingNone, fmt.Errorf("unknown hinting %q", s)
}

func (c Config) faceOptions() ([]text.FaceOption, error) {
	h, err := parseHinting(c.Font.Hinting)
	if err != nil {
		return nil, err
	}
	return []text.FaceOption{
		text.WithSize(c.Font.Size),
		text.WithDPI(c.Font.DPI),
		text.WithHinting(h),
	}, nil
}

func (c Config) atlasOptions() []atlas.Option {
	return []atlas.Option{
		atlas.WithPadding(c.Atlas.Padding),
		atlas.WithMaxTextureSize(c.Atlas.MaxTextureSize),
	}
}

// kerner resolves the configured kerning source against the face and font
// data it was built from.
func (c Config) kerner(face *text.Face, data []byte) (text.Kerner, error) {
	switch strings.ToLower(c.Layout.Kerning) {
	case "", "none":
		return text.NoKerning, nil
	case "sfnt":
		return face, nil
	case "shaped":
		opts, err := c.faceOptions()
		if err != nil {
			return nil, err
		}
		k, err := text.NewShapedKerner(data, opts...)
		if err != nil {
			return nil, err
		}
		return k, nil
	}
	return nil, fmt.Errorf("unknown kerning source %q", c.Layout.Kerning)
}

func (c Config) documentCharmap() (*charmap.Charmap, error) {
	if c.Document.Charmap == "" {
		return charmap.ISO8859_1, nil
	}
	return document.LookupCharmap(c.Document.Charmap)
}

func (c Config) origin() layout.Vec2 {
	return layout.V2(c.Layout.OriginX, c.Layout.OriginY)
}

func (c Config) editorOptions(k text.Kerner) ([]texter.Option, error) {
	wrap, err := layout.ParseWrapMode(c.Layout.Wrap)
	if err != nil {
		return nil, err
	}
	cm, err := c.documentCharmap()
	if err != nil {
		return nil, err
	}
	return []texter.Option{
		texter.WithOrigin(c.origin()),
		texter.WithBoxWidth(c.Layout.BoxWidth),
		texter.WithKerning(k),
		texter.WithWrapMode(wrap),
		texter.WithCapacity(c.Layout.Capacity),
		texter.WithCharmap(cm),
	}, nil
}
