package atlas

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"golang.org/x/image/math/fixed"
)

// ManifestVersion is written into every manifest.
const ManifestVersion = 1

// ManifestGlyph is one glyph entry of a manifest.
type ManifestGlyph struct {
	Code    rune
	Slot    int
	Advance fixed.Point26_6
	Bounds  BBox
	Width   int
	Height  int
}

// ManifestInfo is the decoded form of a manifest.
type ManifestInfo struct {
	Version       int
	Format        string
	Width, Height int
	SlotWidth     int
	SlotHeight    int
	Start         rune
	Count         int
	Blank         rune
	BlankSlot     int
	Glyphs        []ManifestGlyph
}

// Manifest describes the atlas as JSON: texture size and format, cell size,
// range and per-glyph metrics. Advances are written in raw 26.6 units.
func (a *Atlas) Manifest() ([]byte, error) {
	b := a.img.Rect
	doc := []byte(`{}`)

	fields := []struct {
		path  string
		value any
	}{
		{"version", ManifestVersion},
		{"texture.format", TextureFormat.String()},
		{"texture.width", b.Dx()},
		{"texture.height", b.Dy()},
		{"slot.width", a.SlotWidth},
		{"slot.height", a.SlotHeight},
		{"range.start", int(a.start)},
		{"range.count", a.count},
		{"blank.code", int(a.blankCode)},
		{"blank.slot", a.blank.Slot},
	}

	var err error
	for _, f := range fields {
		if doc, err = sjson.SetBytes(doc, f.path, f.value); err != nil {
			return nil, fmt.Errorf("atlas: manifest %s: %w", f.path, err)
		}
	}
	if doc, err = sjson.SetRawBytes(doc, "glyphs", []byte(`[]`)); err != nil {
		return nil, fmt.Errorf("atlas: manifest glyphs: %w", err)
	}

	for i, m := range a.metrics[:a.count] {
		entry, err := glyphEntry(a.start+rune(i), m)
		if err != nil {
			return nil, err
		}
		if doc, err = sjson.SetRawBytes(doc, "glyphs.-1", entry); err != nil {
			return nil, fmt.Errorf("atlas: manifest glyph %d: %w", i, err)
		}
	}
	return doc, nil
}

func glyphEntry(code rune, m GlyphMetrics) ([]byte, error) {
	entry := []byte(`{}`)
	fields := []struct {
		path  string
		value int
	}{
		{"code", int(code)},
		{"slot", m.Slot},
		{"advance.x", int(m.Advance.X)},
		{"advance.y", int(m.Advance.Y)},
		{"bounds.minX", m.Bounds.MinX},
		{"bounds.minY", m.Bounds.MinY},
		{"bounds.maxX", m.Bounds.MaxX},
		{"bounds.maxY", m.Bounds.MaxY},
		{"width", m.Width},
		{"height", m.Height},
	}
	var err error
	for _, f := range fields {
		if entry, err = sjson.SetBytes(entry, f.path, f.value); err != nil {
			return nil, fmt.Errorf("atlas: manifest glyph %U %s: %w", code, f.path, err)
		}
	}
	return entry, nil
}

// ReadManifest decodes a manifest written by Atlas.Manifest.
func ReadManifest(data []byte) (ManifestInfo, error) {
	if !gjson.ValidBytes(data) {
		return ManifestInfo{}, ErrInvalidManifest
	}
	root := gjson.ParseBytes(data)

	version := root.Get("version")
	if !version.Exists() {
		return ManifestInfo{}, fmt.Errorf("%w: missing version", ErrInvalidManifest)
	}
	if v := int(version.Int()); v != ManifestVersion {
		return ManifestInfo{}, fmt.Errorf("%w: unsupported version %d", ErrInvalidManifest, v)
	}

	info := ManifestInfo{
		Version:    int(version.Int()),
		Format:     root.Get("texture.format").String(),
		Width:      int(root.Get("texture.width").Int()),
		Height:     int(root.Get("texture.height").Int()),
		SlotWidth:  int(root.Get("slot.width").Int()),
		SlotHeight: int(root.Get("slot.height").Int()),
		Start:      rune(root.Get("range.start").Int()),
		Count:      int(root.Get("range.count").Int()),
		Blank:      rune(root.Get("blank.code").Int()),
		BlankSlot:  int(root.Get("blank.slot").Int()),
	}

	glyphs := root.Get("glyphs")
	if !glyphs.IsArray() {
		return ManifestInfo{}, fmt.Errorf("%w: glyphs is not an array", ErrInvalidManifest)
	}
	glyphs.ForEach(func(_, g gjson.Result) bool {
		info.Glyphs = append(info.Glyphs, ManifestGlyph{
			Code: rune(g.Get("code").Int()),
			Slot: int(g.Get("slot").Int()),
			Advance: fixed.Point26_6{
				X: fixed.Int26_6(g.Get("advance.x").Int()),
				Y: fixed.Int26_6(g.Get("advance.y").Int()),
			},
			Bounds: BBox{
				MinX: int(g.Get("bounds.minX").Int()),
				MinY: int(g.Get("bounds.minY").Int()),
				MaxX: int(g.Get("bounds.maxX").Int()),
				MaxY: int(g.Get("bounds.maxY").Int()),
			},
			Width:  int(g.Get("width").Int()),
			Height: int(g.Get("height").Int()),
		})
		return true
	})

	if len(info.Glyphs) != info.Count {
		return ManifestInfo{}, fmt.Errorf("%w: %d glyphs for count %d", ErrInvalidManifest, len(info.Glyphs), info.Count)
	}
	return info, nil
}
