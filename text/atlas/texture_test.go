package atlas

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestTextureDescriptor(t *testing.T) {
	a, err := Build(boxRasterizer(5), 'a', 4)
	if err != nil {
		t.Fatal(err)
	}

	d := a.TextureDescriptor("glyphs")
	if d.Label != "glyphs" {
		t.Errorf("Label = %q", d.Label)
	}
	if d.Format != gputypes.TextureFormatR8Unorm {
		t.Errorf("Format = %v, want R8Unorm", d.Format)
	}
	if d.Dimension != gputypes.TextureDimension2D {
		t.Errorf("Dimension = %v, want 2D", d.Dimension)
	}
	if d.Usage&gputypes.TextureUsageCopyDst == 0 || d.Usage&gputypes.TextureUsageTextureBinding == 0 {
		t.Errorf("Usage = %v, want CopyDst|TextureBinding", d.Usage)
	}
	b := a.Image().Rect
	if d.Size.Width != uint32(b.Dx()) || d.Size.Height != uint32(b.Dy()) || d.Size.DepthOrArrayLayers != 1 {
		t.Errorf("Size = %+v, want %dx%dx1", d.Size, b.Dx(), b.Dy())
	}
	if d.MipLevelCount != 1 || d.SampleCount != 1 {
		t.Errorf("MipLevelCount=%d SampleCount=%d, want 1, 1", d.MipLevelCount, d.SampleCount)
	}
}

func TestUploadLayout(t *testing.T) {
	a, err := Build(boxRasterizer(5), 'a', 4)
	if err != nil {
		t.Fatal(err)
	}

	l := a.UploadLayout()
	img := a.Image()
	if int(l.BytesPerRow) != img.Stride {
		t.Errorf("BytesPerRow = %d, want %d", l.BytesPerRow, img.Stride)
	}
	if int(l.RowsPerImage) != img.Rect.Dy() {
		t.Errorf("RowsPerImage = %d, want %d", l.RowsPerImage, img.Rect.Dy())
	}
	if int(l.BytesPerRow*l.RowsPerImage) != len(img.Pix) {
		t.Errorf("layout covers %d bytes, image has %d", l.BytesPerRow*l.RowsPerImage, len(img.Pix))
	}
	if l.Origin != gputypes.OriginZero {
		t.Errorf("Origin = %+v", l.Origin)
	}
}

func TestSamplerDescriptor(t *testing.T) {
	s := SamplerDescriptor("atlas")
	if s.Label != "atlas" {
		t.Errorf("Label = %q", s.Label)
	}
	if s.MagFilter != gputypes.FilterModeNearest || s.MinFilter != gputypes.FilterModeNearest {
		t.Errorf("filters = %v/%v, want Nearest", s.MagFilter, s.MinFilter)
	}
}
