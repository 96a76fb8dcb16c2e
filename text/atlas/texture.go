package atlas

import "github.com/gogpu/gputypes"

// TextureFormat is the GPU format of the atlas texture: one 8-bit coverage
// channel per texel, matching image.Alpha.
const TextureFormat = gputypes.TextureFormatR8Unorm

// UploadLayout describes a single WriteTexture call that copies the whole
// atlas image into a texture created from TextureDescriptor.
type UploadLayout struct {
	Origin       gputypes.Origin3D
	Size         gputypes.Extent3D
	BytesPerRow  uint32
	RowsPerImage uint32
}

// TextureDescriptor returns the descriptor for the GPU texture that will
// hold the atlas. No GPU objects are created.
func (a *Atlas) TextureDescriptor(label string) gputypes.TextureDescriptor {
	b := a.img.Rect
	return gputypes.TextureDescriptor{
		Label:         label,
		Size:          gputypes.NewExtent2D(uint32(b.Dx()), uint32(b.Dy())),
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        TextureFormat,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	}
}

// UploadLayout returns the copy layout for Image().Pix.
func (a *Atlas) UploadLayout() UploadLayout {
	b := a.img.Rect
	return UploadLayout{
		Origin:       gputypes.OriginZero,
		Size:         gputypes.NewExtent2D(uint32(b.Dx()), uint32(b.Dy())),
		BytesPerRow:  uint32(a.img.Stride),
		RowsPerImage: uint32(b.Dy()),
	}
}

// SamplerDescriptor returns a clamped nearest-neighbour sampler. Slots are
// packed edge to edge, so linear filtering would bleed neighbouring glyphs.
func SamplerDescriptor(label string) gputypes.SamplerDescriptor {
	d := gputypes.DefaultSamplerDescriptor()
	d.Label = label
	return d
}
