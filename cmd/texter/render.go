package main

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"

	"github.com/gogpu/texter/layout"
	"github.com/gogpu/texter/text/atlas"
)

var (
	previewBackground = color.RGBA{R: 0x20, G: 0x22, B: 0x28, A: 0xff}
	previewInk        = color.RGBA{R: 0xe8, G: 0xe8, B: 0xe8, A: 0xff}
	previewCaret      = color.RGBA{R: 0xf0, G: 0x80, B: 0x30, A: 0xff}
)

// renderPreview composites the instances into an RGBA image the way a GPU
// renderer would sample the atlas: one quad per instance, coverage taken
// from the instance's slot. Screen space is y-up with the first baseline
// one slot below the top edge.
func renderPreview(a *atlas.Atlas, res layout.Result, origin layout.Vec2, boxWidth float32, caret layout.Vec2) *image.RGBA {
	slotHeight := float32(a.SlotHeight)
	width := max(boxWidth, maxInstanceX(a, res)-origin.X) + float32(a.SlotWidth)
	height := float32(res.Lines+1) * slotHeight

	dst := image.NewRGBA(image.Rect(0, 0, ceil(width), ceil(height)))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(previewBackground), image.Point{}, draw.Src)

	top := origin.Y + slotHeight
	toImage := func(p layout.Vec2) image.Point {
		return image.Pt(round(p.X-origin.X), round(top-p.Y))
	}

	ink := image.NewUniform(previewInk)
	for _, inst := range res.Instances {
		src := a.SlotInkRect(inst.Slot)
		if src.Empty() {
			continue
		}
		bottomLeft := toImage(inst.Position)
		r := image.Rect(bottomLeft.X, bottomLeft.Y-src.Dy(), bottomLeft.X+src.Dx(), bottomLeft.Y)
		draw.DrawMask(dst, r, ink, image.Point{}, a.Image(), src.Min, draw.Over)
	}

	c := toImage(caret)
	draw.Draw(dst, image.Rect(c.X, c.Y-a.SlotHeight+1, c.X+1, c.Y+1), image.NewUniform(previewCaret), image.Point{}, draw.Src)
	return dst
}

func maxInstanceX(a *atlas.Atlas, res layout.Result) float32 {
	var x float32
	for _, inst := range res.Instances {
		x = max(x, inst.Position.X+float32(a.SlotInkRect(inst.Slot).Dx()))
	}
	return max(x, res.End.X)
}

func round(v float32) int { return int(math.Round(float64(v))) }

func ceil(v float32) int { return max(int(math.Ceil(float64(v))), 1) }
