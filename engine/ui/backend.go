package ui

import (
	"github.com/hubastard/floatscroll/engine/colors"
	"github.com/hubastard/floatscroll/engine/gfx/renderer2d"
	"github.com/hubastard/floatscroll/engine/text"
)

// Renderer2DBackend paints UI commands through the batched 2D renderer.
// Font may be nil, in which case text is skipped and measured approximately.
type Renderer2DBackend struct {
	R2D  *renderer2d.Renderer2D
	Font *text.Font
}

func (b *Renderer2DBackend) DrawQuad(cx, cy, w, h float32, color colors.Color) {
	b.R2D.DrawQuad(cx, cy, w, h, color)
}

func (b *Renderer2DBackend) DrawText(x, y float32, s string, size float32, color colors.Color) {
	if b.Font == nil {
		return
	}
	text.DrawText(b.R2D, b.Font, x, y, s, size, color)
}

func (b *Renderer2DBackend) Measure(s string, size float32) (float32, float32) {
	if b.Font == nil {
		return float32(len(s)) * size * 0.5, size
	}
	return text.MeasureText(b.Font, s, size)
}
