package text

import (
	"github.com/hubastard/floatscroll/engine/colors"
	"github.com/hubastard/floatscroll/engine/gfx/renderer2d"
)

// DrawText draws s with its top-left at (x,y), scaled from the atlas size to
// size pixels. Positive Y goes downward (matching the screen projection).
func DrawText(r2d *renderer2d.Renderer2D, font *Font, x, y float32, s string, size float32, color colors.Color) {
	scale := scaleFor(font, size)
	penX := x
	baseY := y + font.Ascent*scale // move origin to top left
	prev := rune(-1)

	for _, r := range s {
		if r == '\n' {
			penX = x
			baseY += LineHeight(font) * scale
			prev = -1
			continue
		}

		g, ok := font.Glyphs[r]
		if !ok {
			if sp, ok2 := font.Glyphs[' ']; ok2 {
				penX += sp.Advance * scale
			}
			prev = r
			continue
		}

		if prev >= 0 {
			penX += kern(font, prev, r) * scale
		}

		if g.W > 0 && g.H > 0 {
			// Baseline-aligned quad center (Y-down system)
			left := penX + g.BearingX*scale
			top := baseY - g.BearingY*scale
			w, h := float32(g.W)*scale, float32(g.H)*scale
			sub := renderer2d.SubTexture2D{Texture: font.Texture, U0: g.U0, V0: g.V0, U1: g.U1, V1: g.V1}
			r2d.DrawSubTexQuad(left+w*0.5, top+h*0.5, w, h, sub, color)
		}

		penX += g.Advance * scale
		prev = r
	}
}

// MeasureText returns the bounding size of s at size pixels.
func MeasureText(font *Font, s string, size float32) (width, height float32) {
	var lineW float32
	prev := rune(-1)
	lineH := LineHeight(font)
	height = lineH

	for _, r := range s {
		if r == '\n' {
			if lineW > width {
				width = lineW
			}
			lineW = 0
			height += lineH
			prev = -1
			continue
		}

		g, ok := font.Glyphs[r]
		if !ok {
			if sp, ok2 := font.Glyphs[' ']; ok2 {
				lineW += sp.Advance
			}
			prev = r
			continue
		}

		if prev >= 0 {
			lineW += kern(font, prev, r)
		}

		lineW += g.Advance
		prev = r
	}

	if lineW > width {
		width = lineW
	}
	scale := scaleFor(font, size)
	return width * scale, height * scale
}

// Baseline-to-top distance (useful to position text by top-left).
func BaselineToTop(font *Font) float32    { return font.Ascent }
func BaselineToBottom(font *Font) float32 { return -font.Descent }
func LineHeight(font *Font) float32       { return font.Ascent - font.Descent + font.LineGap }

func scaleFor(font *Font, size float32) float32 {
	if size <= 0 || font.SizePx <= 0 {
		return 1
	}
	return size / font.SizePx
}

func kern(font *Font, a, b rune) float32 {
	if font.Face == nil {
		return 0
	}
	return float32(font.Face.Kern(a, b)) / 64.0
}
