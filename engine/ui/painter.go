package ui

import "github.com/hubastard/floatscroll/engine/colors"

// Painter records paint commands into one layer; they are flushed in
// layer order by Ctx.EndFrame.
type Painter struct {
	ctx   *Ctx
	layer LayerID
}

func (p Painter) Layer() LayerID { return p.layer }

func (p Painter) RectFilled(r Rect, c colors.Color) {
	p.ctx.push(DrawCommand{Layer: p.layer, Kind: DrawRect, Rect: r, Color: c})
}

// Text paints s with its top-left corner at pos.
func (p Painter) Text(pos Vec2, s string, size float32, c colors.Color) {
	p.ctx.push(DrawCommand{Layer: p.layer, Kind: DrawText, Rect: Rect{Min: pos, Max: pos}, Color: c, Text: s, Size: size})
}
