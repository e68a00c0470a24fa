package ui

import "github.com/hubastard/floatscroll/engine/colors"

// Frame is the background and margin drawn behind a panel's content.
type Frame struct {
	Fill        colors.Color
	InnerMargin float32
}

// FrameNone draws nothing and adds no margin.
func FrameNone() Frame { return Frame{} }

type Side int

const (
	SideLeft Side = iota
	SideRight
)

const (
	defaultPanelWidth = 200
	resizeGrab        = 3 // half-width of the resize handle
)

// SidePanel reserves a full-height strip along one screen edge.
type SidePanel struct {
	side         Side
	id           ID
	resizable    bool
	defaultWidth float32
	minWidth     float32
	maxWidth     float32 // 0 = unbounded
	frame        *Frame
}

func LeftPanel(id string) SidePanel  { return newSidePanel(SideLeft, id) }
func RightPanel(id string) SidePanel { return newSidePanel(SideRight, id) }

func newSidePanel(side Side, id string) SidePanel {
	return SidePanel{side: side, id: IDFrom(id), resizable: true, defaultWidth: defaultPanelWidth}
}

func (p SidePanel) Resizable(b bool) SidePanel       { p.resizable = b; return p }
func (p SidePanel) DefaultWidth(w float32) SidePanel { p.defaultWidth = w; return p }
func (p SidePanel) MinWidth(w float32) SidePanel     { p.minWidth = w; return p }
func (p SidePanel) MaxWidth(w float32) SidePanel     { p.maxWidth = w; return p }
func (p SidePanel) Frame(f Frame) SidePanel          { p.frame = &f; return p }
func (p SidePanel) ID() ID                           { return p.id }

func (p SidePanel) widthRange(avail float32) (float32, float32) {
	hi := avail
	if p.maxWidth > 0 && p.maxWidth < hi {
		hi = p.maxWidth
	}
	lo := minf(p.minWidth, hi)
	return lo, hi
}

// Show lays out add inside the panel and shrinks the context's available
// rect by the panel width.
func (p SidePanel) Show(ctx *Ctx, add func(u *Ui)) Response {
	avail := ctx.AvailableRect()
	lo, hi := p.widthRange(avail.Width())
	width, ok := ctx.panelWidths[p.id]
	if !ok {
		width = p.defaultWidth
	}
	width = clamp(width, lo, hi)
	layer := LayerID{Order: OrderMiddle, ID: p.id}

	if p.resizable {
		edge := p.panelRect(avail, width).Min.X
		if p.side == SideLeft {
			edge = p.panelRect(avail, width).Max.X
		}
		grab := Rect{Min: Vec2{edge - resizeGrab, avail.Min.Y}, Max: Vec2{edge + resizeGrab, avail.Max.Y}}
		r := ctx.interact(layer, p.id.With("resize"), grab, SenseDrag)
		if pos, ok := r.InteractPointerPos(); ok && r.Dragged {
			if p.side == SideRight {
				width = avail.Max.X - pos.X
			} else {
				width = pos.X - avail.Min.X
			}
			width = clamp(width, lo, hi)
		}
	}
	ctx.panelWidths[p.id] = width

	rect := p.panelRect(avail, width)
	frame := p.frameOrDefault(ctx)
	if frame.Fill.Visible() {
		ctx.push(DrawCommand{Layer: layer, Kind: DrawRect, Rect: rect, Color: frame.Fill})
	}
	l := ctx.layer(layer)
	l.bounds = l.bounds.Union(rect)

	u := newUi(ctx, p.id, layer, rect.Shrink(frame.InnerMargin))
	add(u)

	if p.side == SideRight {
		ctx.avail.Max.X = rect.Min.X
	} else {
		ctx.avail.Min.X = rect.Max.X
	}
	return ctx.interact(layer, p.id, rect, SenseHover)
}

func (p SidePanel) panelRect(avail Rect, width float32) Rect {
	if p.side == SideRight {
		return Rect{Min: Vec2{avail.Max.X - width, avail.Min.Y}, Max: avail.Max}
	}
	return Rect{Min: avail.Min, Max: Vec2{avail.Min.X + width, avail.Max.Y}}
}

func (p SidePanel) frameOrDefault(ctx *Ctx) Frame {
	if p.frame != nil {
		return *p.frame
	}
	return Frame{Fill: ctx.style.Visuals.PanelFill, InnerMargin: ctx.style.PanelMargin}
}

// CentralPanel fills whatever the side panels left.
type CentralPanel struct {
	frame *Frame
}

var centralID = IDFrom("central_panel")

func (p CentralPanel) Frame(f Frame) CentralPanel { p.frame = &f; return p }

func (p CentralPanel) Show(ctx *Ctx, add func(u *Ui)) Response {
	rect := ctx.AvailableRect()
	layer := LayerID{Order: OrderMiddle, ID: centralID}
	frame := Frame{Fill: ctx.style.Visuals.PanelFill, InnerMargin: ctx.style.PanelMargin}
	if p.frame != nil {
		frame = *p.frame
	}
	if frame.Fill.Visible() {
		ctx.push(DrawCommand{Layer: layer, Kind: DrawRect, Rect: rect, Color: frame.Fill})
	}
	l := ctx.layer(layer)
	l.bounds = l.bounds.Union(rect)

	add(newUi(ctx, centralID, layer, rect.Shrink(frame.InnerMargin)))
	return ctx.interact(layer, centralID, rect, SenseHover)
}
