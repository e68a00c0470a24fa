package ui

import (
	"sort"

	"github.com/hubastard/floatscroll/engine/colors"
)

// ===== Public engine-facing bits =====

type Renderer interface {
	// Draws a solid quad centered at (cx, cy) with w,h and color RGBA [0..1]
	DrawQuad(cx, cy, w, h float32, color colors.Color)
	// Draws text top-left at (x,y)
	DrawText(x, y float32, text string, size float32, color colors.Color)
	// Measures text (w,h) for a given font size
	Measure(text string, size float32) (w, h float32)
}

// Order sorts layers when the frame is flushed; later orders paint on top
// and win pointer hit-tests.
type Order int

const (
	OrderBackground Order = iota
	OrderMiddle
	OrderForeground
	OrderTooltip
)

type LayerID struct {
	Order Order
	ID    ID
}

type DrawKind uint8

const (
	DrawRect DrawKind = iota
	DrawText
)

// DrawCommand is one deferred paint operation.
type DrawCommand struct {
	Layer LayerID
	Kind  DrawKind
	Rect  Rect // DrawText: Min is the text origin
	Color colors.Color
	Text  string
	Size  float32
}

type layerList struct {
	id     LayerID
	seq    int // first use this frame
	cmds   []DrawCommand
	bounds Rect
}

type layerHit struct {
	id     LayerID
	seq    int
	bounds Rect
}

// ===== Immediate-UI context =====

// Ctx owns everything that outlives a single frame: input filtering, the
// active widget, panel/area memory and last frame's layer rects.
type Ctx struct {
	R Renderer

	input  InputState
	style  Style
	frame  uint64
	screen Rect
	avail  Rect

	layers   map[LayerID]*layerList
	order    []*layerList
	prevHits []layerHit
	drawn    []DrawCommand

	activeID  ID
	hasActive bool

	panelWidths map[ID]float32
	areaPos     map[ID]Vec2
}

func New(r Renderer) *Ctx {
	return &Ctx{
		R:           r,
		style:       DefaultStyle(),
		layers:      make(map[LayerID]*layerList, 16),
		panelWidths: make(map[ID]float32, 4),
		areaPos:     make(map[ID]Vec2, 4),
	}
}

// BeginFrame resets per-frame state and ingests this frame's input.
func (c *Ctx) BeginFrame(in Input) {
	c.frame++
	c.input.begin(in)
	c.screen = Rect{Max: Vec2{in.ScreenW, in.ScreenH}}
	c.avail = c.screen
	for _, l := range c.order {
		l.cmds = l.cmds[:0]
		l.bounds = Rect{}
		l.seq = -1
	}
	c.order = c.order[:0]
}

// EndFrame paints every layer in order and remembers layer bounds for the
// next frame's hit-testing.
func (c *Ctx) EndFrame() {
	sort.SliceStable(c.order, func(i, j int) bool {
		a, b := c.order[i], c.order[j]
		if a.id.Order != b.id.Order {
			return a.id.Order < b.id.Order
		}
		return a.seq < b.seq
	})

	c.drawn = c.drawn[:0]
	c.prevHits = c.prevHits[:0]
	for _, l := range c.order {
		c.drawn = append(c.drawn, l.cmds...)
		if !l.bounds.IsEmpty() {
			c.prevHits = append(c.prevHits, layerHit{id: l.id, seq: l.seq, bounds: l.bounds})
		}
	}
	if c.R != nil {
		for i := range c.drawn {
			paint(c.R, &c.drawn[i])
		}
	}

	// A widget that vanished mid-drag must not keep the pointer captured.
	if c.hasActive && !c.input.MouseDown {
		c.hasActive = false
	}
}

func paint(r Renderer, cmd *DrawCommand) {
	switch cmd.Kind {
	case DrawRect:
		if cmd.Rect.IsEmpty() || !cmd.Color.Visible() {
			return
		}
		ctr := cmd.Rect.Center()
		r.DrawQuad(ctr.X, ctr.Y, cmd.Rect.Width(), cmd.Rect.Height(), cmd.Color)
	case DrawText:
		r.DrawText(cmd.Rect.Min.X, cmd.Rect.Min.Y, cmd.Text, cmd.Size, cmd.Color)
	}
}

func (c *Ctx) Input() *InputState { return &c.input }
func (c *Ctx) Style() *Style      { return &c.style }
func (c *Ctx) SetStyle(s Style)   { c.style = s }
func (c *Ctx) ScreenRect() Rect   { return c.screen }
func (c *Ctx) FrameNr() uint64    { return c.frame }

// AvailableRect is the screen minus the side panels shown so far this frame.
func (c *Ctx) AvailableRect() Rect { return c.avail }

// DrawList is the paint order flushed by the last EndFrame.
func (c *Ctx) DrawList() []DrawCommand { return c.drawn }

// IsDragging reports whether any widget currently holds the pointer.
func (c *Ctx) IsDragging() bool { return c.hasActive }

func (c *Ctx) layer(id LayerID) *layerList {
	l, ok := c.layers[id]
	if !ok {
		l = &layerList{id: id, seq: -1}
		c.layers[id] = l
	}
	if l.seq < 0 {
		l.seq = len(c.order)
		c.order = append(c.order, l)
	}
	return l
}

func (c *Ctx) push(cmd DrawCommand) {
	l := c.layer(cmd.Layer)
	l.cmds = append(l.cmds, cmd)
}

// layerAt returns the topmost layer that covered p last frame.
func (c *Ctx) layerAt(p Vec2) (LayerID, bool) {
	var (
		best  layerHit
		found bool
	)
	for _, h := range c.prevHits {
		if !h.bounds.Contains(p) {
			continue
		}
		if !found || h.id.Order > best.id.Order || (h.id.Order == best.id.Order && h.seq > best.seq) {
			best, found = h, true
		}
	}
	return best.id, found
}

// interact resolves hover/press/drag/click for one region.
func (c *Ctx) interact(layer LayerID, id ID, rect Rect, sense Sense) Response {
	resp := Response{ID: id, Rect: rect, Sense: sense}
	in := &c.input
	p, ok := in.PointerPos()
	inside := ok && rect.Contains(p)

	if c.hasActive && c.activeID == id {
		resp.Hovered = inside
		resp.pointer, resp.hasPointer = p, ok
		if in.MouseDown && sense.Drag() {
			resp.Dragged = true
		}
		if in.MouseReleased || !in.MouseDown {
			resp.DragStopped = sense.Drag()
			resp.Clicked = sense.Click() && inside
			c.hasActive = false
		}
		return resp
	}

	if !inside || c.hasActive {
		return resp
	}
	if top, found := c.layerAt(p); found && top != layer {
		return resp
	}

	resp.Hovered = true
	if in.MousePressed && (sense.Click() || sense.Drag()) {
		resp.pointer, resp.hasPointer = p, true
		if !in.MouseDown {
			// Pressed and released within one frame.
			resp.Clicked = sense.Click()
			return resp
		}
		c.activeID, c.hasActive = id, true
		if sense.Drag() {
			resp.Dragged = true
			resp.DragStarted = true
		}
	}
	return resp
}
