package ui

// Area is a free-floating layer positioned in screen coordinates. It sizes
// itself to its content unless pinned to a rect.
type Area struct {
	id         ID
	movable    bool
	order      Order
	defaultPos Vec2
	fixedPos   *Vec2
	fixedRect  *Rect
}

func NewArea(id string) Area {
	return Area{id: IDFrom(id), movable: true, order: OrderForeground}
}

func (a Area) Movable(b bool) Area    { a.movable = b; return a }
func (a Area) Order(o Order) Area     { a.order = o; return a }
func (a Area) DefaultPos(p Vec2) Area { a.defaultPos = p; return a }
func (a Area) FixedPos(p Vec2) Area   { a.fixedPos = &p; return a }
func (a Area) ID() ID                 { return a.id }

// FixedRect pins the area to r and limits its content to r's size.
func (a Area) FixedRect(r Rect) Area {
	a.fixedRect = &r
	return a
}

func (a Area) Show(ctx *Ctx, add func(u *Ui)) Response {
	layer := LayerID{Order: a.order, ID: a.id}
	var maxRect Rect
	switch {
	case a.fixedRect != nil:
		maxRect = *a.fixedRect
	case a.fixedPos != nil:
		maxRect = Rect{Min: *a.fixedPos, Max: ctx.screen.Max}
	default:
		pos, ok := ctx.areaPos[a.id]
		if !ok {
			pos = a.defaultPos
		}
		maxRect = Rect{Min: pos, Max: ctx.screen.Max}
	}
	if maxRect.Max.X < maxRect.Min.X {
		maxRect.Max.X = maxRect.Min.X
	}
	if maxRect.Max.Y < maxRect.Min.Y {
		maxRect.Max.Y = maxRect.Min.Y
	}

	u := newUi(ctx, a.id, layer, maxRect)
	add(u)

	bounds := u.MinRect()
	if a.fixedRect != nil {
		bounds = *a.fixedRect
	}
	l := ctx.layer(layer)
	l.bounds = l.bounds.Union(bounds)

	pinned := a.fixedPos != nil || a.fixedRect != nil
	if !a.movable || pinned {
		return ctx.interact(layer, a.id, bounds, SenseHover)
	}
	resp := ctx.interact(layer, a.id, bounds, SenseDrag)
	if resp.Dragged {
		ctx.areaPos[a.id] = maxRect.Min.Add(ctx.input.PointerDelta)
	} else {
		ctx.areaPos[a.id] = maxRect.Min
	}
	return resp
}
