package ui

// Ui is a vertical layout region inside one layer. Widgets allocate space
// top-down from the cursor; the cursor never moves back up.
type Ui struct {
	ctx     *Ctx
	id      ID
	layer   LayerID
	maxRect Rect
	cursor  Vec2
	used    Rect
	hasUsed bool
	next    int // auto id counter
}

func newUi(ctx *Ctx, id ID, layer LayerID, maxRect Rect) *Ui {
	return &Ui{ctx: ctx, id: id, layer: layer, maxRect: maxRect, cursor: maxRect.Min}
}

// NewUi creates a root Ui covering rect in the given layer. Panels and areas
// build their Ui this way; hosts can use it for custom containers.
func NewUi(ctx *Ctx, layer LayerID, rect Rect) *Ui {
	return newUi(ctx, layer.ID, layer, rect)
}

func (u *Ui) Ctx() *Ctx          { return u.ctx }
func (u *Ui) ID() ID             { return u.id }
func (u *Ui) Layer() LayerID     { return u.layer }
func (u *Ui) Style() *Style      { return &u.ctx.style }
func (u *Ui) Input() *InputState { return &u.ctx.input }
func (u *Ui) Painter() Painter   { return Painter{ctx: u.ctx, layer: u.layer} }
func (u *Ui) MaxRect() Rect      { return u.maxRect }
func (u *Ui) Cursor() Vec2       { return u.cursor }

// MinRect covers everything allocated so far; zero-sized at the origin if nothing was.
func (u *Ui) MinRect() Rect {
	if !u.hasUsed {
		return Rect{Min: u.maxRect.Min, Max: u.maxRect.Min}
	}
	return u.used
}

func (u *Ui) AvailableWidth() float32 {
	return maxf(0, u.maxRect.Max.X-u.cursor.X)
}

func (u *Ui) AvailableHeight() float32 {
	return maxf(0, u.maxRect.Max.Y-u.cursor.Y)
}

// AvailableRect is the space left below the cursor.
func (u *Ui) AvailableRect() Rect {
	return RectFromMinSize(u.cursor, Vec2{u.AvailableWidth(), u.AvailableHeight()})
}

// AllocateExactSize reserves a size box at the cursor and resolves its
// interaction with the given sense.
func (u *Ui) AllocateExactSize(size Vec2, sense Sense) (Rect, Response) {
	rect := RectFromMinSize(u.cursor, Vec2{maxf(0, size.X), maxf(0, size.Y)})
	u.advance(rect)
	id := u.id.WithIndex(u.next)
	u.next++
	u.ctx.layer(u.layer).bounds = u.ctx.layer(u.layer).bounds.Union(rect)
	return rect, u.Interact(rect, id, sense)
}

// Interact resolves interaction for an explicit rect without moving the cursor.
func (u *Ui) Interact(rect Rect, id ID, sense Sense) Response {
	return u.ctx.interact(u.layer, id, rect, sense)
}

func (u *Ui) AddSpace(amount float32) {
	u.cursor.Y += amount
}

func (u *Ui) Add(w Widget) Response { return w.UI(u) }

func (u *Ui) advance(r Rect) {
	if !u.hasUsed {
		u.used, u.hasUsed = r, true
	} else {
		u.used = Rect{
			Min: Vec2{minf(u.used.Min.X, r.Min.X), minf(u.used.Min.Y, r.Min.Y)},
			Max: Vec2{maxf(u.used.Max.X, r.Max.X), maxf(u.used.Max.Y, r.Max.Y)},
		}
	}
	u.cursor.Y = r.Max.Y + u.ctx.style.ItemSpacing.Y
}
