package ui

import "github.com/hubastard/floatscroll/engine/colors"

// Widget is anything that can lay itself out and paint into a Ui.
type Widget interface {
	UI(u *Ui) Response
}

// ===== Label =====

type Label struct {
	Text  string
	Size  float32      // 0 = style font size
	Color colors.Color // zero = style text color
}

func (l Label) UI(u *Ui) Response {
	st := u.Style()
	size := l.Size
	if size <= 0 {
		size = st.FontSize
	}
	col := l.Color
	if col == (colors.Color{}) {
		col = st.Visuals.TextColor
	}
	w, h := measure(u.ctx, l.Text, size)
	rect, resp := u.AllocateExactSize(Vec2{w, h}, SenseHover)
	u.Painter().Text(rect.Min, l.Text, size, col)
	return resp
}

func (u *Ui) Label(text string) Response {
	return u.Add(Label{Text: text})
}

func (u *Ui) Heading(text string) Response {
	st := u.Style()
	return u.Add(Label{Text: text, Size: st.HeadingSize, Color: st.Visuals.StrongTextColor})
}

// ===== Button =====

type Button struct {
	Text string
}

func (b Button) UI(u *Ui) Response {
	st := u.Style()
	tw, th := measure(u.ctx, b.Text, st.FontSize)
	size := Vec2{tw + 2*st.ButtonPad.X, th + 2*st.ButtonPad.Y}
	rect, resp := u.AllocateExactSize(size, SenseClick)

	wv := st.Visuals.Widgets.Inactive
	switch {
	case resp.Hovered && u.ctx.hasActive && u.ctx.activeID == resp.ID:
		wv = st.Visuals.Widgets.Active
	case resp.Hovered:
		wv = st.Visuals.Widgets.Hovered
	}
	p := u.Painter()
	p.RectFilled(rect, wv.BgFill)
	p.Text(Vec2{rect.Min.X + (rect.Width()-tw)*0.5, rect.Min.Y + (rect.Height()-th)*0.5}, b.Text, st.FontSize, wv.FgText)
	return resp
}

func (u *Ui) Button(text string) Response {
	return u.Add(Button{Text: text})
}

func measure(ctx *Ctx, s string, size float32) (float32, float32) {
	if ctx.R == nil {
		return float32(len(s)) * size * 0.5, size
	}
	return ctx.R.Measure(s, size)
}
