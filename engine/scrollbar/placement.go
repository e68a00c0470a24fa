package scrollbar

import "github.com/hubastard/floatscroll/engine/ui"

const (
	floatingAreaID = "floating_scrollbar"
	dockedAreaID   = "docked_scrollbar"
)

// ShowInSidePanel reserves a borderless right-hand panel exactly as wide as
// the bar. title only identifies the panel; it is never drawn.
func (s FixedScrollbar) ShowInSidePanel(ctx *ui.Ctx, title string) ui.Response {
	var resp ui.Response
	ui.RightPanel(title).
		Resizable(false).
		MaxWidth(s.width).
		Frame(ui.FrameNone()).
		Show(ctx, func(u *ui.Ui) {
			resp = s.UI(u)
		})
	return resp
}

// ShowFloating pins the bar at pos in a foreground area. Every call shares one
// area id; use ShowFloatingWithID to show several in a frame.
func (s FixedScrollbar) ShowFloating(u *ui.Ui, pos ui.Vec2) ui.Response {
	return s.ShowFloatingWithID(u, floatingAreaID, pos)
}

func (s FixedScrollbar) ShowFloatingWithID(u *ui.Ui, id string, pos ui.Vec2) ui.Response {
	area := ui.NewArea(id).Movable(false).FixedPos(pos)
	return s.showIn(u.Ctx(), area)
}

// ShowDocked places the bar immediately right of area, spanning its height.
func (s FixedScrollbar) ShowDocked(u *ui.Ui, area ui.Rect) ui.Response {
	return s.ShowDockedWithID(u, dockedAreaID, area)
}

func (s FixedScrollbar) ShowDockedWithID(u *ui.Ui, id string, area ui.Rect) ui.Response {
	return s.showIn(u.Ctx(), ui.NewArea(id).Movable(false).FixedRect(DockRect(area, s.width)))
}

// DockRect is the width-wide strip touching area's right edge.
func DockRect(area ui.Rect, width float32) ui.Rect {
	return ui.RectFromMinSize(
		ui.Vec2{X: area.Max.X, Y: area.Min.Y},
		ui.Vec2{X: width, Y: area.Height()},
	)
}

func (s FixedScrollbar) showIn(ctx *ui.Ctx, area ui.Area) ui.Response {
	var resp ui.Response
	area.Show(ctx, func(u *ui.Ui) {
		resp = s.UI(u)
	})
	return resp
}
