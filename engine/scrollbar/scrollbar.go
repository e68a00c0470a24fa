package scrollbar

import "github.com/hubastard/floatscroll/engine/ui"

const (
	DefaultHandleHeight      = 50
	DefaultScrollSensitivity = 0.1

	// The rendered handle never exceeds this fraction of the track.
	maxHandleFraction = 0.2
)

// FixedScrollbar is a fixed-width vertical scrollbar bound to a caller-owned
// position in [0,1]. Build one per frame, hand it to a Ui, and drop it.
type FixedScrollbar struct {
	value             *float32
	width             float32
	handleHeight      float32
	scrollSensitivity float32
	scrollSmoothing   bool
}

// New clamps *value into [0,1] right away. A nil value is replaced by a
// throwaway position so the bar still paints and interacts.
func New(value *float32, width float32) FixedScrollbar {
	if value == nil {
		value = new(float32)
	}
	*value = clamp01(*value)
	return FixedScrollbar{
		value:             value,
		width:             width,
		handleHeight:      DefaultHandleHeight,
		scrollSensitivity: DefaultScrollSensitivity,
		scrollSmoothing:   true,
	}
}

// ScrollSensitivity scales the wheel delta before it is turned into a
// fraction of the track.
func (s FixedScrollbar) ScrollSensitivity(v float32) FixedScrollbar {
	s.scrollSensitivity = v
	return s
}

// ScrollSmoothing picks the smoothed wheel signal (true) or the raw one.
func (s FixedScrollbar) ScrollSmoothing(b bool) FixedScrollbar {
	s.scrollSmoothing = b
	return s
}

// HandleHeight is the desired handle length; the rendered one is capped at a
// fifth of the track.
func (s FixedScrollbar) HandleHeight(h float32) FixedScrollbar {
	s.handleHeight = h
	return s
}

func (s FixedScrollbar) Width() float32 { return s.width }

// UI allocates the full remaining height of u, applies drag then wheel input
// to the position and paints the track and handle.
func (s FixedScrollbar) UI(u *ui.Ui) ui.Response {
	available := u.AvailableHeight()
	rect, resp := u.AllocateExactSize(ui.Vec2{X: s.width, Y: available}, ui.SenseClickAndDrag())

	if pos, ok := resp.InteractPointerPos(); ok && resp.Dragged && rect.Height() > 0 {
		*s.value = clamp01((pos.Y - rect.Min.Y) / rect.Height())
	}

	in := u.Input()
	dy := in.RawScrollDelta.Y
	if s.scrollSmoothing {
		dy = in.SmoothScrollDelta.Y
	}
	if dy != 0 && available > 0 {
		*s.value = clamp01(*s.value - dy*s.scrollSensitivity/available)
	}

	vis := u.Style().Visuals
	p := u.Painter()
	p.RectFilled(rect, vis.ExtremeBgColor)

	handle := max(0, min(s.handleHeight, maxHandleFraction*available))
	top := rect.Min.Y + (rect.Height()-handle)*(*s.value)
	p.RectFilled(ui.RectFromMinSize(ui.Vec2{X: rect.Min.X, Y: top}, ui.Vec2{X: rect.Width(), Y: handle}), vis.Widgets.Active.BgFill)

	return resp
}

func clamp01(v float32) float32 {
	// NaN compares false on both sides; pin it to the top.
	if !(v >= 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
