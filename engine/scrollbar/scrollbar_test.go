package scrollbar

import (
	"math"
	"testing"

	"github.com/hubastard/floatscroll/engine/ui"
	"github.com/stretchr/testify/require"
)

var testLayer = ui.LayerID{Order: ui.OrderMiddle, ID: ui.IDFrom("test")}

func screen() ui.Input { return ui.Input{ScreenW: 800, ScreenH: 600} }

func at(in ui.Input, x, y float32) ui.Input {
	in.PointerX, in.PointerY, in.HasPointer = x, y, true
	return in
}

func pressed(in ui.Input) ui.Input {
	in.MousePressed, in.MouseDown = true, true
	return in
}

func scrolled(in ui.Input, dy float32) ui.Input {
	in.ScrollY = dy
	return in
}

// showIn runs one frame with bar laid out in a region of the given size at
// the origin and returns the response.
func showIn(ctx *ui.Ctx, in ui.Input, size ui.Vec2, bar FixedScrollbar) ui.Response {
	ctx.BeginFrame(in)
	u := ui.NewUi(ctx, testLayer, ui.Rect{Max: size})
	resp := bar.UI(u)
	ctx.EndFrame()
	return resp
}

func rectsIn(ctx *ui.Ctx, layer ui.LayerID) []ui.DrawCommand {
	var out []ui.DrawCommand
	for _, c := range ctx.DrawList() {
		if c.Layer == layer && c.Kind == ui.DrawRect {
			out = append(out, c)
		}
	}
	return out
}

func TestNewClampsPosition(t *testing.T) {
	cases := []struct {
		in, want float32
	}{
		{2, 1},
		{-1, 0},
		{0.5, 0.5},
		{0, 0},
		{1, 1},
		{float32(math.NaN()), 0},
		{float32(math.Inf(1)), 1},
	}
	for _, tc := range cases {
		v := tc.in
		New(&v, 10)
		require.Equal(t, tc.want, v, "input %v", tc.in)
	}
}

func TestNewDefaults(t *testing.T) {
	v := float32(0.3)
	s := New(&v, 12)
	require.Equal(t, float32(12), s.Width())
	require.Equal(t, float32(DefaultHandleHeight), s.handleHeight)
	require.Equal(t, float32(DefaultScrollSensitivity), s.scrollSensitivity)
	require.True(t, s.scrollSmoothing)
}

func TestNilValueStillWorks(t *testing.T) {
	ctx := ui.New(nil)
	require.NotPanics(t, func() {
		showIn(ctx, pressed(at(scrolled(screen(), 5), 5, 50)), ui.Vec2{X: 20, Y: 100}, New(nil, 20))
	})
	require.Len(t, rectsIn(ctx, testLayer), 2)
}

func TestBuildersAreOrderInsensitive(t *testing.T) {
	v := float32(0.5)
	a := New(&v, 10).ScrollSensitivity(3).ScrollSmoothing(false).HandleHeight(70)
	b := New(&v, 10).HandleHeight(70).ScrollSensitivity(3).ScrollSmoothing(false)
	c := New(&v, 10).ScrollSmoothing(false).HandleHeight(70).ScrollSensitivity(3)
	require.Equal(t, a, b)
	require.Equal(t, a, c)

	// Builders return copies.
	base := New(&v, 10)
	base.HandleHeight(5)
	require.Equal(t, float32(DefaultHandleHeight), base.handleHeight)
}

func TestDragSetsAbsolutePosition(t *testing.T) {
	for _, f := range []float32{0, 0.25, 0.5, 0.75, 1} {
		ctx := ui.New(nil)
		v := float32(0.9)
		resp := showIn(ctx, pressed(at(screen(), 10, f*100)), ui.Vec2{X: 20, Y: 100}, New(&v, 20))
		require.True(t, resp.Dragged)
		require.Equal(t, f, v, "fraction %v", f)
	}
}

func TestDragOutsideTrackClamps(t *testing.T) {
	ctx := ui.New(nil)
	v := float32(0.5)
	size := ui.Vec2{X: 20, Y: 100}
	showIn(ctx, pressed(at(screen(), 10, 50)), size, New(&v, 20))

	held := at(screen(), 300, 450)
	held.MouseDown = true
	showIn(ctx, held, size, New(&v, 20))
	require.Equal(t, float32(1), v)

	held.PointerY = -40
	showIn(ctx, held, size, New(&v, 20))
	require.Equal(t, float32(0), v)
}

func TestRawScroll(t *testing.T) {
	cases := []struct {
		name        string
		start, dy   float32
		sensitivity float32
		want        float32
	}{
		{"down", 0.5, 40, 0.1, 0.46},
		{"up", 0.5, -40, 0.1, 0.54},
		{"sensitive", 0.5, 10, 2, 0.3},
		{"clamped top", 0.1, 1000, 0.1, 0},
		{"clamped bottom", 0.9, -1000, 0.1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := ui.New(nil)
			v := tc.start
			bar := New(&v, 20).ScrollSmoothing(false).ScrollSensitivity(tc.sensitivity)
			showIn(ctx, scrolled(screen(), tc.dy), ui.Vec2{X: 20, Y: 100}, bar)
			require.InDelta(t, tc.want, v, 1e-6)
		})
	}
}

func TestZeroScrollLeavesPositionUnchanged(t *testing.T) {
	ctx := ui.New(nil)
	v := float32(0.123456)
	showIn(ctx, at(screen(), 10, 10), ui.Vec2{X: 20, Y: 100}, New(&v, 20).ScrollSmoothing(false))
	require.Equal(t, float32(0.123456), v)
}

func TestSmoothedScrollSpreadsOverFrames(t *testing.T) {
	ctx := ui.New(nil)
	v := float32(0.5)
	size := ui.Vec2{X: 20, Y: 100}

	showIn(ctx, scrolled(screen(), 120), size, New(&v, 20))
	first := ctx.Input().SmoothScrollDelta.Y
	require.InDelta(t, 0.5-first*0.1/100, v, 1e-6)
	require.Greater(t, v, float32(0.38))

	for i := 0; i < 200; i++ {
		showIn(ctx, screen(), size, New(&v, 20))
	}
	require.InDelta(t, 0.38, v, 1e-4)
}

func TestDragThenScrollInOneFrame(t *testing.T) {
	ctx := ui.New(nil)
	v := float32(0)
	in := scrolled(pressed(at(screen(), 10, 50)), 10)
	showIn(ctx, in, ui.Vec2{X: 20, Y: 100}, New(&v, 20).ScrollSmoothing(false))
	require.InDelta(t, 0.49, v, 1e-6)
}

func TestHandleHeightIsCapped(t *testing.T) {
	cases := []struct {
		name      string
		handle    float32
		available float32
		want      float32
	}{
		{"capped", 1000, 100, 20},
		{"default capped", DefaultHandleHeight, 100, 20},
		{"fits", DefaultHandleHeight, 1000, 50},
		{"negative", -10, 100, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := ui.New(nil)
			v := float32(0)
			showIn(ctx, screen(), ui.Vec2{X: 20, Y: tc.available}, New(&v, 20).HandleHeight(tc.handle))
			rects := rectsIn(ctx, testLayer)
			require.Len(t, rects, 2)
			require.Equal(t, tc.want, rects[1].Rect.Height())
			require.LessOrEqual(t, rects[1].Rect.Height(), 0.2*tc.available)
		})
	}
}

func TestPaintsTrackAndHandle(t *testing.T) {
	for _, tc := range []struct {
		value   float32
		handleY float32
	}{
		{0, 0},
		{0.5, 40},
		{1, 80},
	} {
		ctx := ui.New(nil)
		v := tc.value
		showIn(ctx, screen(), ui.Vec2{X: 16, Y: 100}, New(&v, 16))

		vis := ctx.Style().Visuals
		rects := rectsIn(ctx, testLayer)
		require.Len(t, rects, 2)

		track, handle := rects[0], rects[1]
		require.Equal(t, ui.Rect{Max: ui.Vec2{X: 16, Y: 100}}, track.Rect)
		require.Equal(t, vis.ExtremeBgColor, track.Color)

		require.Equal(t, vis.Widgets.Active.BgFill, handle.Color)
		require.Equal(t, float32(16), handle.Rect.Width())
		require.Equal(t, tc.handleY, handle.Rect.Min.Y)
		require.LessOrEqual(t, handle.Rect.Max.Y, track.Rect.Max.Y)
	}
}

func TestZeroAvailableHeight(t *testing.T) {
	ctx := ui.New(nil)
	v := float32(0.4)
	showIn(ctx, pressed(at(scrolled(screen(), 30), 5, 0)), ui.Vec2{X: 20, Y: 0}, New(&v, 20).ScrollSmoothing(false))
	require.Equal(t, float32(0.4), v)
}

func TestIdleFramesAreIdempotent(t *testing.T) {
	ctx := ui.New(nil)
	v := float32(0.37)
	for i := 0; i < 50; i++ {
		// Hovering without pressing or scrolling.
		showIn(ctx, at(screen(), 10, float32(i)), ui.Vec2{X: 20, Y: 100}, New(&v, 20))
	}
	require.Equal(t, float32(0.37), v)
}

func TestAdaptersOnFreshContext(t *testing.T) {
	v := float32(0.6)
	require.NotPanics(t, func() {
		ctx := ui.New(nil)
		ctx.BeginFrame(screen())
		New(&v, 20).ShowInSidePanel(ctx, "side")
		ui.CentralPanel{}.Show(ctx, func(u *ui.Ui) {
			New(&v, 20).ShowFloating(u, ui.Vec2{X: 100, Y: 200})
			New(&v, 20).ShowDocked(u, ui.RectFromMinSize(ui.Vec2{X: 100, Y: 300}, ui.Vec2{X: 200, Y: 20}))
		})
		ctx.EndFrame()
	})
	require.Equal(t, float32(0.6), v)
}

func TestShowInSidePanel(t *testing.T) {
	ctx := ui.New(nil)
	v := float32(0)
	ctx.BeginFrame(screen())
	New(&v, 20).ShowInSidePanel(ctx, "side")
	require.Equal(t, ui.Rect{Max: ui.Vec2{X: 780, Y: 600}}, ctx.AvailableRect())
	ctx.EndFrame()

	rects := rectsIn(ctx, ui.LayerID{Order: ui.OrderMiddle, ID: ui.IDFrom("side")})
	require.Len(t, rects, 2, "borderless panel paints only the bar")
	require.Equal(t, ui.Rect{Min: ui.Vec2{X: 780}, Max: ui.Vec2{X: 800, Y: 600}}, rects[0].Rect)
}

func TestShowFloating(t *testing.T) {
	ctx := ui.New(nil)
	v := float32(0)
	show := func(in ui.Input) {
		ctx.BeginFrame(in)
		ui.CentralPanel{}.Show(ctx, func(u *ui.Ui) {
			New(&v, 20).ShowFloating(u, ui.Vec2{X: 100, Y: 200})
		})
		ctx.EndFrame()
	}
	show(screen())

	layer := ui.LayerID{Order: ui.OrderForeground, ID: ui.IDFrom(floatingAreaID)}
	rects := rectsIn(ctx, layer)
	require.Len(t, rects, 2)
	require.Equal(t, ui.RectFromMinSize(ui.Vec2{X: 100, Y: 200}, ui.Vec2{X: 20, Y: 400}), rects[0].Rect)

	// The overlay wins the press over the central panel underneath.
	show(pressed(at(screen(), 110, 300)))
	require.Equal(t, float32(0.25), v)
}

func TestShowDocked(t *testing.T) {
	ctx := ui.New(nil)
	v := float32(1)
	target := ui.RectFromMinSize(ui.Vec2{X: 100, Y: 300}, ui.Vec2{X: 200, Y: 20})
	ctx.BeginFrame(screen())
	ui.CentralPanel{}.Show(ctx, func(u *ui.Ui) {
		New(&v, 20).ShowDocked(u, target)
	})
	ctx.EndFrame()

	want := ui.Rect{Min: ui.Vec2{X: 300, Y: 300}, Max: ui.Vec2{X: 320, Y: 320}}
	require.Equal(t, want, DockRect(target, 20))
	rects := rectsIn(ctx, ui.LayerID{Order: ui.OrderForeground, ID: ui.IDFrom(dockedAreaID)})
	require.Len(t, rects, 2)
	require.Equal(t, want, rects[0].Rect)
	// 0.2 * 20 tall handle resting on the bottom.
	require.Equal(t, float32(4), rects[1].Rect.Height())
	require.Equal(t, float32(320), rects[1].Rect.Max.Y)
}

func TestWithIDPlacementsCoexist(t *testing.T) {
	ctx := ui.New(nil)
	a, b := float32(0), float32(1)
	ctx.BeginFrame(screen())
	ui.CentralPanel{}.Show(ctx, func(u *ui.Ui) {
		New(&a, 10).ShowFloatingWithID(u, "a", ui.Vec2{X: 10, Y: 10})
		New(&b, 10).ShowFloatingWithID(u, "b", ui.Vec2{X: 50, Y: 10})
	})
	ctx.EndFrame()
	require.Len(t, rectsIn(ctx, ui.LayerID{Order: ui.OrderForeground, ID: ui.IDFrom("a")}), 2)
	require.Len(t, rectsIn(ctx, ui.LayerID{Order: ui.OrderForeground, ID: ui.IDFrom("b")}), 2)
}

func TestAddedDirectlyAfterSpace(t *testing.T) {
	ctx := ui.New(nil)
	v := float32(0)
	var resp ui.Response
	ctx.BeginFrame(screen())
	ui.CentralPanel{}.Frame(ui.FrameNone()).Show(ctx, func(u *ui.Ui) {
		u.AddSpace(40)
		resp = u.Add(New(&v, 20))
	})
	ctx.EndFrame()
	require.Equal(t, ui.Rect{Min: ui.Vec2{Y: 40}, Max: ui.Vec2{X: 20, Y: 600}}, resp.Rect)
}
