package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInputFrameEdges(t *testing.T) {
	in := NewInput()
	in.Handle(EventMouseMove{X: 10, Y: 20})
	in.Handle(EventMouseButton{Button: MouseLeft, Down: true})

	f := in.Frame()
	require.True(t, f.HasMouse)
	require.True(t, f.Pressed)
	require.True(t, f.Down)
	require.False(t, f.Released)
	require.Equal(t, 10.0, f.MouseX)
	require.Equal(t, 20.0, f.MouseY)

	// Edges are consumed by Frame; the held state persists.
	f = in.Frame()
	require.False(t, f.Pressed)
	require.True(t, f.Down)

	in.Handle(EventMouseButton{Button: MouseLeft, Down: false})
	f = in.Frame()
	require.True(t, f.Released)
	require.False(t, f.Down)
}

func TestInputScrollAccumulates(t *testing.T) {
	in := NewInput()
	in.Handle(EventScroll{Yoff: 1})
	in.Handle(EventScroll{Yoff: 2, Xoff: -1})

	x, y := in.PendingScroll()
	require.Equal(t, -1.0, x)
	require.Equal(t, 3.0, y)

	f := in.Frame()
	require.Equal(t, 3.0, f.ScrollY)
	require.Equal(t, 0.0, in.Frame().ScrollY)
}

func TestInputCursorLeave(t *testing.T) {
	in := NewInput()
	in.Handle(EventMouseMove{X: 1, Y: 1})
	in.Handle(EventCursorLeave{})
	require.False(t, in.Frame().HasMouse)
}

func TestInputRepeatedDownIsSinglePress(t *testing.T) {
	in := NewInput()
	in.Handle(EventMouseButton{Button: MouseLeft, Down: true})
	in.Frame()
	in.Handle(EventMouseButton{Button: MouseLeft, Down: true})
	require.False(t, in.Frame().Pressed)
	require.True(t, in.IsMouseDown(MouseLeft))
}

type recLayer struct {
	name    string
	handles bool
	log     *[]string
}

func (l *recLayer) OnAttach(*Engine)          {}
func (l *recLayer) OnDetach(*Engine)          {}
func (l *recLayer) OnUpdate(*Engine, float64) {}
func (l *recLayer) OnRender(*Engine, float64) {}
func (l *recLayer) OnEvent(_ *Engine, _ Event) bool {
	*l.log = append(*l.log, l.name)
	return l.handles
}

func TestLayerStackEventPropagation(t *testing.T) {
	var log []string
	var ls LayerStack
	ls.Push(&recLayer{name: "bottom", log: &log})
	ls.Push(&recLayer{name: "top", handles: true, log: &log})

	ls.ForEachReverse(func(l Layer) bool { return l.OnEvent(nil, EventResize{}) })
	require.Equal(t, []string{"top"}, log)

	l, ok := ls.Pop()
	require.True(t, ok)
	require.Equal(t, "top", l.(*recLayer).name)
	require.Equal(t, 1, ls.Len())
}
