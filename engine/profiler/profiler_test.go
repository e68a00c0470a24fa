package profiler

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// stepClock advances 1ms on every read.
func stepClock(p *Profiler) {
	t := time.Unix(0, 0)
	p.now = func() time.Time {
		t = t.Add(time.Millisecond)
		return t
	}
}

func decode(t *testing.T, p *Profiler) ssFile {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, p.WriteSpeedscope(&buf, "test"))
	var doc ssFile
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	return doc
}

func TestNestedScopes(t *testing.T) {
	p := New(16)
	stepClock(p)

	endFrame := p.Start("frame")
	endUI := p.Start("ui")
	endUI()
	endFrame()
	require.Equal(t, 4, p.Len())

	doc := decode(t, p)
	require.Equal(t, []ssFrame{{Name: "frame"}, {Name: "ui"}}, doc.Shared.Frames)
	require.Len(t, doc.Profiles, 1)

	prof := doc.Profiles[0]
	require.Equal(t, "evented", prof.Type)
	require.Equal(t, []ssEvent{
		{Type: "O", At: 0, Frame: 0},
		{Type: "O", At: 1000, Frame: 1},
		{Type: "C", At: 2000, Frame: 1},
		{Type: "C", At: 3000, Frame: 0},
	}, prof.Events)
	require.Equal(t, int64(3000), prof.EndValue)
}

func TestRingDropsOrphanedCloses(t *testing.T) {
	p := New(3)
	stepClock(p)

	end := p.Start("a")
	p.Start("b")()
	end()

	require.Equal(t, 3, p.Len())
	doc := decode(t, p)
	for _, e := range doc.Profiles[0].Events {
		require.Equal(t, 1, e.Frame, "only b survives balanced")
	}
	require.Len(t, doc.Profiles[0].Events, 2)
}

func TestUnclosedScopesAreClosedAtEnd(t *testing.T) {
	p := New(8)
	stepClock(p)
	p.Start("outer")
	p.Start("inner")

	evs := decode(t, p).Profiles[0].Events
	require.Len(t, evs, 4)
	require.Equal(t, ssEvent{Type: "C", At: 1000, Frame: 1}, evs[2])
	require.Equal(t, ssEvent{Type: "C", At: 1000, Frame: 0}, evs[3])
}

func TestEmptyAndNil(t *testing.T) {
	require.ErrorIs(t, New(4).WriteSpeedscope(&bytes.Buffer{}, "x"), ErrNoEvents)

	var p *Profiler
	require.NotPanics(t, func() { p.Start("x")() })
	require.Zero(t, p.Len())
	require.ErrorIs(t, p.WriteSpeedscope(&bytes.Buffer{}, "x"), ErrNoEvents)
}

func TestDump(t *testing.T) {
	p := New(8)
	p.Start("frame")()
	path, err := p.Dump(t.TempDir(), "sandbox")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"evented"`)
}

func TestReadRuntime(t *testing.T) {
	rt := ReadRuntime()
	require.Positive(t, rt.CPUs)
	require.Positive(t, rt.Goroutines)
	require.Positive(t, rt.HeapAlloc)
}
