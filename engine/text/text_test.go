package text

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func rasterizeDefault(t *testing.T, size float32) *Font {
	t.Helper()
	atlas, err := Rasterize(goregular.TTF, size)
	require.NoError(t, err)
	t.Cleanup(func() { _ = atlas.Font.Close() })
	return atlas.Font
}

func TestRasterizeCoversASCII(t *testing.T) {
	f := rasterizeDefault(t, 16)
	for r := rune('!'); r <= '~'; r++ {
		g, ok := f.Glyphs[r]
		require.True(t, ok, "missing glyph %q", r)
		require.Greater(t, g.Advance, float32(0))
		require.LessOrEqual(t, g.U1, float32(1))
		require.LessOrEqual(t, g.V1, float32(1))
	}
	require.Greater(t, LineHeight(f), float32(0))
}

func TestMeasureTextScales(t *testing.T) {
	f := rasterizeDefault(t, 32)
	w32, h32 := MeasureText(f, "Scrollbar", 32)
	w16, h16 := MeasureText(f, "Scrollbar", 16)
	require.InDelta(t, w32/2, w16, 0.01)
	require.InDelta(t, h32/2, h16, 0.01)
}

func TestMeasureTextMultiline(t *testing.T) {
	f := rasterizeDefault(t, 16)
	_, one := MeasureText(f, "a", 16)
	wLong, _ := MeasureText(f, "aaaa", 16)
	w, two := MeasureText(f, "aaaa\na", 16)
	require.InDelta(t, 2*one, two, 0.01)
	require.InDelta(t, wLong, w, 0.01)
}

func TestRasterizeRejectsGarbage(t *testing.T) {
	_, err := Rasterize([]byte("not a font"), 16)
	require.ErrorContains(t, err, "parse font")
}
