package scene

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// project applies a column-major VP matrix to (x, y, 0, 1).
func project(vp [16]float32, x, y float32) (float32, float32) {
	return vp[0]*x + vp[4]*y + vp[12], vp[1]*x + vp[5]*y + vp[13]
}

func TestScreenOrthoCorners(t *testing.T) {
	cam := NewScreenOrtho(800, 600)
	vp := cam.VP()

	nx, ny := project(vp, 0, 0)
	require.InDelta(t, -1, nx, 1e-5)
	require.InDelta(t, 1, ny, 1e-5) // top-left pixel is NDC top

	nx, ny = project(vp, 800, 600)
	require.InDelta(t, 1, nx, 1e-5)
	require.InDelta(t, -1, ny, 1e-5)

	require.Equal(t, float32(800), cam.Width())
	require.Equal(t, float32(600), cam.Height())
}

func TestScreenOrthoResize(t *testing.T) {
	cam := NewScreenOrtho(100, 100)
	cam.SetViewportPixels(200, 50)
	nx, ny := project(cam.VP(), 200, 50)
	require.InDelta(t, 1, nx, 1e-5)
	require.InDelta(t, -1, ny, 1e-5)
}

func TestCenteredOrthoIsYUp(t *testing.T) {
	cam := NewOrtho2D(100, 100)
	_, ny := project(cam.VP(), 0, 50)
	require.InDelta(t, 1, ny, 1e-5)
}

func TestZoomIsClamped(t *testing.T) {
	cam := NewOrtho2D(10, 10)
	cam.SetZoom(0)
	require.Equal(t, float32(0.05), cam.Zoom)
}
