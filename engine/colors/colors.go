package colors

import (
	"fmt"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

type Color [4]float32

var (
	White       = Color{1, 1, 1, 1}
	Red         = Color{1, 0, 0, 1}
	Green       = Color{0, 1, 0, 1}
	Blue        = Color{0, 0, 1, 1}
	Black       = Color{0, 0, 0, 1}
	Magenta     = Color{1, 0, 1, 1}
	Cyan        = Color{0, 1, 1, 1}
	Yellow      = Color{1, 1, 0, 1}
	Gray        = Color{0.5, 0.5, 0.5, 1}
	DarkGray    = Color{0.08, 0.10, 0.12, 1}
	Transparent = Color{}
)

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// Visible reports whether drawing c would produce any pixels.
func (c Color) Visible() bool { return c[3] > 0 }

// FromHex parses "#rgb", "#rrggbb" or "#rrggbbaa".
func FromHex(s string) (Color, error) {
	if !isHexColor(s) {
		return Color{}, fmt.Errorf("parse color %q: want #rgb, #rrggbb or #rrggbbaa", s)
	}
	alpha := float32(1)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("parse alpha of %q: %w", s, err)
		}
		alpha = float32(a) / 255
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return Color{float32(c.R), float32(c.G), float32(c.B), alpha}, nil
}

// colorful.Hex scans with Sscanf and ignores trailing input, so the shape is
// checked up front.
func isHexColor(s string) bool {
	switch len(s) {
	case 4, 7, 9:
	default:
		return false
	}
	if s[0] != '#' {
		return false
	}
	for i := 1; i < len(s); i++ {
		switch c := s[i]; {
		case '0' <= c && c <= '9', 'a' <= c && c <= 'f', 'A' <= c && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// Hex formats the RGB channels as "#rrggbb".
func (c Color) Hex() string {
	return c.colorful().Clamped().Hex()
}

// Blend mixes c towards o in Lab space; t=0 is c, t=1 is o. Alpha is lerped.
func (c Color) Blend(o Color, t float32) Color {
	m := c.colorful().BlendLab(o.colorful(), float64(t)).Clamped()
	return Color{float32(m.R), float32(m.G), float32(m.B), c[3] + (o[3]-c[3])*t}
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c[0]), G: float64(c[1]), B: float64(c[2])}
}
