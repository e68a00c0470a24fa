package ui

import (
	"fmt"

	"github.com/hubastard/floatscroll/engine/colors"
)

type WidgetVisuals struct {
	BgFill colors.Color
	FgText colors.Color
}

type Widgets struct {
	Inactive WidgetVisuals
	Hovered  WidgetVisuals
	Active   WidgetVisuals
}

type Visuals struct {
	ExtremeBgColor  colors.Color // darkest fill: text edits, scroll tracks
	PanelFill       colors.Color
	WindowFill      colors.Color
	TextColor       colors.Color
	StrongTextColor colors.Color
	Widgets         Widgets
}

type Style struct {
	Visuals     Visuals
	ItemSpacing Vec2
	PanelMargin float32
	FontSize    float32
	HeadingSize float32
	ButtonPad   Vec2
}

func gray(v uint8) colors.Color {
	f := float32(v) / 255
	return colors.Color{f, f, f, 1}
}

func DefaultVisuals() Visuals {
	return Visuals{
		ExtremeBgColor:  gray(10),
		PanelFill:       gray(27),
		WindowFill:      gray(27),
		TextColor:       gray(140),
		StrongTextColor: gray(255),
		Widgets: Widgets{
			Inactive: WidgetVisuals{BgFill: gray(60), FgText: gray(180)},
			Hovered:  WidgetVisuals{BgFill: gray(70), FgText: gray(240)},
			Active:   WidgetVisuals{BgFill: gray(55), FgText: gray(255)},
		},
	}
}

func DefaultStyle() Style {
	return Style{
		Visuals:     DefaultVisuals(),
		ItemSpacing: Vec2{8, 3},
		PanelMargin: 8,
		FontSize:    14,
		HeadingSize: 20,
		ButtonPad:   Vec2{6, 3},
	}
}

// ThemeOverrides replaces individual visuals with "#rrggbb[aa]" colors.
// Empty fields keep the current value.
type ThemeOverrides struct {
	ExtremeBg  string `toml:"extreme_bg"`
	PanelFill  string `toml:"panel_fill"`
	WindowFill string `toml:"window_fill"`
	Text       string `toml:"text"`
	HandleFill string `toml:"handle_fill"`
}

// Apply is all-or-nothing: on error v is left unchanged.
func (v *Visuals) Apply(o ThemeOverrides) error {
	nv := *v
	targets := []struct {
		name string
		hex  string
		dst  *colors.Color
	}{
		{"extreme_bg", o.ExtremeBg, &nv.ExtremeBgColor},
		{"panel_fill", o.PanelFill, &nv.PanelFill},
		{"window_fill", o.WindowFill, &nv.WindowFill},
		{"text", o.Text, &nv.TextColor},
		{"handle_fill", o.HandleFill, &nv.Widgets.Active.BgFill},
	}
	for _, t := range targets {
		if t.hex == "" {
			continue
		}
		c, err := colors.FromHex(t.hex)
		if err != nil {
			return fmt.Errorf("theme %s: %w", t.name, err)
		}
		*t.dst = c
	}
	if o.HandleFill != "" {
		nv.Widgets.Hovered.BgFill = nv.Widgets.Active.BgFill.Blend(colors.White, 0.15)
	}
	*v = nv
	return nil
}
