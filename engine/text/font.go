package text

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/hubastard/floatscroll/engine/core"
	"github.com/hubastard/floatscroll/engine/gfx/renderer2d"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

type Glyph struct {
	Rune     rune
	Advance  float32 // pixels
	BearingX float32 // left bearing in pixels
	BearingY float32 // top bearing in pixels (distance from baseline to glyph top)
	W, H     int     // glyph bitmap size
	U0, V0   float32 // UVs in atlas
	U1, V1   float32
}

// Font is a rasterized glyph atlas for one face at one pixel size.
type Font struct {
	SizePx                   float32
	Ascent, Descent, LineGap float32
	Glyphs                   map[rune]Glyph
	Texture                  core.Texture
	AtlasW, AtlasH           int
	Face                     font.Face
}

func (f *Font) Close() error {
	if f == nil || f.Face == nil {
		return nil
	}
	err := f.Face.Close()
	f.Face = nil
	return err
}

// LoadDefaultFont builds an atlas from the bundled Go Regular face.
func LoadDefaultFont(r core.Renderer, sizePx float32) (*Font, error) {
	return LoadFont(r, goregular.TTF, sizePx)
}

// LoadFont builds a white glyph atlas (alpha coverage) from TTF/OTF data and
// uploads it as an RGBA texture.
func LoadFont(r core.Renderer, ttf []byte, sizePx float32) (*Font, error) {
	atlas, err := Rasterize(ttf, sizePx)
	if err != nil {
		return nil, err
	}
	tex, err := r.CreateTexture(core.TextureDesc{
		Width: atlas.Image.Bounds().Dx(), Height: atlas.Image.Bounds().Dy(),
		Format:    core.TextureRGBA8,
		Pixels:    atlas.Image.Pix,
		MinFilter: "nearest",
		MagFilter: "nearest",
		WrapU:     "clamp",
		WrapV:     "clamp",
	})
	if err != nil {
		_ = atlas.Font.Close()
		return nil, fmt.Errorf("upload font atlas: %w", err)
	}
	atlas.Font.Texture = tex
	return atlas.Font, nil
}

// Atlas is a CPU-side rasterized font, before texture upload.
type Atlas struct {
	Font  *Font
	Image *image.RGBA
}

// Rasterize packs glyphs 32..255 into a square shelf atlas.
func Rasterize(ttf []byte, sizePx float32) (*Atlas, error) {
	ft, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}

	// Metrics in pixels
	m := face.Metrics()
	ascent := float32(m.Ascent.Round())
	descent := float32(-m.Descent.Round())
	lineGap := float32(m.Height.Round()) - ascent + descent
	if lineGap < 0 {
		lineGap = 0
	}

	type meas struct {
		r      rune
		w, h   int
		adv    float32
		bx, by float32
	}
	measure := make([]meas, 0, 224)
	for rr := rune(32); rr <= rune(255); rr++ {
		br, adv, ok := face.GlyphBounds(rr)
		if !ok {
			continue
		}
		measure = append(measure, meas{
			r:   rr,
			w:   (br.Max.X - br.Min.X).Ceil(),
			h:   (br.Max.Y - br.Min.Y).Ceil(),
			adv: float32(adv.Round()),
			bx:  float32(br.Min.X.Floor()),
			by:  float32(-br.Min.Y.Floor()), // distance from baseline to top
		})
	}

	// Shelf packer (rows). Start with 256^2 and grow until everything fits.
	const padding = 2
	atlasSize := 256
	var pos map[rune]image.Point
	for {
		x, y, rowH := padding, padding, 0
		fits := true
		pos = make(map[rune]image.Point, len(measure))

		for _, g := range measure {
			if g.w == 0 || g.h == 0 {
				continue
			}
			if g.w+padding*2 > atlasSize || g.h+padding*2 > atlasSize {
				fits = false
				break
			}
			if x+g.w+padding > atlasSize {
				x = padding
				y += rowH + padding
				rowH = 0
			}
			if y+g.h+padding > atlasSize {
				fits = false
				break
			}
			pos[g.r] = image.Pt(x, y)
			x += g.w + padding
			if g.h > rowH {
				rowH = g.h
			}
		}

		if fits {
			break
		}
		atlasSize *= 2
		if atlasSize > 4096 {
			_ = face.Close()
			return nil, fmt.Errorf("font atlas too large (>%d)", 4096)
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, atlasSize, atlasSize))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{color.RGBA{}}, image.Point{}, draw.Src)

	drawer := &font.Drawer{Dst: dst, Src: image.White, Face: face}

	glyphs := make(map[rune]Glyph, len(measure))
	for _, g := range measure {
		gly := Glyph{Rune: g.r, Advance: g.adv, BearingX: g.bx, BearingY: g.by, W: g.w, H: g.h}
		if p, ok := pos[g.r]; ok {
			// Drawer expects a dot at the baseline.
			drawer.Dot = fixed.P(p.X-int(g.bx), p.Y+int(g.by))
			drawer.DrawString(string(g.r))

			sub := renderer2d.FromPixels(nil, p.X, p.Y, g.w, g.h, atlasSize, atlasSize)
			gly.U0, gly.V0, gly.U1, gly.V1 = sub.U0, sub.V0, sub.U1, sub.V1
		}
		glyphs[g.r] = gly
	}

	return &Atlas{
		Font: &Font{
			SizePx: sizePx,
			Ascent: ascent, Descent: descent, LineGap: lineGap,
			Glyphs: glyphs,
			AtlasW: atlasSize, AtlasH: atlasSize,
			Face:   face,
		},
		Image: dst,
	}, nil
}
