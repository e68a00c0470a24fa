package renderer2d

import "github.com/hubastard/floatscroll/engine/core"

// SubTexture2D is a region of Texture in normalized coordinates, (U0,V0)
// being its top-left corner.
type SubTexture2D struct {
	Texture core.Texture
	U0, V0  float32
	U1, V1  float32
}

// FromPixels maps the w×h pixel region at (x,y) of an atlasW×atlasH texture.
func FromPixels(tex core.Texture, x, y, w, h, atlasW, atlasH int) SubTexture2D {
	fw, fh := float32(atlasW), float32(atlasH)
	return SubTexture2D{
		Texture: tex,
		U0:      float32(x) / fw,
		V0:      float32(y) / fh,
		U1:      float32(x+w) / fw,
		V1:      float32(y+h) / fh,
	}
}

func wholeTexture(tex core.Texture) SubTexture2D {
	return SubTexture2D{Texture: tex, U1: 1, V1: 1}
}
