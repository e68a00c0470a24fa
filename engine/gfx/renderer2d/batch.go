package renderer2d

import (
	"github.com/hubastard/floatscroll/engine/colors"
	"github.com/hubastard/floatscroll/engine/core"
)

// pos2 + color4 + uv2 + slot1
const (
	floatsPerVertex = 9
	vertsPerQuad    = 4
	indsPerQuad     = 6
)

var quadVertexLayout = core.VertexLayout{
	Stride: floatsPerVertex * 4,
	Attributes: []core.VertexAttrib{
		{Location: 0, Size: 2, Type: core.AttribFloat32, Offset: 0},
		{Location: 1, Size: 4, Type: core.AttribFloat32, Offset: 2 * 4},
		{Location: 2, Size: 2, Type: core.AttribFloat32, Offset: 6 * 4},
		{Location: 3, Size: 1, Type: core.AttribFloat32, Offset: 8 * 4},
	},
}

// batch is the CPU side of one draw call: quads sharing up to maxTexSlots
// textures. Slot 0 always holds the white texture used by solid fills.
type batch struct {
	verts    []float32
	inds     []uint32
	textures [maxTexSlots]core.Texture
	slots    int
	quads    int
	capQuads int
}

func newBatch(capQuads int, white core.Texture) batch {
	b := batch{
		verts:    make([]float32, 0, capQuads*vertsPerQuad*floatsPerVertex),
		inds:     make([]uint32, 0, capQuads*indsPerQuad),
		capQuads: capQuads,
	}
	b.reset(white)
	return b
}

func (b *batch) reset(white core.Texture) {
	b.verts = b.verts[:0]
	b.inds = b.inds[:0]
	b.textures = [maxTexSlots]core.Texture{white}
	b.slots = 1
	b.quads = 0
}

func (b *batch) empty() bool { return b.quads == 0 }
func (b *batch) full() bool  { return b.quads >= b.capQuads }

// slot returns the sampler slot of t, claiming a free one if needed. ok is
// false when every slot is taken by another texture.
func (b *batch) slot(t core.Texture) (slot float32, ok bool) {
	for i := 0; i < b.slots; i++ {
		if b.textures[i] == t {
			return float32(i), true
		}
	}
	if b.slots == maxTexSlots {
		return 0, false
	}
	b.textures[b.slots] = t
	b.slots++
	return float32(b.slots - 1), true
}

// quad appends an axis-aligned quad spanning (x0,y0)-(x1,y1), Y down.
func (b *batch) quad(x0, y0, x1, y1 float32, c colors.Color, sub SubTexture2D, slot float32) {
	base := uint32(b.quads * vertsPerQuad)
	b.verts = append(b.verts,
		x0, y0, c[0], c[1], c[2], c[3], sub.U0, sub.V0, slot,
		x1, y0, c[0], c[1], c[2], c[3], sub.U1, sub.V0, slot,
		x0, y1, c[0], c[1], c[2], c[3], sub.U0, sub.V1, slot,
		x1, y1, c[0], c[1], c[2], c[3], sub.U1, sub.V1, slot,
	)
	b.inds = append(b.inds, base, base+2, base+1, base+1, base+2, base+3)
	b.quads++
}
