package renderer2d

import (
	"fmt"
	"strconv"

	"github.com/hubastard/floatscroll/engine/colors"
	"github.com/hubastard/floatscroll/engine/core"
)

// Samplers per draw call; 16 is the common GL minimum.
const maxTexSlots = 16

const defaultMaxQuads = 10000

// Statistics captures the counts generated during a renderer frame.
type Statistics struct {
	DrawCalls    int
	QuadCount    int
	TextureCount int
}

// TotalVertexCount reports vertices submitted this frame.
func (s Statistics) TotalVertexCount() int { return s.QuadCount * vertsPerQuad }

// TotalIndexCount reports indices submitted this frame.
func (s Statistics) TotalIndexCount() int { return s.QuadCount * indsPerQuad }

// Renderer2D batches solid and textured quads between BeginScene and
// EndScene. A batch is drawn when it runs out of quads or sampler slots.
type Renderer2D struct {
	gpu   core.Renderer
	pipe  core.Pipeline
	mesh  core.Mesh
	white core.Texture

	batch     batch
	vp        [16]float32
	stats     Statistics
	samplers  map[string]core.Texture
	uniforms  map[string]any
	slotNames [maxTexSlots]string
}

// New compiles the quad pipeline and allocates a mesh for maxQuads quads.
func New(gpu core.Renderer, vertSrc, fragSrc string, maxQuads int) (*Renderer2D, error) {
	if maxQuads <= 0 {
		maxQuads = defaultMaxQuads
	}
	pipe, err := gpu.CreatePipeline(core.PipelineDesc{
		VertexSource:   vertSrc,
		FragmentSource: fragSrc,
		Blend:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("renderer2d pipeline: %w", err)
	}

	white, err := gpu.CreateTexture(core.TextureDesc{
		Width: 1, Height: 1,
		Format:    core.TextureRGBA8,
		Pixels:    []byte{255, 255, 255, 255},
		MinFilter: "nearest", MagFilter: "nearest",
		WrapU: "clamp", WrapV: "clamp",
	})
	if err != nil {
		return nil, fmt.Errorf("renderer2d white texture: %w", err)
	}

	mesh, err := gpu.CreateMesh(core.MeshDesc{
		Vertices: make([]float32, maxQuads*vertsPerQuad*floatsPerVertex),
		Indices:  make([]uint32, maxQuads*indsPerQuad),
		Layout:   quadVertexLayout,
		Dynamic:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("renderer2d mesh: %w", err)
	}

	rd := &Renderer2D{
		gpu:      gpu,
		pipe:     pipe,
		mesh:     mesh,
		white:    white,
		batch:    newBatch(maxQuads, white),
		samplers: make(map[string]core.Texture, maxTexSlots),
		uniforms: make(map[string]any, 1),
	}
	for i := range rd.slotNames {
		rd.slotNames[i] = "uTex[" + strconv.Itoa(i) + "]"
	}
	return rd, nil
}

func (rd *Renderer2D) BeginScene(vp [16]float32) {
	rd.vp = vp
	rd.stats = Statistics{}
	rd.batch.reset(rd.white)
}

func (rd *Renderer2D) EndScene() { rd.flush() }

// Stats returns the current frame statistics snapshot.
func (rd *Renderer2D) Stats() Statistics { return rd.stats }

// DrawQuad fills a w×h rect centered at (cx,cy).
func (rd *Renderer2D) DrawQuad(cx, cy, w, h float32, color colors.Color) {
	rd.add(cx, cy, w, h, color, wholeTexture(rd.white))
}

// DrawSubTexQuad draws the sub region stretched over a w×h rect centered at
// (cx,cy), multiplied by tint.
func (rd *Renderer2D) DrawSubTexQuad(cx, cy, w, h float32, sub SubTexture2D, tint colors.Color) {
	rd.add(cx, cy, w, h, tint, sub)
}

func (rd *Renderer2D) add(cx, cy, w, h float32, c colors.Color, sub SubTexture2D) {
	if rd.batch.full() {
		rd.flush()
	}
	slot, ok := rd.batch.slot(sub.Texture)
	if !ok {
		rd.flush()
		slot, _ = rd.batch.slot(sub.Texture)
	}
	rd.batch.quad(cx-w*0.5, cy-h*0.5, cx+w*0.5, cy+h*0.5, c, sub, slot)
	rd.stats.QuadCount++
	rd.stats.TextureCount = max(rd.stats.TextureCount, rd.batch.slots)
}

func (rd *Renderer2D) flush() {
	if rd.batch.empty() {
		return
	}
	b := &rd.batch
	if err := rd.gpu.UpdateMesh(rd.mesh, b.verts, b.inds); err != nil {
		panic(err)
	}

	clear(rd.samplers)
	for i := 0; i < b.slots; i++ {
		rd.samplers[rd.slotNames[i]] = b.textures[i]
	}
	rd.uniforms["uVP"] = rd.vp

	rd.gpu.Draw(core.DrawCmd{
		Pipe:       rd.pipe,
		Mesh:       rd.mesh,
		IndexCount: len(b.inds),
		Uniforms:   rd.uniforms,
		Samplers:   rd.samplers,
	})
	rd.stats.DrawCalls++
	b.reset(rd.white)
}
