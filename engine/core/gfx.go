package core

// GPU resource handles are opaque; only the backend that created them can use them.
type (
	Pipeline interface{ isPipeline() }
	Texture  interface{ isTexture() }
	Mesh     interface{ isMesh() }
)

// Embeddable markers so backends can satisfy the handle interfaces.
type (
	PipelineHandle struct{}
	TextureHandle  struct{}
	MeshHandle     struct{}
)

func (PipelineHandle) isPipeline() {}
func (TextureHandle) isTexture()   {}
func (MeshHandle) isMesh()         {}

type PipelineDesc struct {
	VertexSource   string
	FragmentSource string
	DepthTest      bool
	Blend          bool
}

type TextureFormat int

const (
	TextureRGBA8 TextureFormat = iota
)

type TextureDesc struct {
	Width, Height int
	Format        TextureFormat
	Pixels        []byte
	MinFilter     string // "nearest" | "linear"
	MagFilter     string
	WrapU, WrapV  string // "clamp" | "repeat"
}

type AttribType int

const (
	AttribFloat32 AttribType = iota
)

type VertexAttrib struct {
	Location uint32
	Size     int32 // components
	Type     AttribType
	Offset   int // bytes
}

type VertexLayout struct {
	Stride     int32 // bytes
	Attributes []VertexAttrib
}

type MeshDesc struct {
	Vertices []float32
	Indices  []uint32
	Layout   VertexLayout
	Dynamic  bool
}

// DrawCmd draws the mesh's current index range with the given pipeline.
type DrawCmd struct {
	Pipe       Pipeline
	Mesh       Mesh
	IndexCount int // 0 = all indices last uploaded
	Uniforms   map[string]any
	Samplers   map[string]Texture
}
