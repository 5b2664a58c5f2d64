package gfx

// Enumerants carry the GL ES 2.0 numeric values so backends can pass them
// straight through.

type ShaderType uint32

const (
	FragmentShaderType ShaderType = 0x8B30
	VertexShaderType   ShaderType = 0x8B31
)

func (t ShaderType) String() string {
	switch t {
	case VertexShaderType:
		return "vertex"
	case FragmentShaderType:
		return "fragment"
	default:
		return "unknown"
	}
}

type ClearMask uint32

const (
	DepthBufferBit ClearMask = 0x0100
	ColorBufferBit ClearMask = 0x4000
)

type Capability uint32

const (
	CullFaceCap  Capability = 0x0B44
	DepthTestCap Capability = 0x0B71
)

type Winding uint32

const (
	Clockwise        Winding = 0x0900
	CounterClockwise Winding = 0x0901
)

type Face uint32

const (
	Front        Face = 0x0404
	Back         Face = 0x0405
	FrontAndBack Face = 0x0408
)

type BufferTarget uint32

const (
	ArrayBuffer BufferTarget = 0x8892
)

type Usage uint32

const (
	StreamDraw  Usage = 0x88E0
	StaticDraw  Usage = 0x88E4
	DynamicDraw Usage = 0x88E8
)

type ComponentType uint32

const (
	Byte          ComponentType = 0x1400
	UnsignedByte  ComponentType = 0x1401
	Short         ComponentType = 0x1402
	UnsignedShort ComponentType = 0x1403
	Float         ComponentType = 0x1406
)

// Size gives the byte width of a single component.
func (t ComponentType) Size() int {
	switch t {
	case Byte, UnsignedByte:
		return 1
	case Short, UnsignedShort:
		return 2
	default:
		return 4
	}
}

type DrawMode uint32

const (
	Points        DrawMode = 0x0000
	Lines         DrawMode = 0x0001
	Triangles     DrawMode = 0x0004
	TriangleStrip DrawMode = 0x0005
	TriangleFan   DrawMode = 0x0006
)

type TextureParam uint32

const (
	TextureMagFilter TextureParam = 0x2800
	TextureMinFilter TextureParam = 0x2801
	TextureWrapS     TextureParam = 0x2802
	TextureWrapT     TextureParam = 0x2803
)

// Values for TexParameteri.
const (
	Nearest      = 0x2600
	Linear       = 0x2601
	Repeat       = 0x2901
	ClampToEdge  = 0x812F
	MirrorRepeat = 0x8370
)
