package gfx

import (
	"image"
)

// Object handles. Zero is never a valid object; backends hand out handles
// starting at 1.
type (
	Shader  uint32
	Program uint32
	Buffer  uint32
	Texture uint32
)

// Attrib is a vertex attribute location. Negative means the program has no
// active attribute by that name.
type Attrib int32

// Uniform is a uniform location. Negative means not found.
type Uniform int32

// Context is a GL ES 2.0 / WebGL 1 rendering context. Everything that draws
// takes one explicitly; there is no ambient current context.
type Context interface {
	ClearColor(r, g, b, a float32)
	Clear(mask ClearMask)
	Enable(c Capability)
	FrontFace(w Winding)
	CullFace(f Face)
	Viewport(x, y, width, height int)

	CreateShader(t ShaderType) Shader
	ShaderSource(s Shader, src string)
	CompileShader(s Shader)
	ShaderCompiled(s Shader) bool
	ShaderInfoLog(s Shader) string

	CreateProgram() Program
	AttachShader(p Program, s Shader)
	LinkProgram(p Program)
	ProgramLinked(p Program) bool
	ValidateProgram(p Program)
	ProgramValidated(p Program) bool
	ProgramInfoLog(p Program) string
	UseProgram(p Program)
	GetAttribLocation(p Program, name string) Attrib
	GetUniformLocation(p Program, name string) Uniform

	CreateBuffer() Buffer
	BindBuffer(target BufferTarget, b Buffer)
	BufferData(target BufferTarget, data []byte, usage Usage)
	VertexAttribPointer(a Attrib, size int, typ ComponentType, normalized bool, stride, offset int)
	EnableVertexAttribArray(a Attrib)

	UniformMatrix4fv(u Uniform, transpose bool, m *[16]float32)
	Uniform1i(u Uniform, v int)

	CreateTexture() Texture
	// ActiveTexture takes a unit index; 0 selects TEXTURE0.
	ActiveTexture(unit int)
	// BindTexture binds to TEXTURE_2D; zero unbinds.
	BindTexture(t Texture)
	TexParameteri(pname TextureParam, value int)
	TexImage2D(img *image.NRGBA)

	DrawArrays(mode DrawMode, first, count int)
}

// Surface is a drawing surface that can hand out rendering contexts, like a
// canvas element. GetContext returns nil when the identifier is not
// supported.
type Surface interface {
	GetContext(id string) Context
	Size() (width, height int)
}

// Alerter shows a blocking notice to the person in front of the surface.
type Alerter interface {
	Alert(msg string)
}
