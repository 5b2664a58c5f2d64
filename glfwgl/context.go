//go:build !js

// Package glfwgl runs gfx demos in a desktop window: an OpenGL 2.1 context
// through go-gl and a window, refresh cadence and event pump through glfw.
package glfwgl

import (
	"image"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v2.1/gl"

	gfx "github.com/TheCell/webPano"
)

// Context implements gfx.Context on the current OpenGL context. GL object
// names are used directly as handles.
type Context struct{}

func (Context) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (Context) Clear(mask gfx.ClearMask) {
	gl.Clear(uint32(mask))
}

func (Context) Enable(c gfx.Capability) {
	gl.Enable(uint32(c))
}

func (Context) FrontFace(w gfx.Winding) {
	gl.FrontFace(uint32(w))
}

func (Context) CullFace(f gfx.Face) {
	gl.CullFace(uint32(f))
}

func (Context) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (Context) CreateShader(t gfx.ShaderType) gfx.Shader {
	return gfx.Shader(gl.CreateShader(uint32(t)))
}

func (Context) ShaderSource(s gfx.Shader, src string) {
	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(uint32(s), 1, csrc, nil)
	free()
}

func (Context) CompileShader(s gfx.Shader) {
	gl.CompileShader(uint32(s))
}

func (Context) ShaderCompiled(s gfx.Shader) bool {
	var status int32
	gl.GetShaderiv(uint32(s), gl.COMPILE_STATUS, &status)
	return status == gl.TRUE
}

func (Context) ShaderInfoLog(s gfx.Shader) string {
	var n int32
	gl.GetShaderiv(uint32(s), gl.INFO_LOG_LENGTH, &n)
	if n == 0 {
		return ""
	}
	log := make([]byte, n)
	gl.GetShaderInfoLog(uint32(s), n, nil, &log[0])
	return strings.TrimRight(string(log), "\x00")
}

func (Context) CreateProgram() gfx.Program {
	return gfx.Program(gl.CreateProgram())
}

func (Context) AttachShader(p gfx.Program, s gfx.Shader) {
	gl.AttachShader(uint32(p), uint32(s))
}

func (Context) LinkProgram(p gfx.Program) {
	gl.LinkProgram(uint32(p))
}

func (Context) ProgramLinked(p gfx.Program) bool {
	var status int32
	gl.GetProgramiv(uint32(p), gl.LINK_STATUS, &status)
	return status == gl.TRUE
}

func (Context) ValidateProgram(p gfx.Program) {
	gl.ValidateProgram(uint32(p))
}

func (Context) ProgramValidated(p gfx.Program) bool {
	var status int32
	gl.GetProgramiv(uint32(p), gl.VALIDATE_STATUS, &status)
	return status == gl.TRUE
}

func (Context) ProgramInfoLog(p gfx.Program) string {
	var n int32
	gl.GetProgramiv(uint32(p), gl.INFO_LOG_LENGTH, &n)
	if n == 0 {
		return ""
	}
	log := make([]byte, n)
	gl.GetProgramInfoLog(uint32(p), n, nil, &log[0])
	return strings.TrimRight(string(log), "\x00")
}

func (Context) UseProgram(p gfx.Program) {
	gl.UseProgram(uint32(p))
}

func (Context) GetAttribLocation(p gfx.Program, name string) gfx.Attrib {
	return gfx.Attrib(gl.GetAttribLocation(uint32(p), gl.Str(name+"\x00")))
}

func (Context) GetUniformLocation(p gfx.Program, name string) gfx.Uniform {
	return gfx.Uniform(gl.GetUniformLocation(uint32(p), gl.Str(name+"\x00")))
}

func (Context) CreateBuffer() gfx.Buffer {
	var b uint32
	gl.GenBuffers(1, &b)
	return gfx.Buffer(b)
}

func (Context) BindBuffer(target gfx.BufferTarget, b gfx.Buffer) {
	gl.BindBuffer(uint32(target), uint32(b))
}

func (Context) BufferData(target gfx.BufferTarget, data []byte, usage gfx.Usage) {
	if len(data) == 0 {
		gl.BufferData(uint32(target), 0, nil, uint32(usage))
		return
	}
	gl.BufferData(uint32(target), len(data), gl.Ptr(data), uint32(usage))
}

func (Context) VertexAttribPointer(a gfx.Attrib, size int, typ gfx.ComponentType, normalized bool, stride, offset int) {
	gl.VertexAttribPointer(uint32(a), int32(size), uint32(typ), normalized, int32(stride), gl.PtrOffset(offset))
}

func (Context) EnableVertexAttribArray(a gfx.Attrib) {
	gl.EnableVertexAttribArray(uint32(a))
}

func (Context) UniformMatrix4fv(u gfx.Uniform, transpose bool, m *[16]float32) {
	gl.UniformMatrix4fv(int32(u), 1, transpose, &m[0])
}

func (Context) Uniform1i(u gfx.Uniform, v int) {
	gl.Uniform1i(int32(u), int32(v))
}

func (Context) CreateTexture() gfx.Texture {
	var t uint32
	gl.GenTextures(1, &t)
	return gfx.Texture(t)
}

func (Context) ActiveTexture(unit int) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
}

func (Context) BindTexture(t gfx.Texture) {
	gl.BindTexture(gl.TEXTURE_2D, uint32(t))
}

func (Context) TexParameteri(pname gfx.TextureParam, value int) {
	gl.TexParameteri(gl.TEXTURE_2D, uint32(pname), int32(value))
}

func (Context) TexImage2D(img *image.NRGBA) {
	size := img.Rect.Size()
	pix := img.Pix
	if img.Stride != 4*size.X {
		// tightly pack sub-images
		pix = make([]byte, 0, 4*size.X*size.Y)
		for y := 0; y < size.Y; y++ {
			row := img.Pix[y*img.Stride:]
			pix = append(pix, row[:4*size.X]...)
		}
	}
	var ptr unsafe.Pointer
	if len(pix) > 0 {
		ptr = gl.Ptr(pix)
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(size.X), int32(size.Y), 0, gl.RGBA, gl.UNSIGNED_BYTE, ptr)
}

func (Context) DrawArrays(mode gfx.DrawMode, first, count int) {
	gl.DrawArrays(uint32(mode), int32(first), int32(count))
}
