//go:build js && wasm

// Package webgl runs gfx demos in a browser canvas through syscall/js.
package webgl

import (
	"image"
	"syscall/js"

	gfx "github.com/TheCell/webPano"
)

// Context implements gfx.Context on a WebGLRenderingContext. WebGL objects
// are JS values, so handles index into a table; handle 0 is null.
type Context struct {
	gl      js.Value
	objects []js.Value
}

func newContext(gl js.Value) *Context {
	return &Context{
		gl:      gl,
		objects: []js.Value{js.Null()},
	}
}

// JS returns the underlying WebGLRenderingContext.
func (c *Context) JS() js.Value {
	return c.gl
}

func (c *Context) put(v js.Value) uint32 {
	if v.IsNull() || v.IsUndefined() {
		return 0
	}
	c.objects = append(c.objects, v)
	return uint32(len(c.objects) - 1)
}

func (c *Context) get(h uint32) js.Value {
	if int(h) >= len(c.objects) {
		return js.Null()
	}
	return c.objects[h]
}

func (c *Context) ClearColor(r, g, b, a float32) {
	c.gl.Call("clearColor", r, g, b, a)
}

func (c *Context) Clear(mask gfx.ClearMask) {
	c.gl.Call("clear", uint32(mask))
}

func (c *Context) Enable(capability gfx.Capability) {
	c.gl.Call("enable", uint32(capability))
}

func (c *Context) FrontFace(w gfx.Winding) {
	c.gl.Call("frontFace", uint32(w))
}

func (c *Context) CullFace(f gfx.Face) {
	c.gl.Call("cullFace", uint32(f))
}

func (c *Context) Viewport(x, y, width, height int) {
	c.gl.Call("viewport", x, y, width, height)
}

func (c *Context) CreateShader(t gfx.ShaderType) gfx.Shader {
	return gfx.Shader(c.put(c.gl.Call("createShader", uint32(t))))
}

func (c *Context) ShaderSource(s gfx.Shader, src string) {
	c.gl.Call("shaderSource", c.get(uint32(s)), src)
}

func (c *Context) CompileShader(s gfx.Shader) {
	c.gl.Call("compileShader", c.get(uint32(s)))
}

func (c *Context) ShaderCompiled(s gfx.Shader) bool {
	return c.gl.Call("getShaderParameter", c.get(uint32(s)), c.gl.Get("COMPILE_STATUS")).Truthy()
}

func (c *Context) ShaderInfoLog(s gfx.Shader) string {
	return jsString(c.gl.Call("getShaderInfoLog", c.get(uint32(s))))
}

func (c *Context) CreateProgram() gfx.Program {
	return gfx.Program(c.put(c.gl.Call("createProgram")))
}

func (c *Context) AttachShader(p gfx.Program, s gfx.Shader) {
	c.gl.Call("attachShader", c.get(uint32(p)), c.get(uint32(s)))
}

func (c *Context) LinkProgram(p gfx.Program) {
	c.gl.Call("linkProgram", c.get(uint32(p)))
}

func (c *Context) ProgramLinked(p gfx.Program) bool {
	return c.gl.Call("getProgramParameter", c.get(uint32(p)), c.gl.Get("LINK_STATUS")).Truthy()
}

func (c *Context) ValidateProgram(p gfx.Program) {
	c.gl.Call("validateProgram", c.get(uint32(p)))
}

func (c *Context) ProgramValidated(p gfx.Program) bool {
	return c.gl.Call("getProgramParameter", c.get(uint32(p)), c.gl.Get("VALIDATE_STATUS")).Truthy()
}

func (c *Context) ProgramInfoLog(p gfx.Program) string {
	return jsString(c.gl.Call("getProgramInfoLog", c.get(uint32(p))))
}

func (c *Context) UseProgram(p gfx.Program) {
	c.gl.Call("useProgram", c.get(uint32(p)))
}

func (c *Context) GetAttribLocation(p gfx.Program, name string) gfx.Attrib {
	return gfx.Attrib(c.gl.Call("getAttribLocation", c.get(uint32(p)), name).Int())
}

// GetUniformLocation returns -1 for the null location WebGL reports for
// unknown names.
func (c *Context) GetUniformLocation(p gfx.Program, name string) gfx.Uniform {
	loc := c.gl.Call("getUniformLocation", c.get(uint32(p)), name)
	if loc.IsNull() {
		return -1
	}
	return gfx.Uniform(c.put(loc))
}

func (c *Context) CreateBuffer() gfx.Buffer {
	return gfx.Buffer(c.put(c.gl.Call("createBuffer")))
}

func (c *Context) BindBuffer(target gfx.BufferTarget, b gfx.Buffer) {
	c.gl.Call("bindBuffer", uint32(target), c.get(uint32(b)))
}

func (c *Context) BufferData(target gfx.BufferTarget, data []byte, usage gfx.Usage) {
	arr := js.Global().Get("Uint8Array").New(len(data))
	js.CopyBytesToJS(arr, data)
	c.gl.Call("bufferData", uint32(target), arr, uint32(usage))
}

func (c *Context) VertexAttribPointer(a gfx.Attrib, size int, typ gfx.ComponentType, normalized bool, stride, offset int) {
	c.gl.Call("vertexAttribPointer", int(a), size, uint32(typ), normalized, stride, offset)
}

func (c *Context) EnableVertexAttribArray(a gfx.Attrib) {
	c.gl.Call("enableVertexAttribArray", int(a))
}

func (c *Context) UniformMatrix4fv(u gfx.Uniform, transpose bool, m *[16]float32) {
	arr := js.Global().Get("Float32Array").New(16)
	for i, v := range m {
		arr.SetIndex(i, v)
	}
	c.gl.Call("uniformMatrix4fv", c.uniform(u), transpose, arr)
}

func (c *Context) Uniform1i(u gfx.Uniform, v int) {
	c.gl.Call("uniform1i", c.uniform(u), v)
}

func (c *Context) uniform(u gfx.Uniform) js.Value {
	if u < 0 {
		return js.Null()
	}
	return c.get(uint32(u))
}

func (c *Context) CreateTexture() gfx.Texture {
	return gfx.Texture(c.put(c.gl.Call("createTexture")))
}

func (c *Context) ActiveTexture(unit int) {
	c.gl.Call("activeTexture", c.gl.Get("TEXTURE0").Int()+unit)
}

func (c *Context) BindTexture(t gfx.Texture) {
	c.gl.Call("bindTexture", c.gl.Get("TEXTURE_2D"), c.get(uint32(t)))
}

func (c *Context) TexParameteri(pname gfx.TextureParam, value int) {
	c.gl.Call("texParameteri", c.gl.Get("TEXTURE_2D"), uint32(pname), value)
}

func (c *Context) TexImage2D(img *image.NRGBA) {
	size := img.Rect.Size()
	pix := make([]byte, 0, 4*size.X*size.Y)
	for y := 0; y < size.Y; y++ {
		pix = append(pix, img.Pix[y*img.Stride:y*img.Stride+4*size.X]...)
	}
	arr := js.Global().Get("Uint8Array").New(len(pix))
	js.CopyBytesToJS(arr, pix)
	rgba := c.gl.Get("RGBA")
	c.gl.Call("texImage2D", c.gl.Get("TEXTURE_2D"), 0, rgba, size.X, size.Y, 0, rgba, c.gl.Get("UNSIGNED_BYTE"), arr)
}

func (c *Context) DrawArrays(mode gfx.DrawMode, first, count int) {
	c.gl.Call("drawArrays", uint32(mode), first, count)
}

func jsString(v js.Value) string {
	if v.IsNull() || v.IsUndefined() {
		return ""
	}
	return v.String()
}
