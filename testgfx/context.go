// Package testgfx provides an in-memory gfx.Context that records every call
// and understands just enough GLSL to fail the way a driver would.
package testgfx

import (
	"fmt"
	"image"
	"regexp"
	"sort"
	"strings"
	"time"

	gfx "github.com/TheCell/webPano"
)

// AttribPointer is one recorded VertexAttribPointer call.
type AttribPointer struct {
	Name       string
	Location   gfx.Attrib
	Size       int
	Type       gfx.ComponentType
	Normalized bool
	Stride     int
	Offset     int
}

// Draw is one recorded DrawArrays call.
type Draw struct {
	Mode    gfx.DrawMode
	First   int
	Count   int
	Program gfx.Program
	Texture gfx.Texture
}

type decl struct {
	qualifier string
	typ       string
	name      string
}

type shader struct {
	typ      gfx.ShaderType
	src      string
	compiled bool
	log      string
	decls    []decl
}

type program struct {
	shaders   []gfx.Shader
	linked    bool
	validated bool
	log       string
	attribs   map[string]gfx.Attrib
	uniforms  map[string]gfx.Uniform
}

// Context is a recording gfx.Context. The zero value is ready to use.
type Context struct {
	// Calls lists every call in order, e.g. "compileShader 1".
	Calls []string

	// ValidateLog makes ValidateProgram fail with this log when set.
	ValidateLog string

	ClearColors [][4]float32
	Clears      []gfx.ClearMask
	Enabled     []gfx.Capability
	Winding     gfx.Winding
	Culled      gfx.Face
	View        [4]int

	Pointers []AttribPointer
	Arrays   map[gfx.Attrib]bool
	Buffers  map[gfx.Buffer][]byte
	Usages   map[gfx.Buffer]gfx.Usage

	// Matrices holds the last value uploaded per uniform name; MatrixUploads
	// counts uploads.
	Matrices      map[string][16]float32
	MatrixUploads map[string]int
	Ints          map[string]int

	TexParams map[gfx.TextureParam]int
	Images    map[gfx.Texture]*image.NRGBA
	Draws     []Draw

	next       uint32
	shaders    map[gfx.Shader]*shader
	programs   map[gfx.Program]*program
	current    gfx.Program
	array      gfx.Buffer
	texture    gfx.Texture
	activeUnit int
}

func (c *Context) record(format string, args ...interface{}) {
	c.Calls = append(c.Calls, fmt.Sprintf(format, args...))
}

func (c *Context) handle() uint32 {
	c.next++
	return c.next
}

// Called reports whether any recorded call starts with prefix.
func (c *Context) Called(prefix string) bool {
	for _, call := range c.Calls {
		if strings.HasPrefix(call, prefix) {
			return true
		}
	}
	return false
}

func (c *Context) ClearColor(r, g, b, a float32) {
	c.record("clearColor %g %g %g %g", r, g, b, a)
	c.ClearColors = append(c.ClearColors, [4]float32{r, g, b, a})
}

func (c *Context) Clear(mask gfx.ClearMask) {
	c.record("clear %#x", uint32(mask))
	c.Clears = append(c.Clears, mask)
}

func (c *Context) Enable(capability gfx.Capability) {
	c.record("enable %#x", uint32(capability))
	c.Enabled = append(c.Enabled, capability)
}

func (c *Context) FrontFace(w gfx.Winding) {
	c.record("frontFace %#x", uint32(w))
	c.Winding = w
}

func (c *Context) CullFace(f gfx.Face) {
	c.record("cullFace %#x", uint32(f))
	c.Culled = f
}

func (c *Context) Viewport(x, y, width, height int) {
	c.record("viewport %d %d %d %d", x, y, width, height)
	c.View = [4]int{x, y, width, height}
}

func (c *Context) CreateShader(t gfx.ShaderType) gfx.Shader {
	if c.shaders == nil {
		c.shaders = map[gfx.Shader]*shader{}
	}
	s := gfx.Shader(c.handle())
	c.shaders[s] = &shader{typ: t}
	c.record("createShader %s", t)
	return s
}

func (c *Context) ShaderSource(s gfx.Shader, src string) {
	c.record("shaderSource %d", s)
	if sh := c.shaders[s]; sh != nil {
		sh.src = src
	}
}

func (c *Context) CompileShader(s gfx.Shader) {
	c.record("compileShader %d", s)
	sh := c.shaders[s]
	if sh == nil {
		return
	}
	sh.decls, sh.log = compile(sh.src)
	sh.compiled = sh.log == ""
}

func (c *Context) ShaderCompiled(s gfx.Shader) bool {
	sh := c.shaders[s]
	return sh != nil && sh.compiled
}

func (c *Context) ShaderInfoLog(s gfx.Shader) string {
	if sh := c.shaders[s]; sh != nil {
		return sh.log
	}
	return ""
}

func (c *Context) CreateProgram() gfx.Program {
	if c.programs == nil {
		c.programs = map[gfx.Program]*program{}
	}
	p := gfx.Program(c.handle())
	c.programs[p] = &program{}
	c.record("createProgram")
	return p
}

func (c *Context) AttachShader(p gfx.Program, s gfx.Shader) {
	c.record("attachShader %d %d", p, s)
	if pr := c.programs[p]; pr != nil {
		pr.shaders = append(pr.shaders, s)
	}
}

func (c *Context) LinkProgram(p gfx.Program) {
	c.record("linkProgram %d", p)
	pr := c.programs[p]
	if pr == nil {
		return
	}
	pr.log = c.link(pr)
	pr.linked = pr.log == ""
}

// link checks that there is one compiled shader per stage and that every
// varying the fragment stage reads is written by the vertex stage.
func (c *Context) link(pr *program) string {
	var vert, frag *shader
	for _, s := range pr.shaders {
		sh := c.shaders[s]
		if sh == nil || !sh.compiled {
			return "ERROR: attached shader is not compiled"
		}
		if sh.typ == gfx.VertexShaderType {
			vert = sh
		} else {
			frag = sh
		}
	}
	if vert == nil || frag == nil {
		return "ERROR: program needs a vertex and a fragment shader"
	}

	outs := map[string]string{}
	for _, d := range vert.decls {
		if d.qualifier == "varying" {
			outs[d.name] = d.typ
		}
	}
	for _, d := range frag.decls {
		if d.qualifier != "varying" {
			continue
		}
		typ, ok := outs[d.name]
		if !ok {
			return fmt.Sprintf("ERROR: Varying %s not written by vertex shader", d.name)
		}
		if typ != d.typ {
			return fmt.Sprintf("ERROR: Varying %s has type %s in vertex shader, %s in fragment shader", d.name, typ, d.typ)
		}
	}

	pr.attribs = map[string]gfx.Attrib{}
	pr.uniforms = map[string]gfx.Uniform{}
	for _, sh := range []*shader{vert, frag} {
		for _, d := range sh.decls {
			switch d.qualifier {
			case "attribute":
				if _, ok := pr.attribs[d.name]; !ok {
					pr.attribs[d.name] = gfx.Attrib(len(pr.attribs))
				}
			case "uniform":
				if _, ok := pr.uniforms[d.name]; !ok {
					pr.uniforms[d.name] = gfx.Uniform(len(pr.uniforms))
				}
			}
		}
	}
	return ""
}

func (c *Context) ProgramLinked(p gfx.Program) bool {
	pr := c.programs[p]
	return pr != nil && pr.linked
}

func (c *Context) ValidateProgram(p gfx.Program) {
	c.record("validateProgram %d", p)
	pr := c.programs[p]
	if pr == nil {
		return
	}
	if c.ValidateLog != "" {
		pr.log = c.ValidateLog
		pr.validated = false
		return
	}
	pr.validated = pr.linked
}

func (c *Context) ProgramValidated(p gfx.Program) bool {
	pr := c.programs[p]
	return pr != nil && pr.validated
}

func (c *Context) ProgramInfoLog(p gfx.Program) string {
	if pr := c.programs[p]; pr != nil {
		return pr.log
	}
	return ""
}

func (c *Context) UseProgram(p gfx.Program) {
	c.record("useProgram %d", p)
	c.current = p
}

func (c *Context) GetAttribLocation(p gfx.Program, name string) gfx.Attrib {
	c.record("getAttribLocation %d %s", p, name)
	pr := c.programs[p]
	if pr == nil || !pr.linked {
		return -1
	}
	if a, ok := pr.attribs[name]; ok {
		return a
	}
	return -1
}

func (c *Context) GetUniformLocation(p gfx.Program, name string) gfx.Uniform {
	c.record("getUniformLocation %d %s", p, name)
	pr := c.programs[p]
	if pr == nil || !pr.linked {
		return -1
	}
	if u, ok := pr.uniforms[name]; ok {
		return u
	}
	return -1
}

func (c *Context) CreateBuffer() gfx.Buffer {
	b := gfx.Buffer(c.handle())
	c.record("createBuffer")
	return b
}

func (c *Context) BindBuffer(target gfx.BufferTarget, b gfx.Buffer) {
	c.record("bindBuffer %#x %d", uint32(target), b)
	c.array = b
}

func (c *Context) BufferData(target gfx.BufferTarget, data []byte, usage gfx.Usage) {
	c.record("bufferData %#x %d %#x", uint32(target), len(data), uint32(usage))
	if c.Buffers == nil {
		c.Buffers = map[gfx.Buffer][]byte{}
		c.Usages = map[gfx.Buffer]gfx.Usage{}
	}
	c.Buffers[c.array] = append([]byte(nil), data...)
	c.Usages[c.array] = usage
}

func (c *Context) VertexAttribPointer(a gfx.Attrib, size int, typ gfx.ComponentType, normalized bool, stride, offset int) {
	c.record("vertexAttribPointer %d %d %#x %t %d %d", a, size, uint32(typ), normalized, stride, offset)
	c.Pointers = append(c.Pointers, AttribPointer{
		Name:       c.attribName(a),
		Location:   a,
		Size:       size,
		Type:       typ,
		Normalized: normalized,
		Stride:     stride,
		Offset:     offset,
	})
}

func (c *Context) EnableVertexAttribArray(a gfx.Attrib) {
	c.record("enableVertexAttribArray %d", a)
	if c.Arrays == nil {
		c.Arrays = map[gfx.Attrib]bool{}
	}
	c.Arrays[a] = true
}

func (c *Context) UniformMatrix4fv(u gfx.Uniform, transpose bool, m *[16]float32) {
	name := c.uniformName(u)
	c.record("uniformMatrix4fv %s %t", name, transpose)
	if c.Matrices == nil {
		c.Matrices = map[string][16]float32{}
		c.MatrixUploads = map[string]int{}
	}
	c.Matrices[name] = *m
	c.MatrixUploads[name]++
}

func (c *Context) Uniform1i(u gfx.Uniform, v int) {
	name := c.uniformName(u)
	c.record("uniform1i %s %d", name, v)
	if c.Ints == nil {
		c.Ints = map[string]int{}
	}
	c.Ints[name] = v
}

func (c *Context) CreateTexture() gfx.Texture {
	t := gfx.Texture(c.handle())
	c.record("createTexture")
	return t
}

func (c *Context) ActiveTexture(unit int) {
	c.record("activeTexture %d", unit)
	c.activeUnit = unit
}

func (c *Context) BindTexture(t gfx.Texture) {
	c.record("bindTexture %d", t)
	c.texture = t
}

func (c *Context) TexParameteri(pname gfx.TextureParam, value int) {
	c.record("texParameteri %#x %#x", uint32(pname), value)
	if c.TexParams == nil {
		c.TexParams = map[gfx.TextureParam]int{}
	}
	c.TexParams[pname] = value
}

func (c *Context) TexImage2D(img *image.NRGBA) {
	c.record("texImage2D %dx%d", img.Rect.Dx(), img.Rect.Dy())
	if c.Images == nil {
		c.Images = map[gfx.Texture]*image.NRGBA{}
	}
	c.Images[c.texture] = img
}

func (c *Context) DrawArrays(mode gfx.DrawMode, first, count int) {
	c.record("drawArrays %#x %d %d", uint32(mode), first, count)
	c.Draws = append(c.Draws, Draw{
		Mode:    mode,
		First:   first,
		Count:   count,
		Program: c.current,
		Texture: c.texture,
	})
}

func (c *Context) attribName(a gfx.Attrib) string {
	if pr := c.programs[c.current]; pr != nil {
		if name := reverse(pr.attribs, a); name != "" {
			return name
		}
	}
	// attribute pointers may be set before the program is in use
	var names []string
	for _, pr := range c.programs {
		if name := reverse(pr.attribs, a); name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	if len(names) > 0 {
		return names[0]
	}
	return ""
}

func (c *Context) uniformName(u gfx.Uniform) string {
	if pr := c.programs[c.current]; pr != nil {
		if name := reverse(pr.uniforms, u); name != "" {
			return name
		}
	}
	return fmt.Sprintf("#%d", u)
}

func reverse[K comparable](m map[string]K, v K) string {
	for name, x := range m {
		if x == v {
			return name
		}
	}
	return ""
}

var declRE = regexp.MustCompile(`^\s*(attribute|uniform|varying)\s+(?:(?:lowp|mediump|highp)\s+)?(\w+)\s+(\w+)\s*;`)

// compile scans declarations and reports the first syntax problem it can
// see: unbalanced brackets, a statement missing its semicolon, or no main.
func compile(src string) ([]decl, string) {
	var decls []decl
	depth := map[rune]int{}
	pairs := map[rune]rune{')': '(', '}': '{', ']': '['}
	for i, line := range strings.Split(src, "\n") {
		n := i + 1
		code := line
		if j := strings.Index(code, "//"); j >= 0 {
			code = code[:j]
		}
		for _, r := range code {
			switch r {
			case '(', '{', '[':
				depth[r]++
			case ')', '}', ']':
				depth[pairs[r]]--
				if depth[pairs[r]] < 0 {
					return nil, fmt.Sprintf("ERROR: 0:%d: '%c' : syntax error", n, r)
				}
			}
		}
		if m := declRE.FindStringSubmatch(code); m != nil {
			decls = append(decls, decl{qualifier: m[1], typ: m[2], name: m[3]})
			continue
		}
		trimmed := strings.TrimSpace(code)
		if depth['{'] > 0 && trimmed != "" && depth['('] == 0 && !strings.HasPrefix(trimmed, "#") &&
			!strings.HasSuffix(trimmed, ";") && !strings.HasSuffix(trimmed, "{") && !strings.HasSuffix(trimmed, "}") {
			return nil, fmt.Sprintf("ERROR: 0:%d: '' : syntax error, missing ';'", n)
		}
	}
	for _, open := range []rune{'(', '{', '['} {
		if depth[open] != 0 {
			return nil, fmt.Sprintf("ERROR: 0:%d: '%c' : unbalanced", strings.Count(src, "\n")+1, open)
		}
	}
	if !strings.Contains(src, "void main") {
		return nil, "ERROR: 0:0: missing main()"
	}
	return decls, ""
}

// Surface hands out Contexts by identifier.
type Surface struct {
	Contexts      map[string]*Context
	Width, Height int
	Requested     []string
}

func (s *Surface) GetContext(id string) gfx.Context {
	s.Requested = append(s.Requested, id)
	if ctx, ok := s.Contexts[id]; ok && ctx != nil {
		return ctx
	}
	return nil
}

func (s *Surface) Size() (int, int) {
	return s.Width, s.Height
}

// Host queues frame callbacks until Step runs them.
type Host struct {
	pending []func()
}

func (h *Host) RequestFrame(f func()) {
	h.pending = append(h.pending, f)
}

// Pending is the number of queued callbacks.
func (h *Host) Pending() int {
	return len(h.pending)
}

// Step runs the callbacks queued before the call, as one refresh would.
func (h *Host) Step() {
	fs := h.pending
	h.pending = nil
	for _, f := range fs {
		f()
	}
}

// Clock returns whatever T is set to.
type Clock struct {
	T time.Duration
}

func (c *Clock) Elapsed() time.Duration {
	return c.T
}

// Alerter records alerts.
type Alerter struct {
	Messages []string
}

func (a *Alerter) Alert(msg string) {
	a.Messages = append(a.Messages, msg)
}
