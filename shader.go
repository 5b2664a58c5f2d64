package gfx

import (
	"github.com/rs/zerolog"
)

type ShaderSource interface {
	typ() ShaderType
	source() string
}

type VertexShader string
type FragmentShader string

func (v VertexShader) typ() ShaderType {
	return VertexShaderType
}

func (v VertexShader) source() string {
	return string(v)
}

func (f FragmentShader) typ() ShaderType {
	return FragmentShaderType
}

func (f FragmentShader) source() string {
	return string(f)
}

// ShaderProgram is a linked program and the two shader objects it was built
// from. It stays usable for the life of the context that created it.
type ShaderProgram struct {
	ctx      Context
	prog     Program
	vertex   Shader
	fragment Shader

	attribs  map[string]Attrib
	uniforms map[string]Uniform
}

// ProgramBuilder compiles and links shader programs. Validation only runs
// when Debug is set.
type ProgramBuilder struct {
	Debug bool
	Log   zerolog.Logger
}

// BuildProgram builds with a silent, non-debug builder.
func BuildProgram(ctx Context, vs VertexShader, fs FragmentShader) (*ShaderProgram, error) {
	var b ProgramBuilder
	return b.Build(ctx, vs, fs)
}

// Build compiles vs, then fs, links them and optionally validates. It stops
// at the first failing stage and returns a *ShaderError holding that stage's
// info log; no later stage is started.
func (b *ProgramBuilder) Build(ctx Context, vs VertexShader, fs FragmentShader) (*ShaderProgram, error) {
	vert, err := b.compile(ctx, vs, VertexCompile)
	if err != nil {
		return nil, err
	}
	frag, err := b.compile(ctx, fs, FragmentCompile)
	if err != nil {
		return nil, err
	}

	prog := ctx.CreateProgram()
	ctx.AttachShader(prog, vert)
	ctx.AttachShader(prog, frag)
	ctx.LinkProgram(prog)
	if !ctx.ProgramLinked(prog) {
		return nil, b.fail(Link, ctx.ProgramInfoLog(prog))
	}

	if b.Debug {
		ctx.ValidateProgram(prog)
		if !ctx.ProgramValidated(prog) {
			return nil, b.fail(Validate, ctx.ProgramInfoLog(prog))
		}
	}

	b.Log.Debug().Uint32("program", uint32(prog)).Bool("validated", b.Debug).Msg("program built")
	return &ShaderProgram{
		ctx:      ctx,
		prog:     prog,
		vertex:   vert,
		fragment: frag,
		attribs:  map[string]Attrib{},
		uniforms: map[string]Uniform{},
	}, nil
}

func (b *ProgramBuilder) compile(ctx Context, src ShaderSource, stage Stage) (Shader, error) {
	s := ctx.CreateShader(src.typ())
	ctx.ShaderSource(s, src.source())
	ctx.CompileShader(s)
	if !ctx.ShaderCompiled(s) {
		return 0, b.fail(stage, ctx.ShaderInfoLog(s))
	}
	return s, nil
}

func (b *ProgramBuilder) fail(stage Stage, log string) error {
	b.Log.Error().Stringer("stage", stage).Str("log", log).Msg("shader program failed")
	return &ShaderError{Stage: stage, Log: log}
}

// Handle returns the underlying program object.
func (p *ShaderProgram) Handle() Program {
	return p.prog
}

// Shaders returns the vertex and fragment shader objects.
func (p *ShaderProgram) Shaders() (vertex, fragment Shader) {
	return p.vertex, p.fragment
}

func (p *ShaderProgram) Use() {
	p.ctx.UseProgram(p.prog)
}

// Attrib resolves an active vertex attribute by name.
func (p *ShaderProgram) Attrib(name string) (Attrib, error) {
	if a, ok := p.attribs[name]; ok {
		return a, nil
	}
	a := p.ctx.GetAttribLocation(p.prog, name)
	if a < 0 {
		return -1, &AttributeNotFoundError{Name: name}
	}
	p.attribs[name] = a
	return a, nil
}

// Uniform resolves an active uniform by name.
func (p *ShaderProgram) Uniform(name string) (Uniform, error) {
	if u, ok := p.uniforms[name]; ok {
		return u, nil
	}
	u := p.ctx.GetUniformLocation(p.prog, name)
	if u < 0 {
		return -1, &UniformNotFoundError{Name: name}
	}
	p.uniforms[name] = u
	return u, nil
}
