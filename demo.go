package gfx

import (
	"image"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Demo is one self-contained scene: a program, one static vertex buffer and
// how to present it. The 2D, textured and animated variants differ only in
// which of these fields are set.
type Demo struct {
	Name     string
	Vertex   VertexShader
	Fragment FragmentShader
	Geometry *GeometryBuffer

	State RenderState

	// Camera is nil for 2D demos, which have no transform uniforms.
	Camera   *Camera
	Uniforms UniformNames

	// Texture must be set, already decoded, when the layout has a texcoord
	// attribute. SamplerUniform is optional.
	Texture        image.Image
	TextureOptions TextureOptions
	SamplerUniform string

	// Spin is nil for demos drawn once.
	Spin       *Spin
	FrameClear [4]float32
}

// Is3D reports whether the demo sets up camera transforms.
func (d *Demo) Is3D() bool {
	return d.Camera != nil
}

// Textured reports whether the demo's layout samples a texture.
func (d *Demo) Textured() bool {
	return d.Geometry.Layout.Format()&VertexTexcoord != 0
}

// Instance is a demo that has been set up on a context.
type Instance struct {
	Context    Context
	Program    *ShaderProgram
	Vertices   *VertexBuffer
	Texture    *Sampler2D
	Transforms *Transforms
	Animator   *Animator
}

// Runner sets demos up on a surface and drives their animation.
type Runner struct {
	Surface    Surface
	Host       Host
	Clock      Clock
	Alerter    Alerter
	ContextIDs []string
	Debug      bool
	Log        zerolog.Logger
}

// Run initializes a context, builds the program, uploads geometry and
// texture, sets the camera and then either draws once or starts the
// animation. Any failure aborts the remaining setup and is logged once at
// error level, so callers need not log it again. A missing context is also
// reported through the Alerter.
func (r *Runner) Run(d *Demo) (*Instance, error) {
	log := r.Log.With().Str("demo", d.Name).Logger()

	if err := r.check(d); err != nil {
		log.Error().Err(err).Msg("demo rejected")
		return nil, err
	}

	ctx, err := Initialize(log, r.Surface, d.State, r.ContextIDs...)
	if err != nil {
		if r.Alerter != nil {
			r.Alerter.Alert("Your browser does not support WebGL :(")
		}
		return nil, err
	}
	inst := &Instance{Context: ctx}

	w, h := r.Surface.Size()
	if w > 0 && h > 0 {
		ctx.Viewport(0, 0, w, h)
	}

	b := ProgramBuilder{Debug: r.Debug, Log: log}
	inst.Program, err = b.Build(ctx, d.Vertex, d.Fragment)
	if err != nil {
		return nil, errors.Wrap(err, "build program")
	}

	inst.Vertices, err = Upload(ctx, inst.Program, d.Geometry, StaticDraw)
	if err != nil {
		log.Error().Err(err).Msg("vertex setup failed")
		return nil, errors.Wrap(err, "upload geometry")
	}

	if d.Texture != nil {
		opts := d.TextureOptions
		if opts == (TextureOptions{}) {
			opts = DefaultTextureOptions
		}
		inst.Texture = NewTexture(ctx, d.Texture, opts)
	}

	inst.Program.Use()
	if d.SamplerUniform != "" {
		u, err := inst.Program.Uniform(d.SamplerUniform)
		if err != nil {
			log.Error().Err(err).Msg("sampler setup failed")
			return nil, errors.Wrap(err, "sampler")
		}
		ctx.Uniform1i(u, 0)
	}

	if d.Camera != nil {
		names := d.Uniforms
		if names == (UniformNames{}) {
			names = DefaultUniformNames
		}
		cam := *d.Camera
		if cam.Aspect == 0 && w > 0 && h > 0 {
			cam.Aspect = float32(w) / float32(h)
		}
		inst.Transforms, err = SetCamera(ctx, inst.Program, cam, names)
		if err != nil {
			log.Error().Err(err).Msg("camera setup failed")
			return nil, errors.Wrap(err, "camera")
		}
	}

	frame := Frame{
		Transforms: inst.Transforms,
		Vertices:   inst.Vertices,
		Texture:    inst.Texture,
		ClearColor: d.FrameClear,
	}
	if frame.ClearColor == ([4]float32{}) {
		frame.ClearColor = DefaultFrameClear
	}
	if d.Spin == nil || inst.Transforms == nil {
		frame.ClearColor = d.State.ClearColor
		DrawFrame(ctx, &frame)
		log.Info().Int("vertices", inst.Vertices.Count()).Msg("drawn")
		return inst, nil
	}

	clock := r.Clock
	if clock == nil {
		clock = NewClock()
	}
	inst.Animator = NewAnimator(ctx, r.Host, clock, *d.Spin, frame, log)
	inst.Animator.Start()
	log.Info().Int("vertices", inst.Vertices.Count()).Msg("animating")
	return inst, nil
}

// check rejects demos that cannot be set up before any context work.
func (r *Runner) check(d *Demo) error {
	if d.Textured() && d.Texture == nil {
		return errors.Wrap(ErrTextureMissing, d.Name)
	}
	if d.Spin != nil {
		if !d.Spin.Valid() {
			return errors.Wrap(ErrBadSpin, d.Name)
		}
		if r.Host == nil {
			return errors.Wrap(ErrNoHost, d.Name)
		}
	}
	return nil
}
