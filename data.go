package gfx

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// Camera is a look-at view plus a perspective projection. FovY is in
// radians.
type Camera struct {
	Eye, Center, Up mgl32.Vec3

	FovY      float32
	Aspect    float32
	Near, Far float32
}

// DefaultCamera looks at the origin from slightly above and in front.
func DefaultCamera(aspect float32) Camera {
	return Camera{
		Eye:    mgl32.Vec3{0, 2, 5},
		Center: mgl32.Vec3{0, 0, 0},
		Up:     mgl32.Vec3{0, 1, 0},
		FovY:   mgl32.DegToRad(45),
		Aspect: aspect,
		Near:   0.1,
		Far:    1000,
	}
}

func (c Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.Center, c.Up)
}

func (c Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(c.FovY, c.Aspect, c.Near, c.Far)
}

// UniformNames are the shader names of the three transform matrices.
type UniformNames struct {
	World, View, Projection string
}

var DefaultUniformNames = UniformNames{
	World:      "mWorld",
	View:       "mView",
	Projection: "mProjection",
}

// Transforms holds the world, view and projection matrices of one program
// and their uniform locations. Only the world matrix changes after setup.
type Transforms struct {
	ctx Context

	worldLoc, viewLoc, projLoc Uniform
	World, View, Projection    mgl32.Mat4
}

// SetCamera makes prog current and uploads world = identity and the view
// and projection of cam. Matrices are column-major and never transposed.
// Calling it again with the same camera uploads the same values.
func SetCamera(ctx Context, prog *ShaderProgram, cam Camera, names UniformNames) (*Transforms, error) {
	t := &Transforms{ctx: ctx}
	var err error
	if t.worldLoc, err = prog.Uniform(names.World); err != nil {
		return nil, errors.Wrap(err, "world matrix")
	}
	if t.viewLoc, err = prog.Uniform(names.View); err != nil {
		return nil, errors.Wrap(err, "view matrix")
	}
	if t.projLoc, err = prog.Uniform(names.Projection); err != nil {
		return nil, errors.Wrap(err, "projection matrix")
	}

	t.World = mgl32.Ident4()
	t.View = cam.View()
	t.Projection = cam.Projection()

	prog.Use()
	uploadMat4(ctx, t.worldLoc, t.World)
	uploadMat4(ctx, t.viewLoc, t.View)
	uploadMat4(ctx, t.projLoc, t.Projection)
	return t, nil
}

// SetWorld replaces and uploads the world matrix.
func (t *Transforms) SetWorld(m mgl32.Mat4) {
	t.World = m
	uploadMat4(t.ctx, t.worldLoc, m)
}

func uploadMat4(ctx Context, u Uniform, m mgl32.Mat4) {
	v := [16]float32(m)
	ctx.UniformMatrix4fv(u, false, &v)
}
