package gfx_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gfx "github.com/TheCell/webPano"
	"github.com/TheCell/webPano/testgfx"
)

func TestSetCamera(t *testing.T) {
	ctx := &testgfx.Context{}
	prog, err := gfx.BuildProgram(ctx, testgfx.ColorVS, testgfx.ColorFS)
	require.NoError(t, err)

	cam := gfx.DefaultCamera(800.0 / 600.0)
	tr, err := gfx.SetCamera(ctx, prog, cam, gfx.DefaultUniformNames)
	require.NoError(t, err)

	assert.Equal(t, [16]float32(mgl32.Ident4()), ctx.Matrices["mWorld"])
	assert.Equal(t, [16]float32(cam.View()), ctx.Matrices["mView"])
	assert.Equal(t, [16]float32(cam.Projection()), ctx.Matrices["mProjection"])
	assert.True(t, ctx.Called("uniformMatrix4fv mWorld false"))
	assert.False(t, ctx.Called("uniformMatrix4fv mView true"), "matrices are never transposed")
	assert.True(t, ctx.Called("useProgram 3"))

	assert.Equal(t, mgl32.Ident4(), tr.World)
	assert.Equal(t, cam.View(), tr.View)
}

func TestSetCameraIdempotent(t *testing.T) {
	ctx := &testgfx.Context{}
	prog, err := gfx.BuildProgram(ctx, testgfx.ColorVS, testgfx.ColorFS)
	require.NoError(t, err)

	cam := gfx.DefaultCamera(1)
	_, err = gfx.SetCamera(ctx, prog, cam, gfx.DefaultUniformNames)
	require.NoError(t, err)
	first := map[string][16]float32{}
	for k, v := range ctx.Matrices {
		first[k] = v
	}

	_, err = gfx.SetCamera(ctx, prog, cam, gfx.DefaultUniformNames)
	require.NoError(t, err)
	assert.Equal(t, first, ctx.Matrices)
	assert.Equal(t, 2, ctx.MatrixUploads["mProjection"])
}

func TestSetCameraMissingUniform(t *testing.T) {
	ctx := &testgfx.Context{}
	prog, err := gfx.BuildProgram(ctx, testgfx.FlatVS, testgfx.ColorFS)
	require.NoError(t, err)

	_, err = gfx.SetCamera(ctx, prog, gfx.DefaultCamera(1), gfx.DefaultUniformNames)
	require.Error(t, err)
	var unf *gfx.UniformNotFoundError
	require.True(t, errors.As(err, &unf))
	assert.Equal(t, "mWorld", unf.Name)
	assert.Empty(t, ctx.Matrices)
}

func TestDefaultCamera(t *testing.T) {
	cam := gfx.DefaultCamera(2)
	assert.Equal(t, mgl32.Vec3{0, 2, 5}, cam.Eye)
	assert.InDelta(t, 0.785398, cam.FovY, 1e-5)

	// the origin lies straight ahead of the eye
	p := cam.View().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, 0, p.X(), 1e-5)
	assert.InDelta(t, 0, p.Y(), 1e-5)
	assert.Less(t, p.Z(), float32(0))
}

func TestSetWorld(t *testing.T) {
	ctx := &testgfx.Context{}
	prog, err := gfx.BuildProgram(ctx, testgfx.ColorVS, testgfx.ColorFS)
	require.NoError(t, err)
	tr, err := gfx.SetCamera(ctx, prog, gfx.DefaultCamera(1), gfx.DefaultUniformNames)
	require.NoError(t, err)

	m := mgl32.HomogRotate3DY(1)
	tr.SetWorld(m)
	assert.Equal(t, [16]float32(m), ctx.Matrices["mWorld"])
	assert.Equal(t, 2, ctx.MatrixUploads["mWorld"])
	assert.Equal(t, 1, ctx.MatrixUploads["mView"])
}
