package gfx_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gfx "github.com/TheCell/webPano"
	"github.com/TheCell/webPano/testgfx"
)

func TestBuildProgram(t *testing.T) {
	ctx := &testgfx.Context{}
	prog, err := gfx.BuildProgram(ctx, testgfx.ColorVS, testgfx.ColorFS)
	require.NoError(t, err)
	require.NotNil(t, prog)

	vs, fs := prog.Shaders()
	assert.NotZero(t, vs)
	assert.NotZero(t, fs)
	assert.NotEqual(t, vs, fs)
	assert.True(t, ctx.ProgramLinked(prog.Handle()))
	assert.False(t, ctx.Called("validateProgram"), "validation is debug only")
}

func TestBuildProgramOrder(t *testing.T) {
	ctx := &testgfx.Context{}
	_, err := gfx.BuildProgram(ctx, testgfx.ColorVS, testgfx.ColorFS)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"createShader vertex",
		"shaderSource 1",
		"compileShader 1",
		"createShader fragment",
		"shaderSource 2",
		"compileShader 2",
		"createProgram",
		"attachShader 3 1",
		"attachShader 3 2",
		"linkProgram 3",
	}, ctx.Calls)
}

func TestBuildProgramVertexError(t *testing.T) {
	ctx := &testgfx.Context{}
	prog, err := gfx.BuildProgram(ctx, testgfx.BrokenVS, testgfx.ColorFS)
	require.Error(t, err)
	assert.Nil(t, prog)

	var serr *gfx.ShaderError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, gfx.VertexCompile, serr.Stage)
	assert.Contains(t, serr.Log, "missing ';'")
	assert.True(t, gfx.IsStage(err, gfx.VertexCompile))

	assert.False(t, ctx.Called("createShader fragment"))
	assert.False(t, ctx.Called("createProgram"))
	assert.False(t, ctx.Called("linkProgram"))
}

func TestBuildProgramFragmentError(t *testing.T) {
	ctx := &testgfx.Context{}
	_, err := gfx.BuildProgram(ctx, testgfx.ColorVS, testgfx.BrokenFS)
	require.Error(t, err)
	assert.True(t, gfx.IsStage(err, gfx.FragmentCompile))
	assert.False(t, gfx.IsStage(err, gfx.VertexCompile))
	assert.True(t, ctx.Called("compileShader 1"))
	assert.False(t, ctx.Called("createProgram"))
	assert.False(t, ctx.Called("linkProgram"))
}

func TestBuildProgramLinkError(t *testing.T) {
	ctx := &testgfx.Context{}
	b := gfx.ProgramBuilder{Debug: true}
	_, err := b.Build(ctx, testgfx.ColorVS, testgfx.MismatchFS)
	require.Error(t, err)
	assert.True(t, gfx.IsStage(err, gfx.Link))
	assert.Contains(t, err.Error(), "fragTexCoord")
	assert.False(t, ctx.Called("validateProgram"), "link failure stops before validation")
}

func TestBuildProgramValidate(t *testing.T) {
	t.Run("debug", func(t *testing.T) {
		ctx := &testgfx.Context{}
		b := gfx.ProgramBuilder{Debug: true}
		_, err := b.Build(ctx, testgfx.ColorVS, testgfx.ColorFS)
		require.NoError(t, err)
		assert.True(t, ctx.Called("validateProgram 3"))
	})
	t.Run("debug invalid", func(t *testing.T) {
		ctx := &testgfx.Context{ValidateLog: "sampler units conflict"}
		b := gfx.ProgramBuilder{Debug: true}
		_, err := b.Build(ctx, testgfx.ColorVS, testgfx.ColorFS)
		require.Error(t, err)
		assert.True(t, gfx.IsStage(err, gfx.Validate))
		assert.EqualError(t, err, "gfx: validate failed: sampler units conflict")
	})
	t.Run("release ignores validation", func(t *testing.T) {
		ctx := &testgfx.Context{ValidateLog: "sampler units conflict"}
		var b gfx.ProgramBuilder
		prog, err := b.Build(ctx, testgfx.ColorVS, testgfx.ColorFS)
		require.NoError(t, err)
		assert.NotNil(t, prog)
		assert.False(t, ctx.Called("validateProgram"))
	})
}

func TestProgramLookups(t *testing.T) {
	ctx := &testgfx.Context{}
	prog, err := gfx.BuildProgram(ctx, testgfx.ColorVS, testgfx.ColorFS)
	require.NoError(t, err)

	pos, err := prog.Attrib("vertexPosition")
	require.NoError(t, err)
	assert.Equal(t, gfx.Attrib(0), pos)
	col, err := prog.Attrib("vertexColor")
	require.NoError(t, err)
	assert.Equal(t, gfx.Attrib(1), col)

	_, err = prog.Attrib("vertexNormal")
	var anf *gfx.AttributeNotFoundError
	require.True(t, errors.As(err, &anf))
	assert.Equal(t, "vertexNormal", anf.Name)

	u, err := prog.Uniform("mView")
	require.NoError(t, err)
	assert.Equal(t, gfx.Uniform(1), u)

	_, err = prog.Uniform("mModel")
	var unf *gfx.UniformNotFoundError
	require.True(t, errors.As(err, &unf))
	assert.Equal(t, "mModel", unf.Name)

	// resolved names are cached
	n := len(ctx.Calls)
	_, err = prog.Attrib("vertexPosition")
	require.NoError(t, err)
	assert.Len(t, ctx.Calls, n)
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "vertex compile", gfx.VertexCompile.String())
	assert.Equal(t, "fragment compile", gfx.FragmentCompile.String())
	assert.Equal(t, "link", gfx.Link.String())
	assert.Equal(t, "validate", gfx.Validate.String())
	assert.Equal(t, "Stage(9)", gfx.Stage(9).String())
}
