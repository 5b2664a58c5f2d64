package testgfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	decls, log := compile(string(ColorVS))
	require.Empty(t, log)
	assert.Equal(t, []decl{
		{"attribute", "vec3", "vertexPosition"},
		{"attribute", "vec4", "vertexColor"},
		{"varying", "vec4", "fragColor"},
		{"uniform", "mat4", "mWorld"},
		{"uniform", "mat4", "mView"},
		{"uniform", "mat4", "mProjection"},
	}, decls)

	_, log = compile(string(BrokenVS))
	assert.Contains(t, log, "0:6")
	assert.Contains(t, log, "missing ';'")

	_, log = compile(string(BrokenFS))
	assert.Contains(t, log, "unbalanced")

	_, log = compile("attribute vec3 p;\n")
	assert.Contains(t, log, "missing main")

	_, log = compile("void main() { }\n}")
	assert.Contains(t, log, "syntax error")
}

func TestLinkVaryings(t *testing.T) {
	c := &Context{}
	vs := c.CreateShader(0x8B31)
	c.ShaderSource(vs, string(ColorVS))
	c.CompileShader(vs)
	fs := c.CreateShader(0x8B30)
	c.ShaderSource(fs, string(MismatchFS))
	c.CompileShader(fs)
	require.True(t, c.ShaderCompiled(vs))
	require.True(t, c.ShaderCompiled(fs))

	p := c.CreateProgram()
	c.AttachShader(p, vs)
	c.AttachShader(p, fs)
	c.LinkProgram(p)
	assert.False(t, c.ProgramLinked(p))
	assert.Contains(t, c.ProgramInfoLog(p), "Varying fragTexCoord not written")
	assert.Equal(t, -1, int(c.GetAttribLocation(p, "vertexPosition")))
}

func TestHost(t *testing.T) {
	var h Host
	n := 0
	var again func()
	again = func() {
		n++
		h.RequestFrame(again)
	}
	h.RequestFrame(again)
	assert.Equal(t, 1, h.Pending())
	h.Step()
	h.Step()
	assert.Equal(t, 2, n)
	assert.Equal(t, 1, h.Pending())
}
