package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gfx "github.com/TheCell/webPano"
	"github.com/TheCell/webPano/geometry"
)

var posColor = gfx.NewVertexLayout(
	gfx.Attr("position", gfx.VertexPosition, 3),
	gfx.Attr("color", gfx.VertexColor, 4),
)

func TestBuilderCarriesAttributes(t *testing.T) {
	b := geometry.NewBuilder(posColor)
	b.Position(0, 1, 0).Color(1, 0, 0, 1)
	b.Position(1, 0, 0)
	b.Position(-1, 0, 0).Color(0, 0, 1, 0.5)

	g := b.Geometry(gfx.Triangles)
	assert.Equal(t, 3, b.VertexCount())
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, gfx.Triangles, g.Mode)
	assert.Equal(t, []float32{
		0, 1, 0, 1, 0, 0, 1,
		1, 0, 0, 1, 0, 0, 1,
		-1, 0, 0, 0, 0, 1, 0.5,
	}, g.Data)
}

func TestBuilderLastVertexFilled(t *testing.T) {
	b := geometry.NewBuilder(posColor)
	b.Position(0, 0, 0).Color(0, 1, 0, 1)
	b.Position(1, 1, 1)

	g := b.Geometry(gfx.Points)
	assert.Equal(t, []float32{0, 1, 0, 1}, g.Data[10:14])
}

func TestBuilderDefaults(t *testing.T) {
	layout := gfx.NewVertexLayout(gfx.Attr("position", gfx.VertexPosition, 4))
	b := geometry.NewBuilder(layout)
	b.Position(2, 3)
	assert.Equal(t, []float32{2, 3, 0, 1}, b.Geometry(gfx.Points).Data)
}

func TestBuilderGeometryCopies(t *testing.T) {
	b := geometry.NewBuilder(posColor)
	b.Position(1, 2, 3).Color(1, 1, 1, 1)
	g := b.Geometry(gfx.Triangles)

	b.Clear()
	assert.Zero(t, b.VertexCount())
	b.Position(9, 9, 9).Color(0, 0, 0, 0)
	assert.Equal(t, float32(1), g.Data[0])
	require.Equal(t, posColor.Stride, g.Layout.Stride)
}

func TestBuilderMisuse(t *testing.T) {
	assert.Panics(t, func() {
		geometry.NewBuilder(gfx.VertexLayout{})
	}, "invalid layout")
	assert.Panics(t, func() {
		geometry.NewBuilder(gfx.NewVertexLayout(gfx.VertexAttribute{
			Name: "position", Role: gfx.VertexPosition, Components: 4, Type: gfx.UnsignedByte,
		}))
	}, "non-float layout")
	assert.Panics(t, func() {
		geometry.NewBuilder(posColor).Color(1, 1, 1, 1)
	}, "attribute before Position")
	assert.Panics(t, func() {
		geometry.NewBuilder(posColor).Position(0, 0, 0).Texcoord(0, 0)
	}, "role missing from layout")
}
