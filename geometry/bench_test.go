package geometry_test

import (
	"testing"

	gfx "github.com/TheCell/webPano"
	"github.com/TheCell/webPano/geometry"
)

const builderQuads = 40 * 40

func BenchmarkBuilderTinyVerts(b *testing.B) {
	bdr := geometry.NewBuilder(gfx.NewVertexLayout(
		gfx.Attr("position", gfx.VertexPosition, 3),
	))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bdr.Clear()
		for q := 0; q < builderQuads; q++ {
			bdr.Position(0, 0, 0)
			bdr.Position(1, 0, 0)
			bdr.Position(1, 1, 0)
			bdr.Position(0, 0, 0)
			bdr.Position(1, 1, 0)
			bdr.Position(0, 1, 0)
		}
	}
}

func BenchmarkBuilderFatVerts(b *testing.B) {
	bdr := geometry.NewBuilder(gfx.NewVertexLayout(
		gfx.Attr("position", gfx.VertexPosition, 3),
		gfx.Attr("color", gfx.VertexColor, 4),
		gfx.Attr("uv", gfx.VertexTexcoord, 2),
	))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bdr.Clear()
		for q := 0; q < builderQuads; q++ {
			bdr.Position(0, 0, 0).Color(0.5, 0, 1, 1).Texcoord(0, 0)
			bdr.Position(1, 0, 0)
			bdr.Position(1, 1, 0)
			bdr.Position(0, 0, 0)
			bdr.Position(1, 1, 0)
			bdr.Position(0, 1, 0)
		}
	}
}
