// Package demos holds the three demo scenes: a flat colored triangle, a
// spinning colored cube and a spinning textured crate.
package demos

import (
	"image"
	"sort"

	gfx "github.com/TheCell/webPano"
	"github.com/TheCell/webPano/geometry"
)

// ColorLayout is position xyz followed by color rgba.
var ColorLayout = gfx.NewVertexLayout(
	gfx.Attr("vertexPosition", gfx.VertexPosition, 3),
	gfx.Attr("vertexColor", gfx.VertexColor, 4),
)

// TextureLayout is position xyz followed by texture uv.
var TextureLayout = gfx.NewVertexLayout(
	gfx.Attr("vertexPosition", gfx.VertexPosition, 3),
	gfx.Attr("vertTexCoord", gfx.VertexTexcoord, 2),
)

// TriangleVertices are X, Y, Z, R, G, B, A.
var TriangleVertices = []float32{
	0.0, 0.5, 0.0, 1.0, 0.3, 0.5, 1.0,
	0.5, -0.5, 0.0, 1.0, 1.0, 0.5, 1.0,
	-0.5, -0.5, 0.0, 0.0, 0.0, 0.5, 1.0,
}

// Triangle is the 2D demo: no culling, no depth, no uniforms, drawn once.
func Triangle() *gfx.Demo {
	return &gfx.Demo{
		Name:     "triangle",
		Vertex:   triangleVS,
		Fragment: colorFS,
		Geometry: &gfx.GeometryBuffer{
			Data:   TriangleVertices,
			Layout: ColorLayout,
			Mode:   gfx.Triangles,
		},
		State: gfx.FlatRenderState,
	}
}

// ColorCube is a cube with one color per face, spinning about Y.
func ColorCube() *gfx.Demo {
	cam := gfx.DefaultCamera(0)
	spin := gfx.TurnSpin
	return &gfx.Demo{
		Name:       "colorcube",
		Vertex:     colorVS,
		Fragment:   colorFS,
		Geometry:   colorCubeGeometry(),
		State:      gfx.DefaultRenderState,
		Camera:     &cam,
		Uniforms:   gfx.DefaultUniformNames,
		Spin:       &spin,
		FrameClear: gfx.DefaultFrameClear,
	}
}

// Crate is the textured cube tumbling about Y and X. img is the crate face;
// CrateTexture makes a stand-in when no image file is at hand.
func Crate(img image.Image) *gfx.Demo {
	cam := gfx.DefaultCamera(0)
	spin := gfx.CubeSpin
	return &gfx.Demo{
		Name:     "crate",
		Vertex:   textureVS,
		Fragment: textureFS,
		Geometry: &gfx.GeometryBuffer{
			Data:   CrateVertices,
			Layout: TextureLayout,
			Mode:   gfx.Triangles,
		},
		State:          gfx.DefaultRenderState,
		Camera:         &cam,
		Uniforms:       gfx.DefaultUniformNames,
		Texture:        img,
		TextureOptions: gfx.DefaultTextureOptions,
		SamplerUniform: "sampler",
		Spin:           &spin,
		FrameClear:     gfx.DefaultFrameClear,
	}
}

var byName = map[string]func(image.Image) *gfx.Demo{
	"triangle":  func(image.Image) *gfx.Demo { return Triangle() },
	"colorcube": func(image.Image) *gfx.Demo { return ColorCube() },
	"crate":     Crate,
}

// Lookup returns the named demo. img is only used by textured demos.
func Lookup(name string, img image.Image) (*gfx.Demo, bool) {
	f, ok := byName[name]
	if !ok {
		return nil, false
	}
	return f(img), true
}

// Names lists the known demos.
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type face struct {
	corners [4][3]float32 // counter-clockwise seen from outside
	color   [4]float32
}

var cubeFaces = []face{
	{[4][3]float32{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}}, [4]float32{1, 0, 0.15, 1}},
	{[4][3]float32{{1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}}, [4]float32{0, 0.6, 0.2, 1}},
	{[4][3]float32{{1, -1, 1}, {1, -1, -1}, {1, 1, -1}, {1, 1, 1}}, [4]float32{0.25, 0.25, 0.75, 1}},
	{[4][3]float32{{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}}, [4]float32{1, 1, 0, 1}},
	{[4][3]float32{{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}}, [4]float32{0, 1, 1, 1}},
	{[4][3]float32{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}}, [4]float32{0.5, 0.5, 1, 1}},
}

// colorCubeGeometry emits two counter-clockwise triangles per face.
func colorCubeGeometry() *gfx.GeometryBuffer {
	b := geometry.NewBuilder(ColorLayout)
	for _, f := range cubeFaces {
		c := f.corners
		b.Position(c[0][:]...).Color(f.color[0], f.color[1], f.color[2], f.color[3])
		for _, i := range []int{1, 2, 0, 2, 3} {
			b.Position(c[i][:]...)
		}
	}
	return b.Geometry(gfx.Triangles)
}
