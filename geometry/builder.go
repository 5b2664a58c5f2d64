package geometry

import (
	gfx "github.com/TheCell/webPano"
)

// Builder fills interleaved float records for a layout. Position starts a
// new vertex; attributes not set on a vertex are copied from the previous
// one.
type Builder struct {
	layout   gfx.VertexLayout
	floats   int
	cur      int
	curvf    gfx.VertexFormat // data that's been set on the current vertex
	lastdata map[gfx.VertexFormat]int
	offsets  map[gfx.VertexFormat]gfx.VertexAttribute
	verts    []float32
}

// NewBuilder panics with gfx.ErrBadVertexFormat if layout is invalid or has
// non-float attributes.
func NewBuilder(layout gfx.VertexLayout) *Builder {
	layout.MustValidate()
	b := &Builder{
		layout:   layout,
		floats:   layout.Floats(),
		cur:      -1,
		lastdata: make(map[gfx.VertexFormat]int, len(layout.Attributes)),
		offsets:  make(map[gfx.VertexFormat]gfx.VertexAttribute, len(layout.Attributes)),
	}
	for _, a := range layout.Attributes {
		if a.Type != gfx.Float {
			panic(gfx.ErrBadVertexFormat)
		}
		b.offsets[a.Role] = a
	}
	return b
}

// Clear resets the builder to zero vertices.
func (b *Builder) Clear() {
	b.lastdata = make(map[gfx.VertexFormat]int, len(b.lastdata))
	b.cur = -1
	b.curvf = 0
	b.verts = b.verts[:0]
}

func (b *Builder) attr(v gfx.VertexFormat) gfx.VertexAttribute {
	a, ok := b.offsets[v]
	if !ok {
		panic(gfx.ErrBadVertexFormat)
	}
	return a
}

func (b *Builder) next() {
	b.fillVertex()
	if len(b.verts) != 0 {
		b.cur += b.floats
	} else {
		b.cur = 0
	}
	b.curvf = 0
	b.verts = append(b.verts, make([]float32, b.floats)...)
}

// fillVertex copies attributes the current vertex did not set from the
// last vertex that did.
func (b *Builder) fillVertex() {
	if b.cur < 0 {
		return
	}
	for v, offs := range b.lastdata {
		if b.curvf&v == 0 {
			n := b.attr(v).Components
			b.set(v, b.verts[offs:offs+n]...)
		}
	}
}

func (b *Builder) set(v gfx.VertexFormat, data ...float32) {
	if b.cur < 0 {
		panic("geometry: attribute set before Position")
	}
	a := b.attr(v)
	offs := b.cur + a.Offset/gfx.Float.Size()
	b.curvf |= v
	b.lastdata[v] = offs
	n := copy(b.verts[offs:offs+a.Components], data)
	for i := n; i < a.Components; i++ {
		// missing w components default to 1, others to 0
		if i == 3 {
			b.verts[offs+i] = 1
		} else {
			b.verts[offs+i] = 0
		}
	}
}

// Position creates a new vertex and sets its position.
func (b *Builder) Position(xyz ...float32) *Builder {
	b.next()
	b.set(gfx.VertexPosition, xyz...)
	return b
}

// Color sets the vertex color.
func (b *Builder) Color(red, green, blue, alpha float32) *Builder {
	b.set(gfx.VertexColor, red, green, blue, alpha)
	return b
}

// Normal sets the vertex normal.
func (b *Builder) Normal(x, y, z float32) *Builder {
	b.set(gfx.VertexNormal, x, y, z)
	return b
}

// Texcoord sets the vertex texture coordinate.
func (b *Builder) Texcoord(u, v float32) *Builder {
	b.set(gfx.VertexTexcoord, u, v)
	return b
}

// VertexCount returns the number of vertices available.
func (b *Builder) VertexCount() int {
	return len(b.verts) / b.floats
}

// Geometry returns a GeometryBuffer over a copy of the built records.
func (b *Builder) Geometry(mode gfx.DrawMode) *gfx.GeometryBuffer {
	b.fillVertex()
	data := make([]float32, len(b.verts))
	copy(data, b.verts)
	return &gfx.GeometryBuffer{
		Data:   data,
		Layout: b.layout,
		Mode:   mode,
	}
}
