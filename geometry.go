package gfx

import (
	"encoding/binary"

	"github.com/pkg/errors"
	"golang.org/x/mobile/exp/f32"
)

// VertexFormat is the role a vertex attribute plays. Roles are bits so a
// layout's roles can be combined into one mask.
type VertexFormat uint32

const (
	VertexPosition VertexFormat = 1 << iota
	VertexColor
	VertexNormal
	VertexTexcoord
	VertexUserData
)

func (v VertexFormat) String() string {
	switch v {
	case VertexPosition:
		return "position"
	case VertexColor:
		return "color"
	case VertexNormal:
		return "normal"
	case VertexTexcoord:
		return "texcoord"
	case VertexUserData:
		return "userdata"
	default:
		return "mixed"
	}
}

// VertexAttribute is one attribute inside an interleaved vertex record.
// Name is the attribute's name in the shader; Offset is in bytes from the
// start of the record.
type VertexAttribute struct {
	Name       string
	Role       VertexFormat
	Components int
	Type       ComponentType
	Normalized bool
	Offset     int
}

// Bytes gives the width of the attribute inside a record.
func (a VertexAttribute) Bytes() int {
	return a.Components * a.Type.Size()
}

// Attr describes a float attribute; its offset is filled in by
// NewVertexLayout.
func Attr(name string, role VertexFormat, components int) VertexAttribute {
	return VertexAttribute{
		Name:       name,
		Role:       role,
		Components: components,
		Type:       Float,
	}
}

// VertexLayout describes one interleaved vertex record. Stride is in bytes.
type VertexLayout struct {
	Attributes []VertexAttribute
	Stride     int
}

// NewVertexLayout packs attrs back to back in the given order and sets
// the stride to their total width.
func NewVertexLayout(attrs ...VertexAttribute) VertexLayout {
	l := VertexLayout{Attributes: make([]VertexAttribute, len(attrs))}
	offset := 0
	for i, a := range attrs {
		a.Offset = offset
		l.Attributes[i] = a
		offset += a.Bytes()
	}
	l.Stride = offset
	return l
}

// Format returns the mask of roles present in the layout.
func (l VertexLayout) Format() VertexFormat {
	var mask VertexFormat
	for _, a := range l.Attributes {
		mask |= a.Role
	}
	return mask
}

// Attribute looks up the first attribute with the given role.
func (l VertexLayout) Attribute(role VertexFormat) (VertexAttribute, bool) {
	for _, a := range l.Attributes {
		if a.Role == role {
			return a, true
		}
	}
	return VertexAttribute{}, false
}

// Floats is the number of float32 values in one record.
func (l VertexLayout) Floats() int {
	return l.Stride / Float.Size()
}

// Validate checks that every attribute lies inside one record and that
// the attribute widths add up to the stride.
func (l VertexLayout) Validate() error {
	if l.Stride <= 0 {
		return errors.Wrapf(ErrBadVertexFormat, "stride %d", l.Stride)
	}
	sum := 0
	for _, a := range l.Attributes {
		if a.Components < 1 || a.Components > 4 {
			return errors.Wrapf(ErrBadVertexFormat, "attribute %q has %d components", a.Name, a.Components)
		}
		if a.Offset < 0 || a.Offset+a.Bytes() > l.Stride {
			return errors.Wrapf(ErrBadVertexFormat, "attribute %q [%d,%d) exceeds stride %d",
				a.Name, a.Offset, a.Offset+a.Bytes(), l.Stride)
		}
		sum += a.Bytes()
	}
	if sum != l.Stride {
		return errors.Wrapf(ErrBadVertexFormat, "attributes span %d bytes, stride is %d", sum, l.Stride)
	}
	return nil
}

// MustValidate panics if the layout is invalid. A bad layout is a
// programming error, not something to recover from at runtime.
func (l VertexLayout) MustValidate() {
	if err := l.Validate(); err != nil {
		panic(err)
	}
}

// GeometryBuffer is a flat array of interleaved float vertex records and the
// layout that reads it.
type GeometryBuffer struct {
	Data   []float32
	Layout VertexLayout
	Mode   DrawMode
}

// VertexCount returns the number of whole records in Data.
func (g *GeometryBuffer) VertexCount() int {
	n := g.Layout.Floats()
	if n == 0 {
		return 0
	}
	return len(g.Data) / n
}

// Bytes packs Data as little-endian float32s.
func (g *GeometryBuffer) Bytes() []byte {
	return f32.Bytes(binary.LittleEndian, g.Data...)
}

// VertexBuffer is an uploaded GeometryBuffer.
type VertexBuffer struct {
	buf   Buffer
	count int
	mode  DrawMode
}

func (b *VertexBuffer) Handle() Buffer {
	return b.buf
}

func (b *VertexBuffer) Count() int {
	return b.count
}

// Draw issues one drawArrays call over every vertex.
func (b *VertexBuffer) Draw(ctx Context) {
	ctx.DrawArrays(b.mode, 0, b.count)
}

// Upload copies geom into a new buffer and points each layout attribute of
// prog at it. Every attribute name is resolved before any pointer state is
// touched, so a missing attribute leaves nothing half configured.
func Upload(ctx Context, prog *ShaderProgram, geom *GeometryBuffer, usage Usage) (*VertexBuffer, error) {
	layout := geom.Layout
	layout.MustValidate()
	if layout.Stride%Float.Size() != 0 {
		return nil, errors.Wrapf(ErrBadVertexFormat, "stride %d does not hold whole floats", layout.Stride)
	}
	for _, a := range layout.Attributes {
		if a.Type != Float {
			return nil, errors.Wrapf(ErrBadVertexFormat, "attribute %q is not float", a.Name)
		}
	}
	if n := layout.Floats(); len(geom.Data)%n != 0 {
		return nil, errors.Wrapf(ErrBadVertexFormat, "%d floats is not a whole number of %d-float records", len(geom.Data), n)
	}

	locs := make([]Attrib, len(layout.Attributes))
	for i, a := range layout.Attributes {
		loc, err := prog.Attrib(a.Name)
		if err != nil {
			return nil, err
		}
		locs[i] = loc
	}

	b := &VertexBuffer{
		buf:   ctx.CreateBuffer(),
		count: geom.VertexCount(),
		mode:  geom.Mode,
	}
	ctx.BindBuffer(ArrayBuffer, b.buf)
	ctx.BufferData(ArrayBuffer, geom.Bytes(), usage)

	for i, a := range layout.Attributes {
		ctx.VertexAttribPointer(locs[i], a.Components, a.Type, a.Normalized, layout.Stride, a.Offset)
		ctx.EnableVertexAttribArray(locs[i])
	}
	return b, nil
}
