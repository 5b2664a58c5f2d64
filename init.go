package gfx

import (
	"github.com/rs/zerolog"
)

// DefaultContextIDs are tried in order by Initialize when no identifiers are
// given. The second is the pre-standard name some browsers still need.
var DefaultContextIDs = []string{"webgl", "experimental-webgl"}

// CullState enables face culling with the given winding and culled face.
type CullState struct {
	FrontFace Winding
	Face      Face
}

// RenderState is the fixed global state applied once after a context is
// acquired.
type RenderState struct {
	ClearColor [4]float32
	Cull       *CullState // nil leaves culling disabled
	DepthTest  bool
}

// DefaultRenderState is used by the 3D demos.
var DefaultRenderState = RenderState{
	ClearColor: [4]float32{0.8, 0.8, 0.8, 1.0},
	Cull: &CullState{
		FrontFace: CounterClockwise,
		Face:      Back,
	},
	DepthTest: true,
}

// FlatRenderState is used by the 2D demo: clear only, no culling or depth.
var FlatRenderState = RenderState{
	ClearColor: [4]float32{0.8, 0.8, 0.8, 1.0},
}

// Initialize acquires a rendering context from surface, trying each id in
// order (DefaultContextIDs when none are given), and applies state to it.
// ErrContextUnavailable is returned when every identifier fails.
func Initialize(log zerolog.Logger, surface Surface, state RenderState, ids ...string) (Context, error) {
	if len(ids) == 0 {
		ids = DefaultContextIDs
	}
	var ctx Context
	for i, id := range ids {
		ctx = surface.GetContext(id)
		if ctx != nil {
			log.Debug().Str("id", id).Msg("rendering context acquired")
			break
		}
		if i+1 < len(ids) {
			log.Warn().Str("id", id).Str("fallback", ids[i+1]).Msg("context not supported, trying fallback")
		}
	}
	if ctx == nil {
		log.Error().Strs("ids", ids).Msg("no rendering context")
		return nil, ErrContextUnavailable
	}
	state.Apply(ctx)
	return ctx, nil
}

// Apply sets clear color, clears, then configures culling and depth testing.
func (s RenderState) Apply(ctx Context) {
	c := s.ClearColor
	ctx.ClearColor(c[0], c[1], c[2], c[3])
	ctx.Clear(ColorBufferBit | DepthBufferBit)
	if s.Cull != nil {
		ctx.Enable(CullFaceCap)
		ctx.FrontFace(s.Cull.FrontFace)
		ctx.CullFace(s.Cull.Face)
	}
	if s.DepthTest {
		ctx.Enable(DepthTestCap)
	}
}
