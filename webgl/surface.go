//go:build js && wasm

package webgl

import (
	"syscall/js"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	gfx "github.com/TheCell/webPano"
)

// Surface is a canvas element on the current page.
type Surface struct {
	canvas js.Value
	log    zerolog.Logger
}

// NewSurface looks up the canvas with the given element id.
func NewSurface(id string, log zerolog.Logger) (*Surface, error) {
	canvas := js.Global().Get("document").Call("getElementById", id)
	if canvas.IsNull() || canvas.IsUndefined() {
		return nil, errors.Errorf("no element with id %q", id)
	}
	return &Surface{canvas: canvas, log: log}, nil
}

// GetContext returns nil when the canvas refuses the identifier, or when
// getContext itself throws.
func (s *Surface) GetContext(id string) (ctx gfx.Context) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Debug().Interface("error", r).Str("id", id).Msg("getContext threw")
			ctx = nil
		}
	}()
	gl := s.canvas.Call("getContext", id)
	if gl.IsNull() || gl.IsUndefined() {
		return nil
	}
	return newContext(gl)
}

func (s *Surface) Size() (int, int) {
	return s.canvas.Get("width").Int(), s.canvas.Get("height").Int()
}

// Alerter shows notices with window.alert.
type Alerter struct{}

func (Alerter) Alert(msg string) {
	js.Global().Call("alert", msg)
}
