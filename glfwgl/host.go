//go:build !js

package glfwgl

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Host runs frame callbacks once per buffer swap. With a swap interval of
// one that is once per display refresh.
type Host struct {
	Surface *Surface

	pending []func()
}

func (h *Host) RequestFrame(f func()) {
	h.pending = append(h.pending, f)
}

// Run pumps events and frames until the window is closed. A frame is
// swapped only when at least one callback ran, so a demo drawn once stays
// on screen without redrawing.
func (h *Host) Run() {
	w := h.Surface.Window()
	if w == nil {
		return
	}
	drawn := true
	for !w.ShouldClose() {
		fs := h.pending
		h.pending = nil
		for _, f := range fs {
			f()
		}
		if len(fs) > 0 || drawn {
			w.SwapBuffers()
			drawn = false
		}
		if len(h.pending) == 0 {
			glfw.WaitEvents()
		} else {
			glfw.PollEvents()
		}
	}
}
