//go:build !js

package glfwgl

import (
	"fmt"
	"os"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	gfx "github.com/TheCell/webPano"
)

// Versions maps context identifiers to the OpenGL version requested for
// them. Both browser names ask for the 2.1 profile WebGL 1 corresponds
// to; "experimental-webgl" settles for 2.0.
var Versions = map[string][2]int{
	"webgl":              {2, 1},
	"experimental-webgl": {2, 0},
}

// Surface is a glfw window that creates its GL context on the first
// GetContext call that succeeds. glfw must be initialized and the calling
// goroutine locked to the main thread.
type Surface struct {
	Title         string
	Width, Height int
	Log           zerolog.Logger

	window *glfw.Window
}

// Init initializes glfw. Call Terminate when done.
func Init() error {
	if err := glfw.Init(); err != nil {
		return errors.Wrap(err, "glfw init")
	}
	return nil
}

func Terminate() {
	glfw.Terminate()
}

func (s *Surface) GetContext(id string) gfx.Context {
	if s.window != nil {
		return Context{}
	}
	v, ok := Versions[id]
	if !ok {
		s.Log.Debug().Str("id", id).Msg("unknown context identifier")
		return nil
	}

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, v[0])
	glfw.WindowHint(glfw.ContextVersionMinor, v[1])
	glfw.WindowHint(glfw.Resizable, glfw.False)
	w, err := glfw.CreateWindow(s.Width, s.Height, s.Title, nil, nil)
	if err != nil {
		s.Log.Warn().Err(err).Str("id", id).Msg("window creation failed")
		return nil
	}
	w.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		s.Log.Warn().Err(err).Str("id", id).Msg("gl init failed")
		w.Destroy()
		return nil
	}
	glfw.SwapInterval(1)
	s.window = w
	s.Log.Info().
		Str("id", id).
		Str("version", gl.GoStr(gl.GetString(gl.VERSION))).
		Str("renderer", gl.GoStr(gl.GetString(gl.RENDERER))).
		Msg("OpenGL context")
	return Context{}
}

// Size returns the framebuffer size once the window exists, the requested
// size before that.
func (s *Surface) Size() (int, int) {
	if s.window == nil {
		return s.Width, s.Height
	}
	return s.window.GetFramebufferSize()
}

// Window is nil until a context has been created.
func (s *Surface) Window() *glfw.Window {
	return s.window
}

// Alerter writes notices to stderr; a desktop process has no page to
// block.
type Alerter struct {
	Log zerolog.Logger
}

func (a Alerter) Alert(msg string) {
	a.Log.Error().Msg(msg)
	fmt.Fprintln(os.Stderr, msg)
}
