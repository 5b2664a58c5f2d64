package gfx

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrContextUnavailable means no identifier produced a rendering context.
	ErrContextUnavailable = errors.New("gfx: rendering context unavailable")
	ErrBadVertexFormat    = errors.New("gfx: bad vertex format")
	// ErrTextureMissing means a textured layout was set up without an image.
	ErrTextureMissing = errors.New("gfx: textured geometry without an image")
	ErrBadSpin        = errors.New("gfx: spin needs a positive period and a non-zero axis")
	// ErrNoHost means an animated demo was run without a frame host.
	ErrNoHost = errors.New("gfx: animated demo without a frame host")
)

// Stage names the step of program building that failed.
type Stage int

const (
	VertexCompile Stage = iota
	FragmentCompile
	Link
	Validate
)

func (s Stage) String() string {
	switch s {
	case VertexCompile:
		return "vertex compile"
	case FragmentCompile:
		return "fragment compile"
	case Link:
		return "link"
	case Validate:
		return "validate"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// ShaderError carries the info log of the first failing stage.
type ShaderError struct {
	Stage Stage
	Log   string
}

func (e *ShaderError) Error() string {
	if e.Log == "" {
		return "gfx: " + e.Stage.String() + " failed"
	}
	return "gfx: " + e.Stage.String() + " failed: " + e.Log
}

// IsStage reports whether err is a ShaderError for stage s.
func IsStage(err error, s Stage) bool {
	var serr *ShaderError
	return errors.As(err, &serr) && serr.Stage == s
}

type AttributeNotFoundError struct {
	Name string
}

func (e *AttributeNotFoundError) Error() string {
	return fmt.Sprintf("gfx: attribute %q not found in program", e.Name)
}

type UniformNotFoundError struct {
	Name string
}

func (e *UniformNotFoundError) Error() string {
	return fmt.Sprintf("gfx: uniform %q not found in program", e.Name)
}
