package gfx

import (
	"image"

	"golang.org/x/image/draw"
)

// TextureOptions are the sampling parameters set when a texture is created.
type TextureOptions struct {
	WrapS, WrapT         int
	MinFilter, MagFilter int
}

// DefaultTextureOptions clamps at the edges and filters linearly.
var DefaultTextureOptions = TextureOptions{
	WrapS:     ClampToEdge,
	WrapT:     ClampToEdge,
	MinFilter: Linear,
	MagFilter: Linear,
}

type Sampler2D struct {
	tex Texture
}

// NewTexture uploads img as an RGBA 2D texture. Any image type is accepted;
// non-NRGBA images are converted first. No premultiplication or flipping is
// done.
func NewTexture(ctx Context, img image.Image, opts TextureOptions) *Sampler2D {
	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		b := img.Bounds()
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	}

	s := &Sampler2D{tex: ctx.CreateTexture()}
	ctx.BindTexture(s.tex)
	ctx.TexParameteri(TextureWrapS, opts.WrapS)
	ctx.TexParameteri(TextureWrapT, opts.WrapT)
	ctx.TexParameteri(TextureMinFilter, opts.MinFilter)
	ctx.TexParameteri(TextureMagFilter, opts.MagFilter)
	ctx.TexImage2D(nrgba)
	ctx.BindTexture(0)
	return s
}

func (s *Sampler2D) Handle() Texture {
	return s.tex
}

// Bind makes unit the active texture unit and binds the texture to it.
func (s *Sampler2D) Bind(ctx Context, unit int) {
	ctx.ActiveTexture(unit)
	ctx.BindTexture(s.tex)
}
