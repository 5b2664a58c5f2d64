package gfx_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gfx "github.com/TheCell/webPano"
	"github.com/TheCell/webPano/testgfx"
)

func testImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 40), G: uint8(y * 40), B: 0x80, A: 0xff})
		}
	}
	return img
}

func TestNewTexture(t *testing.T) {
	ctx := &testgfx.Context{}
	img := testImage(4, 2)
	s := gfx.NewTexture(ctx, img, gfx.DefaultTextureOptions)
	require.NotNil(t, s)

	assert.Equal(t, map[gfx.TextureParam]int{
		gfx.TextureWrapS:     gfx.ClampToEdge,
		gfx.TextureWrapT:     gfx.ClampToEdge,
		gfx.TextureMinFilter: gfx.Linear,
		gfx.TextureMagFilter: gfx.Linear,
	}, ctx.TexParams)
	assert.Same(t, img, ctx.Images[s.Handle()])
	assert.Equal(t, "bindTexture 0", ctx.Calls[len(ctx.Calls)-1], "the texture is unbound after upload")
}

func TestNewTextureConverts(t *testing.T) {
	ctx := &testgfx.Context{}
	src := image.NewRGBA(image.Rect(10, 10, 13, 12))
	src.Set(10, 10, color.RGBA{R: 0xff, A: 0xff})

	s := gfx.NewTexture(ctx, src, gfx.TextureOptions{
		WrapS: gfx.Repeat, WrapT: gfx.Repeat, MinFilter: gfx.Nearest, MagFilter: gfx.Nearest,
	})
	got := ctx.Images[s.Handle()]
	require.NotNil(t, got)
	assert.Equal(t, image.Rect(0, 0, 3, 2), got.Bounds())
	assert.Equal(t, color.NRGBA{R: 0xff, A: 0xff}, got.NRGBAAt(0, 0))
	assert.Equal(t, gfx.Nearest, ctx.TexParams[gfx.TextureMinFilter])
	assert.Equal(t, gfx.Repeat, ctx.TexParams[gfx.TextureWrapS])
}

func TestSamplerBind(t *testing.T) {
	ctx := &testgfx.Context{}
	s := gfx.NewTexture(ctx, testImage(1, 1), gfx.DefaultTextureOptions)
	n := len(ctx.Calls)
	s.Bind(ctx, 2)
	assert.Equal(t, []string{"activeTexture 2", "bindTexture 1"}, ctx.Calls[n:])
}
