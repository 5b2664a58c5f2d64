//go:build js && wasm

package webgl

import (
	"image/color"
	"syscall/js"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func document(t *testing.T) js.Value {
	doc := js.Global().Get("document")
	if doc.IsUndefined() {
		t.Skip("no DOM in this runtime")
	}
	return doc
}

func TestImageFromCanvas(t *testing.T) {
	doc := document(t)
	canvas := doc.Call("createElement", "canvas")
	canvas.Set("id", "crateSource")
	canvas.Set("width", 2)
	canvas.Set("height", 1)
	ctx := canvas.Call("getContext", "2d")
	ctx.Set("fillStyle", "#ff0000")
	ctx.Call("fillRect", 0, 0, 1, 1)
	ctx.Set("fillStyle", "#0000ff")
	ctx.Call("fillRect", 1, 0, 1, 1)
	doc.Get("body").Call("appendChild", canvas)
	defer canvas.Call("remove")

	img, err := Image("crateSource")
	require.NoError(t, err)
	assert.Equal(t, 2, img.Bounds().Dx())
	assert.Equal(t, color.NRGBA{R: 0xff, A: 0xff}, img.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{B: 0xff, A: 0xff}, img.NRGBAAt(1, 0))
}

func TestImageMissing(t *testing.T) {
	document(t)
	_, err := Image("noSuchImage")
	assert.ErrorContains(t, err, "no element")
}

func TestImageNotLoaded(t *testing.T) {
	doc := document(t)
	el := doc.Call("createElement", "img")
	el.Set("id", "pendingImage")
	doc.Get("body").Call("appendChild", el)
	defer el.Call("remove")

	_, err := Image("pendingImage")
	assert.ErrorContains(t, err, "not loaded")
}
