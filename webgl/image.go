//go:build js && wasm

package webgl

import (
	"image"
	"syscall/js"

	"github.com/pkg/errors"
)

// Image copies the pixels of the page element with the given id, an <img>
// that has finished loading or a <canvas>, by drawing it onto an offscreen
// 2D canvas.
func Image(id string) (*image.NRGBA, error) {
	doc := js.Global().Get("document")
	el := doc.Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return nil, errors.Errorf("no element with id %q", id)
	}

	var w, h int
	if nw := el.Get("naturalWidth"); !nw.IsUndefined() {
		if !el.Get("complete").Truthy() || nw.Int() == 0 {
			return nil, errors.Errorf("image %q is not loaded", id)
		}
		w, h = nw.Int(), el.Get("naturalHeight").Int()
	} else {
		w, h = el.Get("width").Int(), el.Get("height").Int()
	}
	if w <= 0 || h <= 0 {
		return nil, errors.Errorf("element %q has no pixels", id)
	}

	canvas := doc.Call("createElement", "canvas")
	canvas.Set("width", w)
	canvas.Set("height", h)
	ctx := canvas.Call("getContext", "2d")
	if ctx.IsNull() {
		return nil, errors.New("2d canvas context unavailable")
	}
	ctx.Call("drawImage", el, 0, 0)
	data := ctx.Call("getImageData", 0, 0, w, h).Get("data")

	// getImageData is unpremultiplied RGBA, row by row
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	if n := js.CopyBytesToGo(img.Pix, data); n != len(img.Pix) {
		return nil, errors.Errorf("image %q: copied %d of %d bytes", id, n, len(img.Pix))
	}
	return img, nil
}
