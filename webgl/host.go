//go:build js && wasm

package webgl

import (
	"syscall/js"
)

// Host schedules frames with window.requestAnimationFrame. Each callback
// is wrapped once and released after it runs.
type Host struct{}

func (Host) RequestFrame(f func()) {
	var cb js.Func
	cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		cb.Release()
		f()
		return nil
	})
	js.Global().Call("requestAnimationFrame", cb)
}

// Wait blocks forever so the wasm program keeps serving callbacks.
func Wait() {
	select {}
}
