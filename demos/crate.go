package demos

import (
	"image"
	"image/color"
)

// CrateVertices are X, Y, Z, U, V; six vertices per face.
var CrateVertices = []float32{
	// front
	-1.0, 1.0, 1.0, 0, 0,
	1.0, -1.0, 1.0, 1, 1,
	1.0, 1.0, 1.0, 1, 0,
	-1.0, 1.0, 1.0, 0, 0,
	-1.0, -1.0, 1.0, 0, 1,
	1.0, -1.0, 1.0, 1, 1,

	// right
	1.0, 1.0, 1.0, 0, 1,
	1.0, -1.0, -1.0, 1, 0,
	1.0, 1.0, -1.0, 1, 1,
	1.0, 1.0, 1.0, 0, 1,
	1.0, -1.0, 1.0, 0, 0,
	1.0, -1.0, -1.0, 1, 0,

	// left
	-1.0, 1.0, 1.0, 1, 1,
	-1.0, 1.0, -1.0, 0, 1,
	-1.0, -1.0, -1.0, 0, 0,
	-1.0, 1.0, 1.0, 1, 1,
	-1.0, -1.0, -1.0, 0, 0,
	-1.0, -1.0, 1.0, 1, 0,

	// back
	-1.0, 1.0, -1.0, 1, 1,
	1.0, -1.0, -1.0, 0, 0,
	-1.0, -1.0, -1.0, 1, 0,
	-1.0, 1.0, -1.0, 1, 1,
	1.0, 1.0, -1.0, 0, 1,
	1.0, -1.0, -1.0, 0, 0,

	// top
	-1.0, 1.0, 1.0, 0, 0,
	1.0, 1.0, -1.0, 1, 1,
	-1.0, 1.0, -1.0, 0, 1,
	-1.0, 1.0, 1.0, 0, 0,
	1.0, 1.0, 1.0, 1, 0,
	1.0, 1.0, -1.0, 1, 1,

	// bottom
	1.0, -1.0, 1.0, 1, 0,
	-1.0, -1.0, 1.0, 0, 0,
	-1.0, -1.0, -1.0, 0, 1,
	1.0, -1.0, 1.0, 1, 0,
	-1.0, -1.0, -1.0, 0, 1,
	1.0, -1.0, -1.0, 1, 1,
}

var (
	plank  = color.NRGBA{R: 0xb0, G: 0x7a, B: 0x40, A: 0xff}
	grain  = color.NRGBA{R: 0x96, G: 0x64, B: 0x32, A: 0xff}
	border = color.NRGBA{R: 0x5a, G: 0x3a, B: 0x1c, A: 0xff}
)

// CrateTexture draws a size×size wooden crate face: planks inside a dark
// frame with one diagonal brace.
func CrateTexture(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	edge := size / 8
	if edge < 1 {
		edge = 1
	}
	plankWidth := size / 4
	if plankWidth < 1 {
		plankWidth = 1
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := plank
			switch {
			case x < edge || y < edge || x >= size-edge || y >= size-edge:
				c = border
			case abs(x-y) < edge/2+1:
				c = border
			case (x/plankWidth)%2 == 1:
				c = grain
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
