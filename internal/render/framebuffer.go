package render

import "image/color"

type FrameBuffer struct {
	W      int
	H      int
	Pixels []uint8 // RGBA
}

func NewFrameBuffer(w, h int) *FrameBuffer {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &FrameBuffer{W: w, H: h, Pixels: make([]uint8, w*h*4)}
}

func (fb *FrameBuffer) Clear(c color.RGBA) {
	for i := 0; i < len(fb.Pixels); i += 4 {
		fb.Pixels[i+0] = c.R
		fb.Pixels[i+1] = c.G
		fb.Pixels[i+2] = c.B
		fb.Pixels[i+3] = c.A
	}
}

// At returns the pixel at (x, y). Out of range coordinates yield the zero color.
func (fb *FrameBuffer) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= fb.W || y >= fb.H {
		return color.RGBA{}
	}
	i := (y*fb.W + x) * 4
	return color.RGBA{fb.Pixels[i], fb.Pixels[i+1], fb.Pixels[i+2], fb.Pixels[i+3]}
}

// CopyFrom copies src into fb, reallocating when the sizes differ.
func (fb *FrameBuffer) CopyFrom(src *FrameBuffer) {
	if fb.W != src.W || fb.H != src.H {
		fb.W, fb.H = src.W, src.H
		fb.Pixels = make([]uint8, len(src.Pixels))
	}
	copy(fb.Pixels, src.Pixels)
}
