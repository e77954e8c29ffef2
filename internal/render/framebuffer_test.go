package render

import (
	"image/color"
	"testing"
)

func TestNewFrameBufferClampsSize(t *testing.T) {
	fb := NewFrameBuffer(0, -4)
	if fb.W != 1 || fb.H != 1 || len(fb.Pixels) != 4 {
		t.Fatalf("unexpected frame buffer: %dx%d (%d bytes)", fb.W, fb.H, len(fb.Pixels))
	}
}

func TestClearFillsEveryPixel(t *testing.T) {
	fb := NewFrameBuffer(4, 3)
	fb.Clear(color.RGBA{0x10, 0x20, 0x30, 0xFF})
	for y := 0; y < fb.H; y++ {
		for x := 0; x < fb.W; x++ {
			if got := fb.At(x, y); got != (color.RGBA{0x10, 0x20, 0x30, 0xFF}) {
				t.Fatalf("pixel (%d,%d) = %v", x, y, got)
			}
		}
	}
	if got := fb.At(4, 0); got != (color.RGBA{}) {
		t.Fatalf("out of range pixel should be zero, got %v", got)
	}
}

func TestCopyFromResizes(t *testing.T) {
	src := NewFrameBuffer(3, 2)
	src.Clear(color.RGBA{0, 0, 0, 0xFF})
	dst := NewFrameBuffer(1, 1)
	dst.CopyFrom(src)
	if dst.W != 3 || dst.H != 2 {
		t.Fatalf("expected 3x2 after copy, got %dx%d", dst.W, dst.H)
	}
	if got := dst.At(2, 1); got.A != 0xFF {
		t.Fatalf("unexpected copied pixel: %v", got)
	}
	src.Clear(color.RGBA{0xFF, 0, 0, 0xFF})
	if got := dst.At(0, 0); got.R != 0 {
		t.Fatalf("copy must not alias the source, got %v", got)
	}
}
