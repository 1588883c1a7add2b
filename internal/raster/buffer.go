package raster

import (
	"image/color"
	"math"
)

// FrameBuffer holds the rendering target as flat slices for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA interleaved, len = W*H*4
	ZBuf   []float64 // inverse depth per pixel, len = W*H, initialized to -inf
}

// NewFrameBuffer allocates a zeroed color buffer and -inf z-buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	n := w * h
	zbuf := make([]float64, n)
	for i := range zbuf {
		zbuf[i] = math.Inf(-1)
	}
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, n*4),
		ZBuf:   zbuf,
	}
}

// Fill sets every pixel to c. The z-buffer is left untouched.
func (fb *FrameBuffer) Fill(c color.NRGBA) {
	if len(fb.Color) == 0 {
		return
	}
	fb.Color[0], fb.Color[1], fb.Color[2], fb.Color[3] = c.R, c.G, c.B, c.A
	// Doubling copy: each pass copies the already-filled prefix.
	for n := 4; n < len(fb.Color); n *= 2 {
		copy(fb.Color[n:], fb.Color[:n])
	}
}
