package postprocess

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/nfnt/resize"
)

// Sheet tiles images left to right, top to bottom into a grid with cols
// columns. Each tile is scaled to fit tileW x tileH keeping its aspect ratio
// and centered in its cell over bg.
func Sheet(imgs []image.Image, cols, tileW, tileH int, bg color.Color) *image.NRGBA {
	if cols <= 0 {
		cols = 1
	}
	if cols > len(imgs) && len(imgs) > 0 {
		cols = len(imgs)
	}
	rows := (len(imgs) + cols - 1) / cols

	out := image.NewNRGBA(image.Rect(0, 0, cols*tileW, rows*tileH))
	draw.Draw(out, out.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	for i, img := range imgs {
		tile := resize.Thumbnail(uint(tileW), uint(tileH), img, resize.Bilinear)
		tb := tile.Bounds()
		cellX := (i % cols) * tileW
		cellY := (i / cols) * tileH
		off := image.Pt(cellX+(tileW-tb.Dx())/2, cellY+(tileH-tb.Dy())/2)
		draw.Draw(out, tb.Sub(tb.Min).Add(off), tile, tb.Min, draw.Over)
	}
	return out
}
