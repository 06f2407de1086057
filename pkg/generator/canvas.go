// canvas.go — Gradient background and circle stamping.
package generator

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// newCanvas returns a transparent size x size canvas. NRGBA keeps the
// circle's translucent white exact instead of premultiplying it.
func newCanvas(size int) *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, size, size))
}

// fillGradient paints every row of img with a single opaque color moving
// from start towards end. The fraction for row i is i/height.
func fillGradient(img *image.NRGBA, start, end color.NRGBA) {
	b := img.Bounds()
	height := b.Dy()
	for i := 0; i < height; i++ {
		t := float64(i) / float64(height)
		c := color.NRGBA{
			R: lerp(start.R, end.R, t),
			G: lerp(start.G, end.G, t),
			B: lerp(start.B, end.B, t),
			A: 255,
		}
		row := image.Rect(b.Min.X, b.Min.Y+i, b.Max.X, b.Min.Y+i+1)
		draw.Draw(img, row, image.NewUniform(c), image.Point{}, draw.Src)
	}
}

// circle is a filled disc on the pixel grid: (x, y) belongs to it when
// (x-cx)^2 + (y-cy)^2 <= r^2.
type circle struct {
	cx, cy, r int
}

func (c circle) Bounds() image.Rectangle {
	return image.Rect(c.cx-c.r, c.cy-c.r, c.cx+c.r+1, c.cy+c.r+1)
}

func (c circle) contains(x, y int) bool {
	dx, dy := x-c.cx, y-c.cy
	return dx*dx+dy*dy <= c.r*c.r
}

// fill overwrites the pixels of img covered by c with col.
func (c circle) fill(img *image.NRGBA, col color.NRGBA) {
	area := c.Bounds().Intersect(img.Bounds())
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			if c.contains(x, y) {
				img.SetNRGBA(x, y, col)
			}
		}
	}
}
