package spritefx

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Canvas is the destination display surface. Implementations are expected
// to succeed synchronously; a display that can fail has no recovery path in
// this package.
type Canvas interface {
	// Bounds returns the drawable area of the surface.
	Bounds() image.Rectangle
	// FillRect paints r with c. Parts of r outside Bounds are ignored.
	FillRect(r image.Rectangle, c color.Color)
	// Blit copies the sr region of src so that sr.Min lands on (x, y).
	Blit(x, y int, src *Sprite, sr image.Rectangle)
}

// ImageCanvas is a Canvas backed by an in-memory RGBA framebuffer.
type ImageCanvas struct {
	img *image.RGBA
}

// NewImageCanvas creates a w×h framebuffer cleared to transparent black.
func NewImageCanvas(w, h int) *ImageCanvas {
	return &ImageCanvas{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Image returns the framebuffer.
func (c *ImageCanvas) Image() *image.RGBA { return c.img }

// Bounds implements Canvas.
func (c *ImageCanvas) Bounds() image.Rectangle { return c.img.Rect }

// FillRect implements Canvas.
func (c *ImageCanvas) FillRect(r image.Rectangle, col color.Color) {
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Src)
}

// Blit implements Canvas.
func (c *ImageCanvas) Blit(x, y int, src *Sprite, sr image.Rectangle) {
	sr = sr.Intersect(src.Bounds())
	if sr.Empty() {
		return
	}
	dr := image.Rect(x, y, x+sr.Dx(), y+sr.Dy())
	draw.Draw(c.img, dr, src.Image(), sr.Min, draw.Src)
}

// Clear paints the whole canvas with col.
func (c *ImageCanvas) Clear(col color.Color) {
	c.FillRect(c.img.Rect, col)
}

// StrokeRect draws a one pixel outline just inside r.
func StrokeRect(cv Canvas, r image.Rectangle, col color.Color) {
	if r.Empty() {
		return
	}
	cv.FillRect(image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), col)
	cv.FillRect(image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), col)
	cv.FillRect(image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), col)
	cv.FillRect(image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), col)
}
