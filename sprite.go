package spritefx

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Memory tags where a sprite's pixel storage lives.
type Memory uint8

const (
	MemoryInternal Memory = iota // fast on-chip RAM
	MemoryExternal               // larger, slower external RAM (PSRAM)
)

func (m Memory) String() string {
	if m == MemoryExternal {
		return "external"
	}
	return "internal"
}

// BytesPerPixel is the storage cost of one sprite pixel.
const BytesPerPixel = 4

// Sprite is an owned, fixed-size pixel buffer. Create sprites with an
// Allocator; the dimensions never change, resizing means Replace.
//
// Sprite implements draw.Image so decoders and scalers can write into it.
// Transitions only read from it.
type Sprite struct {
	img      *image.RGBA
	mem      Memory
	released bool
}

// Width returns the sprite width in pixels.
func (s *Sprite) Width() int { return s.img.Rect.Dx() }

// Height returns the sprite height in pixels.
func (s *Sprite) Height() int { return s.img.Rect.Dy() }

// Memory returns the pool the sprite storage was taken from.
func (s *Sprite) Memory() Memory { return s.mem }

// Released reports whether the sprite has been handed back to its allocator.
func (s *Sprite) Released() bool { return s == nil || s.released }

// Bounds implements image.Image. The origin is always (0, 0).
func (s *Sprite) Bounds() image.Rectangle { return s.img.Rect }

// ColorModel implements image.Image.
func (s *Sprite) ColorModel() color.Model { return color.RGBAModel }

// At implements image.Image.
func (s *Sprite) At(x, y int) color.Color { return s.img.At(x, y) }

// RGBAAt returns the pixel at (x, y) without boxing.
func (s *Sprite) RGBAAt(x, y int) color.RGBA { return s.img.RGBAAt(x, y) }

// Set implements draw.Image.
func (s *Sprite) Set(x, y int, c color.Color) { s.img.Set(x, y, c) }

// Fill paints the whole sprite with c.
func (s *Sprite) Fill(c color.Color) {
	draw.Draw(s.img, s.img.Rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// DrawImage scales src to cover the whole sprite. Content of matching size
// is copied as is.
func (s *Sprite) DrawImage(src image.Image) {
	sb := src.Bounds()
	if sb.Dx() == s.Width() && sb.Dy() == s.Height() {
		draw.Draw(s.img, s.img.Rect, src, sb.Min, draw.Src)
		return
	}
	draw.BiLinear.Scale(s.img, s.img.Rect, src, sb, draw.Src, nil)
}

// DrawImageAt copies src unscaled with its top-left corner at (x, y) in
// sprite coordinates. Pixels falling outside the sprite are dropped.
func (s *Sprite) DrawImageAt(src image.Image, x, y int) {
	sb := src.Bounds()
	r := image.Rect(x, y, x+sb.Dx(), y+sb.Dy())
	draw.Draw(s.img, r, src, sb.Min, draw.Src)
}

// Image returns the backing RGBA storage. Callers must not retain it past
// the sprite's release.
func (s *Sprite) Image() *image.RGBA { return s.img }

func (s *Sprite) byteSize() int {
	return s.Width() * s.Height() * BytesPerPixel
}
