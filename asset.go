package spritefx

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/32bitkid/bitreader"
	"github.com/lucasb-eyer/go-colorful"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// RawExt is the file extension of raw RGB565 sprite dumps.
const RawExt = ".565"

// LoadImage decodes an image file. Files ending in RawExt are read with
// DecodeRGB565; anything else goes through image.Decode (JPEG, PNG, GIF,
// BMP and WebP are registered).
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load image: %w", err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	if strings.EqualFold(filepath.Ext(path), RawExt) {
		img, err := DecodeRGB565(r)
		if err != nil {
			return nil, fmt.Errorf("load image %s: %w", path, err)
		}
		return img, nil
	}
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("load image %s: %w", path, err)
	}
	return img, nil
}

// MaxRawPixels bounds the size declared by a raw RGB565 header. Larger
// dumps are rejected before any pixel storage is allocated.
const MaxRawPixels = 2048 * 2048

// rawChunk is the initial pixel capacity of the decode buffer. The buffer
// grows only as pixel data actually arrives, so a header that promises more
// than the stream holds fails without a large allocation.
const rawChunk = 64 << 10

// DecodeRGB565 reads a raw RGB565 dump: a 16-bit big-endian width and
// height followed by width*height pixels packed as 5 bits red, 6 bits green
// and 5 bits blue, most significant bit first.
func DecodeRGB565(r io.Reader) (*image.RGBA, error) {
	br := bitreader.NewReader(r)

	w, err := br.Read16(16)
	if err != nil {
		return nil, fmt.Errorf("rgb565 header: %w", err)
	}
	h, err := br.Read16(16)
	if err != nil {
		return nil, fmt.Errorf("rgb565 header: %w", err)
	}
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("rgb565 header: empty %dx%d image: %w", w, h, ErrInvalidParameter)
	}
	n := int(w) * int(h)
	if n > MaxRawPixels {
		return nil, fmt.Errorf("rgb565 header: %dx%d exceeds %d pixels: %w", w, h, MaxRawPixels, ErrInvalidParameter)
	}

	pix := make([]uint8, 0, min(n, rawChunk)*4)
	for i := 0; i < n; i++ {
		r5, err := br.Read8(5)
		if err != nil {
			return nil, fmt.Errorf("rgb565 pixel (%d,%d): %w", i%int(w), i/int(w), err)
		}
		g6, err := br.Read8(6)
		if err != nil {
			return nil, fmt.Errorf("rgb565 pixel (%d,%d): %w", i%int(w), i/int(w), err)
		}
		b5, err := br.Read8(5)
		if err != nil {
			return nil, fmt.Errorf("rgb565 pixel (%d,%d): %w", i%int(w), i/int(w), err)
		}
		pix = append(pix, r5<<3|r5>>2, g6<<2|g6>>4, b5<<3|b5>>2, 0xff)
	}
	return &image.RGBA{Pix: pix, Stride: 4 * int(w), Rect: image.Rect(0, 0, int(w), int(h))}, nil
}

// Palette renders a w×h test card: hue sweeps left to right and lightness
// falls off top to bottom, blended in HCL space.
func Palette(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		l := 0.9 - 0.6*float64(y)/float64(max(h-1, 1))
		for x := 0; x < w; x++ {
			hue := 360 * float64(x) / float64(max(w, 1))
			r, g, b := colorful.Hcl(hue, 0.6, l).Clamped().RGB255()
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 0xff})
		}
	}
	return img
}

// Checker renders a w×h checkerboard of cell-sized squares in two colors.
func Checker(w, h, cell int, a, b Color) *image.RGBA {
	if cell < 1 {
		cell = 1
	}
	ca, cb := a.toRGBA(), b.toRGBA()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x/cell+y/cell)%2 == 0 {
				img.SetRGBA(x, y, ca)
			} else {
				img.SetRGBA(x, y, cb)
			}
		}
	}
	return img
}
