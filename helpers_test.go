package spritefx

import (
	"bytes"
	"image"
	"image/color"
	"testing"
	"time"
)

// fakeClock advances only when Sleep is called.
type fakeClock struct {
	now    time.Time
	sleeps []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(d time.Duration) {
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
}

func (c *fakeClock) slept() time.Duration {
	var total time.Duration
	for _, d := range c.sleeps {
		total += d
	}
	return total
}

type blitCall struct {
	x, y int
	sr   image.Rectangle
}

// recordingCanvas draws into an ImageCanvas and remembers every call.
type recordingCanvas struct {
	*ImageCanvas
	blits []blitCall
	fills []image.Rectangle
}

func newRecordingCanvas(w, h int) *recordingCanvas {
	return &recordingCanvas{ImageCanvas: NewImageCanvas(w, h)}
}

func (c *recordingCanvas) FillRect(r image.Rectangle, col color.Color) {
	c.fills = append(c.fills, r)
	c.ImageCanvas.FillRect(r, col)
}

func (c *recordingCanvas) Blit(x, y int, src *Sprite, sr image.Rectangle) {
	c.blits = append(c.blits, blitCall{x: x, y: y, sr: sr})
	c.ImageCanvas.Blit(x, y, src, sr)
}

func (c *recordingCanvas) blitArea() int {
	n := 0
	for _, b := range c.blits {
		n += b.sr.Dx() * b.sr.Dy()
	}
	return n
}

func testAllocator() *Allocator {
	return NewAllocator(AllocatorConfig{InternalBytes: 8 << 20, ExternalBytes: 8 << 20})
}

// patternSprite returns a sprite where neighbouring pixels differ, so any
// misplaced copy shows up.
func patternSprite(t *testing.T, w, h int) *Sprite {
	t.Helper()
	s, err := testAllocator().Create(w, h)
	if err != nil {
		t.Fatalf("Create(%d, %d): %v", w, h, err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			s.Set(x, y, color.RGBA{R: uint8(x*3 + 1), G: uint8(y*5 + 2), B: uint8(x*7 + y*11), A: 0xff})
		}
	}
	return s
}

// assertShowsSprite fails unless the canvas footprint at (x, y) equals s.
func assertShowsSprite(t *testing.T, cv *ImageCanvas, s *Sprite, x, y int) {
	t.Helper()
	bad := 0
	for sy := 0; sy < s.Height(); sy++ {
		for sx := 0; sx < s.Width(); sx++ {
			got := cv.Image().RGBAAt(x+sx, y+sy)
			want := s.RGBAAt(sx, sy)
			if got != want {
				if bad < 5 {
					t.Errorf("pixel (%d,%d) = %v, want %v", sx, sy, got, want)
				}
				bad++
			}
		}
	}
	if bad > 0 {
		t.Fatalf("%d of %d pixels differ", bad, s.Width()*s.Height())
	}
}

// countShown returns how many footprint pixels currently equal the sprite.
func countShown(cv *ImageCanvas, s *Sprite, x, y int) int {
	n := 0
	for sy := 0; sy < s.Height(); sy++ {
		for sx := 0; sx < s.Width(); sx++ {
			if cv.Image().RGBAAt(x+sx, y+sy) == s.RGBAAt(sx, sy) {
				n++
			}
		}
	}
	return n
}

// assertFilled fails unless every footprint pixel equals c.
func assertFilled(t *testing.T, cv *ImageCanvas, r image.Rectangle, c Color) {
	t.Helper()
	want := c.toRGBA()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if got := cv.Image().RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func snapshot(cv *ImageCanvas) []byte {
	return bytes.Clone(cv.Image().Pix)
}

// overshoot jumps well past 1, then below 0, before settling.
var overshoot = NewEasing("overshoot", func(t, b, c, d float32) float32 {
	x := t / d
	switch {
	case x < 0.3:
		return b + c*1.7
	case x < 0.6:
		return b - c*0.5
	case x < 0.9:
		return b + c*1.2
	}
	return b + c*0.4
})

func testEngine(cv Canvas) (*Engine, *fakeClock) {
	clock := newFakeClock()
	return New(cv, Config{Clock: clock, Background: ColorWhite}), clock
}
