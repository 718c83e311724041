package spritefx

import (
	"image"
	"testing"
)

func TestImageCanvasFillRectClips(t *testing.T) {
	cv := NewImageCanvas(10, 10)
	cv.FillRect(image.Rect(-5, -5, 3, 3), ColorRed)
	if got := cv.Image().RGBAAt(2, 2); got != ColorRed.toRGBA() {
		t.Errorf("pixel (2,2) = %v, want red", got)
	}
	if got := cv.Image().RGBAAt(3, 3); got == ColorRed.toRGBA() {
		t.Error("pixel (3,3) should be outside the fill")
	}
}

func TestImageCanvasBlitRegion(t *testing.T) {
	cv := NewImageCanvas(10, 10)
	s := patternSprite(t, 6, 6)
	cv.Blit(1, 2, s, image.Rect(2, 3, 5, 4))

	for x := 0; x < 3; x++ {
		if got, want := cv.Image().RGBAAt(1+x, 2), s.RGBAAt(2+x, 3); got != want {
			t.Errorf("pixel (%d,2) = %v, want %v", 1+x, got, want)
		}
	}
	if got := cv.Image().RGBAAt(1, 3); got.A != 0 {
		t.Errorf("pixel (1,3) = %v, want untouched", got)
	}
}

func TestImageCanvasBlitOffscreen(t *testing.T) {
	cv := NewImageCanvas(10, 10)
	s := patternSprite(t, 6, 6)
	cv.Blit(-3, 7, s, s.Bounds())

	// Sprite (3,0) lands on canvas (0,7); rows past the bottom are dropped.
	if got, want := cv.Image().RGBAAt(0, 7), s.RGBAAt(3, 0); got != want {
		t.Errorf("pixel (0,7) = %v, want %v", got, want)
	}
	if got, want := cv.Image().RGBAAt(2, 9), s.RGBAAt(5, 2); got != want {
		t.Errorf("pixel (2,9) = %v, want %v", got, want)
	}
}

func TestStrokeRect(t *testing.T) {
	cv := newRecordingCanvas(10, 10)
	StrokeRect(cv, image.Rect(1, 1, 6, 5), ColorRed)
	if len(cv.fills) != 4 {
		t.Fatalf("fills = %d, want 4", len(cv.fills))
	}
	red := ColorRed.toRGBA()
	for _, p := range []image.Point{{1, 1}, {5, 1}, {1, 4}, {5, 4}, {3, 1}, {3, 4}} {
		if got := cv.Image().RGBAAt(p.X, p.Y); got != red {
			t.Errorf("pixel %v = %v, want red", p, got)
		}
	}
	if got := cv.Image().RGBAAt(3, 2); got == red {
		t.Error("interior pixel painted")
	}
}
