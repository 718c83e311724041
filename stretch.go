package spritefx

import (
	"image"
	"time"
)

// stretch reveals one column (LTR/RTL) or row (TTB/BTT) per step and sleeps
// d/extent after each one. The quantum may round down to zero; every unit is
// still drawn exactly once. It returns the total time slept.
func (e *Engine) stretch(t *target, s *Sprite, dir Direction, d time.Duration) time.Duration {
	n := extentOf(s, dir)
	quantum := d / time.Duration(n)
	w, h := s.Width(), s.Height()

	var slept time.Duration
	for i := 0; i < n; i++ {
		var r image.Rectangle
		switch dir {
		case LeftToRight:
			r = image.Rect(i, 0, i+1, h)
		case RightToLeft:
			r = image.Rect(w-1-i, 0, w-i, h)
		case TopToBottom:
			r = image.Rect(0, i, w, i+1)
		case BottomToTop:
			r = image.Rect(0, h-1-i, w, h-i)
		}
		t.show(r, s)
		if quantum > 0 {
			e.cfg.Clock.Sleep(quantum)
			slept += quantum
		}
	}
	return slept
}

// extentOf is the number of stretch steps for dir.
func extentOf(s *Sprite, dir Direction) int {
	if dir == TopToBottom || dir == BottomToTop {
		return s.Height()
	}
	return s.Width()
}
