package spritefx

import (
	"image"
	"math"
)

// spinner reveals the sprite by sweeping a radial boundary clockwise about a
// pivot. Each pixel has a key in [0, 1]: the fraction of the sweep after
// which it becomes visible. Keys are recomputed from the geometry on every
// frame, so a spin needs no per-pixel storage beyond the sprite itself.
// Frames only touch pixels whose visibility changed since the previous
// frame.
//
// A pivot strictly inside the sprite sweeps a full turn starting at
// 12 o'clock. A pivot on or outside the edge sweeps just the angle the
// sprite covers as seen from the pivot.
type spinner struct {
	t      *target
	s      *Sprite
	px, py float64
	inside bool
	// ref, lo and spread normalize angles for pivots outside the sprite.
	ref, lo, spread float64
	last            float64
}

func newSpinner(t *target, s *Sprite, px, py float64) *spinner {
	w, h := s.Width(), s.Height()
	sp := &spinner{
		t:      t,
		s:      s,
		px:     px,
		py:     py,
		inside: px > 0 && py > 0 && px < float64(w) && py < float64(h),
	}
	if sp.inside {
		return sp
	}

	// Measure angles relative to the direction of the sprite centre so the
	// sprite never straddles the ±π seam.
	sp.ref = math.Atan2(float64(h)/2-py, float64(w)/2-px)
	lo, hi := math.Inf(1), math.Inf(-1)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := sp.angle(x, y)
			lo = math.Min(lo, a)
			hi = math.Max(hi, a)
		}
	}
	sp.lo, sp.spread = lo, hi-lo
	return sp
}

// angle is the direction of pixel (x, y) from an outside pivot, relative to
// the sprite centre.
func (sp *spinner) angle(x, y int) float64 {
	return wrapAngle(math.Atan2(float64(y)+0.5-sp.py, float64(x)+0.5-sp.px) - sp.ref)
}

func (sp *spinner) key(x, y int) float64 {
	if sp.inside {
		return clockAngle(float64(x)+0.5-sp.px, float64(y)+0.5-sp.py) / (2 * math.Pi)
	}
	if sp.spread <= 0 {
		return 0
	}
	return (sp.angle(x, y) - sp.lo) / sp.spread
}

// clockAngle is the clockwise angle of (dx, dy) from straight up, in
// [0, 2π). Screen y grows downward.
func clockAngle(dx, dy float64) float64 {
	a := math.Atan2(dx, -dy)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// wrapAngle maps a into (-π, π].
func wrapAngle(a float64) float64 {
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

func visible(key, p float64) bool {
	return p >= 1 || key < p
}

func (sp *spinner) render(p float64) {
	if p == sp.last {
		return
	}
	prev := sp.last
	sp.last = p

	w, h := sp.s.Width(), sp.s.Height()
	for y := 0; y < h; y++ {
		x := 0
		for x < w {
			k := sp.key(x, y)
			was, is := visible(k, prev), visible(k, p)
			if was == is {
				x++
				continue
			}
			start := x
			for x++; x < w; x++ {
				k = sp.key(x, y)
				if visible(k, prev) != was || visible(k, p) != is {
					break
				}
			}
			r := image.Rect(start, y, x, y+1)
			if is {
				sp.t.show(r, sp.s)
			} else {
				sp.t.hide(r)
			}
		}
	}
}
