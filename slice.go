package spritefx

import (
	"image"
	"math"
)

// Band is a half-open range [Start, End) along the slicing axis.
type Band struct {
	Start, End int
}

// Len returns the number of pixels in the band.
func (b Band) Len() int { return b.End - b.Start }

// Bands splits [0, extent) into count contiguous bands of extent/count
// pixels each; the last band also takes the remainder. A count of 0 or 1
// yields a single band and a count above extent is lowered to extent.
func Bands(extent, count int) []Band {
	if extent <= 0 {
		return nil
	}
	if count < 1 {
		count = 1
	}
	if count > extent {
		count = extent
	}
	size := extent / count
	out := make([]Band, count)
	for i := range out {
		out[i] = Band{Start: i * size, End: (i + 1) * size}
	}
	out[count-1].End = extent
	return out
}

// slicer draws the comb reveal. For SliceH the bands are row ranges and
// slide horizontally; for SliceV they are column ranges and slide
// vertically. Even bands enter from the left/top, odd bands from the
// right/bottom. All bands share the same eased progress.
type slicer struct {
	t          *target
	s          *Sprite
	horizontal bool
	bands      []Band
	span       int // sliding distance: sprite width for SliceH, height for SliceV
	shown      []int
}

func newSlicer(t *target, s *Sprite, horizontal bool, count int) *slicer {
	extent, span := s.Width(), s.Height()
	if horizontal {
		extent, span = s.Height(), s.Width()
	}
	bands := Bands(extent, count)
	return &slicer{
		t:          t,
		s:          s,
		horizontal: horizontal,
		bands:      bands,
		span:       span,
		shown:      make([]int, len(bands)),
	}
}

// revealed converts progress into the visible length of each band.
// Overshoot is clamped so a band never slides past its slot.
func (sl *slicer) revealed(p float64) int {
	if p >= 1 {
		return sl.span
	}
	n := int(math.Round(clamp01(p) * float64(sl.span)))
	if n > sl.span {
		n = sl.span
	}
	return n
}

func (sl *slicer) render(p float64) {
	n := sl.revealed(p)
	for i, b := range sl.bands {
		prev := sl.shown[i]
		if n == prev {
			continue
		}
		leading := i%2 == 0
		if n > 0 {
			// Band content is offset by the unrevealed distance, so the
			// whole visible part moves each frame.
			sl.showBand(b, n, leading)
		}
		if n < prev {
			sl.hideBand(b, n, prev, leading)
		}
		sl.shown[i] = n
	}
}

// showBand draws the n pixels of band b that have slid into view.
func (sl *slicer) showBand(b Band, n int, leading bool) {
	// Along the sliding axis the visible slot is [0, n) from the leading
	// edge showing sprite [span-n, span), or [span-n, span) from the
	// trailing edge showing sprite [0, n).
	dst, src := 0, sl.span-n
	if !leading {
		dst, src = sl.span-n, 0
	}
	if sl.horizontal {
		sl.t.showAt(image.Pt(dst, b.Start), image.Rect(src, b.Start, src+n, b.End), sl.s)
	} else {
		sl.t.showAt(image.Pt(b.Start, dst), image.Rect(b.Start, src, b.End, src+n), sl.s)
	}
}

// hideBand clears the part of band b that was visible at prev but not at n.
func (sl *slicer) hideBand(b Band, n, prev int, leading bool) {
	lo, hi := n, prev
	if !leading {
		lo, hi = sl.span-prev, sl.span-n
	}
	if sl.horizontal {
		sl.t.hide(image.Rect(lo, b.Start, hi, b.End))
	} else {
		sl.t.hide(image.Rect(b.Start, lo, b.End, hi))
	}
}
