package spritefx

import (
	"fmt"
	"image"
	"image/color"
	"time"
)

// Config controls an Engine. Zero values select the defaults.
type Config struct {
	// FrameInterval is the minimum spacing between eased frames.
	// Defaults to DefaultFrameInterval.
	FrameInterval time.Duration
	// Background fills parts of the sprite footprint that are hidden.
	// The zero Color is transparent black.
	Background Color
	// KeepCanvas skips clearing the sprite footprint before a transition,
	// so the new content is revealed over whatever was there.
	KeepCanvas bool
	// Clock paces the transitions. Defaults to SystemClock.
	Clock Clock
	// Debug prints per-transition stats to stderr.
	Debug bool
}

// Stats describes the last completed transition.
type Stats struct {
	Kind    Kind
	Frames  int
	Blits   int
	Fills   int
	Elapsed time.Duration
	Slept   time.Duration
}

// Engine runs one transition at a time against a Canvas. Every call blocks
// until the transition has drawn its final frame; the engine does no locking
// and must be driven from a single goroutine.
type Engine struct {
	canvas Canvas
	cfg    Config
	pacer  pacer
	stats  Stats
}

// New creates an engine drawing onto canvas.
func New(canvas Canvas, cfg Config) *Engine {
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = DefaultFrameInterval
	}
	if cfg.Clock == nil {
		cfg.Clock = SystemClock{}
	}
	return &Engine{
		canvas: canvas,
		cfg:    cfg,
		pacer:  pacer{clock: cfg.Clock, interval: cfg.FrameInterval},
	}
}

// Canvas returns the surface the engine draws on.
func (e *Engine) Canvas() Canvas { return e.canvas }

// Clock returns the clock pacing the engine.
func (e *Engine) Clock() Clock { return e.cfg.Clock }

// Background returns the configured background color.
func (e *Engine) Background() Color { return e.cfg.Background }

// SetBackground changes the color used for hidden pixels.
func (e *Engine) SetBackground(c Color) { e.cfg.Background = c }

// SetFrameInterval changes the minimum spacing between eased frames.
// Non-positive values restore DefaultFrameInterval.
func (e *Engine) SetFrameInterval(d time.Duration) {
	if d <= 0 {
		d = DefaultFrameInterval
	}
	e.cfg.FrameInterval = d
	e.pacer.interval = d
}

// LastStats returns the stats of the most recent completed transition.
func (e *Engine) LastStats() Stats { return e.stats }

// Stretch reveals s column by column or row by row at constant speed.
func (e *Engine) Stretch(s *Sprite, x, y int, dir Direction, d time.Duration) error {
	return e.Run(s, Request{Kind: KindStretch, X: x, Y: y, Direction: dir, Duration: d})
}

// SliceH reveals s as horizontal bands sliding in from alternating sides.
func (e *Engine) SliceH(s *Sprite, x, y, bands int, d time.Duration, ease Easing) error {
	return e.Run(s, Request{Kind: KindSliceH, X: x, Y: y, Bands: bands, Duration: d, Easing: ease})
}

// SliceV reveals s as vertical bands sliding in from alternating ends.
func (e *Engine) SliceV(s *Sprite, x, y, bands int, d time.Duration, ease Easing) error {
	return e.Run(s, Request{Kind: KindSliceV, X: x, Y: y, Bands: bands, Duration: d, Easing: ease})
}

// SpinCenter sweeps s into view clockwise about its centre.
func (e *Engine) SpinCenter(s *Sprite, x, y int, d time.Duration, ease Easing) error {
	return e.Run(s, Request{Kind: KindSpinCenter, X: x, Y: y, Duration: d, Easing: ease})
}

// SpinAround sweeps s into view clockwise about pivot, given in sprite
// coordinates.
func (e *Engine) SpinAround(s *Sprite, x, y int, pivot image.Point, d time.Duration, ease Easing) error {
	return e.Run(s, Request{Kind: KindSpinAround, X: x, Y: y, Pivot: pivot, Duration: d, Easing: ease})
}

// Run validates req and runs it to completion. Rejected requests leave the
// canvas untouched.
func (e *Engine) Run(s *Sprite, req Request) error {
	if s.Released() {
		return fmt.Errorf("%s: %w", req.Kind, ErrSpriteReleased)
	}
	if err := req.Validate(); err != nil {
		return err
	}

	start := e.cfg.Clock.Now()
	t := &target{canvas: e.canvas, x: req.X, y: req.Y, bg: e.cfg.Background}
	if !e.cfg.KeepCanvas {
		t.hide(s.Bounds())
	}

	st := Stats{Kind: req.Kind}
	switch req.Kind {
	case KindStretch:
		st.Slept = e.stretch(t, s, req.Direction, req.Duration)
		st.Frames = extentOf(s, req.Direction)
	case KindSliceH, KindSliceV:
		sl := newSlicer(t, s, req.Kind == KindSliceH, req.Bands)
		tw := req.Easing.tween(req.Duration)
		st.Frames, st.Slept = e.pacer.pace(req.Duration, func(elapsed time.Duration) {
			p, _ := tw.Set(float32(elapsed.Seconds()))
			sl.render(float64(p))
		})
	case KindSpinCenter, KindSpinAround:
		px, py := float64(s.Width())/2, float64(s.Height())/2
		if req.Kind == KindSpinAround {
			px, py = float64(req.Pivot.X), float64(req.Pivot.Y)
		}
		sp := newSpinner(t, s, px, py)
		tw := req.Easing.tween(req.Duration)
		st.Frames, st.Slept = e.pacer.pace(req.Duration, func(elapsed time.Duration) {
			p, _ := tw.Set(float32(elapsed.Seconds()))
			sp.render(float64(p))
		})
	}
	st.Blits, st.Fills = t.blits, t.fills
	st.Elapsed = e.cfg.Clock.Now().Sub(start)
	e.stats = st
	e.debugLog(req, st)
	return nil
}

// target is the sprite footprint on the canvas. Coordinates passed to its
// methods are sprite-relative.
type target struct {
	canvas Canvas
	x, y   int
	bg     color.Color
	blits  int
	fills  int
}

func (t *target) show(r image.Rectangle, s *Sprite) {
	t.showAt(r.Min, r, s)
}

// showAt copies the sr region of s so that it lands at dst.
func (t *target) showAt(dst image.Point, sr image.Rectangle, s *Sprite) {
	if sr.Empty() {
		return
	}
	t.canvas.Blit(t.x+dst.X, t.y+dst.Y, s, sr)
	t.blits++
}

func (t *target) hide(r image.Rectangle) {
	if r.Empty() {
		return
	}
	t.canvas.FillRect(r.Add(image.Pt(t.x, t.y)), t.bg)
	t.fills++
}
