package spritefx

import "time"

// DefaultFrameInterval is the minimum spacing between eased frames.
const DefaultFrameInterval = 16 * time.Millisecond

// pacer calls a render function at a steady frame rate for a fixed
// duration, handing it the elapsed time.
type pacer struct {
	clock    Clock
	interval time.Duration
}

// pace blocks for about d, calling render with the elapsed time.
// render(0) is always the first call and render(d) the last; every call in
// between receives a value strictly inside (0, d). A render that runs long
// delays the next tick instead of skipping it. It returns the number of
// render calls and the total time slept.
func (p pacer) pace(d time.Duration, render func(elapsed time.Duration)) (frames int, slept time.Duration) {
	start := p.clock.Now()
	render(0)
	frames++

	last := start
	for {
		if wait := p.interval - p.clock.Now().Sub(last); wait > 0 {
			p.clock.Sleep(wait)
			slept += wait
		}
		last = p.clock.Now()
		elapsed := last.Sub(start)
		if elapsed >= d {
			break
		}
		if elapsed <= 0 {
			// Clock did not advance; still make progress toward the deadline.
			continue
		}
		render(elapsed)
		frames++
	}

	render(d)
	frames++
	return frames, slept
}
