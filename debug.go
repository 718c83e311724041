package spritefx

import (
	"fmt"
	"os"
)

// debugLog prints the stats of a finished transition to stderr.
func (e *Engine) debugLog(req Request, st Stats) {
	if !e.cfg.Debug {
		return
	}
	name := "-"
	if req.Kind.eased() {
		name = req.Easing.Name
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[spritefx] %s easing=%s at (%d,%d) duration=%v | frames: %d | blits: %d | fills: %d | elapsed: %v | slept: %v\n",
		st.Kind, name, req.X, req.Y, req.Duration, st.Frames, st.Blits, st.Fills, st.Elapsed, st.Slept)
	if over := st.Elapsed - req.Duration; over > req.Duration/10 && over > e.cfg.FrameInterval {
		_, _ = fmt.Fprintf(os.Stderr, "[spritefx] warning: %s ran %v over its %v budget\n",
			st.Kind, over, req.Duration)
	}
}
