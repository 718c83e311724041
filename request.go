package spritefx

import (
	"fmt"
	"image"
	"strings"
	"time"
)

// Kind selects a transition algorithm.
type Kind uint8

const (
	KindStretch    Kind = iota // constant-velocity directional wipe
	KindSliceH                 // horizontal bands sliding in from the sides
	KindSliceV                 // vertical bands sliding in from top and bottom
	KindSpinCenter             // radial sweep about the sprite centre
	KindSpinAround             // radial sweep about an arbitrary pivot
)

var kindNames = [...]string{"stretch", "slice-h", "slice-v", "spin-center", "spin-around"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind accepts the names produced by Kind.String.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range kindNames {
		if n == s {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("parse kind %q: %w", s, ErrInvalidParameter)
}

func (k Kind) eased() bool {
	return k != KindStretch
}

// Request describes one transition.
type Request struct {
	Kind Kind
	// X and Y place the sprite's top-left corner on the canvas.
	X, Y int
	// Duration is the total wall-clock time of the transition.
	Duration time.Duration
	// Direction is used by KindStretch.
	Direction Direction
	// Bands is used by the slice kinds. 0 and 1 both mean a single band.
	Bands int
	// Pivot is used by KindSpinAround, in sprite coordinates. It may lie
	// outside the sprite.
	Pivot image.Point
	// Easing shapes slice and spin progress. Stretch ignores it.
	Easing Easing
}

// Validate rejects requests that cannot run.
func (r Request) Validate() error {
	if r.Duration <= 0 {
		return fmt.Errorf("%s: duration %v: %w", r.Kind, r.Duration, ErrInvalidParameter)
	}
	switch r.Kind {
	case KindStretch:
		if !r.Direction.valid() {
			return fmt.Errorf("%s: %v: %w", r.Kind, r.Direction, ErrInvalidParameter)
		}
	case KindSliceH, KindSliceV:
		if r.Bands < 0 {
			return fmt.Errorf("%s: band count %d: %w", r.Kind, r.Bands, ErrInvalidParameter)
		}
	case KindSpinCenter, KindSpinAround:
	default:
		return fmt.Errorf("unknown transition %v: %w", r.Kind, ErrInvalidParameter)
	}
	if r.Kind.eased() && !r.Easing.Valid() {
		return fmt.Errorf("%s: missing easing: %w", r.Kind, ErrInvalidParameter)
	}
	return nil
}
