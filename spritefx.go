package spritefx

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

var (
	// ErrInvalidParameter is returned when a transition or sprite request is
	// rejected at the API boundary (non-positive duration, negative band count,
	// unknown kind or direction, missing easing, non-positive dimensions).
	ErrInvalidParameter = errors.New("spritefx: invalid parameter")

	// ErrAllocation is returned when no memory pool can hold a sprite of the
	// requested size. No sprite is created.
	ErrAllocation = errors.New("spritefx: sprite allocation failed")

	// ErrEasingNotFound is returned by ResolveEasing for unknown names.
	ErrEasingNotFound = errors.New("spritefx: easing not found")

	// ErrSpriteReleased is returned when a transition is requested for a nil
	// or already released sprite.
	ErrSpriteReleased = errors.New("spritefx: sprite released")
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

var (
	ColorBlack = Color{0, 0, 0, 1}
	ColorWhite = Color{1, 1, 1, 1}
	ColorRed   = Color{1, 0, 0, 1}
)

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.toRGBA().RGBA()
}

// toRGBA converts to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A)*255 + 0.5),
		G: uint8(clamp01(c.G*c.A)*255 + 0.5),
		B: uint8(clamp01(c.B*c.A)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// ParseColor accepts "#rrggbb" / "#rgb" hex strings or an SVG color name
// ("white", "red", ...). The result is always opaque.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Color{}, fmt.Errorf("parse color: empty string: %w", ErrInvalidParameter)
	}
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(expandShortHex(s))
		if err != nil {
			return Color{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		c = c.Clamped()
		return Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
	}
	named, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return Color{}, fmt.Errorf("parse color %q: unknown name: %w", s, ErrInvalidParameter)
	}
	return Color{R: float64(named.R) / 255, G: float64(named.G) / 255, B: float64(named.B) / 255, A: 1}, nil
}

// expandShortHex turns "#abc" into "#aabbcc"; other strings pass through.
func expandShortHex(s string) string {
	if len(s) != 4 {
		return s
	}
	return string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// Direction selects the sweep of a stretch transition.
type Direction uint8

const (
	LeftToRight Direction = iota // columns revealed from the left edge
	RightToLeft                  // columns revealed from the right edge
	TopToBottom                  // rows revealed from the top edge
	BottomToTop                  // rows revealed from the bottom edge
)

var directionNames = [...]string{"ltr", "rtl", "ttb", "btt"}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// ParseDirection accepts "ltr", "rtl", "ttb", "btt" and the long forms
// "left-to-right", "right-to-left", "top-to-bottom", "bottom-to-top".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ltr", "left-to-right":
		return LeftToRight, nil
	case "rtl", "right-to-left":
		return RightToLeft, nil
	case "ttb", "top-to-bottom":
		return TopToBottom, nil
	case "btt", "bottom-to-top":
		return BottomToTop, nil
	}
	return 0, fmt.Errorf("parse direction %q: %w", s, ErrInvalidParameter)
}

func (d Direction) valid() bool {
	return d <= BottomToTop
}
