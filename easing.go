package spritefx

import (
	"fmt"
	"strings"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Easing is a named mapping from normalized elapsed time to normalized
// progress. Values outside [0, 1] (elastic, back, bounce overshoot) are
// returned unchanged. Easing values are immutable and safe to share.
type Easing struct {
	Name string
	fn   ease.TweenFunc
}

// NewEasing wraps a gween tween function under the given name.
func NewEasing(name string, fn ease.TweenFunc) Easing {
	return Easing{Name: name, fn: fn}
}

// At evaluates the easing at normalized time t.
func (e Easing) At(t float64) float64 {
	return float64(e.fn(float32(t), 0, 1, 1))
}

// Valid reports whether the easing has a function attached.
func (e Easing) Valid() bool {
	return e.fn != nil
}

func (e Easing) String() string {
	return e.Name
}

// tween returns a gween tween from 0 to 1 over d. Set pins the endpoints:
// at or before zero it reports 0, at or after d it reports exactly 1.
func (e Easing) tween(d time.Duration) *gween.Tween {
	return gween.New(0, 1, float32(d.Seconds()), e.fn)
}

var easingTable = []Easing{
	{"Linear", ease.Linear},
	{"InQuad", ease.InQuad},
	{"OutQuad", ease.OutQuad},
	{"InOutQuad", ease.InOutQuad},
	{"InCubic", ease.InCubic},
	{"OutCubic", ease.OutCubic},
	{"InOutCubic", ease.InOutCubic},
	{"InQuart", ease.InQuart},
	{"OutQuart", ease.OutQuart},
	{"InOutQuart", ease.InOutQuart},
	{"InQuint", ease.InQuint},
	{"OutQuint", ease.OutQuint},
	{"InOutQuint", ease.InOutQuint},
	{"InSine", ease.InSine},
	{"OutSine", ease.OutSine},
	{"InOutSine", ease.InOutSine},
	{"InExpo", ease.InExpo},
	{"OutExpo", ease.OutExpo},
	{"InOutExpo", ease.InOutExpo},
	{"InCirc", ease.InCirc},
	{"OutCirc", ease.OutCirc},
	{"InOutCirc", ease.InOutCirc},
	{"InElastic", ease.InElastic},
	{"OutElastic", ease.OutElastic},
	{"InOutElastic", ease.InOutElastic},
	{"InBack", ease.InBack},
	{"OutBack", ease.OutBack},
	{"InOutBack", ease.InOutBack},
	{"InBounce", ease.InBounce},
	{"OutBounce", ease.OutBounce},
	{"InOutBounce", ease.InOutBounce},
}

// easingIndex is keyed by the lowercased name without any "ease" prefix.
var easingIndex = func() map[string]int {
	m := make(map[string]int, len(easingTable))
	for i, e := range easingTable {
		m[easingKey(e.Name)] = i
	}
	return m
}()

func easingKey(name string) string {
	k := strings.ToLower(strings.TrimSpace(name))
	if k != "ease" {
		k = strings.TrimPrefix(k, "ease")
	}
	return k
}

// Easings returns the built-in easing table in a stable order. The returned
// slice is a copy.
func Easings() []Easing {
	out := make([]Easing, len(easingTable))
	copy(out, easingTable)
	return out
}

// ResolveEasing looks up a built-in easing. Matching ignores case and an
// optional "ease" prefix, so "OutBounce", "outbounce" and "easeOutBounce"
// all resolve to the same function.
func ResolveEasing(name string) (Easing, error) {
	i, ok := easingIndex[easingKey(name)]
	if !ok {
		return Easing{}, fmt.Errorf("resolve %q: %w", name, ErrEasingNotFound)
	}
	return easingTable[i], nil
}
