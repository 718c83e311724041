package spritefx

import (
	"fmt"
	"image"
)

// AllocatorConfig sizes the two sprite memory pools.
type AllocatorConfig struct {
	// InternalBytes is the budget of fast on-chip memory.
	InternalBytes int
	// ExternalBytes is the budget of external memory (PSRAM).
	ExternalBytes int
	// PreferExternal tries the external pool first. The other pool is still
	// used as a fallback.
	PreferExternal bool
}

// DefaultAllocatorConfig returns budgets for an ESP32-class part with PSRAM.
func DefaultAllocatorConfig() AllocatorConfig {
	return AllocatorConfig{
		InternalBytes: 320 << 10,
		ExternalBytes: 4 << 20,
	}
}

// Usage reports the bytes currently held by live sprites per pool.
type Usage struct {
	Internal, External int
}

// Allocator hands out sprites against fixed memory budgets. It is not safe
// for concurrent use; the owning application drives it from one goroutine.
type Allocator struct {
	cfg  AllocatorConfig
	used [2]int
}

// NewAllocator creates an allocator with the given budgets.
func NewAllocator(cfg AllocatorConfig) *Allocator {
	return &Allocator{cfg: cfg}
}

// SetPreferExternal changes which pool is tried first for new sprites.
func (a *Allocator) SetPreferExternal(v bool) {
	a.cfg.PreferExternal = v
}

func (a *Allocator) capacity(m Memory) int {
	if m == MemoryExternal {
		return a.cfg.ExternalBytes
	}
	return a.cfg.InternalBytes
}

// Create allocates a w×h sprite cleared to transparent black. It fails with
// ErrInvalidParameter for non-positive dimensions and with ErrAllocation
// when neither pool can hold the pixels; in both cases nothing is reserved.
func (a *Allocator) Create(w, h int) (*Sprite, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("create sprite %dx%d: %w", w, h, ErrInvalidParameter)
	}
	size := w * h * BytesPerPixel
	if size/h/BytesPerPixel != w {
		return nil, fmt.Errorf("create sprite %dx%d: size overflows: %w", w, h, ErrAllocation)
	}

	order := [2]Memory{MemoryInternal, MemoryExternal}
	if a.cfg.PreferExternal {
		order = [2]Memory{MemoryExternal, MemoryInternal}
	}
	for _, m := range order {
		if a.used[m]+size > a.capacity(m) {
			continue
		}
		a.used[m] += size
		return &Sprite{
			img: image.NewRGBA(image.Rect(0, 0, w, h)),
			mem: m,
		}, nil
	}
	return nil, fmt.Errorf("create sprite %dx%d (%d bytes): %w", w, h, size, ErrAllocation)
}

// Release returns the sprite's storage to its pool. Releasing nil or an
// already released sprite does nothing.
func (a *Allocator) Release(s *Sprite) {
	if s.Released() {
		return
	}
	a.used[s.mem] -= s.byteSize()
	s.released = true
	s.img = &image.RGBA{Rect: s.img.Rect}
}

// Replace releases old (if any) and creates a new w×h sprite in its place.
// On failure old is still released and nil is returned.
func (a *Allocator) Replace(old *Sprite, w, h int) (*Sprite, error) {
	a.Release(old)
	return a.Create(w, h)
}

// Usage returns the current per-pool byte usage.
func (a *Allocator) Usage() Usage {
	return Usage{Internal: a.used[MemoryInternal], External: a.used[MemoryExternal]}
}
