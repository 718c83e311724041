// Package spritefx reveals sprites onto small displays with paced, eased
// transitions.
//
// A [Sprite] is a fixed-size pixel buffer handed out by an [Allocator] that
// models the fast on-chip and large external memory pools of an embedded
// board. An [Engine] draws sprites onto a [Canvas], the narrow interface a
// display driver implements (fill a rectangle, copy a region of a sprite).
//
// # Quick start
//
//	alloc := spritefx.NewAllocator(spritefx.DefaultAllocatorConfig())
//	sprite, err := alloc.Create(200, 200)
//	if err != nil {
//		// not enough memory: skip this image
//	}
//	sprite.DrawImage(img)
//
//	canvas := spritefx.NewImageCanvas(240, 320)
//	engine := spritefx.New(canvas, spritefx.Config{Background: spritefx.ColorWhite})
//	bounce, _ := spritefx.ResolveEasing("easeOutBounce")
//	engine.SliceH(sprite, 20, 60, 8, time.Second, bounce)
//
// # Transitions
//
//   - [Engine.Stretch] wipes the sprite in one column or row at a time at
//     constant speed, in one of four directions. No easing.
//   - [Engine.SliceH] and [Engine.SliceV] split the sprite into bands that
//     slide in from alternating sides, all following the same easing.
//   - [Engine.SpinCenter] and [Engine.SpinAround] sweep a radial boundary
//     clockwise about a pivot, redrawing only the wedge that changed.
//
// Every call blocks until the sprite is fully visible. Easing functions may
// overshoot mid-animation; the final frame always shows the whole sprite.
//
// # Easing
//
// Easing curves come from [gween]. [Easings] lists the built-in table so a
// driver can cycle through all of them; [ResolveEasing] looks one up by name.
//
// # Demo playlists
//
// A [Playlist] (YAML) lists images and transition steps; a [Player] runs it
// one image at a time against an Engine. See examples/transitionfx for a
// desktop window that mirrors a 240×320 panel.
//
// [gween]: https://github.com/tanema/gween
package spritefx
