package spritefx

import (
	"fmt"
	"image"
	"time"
)

// Player walks a Playlist one image at a time. All sequencing state (which
// image is next, how many passes have been made) lives here rather than in
// package globals.
type Player struct {
	engine *Engine
	alloc  *Allocator
	pl     *Playlist

	// OnEasing is called before the steps of each easing pass with the
	// easing name.
	OnEasing func(name string)
	// OnStep is called after every finished transition.
	OnStep func(req Request, st Stats)

	index  int
	sprite *Sprite
	cache  map[string]image.Image
}

// NewPlayer prepares a player. The playlist is validated first.
func NewPlayer(engine *Engine, alloc *Allocator, pl *Playlist) (*Player, error) {
	p := &Player{engine: engine, alloc: alloc}
	if err := p.SetPlaylist(pl); err != nil {
		return nil, err
	}
	return p, nil
}

// SetPlaylist swaps the playlist, taking effect at the next call to Next.
// The image position wraps if the new list is shorter.
func (p *Player) SetPlaylist(pl *Playlist) error {
	if err := pl.Validate(); err != nil {
		return fmt.Errorf("playlist: %w", err)
	}
	p.pl = pl
	p.cache = make(map[string]image.Image)
	p.engine.SetBackground(pl.color(pl.Background, ColorWhite))
	if pl.FrameInterval > 0 {
		p.engine.SetFrameInterval(pl.FrameInterval)
	}
	p.alloc.SetPreferExternal(pl.PreferExternal)
	return nil
}

// Index returns how many images have been played so far.
func (p *Player) Index() int { return p.index }

// Sprite returns the sprite of the current image, or nil.
func (p *Player) Sprite() *Sprite { return p.sprite }

// Close releases the current sprite.
func (p *Player) Close() {
	p.alloc.Release(p.sprite)
	p.sprite = nil
}

// Next plays every step of the playlist on the next image. When the image
// cannot be loaded or its sprite cannot be allocated the image is skipped:
// the position still advances and the error is returned.
func (p *Player) Next() error {
	pl := p.pl
	n := len(pl.Images)
	spec := pl.Images[p.index%n]
	pass := p.index / n
	p.index++

	img, err := p.load(spec)
	if err != nil {
		return err
	}
	w, h := spec.Width, spec.Height
	if w <= 0 || h <= 0 {
		w, h = img.Bounds().Dx(), img.Bounds().Dy()
	}
	p.sprite, err = p.alloc.Replace(p.sprite, w, h)
	if err != nil {
		return fmt.Errorf("image %s: %w", spec.Name, err)
	}
	p.sprite.DrawImage(img)

	cv := p.engine.Canvas()
	cb := cv.Bounds()
	x := cb.Min.X + cb.Dx()/2 - w/2
	y := cb.Min.Y + cb.Dy()/2 - h/2
	zone := image.Rect(x, y, x+w, y+h)

	cv.FillRect(zone, pl.color(pl.Highlight, ColorWhite))
	StrokeRect(cv, zone.Inset(-1), pl.color(pl.Frame, ColorRed))

	fast := pl.AlternateStretch && pass%2 == 0
	var perEasing []StepSpec
	for _, st := range pl.Steps {
		kind, _ := ParseKind(st.Kind)
		if kind.eased() && st.Easing == "" {
			perEasing = append(perEasing, st)
			continue
		}
		var ease Easing
		if st.Easing != "" {
			ease, _ = ResolveEasing(st.Easing)
		}
		if err := p.play(st, ease, x, y, fast); err != nil {
			return err
		}
	}

	if len(perEasing) > 0 {
		easings, _ := pl.easings()
		for _, ease := range easings {
			if p.OnEasing != nil {
				p.OnEasing(ease.Name)
			}
			for _, st := range perEasing {
				if err := p.play(st, ease, x, y, fast); err != nil {
					return err
				}
			}
		}
	}

	cv.FillRect(zone.Inset(-1), pl.color(pl.Clear, ColorBlack))
	return nil
}

func (p *Player) play(st StepSpec, ease Easing, x, y int, fast bool) error {
	req, err := st.request(ease)
	if err != nil {
		return err
	}
	req.X, req.Y = x, y
	if req.Kind == KindStretch {
		switch {
		case fast:
			req.Duration = time.Nanosecond
		case st.PerUnit > 0:
			req.Duration = st.PerUnit * time.Duration(extentOf(p.sprite, req.Direction))
		}
	}
	if err := p.engine.Run(p.sprite, req); err != nil {
		return err
	}
	if p.OnStep != nil {
		p.OnStep(req, p.engine.LastStats())
	}
	if st.Pause > 0 {
		p.engine.Clock().Sleep(st.Pause)
	}
	return nil
}

func (p *Player) load(spec ImageSpec) (image.Image, error) {
	key := spec.Path
	if key == "" {
		key = fmt.Sprintf("%s:%dx%d", spec.Generate, spec.Width, spec.Height)
	}
	if img, ok := p.cache[key]; ok {
		return img, nil
	}
	var img image.Image
	switch spec.Generate {
	case "palette":
		img = Palette(spec.Width, spec.Height)
	case "checker":
		img = Checker(spec.Width, spec.Height, 20, ColorBlack, ColorWhite)
	default:
		var err error
		if img, err = LoadImage(spec.Path); err != nil {
			return nil, fmt.Errorf("image %s: %w", spec.Name, err)
		}
	}
	p.cache[key] = img
	return img, nil
}
