package spritefx

import (
	"fmt"
	"image"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ImageSpec names one picture in a playlist. Either Path or Generate must
// be set. Width and Height size the sprite; when zero they come from the
// decoded image.
type ImageSpec struct {
	Name     string `yaml:"name"`
	Path     string `yaml:"path,omitempty"`
	Generate string `yaml:"generate,omitempty"` // "palette" or "checker"
	Width    int    `yaml:"width,omitempty"`
	Height   int    `yaml:"height,omitempty"`
}

// StepSpec is one transition in a playlist cycle. Eased steps without an
// Easing run once for every easing in Playlist.Easings.
type StepSpec struct {
	Kind      string        `yaml:"kind"`
	Direction string        `yaml:"direction,omitempty"`
	Bands     int           `yaml:"bands,omitempty"`
	Duration  time.Duration `yaml:"duration,omitempty"`
	// PerUnit times a stretch by the sprite size instead: the transition
	// lasts PerUnit for every column or row revealed.
	PerUnit time.Duration `yaml:"per_unit,omitempty"`
	Easing    string        `yaml:"easing,omitempty"`
	Pivot     []int         `yaml:"pivot,omitempty"`
	Pause     time.Duration `yaml:"pause,omitempty"`
}

// Playlist is the demo description: which images to cycle and which
// transitions to run on each.
type Playlist struct {
	Background    string        `yaml:"background"`
	Highlight     string        `yaml:"highlight"`
	Frame         string        `yaml:"frame"`
	Clear         string        `yaml:"clear"`
	FrameInterval time.Duration `yaml:"frame_interval,omitempty"`
	// PreferExternal places sprites in external memory first.
	PreferExternal bool `yaml:"prefer_external,omitempty"`
	// AlternateStretch runs stretch steps at full speed on every other pass
	// over the image list, starting with the first.
	AlternateStretch bool        `yaml:"alternate_stretch,omitempty"`
	Images           []ImageSpec `yaml:"images"`
	Easings          []string    `yaml:"easings"`
	Steps            []StepSpec  `yaml:"steps"`
}

// DefaultPlaylist mirrors the stock demo: four generated images, the four
// stretch directions at 8ms per column or row, then spins and
// 0/4/8/16/255-band slices per easing.
func DefaultPlaylist() *Playlist {
	pl := &Playlist{
		Background:       "#ffffff",
		Highlight:        "#ffffff",
		Frame:            "#ff0000",
		Clear:            "#000000",
		FrameInterval:    DefaultFrameInterval,
		AlternateStretch: true,
		Images: []ImageSpec{
			{Name: "palette1", Generate: "palette", Width: 300, Height: 128},
			{Name: "palette2", Generate: "palette", Width: 128, Height: 200},
			{Name: "checker", Generate: "checker", Width: 200, Height: 200},
			{Name: "logo", Generate: "palette", Width: 201, Height: 197},
		},
		Easings: []string{"easeOutBounce", "easeOutElastic"},
	}
	for _, dir := range []string{"rtl", "btt", "ltr", "ttb"} {
		pl.Steps = append(pl.Steps, StepSpec{Kind: "stretch", Direction: dir, PerUnit: 8 * time.Millisecond})
	}
	pl.Steps = append(pl.Steps,
		StepSpec{Kind: "spin-center", Duration: time.Second},
		StepSpec{Kind: "spin-around", Duration: time.Second},
	)
	for _, n := range []int{0, 4, 8, 16, 255} {
		pl.Steps = append(pl.Steps,
			StepSpec{Kind: "slice-h", Bands: n, Duration: time.Second},
			StepSpec{Kind: "slice-v", Bands: n, Duration: time.Second},
		)
	}
	return pl
}

// LoadPlaylist reads and validates a YAML playlist.
func LoadPlaylist(path string) (*Playlist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("playlist: load %s: %w", path, err)
	}
	pl, err := ParsePlaylist(data)
	if err != nil {
		return nil, fmt.Errorf("playlist: %s: %w", path, err)
	}
	return pl, nil
}

// ParsePlaylist decodes and validates a YAML playlist.
func ParsePlaylist(data []byte) (*Playlist, error) {
	var pl Playlist
	if err := yaml.Unmarshal(data, &pl); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if err := pl.Validate(); err != nil {
		return nil, err
	}
	return &pl, nil
}

// Validate checks that every image, easing and step can be resolved.
func (pl *Playlist) Validate() error {
	if len(pl.Images) == 0 {
		return fmt.Errorf("no images: %w", ErrInvalidParameter)
	}
	if len(pl.Steps) == 0 {
		return fmt.Errorf("no steps: %w", ErrInvalidParameter)
	}
	for _, c := range []string{pl.Background, pl.Highlight, pl.Frame, pl.Clear} {
		if c == "" {
			continue
		}
		if _, err := ParseColor(c); err != nil {
			return err
		}
	}
	for i, im := range pl.Images {
		if (im.Path == "") == (im.Generate == "") {
			return fmt.Errorf("image %d (%s): exactly one of path or generate: %w", i, im.Name, ErrInvalidParameter)
		}
		if im.Generate != "" && (im.Width <= 0 || im.Height <= 0) {
			return fmt.Errorf("image %d (%s): generated images need a size: %w", i, im.Name, ErrInvalidParameter)
		}
		switch im.Generate {
		case "", "palette", "checker":
		default:
			return fmt.Errorf("image %d (%s): unknown generator %q: %w", i, im.Name, im.Generate, ErrInvalidParameter)
		}
	}
	if _, err := pl.easings(); err != nil {
		return err
	}
	for i, st := range pl.Steps {
		req, err := st.request(Easing{})
		if err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		if req.Kind.eased() && st.Easing == "" && len(pl.Easings) == 0 {
			return fmt.Errorf("step %d: %s needs an easing: %w", i, req.Kind, ErrInvalidParameter)
		}
		if st.Easing != "" {
			if _, err := ResolveEasing(st.Easing); err != nil {
				return fmt.Errorf("step %d: %w", i, err)
			}
		}
	}
	return nil
}

// Files returns the image files the playlist reads, in order and without
// duplicates. Generated images have no file.
func (pl *Playlist) Files() []string {
	var out []string
	seen := make(map[string]bool)
	for _, im := range pl.Images {
		if im.Path == "" || seen[im.Path] {
			continue
		}
		seen[im.Path] = true
		out = append(out, im.Path)
	}
	return out
}

func (pl *Playlist) easings() ([]Easing, error) {
	out := make([]Easing, 0, len(pl.Easings))
	for _, name := range pl.Easings {
		e, err := ResolveEasing(name)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (pl *Playlist) color(s string, def Color) Color {
	if s == "" {
		return def
	}
	c, err := ParseColor(s)
	if err != nil {
		return def
	}
	return c
}

// request converts the step into a Request without position or easing.
// The easing is only checked later, so ease may be the zero value here.
// A PerUnit stretch leaves Duration for the caller to size.
func (st StepSpec) request(ease Easing) (Request, error) {
	kind, err := ParseKind(st.Kind)
	if err != nil {
		return Request{}, err
	}
	req := Request{Kind: kind, Duration: st.Duration, Bands: st.Bands, Easing: ease}
	switch {
	case st.PerUnit < 0:
		return Request{}, fmt.Errorf("%s: per-unit delay %v: %w", kind, st.PerUnit, ErrInvalidParameter)
	case st.PerUnit > 0 && kind != KindStretch:
		return Request{}, fmt.Errorf("%s: per-unit delay only applies to stretch: %w", kind, ErrInvalidParameter)
	case st.PerUnit == 0 && st.Duration <= 0:
		return Request{}, fmt.Errorf("%s: duration %v: %w", kind, st.Duration, ErrInvalidParameter)
	}
	if st.Bands < 0 {
		return Request{}, fmt.Errorf("%s: band count %d: %w", kind, st.Bands, ErrInvalidParameter)
	}
	if kind == KindStretch {
		if req.Direction, err = ParseDirection(st.Direction); err != nil {
			return Request{}, err
		}
	}
	if len(st.Pivot) > 0 {
		if len(st.Pivot) != 2 {
			return Request{}, fmt.Errorf("%s: pivot needs two values: %w", kind, ErrInvalidParameter)
		}
		req.Pivot = image.Pt(st.Pivot[0], st.Pivot[1])
	}
	return req, nil
}
