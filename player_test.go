package spritefx

import (
	"errors"
	"image"
	"testing"
	"time"
)

func testPlaylist() *Playlist {
	return &Playlist{
		Background:       "#ffffff",
		Clear:            "#000000",
		FrameInterval:    10 * time.Millisecond,
		AlternateStretch: true,
		Images: []ImageSpec{
			{Name: "a", Generate: "checker", Width: 10, Height: 8},
			{Name: "b", Generate: "palette", Width: 12, Height: 6},
		},
		Easings: []string{"Linear", "easeOutBounce"},
		Steps: []StepSpec{
			{Kind: "stretch", Direction: "ltr", Duration: 100 * time.Millisecond},
			{Kind: "spin-center", Duration: 50 * time.Millisecond},
			{Kind: "slice-h", Bands: 2, Duration: 50 * time.Millisecond},
		},
	}
}

func testPlayer(t *testing.T, pl *Playlist, alloc *Allocator) (*Player, *ImageCanvas, *fakeClock) {
	t.Helper()
	cv := NewImageCanvas(64, 64)
	e, clock := testEngine(cv)
	p, err := NewPlayer(e, alloc, pl)
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	return p, cv, clock
}

func TestPlayerRunsStepsPerEasing(t *testing.T) {
	p, cv, _ := testPlayer(t, testPlaylist(), testAllocator())

	var easings []string
	var kinds []Kind
	p.OnEasing = func(name string) { easings = append(easings, name) }
	p.OnStep = func(req Request, st Stats) {
		kinds = append(kinds, req.Kind)
		if st.Kind != req.Kind {
			t.Errorf("stats kind = %v, want %v", st.Kind, req.Kind)
		}
	}

	if err := p.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if len(easings) != 2 || easings[0] != "Linear" || easings[1] != "OutBounce" {
		t.Errorf("easings = %v, want [Linear OutBounce]", easings)
	}
	want := []Kind{KindStretch, KindSpinCenter, KindSliceH, KindSpinCenter, KindSliceH}
	if len(kinds) != len(want) {
		t.Fatalf("steps = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("step %d = %v, want %v", i, kinds[i], want[i])
		}
	}
	if p.Index() != 1 {
		t.Errorf("Index = %d, want 1", p.Index())
	}

	// The 10x8 sprite sits centred at (27,28); the clear zone includes the frame.
	assertFilled(t, cv, image.Rect(26, 27, 38, 37), ColorBlack)
	if got := cv.Image().RGBAAt(0, 0); got.A != 0 {
		t.Errorf("pixel outside the zone = %v, want untouched", got)
	}
}

func TestPlayerCyclesImages(t *testing.T) {
	p, _, _ := testPlayer(t, testPlaylist(), testAllocator())
	sizes := []image.Point{{10, 8}, {12, 6}, {10, 8}}
	for i, want := range sizes {
		if err := p.Next(); err != nil {
			t.Fatalf("Next %d: %v", i, err)
		}
		s := p.Sprite()
		if got := image.Pt(s.Width(), s.Height()); got != want {
			t.Errorf("Next %d sprite = %v, want %v", i, got, want)
		}
	}
	p.Close()
	if p.Sprite() != nil {
		t.Error("Sprite after Close should be nil")
	}
}

func TestPlayerAlternatesStretchSpeed(t *testing.T) {
	p, _, _ := testPlayer(t, testPlaylist(), testAllocator())
	var stretches []time.Duration
	p.OnStep = func(req Request, _ Stats) {
		if req.Kind == KindStretch {
			stretches = append(stretches, req.Duration)
		}
	}
	for i := 0; i < 4; i++ {
		if err := p.Next(); err != nil {
			t.Fatal(err)
		}
	}
	// Pass 0 (images 0 and 1) runs at full speed, pass 1 at the set pace.
	want := []time.Duration{time.Nanosecond, time.Nanosecond, 100 * time.Millisecond, 100 * time.Millisecond}
	for i := range want {
		if stretches[i] != want[i] {
			t.Errorf("stretch %d duration = %v, want %v", i, stretches[i], want[i])
		}
	}
}

func TestPlayerStretchPerUnit(t *testing.T) {
	pl := testPlaylist()
	pl.AlternateStretch = false
	pl.Steps = []StepSpec{
		{Kind: "stretch", Direction: "ltr", PerUnit: 8 * time.Millisecond},
		{Kind: "stretch", Direction: "btt", PerUnit: 8 * time.Millisecond},
	}
	p, _, clock := testPlayer(t, pl, testAllocator())
	var got []time.Duration
	p.OnStep = func(req Request, _ Stats) { got = append(got, req.Duration) }

	if err := p.Next(); err != nil {
		t.Fatal(err)
	}
	// 10 columns, then 8 rows.
	want := []time.Duration{80 * time.Millisecond, 64 * time.Millisecond}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("durations = %v, want %v", got, want)
	}
	if clock.slept() != 144*time.Millisecond {
		t.Errorf("slept = %v, want 144ms", clock.slept())
	}
}

func TestPlayerPauses(t *testing.T) {
	pl := testPlaylist()
	pl.AlternateStretch = false
	pl.Steps = []StepSpec{{Kind: "stretch", Direction: "ttb", Duration: 80 * time.Millisecond, Pause: time.Second}}
	p, _, clock := testPlayer(t, pl, testAllocator())
	if err := p.Next(); err != nil {
		t.Fatal(err)
	}
	if got := clock.slept(); got != 80*time.Millisecond+time.Second {
		t.Errorf("slept = %v, want 1.08s", got)
	}
}

func TestPlayerSkipsUnallocatableImage(t *testing.T) {
	pl := testPlaylist()
	pl.Images[1] = ImageSpec{Name: "huge", Generate: "palette", Width: 40, Height: 40}
	alloc := NewAllocator(AllocatorConfig{InternalBytes: 10 * 8 * 4})
	p, _, _ := testPlayer(t, pl, alloc)

	if err := p.Next(); err != nil {
		t.Fatalf("first image: %v", err)
	}
	err := p.Next()
	if !errors.Is(err, ErrAllocation) {
		t.Fatalf("err = %v, want ErrAllocation", err)
	}
	if p.Index() != 2 {
		t.Errorf("Index = %d, want 2 after a skipped image", p.Index())
	}
	if err := p.Next(); err != nil {
		t.Errorf("image after the skipped one: %v", err)
	}
}

func TestPlayerSetPlaylist(t *testing.T) {
	p, _, _ := testPlayer(t, testPlaylist(), testAllocator())
	if err := p.SetPlaylist(&Playlist{}); err == nil {
		t.Error("expected error for empty playlist")
	}

	pl := testPlaylist()
	pl.Background = "#000000"
	pl.FrameInterval = 5 * time.Millisecond
	if err := p.SetPlaylist(pl); err != nil {
		t.Fatal(err)
	}
	if p.engine.Background() != ColorBlack {
		t.Errorf("Background = %v, want black", p.engine.Background())
	}
	if p.engine.pacer.interval != 5*time.Millisecond {
		t.Errorf("interval = %v, want 5ms", p.engine.pacer.interval)
	}
}

func TestPlayerMissingFile(t *testing.T) {
	pl := testPlaylist()
	pl.Images = []ImageSpec{{Name: "gone", Path: "testdata/does-not-exist.png"}}
	p, _, _ := testPlayer(t, pl, testAllocator())
	if err := p.Next(); err == nil {
		t.Error("expected error for missing image")
	}
	if p.Index() != 1 {
		t.Errorf("Index = %d, want 1", p.Index())
	}
}
