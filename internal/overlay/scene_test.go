package overlay

import (
	"errors"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/stream-overlay/internal/backdrop"
	"github.com/iburimskiy/stream-overlay/internal/config"
	"github.com/iburimskiy/stream-overlay/internal/sim"
)

type fakeScene struct {
	updates int
	closed  bool
	err     error
}

func (f *fakeScene) Update(time.Duration) error {
	f.updates++
	return f.err
}

func (f *fakeScene) Draw(*ebiten.Image) {}

func (f *fakeScene) Close() {
	f.closed = true
}

func TestSceneManagerSwitchClosesPrevious(t *testing.T) {
	sm := NewSceneManager()
	if err := sm.Update(time.Second); err != nil {
		t.Fatalf("Update with no scene: %v", err)
	}

	first := &fakeScene{}
	second := &fakeScene{err: errors.New("boom")}
	sm.SwitchTo(first)
	if err := sm.Update(time.Second); err != nil || first.updates != 1 {
		t.Fatalf("first scene not updated: err=%v updates=%d", err, first.updates)
	}

	sm.SwitchTo(second)
	if !first.closed {
		t.Error("switching did not close the previous scene")
	}
	if sm.Current() != second {
		t.Error("Current() is not the new scene")
	}
	if err := sm.Update(time.Second); err == nil {
		t.Error("scene error not propagated")
	}

	sm.Close()
	if !second.closed || sm.Current() != nil {
		t.Error("Close did not tear down the scene")
	}
}

func testEnv() (*Env, *backdrop.MemWindow) {
	win := backdrop.NewMemWindow(nil)
	return &Env{
		Config: config.Default(),
		Rand:   sim.NewRand(42),
		Window: win,
		Guard:  backdrop.NewGuard(win),
	}, win
}

func TestStandaloneScenesHoldBackdrop(t *testing.T) {
	for _, m := range Modes() {
		t.Run(string(m), func(t *testing.T) {
			env, win := testEnv()
			s, err := newScene(env, m)
			if err != nil {
				t.Fatalf("newScene(%s): %v", m, err)
			}
			if got := win.Get(backdrop.Transparent); got != m.Standalone() {
				t.Errorf("transparent while mounted = %v, want %v", got, m.Standalone())
			}
			s.Close()
			if win.Get(backdrop.Transparent) || env.Guard.Held() != 0 {
				t.Errorf("backdrop not restored after Close: transparent=%v held=%d",
					win.Get(backdrop.Transparent), env.Guard.Held())
			}
		})
	}
}

func TestNewSceneUnknownMode(t *testing.T) {
	env, _ := testEnv()
	if _, err := newScene(env, Mode("map")); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("newScene(map) error = %v, want ErrUnknownMode", err)
	}
}

func TestNewSceneRejectsBadInterval(t *testing.T) {
	env, win := testEnv()
	env.Config.Feed.RotateEvery = 0
	if _, err := newScene(env, ModeFeed); err == nil {
		t.Fatal("expected an error for a zero rotate interval")
	}
	if win.Get(backdrop.Transparent) || env.Guard.Held() != 0 {
		t.Error("failed mount leaked its backdrop acquisition")
	}
}

func TestHUDSceneRotatesAndReceivesEvents(t *testing.T) {
	env, _ := testEnv()
	s, err := newHUDScene(env)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	seeded := s.feed.queue.Len()
	for i := 0; i < 30; i++ {
		if err := s.Update(time.Second); err != nil {
			t.Fatal(err)
		}
	}
	if got, want := s.feed.queue.Len(), seeded+2; got != want {
		t.Errorf("queue has %d items after 30s, want %d", got, want)
	}
	if idx, ok := s.feed.rotation.ActiveIndex(); !ok || idx != 1 {
		t.Errorf("active index after one rotation = %d, %v; want 1", idx, ok)
	}
	if s.feed.view.Empty() {
		t.Error("feed view has nothing to draw")
	}
}

func TestSceneCloseStopsTimers(t *testing.T) {
	env, _ := testEnv()
	s, err := newFeedScene(env)
	if err != nil {
		t.Fatal(err)
	}
	s.Close()
	before := s.feed.queue.Len()
	_ = s.Update(time.Minute)
	if s.feed.queue.Len() != before {
		t.Error("events kept arriving after Close")
	}
	if s.sched.Len() != 0 {
		t.Errorf("%d jobs still scheduled after Close", s.sched.Len())
	}
}

func TestHighFiveSettlesAfterFlash(t *testing.T) {
	env, _ := testEnv()
	s, err := newHighFiveScene(env)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	s.energy.Trigger()
	if !s.energy.Animating() {
		t.Fatal("trigger did not start the punch pose")
	}
	boosted := s.energy.Level()

	_ = s.base.Update(config.HighFiveFlash)
	if s.energy.Animating() {
		t.Error("punch pose did not end after the flash")
	}
	if s.energy.Level() >= boosted {
		t.Errorf("energy did not decay: %v -> %v", boosted, s.energy.Level())
	}
}

func TestSpeedSceneNeedleApproaches(t *testing.T) {
	env, _ := testEnv()
	s, err := newSpeedScene(env)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	for i := 0; i < 200; i++ {
		_ = s.Update(time.Second / 60)
	}
	target := s.speed.Fraction()
	// a zero step moves no timers, only the needle
	for i := 0; i <= int(1/gaugeStep); i++ {
		_ = s.Update(0)
	}
	if s.shown != target {
		t.Errorf("needle at %v, want %v", s.shown, target)
	}
}
