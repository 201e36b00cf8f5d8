package overlay

import (
	"log"
	"math/rand/v2"
	"time"

	"github.com/iburimskiy/stream-overlay/internal/backdrop"
	"github.com/iburimskiy/stream-overlay/internal/config"
	"github.com/iburimskiy/stream-overlay/internal/feed"
	"github.com/iburimskiy/stream-overlay/internal/schedule"
	"github.com/iburimskiy/stream-overlay/internal/sim"
	"github.com/iburimskiy/stream-overlay/internal/sound"
)

// Env is what every scene shares. Sound may be nil.
type Env struct {
	Config *config.Config
	Rand   *rand.Rand
	Sound  *sound.Player
	Window backdrop.Window
	Guard  *backdrop.Guard
	Fonts  *Fonts
}

func (e *Env) transparent() bool {
	return e.Window.Get(backdrop.Transparent)
}

func (e *Env) level() float64 {
	if e.Sound == nil {
		return 0
	}
	return e.Sound.Level()
}

// LoadCues swaps in the sample files the config names for the sound cues.
// A file that fails to load leaves that cue synthesized.
func (e *Env) LoadCues() {
	if e.Sound == nil {
		return
	}
	for cue, path := range map[sound.Cue]string{
		sound.CueChime: e.Config.Sound.Chime,
		sound.CueThump: e.Config.Sound.Thump,
	} {
		if path == "" {
			continue
		}
		if err := e.Sound.LoadCue(cue, path); err != nil {
			log.Printf("[Sound] %s cue: %v", cue, err)
			continue
		}
		log.Printf("[Sound] %s cue loaded from %s", cue, path)
	}
}

// base is embedded by every scene: it owns the scene's timers and its
// backdrop acquisition.
type base struct {
	env     *Env
	sched   *schedule.Scheduler
	release backdrop.Release
}

// newBase makes a scene base. Standalone scenes take a capture-friendly
// window until Close.
func newBase(env *Env, standalone bool) *base {
	b := &base{env: env, sched: schedule.New()}
	if standalone {
		b.release = env.Guard.Acquire(backdrop.CaptureFriendly())
	}
	return b
}

func (b *base) every(d time.Duration, fn func()) error {
	_, err := b.sched.Every(d, fn)
	return err
}

func (b *base) Update(dt time.Duration) error {
	b.sched.Step(dt)
	return nil
}

func (b *base) Close() {
	b.sched.Stop()
	if b.release != nil {
		b.release()
	}
}

// seconds is the scene's age, used for pulsing decorations.
func (b *base) seconds() float64 {
	return b.sched.Now().Seconds()
}

// feedPanel is the rotary feed with its simulated event source.
type feedPanel struct {
	queue    *feed.Queue
	rotation *feed.Rotation
	view     *FeedView
	events   *sim.EventGenerator
}

func newFeedPanel(b *base) (*feedPanel, error) {
	cfg := b.env.Config
	q := feed.NewQueue(cfg.Feed.Capacity, cfg.Events.Seed...)
	rot := feed.NewRotation(q)
	p := &feedPanel{
		queue:    q,
		rotation: rot,
		view:     NewFeedView(rot, cfg.Feed.Spacing, b.env.level),
		events:   sim.NewEventGenerator(b.env.Rand, cfg.Events),
	}

	q.OnPush(func(it feed.Item) {
		log.Printf("[Feed] new event %s", it)
	})
	if b.env.Sound != nil {
		q.OnPush(func(feed.Item) { b.env.Sound.Chime() })
	}

	if err := b.every(cfg.Feed.RotateEvery, rot.Advance); err != nil {
		return nil, err
	}
	if err := b.every(cfg.Feed.EventEvery, func() { q.Push(p.events.Next()) }); err != nil {
		return nil, err
	}
	return p, nil
}
