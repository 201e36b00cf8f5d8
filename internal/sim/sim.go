// Package sim produces the made-up numbers the overlays display: a clock,
// a drifting speed, the high-five energy meter and random feed events.
package sim

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/iburimskiy/stream-overlay/internal/config"
	"github.com/iburimskiy/stream-overlay/internal/feed"
)

// NewRand returns a deterministic source for a non-zero seed, otherwise a
// time-seeded one.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Clock holds the time shown in the HUD header.
type Clock struct {
	now  func() time.Time
	last time.Time
}

func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	c := &Clock{now: now}
	c.Tick()
	return c
}

func (c *Clock) Tick() {
	c.last = c.now()
}

// String formats the last tick as 24h HH:MM:SS.
func (c *Clock) String() string {
	return c.last.Format("15:04:05")
}

// Speed is a bounded random walk in km/h.
type Speed struct {
	rng     *rand.Rand
	max     float64
	current float64
}

func NewSpeed(rng *rand.Rand, limit float64) *Speed {
	return &Speed{rng: rng, max: limit, current: limit * 0.4}
}

func (s *Speed) Tick() {
	s.current += (s.rng.Float64() - 0.5) * s.max * 0.2
	if s.current < 0 {
		s.current = 0
	}
	if s.current > s.max {
		s.current = s.max
	}
}

// KMH returns the whole-number speed shown on the gauge.
func (s *Speed) KMH() int {
	return int(s.current + 0.5)
}

// Fraction is the gauge fill: speed over 100 km/h, capped at 1.
func (s *Speed) Fraction() float64 {
	f := s.current / 100
	if f > 1 {
		return 1
	}
	return f
}

// Label zero-pads single digit speeds the way the gauge shows them.
func (s *Speed) Label() string {
	return fmt.Sprintf("%02d", s.KMH())
}

// Goal is a progress bar toward a money target.
type Goal struct {
	config.Goal
}

// Percent is current/target as a percentage, capped at 100. A zero target
// counts as reached.
func (g Goal) Percent() float64 {
	if g.Target <= 0 {
		return 100
	}
	p := g.Current / g.Target * 100
	if p > 100 {
		return 100
	}
	return p
}

// EventGenerator makes random follower/sub/donation events.
type EventGenerator struct {
	rng       *rand.Rand
	usernames []string
	types     []config.EventType
	seq       int
	prefix    string
}

func NewEventGenerator(rng *rand.Rand, events config.Events) *EventGenerator {
	return &EventGenerator{
		rng:       rng,
		usernames: events.Usernames,
		types:     events.Types,
		prefix:    fmt.Sprintf("evt-%x", rng.Uint32()),
	}
}

// Next returns a new event with an ID no earlier event shares.
func (g *EventGenerator) Next() feed.Item {
	g.seq++
	et := g.types[g.rng.IntN(len(g.types))]
	user := g.usernames[g.rng.IntN(len(g.usernames))]
	return feed.Item{
		ID:        fmt.Sprintf("%s-%d", g.prefix, g.seq),
		Icon:      et.Icon,
		Text:      user,
		Highlight: et.Label,
	}
}
