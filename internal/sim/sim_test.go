package sim

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/iburimskiy/stream-overlay/internal/config"
)

func TestClockFormat(t *testing.T) {
	at := time.Date(2024, 3, 1, 21, 5, 9, 0, time.UTC)
	c := NewClock(func() time.Time { return at })
	if got := c.String(); got != "21:05:09" {
		t.Errorf("String() = %q, want 21:05:09", got)
	}
	at = at.Add(time.Second)
	if got := c.String(); got != "21:05:09" {
		t.Errorf("String() changed before Tick: %q", got)
	}
	c.Tick()
	if got := c.String(); got != "21:05:10" {
		t.Errorf("String() after Tick = %q, want 21:05:10", got)
	}
}

func TestSpeedStaysInRange(t *testing.T) {
	s := NewSpeed(NewRand(7), 120)
	for i := 0; i < 10000; i++ {
		s.Tick()
		if s.KMH() < 0 || s.KMH() > 120 {
			t.Fatalf("speed %d outside [0, 120]", s.KMH())
		}
		if f := s.Fraction(); f < 0 || f > 1 {
			t.Fatalf("fraction %v outside [0, 1]", f)
		}
	}
}

func TestSpeedLabel(t *testing.T) {
	s := &Speed{current: 7.2}
	if got := s.Label(); got != "07" {
		t.Errorf("Label() = %q, want 07", got)
	}
	s.current = 64.6
	if got := s.Label(); got != "65" {
		t.Errorf("Label() = %q, want 65", got)
	}
}

func TestGoalPercent(t *testing.T) {
	tests := []struct {
		current, target float64
		want            float64
	}{
		{35, 200, 17.5},
		{35, 3000, 35.0 / 3000 * 100},
		{500, 200, 100},
		{10, 0, 100},
		{0, 50, 0},
	}
	for _, tt := range tests {
		g := Goal{config.Goal{Current: tt.current, Target: tt.target}}
		if got := g.Percent(); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Percent(%v/%v) = %v, want %v", tt.current, tt.target, got, tt.want)
		}
	}
}

func TestEventGeneratorUniqueIDs(t *testing.T) {
	cfg := config.Default()
	g := NewEventGenerator(NewRand(1), cfg.Events)
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		it := g.Next()
		if seen[it.ID] {
			t.Fatalf("duplicate id %q", it.ID)
		}
		seen[it.ID] = true
		if !it.Icon.Valid() {
			t.Errorf("event has invalid icon %q", it.Icon)
		}
		if !strings.HasPrefix(it.ID, "evt-") {
			t.Errorf("id %q lacks evt- prefix", it.ID)
		}
	}
}

func TestEventGeneratorDeterministic(t *testing.T) {
	cfg := config.Default()
	a := NewEventGenerator(NewRand(42), cfg.Events)
	b := NewEventGenerator(NewRand(42), cfg.Events)
	for i := 0; i < 20; i++ {
		if x, y := a.Next(), b.Next(); x != y {
			t.Fatalf("step %d: %v != %v", i, x, y)
		}
	}
}

func TestEnergyTriggerCaps(t *testing.T) {
	e := NewEnergy(NewRand(1))
	calls := 0
	e.OnTrigger(func() { calls++ })
	for i := 0; i < 7; i++ {
		e.Trigger()
	}
	if e.Level() != 100 {
		t.Errorf("Level() = %v, want 100", e.Level())
	}
	if !e.Animating() {
		t.Error("expected punch pose after trigger")
	}
	if calls != 7 {
		t.Errorf("trigger callbacks = %d, want 7", calls)
	}
	e.Settle()
	if e.Animating() {
		t.Error("still animating after Settle")
	}
}

func TestEnergyDecay(t *testing.T) {
	e := NewEnergy(NewRand(1))
	e.Trigger()
	e.Decay()
	if e.Level() != 18.5 {
		t.Errorf("Level() = %v, want 18.5", e.Level())
	}
	for i := 0; i < 100; i++ {
		e.Decay()
	}
	if e.Level() != 0 {
		t.Errorf("Level() = %v, want floor 0", e.Level())
	}
}

func TestEnergyBands(t *testing.T) {
	tests := []struct {
		level float64
		want  Band
	}{
		{0, BandSynced},
		{50, BandSynced},
		{50.5, BandHot},
		{80, BandHot},
		{81, BandOverdrive},
		{100, BandOverdrive},
	}
	for _, tt := range tests {
		e := &Energy{level: tt.level}
		if got := e.Band(); got != tt.want {
			t.Errorf("Band() at %v = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestEnergyMaybeTriggerRate(t *testing.T) {
	e := NewEnergy(NewRand(99))
	fired := 0
	for i := 0; i < 10000; i++ {
		if e.MaybeTrigger() {
			fired++
		}
	}
	if fired < 2500 || fired > 3500 {
		t.Errorf("fired %d of 10000, want about 3000", fired)
	}
}
