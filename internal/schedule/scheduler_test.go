package schedule

import (
	"errors"
	"testing"
	"time"
)

func TestEveryFiresPerInterval(t *testing.T) {
	s := New()
	count := 0
	if _, err := s.Every(30*time.Second, func() { count++ }); err != nil {
		t.Fatal(err)
	}

	s.Step(29 * time.Second)
	if count != 0 {
		t.Fatalf("fired %d times before the interval", count)
	}
	s.Step(time.Second)
	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}
	// a long frame catches up
	s.Step(95 * time.Second)
	if count != 4 {
		t.Errorf("count = %d, want 4", count)
	}
	if s.Now() != 125*time.Second {
		t.Errorf("Now() = %v, want 2m5s", s.Now())
	}
}

func TestFrameSizedSteps(t *testing.T) {
	s := New()
	count := 0
	s.Every(time.Second, func() { count++ })

	frame := time.Second / 60
	for i := 0; i < 600; i++ {
		s.Step(frame)
	}
	if count < 9 || count > 10 {
		t.Errorf("count = %d after ~10s of frames", count)
	}
}

func TestAfterFiresOnce(t *testing.T) {
	s := New()
	count := 0
	j, err := s.After(200*time.Millisecond, func() { count++ })
	if err != nil {
		t.Fatal(err)
	}
	s.Step(time.Second)
	s.Step(time.Second)
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
	if !j.Stopped() {
		t.Error("one-shot job should be stopped after firing")
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestDeadlineOrder(t *testing.T) {
	s := New()
	var order []string
	s.Every(3*time.Second, func() { order = append(order, "slow") })
	s.Every(time.Second, func() { order = append(order, "fast") })
	s.After(3*time.Second, func() { order = append(order, "once") })

	s.Step(3 * time.Second)
	want := []string{"fast", "fast", "slow", "fast", "once"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestJobStop(t *testing.T) {
	s := New()
	count := 0
	var j *Job
	j, _ = s.Every(time.Second, func() {
		count++
		if count == 2 {
			j.Stop()
		}
	})
	s.Step(10 * time.Second)
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}

func TestSchedulerStop(t *testing.T) {
	s := New()
	count := 0
	s.Every(time.Second, func() { count++ })
	s.Every(time.Second, func() { s.Stop() })
	s.Step(5 * time.Second)
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}

	late, err := s.Every(time.Second, func() { count++ })
	if err != nil {
		t.Fatal(err)
	}
	s.Step(5 * time.Second)
	if !late.Stopped() || count != 1 {
		t.Errorf("job added after Stop ran: count = %d", count)
	}
}

func TestJobsAddedDuringStep(t *testing.T) {
	s := New()
	fired := false
	s.After(time.Second, func() {
		s.After(500*time.Millisecond, func() { fired = true })
	})
	s.Step(2 * time.Second)
	if !fired {
		t.Error("nested one-shot did not fire within the same step")
	}
}

func TestInvalidInterval(t *testing.T) {
	s := New()
	for _, d := range []time.Duration{0, -time.Second} {
		if _, err := s.Every(d, func() {}); !errors.Is(err, ErrInvalidInterval) {
			t.Errorf("Every(%v) err = %v, want ErrInvalidInterval", d, err)
		}
		if _, err := s.After(d, func() {}); !errors.Is(err, ErrInvalidInterval) {
			t.Errorf("After(%v) err = %v, want ErrInvalidInterval", d, err)
		}
	}
}
