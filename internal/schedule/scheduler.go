// Package schedule runs periodic and one-shot callbacks on a virtual clock
// that the frame loop advances. Nothing here starts goroutines: every
// callback runs inside Step, one at a time, in deadline order.
package schedule

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidInterval is returned for zero or negative durations.
var ErrInvalidInterval = errors.New("schedule: interval must be positive")

// Job is a scheduled callback.
type Job struct {
	fn      func()
	every   time.Duration // zero for one-shot jobs
	due     time.Duration
	seq     uint64
	stopped bool
}

// Stop cancels the job. A stopped job never fires again.
func (j *Job) Stop() {
	j.stopped = true
}

func (j *Job) Stopped() bool {
	return j.stopped
}

// Scheduler owns a set of jobs and a virtual clock.
type Scheduler struct {
	now     time.Duration
	jobs    []*Job
	seq     uint64
	stopped bool
}

func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the virtual time elapsed since the scheduler was created.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Every runs fn once per interval d, first at now+d.
func (s *Scheduler) Every(d time.Duration, fn func()) (*Job, error) {
	return s.add(d, d, fn)
}

// After runs fn once, d from now.
func (s *Scheduler) After(d time.Duration, fn func()) (*Job, error) {
	return s.add(d, 0, fn)
}

func (s *Scheduler) add(d, every time.Duration, fn func()) (*Job, error) {
	if d <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInterval, d)
	}
	s.seq++
	j := &Job{
		fn:      fn,
		every:   every,
		due:     s.now + d,
		seq:     s.seq,
		stopped: s.stopped,
	}
	if !j.stopped {
		s.jobs = append(s.jobs, j)
	}
	return j, nil
}

// next returns the earliest live job due at or before limit. Ties go to the
// job registered first.
func (s *Scheduler) next(limit time.Duration) *Job {
	var best *Job
	for _, j := range s.jobs {
		if j.stopped || j.due > limit {
			continue
		}
		if best == nil || j.due < best.due || (j.due == best.due && j.seq < best.seq) {
			best = j
		}
	}
	return best
}

// Step advances the clock by dt and fires every job that falls due, a
// periodic job once per elapsed interval.
func (s *Scheduler) Step(dt time.Duration) {
	if s.stopped || dt <= 0 {
		return
	}
	target := s.now + dt
	for !s.stopped {
		j := s.next(target)
		if j == nil {
			break
		}
		s.now = j.due
		if j.every > 0 {
			j.due += j.every
		} else {
			j.stopped = true
		}
		j.fn()
	}
	if !s.stopped {
		s.now = target
	}
	s.prune()
}

func (s *Scheduler) prune() {
	live := s.jobs[:0]
	for _, j := range s.jobs {
		if !j.stopped {
			live = append(live, j)
		}
	}
	for i := len(live); i < len(s.jobs); i++ {
		s.jobs[i] = nil
	}
	s.jobs = live
}

// Len returns the number of live jobs.
func (s *Scheduler) Len() int {
	n := 0
	for _, j := range s.jobs {
		if !j.stopped {
			n++
		}
	}
	return n
}

// Stop cancels every job. Jobs added afterwards are born stopped.
func (s *Scheduler) Stop() {
	s.stopped = true
	for _, j := range s.jobs {
		j.stopped = true
	}
	s.jobs = nil
}
