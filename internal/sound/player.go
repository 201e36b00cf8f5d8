// Package sound plays the overlay's short synthesized cues: a chime when a
// new event lands in the feed and a thump for each high five.
package sound

import (
	"log"
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	sampleRate  = beep.SampleRate(44100)
	tapSize     = 4096
	levelWindow = 1024
)

// Player owns the speaker and a mixer every cue is added to.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	tap         *levelTap
	cues        map[Cue]*beep.Buffer
	volume      float64
	enabled     bool
	initialized bool
}

func NewPlayer(enabled bool, volume float64) *Player {
	mixer := &beep.Mixer{}
	return &Player{
		mixer:   mixer,
		tap:     newLevelTap(mixer, tapSize),
		cues:    map[Cue]*beep.Buffer{},
		volume:  volume,
		enabled: enabled,
	}
}

// Init opens the audio device. The overlay keeps running silently if this
// fails.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return err
	}
	speaker.Play(p.tap)
	p.initialized = true
	log.Printf("[Sound] speaker ready at %d Hz", sampleRate)
	return nil
}

func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

func (p *Player) SetEnabled(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = enabled
}

// Chime is the new-event cue: two rising notes, unless a sample was
// loaded for it.
func (p *Player) Chime() {
	if s := p.sample(CueChime); s != nil {
		p.play(s)
		return
	}
	p.play(beep.Seq(
		beep.Take(sampleRate.N(110*time.Millisecond), newTone(sampleRate, 880, 0, p.gain())),
		beep.Take(sampleRate.N(180*time.Millisecond), newTone(sampleRate, 1320, 0, p.gain())),
	))
}

// Thump is the high-five cue: a short falling low note.
func (p *Player) Thump() {
	if s := p.sample(CueThump); s != nil {
		p.play(s)
		return
	}
	p.play(beep.Take(sampleRate.N(150*time.Millisecond), newTone(sampleRate, 140, -500, p.gain()*1.4)))
}

func (p *Player) gain() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return 0.25 * p.volume
}

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	ready := p.initialized && p.enabled
	p.mu.Unlock()
	if !ready {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Level is the recent output loudness in [0, 1].
func (p *Player) Level() float64 {
	l := p.tap.rms(levelWindow) * 4
	if l > 1 {
		return 1
	}
	return l
}

// Close silences the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Clear()
	p.initialized = false
}

// tone is a decaying sine whose pitch can slide by sweep Hz per second.
type tone struct {
	sr    beep.SampleRate
	freq  float64
	sweep float64
	gain  float64
	pos   int
	phase float64
}

func newTone(sr beep.SampleRate, freq, sweep, gain float64) *tone {
	return &tone{sr: sr, freq: freq, sweep: sweep, gain: gain}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		secs := float64(t.pos) / float64(t.sr)
		f := t.freq + t.sweep*secs
		if f < 20 {
			f = 20
		}
		t.phase += 2 * math.Pi * f / float64(t.sr)
		env := math.Exp(-secs * 12)
		v := t.gain * env * math.Sin(t.phase)
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error {
	return nil
}
