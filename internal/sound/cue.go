package sound

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/wav"
)

// Cue is one of the player's sound effects.
type Cue int

const (
	CueChime Cue = iota
	CueThump
)

func (c Cue) String() string {
	if c == CueThump {
		return "thump"
	}
	return "chime"
}

var ErrUnsupportedFile = errors.New("unsupported audio file")

// decodeFile opens a wav, mp3 or flac file by extension. Closing the
// returned streamer closes the file.
func decodeFile(path string) (beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".wav", ".mp3", ".flac":
	default:
		return nil, beep.Format{}, fmt.Errorf("%w: %s", ErrUnsupportedFile, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	}
	if err != nil {
		_ = f.Close()
		return nil, beep.Format{}, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return streamer, format, nil
}

// LoadCue replaces a synthesized cue with the sample in path. The sample
// is resampled to the speaker rate and kept in memory.
func (p *Player) LoadCue(c Cue, path string) error {
	streamer, format, err := decodeFile(path)
	if err != nil {
		return err
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		src = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(src)
	if buf.Len() == 0 {
		return fmt.Errorf("%s: no samples", path)
	}

	p.mu.Lock()
	p.cues[c] = buf
	p.mu.Unlock()
	return nil
}

// sample returns the loaded sample for c at the current volume, or nil if
// c is synthesized.
func (p *Player) sample(c Cue) beep.Streamer {
	p.mu.Lock()
	buf := p.cues[c]
	volume := p.volume
	p.mu.Unlock()
	if buf == nil {
		return nil
	}
	return &effects.Gain{Streamer: buf.Streamer(0, buf.Len()), Gain: volume - 1}
}
