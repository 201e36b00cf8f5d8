package overlay

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects the top-level view. It is a static choice made at startup
// (or on config reload), not a state machine.
type Mode string

const (
	ModeHUD      Mode = "hud"
	ModeFeed     Mode = "feed"
	ModeSpeed    Mode = "speed"
	ModeHighFive Mode = "highfive"
	ModeBanner   Mode = "banner"
)

var ErrUnknownMode = errors.New("unknown overlay mode")

// Modes lists every mode in menu order.
func Modes() []Mode {
	return []Mode{ModeHUD, ModeFeed, ModeSpeed, ModeHighFive, ModeBanner}
}

func modeNames() []string {
	names := make([]string, 0, len(Modes()))
	for _, m := range Modes() {
		names = append(names, string(m))
	}
	return names
}

// ParseMode accepts a mode name case-insensitively. An empty name means
// the HUD.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ModeHUD, nil
	}
	for _, m := range Modes() {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w %q (valid: %s)", ErrUnknownMode, s, strings.Join(modeNames(), ", "))
}

// Standalone modes are composited on their own, so they ask for a
// transparent capture-friendly window.
func (m Mode) Standalone() bool {
	switch m {
	case ModeFeed, ModeSpeed, ModeBanner:
		return true
	}
	return false
}

func (m Mode) Title() string {
	switch m {
	case ModeFeed:
		return "Rotary Feed"
	case ModeSpeed:
		return "Speed Gauge"
	case ModeHighFive:
		return "High Five"
	case ModeBanner:
		return "Social Banner"
	default:
		return "HUD Sidebar"
	}
}
