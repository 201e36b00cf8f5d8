package overlay

import (
	"errors"
	"strings"
	"testing"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModeHUD, false},
		{"hud", ModeHUD, false},
		{"FEED", ModeFeed, false},
		{" speed ", ModeSpeed, false},
		{"highfive", ModeHighFive, false},
		{"banner", ModeBanner, false},
		{"map", "", true},
		{"mapbox", "", true},
		{"radar", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownMode) {
					t.Fatalf("ParseMode(%q) error = %v, want ErrUnknownMode", tt.in, err)
				}
				if !strings.Contains(err.Error(), "highfive") {
					t.Errorf("error %q does not list the valid modes", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMode(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestModeStandalone(t *testing.T) {
	want := map[Mode]bool{
		ModeHUD:      false,
		ModeFeed:     true,
		ModeSpeed:    true,
		ModeHighFive: false,
		ModeBanner:   true,
	}
	for _, m := range Modes() {
		if got := m.Standalone(); got != want[m] {
			t.Errorf("%s.Standalone() = %v, want %v", m, got, want[m])
		}
		if m.Title() == "" {
			t.Errorf("%s has no title", m)
		}
	}
}
