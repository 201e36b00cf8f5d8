package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/stream-overlay/internal/feed"
)

const (
	WindowWidth  = 1280
	WindowHeight = 720

	// HUD sidebar geometry
	SidebarX      = 16
	SidebarY      = 16
	SidebarWidth  = 360
	SidebarRadius = 24

	FeedRotateEvery = 30 * time.Second
	FeedEventEvery  = 15 * time.Second
	FeedSpacing     = 72.0

	ClockEvery      = time.Second
	SpeedEvery      = time.Second
	EnergyDecayTick = 50 * time.Millisecond
	EnergyDecay     = 1.5
	EnergyBoost     = 20.0
	HighFiveFlash   = 200 * time.Millisecond
	HighFiveEvery   = 2 * time.Second
	HighFiveChance  = 0.3

	// frames a feed row takes to move one slot
	SlotTransitionFrames = 30
)

type Window struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type Feed struct {
	RotateEvery time.Duration `yaml:"rotate_every"`
	EventEvery  time.Duration `yaml:"event_every"`
	Capacity    int           `yaml:"capacity"`
	Spacing     float64       `yaml:"spacing"`
}

type EventType struct {
	Icon  feed.Icon `yaml:"icon"`
	Label string    `yaml:"label"`
}

type Events struct {
	Seed      []feed.Item `yaml:"seed"`
	Usernames []string    `yaml:"usernames"`
	Types     []EventType `yaml:"types"`
}

type Stats struct {
	Viewers    int     `yaml:"viewers"`
	Deliveries int     `yaml:"deliveries"`
	Earnings   float64 `yaml:"earnings"`
	Currency   string  `yaml:"currency"`
}

type Goal struct {
	Label    string  `yaml:"label"`
	Current  float64 `yaml:"current"`
	Target   float64 `yaml:"target"`
	SubLabel string  `yaml:"sub_label"`
}

type Location struct {
	City   string `yaml:"city"`
	Sector string `yaml:"sector"`
}

type Weather struct {
	Temp      string `yaml:"temp"`
	Condition string `yaml:"condition"`
	Wind      string `yaml:"wind"`
}

type Handle struct {
	Platform string `yaml:"platform"`
	Handle   string `yaml:"handle"`
}

type Banner struct {
	Name    string   `yaml:"name"`
	Accent  string   `yaml:"accent"`
	Tagline string   `yaml:"tagline"`
	Handles []Handle `yaml:"handles"`
}

type Speed struct {
	Max float64 `yaml:"max"`
}

// Sound names optional sample files (wav, mp3 or flac) that replace the
// synthesized cues.
type Sound struct {
	Chime string `yaml:"chime,omitempty"`
	Thump string `yaml:"thump,omitempty"`
}

// Config is the overlay configuration file.
type Config struct {
	Window   Window   `yaml:"window"`
	Feed     Feed     `yaml:"feed"`
	Events   Events   `yaml:"events"`
	Stats    Stats    `yaml:"stats"`
	Goals    []Goal   `yaml:"goals"`
	Location Location `yaml:"location"`
	Weather  Weather  `yaml:"weather"`
	Banner   Banner   `yaml:"banner"`
	Speed    Speed    `yaml:"speed"`
	Sound    Sound    `yaml:"sound"`
}

// Default returns the built-in overlay setup.
func Default() *Config {
	return &Config{
		Window: Window{Width: WindowWidth, Height: WindowHeight},
		Feed: Feed{
			RotateEvery: FeedRotateEvery,
			EventEvery:  FeedEventEvery,
			Capacity:    feed.DefaultCapacity,
			Spacing:     FeedSpacing,
		},
		Events: Events{
			Seed: []feed.Item{
				{ID: "1", Icon: feed.IconHeart, Text: "Neon_Rider", Highlight: "New Follower"},
				{ID: "2", Icon: feed.IconZap, Text: "CyberPunk_X", Highlight: "Subscribed x3"},
				{ID: "3", Icon: feed.IconCoins, Text: "Glitch_01", Highlight: "Cheered 100 Bits"},
				{ID: "4", Icon: feed.IconUsers, Text: "NightCity_Host", Highlight: "Raided (45)"},
				{ID: "5", Icon: feed.IconHeart, Text: "V_The_Merc", Highlight: "New Follower"},
			},
			Usernames: []string{"Zero_Cool", "Acid_Burn", "Cereal_Killer", "Molly_Millions", "Case_Tessier"},
			Types: []EventType{
				{Icon: feed.IconHeart, Label: "New Follower"},
				{Icon: feed.IconZap, Label: "Subscribed"},
				{Icon: feed.IconCoins, Label: "Donated €5.00"},
				{Icon: feed.IconMessage, Label: "Resub x6"},
			},
		},
		Stats: Stats{Viewers: 4203, Deliveries: 9, Earnings: 35.12, Currency: "€"},
		Goals: []Goal{
			{Label: "Daily", Current: 35, Target: 200, SubLabel: "Daily Goal"},
			{Label: "Monthly", Current: 35, Target: 3000, SubLabel: "Monthly Goal"},
		},
		Location: Location{City: "NEO-HELSINKI", Sector: "KAMPI_DISTRICT"},
		Weather:  Weather{Temp: "12°C", Condition: "Overcast", Wind: "14 km/h"},
		Banner: Banner{
			Name:    "TIMUR",
			Accent:  "FEARLESS",
			Tagline: "LIVE TRANSMISSION",
			Handles: []Handle{
				{Platform: "twitch", Handle: "/TimurFearless"},
				{Platform: "youtube", Handle: "/TimurFearless"},
				{Platform: "kick", Handle: "/TimurFearless"},
			},
		},
		Speed: Speed{Max: 100},
	}
}

// ValidationError names the first field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s %s", e.Field, e.Reason)
}

// Validate checks the values the overlays depend on.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return &ValidationError{Field: "window", Reason: "must have positive width and height"}
	case c.Feed.RotateEvery <= 0:
		return &ValidationError{Field: "feed.rotate_every", Reason: "must be positive"}
	case c.Feed.EventEvery <= 0:
		return &ValidationError{Field: "feed.event_every", Reason: "must be positive"}
	case c.Feed.Capacity <= 0:
		return &ValidationError{Field: "feed.capacity", Reason: "must be positive"}
	case c.Feed.Spacing <= 0:
		return &ValidationError{Field: "feed.spacing", Reason: "must be positive"}
	case len(c.Events.Usernames) == 0:
		return &ValidationError{Field: "events.usernames", Reason: "must not be empty"}
	case len(c.Events.Types) == 0:
		return &ValidationError{Field: "events.types", Reason: "must not be empty"}
	case c.Speed.Max <= 0:
		return &ValidationError{Field: "speed.max", Reason: "must be positive"}
	}

	seen := map[string]bool{}
	for i, it := range c.Events.Seed {
		field := fmt.Sprintf("events.seed[%d]", i)
		if strings.TrimSpace(it.ID) == "" {
			return &ValidationError{Field: field, Reason: "has no id"}
		}
		if seen[it.ID] {
			return &ValidationError{Field: field, Reason: fmt.Sprintf("repeats id %q", it.ID)}
		}
		seen[it.ID] = true
		if !it.Icon.Valid() {
			return &ValidationError{Field: field, Reason: fmt.Sprintf("has unknown icon %q", it.Icon)}
		}
	}
	for i, et := range c.Events.Types {
		if !et.Icon.Valid() {
			return &ValidationError{Field: fmt.Sprintf("events.types[%d]", i), Reason: fmt.Sprintf("has unknown icon %q", et.Icon)}
		}
	}
	for i, g := range c.Goals {
		if g.Target < 0 || g.Current < 0 {
			return &ValidationError{Field: fmt.Sprintf("goals[%d]", i), Reason: "must not be negative"}
		}
	}
	return nil
}

// Parse decodes YAML on top of the defaults, so a file only needs the keys it
// changes.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads a config file. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Marshal encodes the config back to YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}
