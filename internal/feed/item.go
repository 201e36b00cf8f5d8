package feed

import "fmt"

// Icon names the glyph drawn next to a feed item.
type Icon string

const (
	IconHeart   Icon = "heart"
	IconZap     Icon = "zap"
	IconCoins   Icon = "coins"
	IconUsers   Icon = "users"
	IconMessage Icon = "message"
)

var knownIcons = map[Icon]bool{
	IconHeart:   true,
	IconZap:     true,
	IconCoins:   true,
	IconUsers:   true,
	IconMessage: true,
}

// Valid reports whether the icon is one the renderer knows how to draw.
func (i Icon) Valid() bool {
	return knownIcons[i]
}

// Item is a single event shown in the rotary feed. Items are never modified
// after creation; the source replaces them instead.
type Item struct {
	ID        string `yaml:"id"`
	Icon      Icon   `yaml:"icon"`
	Text      string `yaml:"text"`
	Highlight string `yaml:"highlight,omitempty"`
}

func (it Item) String() string {
	if it.Highlight == "" {
		return fmt.Sprintf("%s %s", it.Icon, it.Text)
	}
	return fmt.Sprintf("%s %s - %s", it.Icon, it.Text, it.Highlight)
}
