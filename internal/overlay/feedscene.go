package overlay

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const feedSceneWidth = 420

// feedScene is the rotary feed on its own, for capture as a separate
// source.
type feedScene struct {
	*base
	feed *feedPanel
}

func newFeedScene(env *Env) (*feedScene, error) {
	b := newBase(env, ModeFeed.Standalone())
	fp, err := newFeedPanel(b)
	if err != nil {
		b.Close()
		return nil, err
	}
	return &feedScene{base: b, feed: fp}, nil
}

func (s *feedScene) Update(dt time.Duration) error {
	if err := s.base.Update(dt); err != nil {
		return err
	}
	s.feed.view.Update()
	return nil
}

func (s *feedScene) Draw(screen *ebiten.Image) {
	cfg := s.env.Config
	h := float32(cfg.Feed.Spacing * 4)
	x := float32(cfg.Window.Width-feedSceneWidth) / 2
	y := (float32(cfg.Window.Height) - h) / 2
	s.feed.view.Draw(screen, s.env.Fonts, x, y, feedSceneWidth, h)
}
