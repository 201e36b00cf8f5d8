package overlay

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/stream-overlay/internal/config"
	"github.com/iburimskiy/stream-overlay/internal/sim"
)

// HUD section heights; the feed takes what is left.
const (
	hudHeader   = 56
	hudLocation = 52
	hudStats    = 112
	hudGoals    = goalHeight + 40
)

var colorShade = color.RGBA{A: 77}

// hudScene is the full sidebar: status header, location, stats, the rotary
// feed and the goal bars.
type hudScene struct {
	*base
	clock *sim.Clock
	feed  *feedPanel
	goals []sim.Goal
}

func newHUDScene(env *Env) (*hudScene, error) {
	b := newBase(env, ModeHUD.Standalone())
	fp, err := newFeedPanel(b)
	if err != nil {
		b.Close()
		return nil, err
	}
	s := &hudScene{base: b, clock: sim.NewClock(nil), feed: fp}
	for _, g := range env.Config.Goals {
		s.goals = append(s.goals, sim.Goal{Goal: g})
	}
	if err := b.every(config.ClockEvery, s.clock.Tick); err != nil {
		b.Close()
		return nil, err
	}
	return s, nil
}

func (s *hudScene) Update(dt time.Duration) error {
	if err := s.base.Update(dt); err != nil {
		return err
	}
	s.feed.view.Update()
	return nil
}

func (s *hudScene) Draw(screen *ebiten.Image) {
	cfg := s.env.Config
	fonts := s.env.Fonts

	x := float32(config.SidebarX)
	y := float32(config.SidebarY)
	w := float32(config.SidebarWidth)
	h := float32(cfg.Window.Height - 2*config.SidebarY)
	drawPanel(screen, x, y, w, h, config.SidebarRadius, colorGlass, colorEdge)

	left := float64(x) + 20
	mid := float64(x + w/2)

	// status header
	label(screen, s.clock.String(), fonts.Bold(12), left, float64(y)+16, colorCyan, text.AlignStart, 1)
	label(screen, thousands(cfg.Stats.Viewers)+" VIEWERS", fonts.Bold(12), left, float64(y)+34, colorPink, text.AlignStart, 1)
	for i, c := range []color.RGBA{colorCyan, colorGreen, colorMagenta} {
		vector.DrawFilledCircle(screen, x+w-52+float32(i)*12, y+24, 4, c, true)
	}
	top := y + hudHeader

	label(screen, cfg.Location.City, fonts.Bold(16), left, float64(top)+6, colorWhite, text.AlignStart, 1)
	label(screen, cfg.Location.Sector, fonts.Bold(11), left, float64(top)+28, colorCyan, text.AlignStart, 0.8)
	top += hudLocation
	vector.StrokeLine(screen, x, top, x+w, top, 1, colorEdge, false)

	vector.DrawFilledRect(screen, x, top, w, hudStats, colorShade, false)
	label(screen, "DATA STREAM", fonts.Bold(10), mid, float64(top)+12, colorCyan, text.AlignCenter, 0.8)
	s.drawStat(screen, "DELIVERIES", thousands(cfg.Stats.Deliveries), colorPink, colorWhite, float64(top)+40)
	s.drawStat(screen, "EARNINGS", money(cfg.Stats.Currency, cfg.Stats.Earnings), colorGreen, colorGreen, float64(top)+74)
	top += hudStats
	vector.StrokeLine(screen, x, top, x+w, top, 1, colorEdge, false)

	feedH := y + h - hudGoals - top
	s.feed.view.Draw(screen, fonts, x, top, w, feedH)
	top += feedH
	vector.StrokeLine(screen, x, top, x+w, top, 1, colorEdge, false)

	label(screen, "GOALS", fonts.Bold(10), mid, float64(top)+14, colorPink, text.AlignCenter, 1)
	n := len(s.goals)
	for i, g := range s.goals {
		cx := mid + (float64(i)-float64(n-1)/2)*(goalBarWidth+48)
		drawGoal(screen, fonts, g, cfg.Stats.Currency, cx, float64(top)+36)
	}
}

func (s *hudScene) drawStat(screen *ebiten.Image, name, value string, accent, valueColor color.RGBA, y float64) {
	fonts := s.env.Fonts
	left := float64(config.SidebarX) + 20
	right := float64(config.SidebarX+config.SidebarWidth) - 20
	vector.DrawFilledCircle(screen, float32(left+6), float32(y+10), 5, accent, true)
	label(screen, name, fonts.Bold(16), left+20, y, colorGray, text.AlignStart, 1)
	label(screen, value, fonts.Bold(22), right, y-4, valueColor, text.AlignEnd, 1)
}
