package overlay

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/stream-overlay/internal/config"
	"github.com/iburimskiy/stream-overlay/internal/sim"
)

const (
	gaugeWidth  = 560
	gaugeHeight = 300
	gaugeRadius = 100
	gaugeStroke = 14

	// the arc opens at the bottom: 270 degrees starting at 135
	gaugeStart = 3 * math.Pi / 4
	gaugeSweep = 3 * math.Pi / 2

	// fraction of the dial the needle may cover per frame
	gaugeStep = 0.02
)

var (
	colorTrack      = color.RGBA{R: 13, G: 13, B: 13, A: 13}
	colorGaugeStart = color.RGBA{R: 217, G: 70, B: 239, A: 255}
	colorGaugeEnd   = color.RGBA{R: 6, G: 182, B: 212, A: 255}
)

// speedScene is the velocity dial with the weather and location callouts.
type speedScene struct {
	*base
	speed *sim.Speed
	shown float64
}

func newSpeedScene(env *Env) (*speedScene, error) {
	b := newBase(env, ModeSpeed.Standalone())
	s := &speedScene{base: b, speed: sim.NewSpeed(env.Rand, env.Config.Speed.Max)}
	s.shown = s.speed.Fraction()
	if err := b.every(config.SpeedEvery, s.speed.Tick); err != nil {
		b.Close()
		return nil, err
	}
	return s, nil
}

func (s *speedScene) Update(dt time.Duration) error {
	if err := s.base.Update(dt); err != nil {
		return err
	}
	s.shown = approach(s.shown, s.speed.Fraction(), gaugeStep)
	return nil
}

func (s *speedScene) Draw(screen *ebiten.Image) {
	cfg := s.env.Config
	fonts := s.env.Fonts

	x := float64(cfg.Window.Width-gaugeWidth) / 2
	y := float64(cfg.Window.Height-gaugeHeight) / 2
	cx := x + gaugeWidth/2
	cy := y + gaugeHeight/2 + 16

	label(screen, "VELOCITY", fonts.Bold(11), cx, cy-gaugeRadius-36, colorCyan, text.AlignCenter, 1)
	drawArc(screen, cx, cy, gaugeRadius, gaugeStart, gaugeStart+gaugeSweep, gaugeStroke, func(float64) color.RGBA {
		return colorTrack
	})
	if s.shown > 0 {
		drawArc(screen, cx, cy, gaugeRadius, gaugeStart, gaugeStart+gaugeSweep*s.shown, gaugeStroke, func(t float64) color.RGBA {
			return mix(colorGaugeStart, colorGaugeEnd, t)
		})
	}
	label(screen, s.speed.Label(), fonts.Bold(56), cx, cy-40, colorWhite, text.AlignCenter, 1)
	label(screen, "KM/H", fonts.Bold(11), cx, cy+24, colorPink, text.AlignCenter, 1)

	// weather, top left
	wx, wy := x+16, y+16
	label(screen, cfg.Weather.Temp, fonts.Bold(28), wx, wy, colorWhite, text.AlignStart, 1)
	label(screen, cfg.Weather.Condition, fonts.Bold(12), wx+4, wy+38, colorCyan, text.AlignStart, 1)
	label(screen, "WIND "+cfg.Weather.Wind, fonts.Regular(10), wx+4, wy+56, colorGray, text.AlignStart, 1)
	s.drawLeader(screen, wx+80, wy+45, 30, colorCyan)

	// location, bottom right
	rx, ry := x+gaugeWidth-16, y+gaugeHeight-16
	label(screen, cfg.Location.City, fonts.Bold(18), rx-24, ry-44, colorWhite, text.AlignEnd, 1)
	vector.DrawFilledCircle(screen, float32(rx-8), float32(ry-34), 6, colorPink, true)
	label(screen, cfg.Location.Sector, fonts.Bold(12), rx-4, ry-18, colorPink, text.AlignEnd, 0.8)
	s.drawLeader(screen, rx-100, ry-45, 210, colorPink)
}

// drawLeader draws a callout line 60px long at angle degrees, ending in a
// dot at (x, y).
func (s *speedScene) drawLeader(screen *ebiten.Image, x, y, angle float64, clr color.RGBA) {
	rad := angle * math.Pi / 180
	ex := x + math.Cos(rad)*60
	ey := y + math.Sin(rad)*60
	vector.StrokeLine(screen, float32(x), float32(y), float32(ex), float32(ey), 1, fade(clr, 0.5), true)
	vector.DrawFilledCircle(screen, float32(x), float32(y), 2, clr, true)
}
