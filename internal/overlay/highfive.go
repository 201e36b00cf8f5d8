package overlay

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/stream-overlay/internal/config"
	"github.com/iburimskiy/stream-overlay/internal/sim"
)

const (
	highFiveWidth = 380
	handSize      = 256
	punchScale    = 1.5
	punchTilt     = -12 * math.Pi / 180
)

var colorFlash = color.RGBA{R: 26, G: 26, B: 26, A: 26}

// highFiveScene is the clickable hand with its hype meter.
type highFiveScene struct {
	*base
	energy *sim.Energy
	hand   *ebiten.Image
}

func newHighFiveScene(env *Env) (*highFiveScene, error) {
	b := newBase(env, ModeHighFive.Standalone())
	s := &highFiveScene{base: b, energy: sim.NewEnergy(env.Rand)}

	s.energy.OnTrigger(func() {
		if _, err := b.sched.After(config.HighFiveFlash, s.energy.Settle); err != nil {
			s.energy.Settle()
		}
	})
	if env.Sound != nil {
		s.energy.OnTrigger(env.Sound.Thump)
	}

	if err := b.every(config.EnergyDecayTick, s.energy.Decay); err != nil {
		b.Close()
		return nil, err
	}
	if err := b.every(config.HighFiveEvery, func() { s.energy.MaybeTrigger() }); err != nil {
		b.Close()
		return nil, err
	}
	return s, nil
}

// panel returns the glass panel rectangle: right aligned, 60% of the
// window tall.
func (s *highFiveScene) panel() (x, y, w, h float32) {
	cfg := s.env.Config
	w = highFiveWidth
	h = float32(cfg.Window.Height) * 0.6
	x = float32(cfg.Window.Width) - w - 32
	y = (float32(cfg.Window.Height) - h) / 2
	return x, y, w, h
}

func (s *highFiveScene) Update(dt time.Duration) error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		x, y, w, h := s.panel()
		if float32(mx) >= x && float32(mx) <= x+w && float32(my) >= y && float32(my) <= y+h {
			s.energy.Trigger()
		}
	}
	return s.base.Update(dt)
}

func (s *highFiveScene) bandColor() color.RGBA {
	switch s.energy.Band() {
	case sim.BandOverdrive:
		return colorRed
	case sim.BandHot:
		return colorYellow
	default:
		return colorCyan
	}
}

func (s *highFiveScene) Draw(screen *ebiten.Image) {
	fonts := s.env.Fonts
	x, y, w, h := s.panel()
	drawPanel(screen, x, y, w, h, config.SidebarRadius, fade(colorGlass, 0.85), colorEdge)

	cx := float64(x + w/2)
	cy := float64(y+h/2) - 30
	if s.hand == nil {
		s.hand = ebiten.NewImage(handSize, handSize)
		drawHand(s.hand)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-handSize/2, -handSize/2)
	if s.energy.Animating() {
		op.GeoM.Rotate(punchTilt)
		op.GeoM.Scale(punchScale, punchScale)
	}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(s.bandColor())
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(s.hand, op)

	if s.energy.Animating() {
		vector.StrokeCircle(screen, float32(cx), float32(cy), handSize*0.75, 6, fade(colorWhite, 0.4), true)
		drawPanel(screen, x, y, w, h, config.SidebarRadius, colorFlash, color.RGBA{})
	}

	// hype meter
	barW := w * 0.75
	barX := x + (w-barW)/2
	barY := y + h - 40
	meter := colorCyan
	status := "SYNCED"
	if s.energy.Band() == sim.BandOverdrive {
		meter = colorRed
		status = "OVERDRIVE"
		// blink at 2 Hz
		if math.Mod(s.seconds(), 0.5) < 0.25 {
			meter = fade(colorRed, 0.6)
		}
	}
	label(screen, status, fonts.Bold(11), float64(barX), float64(barY)-20, colorWhite, text.AlignStart, 0.5)
	vector.DrawFilledCircle(screen, barX-8, barY-13, 3, meter, true)
	drawPanel(screen, barX, barY, barW, 6, 3, color.RGBA{R: 16, G: 18, B: 22, A: 128}, colorEdge)
	if lvl := float32(s.energy.Level() / 100); lvl > 0 {
		vector.DrawFilledRect(screen, barX, barY, barW*lvl, 6, meter, true)
	}
}

// drawHand draws an open hand in white on a handSize square, to be tinted
// when drawn.
func drawHand(dst *ebiten.Image) {
	const stroke = 6
	s := float32(handSize)
	white := colorWhite

	// palm
	vector.StrokeLine(dst, s*0.30, s*0.55, s*0.30, s*0.75, stroke, white, true)
	vector.StrokeLine(dst, s*0.70, s*0.45, s*0.70, s*0.75, stroke, white, true)
	vector.StrokeLine(dst, s*0.30, s*0.75, s*0.40, s*0.90, stroke, white, true)
	vector.StrokeLine(dst, s*0.70, s*0.75, s*0.60, s*0.90, stroke, white, true)
	vector.StrokeLine(dst, s*0.40, s*0.90, s*0.60, s*0.90, stroke, white, true)

	// fingers
	fingers := []struct{ x, top float32 }{
		{0.37, 0.18}, {0.49, 0.12}, {0.61, 0.18}, {0.70, 0.28},
	}
	for _, f := range fingers {
		vector.StrokeLine(dst, s*f.x, s*f.top, s*f.x, s*0.50, stroke, white, true)
		vector.DrawFilledCircle(dst, s*f.x, s*f.top, stroke/2, white, true)
	}

	// thumb
	vector.StrokeLine(dst, s*0.30, s*0.60, s*0.16, s*0.44, stroke, white, true)
	vector.DrawFilledCircle(dst, s*0.16, s*0.44, stroke/2, white, true)
}
