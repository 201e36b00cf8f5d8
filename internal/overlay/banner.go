package overlay

import (
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/stream-overlay/internal/config"
)

const (
	bannerHeight  = 120
	bannerPadding = 40
	handleBox     = 56
	handleGap     = 32
)

var platformColors = map[string]color.RGBA{
	"twitch":  {R: 0x91, G: 0x46, B: 0xFF, A: 0xFF},
	"youtube": {R: 0xFF, G: 0x00, B: 0x00, A: 0xFF},
	"kick":    {R: 0x53, G: 0xFC, B: 0x18, A: 0xFF},
}

func platformColor(platform string) color.RGBA {
	if c, ok := platformColors[strings.ToLower(platform)]; ok {
		return c
	}
	return colorGray
}

// bannerScene is the name plate with social handles.
type bannerScene struct {
	*base
}

func newBannerScene(env *Env) (*bannerScene, error) {
	return &bannerScene{base: newBase(env, ModeBanner.Standalone())}, nil
}

func (s *bannerScene) handleWidth(face text.Face, h config.Handle) float64 {
	w, _ := text.Measure(h.Handle, face, 0)
	return math.Max(w, handleBox)
}

func (s *bannerScene) Draw(screen *ebiten.Image) {
	cfg := s.env.Config
	fonts := s.env.Fonts
	b := cfg.Banner

	nameFace := fonts.Bold(44)
	handleFace := fonts.Bold(14)

	nameW, _ := text.Measure(b.Name, nameFace, 0)
	accentW, _ := text.Measure(b.Accent, nameFace, 0)
	left := math.Max(nameW+accentW, 220)

	right := 0.0
	for i, h := range b.Handles {
		if i > 0 {
			right += handleGap
		}
		right += s.handleWidth(handleFace, h)
	}

	w := bannerPadding + left + 2*handleGap + right + bannerPadding
	x := (float64(cfg.Window.Width) - w) / 2
	y := (float64(cfg.Window.Height) - bannerHeight) / 2

	// glow pulses between 25% and 50% and drifts from cyan to pink
	glow := 0.25 + 0.25*(0.5+0.5*math.Sin(s.seconds()*2))
	gr, gg, gb := hsvToRgb(190+140*(0.5+0.5*math.Sin(s.seconds()*0.5)), 0.8, 0.9)
	halo := color.RGBA{R: gr, G: gg, B: gb, A: 255}
	drawPanel(screen, float32(x-4), float32(y-4), float32(w+8), bannerHeight+8, 14, fade(halo, glow*0.4), color.RGBA{})
	drawPanel(screen, float32(x), float32(y), float32(w), bannerHeight, 12, colorGlass, colorEdge)
	vector.StrokeLine(screen, float32(x+40), float32(y), float32(x+w-40), float32(y), 1, fade(colorCyan, 0.5), true)
	vector.StrokeLine(screen, float32(x+40), float32(y+bannerHeight), float32(x+w-40), float32(y+bannerHeight), 1, fade(colorPink, 0.5), true)

	// name plate
	nx := x + bannerPadding
	label(screen, b.Name, nameFace, nx, y+18, colorWhite, text.AlignStart, 1)
	label(screen, b.Accent, nameFace, nx+nameW, y+18, colorCyan, text.AlignStart, 1)
	dot := 0.4 + 0.6*(0.5+0.5*math.Sin(s.seconds()*4))
	vector.DrawFilledCircle(screen, float32(nx+4), float32(y+86), 4, fade(colorRed, dot), true)
	label(screen, strings.ToUpper(b.Tagline), fonts.Bold(13), nx+16, y+78, colorRed, text.AlignStart, 1)

	// divider
	dx := float32(nx + left + handleGap)
	vector.StrokeLine(screen, dx, float32(y+28), dx, float32(y+bannerHeight-28), 1, fade(colorWhite, 0.2), true)

	hx := float64(dx) + handleGap
	for _, h := range b.Handles {
		hw := s.handleWidth(handleFace, h)
		c := platformColor(h.Platform)
		bx := float32(hx + (hw-handleBox)/2)
		drawPanel(screen, bx, float32(y+16), handleBox, handleBox, 8, fade(c, 0.1), fade(c, 0.2))
		label(screen, platformGlyph(h.Platform), fonts.Bold(24), float64(bx)+handleBox/2, y+28, c, text.AlignCenter, 1)
		label(screen, h.Handle, handleFace, hx+hw/2, y+80, colorGray, text.AlignCenter, 1)
		hx += hw + handleGap
	}
}

// platformGlyph is the letter drawn in a handle box.
func platformGlyph(platform string) string {
	if platform == "" {
		return "?"
	}
	return strings.ToUpper(platform[:1])
}
