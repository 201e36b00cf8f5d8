package overlay

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/stream-overlay/internal/feed"
)

var (
	colorCyan    = color.RGBA{R: 34, G: 211, B: 238, A: 255}
	colorPink    = color.RGBA{R: 236, G: 72, B: 153, A: 255}
	colorMagenta = color.RGBA{R: 217, G: 70, B: 239, A: 255}
	colorGreen   = color.RGBA{R: 74, G: 222, B: 128, A: 255}
	colorRed     = color.RGBA{R: 239, G: 68, B: 68, A: 255}
	colorYellow  = color.RGBA{R: 250, G: 204, B: 21, A: 255}
	colorWhite   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorGray    = color.RGBA{R: 156, G: 163, B: 175, A: 255}
	colorGlass   = color.RGBA{R: 0, G: 0, B: 0, A: 178}
	colorEdge    = color.RGBA{R: 255, G: 255, B: 255, A: 26}
)

// hsvToRgb converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1)
func hsvToRgb(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return uint8((r + m) * 255), uint8((g + m) * 255), uint8((b + m) * 255)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// approach moves cur toward target by at most step.
func approach(cur, target, step float64) float64 {
	if math.Abs(target-cur) <= step {
		return target
	}
	if target > cur {
		return cur + step
	}
	return cur - step
}

// fade scales a premultiplied color by alpha.
func fade(c color.RGBA, alpha float64) color.RGBA {
	a := clamp01(alpha)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// mix blends two opaque colors, t=0 gives a.
func mix(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	l := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t) }
	return color.RGBA{R: l(a.R, b.R), G: l(a.G, b.G), B: l(a.B, b.B), A: l(a.A, b.A)}
}

// drawPanel fills a rectangle with rounded corners and a hairline edge. The
// pieces do not overlap, so translucent fills stay even.
func drawPanel(dst *ebiten.Image, x, y, w, h, r float32, fill, edge color.RGBA) {
	if r*2 > w {
		r = w / 2
	}
	if r*2 > h {
		r = h / 2
	}
	vector.DrawFilledRect(dst, x+r, y, w-2*r, r, fill, false)
	vector.DrawFilledRect(dst, x, y+r, w, h-2*r, fill, false)
	vector.DrawFilledRect(dst, x+r, y+h-r, w-2*r, r, fill, false)
	drawCorner(dst, x+r, y+r, r, x, y, fill)
	drawCorner(dst, x+w-r, y+r, r, x+w-r, y, fill)
	drawCorner(dst, x+r, y+h-r, r, x, y+h-r, fill)
	drawCorner(dst, x+w-r, y+h-r, r, x+w-r, y+h-r, fill)
	if edge.A > 0 {
		vector.StrokeLine(dst, x+r, y, x+w-r, y, 1, edge, true)
		vector.StrokeLine(dst, x+r, y+h, x+w-r, y+h, 1, edge, true)
		vector.StrokeLine(dst, x, y+r, x, y+h-r, 1, edge, true)
		vector.StrokeLine(dst, x+w, y+r, x+w, y+h-r, 1, edge, true)
	}
}

// drawCorner fills the part of the circle at (cx, cy) inside the r-by-r
// square whose top-left is (sx, sy).
func drawCorner(dst *ebiten.Image, cx, cy, r, sx, sy float32, clr color.RGBA) {
	sub := dst.SubImage(rectOf(sx, sy, r, r)).(*ebiten.Image)
	vector.DrawFilledCircle(sub, cx, cy, r, clr, true)
}

func rectOf(x, y, w, h float32) image.Rectangle {
	return image.Rect(int(x), int(y), int(x+w), int(y+h))
}

// drawArc strokes an arc from start to end radians as short segments.
func drawArc(dst *ebiten.Image, cx, cy, radius, start, end, width float64, clr func(t float64) color.RGBA) {
	const segments = 64
	span := end - start
	for i := 0; i < segments; i++ {
		t0 := float64(i) / segments
		t1 := float64(i+1) / segments
		a0 := start + span*t0
		a1 := start + span*t1
		x0 := cx + math.Cos(a0)*radius
		y0 := cy + math.Sin(a0)*radius
		x1 := cx + math.Cos(a1)*radius
		y1 := cy + math.Sin(a1)*radius
		vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr(t0), true)
	}
}

// drawIcon draws a small glyph for a feed icon centered on (cx, cy).
func drawIcon(dst *ebiten.Image, icon feed.Icon, cx, cy, size float32, clr color.RGBA) {
	s := size / 2
	switch icon {
	case feed.IconHeart:
		vector.DrawFilledCircle(dst, cx-s*0.45, cy-s*0.25, s*0.5, clr, true)
		vector.DrawFilledCircle(dst, cx+s*0.45, cy-s*0.25, s*0.5, clr, true)
		vector.StrokeLine(dst, cx-s*0.9, cy, cx, cy+s*0.9, s*0.5, clr, true)
		vector.StrokeLine(dst, cx+s*0.9, cy, cx, cy+s*0.9, s*0.5, clr, true)
	case feed.IconZap:
		vector.StrokeLine(dst, cx+s*0.3, cy-s, cx-s*0.4, cy+s*0.1, 2, clr, true)
		vector.StrokeLine(dst, cx-s*0.4, cy+s*0.1, cx+s*0.4, cy-s*0.1, 2, clr, true)
		vector.StrokeLine(dst, cx+s*0.4, cy-s*0.1, cx-s*0.3, cy+s, 2, clr, true)
	case feed.IconCoins:
		vector.StrokeCircle(dst, cx-s*0.25, cy+s*0.2, s*0.6, 2, clr, true)
		vector.StrokeCircle(dst, cx+s*0.25, cy-s*0.2, s*0.6, 2, clr, true)
	case feed.IconUsers:
		vector.DrawFilledCircle(dst, cx-s*0.35, cy-s*0.4, s*0.3, clr, true)
		vector.DrawFilledCircle(dst, cx+s*0.4, cy-s*0.3, s*0.25, clr, true)
		vector.DrawFilledRect(dst, cx-s*0.85, cy+s*0.05, s, s*0.7, clr, true)
		vector.DrawFilledRect(dst, cx+s*0.1, cy+s*0.1, s*0.65, s*0.55, clr, true)
	case feed.IconMessage:
		vector.StrokeRect(dst, cx-s, cy-s*0.7, s*2, s*1.3, 2, clr, true)
		vector.StrokeLine(dst, cx-s*0.5, cy+s*0.6, cx-s*0.8, cy+s, 2, clr, true)
	default:
		vector.DrawFilledCircle(dst, cx, cy, s*0.5, clr, true)
	}
}

// drawBackdrop paints the stand-in stream picture used when the window is
// not transparent.
func drawBackdrop(screen *ebiten.Image, t float64) {
	b := screen.Bounds()
	w, h := float32(b.Dx()), b.Dy()
	for y := 0; y < h; y += 2 {
		ratio := float64(y) / float64(h)
		r := uint8(10 + 20*math.Sin(t*0.5+ratio*math.Pi))
		g := uint8(12 + 15*math.Cos(t*0.3+ratio*math.Pi))
		bl := uint8(30 + 25*math.Sin(t*0.7+ratio*math.Pi))
		vector.StrokeLine(screen, 0, float32(y), w, float32(y), 2, color.RGBA{R: r, G: g, B: bl, A: 255}, false)
	}
}
