package overlay

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/stream-overlay/internal/sim"
)

const (
	goalBarWidth  = 64
	goalBarHeight = 144
	// target label + bar + amount + sub label
	goalHeight = 24 + goalBarHeight + 52
)

// drawGoal draws one vertical goal bar centered on cx, starting at top.
func drawGoal(dst *ebiten.Image, fonts *Fonts, g sim.Goal, currency string, cx, top float64) {
	label(dst, wholeMoney(currency, g.Target), fonts.Bold(16), cx, top, colorCyan, text.AlignCenter, 1)

	bx := float32(cx - goalBarWidth/2)
	by := float32(top + 24)
	drawPanel(dst, bx, by, goalBarWidth, goalBarHeight, 8, fade(colorGlass, 0.6), fade(colorCyan, 0.3))
	for i := 1; i <= 3; i++ {
		gy := by + float32(i)*goalBarHeight/4
		vector.StrokeLine(dst, bx, gy, bx+goalBarWidth, gy, 1, fade(colorCyan, 0.2), false)
	}

	pct := g.Percent()
	fill := float32(goalBarHeight * pct / 100)
	if fill > 0 {
		vector.DrawFilledRect(dst, bx, by+goalBarHeight-fill, goalBarWidth, fill, fade(colorCyan, 0.2), false)
		vector.StrokeLine(dst, bx, by+goalBarHeight-fill, bx+goalBarWidth, by+goalBarHeight-fill, 2, colorCyan, true)
	}
	label(dst, percentLabel(pct), fonts.Bold(18), cx, float64(by)+goalBarHeight/2-11, colorWhite, text.AlignCenter, 1)

	below := float64(by) + goalBarHeight + 8
	label(dst, wholeMoney(currency, g.Current), fonts.Bold(18), cx, below, colorWhite, text.AlignCenter, 1)
	label(dst, g.SubLabel, fonts.Bold(11), cx, below+24, colorCyan, text.AlignCenter, 0.8)
}

func percentLabel(pct float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(pct)))
}
