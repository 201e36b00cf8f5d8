package overlay

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/stream-overlay/internal/config"
	"github.com/iburimskiy/stream-overlay/internal/feed"
)

const (
	rowGap      = 12.0
	exitScale   = 0.9
	feedPadding = 20.0
)

var colorRowFill = color.RGBA{R: 0, G: 0, B: 0, A: 102}

// feedRow is the on-screen state of one item. y is relative to the feed
// center and walks toward its slot a little every frame.
type feedRow struct {
	item  feed.Item
	slot  feed.Slot
	y     float64
	alpha float64
	scale float64
}

// slotTarget is where an item with this offset should sit. The pair {0, 1}
// straddles the center one spacing apart; the transition slots sit one
// spacing further out, invisible.
func slotTarget(offset int, slot feed.Slot, spacing float64) (y, alpha, scale float64) {
	y = (float64(offset) - 0.5) * spacing
	if slot.InActivePair() {
		return y, 1, 1
	}
	return y, 0, exitScale
}

// FeedView renders a rotation as the two-row rotary feed.
type FeedView struct {
	rotation *feed.Rotation
	spacing  float64
	rows     map[string]*feedRow
	order    []string
	level    func() float64
}

// NewFeedView draws rot with rows spacing pixels apart. level, if set,
// brightens the primary row's edge with the current sound level.
func NewFeedView(rot *feed.Rotation, spacing float64, level func() float64) *FeedView {
	return &FeedView{
		rotation: rot,
		spacing:  spacing,
		rows:     map[string]*feedRow{},
		level:    level,
	}
}

func (v *FeedView) rowHeight() float64 {
	return v.spacing - rowGap
}

// Update recomputes the placements and moves each row one frame toward its
// slot. Rows that leave the transition range are dropped at once.
func (v *FeedView) Update() {
	frames := float64(config.SlotTransitionFrames)
	stepY := v.spacing / frames
	stepA := 1 / frames
	stepS := (1 - exitScale) / frames

	v.order = v.order[:0]
	live := map[string]bool{}
	for _, p := range v.rotation.Frame() {
		if !p.Slot.InTransition() {
			continue
		}
		ty, ta, ts := slotTarget(p.Offset, p.Slot, v.spacing)
		r, ok := v.rows[p.Item.ID]
		if !ok {
			r = &feedRow{y: ty, scale: ts}
			v.rows[p.Item.ID] = r
		}
		r.item = p.Item
		r.slot = p.Slot
		r.y = approach(r.y, ty, stepY)
		r.alpha = approach(r.alpha, ta, stepA)
		r.scale = approach(r.scale, ts, stepS)

		live[p.Item.ID] = true
		v.order = append(v.order, p.Item.ID)
	}
	for id := range v.rows {
		if !live[id] {
			delete(v.rows, id)
		}
	}
}

// Empty reports whether there is nothing to draw.
func (v *FeedView) Empty() bool {
	return len(v.order) == 0
}

// Draw paints the feed into the given box, clipped to it.
func (v *FeedView) Draw(dst *ebiten.Image, fonts *Fonts, x, y, w, h float32) {
	clip := dst.SubImage(rectOf(x, y, w, h)).(*ebiten.Image)

	cx := float64(x + w/2)
	cy := float64(y + h/2)
	vector.StrokeLine(clip, float32(cx)-w*0.375, float32(cy), float32(cx)+w*0.375, float32(cy), 1, colorEdge, true)

	if v.Empty() {
		label(clip, "NO EVENTS", fonts.Bold(11), cx, cy-8, colorGray, text.AlignCenter, 0.6)
		return
	}

	nameFace := fonts.Bold(18)
	highlightFace := fonts.Regular(11)
	glow := 0.0
	if v.level != nil {
		glow = v.level()
	}

	for _, id := range v.order {
		r := v.rows[id]
		if r.alpha <= 0.01 {
			continue
		}
		rw := (float64(w) - 2*feedPadding) * r.scale
		rh := v.rowHeight() * r.scale
		left := cx - rw/2
		top := cy + r.y - rh/2

		edge := colorEdge
		if r.slot == feed.SlotPrimary && glow > 0 {
			edge = mix(colorEdge, colorCyan, glow)
		}
		drawPanel(clip, float32(left), float32(top), float32(rw), float32(rh), 12, fade(colorRowFill, r.alpha), fade(edge, r.alpha))
		drawIcon(clip, r.item.Icon, float32(left+28), float32(top+rh/2), 20, fade(colorPink, r.alpha))

		textX := left + 56
		textW := rw - 68
		if r.item.Highlight == "" {
			label(clip, truncate(r.item.Text, nameFace, textW), nameFace, textX, top+rh/2-11, colorGray, text.AlignStart, r.alpha)
			continue
		}
		label(clip, truncate(r.item.Text, nameFace, textW), nameFace, textX, top+rh/2-18, colorGray, text.AlignStart, r.alpha)
		label(clip, truncate(r.item.Highlight, highlightFace, textW), highlightFace, textX, top+rh/2+5, colorCyan, text.AlignStart, r.alpha)
	}
}
