package overlay

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/stream-overlay/internal/backdrop"
)

// ebitenWindow maps backdrop properties onto the ebiten window. The screen
// is always created transparent, so Transparent is only a flag that Draw
// reads to decide whether to paint the mock backdrop.
type ebitenWindow struct {
	flags *backdrop.MemWindow
}

// NewWindow returns the backdrop.Window for the running ebiten window.
func NewWindow(transparent bool) backdrop.Window {
	return &ebitenWindow{
		flags: backdrop.NewMemWindow(map[backdrop.Property]bool{backdrop.Transparent: transparent}),
	}
}

func (w *ebitenWindow) Get(p backdrop.Property) bool {
	switch p {
	case backdrop.Decorated:
		return ebiten.IsWindowDecorated()
	case backdrop.Floating:
		return ebiten.IsWindowFloating()
	default:
		return w.flags.Get(p)
	}
}

func (w *ebitenWindow) Set(p backdrop.Property, v bool) {
	switch p {
	case backdrop.Decorated:
		ebiten.SetWindowDecorated(v)
	case backdrop.Floating:
		ebiten.SetWindowFloating(v)
	default:
		w.flags.Set(p, v)
	}
}
