// Package backdrop hands out scoped changes to process-wide window
// properties. Every acquisition records what it replaced and puts it back
// when released, so a view that makes the window transparent for capture
// cannot leave it that way after teardown.
package backdrop

import "sync"

// Property is a window-wide boolean setting.
type Property int

const (
	// Transparent clears the screen to alpha 0 instead of painting a
	// backdrop.
	Transparent Property = iota
	Decorated
	Floating
)

func (p Property) String() string {
	switch p {
	case Transparent:
		return "transparent"
	case Decorated:
		return "decorated"
	case Floating:
		return "floating"
	default:
		return "unknown"
	}
}

// Window reads and writes the properties.
type Window interface {
	Get(p Property) bool
	Set(p Property, v bool)
}

// Release undoes one acquisition. Calling it more than once is harmless.
type Release func()

type frame struct {
	prev     map[Property]bool
	released bool
}

// Guard stacks acquisitions over one Window.
type Guard struct {
	mu    sync.Mutex
	win   Window
	stack []*frame
}

func NewGuard(win Window) *Guard {
	return &Guard{win: win}
}

// Acquire applies want and returns the func that restores the previous
// values. Releases unwind in LIFO order: releasing an outer acquisition
// while an inner one is held defers its restore until the inner one goes.
func (g *Guard) Acquire(want map[Property]bool) Release {
	g.mu.Lock()
	defer g.mu.Unlock()

	f := &frame{prev: make(map[Property]bool, len(want))}
	for p, v := range want {
		f.prev[p] = g.win.Get(p)
		g.win.Set(p, v)
	}
	g.stack = append(g.stack, f)

	var once sync.Once
	return func() {
		once.Do(func() { g.release(f) })
	}
}

func (g *Guard) release(f *frame) {
	g.mu.Lock()
	defer g.mu.Unlock()

	f.released = true
	for len(g.stack) > 0 {
		top := g.stack[len(g.stack)-1]
		if !top.released {
			return
		}
		for p, v := range top.prev {
			g.win.Set(p, v)
		}
		g.stack = g.stack[:len(g.stack)-1]
	}
}

// Held returns the number of acquisitions not yet restored.
func (g *Guard) Held() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.stack)
}

// CaptureFriendly is the property set standalone overlays ask for.
func CaptureFriendly() map[Property]bool {
	return map[Property]bool{
		Transparent: true,
		Decorated:   false,
		Floating:    true,
	}
}

// MemWindow keeps properties in memory. The overlay app uses it for the
// transparency flag its Draw reads; tests use it for everything.
type MemWindow struct {
	mu    sync.Mutex
	props map[Property]bool
}

func NewMemWindow(initial map[Property]bool) *MemWindow {
	w := &MemWindow{props: map[Property]bool{}}
	for p, v := range initial {
		w.props[p] = v
	}
	return w
}

func (w *MemWindow) Get(p Property) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.props[p]
}

func (w *MemWindow) Set(p Property, v bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.props[p] = v
}
