package feed

import "fmt"

// Slot is the visual role of an item relative to the active position.
type Slot int

const (
	SlotHidden Slot = iota
	SlotPrimary
	SlotSecondary
	SlotExiting
	SlotEntering
)

func (s Slot) String() string {
	switch s {
	case SlotPrimary:
		return "primary"
	case SlotSecondary:
		return "secondary"
	case SlotExiting:
		return "exiting"
	case SlotEntering:
		return "entering"
	default:
		return "hidden"
	}
}

// InActivePair reports whether the slot is one of the two fully shown slots.
func (s Slot) InActivePair() bool {
	return s == SlotPrimary || s == SlotSecondary
}

// InTransition reports whether the slot is kept for the enter/exit animation
// or is part of the active pair.
func (s Slot) InTransition() bool {
	return s != SlotHidden
}

// Classify maps a circular offset to its slot. The active pair is {0, 1},
// the transition range is {-1, 0, 1, 2}.
func Classify(offset int) Slot {
	switch offset {
	case 0:
		return SlotPrimary
	case 1:
		return SlotSecondary
	case -1:
		return SlotExiting
	case 2:
		return SlotEntering
	default:
		return SlotHidden
	}
}

// CircularOffset returns the signed minimal distance from active to index on
// a ring of n items. The result lies in (-n/2, n/2]: when n is even and index
// sits exactly half way round, the offset is +n/2.
//
// index and active must both be in [0, n); anything else panics.
func CircularOffset(index, active, n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("feed: circular offset on empty ring (index %d)", index))
	}
	if index < 0 || index >= n {
		panic(fmt.Sprintf("feed: index %d out of range [0, %d)", index, n))
	}
	if active < 0 || active >= n {
		panic(fmt.Sprintf("feed: active index %d out of range [0, %d)", active, n))
	}
	diff := (index - active + n) % n
	if 2*diff > n {
		diff -= n
	}
	return diff
}

// Placement is what the renderer receives for each item on a pass.
type Placement struct {
	Index  int
	Item   Item
	Offset int
	Slot   Slot
}

// Rotation holds the active position of a rotary feed over a Source. It only
// reads the source; items are added and evicted elsewhere.
type Rotation struct {
	src    Source
	active int
}

func NewRotation(src Source) *Rotation {
	return &Rotation{src: src}
}

// clamp pulls a stale active index back into range after the source shrank.
func (r *Rotation) clamp(n int) {
	if n == 0 {
		r.active = 0
		return
	}
	if r.active >= n {
		r.active = n - 1
	}
}

// Advance moves the active position one step forward, wrapping at the end.
// It is a no-op while the source is empty.
func (r *Rotation) Advance() {
	n := len(r.src.Items())
	if n == 0 {
		return
	}
	r.clamp(n)
	r.active = (r.active + 1) % n
}

// ActiveIndex returns the current active index, or false when there is
// nothing to show.
func (r *Rotation) ActiveIndex() (int, bool) {
	n := len(r.src.Items())
	if n == 0 {
		return 0, false
	}
	r.clamp(n)
	return r.active, true
}

// Active returns the item in the primary slot.
func (r *Rotation) Active() (Item, bool) {
	items := r.src.Items()
	if len(items) == 0 {
		return Item{}, false
	}
	r.clamp(len(items))
	return items[r.active], true
}

// Offset returns the circular offset of index from the active position.
// index must be valid for the current items.
func (r *Rotation) Offset(index int) int {
	n := len(r.src.Items())
	r.clamp(n)
	return CircularOffset(index, r.active, n)
}

// Frame runs one recomputation pass over a single snapshot of the items. An
// empty source yields no placements.
func (r *Rotation) Frame() []Placement {
	items := r.src.Items()
	n := len(items)
	if n == 0 {
		return nil
	}
	r.clamp(n)

	out := make([]Placement, n)
	for i, it := range items {
		off := CircularOffset(i, r.active, n)
		out[i] = Placement{Index: i, Item: it, Offset: off, Slot: Classify(off)}
	}
	return out
}

// Visible returns the active pair, primary first.
func (r *Rotation) Visible() []Placement {
	var primary, secondary []Placement
	for _, p := range r.Frame() {
		switch p.Slot {
		case SlotPrimary:
			primary = append(primary, p)
		case SlotSecondary:
			secondary = append(secondary, p)
		}
	}
	return append(primary, secondary...)
}
