package overlay

import (
	"math"
	"testing"

	"github.com/iburimskiy/stream-overlay/internal/config"
	"github.com/iburimskiy/stream-overlay/internal/feed"
)

func fiveItems() *feed.Queue {
	var items []feed.Item
	for _, id := range []string{"A", "B", "C", "D", "E"} {
		items = append(items, feed.Item{ID: id, Icon: feed.IconZap, Text: id})
	}
	return feed.NewQueue(10, items...)
}

func settle(v *FeedView) {
	for i := 0; i < config.SlotTransitionFrames+1; i++ {
		v.Update()
	}
}

func TestSlotTargetPairDoesNotOverlap(t *testing.T) {
	const spacing = 72.0
	v := &FeedView{spacing: spacing}
	y0, a0, _ := slotTarget(0, feed.SlotPrimary, spacing)
	y1, a1, _ := slotTarget(1, feed.SlotSecondary, spacing)

	if a0 != 1 || a1 != 1 {
		t.Errorf("active pair alphas = %v, %v; want 1, 1", a0, a1)
	}
	if y0 >= y1 {
		t.Errorf("primary y %v should be above secondary y %v", y0, y1)
	}
	if gap := y1 - y0; gap < v.rowHeight() {
		t.Errorf("rows overlap: centers %v apart, row height %v", gap, v.rowHeight())
	}
	if math.Abs(y0+y1) > 1e-9 {
		t.Errorf("pair not centered: %v, %v", y0, y1)
	}

	for _, tc := range []struct {
		offset int
		slot   feed.Slot
	}{{-1, feed.SlotExiting}, {2, feed.SlotEntering}} {
		_, a, s := slotTarget(tc.offset, tc.slot, spacing)
		if a != 0 || s != exitScale {
			t.Errorf("%v: alpha %v scale %v, want 0, %v", tc.slot, a, s, exitScale)
		}
	}
}

func TestFeedViewSettles(t *testing.T) {
	rot := feed.NewRotation(fiveItems())
	v := NewFeedView(rot, 72, nil)
	settle(v)

	want := map[string]struct {
		y, alpha float64
	}{
		"A": {-36, 1},
		"B": {36, 1},
		"C": {108, 0},
		"E": {-108, 0},
	}
	if len(v.rows) != len(want) {
		t.Fatalf("%d rows tracked, want %d", len(v.rows), len(want))
	}
	for id, w := range want {
		r, ok := v.rows[id]
		if !ok {
			t.Fatalf("row %s missing", id)
		}
		if r.y != w.y || r.alpha != w.alpha {
			t.Errorf("row %s at y=%v alpha=%v, want y=%v alpha=%v", id, r.y, r.alpha, w.y, w.alpha)
		}
	}
	if _, ok := v.rows["D"]; ok {
		t.Error("hidden item D has a row")
	}
}

func TestFeedViewRotates(t *testing.T) {
	rot := feed.NewRotation(fiveItems())
	v := NewFeedView(rot, 72, nil)
	settle(v)

	rot.Advance()
	v.Update()
	a := v.rows["A"]
	if a.y >= -36 || a.y <= -108 {
		t.Errorf("A should be moving up between slots, y=%v", a.y)
	}
	if a.alpha >= 1 || a.alpha <= 0 {
		t.Errorf("A should be fading, alpha=%v", a.alpha)
	}
	if _, ok := v.rows["E"]; ok {
		t.Error("E left the transition range but still has a row")
	}

	settle(v)
	if r := v.rows["A"]; r.y != -108 || r.alpha != 0 {
		t.Errorf("A settled at y=%v alpha=%v", r.y, r.alpha)
	}
	if r := v.rows["C"]; r.y != 36 || r.alpha != 1 {
		t.Errorf("C settled at y=%v alpha=%v", r.y, r.alpha)
	}
	if r := v.rows["D"]; r == nil || r.y != 108 || r.alpha != 0 {
		t.Errorf("D should wait in the entering slot, got %+v", r)
	}
}

func TestFeedViewEmpty(t *testing.T) {
	q := feed.NewQueue(10)
	v := NewFeedView(feed.NewRotation(q), 72, nil)
	v.Update()
	if !v.Empty() {
		t.Error("empty source should give an empty view")
	}
	q.Push(feed.Item{ID: "x", Icon: feed.IconHeart, Text: "x"})
	v.Update()
	if v.Empty() {
		t.Error("view should pick up the pushed item")
	}
}

func TestApproach(t *testing.T) {
	tests := []struct {
		cur, target, step, want float64
	}{
		{0, 10, 3, 3},
		{10, 0, 3, 7},
		{9, 10, 3, 10},
		{5, 5, 1, 5},
	}
	for _, tt := range tests {
		if got := approach(tt.cur, tt.target, tt.step); got != tt.want {
			t.Errorf("approach(%v, %v, %v) = %v, want %v", tt.cur, tt.target, tt.step, got, tt.want)
		}
	}
}
