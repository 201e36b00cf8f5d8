package main

import (
	"testing"

	"github.com/iburimskiy/stream-overlay/internal/feed"
)

func TestFeedRowsOrder(t *testing.T) {
	var items []feed.Item
	for _, id := range []string{"A", "B", "C", "D", "E"} {
		items = append(items, feed.Item{ID: id, Icon: feed.IconHeart, Text: id})
	}
	rot := feed.NewRotation(feed.NewQueue(10, items...))

	rows := feedRows(rot.Frame())
	want := []string{"E", "A", "B", "C"}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for i, id := range want {
		if rows[i].Item.ID != id {
			t.Errorf("row %d = %s, want %s", i, rows[i].Item.ID, id)
		}
	}
	if rows[1].Slot != feed.SlotPrimary {
		t.Errorf("second row slot = %v, want primary", rows[1].Slot)
	}
}

func TestFeedRowsEmpty(t *testing.T) {
	rot := feed.NewRotation(feed.NewQueue(10))
	if rows := feedRows(rot.Frame()); len(rows) != 0 {
		t.Errorf("empty feed produced %d rows", len(rows))
	}
}
