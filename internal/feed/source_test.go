package feed

import "testing"

func ids(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestQueuePushPrependsAndEvicts(t *testing.T) {
	q := NewQueue(3, letters("A", "B")...)
	q.Push(Item{ID: "C"})
	if got := ids(q.Items()); !equalIDs(got, []string{"C", "A", "B"}) {
		t.Fatalf("items = %v", got)
	}
	q.Push(Item{ID: "D"})
	if got := ids(q.Items()); !equalIDs(got, []string{"D", "C", "A"}) {
		t.Errorf("items = %v, want [D C A]", got)
	}
	if q.Len() != 3 {
		t.Errorf("Len() = %d, want 3", q.Len())
	}
}

func TestQueueSnapshotStable(t *testing.T) {
	q := NewQueue(2, letters("A", "B")...)
	snap := q.Items()
	q.Push(Item{ID: "C"})
	if got := ids(snap); !equalIDs(got, []string{"A", "B"}) {
		t.Errorf("earlier snapshot changed to %v", got)
	}
}

func TestQueueReplaceTruncates(t *testing.T) {
	q := NewQueue(2)
	q.Replace(letters("A", "B", "C"))
	if got := ids(q.Items()); !equalIDs(got, []string{"A", "B"}) {
		t.Errorf("items = %v, want [A B]", got)
	}
}

func TestQueueDefaultCapacity(t *testing.T) {
	q := NewQueue(0)
	if q.Capacity() != DefaultCapacity {
		t.Errorf("Capacity() = %d, want %d", q.Capacity(), DefaultCapacity)
	}
	for i := 0; i < 15; i++ {
		q.Push(Item{ID: string(rune('a' + i))})
	}
	if q.Len() != DefaultCapacity {
		t.Errorf("Len() = %d, want %d", q.Len(), DefaultCapacity)
	}
}

func TestQueueOnPush(t *testing.T) {
	q := NewQueue(5)
	var got []string
	q.OnPush(func(it Item) { got = append(got, it.ID) })
	q.Push(Item{ID: "x"})
	q.Push(Item{ID: "y"})
	q.Replace(letters("z"))
	if !equalIDs(got, []string{"x", "y"}) {
		t.Errorf("pushed = %v, want [x y]", got)
	}
}

func TestIconValid(t *testing.T) {
	if !IconCoins.Valid() {
		t.Error("coins should be valid")
	}
	if Icon("rocket").Valid() {
		t.Error("rocket should not be valid")
	}
}
