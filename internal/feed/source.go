package feed

// DefaultCapacity is how many events the simulated feed keeps.
const DefaultCapacity = 10

// Source supplies the ordered items of a feed. The sequence may change length
// and content between calls.
type Source interface {
	Items() []Item
}

// Queue is a newest-first bounded item list. Pushing beyond capacity drops
// the oldest item.
type Queue struct {
	items    []Item
	capacity int
	onPush   []func(Item)
}

// NewQueue returns a queue holding at most capacity items, seeded with the
// given items in order. A non-positive capacity uses DefaultCapacity.
func NewQueue(capacity int, seed ...Item) *Queue {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	q := &Queue{capacity: capacity}
	q.Replace(seed)
	return q
}

func (q *Queue) Items() []Item {
	return q.items
}

func (q *Queue) Len() int {
	return len(q.items)
}

func (q *Queue) Capacity() int {
	return q.capacity
}

// Push puts item at the front.
func (q *Queue) Push(item Item) {
	keep := len(q.items)
	if keep > q.capacity-1 {
		keep = q.capacity - 1
	}
	next := make([]Item, 0, keep+1)
	next = append(next, item)
	next = append(next, q.items[:keep]...)
	q.items = next

	for _, fn := range q.onPush {
		fn(item)
	}
}

// Replace swaps the whole sequence, truncated to capacity.
func (q *Queue) Replace(items []Item) {
	if len(items) > q.capacity {
		items = items[:q.capacity]
	}
	q.items = append([]Item(nil), items...)
}

// OnPush registers fn to be called after every Push.
func (q *Queue) OnPush(fn func(Item)) {
	q.onPush = append(q.onPush, fn)
}
