package pqueue

import (
	"fmt"
	"strings"
)

// New returns an empty Queue ordered by compare.
// It panics with ErrNilComparator if compare is nil.
// Complexity: O(1).
func New[T comparable, P any](compare Comparator[P]) *Queue[T, P] {
	if compare == nil {
		panic(ErrNilComparator.Error())
	}

	return &Queue[T, P]{
		compare: compare,
		heap:    make([]element[T, P], 0),
		index:   make(map[T]int),
	}
}

// NewFrom builds a Queue from two lockstep slices in linear time.
// items[i] is queued with priorities[i]; the heap order is then restored
// bottom-up starting at the last internal node.
//
// Errors:
//   - ErrNilComparator    : compare is nil.
//   - ErrLengthMismatch   : len(items) != len(priorities).
//   - ErrDuplicateElement : an item occurs more than once.
//
// On error no queue is returned. The input slices are not retained.
// Complexity: O(n) time, O(n) memory.
func NewFrom[T comparable, P any](items []T, priorities []P, compare Comparator[P]) (*Queue[T, P], error) {
	if compare == nil {
		return nil, ErrNilComparator
	}
	if len(items) != len(priorities) {
		return nil, fmt.Errorf("%w: %d items, %d priorities", ErrLengthMismatch, len(items), len(priorities))
	}

	q := &Queue[T, P]{
		compare: compare,
		heap:    make([]element[T, P], len(items)),
		index:   make(map[T]int, len(items)),
	}
	for i, it := range items {
		if _, dup := q.index[it]; dup {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateElement, it)
		}
		q.heap[i] = element[T, P]{item: it, priority: priorities[i]}
		q.index[it] = i
	}

	// Leaves are trivially heaps; fix every internal node from the bottom up.
	for i := len(q.heap)/2 - 1; i >= 0; i-- {
		q.down(i)
	}

	return q, nil
}

// Insert queues item with the given priority.
// Returns ErrDuplicateElement if item is already queued, whatever its priority.
// Complexity: O(log n).
func (q *Queue[T, P]) Insert(item T, priority P) error {
	if _, ok := q.index[item]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateElement, item)
	}

	q.heap = append(q.heap, element[T, P]{item: item, priority: priority})
	last := len(q.heap) - 1
	q.index[item] = last
	q.up(last)

	return nil
}

// Extract removes and returns the most extreme item and its priority.
// The last slot is moved to the root and sifted down.
// Returns ErrEmptyQueue if the queue is empty.
// Complexity: O(log n).
func (q *Queue[T, P]) Extract() (T, P, error) {
	if len(q.heap) == 0 {
		var zeroT T
		var zeroP P
		return zeroT, zeroP, ErrEmptyQueue
	}

	root := q.heap[0]
	last := len(q.heap) - 1
	q.swap(0, last)
	q.heap[last] = element[T, P]{} // drop references held by the vacated slot
	q.heap = q.heap[:last]
	delete(q.index, root.item)
	if last > 0 {
		q.down(0)
	}

	return root.item, root.priority, nil
}

// Peek returns the most extreme item and its priority without removing it.
// Returns ErrEmptyQueue if the queue is empty.
// Complexity: O(1).
func (q *Queue[T, P]) Peek() (T, P, error) {
	if len(q.heap) == 0 {
		var zeroT T
		var zeroP P
		return zeroT, zeroP, ErrEmptyQueue
	}

	return q.heap[0].item, q.heap[0].priority, nil
}

// Update replaces the priority of a queued item and restores heap order.
// A more extreme priority sifts the item up from its current slot, a less
// extreme one sifts it down; an equal priority leaves the heap untouched.
// Returns ErrElementNotFound if item is not queued.
// Complexity: O(log n).
func (q *Queue[T, P]) Update(item T, priority P) error {
	i, ok := q.index[item]
	if !ok {
		return fmt.Errorf("%w: %v", ErrElementNotFound, item)
	}

	old := q.heap[i].priority
	q.heap[i].priority = priority
	switch c := q.compare(priority, old); {
	case c < 0:
		q.up(i)
	case c > 0:
		q.down(i)
	}

	return nil
}

// Contains reports whether item is queued.
// Complexity: O(1).
func (q *Queue[T, P]) Contains(item T) bool {
	_, ok := q.index[item]
	return ok
}

// Priority returns the current priority of item, if queued.
// Complexity: O(1).
func (q *Queue[T, P]) Priority(item T) (P, bool) {
	i, ok := q.index[item]
	if !ok {
		var zero P
		return zero, false
	}

	return q.heap[i].priority, true
}

// Len returns the number of queued items.
func (q *Queue[T, P]) Len() int { return len(q.heap) }

// IsEmpty reports whether the queue holds no items.
func (q *Queue[T, P]) IsEmpty() bool { return len(q.heap) == 0 }

// String renders the heap array in level order as "[<item, priority> ...]".
func (q *Queue[T, P]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range q.heap {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "<%v, %v>", e.item, e.priority)
	}
	sb.WriteByte(']')

	return sb.String()
}
