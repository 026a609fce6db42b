package pqueue

import (
	"cmp"
	"errors"
)

// Sentinel errors returned by Queue operations.
var (
	// ErrEmptyQueue indicates Extract or Peek was called on an empty queue.
	ErrEmptyQueue = errors.New("pqueue: queue is empty")

	// ErrDuplicateElement indicates an item is already queued.
	ErrDuplicateElement = errors.New("pqueue: element already in queue")

	// ErrElementNotFound indicates Update referenced an item that is not queued.
	ErrElementNotFound = errors.New("pqueue: element not found in queue")

	// ErrLengthMismatch indicates NewFrom received items and priorities of different lengths.
	ErrLengthMismatch = errors.New("pqueue: items and priorities differ in length")

	// ErrNilComparator indicates a queue was constructed without a comparator.
	ErrNilComparator = errors.New("pqueue: comparator is nil")
)

// Comparator is a total order over priorities.
// A negative result means a ranks more extreme than b and is extracted first.
type Comparator[P any] func(a, b P) int

// Min orders priorities ascending: the smallest priority is extracted first.
func Min[P cmp.Ordered](a, b P) int { return cmp.Compare(a, b) }

// Max orders priorities descending: the largest priority is extracted first.
func Max[P cmp.Ordered](a, b P) int { return cmp.Compare(b, a) }

// element is one heap slot.
type element[T comparable, P any] struct {
	item     T
	priority P
}

// Queue is an indexed binary heap of unique items ordered by a Comparator.
//
// heap holds the tree in level order (children of i at 2i+1 and 2i+2);
// index maps every queued item to its current slot in heap.
type Queue[T comparable, P any] struct {
	compare Comparator[P]
	heap    []element[T, P]
	index   map[T]int
}
