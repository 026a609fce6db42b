// Package pqueue provides an indexed priority queue: an array-backed binary
// heap over (item, priority) pairs that also keeps an item → array-index
// shortcut, so the priority of an already queued item can be raised or
// lowered in O(log n) without removing and re-inserting it.
//
// What & Why
//
//   - A plain binary heap (container/heap) only supports Push and Pop.
//     Algorithms that relax keys incrementally (Prim, Dijkstra) either push
//     stale duplicates ("lazy decrease-key") or need to find an item inside
//     the heap. The shortcut map makes that lookup O(1).
//   - Ordering is decided by a Comparator supplied at construction, so the
//     same structure serves as a min-queue, a max-queue, or any custom total
//     order over the priority type.
//
// Ordering convention
//
//	compare(a, b) < 0  ⇒ a ranks more extreme than b (a is extracted first)
//	compare(a, b) == 0 ⇒ a and b tie
//	compare(a, b) > 0  ⇒ b ranks more extreme than a
//
// This is the cmp.Compare convention, so Min[P] is simply cmp.Compare and
// yields a min-queue; Max[P] reverses it.
//
// Operations
//
//	New(compare)                      // empty queue, O(1)
//	NewFrom(items, priorities, cmp)   // bulk build, O(n)
//	Insert(item, priority)            // O(log n); ErrDuplicateElement
//	Extract()                         // O(log n); ErrEmptyQueue
//	Update(item, priority)            // O(log n); ErrElementNotFound
//	Contains(item), Priority(item)    // O(1)
//	Peek(), Len(), IsEmpty()          // O(1)
//
// Invariants
//
//   - Heap order: for every index i > 0, compare(heap[parent(i)], heap[i]) <= 0.
//   - Shortcut: index[heap[i].item] == i for every live slot, and index has
//     exactly Len() entries. Every swap updates both slots immediately.
//   - Uniqueness: an item is queued at most once; identity is Go equality
//     on T and is independent of the priority.
//
// Concurrency: a Queue is not safe for concurrent use. Callers must route
// every priority change through Update.
package pqueue
