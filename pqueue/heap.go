package pqueue

// parent returns the slot of i's parent; i must be > 0.
func parent(i int) int { return (i - 1) / 2 }

// up moves the element at i towards the root while it ranks more extreme
// than its parent.
func (q *Queue[T, P]) up(i int) {
	for i > 0 {
		p := parent(i)
		if q.compare(q.heap[i].priority, q.heap[p].priority) >= 0 {
			return
		}
		q.swap(i, p)
		i = p
	}
}

// down moves the element at i towards the leaves, each step swapping with
// whichever child ranks more extreme, until neither child outranks it.
func (q *Queue[T, P]) down(i int) {
	n := len(q.heap)
	for {
		best := i
		l := 2*i + 1
		r := l + 1
		if l < n && q.compare(q.heap[l].priority, q.heap[best].priority) < 0 {
			best = l
		}
		if r < n && q.compare(q.heap[r].priority, q.heap[best].priority) < 0 {
			best = r
		}
		if best == i {
			return
		}
		q.swap(i, best)
		i = best
	}
}

// swap exchanges two slots and rewrites both shortcut entries.
// It is the only code path that reorders heap.
func (q *Queue[T, P]) swap(i, j int) {
	q.heap[i], q.heap[j] = q.heap[j], q.heap[i]
	q.index[q.heap[i].item] = i
	q.index[q.heap[j].item] = j
}
