// File: weight_table.go
// Role: Sparse (row, column) → weight storage with an exact running total.
package core

// WeightTable maps (row, column) label pairs to a weight and keeps the sum
// of all stored cells in total.
//
// Invariant: total equals the sum of every stored cell after each Set and
// Remove, including Remove of a cell that does not exist.
type WeightTable[V comparable] struct {
	rows  map[V]map[V]float64
	cells int
	total float64
}

// NewWeightTable returns an empty table.
func NewWeightTable[V comparable]() *WeightTable[V] {
	return &WeightTable[V]{rows: make(map[V]map[V]float64)}
}

// Set stores val at (r, c), replacing any previous value.
// The total moves by val minus the previous value, or by val if the cell was empty.
// Complexity: O(1) amortized.
func (t *WeightTable[V]) Set(r, c V, val float64) {
	row, ok := t.rows[r]
	if !ok {
		row = make(map[V]float64)
		t.rows[r] = row
	}

	if old, exists := row[c]; exists {
		t.total += val - old
	} else {
		t.total += val
		t.cells++
	}
	row[c] = val
}

// Get returns the weight at (r, c) and whether the cell exists.
// Complexity: O(1).
func (t *WeightTable[V]) Get(r, c V) (float64, bool) {
	row, ok := t.rows[r]
	if !ok {
		return 0, false
	}
	val, ok := row[c]

	return val, ok
}

// Remove deletes the cell at (r, c) and subtracts its value from the total.
// Removing an absent cell is a no-op. Rows left empty are dropped.
// Complexity: O(1).
func (t *WeightTable[V]) Remove(r, c V) {
	row, ok := t.rows[r]
	if !ok {
		return
	}
	val, ok := row[c]
	if !ok {
		return
	}

	delete(row, c)
	if len(row) == 0 {
		delete(t.rows, r)
	}
	t.total -= val
	t.cells--
	if t.cells == 0 {
		t.total = 0 // discard accumulated rounding residue
	}
}

// Total returns the sum of all stored cells.
func (t *WeightTable[V]) Total() float64 { return t.total }

// Len returns the number of stored cells.
func (t *WeightTable[V]) Len() int { return t.cells }
