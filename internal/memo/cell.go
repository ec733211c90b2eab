// Package memo provides a single-entry cache for derived values keyed on a parameter hash.
package memo

// Cell holds the most recently computed value together with the parameters that produced
// it and their 64-bit key. A lookup with different parameters recomputes and replaces the
// entry, so a cell never holds more than one value.
//
// The key decides a miss cheaply; on a key match the stored parameters are compared with
// the equal function given to NewCell, and a mismatch is counted as a collision and
// recomputed. The zero Cell has no equal function and trusts the key alone.
//
// A Cell is not safe for concurrent use; each session owns its cells.
type Cell[K, V any] struct {
	equal      func(a, b K) bool
	key        uint64
	params     K
	value      V
	valid      bool
	hits       uint64
	misses     uint64
	collisions uint64
}

// NewCell returns an empty cell that confirms key matches with equal.
//
// Parameters:
//   - equal: Reports whether two parameter tuples are the same; nil trusts the key alone
//
// Returns:
//   - *Cell[K, V]: Empty cell ready for Get
func NewCell[K, V any](equal func(a, b K) bool) *Cell[K, V] {
	return &Cell[K, V]{equal: equal}
}

// Get returns the cached value for params, calling compute on a miss. key must be the
// hash of params. The cell keeps params, so the caller must not modify them afterwards.
func (c *Cell[K, V]) Get(key uint64, params K, compute func() V) V {
	if c.match(key, params) {
		c.hits++
		return c.value
	}

	c.misses++
	c.value = compute()
	c.key = key
	c.params = params
	c.valid = true

	return c.value
}

// Peek returns the cached value and whether the cell holds one for params.
func (c *Cell[K, V]) Peek(key uint64, params K) (V, bool) {
	if c.valid && c.key == key && (c.equal == nil || c.equal(c.params, params)) {
		return c.value, true
	}

	var zero V

	return zero, false
}

func (c *Cell[K, V]) match(key uint64, params K) bool {
	if !c.valid || c.key != key {
		return false
	}
	if c.equal != nil && !c.equal(c.params, params) {
		c.collisions++
		return false
	}

	return true
}

// Invalidate drops the cached value.
func (c *Cell[K, V]) Invalidate() {
	var (
		zeroParams K
		zeroValue  V
	)
	c.params = zeroParams
	c.value = zeroValue
	c.valid = false
}

// Stats returns the number of cache hits and misses since the cell was created.
func (c *Cell[K, V]) Stats() (hits, misses uint64) {
	return c.hits, c.misses
}

// Collisions returns how many lookups had a matching key but different parameters.
func (c *Cell[K, V]) Collisions() uint64 {
	return c.collisions
}
