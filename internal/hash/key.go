// Package hash computes 64-bit cache keys over visualization parameter tuples.
package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Key accumulates a parameter tuple and produces its xxHash64.
//
// Floats are hashed by their IEEE-754 bits with -0 folded into +0 and every NaN folded into
// a single canonical NaN, so numerically equal tuples always share a key.
//
// The zero value is not usable; call NewKey.
type Key struct {
	d   *xxhash.Digest
	buf [8]byte
}

// NewKey returns an empty key builder.
func NewKey() *Key {
	return &Key{d: xxhash.New()}
}

// Float64 appends a float to the tuple.
func (k *Key) Float64(v float64) *Key {
	switch {
	case v == 0:
		v = 0
	case math.IsNaN(v):
		v = math.NaN()
	}
	binary.LittleEndian.PutUint64(k.buf[:], math.Float64bits(v))
	_, _ = k.d.Write(k.buf[:])

	return k
}

// Float64s appends every value of vs, preceded by its length so that adjacent
// slices cannot alias each other.
func (k *Key) Float64s(vs ...float64) *Key {
	k.Int(len(vs))
	for _, v := range vs {
		k.Float64(v)
	}

	return k
}

// Int appends an integer to the tuple.
func (k *Key) Int(v int) *Key {
	binary.LittleEndian.PutUint64(k.buf[:], uint64(v)) //nolint:gosec // bit pattern only
	_, _ = k.d.Write(k.buf[:])

	return k
}

// Bool appends a boolean to the tuple.
func (k *Key) Bool(v bool) *Key {
	if v {
		return k.Int(1)
	}

	return k.Int(0)
}

// String appends a string to the tuple, length-prefixed.
func (k *Key) String(s string) *Key {
	k.Int(len(s))
	_, _ = k.d.WriteString(s)

	return k
}

// Sum64 returns the hash of everything appended so far.
func (k *Key) Sum64() uint64 {
	return k.d.Sum64()
}
