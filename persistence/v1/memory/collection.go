// Package memory keeps ordered in-memory collections owned by the process.
package memory

import "sync"

// Collection is an ordered sequence of records guarded by a lock.
//
// Mutations never touch the current slice in place: Update hands the callback the current
// sequence and replaces it with whatever the callback returns, all inside one critical section,
// so readers holding an older snapshot are never affected.
type Collection[T any] struct {
	mu    sync.RWMutex
	items []T
}

// New creates a collection holding a copy of seed
func New[T any](seed ...T) *Collection[T] {
	return &Collection[T]{items: append([]T(nil), seed...)}
}

// Snapshot returns a copy of the current sequence
func (c *Collection[T]) Snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Find returns the first record matching match
func (c *Collection[T]) Find(match func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Len is the current number of records
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Update runs a read-modify-write cycle. fn must not retain or modify current; the slice it
// returns becomes the new sequence. When fn fails the sequence is left untouched.
func (c *Collection[T]) Update(fn func(current []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := fn(c.items)
	if err != nil {
		return err
	}
	c.items = next
	return nil
}

// Append returns current with item added at the end, never sharing current's backing array
func Append[T any](current []T, item T) []T {
	next := make([]T, len(current), len(current)+1)
	copy(next, current)
	return append(next, item)
}

// Filter returns a new slice with the records of current for which keep is true, in order
func Filter[T any](current []T, keep func(T) bool) []T {
	next := make([]T, 0, len(current))
	for _, item := range current {
		if keep(item) {
			next = append(next, item)
		}
	}
	return next
}
