package registry

import "sync"

// Collection is an append-only ordered list safe for concurrent use.
// Elements keep the order their Append calls acquired the lock in.
type Collection[T any] struct {
	mu    sync.RWMutex
	items []T
}

// Append adds v to the end of the collection.
func (c *Collection[T]) Append(v T) {
	c.mu.Lock()
	c.items = append(c.items, v)
	c.mu.Unlock()
}

// Snapshot returns a copy of the current contents. Later appends do not
// affect the returned slice.
func (c *Collection[T]) Snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of elements appended so far.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items)
}
