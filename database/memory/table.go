package memory

import "sync"

// Table is a concurrency-safe keyed collection that remembers insertion order.
type Table[T any] struct {
	mu    sync.RWMutex
	rows  map[string]T
	order []string
}

func NewTable[T any]() *Table[T] {
	return &Table[T]{rows: make(map[string]T)}
}

// Get returns the row stored under id.
func (t *Table[T]) Get(id string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.rows[id]
	return v, ok
}

// Insert stores v under id unless id is taken or conflict reports a clash
// with an existing row. It returns false when nothing was stored.
func (t *Table[T]) Insert(id string, v T, conflict func(existing T) bool) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, taken := t.rows[id]; taken {
		return false
	}
	if conflict != nil {
		for _, existing := range t.rows {
			if conflict(existing) {
				return false
			}
		}
	}
	t.rows[id] = v
	t.order = append(t.order, id)
	return true
}

// Replace overwrites the row under id. It returns false when id is unknown.
func (t *Table[T]) Replace(id string, v T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return false
	}
	t.rows[id] = v
	return true
}

// Delete removes id and reports whether it was present.
func (t *Table[T]) Delete(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	for i, k := range t.order {
		if k == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

// Find returns the first row, in insertion order, matching pred.
func (t *Table[T]) Find(pred func(T) bool) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, id := range t.order {
		if v := t.rows[id]; pred(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// All returns every row in insertion order.
func (t *Table[T]) All() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.rows[id])
	}
	return out
}
