package controllers

import (
	"strings"
	"sync"
)

// listCache is the in-memory copy of an admin list page's rows. It is
// replaced wholesale on every list fetch and mutated optimistically on
// deletes and status changes, so the rendered list never waits on the
// backend's answer. It can drift from backend state until the next refetch.
type listCache[T any] struct {
	mu   sync.Mutex
	rows []T
}

func (c *listCache[T]) replace(rows []T) {
	c.mu.Lock()
	c.rows = rows
	c.mu.Unlock()
}

func (c *listCache[T]) snapshot() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]T(nil), c.rows...)
}

func (c *listCache[T]) remove(match func(T) bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.rows[:0]
	for _, row := range c.rows {
		if !match(row) {
			kept = append(kept, row)
		}
	}
	c.rows = kept
}

func (c *listCache[T]) patch(match func(T) bool, apply func(*T)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.rows {
		if match(c.rows[i]) {
			apply(&c.rows[i])
		}
	}
}

// matchesSearch reports whether any field contains the query,
// case-insensitively. An empty query matches everything.
func matchesSearch(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	query = strings.ToLower(query)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}
