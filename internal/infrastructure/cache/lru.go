// Package cache holds bounded in-memory caches.
package cache

import (
	"container/list"
	"sync"

	"github.com/bnema/dockyard/internal/application/port"
)

var _ port.Cache[string, int] = (*LRU[string, int])(nil)

// LRU is a fixed-size cache that evicts the least recently used key. It is
// safe for concurrent use.
type LRU[K comparable, V any] struct {
	mu    sync.Mutex
	size  int
	index map[K]*list.Element
	// recency runs from most recently used (front) to least (back).
	recency *list.List
}

type lruItem[K comparable, V any] struct {
	key   K
	value V
}

// NewLRU creates a cache holding at most size entries. Sizes below one are
// raised to one.
func NewLRU[K comparable, V any](size int) *LRU[K, V] {
	if size < 1 {
		size = 1
	}
	return &LRU[K, V]{
		size:    size,
		index:   make(map[K]*list.Element, size),
		recency: list.New(),
	}
}

// Get returns the value stored under key and marks it used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.recency.MoveToFront(el)
	return el.Value.(*lruItem[K, V]).value, true
}

// Set stores value under key, evicting the oldest entry when full.
func (c *LRU[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.index[key]; ok {
		el.Value.(*lruItem[K, V]).value = value
		c.recency.MoveToFront(el)
		return
	}
	if c.recency.Len() >= c.size {
		if oldest := c.recency.Back(); oldest != nil {
			delete(c.index, c.recency.Remove(oldest).(*lruItem[K, V]).key)
		}
	}
	c.index[key] = c.recency.PushFront(&lruItem[K, V]{key: key, value: value})
}

// Remove drops key if present.
func (c *LRU[K, V]) Remove(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.index[key]; ok {
		c.recency.Remove(el)
		delete(c.index, key)
	}
}

// Len returns the number of cached entries.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.recency.Len()
}

// Clear empties the cache.
func (c *LRU[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.index = make(map[K]*list.Element, c.size)
	c.recency.Init()
}
