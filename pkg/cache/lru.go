package cache

import (
	"container/list"
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrLoadPanicked is returned to callers that waited on a load whose loader panicked.
var ErrLoadPanicked = errors.New("cache: loader panicked")

type lruEntry[K comparable, V any] struct {
	key   K
	value V
}

// inflight tracks a load in progress so concurrent callers share its result.
type inflight[V any] struct {
	done  chan struct{}
	value V
	err   error
}

// LoaderFunc produces the value for a missing key.
type LoaderFunc[V any] func(ctx context.Context) (V, error)

// LRU is a thread-safe least-recently-used cache that can also load missing
// values, running at most one load per key at a time.
type LRU[K comparable, V any] struct {
	capacity int

	mu       sync.Mutex
	items    map[K]*list.Element
	eviction *list.List
	loading  map[K]*inflight[V]
	onEvict  func(key K, value V)
}

// NewLRU creates a cache holding at most capacity values.
// It panics if capacity is not positive.
func NewLRU[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity <= 0 {
		panic("cache: LRU capacity must be positive")
	}
	return &LRU[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element),
		eviction: list.New(),
		loading:  make(map[K]*inflight[V]),
	}
}

// SetEvictCallback registers fn to be called whenever a value leaves the cache
// through eviction, Remove or Clear. fn runs with the cache lock held and must
// not call back into the cache.
func (c *LRU[K, V]) SetEvictCallback(fn func(key K, value V)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onEvict = fn
}

// Get returns the cached value for key and marks it as recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.getLocked(key)
}

// Peek returns the cached value for key without changing its recency.
func (c *LRU[K, V]) Peek(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		return elem.Value.(*lruEntry[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is cached without changing its recency.
func (c *LRU[K, V]) Contains(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.items[key]
	return ok
}

// Put stores value under key, evicting the least recently used entry when the
// cache is full.
func (c *LRU[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.putLocked(key, value)
}

// Remove deletes key and reports whether it was present.
func (c *LRU[K, V]) Remove(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		return false
	}
	c.removeElement(elem)
	return true
}

// Len returns the number of cached values.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eviction.Len()
}

// Keys returns the cached keys, most recently used first.
func (c *LRU[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]K, 0, c.eviction.Len())
	for e := c.eviction.Front(); e != nil; e = e.Next() {
		keys = append(keys, e.Value.(*lruEntry[K, V]).key)
	}
	return keys
}

// Clear empties the cache.
func (c *LRU[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for e := c.eviction.Front(); e != nil; {
		next := e.Next()
		c.removeElement(e)
		e = next
	}
}

// GetOrLoad returns the cached value for key, calling load when it is missing.
// Concurrent callers asking for the same key wait for a single load. Only
// successful loads are cached, so a failed load is retried by the next caller.
//
// The load runs detached from the cancellation of the caller that started it,
// so a waiter is never failed by another caller giving up. Each caller still
// stops waiting when its own ctx is done.
func (c *LRU[K, V]) GetOrLoad(ctx context.Context, key K, load LoaderFunc[V]) (V, error) {
	c.mu.Lock()
	if v, ok := c.getLocked(key); ok {
		c.mu.Unlock()
		return v, nil
	}

	call, ok := c.loading[key]
	if !ok {
		call = &inflight[V]{done: make(chan struct{})}
		c.loading[key] = call
		go c.load(context.WithoutCancel(ctx), key, call, load)
	}
	c.mu.Unlock()

	select {
	case <-call.done:
		return call.value, call.err
	case <-ctx.Done():
		var zero V
		return zero, ctx.Err()
	}
}

func (c *LRU[K, V]) load(ctx context.Context, key K, call *inflight[V], load LoaderFunc[V]) {
	defer func() {
		if r := recover(); r != nil {
			var zero V
			call.value = zero
			call.err = fmt.Errorf("%w: %v", ErrLoadPanicked, r)
		}

		c.mu.Lock()
		delete(c.loading, key)
		if call.err == nil {
			c.putLocked(key, call.value)
		}
		c.mu.Unlock()
		close(call.done)
	}()

	call.value, call.err = load(ctx)
}

// Must be called with lock held.
func (c *LRU[K, V]) getLocked(key K) (V, bool) {
	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		return elem.Value.(*lruEntry[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Must be called with lock held.
func (c *LRU[K, V]) putLocked(key K, value V) {
	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		elem.Value.(*lruEntry[K, V]).value = value
		return
	}

	c.items[key] = c.eviction.PushFront(&lruEntry[K, V]{key: key, value: value})
	if c.eviction.Len() > c.capacity {
		if oldest := c.eviction.Back(); oldest != nil {
			c.removeElement(oldest)
		}
	}
}

// Must be called with lock held.
func (c *LRU[K, V]) removeElement(elem *list.Element) {
	c.eviction.Remove(elem)
	entry := elem.Value.(*lruEntry[K, V])
	delete(c.items, entry.key)

	if c.onEvict != nil {
		c.onEvict(entry.key, entry.value)
	}
}
