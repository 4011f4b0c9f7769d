// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package cache provides a sharded LRU cache for baked gradient ramps,
// so identical gradients across a display list bake their 256-texel
// lookup once per process instead of once per fill.
package cache

import (
	"container/list"
	"sync"
	"sync/atomic"

	"github.com/gogpu/swfkit"
)

// Default configuration constants.
const (
	// shardCount is a power of 2 for fast shard selection via bitwise
	// AND; 16 shards keep lock contention negligible for render-thread
	// plus loader-thread access.
	shardCount = 16
	shardMask  = shardCount - 1

	// DefaultCapacity is the default maximum ramps per shard.
	DefaultCapacity = 64
)

// RampCache is a thread-safe, sharded LRU cache keyed by gradient hash.
type RampCache struct {
	shards [shardCount]shard
	hits   atomic.Uint64
	misses atomic.Uint64
}

type shard struct {
	mu       sync.Mutex
	entries  map[uint64]*list.Element
	order    *list.List // front = most recently used
	capacity int
}

type entry struct {
	key  uint64
	ramp *swfkit.Ramp
}

// New creates a ramp cache with the given per-shard capacity.
// Non-positive capacities use DefaultCapacity.
func New(capacity int) *RampCache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c := &RampCache{}
	for i := range c.shards {
		c.shards[i] = shard{
			entries:  make(map[uint64]*list.Element),
			order:    list.New(),
			capacity: capacity,
		}
	}
	return c
}

// Get returns the cached ramp for a key, marking it most recently used.
func (c *RampCache) Get(key uint64) (*swfkit.Ramp, bool) {
	s := &c.shards[key&shardMask]
	s.mu.Lock()
	defer s.mu.Unlock()
	el, ok := s.entries[key]
	if !ok {
		c.misses.Add(1)
		return nil, false
	}
	s.order.MoveToFront(el)
	c.hits.Add(1)
	return el.Value.(*entry).ramp, true
}

// Put stores a ramp, evicting the least recently used entry when the
// shard is full.
func (c *RampCache) Put(key uint64, ramp *swfkit.Ramp) {
	s := &c.shards[key&shardMask]
	s.mu.Lock()
	defer s.mu.Unlock()
	if el, ok := s.entries[key]; ok {
		el.Value.(*entry).ramp = ramp
		s.order.MoveToFront(el)
		return
	}
	if s.order.Len() >= s.capacity {
		oldest := s.order.Back()
		if oldest != nil {
			s.order.Remove(oldest)
			delete(s.entries, oldest.Value.(*entry).key)
		}
	}
	s.entries[key] = s.order.PushFront(&entry{key: key, ramp: ramp})
}

// GetOrBake returns the ramp for a gradient, baking and caching it on
// miss.
func (c *RampCache) GetOrBake(g *swfkit.Gradient) *swfkit.Ramp {
	key := g.Hash()
	if ramp, ok := c.Get(key); ok {
		return ramp
	}
	ramp := g.BakeRamp()
	c.Put(key, ramp)
	return ramp
}

// Stats returns cumulative hit and miss counts.
func (c *RampCache) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}

// Len returns the total number of cached ramps.
func (c *RampCache) Len() int {
	n := 0
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.Lock()
		n += s.order.Len()
		s.mu.Unlock()
	}
	return n
}
