// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cache

import (
	"sync"
	"testing"

	"github.com/gogpu/swfkit"
)

func grad(shift float32) *swfkit.Gradient {
	return &swfkit.Gradient{
		Stops: []swfkit.GradientStop{
			{Ratio: 0, Color: swfkit.RGBA(shift, 0, 0, 1)},
			{Ratio: 1, Color: swfkit.RGBA(0, 0, 1, 1)},
		},
	}
}

func TestGetOrBake(t *testing.T) {
	c := New(0)
	g := grad(1)

	first := c.GetOrBake(g)
	if first == nil {
		t.Fatal("GetOrBake returned nil")
	}
	second := c.GetOrBake(g)
	if first != second {
		t.Error("second lookup baked a new ramp")
	}

	hits, misses := c.Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("stats = %d hits, %d misses, want 1, 1", hits, misses)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestDistinctGradientsDistinctEntries(t *testing.T) {
	c := New(0)
	a := c.GetOrBake(grad(0.1))
	b := c.GetOrBake(grad(0.9))
	if a == b {
		t.Error("distinct gradients shared a ramp")
	}
	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}
}

func TestLRUEviction(t *testing.T) {
	c := New(2)
	// Force all keys into one shard by using Put directly with aligned
	// keys: keys differing by shardCount land in the same shard.
	r := grad(1).BakeRamp()
	c.Put(0, r)
	c.Put(16, r)
	c.Put(32, r) // evicts key 0, the least recently used

	if _, ok := c.Get(0); ok {
		t.Error("oldest entry survived eviction")
	}
	if _, ok := c.Get(16); !ok {
		t.Error("recent entry evicted")
	}
	if _, ok := c.Get(32); !ok {
		t.Error("newest entry evicted")
	}
}

func TestLRUTouchOnGet(t *testing.T) {
	c := New(2)
	r := grad(1).BakeRamp()
	c.Put(0, r)
	c.Put(16, r)
	c.Get(0) // refresh key 0
	c.Put(32, r)

	if _, ok := c.Get(0); !ok {
		t.Error("refreshed entry evicted")
	}
	if _, ok := c.Get(16); ok {
		t.Error("stale entry survived")
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := New(8)
	gradients := make([]*swfkit.Gradient, 16)
	for i := range gradients {
		gradients[i] = grad(float32(i) / 16)
	}

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				c.GetOrBake(gradients[i%len(gradients)])
			}
		}()
	}
	wg.Wait()

	if c.Len() == 0 {
		t.Error("cache empty after concurrent fills")
	}
}
