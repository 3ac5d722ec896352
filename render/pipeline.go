// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"sync"
	"sync/atomic"
)

// PipelineCache stores specialized pipelines for the life of the
// process. Entries are created on first encounter and never evicted;
// shader-pair cardinality is small and stable in practice, so the
// cache stays bounded by scene content.
//
// GetOrCreate is the cache's sole mutating entry point. The cache is
// safe for concurrent use via RWMutex with double-check locking.
type PipelineCache struct {
	mu          sync.RWMutex
	pipelines   map[PipelineKey]PipelineHandle
	specializer Specializer

	// hits and misses are atomic for lock-free Stats reads.
	hits   uint64
	misses uint64
}

// NewPipelineCache creates an empty cache backed by the given
// specializer.
func NewPipelineCache(specializer Specializer) (*PipelineCache, error) {
	if specializer == nil {
		return nil, ErrNilSpecializer
	}
	return &PipelineCache{
		pipelines:   make(map[PipelineKey]PipelineHandle),
		specializer: specializer,
	}, nil
}

// GetOrCreate returns the cached pipeline for key, specializing a new
// one on first encounter.
//
// A failed specialization is not cached: the next GetOrCreate for the
// same key retries. A cached handle may still be compiling; callers
// check Ready before drawing.
func (c *PipelineCache) GetOrCreate(key PipelineKey) (PipelineHandle, error) {
	// Fast path: read lock.
	c.mu.RLock()
	if p, ok := c.pipelines[key]; ok {
		c.mu.RUnlock()
		atomic.AddUint64(&c.hits, 1)
		return p, nil
	}
	c.mu.RUnlock()

	// Slow path: write lock with double-check.
	c.mu.Lock()
	defer c.mu.Unlock()

	if p, ok := c.pipelines[key]; ok {
		atomic.AddUint64(&c.hits, 1)
		return p, nil
	}

	p, err := c.specializer.Specialize(key)
	if err != nil {
		return nil, err
	}

	c.pipelines[key] = p
	atomic.AddUint64(&c.misses, 1)

	return p, nil
}

// Len returns the number of cached pipelines.
func (c *PipelineCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.pipelines)
}

// Stats returns the cache hit and miss counts. Values are read
// atomically and may not be perfectly synchronized.
func (c *PipelineCache) Stats() (hits, misses uint64) {
	return atomic.LoadUint64(&c.hits), atomic.LoadUint64(&c.misses)
}
