// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"sync"
	"testing"

	"github.com/gogpu/smud"
)

func TestNewPipelineCacheNilSpecializer(t *testing.T) {
	if _, err := NewPipelineCache(nil); !errors.Is(err, ErrNilSpecializer) {
		t.Errorf("err = %v, want ErrNilSpecializer", err)
	}
}

func TestPipelineCacheGetOrCreate(t *testing.T) {
	spec := &fakeSpecializer{}
	cache := newTestCache(t, spec)

	key := PipelineKey{Pair: smud.ShaderPair{SDF: 1, Fill: 2}, Target: DefaultTargetConfig()}

	p1, err := cache.GetOrCreate(key)
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	p2, err := cache.GetOrCreate(key)
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if p1 != p2 {
		t.Error("same key returned distinct pipelines")
	}
	if spec.calls != 1 {
		t.Errorf("specializer called %d times, want 1", spec.calls)
	}

	hits, misses := cache.Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("stats = %d hits, %d misses, want 1, 1", hits, misses)
	}
	if cache.Len() != 1 {
		t.Errorf("len = %d, want 1", cache.Len())
	}
}

func TestPipelineCacheDistinctKeys(t *testing.T) {
	spec := &fakeSpecializer{}
	cache := newTestCache(t, spec)

	base := PipelineKey{Pair: smud.ShaderPair{SDF: 1, Fill: 2}, Target: DefaultTargetConfig()}
	msaa := base
	msaa.Target.SampleCount = 4

	if _, err := cache.GetOrCreate(base); err != nil {
		t.Fatal(err)
	}
	if _, err := cache.GetOrCreate(msaa); err != nil {
		t.Fatal(err)
	}
	if cache.Len() != 2 {
		t.Errorf("len = %d, want 2 (sample count enters the key)", cache.Len())
	}
}

func TestPipelineCacheErrorNotCached(t *testing.T) {
	boom := errors.New("no such shader")
	pair := smud.ShaderPair{SDF: 9, Fill: 9}
	spec := &fakeSpecializer{failing: map[smud.ShaderPair]error{pair: boom}}
	cache := newTestCache(t, spec)

	key := PipelineKey{Pair: pair, Target: DefaultTargetConfig()}
	if _, err := cache.GetOrCreate(key); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if cache.Len() != 0 {
		t.Errorf("failure cached, len = %d", cache.Len())
	}

	delete(spec.failing, pair)
	if _, err := cache.GetOrCreate(key); err != nil {
		t.Fatalf("retry after failure: %v", err)
	}
	if spec.calls != 2 {
		t.Errorf("specializer called %d times, want 2 (retry)", spec.calls)
	}
}

func TestPipelineCacheConcurrent(t *testing.T) {
	spec := &fakeSpecializer{}
	cache := newTestCache(t, spec)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := PipelineKey{
					Pair:   smud.ShaderPair{SDF: smud.ShaderID(j % 4), Fill: 1},
					Target: DefaultTargetConfig(),
				}
				if _, err := cache.GetOrCreate(key); err != nil {
					t.Errorf("GetOrCreate: %v", err)
					return
				}
			}
		}(i)
	}
	wg.Wait()

	if cache.Len() != 4 {
		t.Errorf("len = %d, want 4", cache.Len())
	}
	hits, misses := cache.Stats()
	if hits+misses != 800 {
		t.Errorf("hits+misses = %d, want 800", hits+misses)
	}
}
