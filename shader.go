// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package smud

import (
	"fmt"
	"sync"
)

// ShaderID is an opaque identity of one shader program. Two shapes share
// a pipeline if and only if their IDs compare equal; the contents behind
// an ID are never inspected by the rendering core.
//
// The zero value means "no shader".
type ShaderID uint64

// IsZero reports whether the ID is the zero "no shader" value.
func (id ShaderID) IsZero() bool { return id == 0 }

// ShaderPair is the combination of a distance-function shader and a fill
// shader that together define one renderable shape material. It is the
// key of the pipeline cache and the batching tie-break.
type ShaderPair struct {
	SDF  ShaderID
	Fill ShaderID
}

// IsZero reports whether either half of the pair is missing.
func (p ShaderPair) IsZero() bool { return p.SDF.IsZero() || p.Fill.IsZero() }

// Less imposes a total order over shader pairs: lexicographic over
// (SDF, Fill). Used to break depth-sort ties deterministically.
func (p ShaderPair) Less(q ShaderPair) bool {
	if p.SDF != q.SDF {
		return p.SDF < q.SDF
	}
	return p.Fill < q.Fill
}

// Registry owns shader source blobs and hands out their identities.
//
// Sources are opaque to smud: the registry stores and concatenates them
// but never parses them. A host may register an ID before its source text
// has finished loading (AddPending + SetSource); shapes referencing such
// an ID are extracted but their pipeline stays unready until the source
// arrives.
//
// Registry is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	next     ShaderID
	sources  map[ShaderID]string
	combined map[ShaderPair]string
}

// NewRegistry creates an empty shader registry.
func NewRegistry() *Registry {
	return &Registry{
		sources:  make(map[ShaderID]string),
		combined: make(map[ShaderPair]string),
	}
}

// add stores source under a freshly allocated ID.
func (r *Registry) add(source string) ShaderID {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	id := r.next
	r.sources[id] = source
	return id
}

// AddSDF registers a complete distance-function shader source and returns
// its identity. The source must define `fn sdf(p: vec2<f32>, params:
// vec4<f32>) -> f32`.
func (r *Registry) AddSDF(source string) ShaderID { return r.add(source) }

// AddFill registers a complete fill shader source and returns its
// identity. The source must define `fn fill(d: f32, color: vec4<f32>) ->
// vec4<f32>`.
func (r *Registry) AddFill(source string) ShaderID { return r.add(source) }

// AddSDFBody registers a distance function from just its body.
func (r *Registry) AddSDFBody(body string) ShaderID {
	return r.AddSDF(fmt.Sprintf(
		"fn sdf(p: vec2<f32>, params: vec4<f32>) -> f32 {\n%s\n}\n", body))
}

// AddSDFExpr registers a distance function from a single expression.
func (r *Registry) AddSDFExpr(expr string) ShaderID {
	return r.AddSDFBody("return " + expr + ";")
}

// AddFillBody registers a fill function from just its body.
func (r *Registry) AddFillBody(body string) ShaderID {
	return r.AddFill(fmt.Sprintf(
		"fn fill(d: f32, color: vec4<f32>) -> vec4<f32> {\n%s\n}\n", body))
}

// AddFillExpr registers a fill function from a single expression.
func (r *Registry) AddFillExpr(expr string) ShaderID {
	return r.AddFillBody("return " + expr + ";")
}

// AddPending allocates an identity with no source yet. The shape can be
// spawned immediately; it renders once SetSource delivers the text.
func (r *Registry) AddPending() ShaderID {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	return r.next
}

// SetSource delivers (or replaces) the source text for an ID. Combined
// programs involving the ID are re-derived lazily on next use.
func (r *Registry) SetSource(id ShaderID, source string) {
	if id.IsZero() {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sources[id] = source
	for pair := range r.combined {
		if pair.SDF == id || pair.Fill == id {
			delete(r.combined, pair)
		}
	}
}

// Source returns the source blob behind an ID, if loaded.
func (r *Registry) Source(id ShaderID) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sources[id]
	return s, ok
}

// Loaded reports whether both halves of the pair have source text.
func (r *Registry) Loaded(pair ShaderPair) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, okSDF := r.sources[pair.SDF]
	_, okFill := r.sources[pair.Fill]
	return okSDF && okFill
}

// CombinedSource concatenates the pair's two sources into the single
// program blob handed to pipeline specialization. The result is memoized
// per pair. Returns false if either source has not been loaded yet.
func (r *Registry) CombinedSource(pair ShaderPair) (string, bool) {
	// Fast path: read lock.
	r.mu.RLock()
	if s, ok := r.combined[pair]; ok {
		r.mu.RUnlock()
		return s, true
	}
	r.mu.RUnlock()

	// Slow path: concatenate and memoize under the write lock, so a
	// concurrent SetSource cannot invalidate between read and store.
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.combined[pair]; ok {
		return s, true
	}
	sdf, okSDF := r.sources[pair.SDF]
	fill, okFill := r.sources[pair.Fill]
	if !okSDF || !okFill {
		Logger().Debug("shader source not loaded yet",
			"sdf", uint64(pair.SDF), "fill", uint64(pair.Fill))
		return "", false
	}

	s := sdf + "\n" + fill
	r.combined[pair] = s
	return s, true
}
