// Copyright 2026 The Optibench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package memo memoizes a function of one comparable argument.
//
// The store of computed values belongs to the caller: New accepts the
// map to use, so separate runs (and tests) never share state through
// a package-level cache. The store is unbounded and nothing is ever
// evicted. It suits a small fixed key domain, not a general-purpose
// cache.
package memo

import "sync"

// A Func memoizes compute. It is safe for concurrent use.
type Func[K comparable, V any] struct {
	compute func(K) V

	mu     sync.Mutex
	store  map[K]V
	hits   int
	misses int
}

// Stats records how a Func's calls were served.
type Stats struct {
	Hits   int // calls answered from the store
	Misses int // calls that ran compute
	Len    int // entries in the store
}

// HitRate returns Hits/(Hits+Misses), or 0 before any call.
func (s Stats) HitRate() float64 {
	if s.Hits+s.Misses == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Hits+s.Misses)
}

// New returns a Func that memoizes compute in store. If store is nil,
// a new empty map is used. Entries already in store are served
// without calling compute.
func New[K comparable, V any](compute func(K) V, store map[K]V) *Func[K, V] {
	if store == nil {
		store = make(map[K]V)
	}
	return &Func[K, V]{compute: compute, store: store}
}

// Get returns compute(k), calling compute only the first time k is
// seen. compute runs with the lock held, so concurrent first calls for
// any key are serialized and each key is computed exactly once.
func (f *Func[K, V]) Get(k K) V {
	f.mu.Lock()
	defer f.mu.Unlock()
	if v, ok := f.store[k]; ok {
		f.hits++
		return v
	}
	f.misses++
	v := f.compute(k)
	f.store[k] = v
	return v
}

// Stats returns a snapshot of f's counters.
func (f *Func[K, V]) Stats() Stats {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Stats{Hits: f.hits, Misses: f.misses, Len: len(f.store)}
}
