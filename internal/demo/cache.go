// Copyright 2026 The Optibench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package demo

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/datagyver/optibench/countries"
	"github.com/datagyver/optibench/harness"
	"github.com/datagyver/optibench/memo"
	"github.com/datagyver/optibench/report"
)

// Cache looks up the ISO code of many randomly repeated country names,
// once paying the simulated cost on every call and once through a
// memoized lookup.
func Cache(ctx context.Context, env *Env) ([]report.Section, error) {
	cfg := env.Config
	names := countries.Names()
	r := env.rand()
	calls := make(harness.List[string], cfg.Calls)
	for i := range calls {
		calls[i] = names[r.IntN(len(names))]
	}
	fmt.Fprintf(env.Out, "%d calls, %d distinct countries\n", len(calls), len(lo.Uniq(calls)))

	slow := countries.SlowLookup(cfg.LookupCost)
	cached := memo.New(slow, nil)
	lookupAll := func(lookup func(string) countries.Code) func(harness.List[string]) ([]countries.Code, error) {
		return func(keys harness.List[string]) ([]countries.Code, error) {
			out := make([]countries.Code, len(keys))
			for i, k := range keys {
				out[i] = lookup(k)
			}
			return out, nil
		}
	}
	env.Log.Info("looking up", "calls", len(calls), "cost", cfg.LookupCost)
	outs, samples, err := harness.RunAll(calls,
		harness.New("uncached", lookupAll(slow)),
		harness.New("memoized", lookupAll(cached.Get)),
	)
	if err != nil {
		return nil, err
	}

	st := cached.Stats()
	fmt.Fprintf(env.Out, "cache hits %d, misses %d, hit rate %.1f%%\n", st.Hits, st.Misses, st.HitRate()*100)
	if err := harness.Verify("memoized lookups", outs[0], outs[1], harness.Identical[countries.Code]()); err != nil {
		return nil, err
	}
	fmt.Fprintf(env.Out, "memoized results identical to uncached\n\n")
	return []report.Section{{Title: "cache", Samples: samples}}, nil
}
