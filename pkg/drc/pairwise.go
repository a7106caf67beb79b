package drc

import (
	"runtime"
	"sync"
)

// runPairs invokes fn(i, j) for every unordered pair of indices into a
// slice of length n, distributing pairs across a worker pool sized
// runtime.GOMAXPROCS(0) and joined with a sync.WaitGroup — mirroring
// the teacher's own sparing, explicit use of these two primitives
// (pkg/jtag/cmsisdap.go's mutex, pkg/chain/chain.go's sync.Once)
// rather than a higher-level concurrency framework. Parallelism is
// confined to the pairwise phases named in §5 (CopperCopperClearance,
// DrillDrillClearance, CourtyardClearances). Results are merged in
// (i, j) lexicographic input order regardless of which worker finished
// first or when, satisfying §5's ordering guarantee.
func runPairs[R any](n int, fn func(i, j int) []R) []R {
	type pair struct{ i, j int }
	var pairs []pair
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, pair{i, j})
		}
	}
	if len(pairs) == 0 {
		return nil
	}

	results := make([][]R, len(pairs))
	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}
	if workers > len(pairs) {
		workers = len(pairs)
	}

	var wg sync.WaitGroup
	var next int
	var mu sync.Mutex
	worker := func() {
		defer wg.Done()
		for {
			mu.Lock()
			idx := next
			next++
			mu.Unlock()
			if idx >= len(pairs) {
				return
			}
			p := pairs[idx]
			results[idx] = fn(p.i, p.j)
		}
	}
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go worker()
	}
	wg.Wait()

	var out []R
	for _, r := range results {
		out = append(out, r...)
	}
	return out
}
