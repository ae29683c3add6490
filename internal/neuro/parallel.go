package neuro

import (
	"runtime"
	"sync"
)

// ParallelFor executes fn over [0, n) in contiguous chunks, one goroutine
// per chunk. Chunks smaller than minChunk are not worth the scheduling
// overhead and run inline.
func ParallelFor(n, minChunk int, fn func(start, end int)) {
	workers := runtime.GOMAXPROCS(0)
	if n <= minChunk || workers <= 1 {
		fn(0, n)
		return
	}

	if n/minChunk < workers {
		workers = n / minChunk
	}
	if workers < 1 {
		workers = 1
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > n {
			end = n
		}
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}

// DfunParallel evaluates the model derivative with the node axis split
// across workers. Each worker writes a disjoint node range of out, so no
// synchronization beyond the final join is needed. Models that do not
// support ranged evaluation fall back to a single serial pass.
func DfunParallel(m Model, out, state, coupling *Field, local Param, minChunk int) error {
	if !out.SameShape(state) || !coupling.SameShape(state) {
		return ErrShapeMismatch
	}

	ranged, ok := m.(NodeRanged)
	if !ok {
		return m.DfunInto(out, state, coupling, local)
	}

	_, nodes, _ := state.Dims()
	if checker, ok := m.(ParamChecker); ok {
		if err := checker.CheckParams(nodes, local); err != nil {
			return err
		}
	}
	ParallelFor(nodes, minChunk, func(n0, n1 int) {
		ranged.DfunRange(out, state, coupling, local, n0, n1)
	})
	return nil
}
