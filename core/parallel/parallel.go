package parallel

import (
	"context"
	"runtime"
	"sync"
)

// Parallelize divides items into contiguous ranges, one per worker, and runs
// fn for each range concurrently. workers <= 0 means runtime.NumCPU().
func Parallelize(items, workers int, fn func(start, end int)) {
	_ = ParallelizeErr(context.Background(), items, workers, func(_ context.Context, start, end int) error {
		fn(start, end)
		return nil
	})
}

// ParallelizeErr is Parallelize with error propagation. The first error
// returned by any worker cancels the context passed to the others and is
// returned once every worker has finished.
func ParallelizeErr(ctx context.Context, items, workers int, fn func(ctx context.Context, start, end int) error) error {
	if items == 0 {
		return ctx.Err()
	}

	numWorkers := workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > items {
		numWorkers = items // No need for more workers than items
	}

	// ceiling division
	chunkSize := (items + numWorkers - 1) / numWorkers

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)

	for i := 0; i < numWorkers; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > items {
			end = items
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			if err := fn(ctx, s, e); err != nil {
				once.Do(func() {
					firstErr = err
					cancel()
				})
			}
		}(start, end)
	}

	wg.Wait()
	return firstErr
}

// ParallelizeWithThreshold runs fn sequentially on the calling goroutine when
// items <= threshold, and through ParallelizeErr otherwise.
func ParallelizeWithThreshold(ctx context.Context, items, threshold, workers int, fn func(ctx context.Context, start, end int) error) error {
	if items <= threshold {
		if items == 0 {
			return ctx.Err()
		}
		return fn(ctx, 0, items)
	}
	return ParallelizeErr(ctx, items, workers, fn)
}
