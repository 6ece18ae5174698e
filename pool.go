package offlinedocs

import (
	"context"
	"runtime"
	"sync"
)

// Worker count bounds for concurrent resolution.
const (
	// MinWorkers resolves documents sequentially.
	MinWorkers = 1

	// MaxWorkers caps concurrent file reads and conversions.
	MaxWorkers = 16
)

// ResolvePoolSize determines the worker count.
// Priority: explicit workers > GOMAXPROCS (adjusted by automaxprocs for
// containers), clamped to [MinWorkers, MaxWorkers].
func ResolvePoolSize(workers int) int {
	if workers > 0 {
		return min(workers, MaxWorkers)
	}
	return max(MinWorkers, min(runtime.GOMAXPROCS(0), MaxWorkers))
}

// resolveJob is one embedded document in manifest order.
type resolveJob struct {
	ref DocumentRef
}

// resolveAll resolves jobs with up to workers goroutines. Results are stored
// by index, so the returned slice is always in job order.
func resolveAll(ctx context.Context, r *Resolver, baseDir string, jobs []resolveJob, anchors map[string]string, workers int) ([]ResolvedContent, error) {
	results := make([]ResolvedContent, len(jobs))

	if workers <= 1 || len(jobs) <= 1 {
		for i, job := range jobs {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			results[i] = r.resolve(baseDir, job.ref, anchors)
		}
		return results, nil
	}

	indexes := make(chan int)
	var wg sync.WaitGroup
	for range min(workers, len(jobs)) {
		wg.Go(func() {
			for i := range indexes {
				results[i] = r.resolve(baseDir, jobs[i].ref, anchors)
			}
		})
	}

feed:
	for i := range jobs {
		select {
		case <-ctx.Done():
			break feed
		case indexes <- i:
		}
	}
	close(indexes)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
