package render

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/riverfr0zen/sketches-sub000/internal/core"
)

// SweepResult is the outcome of rendering one seed.
type SweepResult struct {
	Seed    int64
	Path    string
	Elapsed time.Duration
	Err     error
}

// Sweep renders one PNG per seed into dir using a pool of workers. Each job
// builds its own sketch from factory, so sketches need not be safe for
// concurrent use. Results are sorted by seed. The returned error is non-nil
// only when ctx was cancelled; per-seed failures are reported in the results.
func Sweep(ctx context.Context, factory core.Factory, params map[string]string, seeds []int64, dir string, opts Options, workers int) ([]SweepResult, error) {
	if opts.Frames < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFrameCount, opts.Frames)
	}
	if workers <= 0 {
		workers = 1
	}

	jobs := make(chan int64)
	results := make(chan SweepResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				results <- renderSeed(factory, params, seed, dir, opts)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)
		for _, seed := range seeds {
			if ctx.Err() != nil {
				return
			}
			select {
			case jobs <- seed:
			case <-ctx.Done():
				return
			}
		}
	}()

	all := make([]SweepResult, 0, len(seeds))
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Seed < all[j].Seed })
	return all, ctx.Err()
}

func renderSeed(factory core.Factory, params map[string]string, seed int64, dir string, opts Options) SweepResult {
	start := time.Now()
	s := factory(params)
	s.Reset(seed)
	path := filepath.Join(dir, fmt.Sprintf("%s_seed%d.png", s.Name(), seed))
	err := WritePNG(s, path, opts)
	return SweepResult{Seed: seed, Path: path, Elapsed: time.Since(start), Err: err}
}
