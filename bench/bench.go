package bench

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/golang/glog"
	"github.com/jfhansen/algorithms/dataset"
	"github.com/jfhansen/algorithms/sort"
	"github.com/jfhansen/algorithms/store"
)

var (
	ErrInvalidConfig = errors.New("invalid benchmark configuration")
	ErrNotSorted     = errors.New("sort produced unordered sequence")
)

// Config defines a benchmark run over sequences of 2^MinExp to 2^MaxExp elements.
type Config struct {
	MinExp     int
	MaxExp     int
	Iterations int
	Seed       int64
	// Values are drawn uniformly from [Low, High)
	Low  float64
	High float64
}

func DefaultConfig() Config {
	return Config{
		MinExp:     10,
		MaxExp:     13,
		Iterations: 10,
		Seed:       5489,
		Low:        -100,
		High:       100,
	}
}

func (c Config) Validate() error {
	if c.MinExp < 0 || c.MaxExp > 30 || c.MinExp > c.MaxExp {
		return fmt.Errorf("%w: exponent range [%d,%d]", ErrInvalidConfig, c.MinExp, c.MaxExp)
	}
	if c.Iterations < 1 {
		return fmt.Errorf("%w: %d iterations", ErrInvalidConfig, c.Iterations)
	}
	if !(c.Low < c.High) {
		return fmt.Errorf("%w: value range [%v,%v)", ErrInvalidConfig, c.Low, c.High)
	}
	return nil
}

// Result holds the timing of one sequence size.
type Result struct {
	Name       string
	N          int
	Iterations int
	Elapsed    time.Duration
	Stats      sort.Stats
}

var _ store.Storable = &Result{}

// Key orders results by size in the store.
func (r *Result) Key() string {
	return fmt.Sprintf("%012d/%s", r.N, r.Name)
}

func (r *Result) PerOp() time.Duration {
	if r.Iterations == 0 {
		return 0
	}
	return r.Elapsed / time.Duration(r.Iterations)
}

func (r *Result) String() string {
	return fmt.Sprintf("%-16s n=%-8d iterations=%-4d %10.3f ms/op comparisons=%d moves=%d depth=%d",
		r.Name, r.N, r.Iterations, float64(r.PerOp())/float64(time.Millisecond),
		r.Stats.Comparisons, r.Stats.Moves, r.Stats.MaxDepth)
}

// Generate returns n values drawn uniformly from [low, high).
func Generate(rng *rand.Rand, n int, low, high float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = low + rng.Float64()*(high-low)
	}
	return s
}

// Measure sorts a fresh copy of original iterations times and returns the
// time spent sorting.
func Measure(ctx context.Context, name string, original []float64, iterations int) (*Result, error) {
	r := &Result{
		Name: name,
		N:    len(original),
	}
	work := make([]float64, len(original))
	for i := 0; i < iterations; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		copy(work, original)
		start := time.Now()
		if err := sort.Sort[float64](sort.Slice[float64](work), 0, len(work)); err != nil {
			return nil, err
		}
		r.Elapsed += time.Since(start)
		r.Iterations++
		if !sort.IsSorted[float64](sort.Slice[float64](work), 0, len(work)) {
			return nil, fmt.Errorf("%w: %s", ErrNotSorted, name)
		}
	}
	// Counters come from one extra untimed run
	copy(work, original)
	st, err := sort.SortStats[float64](sort.Slice[float64](work), 0, len(work))
	if err != nil {
		return nil, err
	}
	r.Stats = *st
	glog.V(5).Infof("%s: %d iterations took %s", name, r.Iterations, r.Elapsed)

	return r, nil
}

// Run times the sort for every size of the configuration and stores the
// results in s. Generated sequences are passed to dump when it is not nil.
func Run(ctx context.Context, cfg Config, s store.Manager, dump *dataset.Writer) ([]*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	results := make([]*Result, 0, cfg.MaxExp-cfg.MinExp+1)
	for k := cfg.MinExp; k <= cfg.MaxExp; k++ {
		n := 1 << k
		original := Generate(rng, n, cfg.Low, cfg.High)
		if dump != nil {
			if err := dump.Write(original); err != nil {
				return nil, fmt.Errorf("failed to dump sequence of %d elements with error: %w", n, err)
			}
		}
		r, err := Measure(ctx, fmt.Sprintf("merge_sort/%d", k), original, cfg.Iterations)
		if err != nil {
			return nil, err
		}
		if err := s.Add(r); err != nil {
			return nil, fmt.Errorf("failed to store result %s with error: %w", r.Name, err)
		}
		results = append(results, r)
	}

	return results, nil
}

// RunDataset times the sort for every sequence delivered by the feeder.
func RunDataset(ctx context.Context, f dataset.Feeder, iterations int, s store.Manager) ([]*Result, error) {
	if iterations < 1 {
		return nil, fmt.Errorf("%w: %d iterations", ErrInvalidConfig, iterations)
	}
	defer f.Stop()
	var results []*Result
	for i := 0; ; i++ {
		var feed *dataset.Feed
		var ok bool
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case feed, ok = <-f.GetFeed():
		}
		if !ok {
			return results, nil
		}
		if feed.Err != nil {
			return nil, feed.Err
		}
		r, err := Measure(ctx, fmt.Sprintf("record/%d", i), feed.Values, iterations)
		if err != nil {
			return nil, err
		}
		if err := s.Add(r); err != nil {
			return nil, fmt.Errorf("failed to store result %s with error: %w", r.Name, err)
		}
		results = append(results, r)
	}
}
