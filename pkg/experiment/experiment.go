/*
The experiment package estimates cover times by running many independent cover
walks on the same graph, concurrently, and aggregating how long they took.
*/
package experiment

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/vertex-lab/hyperwalk/pkg/database/redisdb"
	"github.com/vertex-lab/hyperwalk/pkg/graph"
	"github.com/vertex-lab/hyperwalk/pkg/models"
	"github.com/vertex-lab/hyperwalk/pkg/utils/counter"
	"github.com/vertex-lab/hyperwalk/pkg/utils/redisutils"
	"github.com/vertex-lab/hyperwalk/pkg/walks"
	"golang.org/x/sync/errgroup"
)

// Result summarizes the cover times of the trials of an experiment.
// Mean, Min and Max only consider the completed trials.
type Result struct {
	Trials    int
	Completed int
	Truncated int

	Mean float64
	Min  int
	Max  int

	// a map cover time --> number of completed trials that took that many steps
	Histogram map[int]int
}

// stats aggregates the outcomes of trials that run in different goroutines.
type stats struct {
	completed *xsync.Counter
	truncated *xsync.Counter
	total     *counter.Float
	extremes  *counter.Range
	histogram *xsync.MapOf[int, *xsync.Counter]
}

func newStats() *stats {
	return &stats{
		completed: xsync.NewCounter(),
		truncated: xsync.NewCounter(),
		total:     counter.NewFloatCounter(),
		extremes:  counter.NewRange(),
		histogram: xsync.NewMapOf[int, *xsync.Counter](),
	}
}

func (s *stats) observe(steps int) {
	s.completed.Inc()
	s.total.Add(float64(steps))
	s.extremes.Observe(int64(steps))

	c, _ := s.histogram.LoadOrCompute(steps, func() *xsync.Counter { return xsync.NewCounter() })
	c.Inc()
}

func (s *stats) result(trials int) *Result {
	res := &Result{
		Trials:    trials,
		Completed: int(s.completed.Value()),
		Truncated: int(s.truncated.Value()),
		Min:       int(s.extremes.Min()),
		Max:       int(s.extremes.Max()),
		Histogram: make(map[int]int, s.histogram.Size()),
	}

	if res.Completed > 0 {
		res.Mean = s.total.Load() / float64(res.Completed)
	}

	s.histogram.Range(func(steps int, c *xsync.Counter) bool {
		res.Histogram[steps] = int(c.Value())
		return true
	})

	return res
}

/*
Run() builds the graph described by cfg and runs cfg.Trials cover walks on it,
at most cfg.Parallel at a time. Trials that reach cfg.MaxSteps are counted as
truncated. Any other error stops the experiment and is returned.
*/
func Run(ctx context.Context, cfg *Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	G, err := BuildGraph(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build the %s graph: %w", cfg.GraphType, err)
	}

	cfg.Log.Info("Run: started %d trials on a %s graph of order %d (cover %d)", cfg.Trials, cfg.GraphType, G.Order(), cfg.Cover)
	start := time.Now()
	stats := newStats()

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Parallel)

	for trial := 0; trial < cfg.Trials; trial++ {
		trial := trial
		eg.Go(func() error {
			return runTrial(egCtx, cfg, G, trial, stats)
		})
	}

	if err := eg.Wait(); err != nil {
		cfg.Log.Error("Run: %v", err)
		return nil, err
	}

	res := stats.result(cfg.Trials)
	experimentDuration.WithLabelValues(cfg.GraphType).Observe(time.Since(start).Seconds())
	cfg.Log.Info("Run: finished in %v; completed %d, truncated %d, mean cover time %.3f", time.Since(start), res.Completed, res.Truncated, res.Mean)
	return res, nil
}

// runTrial runs one cover walk with its own random generator, and records its outcome.
func runTrial(ctx context.Context, cfg *Config, G models.Graph, trial int, stats *stats) error {
	trialsRunning.Inc()
	defer trialsRunning.Dec()

	rng := rand.New(rand.NewSource(cfg.Seed + int64(trial)))
	SRW, err := walks.NewCoverWalk(G, cfg.Cover, rng)
	if err != nil {
		return err
	}

	err = Cover(ctx, SRW, cfg.MaxSteps)
	switch {
	case err == nil:
		stats.observe(SRW.Time())
		trialsTotal.WithLabelValues(cfg.GraphType, outcomeCompleted).Inc()
		coverTime.WithLabelValues(cfg.GraphType).Observe(float64(SRW.Time()))
		return nil

	case errors.Is(err, models.ErrMaxSteps):
		stats.truncated.Inc()
		trialsTotal.WithLabelValues(cfg.GraphType, outcomeTruncated).Inc()
		cfg.Log.Warn("Run: trial %d truncated with %d unvisited vertices: %v", trial, len(SRW.Unvisited()), err)
		return nil

	default:
		return fmt.Errorf("trial %d: %w", trial, err)
	}
}

/*
Cover() walks until SRW is covered. If maxSteps is positive and the walk is
not covered after maxSteps ticks, it returns ErrMaxSteps.
*/
func Cover(ctx context.Context, SRW *walks.SimpleRandomWalk, maxSteps int) error {
	if maxSteps <= 0 {
		return SRW.Start(ctx)
	}

	for !SRW.Covered() {
		if SRW.Time() >= maxSteps {
			return fmt.Errorf("%w: %d", models.ErrMaxSteps, maxSteps)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := SRW.Step(); err != nil {
			return err
		}
	}

	return nil
}

// BuildGraph() returns the graph described by cfg.
func BuildGraph(ctx context.Context, cfg *Config) (models.Graph, error) {
	switch cfg.GraphType {
	case Complete:
		return graph.CompleteGraph(cfg.Order), nil

	case Cycle:
		return graph.CycleGraph(cfg.Order), nil

	case Random:
		G, err := graph.RandomGraph(cfg.Order, cfg.Probability, rand.New(rand.NewSource(cfg.Seed)))
		if err != nil {
			return nil, err
		}
		return G, nil

	case Redis:
		cl := redisutils.SetupClient(cfg.RedisAddr)
		defer cl.Close()

		DB, err := redisdb.LoadDatabase(ctx, cl)
		if err != nil {
			return nil, err
		}

		H, err := graph.Load(ctx, DB)
		if err != nil {
			return nil, err
		}
		return H, nil

	default:
		return nil, fmt.Errorf("%w: unknown graph type \"%s\"", models.ErrInvalidConfig, cfg.GraphType)
	}
}
