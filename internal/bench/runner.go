// Package bench times benchmark cases and aggregates their results.
package bench

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/aryankumar/execbench/internal/util"
)

// Case is one benchmarked computation
type Case struct {
	// Name identifies the case in logs and reports
	Name string

	// Setup prepares the case before its verification pass (optional)
	Setup func()

	// Run performs one pass of the computation
	Run func() error

	// Verify checks the output of the last Run (optional)
	Verify func() error
}

// Options controls how many passes each case gets
type Options struct {
	// Trials is the number of timed passes per case
	Trials int

	// Warmup is the number of untimed passes run after verification
	Warmup int

	// BytesPerTrial is the memory traffic of one pass, used for bandwidth
	BytesPerTrial int64

	// ProblemSize is reported as-is
	ProblemSize int
}

// Runner benchmarks cases one after another on the calling goroutine
type Runner struct {
	opt    Options
	logger *slog.Logger
}

// NewRunner creates a runner
// Trials below 1 default to 1 and a negative warmup defaults to 0
func NewRunner(opt Options, logger *slog.Logger) *Runner {
	if opt.Trials <= 0 {
		opt.Trials = 1
	}
	if opt.Warmup < 0 {
		opt.Warmup = 0
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Runner{
		opt:    opt,
		logger: logger,
	}
}

// Run benchmarks every case in order and returns the report
// A failing case does not stop the others. Cancellation is checked between passes;
// cases not finished when ctx is done report util.ErrCancelled.
func (r *Runner) Run(ctx context.Context, cases []Case) Report {
	report := Report{
		RunID:       ulid.Make().String(),
		ProblemSize: r.opt.ProblemSize,
		Trials:      r.opt.Trials,
		Warmup:      r.opt.Warmup,
		Started:     time.Now(),
		Results:     make([]Result, 0, len(cases)),
	}

	r.logger.Info("starting benchmark run",
		"run_id", report.RunID,
		"cases", len(cases),
		"trials", r.opt.Trials,
		"warmup", r.opt.Warmup,
		"size", r.opt.ProblemSize)

	collector := NewCollector()
	for _, c := range cases {
		collector.Reset()
		report.Results = append(report.Results, r.runCase(ctx, c, collector))
	}

	report.Duration = time.Since(report.Started)
	summary := Summarize(report.Results)

	r.logger.Info("benchmark run completed",
		"run_id", report.RunID,
		"successful", summary.Successful,
		"failed", summary.Failed,
		"duration", report.Duration)

	return report
}

// runCase verifies, warms up and times a single case
func (r *Runner) runCase(ctx context.Context, c Case, collector *Collector) Result {
	start := time.Now()
	result := Result{Name: c.Name}

	fail := func(err error) Result {
		result.Error = err
		result.Duration = time.Since(start)
		r.logger.Warn("case failed", "case", c.Name, "error", err, "duration", result.Duration)
		return result
	}

	if c.Run == nil {
		return fail(fmt.Errorf("case has no run function"))
	}

	// Verification pass
	if err := checkContext(ctx); err != nil {
		return fail(err)
	}
	if c.Setup != nil {
		c.Setup()
	}
	if err := c.Run(); err != nil {
		return fail(util.WrapErrorf(err, "verification pass"))
	}
	if c.Verify != nil {
		if err := c.Verify(); err != nil {
			return fail(err)
		}
	}
	r.logger.Debug("case verified", "case", c.Name)

	for i := 0; i < r.opt.Warmup; i++ {
		if err := checkContext(ctx); err != nil {
			return fail(err)
		}
		if err := c.Run(); err != nil {
			return fail(util.WrapErrorf(err, "warm-up pass %d", i))
		}
	}

	for i := 0; i < r.opt.Trials; i++ {
		if err := checkContext(ctx); err != nil {
			return fail(err)
		}

		trialStart := time.Now()
		err := c.Run()
		elapsed := time.Since(trialStart)
		if err != nil {
			return fail(util.WrapErrorf(err, "trial %d", i))
		}
		collector.Record(elapsed)
	}

	result.Stats = collector.Stats()
	result.BandwidthGBs = Bandwidth(r.opt.BytesPerTrial, result.Stats.Mean)
	result.Duration = time.Since(start)

	r.logger.Debug("case completed",
		"case", c.Name,
		"mean", result.Stats.Mean,
		"p99", result.Stats.P99,
		"bandwidth_gbs", result.BandwidthGBs)

	return result
}

// checkContext returns a util.ErrCancelled error once ctx is done
func checkContext(ctx context.Context) error {
	select {
	case <-ctx.Done():
		if cause := context.Cause(ctx); util.IsCancelled(cause) {
			return cause
		}
		return fmt.Errorf("%w: %v", util.ErrCancelled, ctx.Err())
	default:
		return nil
	}
}
