package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/aryankumar/execbench/internal/util"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewRunner_Defaults(t *testing.T) {
	tests := []struct {
		name       string
		opt        Options
		wantTrials int
		wantWarmup int
	}{
		{name: "as given", opt: Options{Trials: 5, Warmup: 2}, wantTrials: 5, wantWarmup: 2},
		{name: "zero trials defaults to 1", opt: Options{Trials: 0}, wantTrials: 1},
		{name: "negative warmup defaults to 0", opt: Options{Trials: 3, Warmup: -1}, wantTrials: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := NewRunner(tt.opt, quietLogger()).Run(context.Background(), nil)
			if report.Trials != tt.wantTrials || report.Warmup != tt.wantWarmup {
				t.Errorf("report trials %d warmup %d, want trials %d warmup %d",
					report.Trials, report.Warmup, tt.wantTrials, tt.wantWarmup)
			}
		})
	}
}

func TestRunner_Run(t *testing.T) {
	runs := 0
	verified := 0
	cases := []Case{
		{
			Name:   "counting",
			Run:    func() error { runs++; return nil },
			Verify: func() error { verified++; return nil },
		},
	}

	r := NewRunner(Options{Trials: 4, Warmup: 2, BytesPerTrial: 1 << 20, ProblemSize: 42}, quietLogger())
	report := r.Run(context.Background(), cases)

	if report.RunID == "" {
		t.Error("report should carry a run ID")
	}
	if report.ProblemSize != 42 || report.Trials != 4 || report.Warmup != 2 {
		t.Errorf("report header = %+v", report)
	}
	if len(report.Results) != 1 {
		t.Fatalf("got %d results, want 1", len(report.Results))
	}

	res := report.Results[0]
	if res.Error != nil {
		t.Fatalf("unexpected error: %v", res.Error)
	}
	// one verification pass, two warm-up passes, four trials
	if runs != 7 {
		t.Errorf("Run called %d times, want 7", runs)
	}
	if verified != 1 {
		t.Errorf("Verify called %d times, want 1", verified)
	}
	if res.Stats.Trials != 4 {
		t.Errorf("Stats.Trials = %d, want 4", res.Stats.Trials)
	}
}

func TestRunner_Run_FailuresDoNotStopOtherCases(t *testing.T) {
	errKernel := errors.New("kernel failed")
	laterRan := false

	cases := []Case{
		{
			Name:   "wrong answer",
			Run:    func() error { return nil },
			Verify: func() error { return util.ErrVerificationFailed },
		},
		{
			Name: "failing trial",
			Run: func() func() error {
				calls := 0
				return func() error {
					calls++
					if calls > 1 {
						return errKernel
					}
					return nil
				}
			}(),
		},
		{
			Name: "no run function",
		},
		{
			Name: "fine",
			Run:  func() error { laterRan = true; return nil },
		},
	}

	report := NewRunner(Options{Trials: 2}, quietLogger()).Run(context.Background(), cases)

	if len(report.Results) != 4 {
		t.Fatalf("got %d results, want 4", len(report.Results))
	}
	if !util.IsVerificationError(report.Results[0].Error) {
		t.Errorf("case 0 error = %v, want verification failure", report.Results[0].Error)
	}
	if !errors.Is(report.Results[1].Error, errKernel) {
		t.Errorf("case 1 error = %v, want %v", report.Results[1].Error, errKernel)
	}
	if report.Results[2].Error == nil {
		t.Error("case without run function should fail")
	}
	if report.Results[3].Error != nil || !laterRan {
		t.Errorf("last case should run and succeed, got %v", report.Results[3].Error)
	}
	if report.Err() == nil {
		t.Error("report.Err() should be non-nil")
	}
}

func TestRunner_Run_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runs := 0
	report := NewRunner(Options{Trials: 3}, quietLogger()).Run(ctx, []Case{
		{Name: "a", Run: func() error { runs++; return nil }},
		{Name: "b", Run: func() error { runs++; return nil }},
	})

	if runs != 0 {
		t.Errorf("Run called %d times after cancellation, want 0", runs)
	}
	for _, res := range report.Results {
		if !util.IsCancelled(res.Error) {
			t.Errorf("case %s error = %v, want ErrCancelled", res.Name, res.Error)
		}
	}
}

func TestRunner_Run_CancelledMidCase(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runs := 0
	report := NewRunner(Options{Trials: 10}, quietLogger()).Run(ctx, []Case{
		{Name: "a", Run: func() error {
			runs++
			if runs == 3 {
				cancel()
			}
			return nil
		}},
	})

	if runs != 3 {
		t.Errorf("Run called %d times, want 3", runs)
	}
	if !util.IsCancelled(report.Results[0].Error) {
		t.Errorf("error = %v, want ErrCancelled", report.Results[0].Error)
	}
}

func TestRunner_Run_SetupBeforeVerification(t *testing.T) {
	var events []string
	cases := []Case{
		{
			Name:   "ordered",
			Setup:  func() { events = append(events, "setup") },
			Run:    func() error { events = append(events, "run"); return nil },
			Verify: func() error { events = append(events, "verify"); return nil },
		},
	}

	NewRunner(Options{Trials: 1}, quietLogger()).Run(context.Background(), cases)

	want := []string{"setup", "run", "verify", "run"}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("events[%d] = %q, want %q", i, events[i], want[i])
		}
	}
}

func TestRunner_Run_CancelledWithCause(t *testing.T) {
	cause := fmt.Errorf("%w: received interrupt", util.ErrCancelled)
	ctx, cancel := context.WithCancelCause(context.Background())
	cancel(cause)

	report := NewRunner(Options{Trials: 1}, quietLogger()).Run(ctx, []Case{
		{Name: "a", Run: func() error { return nil }},
	})

	if err := report.Results[0].Error; err != cause {
		t.Errorf("error = %v, want the context cause %v", err, cause)
	}
}
