package output

import (
	"io"
	"time"

	"github.com/aryankumar/execbench/internal/bench"
)

// Format represents the output format type
type Format string

const (
	// FormatTable outputs data in a borderless table
	FormatTable Format = "table"
	// FormatJSON outputs data in JSON format
	FormatJSON Format = "json"
	// FormatYAML outputs data in YAML format
	FormatYAML Format = "yaml"
)

// Formatter defines the interface for output formatting
type Formatter interface {
	// Format outputs a single data item to the writer
	Format(w io.Writer, data interface{}) error

	// FormatReport outputs a benchmark report to the writer
	FormatReport(w io.Writer, report bench.Report) error
}

// Option is a functional option for configuring formatters
type Option func(*Options)

// Options holds configuration for formatters
type Options struct {
	// NoColor disables color output
	NoColor bool

	// NoHeaders disables table headers
	NoHeaders bool

	// Wide enables wide output with additional columns
	Wide bool

	// Baseline names the case other cases are compared against
	Baseline string
}

// WithNoColor disables color output
func WithNoColor(noColor bool) Option {
	return func(o *Options) {
		o.NoColor = noColor
	}
}

// WithNoHeaders disables table headers
func WithNoHeaders(noHeaders bool) Option {
	return func(o *Options) {
		o.NoHeaders = noHeaders
	}
}

// WithWide enables wide output
func WithWide(wide bool) Option {
	return func(o *Options) {
		o.Wide = wide
	}
}

// WithBaseline sets the case used for the relative bandwidth column
func WithBaseline(name string) Option {
	return func(o *Options) {
		o.Baseline = name
	}
}

// NewFormatter creates a new formatter based on the specified format
func NewFormatter(format Format, opts ...Option) Formatter {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}

	switch format {
	case FormatJSON:
		return NewJSONFormatter(options)
	case FormatYAML:
		return NewYAMLFormatter(options)
	case FormatTable:
		fallthrough
	default:
		return NewTableFormatter(options)
	}
}

// reportDocument is the structured form of a report shared by JSON and YAML
type reportDocument struct {
	RunID       string         `json:"runId" yaml:"runId"`
	ProblemSize int            `json:"problemSize" yaml:"problemSize"`
	Trials      int            `json:"trials" yaml:"trials"`
	Warmup      int            `json:"warmup" yaml:"warmup"`
	Started     string         `json:"started" yaml:"started"`
	Duration    string         `json:"duration" yaml:"duration"`
	Cases       []caseDocument `json:"cases" yaml:"cases"`
}

type caseDocument struct {
	Name         string  `json:"name" yaml:"name"`
	Status       string  `json:"status" yaml:"status"`
	Error        string  `json:"error,omitempty" yaml:"error,omitempty"`
	BandwidthGBs float64 `json:"bandwidthGBs" yaml:"bandwidthGBs"`
	Relative     float64 `json:"relative,omitempty" yaml:"relative,omitempty"`
	Trials       int     `json:"trials" yaml:"trials"`
	Mean         string  `json:"mean" yaml:"mean"`
	Min          string  `json:"min" yaml:"min"`
	Max          string  `json:"max" yaml:"max"`
	P50          string  `json:"p50" yaml:"p50"`
	P99          string  `json:"p99" yaml:"p99"`
}

// toDocument converts a report into its structured form
func toDocument(report bench.Report, baseline string) reportDocument {
	base, hasBase := findResult(report.Results, baseline)

	doc := reportDocument{
		RunID:       report.RunID,
		ProblemSize: report.ProblemSize,
		Trials:      report.Trials,
		Warmup:      report.Warmup,
		Started:     report.Started.Format(time.RFC3339),
		Duration:    report.Duration.String(),
		Cases:       make([]caseDocument, len(report.Results)),
	}

	for i, r := range report.Results {
		c := caseDocument{
			Name:         r.Name,
			Status:       "success",
			BandwidthGBs: r.BandwidthGBs,
			Trials:       r.Stats.Trials,
			Mean:         r.Stats.Mean.String(),
			Min:          r.Stats.Min.String(),
			Max:          r.Stats.Max.String(),
			P50:          r.Stats.P50.String(),
			P99:          r.Stats.P99.String(),
		}
		if r.Error != nil {
			c.Status = "failed"
			c.Error = r.Error.Error()
		} else if hasBase {
			c.Relative = bench.RelativeTo(r, base)
		}
		doc.Cases[i] = c
	}

	return doc
}

// findResult returns the successful result named name
func findResult(results []bench.Result, name string) (bench.Result, bool) {
	if name == "" {
		return bench.Result{}, false
	}
	for _, r := range results {
		if r.Name == name && r.Error == nil {
			return r, true
		}
	}
	return bench.Result{}, false
}
