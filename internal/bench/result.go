package bench

import (
	"fmt"
	"strings"
	"time"

	"github.com/aryankumar/execbench/internal/util"
)

// bytesPerGiB converts byte counts to the GB/s unit used in reports
const bytesPerGiB = float64(1 << 30)

// Result represents the outcome of benchmarking one case
type Result struct {
	// Name identifies the case
	Name string

	// Stats holds the timed trial durations (zero if the case failed before timing)
	Stats Stats

	// BandwidthGBs is the bytes moved per trial divided by the mean trial time
	BandwidthGBs float64

	// Error contains the verification or execution failure (nil if successful)
	Error error

	// Duration is the wall time spent on the case, warm-up included
	Duration time.Duration
}

// Report is the outcome of one benchmark run
type Report struct {
	RunID       string
	ProblemSize int
	Trials      int
	Warmup      int
	Started     time.Time
	Duration    time.Duration
	Results     []Result
}

// Err combines every failed case into one error, or returns nil
func (r Report) Err() error {
	if AllSuccessful(r.Results) {
		return nil
	}

	errs := make([]error, 0)
	for _, res := range FilterFailed(r.Results) {
		errs = append(errs, util.WrapCaseError(res.Name, res.Error))
	}
	return util.CombineErrors(errs...)
}

// Bandwidth returns GB/s for bytes moved in the mean trial time d
func Bandwidth(bytes int64, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(bytes) / bytesPerGiB / d.Seconds()
}

// CountSuccessful returns the number of successful results (no error)
func CountSuccessful(results []Result) int {
	count := 0
	for _, r := range results {
		if r.Error == nil {
			count++
		}
	}
	return count
}

// CountFailed returns the number of failed results (has error)
func CountFailed(results []Result) int {
	return len(results) - CountSuccessful(results)
}

// FilterSuccessful returns only the successful results
func FilterSuccessful(results []Result) []Result {
	filtered := make([]Result, 0, len(results))
	for _, r := range results {
		if r.Error == nil {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// FilterFailed returns only the failed results
func FilterFailed(results []Result) []Result {
	filtered := make([]Result, 0, len(results))
	for _, r := range results {
		if r.Error != nil {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// Fastest returns the successful result with the highest bandwidth
func Fastest(results []Result) (Result, bool) {
	var best Result
	found := false
	for _, r := range FilterSuccessful(results) {
		if !found || r.BandwidthGBs > best.BandwidthGBs {
			best = r
			found = true
		}
	}
	return best, found
}

// HasErrors returns true if any results contain errors
func HasErrors(results []Result) bool {
	for _, r := range results {
		if r.Error != nil {
			return true
		}
	}
	return false
}

// AllSuccessful returns true if all results are successful
func AllSuccessful(results []Result) bool {
	return !HasErrors(results)
}

// RelativeTo returns r's bandwidth as a fraction of base's (1.0 means equal)
func RelativeTo(r, base Result) float64 {
	if base.BandwidthGBs == 0 {
		return 0
	}
	return r.BandwidthGBs / base.BandwidthGBs
}

// Summary provides a summary of benchmark results
type Summary struct {
	Total      int
	Successful int
	Failed     int
	Fastest    string
	FastestGBs float64
}

// Summarize creates a summary of the results
func Summarize(results []Result) Summary {
	s := Summary{
		Total:      len(results),
		Successful: CountSuccessful(results),
		Failed:     CountFailed(results),
	}
	if best, ok := Fastest(results); ok {
		s.Fastest = best.Name
		s.FastestGBs = best.BandwidthGBs
	}
	return s
}

// String returns a human-readable string representation of the summary
func (s Summary) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Total: %d, ", s.Total))
	sb.WriteString(fmt.Sprintf("Successful: %d, ", s.Successful))
	sb.WriteString(fmt.Sprintf("Failed: %d", s.Failed))

	if s.Fastest != "" {
		sb.WriteString(fmt.Sprintf(", Fastest: %s (%.2f GB/s)", s.Fastest, s.FastestGBs))
	}

	return sb.String()
}
