package bench

import (
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// highestTrackable bounds a single trial at one minute, in nanoseconds
const highestTrackable = int64(time.Minute)

// Collector records the duration of every timed trial of one case
// It is used from one goroutine only
type Collector struct {
	hist  *hdrhistogram.Histogram
	count int
	sum   time.Duration
	min   time.Duration
	max   time.Duration
}

// Stats are the aggregated trial durations of one case
type Stats struct {
	Trials int
	Mean   time.Duration
	Min    time.Duration
	Max    time.Duration
	P50    time.Duration
	P99    time.Duration
}

// NewCollector creates a collector tracking 1ns..1m with 3 significant figures
func NewCollector() *Collector {
	return &Collector{
		hist: hdrhistogram.New(1, highestTrackable, 3),
	}
}

// Record adds one trial duration
func (c *Collector) Record(d time.Duration) {
	v := int64(d)
	if v < c.hist.LowestTrackableValue() {
		v = c.hist.LowestTrackableValue()
	}
	if v > c.hist.HighestTrackableValue() {
		v = c.hist.HighestTrackableValue()
	}
	_ = c.hist.RecordValue(v)

	if c.count == 0 || d < c.min {
		c.min = d
	}
	if d > c.max {
		c.max = d
	}
	c.sum += d
	c.count++
}

// Stats computes the aggregate of everything recorded so far
func (c *Collector) Stats() Stats {
	s := Stats{
		Trials: c.count,
		Min:    c.min,
		Max:    c.max,
	}
	if c.count == 0 {
		return s
	}

	s.Mean = c.sum / time.Duration(c.count)
	s.P50 = c.quantile(50)
	s.P99 = c.quantile(99)
	return s
}

// quantile reads q from the histogram, clamped to the exact [min, max]
// since a histogram bucket reports its upper bound
func (c *Collector) quantile(q float64) time.Duration {
	v := time.Duration(c.hist.ValueAtQuantile(q))
	if v < c.min {
		return c.min
	}
	if v > c.max {
		return c.max
	}
	return v
}

// Reset discards every recorded trial
func (c *Collector) Reset() {
	c.hist.Reset()
	c.count = 0
	c.sum = 0
	c.min = 0
	c.max = 0
}
