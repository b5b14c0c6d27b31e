package stats

import "math"

// Stats accumulates summary statistics for a stream of numbers.
// Mean and variance use the incremental Welford update, so the stream can
// be summarised in one pass without keeping the values around.
type Stats struct {
	count          int
	sum            float64
	min, max       float64
	mean, dSquared float64
}

// New creates an empty Stats.
func New() *Stats {
	return &Stats{
		min: math.MaxFloat64,
		max: -math.MaxFloat64,
	}
}

// Push adds another value to the stream. NaN values are ignored.
func (s *Stats) Push(v float64) {
	if math.IsNaN(v) {
		return
	}
	s.count++
	s.sum += v
	diff := (v - s.mean) / float64(s.count)
	mean := s.mean + diff
	s.dSquared += (v - mean) * (v - s.mean)
	s.mean = mean

	if s.min > v {
		s.min = v
	}
	if s.max < v {
		s.max = v
	}
}

// Count returns the number of accumulated values.
func (s Stats) Count() int {
	return s.count
}

// Sum returns the sum of the accumulated values.
func (s Stats) Sum() float64 {
	return s.sum
}

// Mean returns the mean of the accumulated values.
func (s Stats) Mean() float64 {
	return s.mean
}

// Min returns the smallest accumulated value.
func (s Stats) Min() float64 {
	return s.min
}

// Max returns the largest accumulated value.
func (s Stats) Max() float64 {
	return s.max
}

// Variance is the population variance of the accumulated values.
func (s Stats) Variance() float64 {
	return s.dSquared / float64(s.count)
}

// StDev is the population standard deviation of the accumulated values.
func (s Stats) StDev() float64 {
	return math.Sqrt(s.Variance())
}

// SampleVariance is the sample variance of the accumulated values.
func (s Stats) SampleVariance() float64 {
	return s.dSquared / float64(s.count-1)
}

// SampleStDev is the sample standard deviation of the accumulated values.
func (s Stats) SampleStDev() float64 {
	return math.Sqrt(s.SampleVariance())
}

// Collector tracks one Stats per named series, e.g. one per dataset column
// or per group label.
type Collector struct {
	series map[string]*Stats
	names  []string
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{
		series: make(map[string]*Stats),
	}
}

// Push adds a value to the named series, creating it on first use.
func (c *Collector) Push(name string, v float64) {
	s, ok := c.series[name]
	if !ok {
		s = New()
		c.series[name] = s
		c.names = append(c.names, name)
	}
	s.Push(v)
}

// Get returns the Stats for the named series, an empty Stats if the series
// was never pushed to.
func (c *Collector) Get(name string) *Stats {
	if s, ok := c.series[name]; ok {
		return s
	}
	return New()
}

// Names returns the series names in first-push order.
func (c *Collector) Names() []string {
	return c.names
}
