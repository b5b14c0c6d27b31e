package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStats(t *testing.T) {

	s := New()
	for _, v := range []float64{2, 4, 4, 4, 5, 5, 7, 9} {
		s.Push(v)
	}

	assert.Equal(t, 8, s.Count())
	assert.InDelta(t, 40, s.Sum(), 1e-12)
	assert.InDelta(t, 5, s.Mean(), 1e-12)
	assert.InDelta(t, 2, s.Min(), 1e-12)
	assert.InDelta(t, 9, s.Max(), 1e-12)
	assert.InDelta(t, 4, s.Variance(), 1e-12)
	assert.InDelta(t, 2, s.StDev(), 1e-12)
	assert.InDelta(t, 32.0/7.0, s.SampleVariance(), 1e-12)
	assert.InDelta(t, math.Sqrt(32.0/7.0), s.SampleStDev(), 1e-12)

}

func TestStats_SkipsNaN(t *testing.T) {

	s := New()
	s.Push(1)
	s.Push(math.NaN())
	s.Push(3)

	assert.Equal(t, 2, s.Count())
	assert.InDelta(t, 2, s.Mean(), 1e-12)

}

func TestCollector(t *testing.T) {

	c := NewCollector()
	c.Push("gpa", 3.2)
	c.Push("attendance", 0.9)
	c.Push("gpa", 2.8)

	assert.Equal(t, []string{"gpa", "attendance"}, c.Names())
	assert.Equal(t, 2, c.Get("gpa").Count())
	assert.InDelta(t, 3.0, c.Get("gpa").Mean(), 1e-12)
	assert.Equal(t, 0, c.Get("unknown").Count())

}
