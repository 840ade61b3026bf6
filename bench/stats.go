// File: bench/stats.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Streaming statistics over timing samples.

package bench

import (
	"fmt"
	"math"
	"time"
)

// Stats accumulates samples and reports mean, standard deviation,
// minimum and maximum without retaining individual values.
type Stats struct {
	sum   float64
	sumSq float64
	count uint64
	min   float64
	max   float64
}

// Add records one sample.
func (s *Stats) Add(value float64) {
	if s.count == 0 || value < s.min {
		s.min = value
	}
	if s.count == 0 || value > s.max {
		s.max = value
	}
	s.sum += value
	s.sumSq += value * value
	s.count++
}

// AddDuration records a duration sample in seconds.
func (s *Stats) AddDuration(d time.Duration) {
	s.Add(d.Seconds())
}

// Count returns the number of samples recorded.
func (s *Stats) Count() uint64 {
	return s.count
}

// Mean returns the arithmetic mean, or 0 with no samples.
func (s *Stats) Mean() float64 {
	if s.count == 0 {
		return 0
	}
	return s.sum / float64(s.count)
}

// StdDev returns the population standard deviation, or 0 with fewer
// than two samples.
func (s *Stats) StdDev() float64 {
	if s.count < 2 {
		return 0
	}
	mean := s.Mean()
	variance := s.sumSq/float64(s.count) - mean*mean
	if variance <= 0 {
		return 0
	}
	return math.Sqrt(variance)
}

// Min returns the smallest sample, or 0 with no samples.
func (s *Stats) Min() float64 {
	return s.min
}

// Max returns the largest sample, or 0 with no samples.
func (s *Stats) Max() float64 {
	return s.max
}

// String formats the summary in milliseconds.
func (s *Stats) String() string {
	return fmt.Sprintf("mean=%.3f ms, stddev=%.3f ms, min=%.3f ms, max=%.3f ms (n=%d)",
		s.Mean()*1000, s.StdDev()*1000, s.min*1000, s.max*1000, s.count)
}

// Snapshot is the serializable form of Stats.
type Snapshot struct {
	Name    string  `json:"name"`
	MeanSec float64 `json:"mean_sec"`
	StdDev  float64 `json:"stddev_sec"`
	MinSec  float64 `json:"min_sec"`
	MaxSec  float64 `json:"max_sec"`
	Count   uint64  `json:"count"`
}

// Snapshot captures the current aggregate under the given name.
func (s *Stats) Snapshot(name string) Snapshot {
	return Snapshot{
		Name:    name,
		MeanSec: s.Mean(),
		StdDev:  s.StdDev(),
		MinSec:  s.min,
		MaxSec:  s.max,
		Count:   s.count,
	}
}
