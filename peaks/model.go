package peaks

import (
	"time"

	"github.com/sgostarter/libmaxima/functionmaxima"
)

type Sample[V any] struct {
	At int64 `yaml:"at" json:"at"`
	V  V     `yaml:"v" json:"v"`
}

func (s Sample[V]) Time() time.Time {
	return time.Unix(s.At, 0)
}

// Tracker keeps the latest samples of a time series and reports its peaks.
// Samples are keyed by their second; recording the same second twice keeps
// the later value. Once the tracker is full, a sample older than the oldest
// kept one is dropped without error, and a newer one evicts the oldest. A
// failed Record leaves the series untouched. Trackers are safe for concurrent use.
type Tracker[V any] interface {
	Record(at time.Time, v V) error
	Forget(at time.Time) error

	// Peaks returns up to n local maxima, highest first. n <= 0 returns all of them.
	Peaks(n int) []Sample[V]
	Samples() []Sample[V]
	Len() int

	// Snapshot returns an independent copy of the tracked series.
	Snapshot() (functionmaxima.FunctionMaxima[int64, V], error)
}
