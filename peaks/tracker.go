package peaks

import (
	"sync"
	"time"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libmaxima/comparator"
	"github.com/sgostarter/libmaxima/functionmaxima"
)

const defaultMaxPointCount = 1440

func NewTracker[V any](maxPointCount int, valueCmp comparator.Func[V], logger l.Wrapper) Tracker[V] {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "trackerImpl"))

	if valueCmp == nil {
		logger.Fatal("no value comparator")
	}

	if maxPointCount <= 0 {
		maxPointCount = defaultMaxPointCount
	}

	return &trackerImpl[V]{
		logger:        logger,
		maxPointCount: maxPointCount,
		series: functionmaxima.NewFunctionMaxima[int64, V](comparator.Ordered[int64](), valueCmp,
			functionmaxima.WithLogger(logger)),
	}
}

type trackerImpl[V any] struct {
	logger        l.Wrapper
	maxPointCount int

	lock   sync.RWMutex
	series functionmaxima.FunctionMaxima[int64, V]
}

func (impl *trackerImpl[V]) Record(at time.Time, v V) (err error) {
	impl.lock.Lock()
	defer impl.lock.Unlock()

	key := at.Unix()
	full := impl.series.Size() >= impl.maxPointCount

	if full && key < impl.series.Begin().Point().Arg() {
		impl.logger.WithFields(l.IntField("at", int(key))).Debug("sample older than window, dropped")

		return
	}

	it, err := impl.series.Find(key)
	if err != nil {
		impl.logger.WithFields(l.ErrorField(err), l.IntField("at", int(key))).Error("find sample failed")

		return
	}

	if !full || !it.IsEnd() {
		if err = impl.series.SetValue(key, v); err != nil {
			impl.logger.WithFields(l.ErrorField(err), l.IntField("at", int(key))).Error("record sample failed")
		}

		return
	}

	// the oldest sample goes together with the new one, so both land on a copy
	next, err := impl.series.Clone()
	if err != nil {
		impl.logger.WithFields(l.ErrorField(err)).Error("clone series failed")

		return
	}

	if err = next.SetValue(key, v); err != nil {
		impl.logger.WithFields(l.ErrorField(err), l.IntField("at", int(key))).Error("record sample failed")

		return
	}

	oldest := next.Begin().Point().Arg()

	if err = next.Erase(oldest); err != nil {
		impl.logger.WithFields(l.ErrorField(err), l.IntField("at", int(oldest))).Error("trim sample failed")

		return
	}

	impl.series = next

	return
}

func (impl *trackerImpl[V]) Forget(at time.Time) error {
	impl.lock.Lock()
	defer impl.lock.Unlock()

	return impl.series.Erase(at.Unix())
}

func (impl *trackerImpl[V]) Peaks(n int) (samples []Sample[V]) {
	impl.lock.RLock()
	defer impl.lock.RUnlock()

	impl.series.Maxima(func(p functionmaxima.Point[int64, V]) bool {
		samples = append(samples, Sample[V]{
			At: p.Arg(),
			V:  p.Value(),
		})

		return n <= 0 || len(samples) < n
	})

	return
}

func (impl *trackerImpl[V]) Samples() (samples []Sample[V]) {
	impl.lock.RLock()
	defer impl.lock.RUnlock()

	samples = make([]Sample[V], 0, impl.series.Size())

	impl.series.Points(func(p functionmaxima.Point[int64, V]) bool {
		samples = append(samples, Sample[V]{
			At: p.Arg(),
			V:  p.Value(),
		})

		return true
	})

	return
}

func (impl *trackerImpl[V]) Len() int {
	impl.lock.RLock()
	defer impl.lock.RUnlock()

	return impl.series.Size()
}

func (impl *trackerImpl[V]) Snapshot() (functionmaxima.FunctionMaxima[int64, V], error) {
	impl.lock.RLock()
	defer impl.lock.RUnlock()

	return impl.series.Clone()
}
