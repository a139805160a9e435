package functionmaxima

import (
	"errors"
	"testing"

	"github.com/sgostarter/libmaxima/comparator"
	"github.com/stretchr/testify/require"
)

var errUTInjected = errors.New("ut injected failure")

type utPair struct {
	A int `yaml:"a"`
	V int `yaml:"v"`
}

type utSnapshot struct {
	points []utPair
	maxima []utPair
}

func snapshotOf(fm FunctionMaxima[int, int]) (s utSnapshot) {
	fm.Points(func(p Point[int, int]) bool {
		s.points = append(s.points, utPair{p.Arg(), p.Value()})

		return true
	})

	fm.Maxima(func(p Point[int, int]) bool {
		s.maxima = append(s.maxima, utPair{p.Arg(), p.Value()})

		return true
	})

	return
}

// bruteMaxima recomputes the local maxima of points (sorted by argument) and
// returns them in maxima order.
func bruteMaxima(points []utPair) []utPair {
	var maxima []utPair

	for idx, p := range points {
		if idx > 0 && points[idx-1].V > p.V {
			continue
		}

		if idx+1 < len(points) && points[idx+1].V > p.V {
			continue
		}

		maxima = append(maxima, p)
	}

	// insertion sort: value desc, argument asc
	for i := 1; i < len(maxima); i++ {
		for j := i; j > 0; j-- {
			x, y := maxima[j-1], maxima[j]
			if x.V > y.V || (x.V == y.V && x.A < y.A) {
				break
			}

			maxima[j-1], maxima[j] = y, x
		}
	}

	return maxima
}

func requireConsistent(t *testing.T, fm FunctionMaxima[int, int]) {
	t.Helper()

	s := snapshotOf(fm)

	require.Len(t, s.points, fm.Size())

	for idx := 1; idx < len(s.points); idx++ {
		require.Less(t, s.points[idx-1].A, s.points[idx].A)
	}

	require.EqualValues(t, bruteMaxima(s.points), s.maxima)
}

// faultInjector fails the call that would exceed budget once armed.
type faultInjector struct {
	armed  bool
	budget int
	calls  int
}

func (f *faultInjector) arm(budget int) {
	f.armed = true
	f.budget = budget
	f.calls = 0
}

func (f *faultInjector) disarm() {
	f.armed = false
}

func (f *faultInjector) tick() error {
	f.calls++

	if !f.armed {
		return nil
	}

	if f.budget == 0 {
		return errUTInjected
	}

	f.budget--

	return nil
}

func faultyCompare(f *faultInjector) comparator.Func[int] {
	fnCmp := comparator.Ordered[int]()

	return func(a, b int) (int, error) {
		if err := f.tick(); err != nil {
			return 0, err
		}

		return fnCmp(a, b)
	}
}

func faultyClone(f *faultInjector) CloneFunc[int] {
	return func(v int) (int, error) {
		if err := f.tick(); err != nil {
			return 0, err
		}

		return v, nil
	}
}

func mustSet(t *testing.T, fm FunctionMaxima[int, int], pairs ...utPair) {
	t.Helper()

	for _, p := range pairs {
		require.Nil(t, fm.SetValue(p.A, p.V))
	}
}
