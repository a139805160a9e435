package functionmaxima

import (
	"github.com/sgostarter/libmaxima/comparator"
	"github.com/sgostarter/libmaxima/handletree"
)

type direction int

const (
	toLeft direction = iota
	toRight
)

// storeEntry owns one Point. mx is the entry's reference in the maxima index,
// nil while the point is not a local maximum.
type storeEntry[A, V any] struct {
	point Point[A, V]
	mx    handletree.Handle
}

// pointStore keeps the points ordered by argument. Two entries share an
// argument only while a SetValue or Assign call is in flight.
type pointStore[A, V any] struct {
	argCmp comparator.Func[A]
	tree   *handletree.Tree[*storeEntry[A, V]]
}

func newPointStore[A, V any](argCmp comparator.Func[A], seed int64) *pointStore[A, V] {
	return &pointStore[A, V]{
		argCmp: argCmp,
		tree: handletree.New[*storeEntry[A, V]](func(x, y *storeEntry[A, V]) (int, error) {
			return argCmp(x.point.arg, y.point.arg)
		}, seed),
	}
}

func (s *pointStore[A, V]) len() int {
	return s.tree.Len()
}

// insert places p after any entry with the same argument.
func (s *pointStore[A, V]) insert(p Point[A, V]) (handletree.Handle, error) {
	return s.tree.Insert(&storeEntry[A, V]{
		point: p,
	})
}

func (s *pointStore[A, V]) find(a A) (handletree.Handle, error) {
	return s.tree.Search(func(e *storeEntry[A, V]) (int, error) {
		return s.argCmp(a, e.point.arg)
	})
}

func (s *pointStore[A, V]) remove(h handletree.Handle) {
	_, _ = s.tree.Remove(h)
}

func (s *pointStore[A, V]) entry(h handletree.Handle) *storeEntry[A, V] {
	e, ok := s.tree.Get(h)
	if !ok {
		return nil
	}

	return e
}

// neighbor returns the argument-adjacent entry of h on the dir side, looking
// through exclude.
func (s *pointStore[A, V]) neighbor(h, exclude handletree.Handle, dir direction) handletree.Handle {
	fnStep := s.tree.Next
	if dir == toLeft {
		fnStep = s.tree.Prev
	}

	n := fnStep(h)
	if !n.IsNil() && n == exclude {
		n = fnStep(n)
	}

	return n
}

func (s *pointStore[A, V]) handles() []handletree.Handle {
	hs := make([]handletree.Handle, 0, s.tree.Len())

	s.tree.Ascend(func(h handletree.Handle, _ *storeEntry[A, V]) bool {
		hs = append(hs, h)

		return true
	})

	return hs
}
