package functionmaxima

import (
	"github.com/sgostarter/libmaxima/comparator"
	"github.com/sgostarter/libmaxima/handletree"
)

// maximaIndex orders store handles by value descending, then argument
// ascending. It never owns points: every element is a handle into the store.
type maximaIndex[A, V any] struct {
	store    *pointStore[A, V]
	valueCmp comparator.Func[V]
	tree     *handletree.Tree[handletree.Handle]
}

func newMaximaIndex[A, V any](store *pointStore[A, V], valueCmp comparator.Func[V], seed int64) *maximaIndex[A, V] {
	m := &maximaIndex[A, V]{
		store:    store,
		valueCmp: valueCmp,
	}

	m.tree = handletree.New[handletree.Handle](m.compare, seed+1)

	return m
}

func (m *maximaIndex[A, V]) compare(x, y handletree.Handle) (int, error) {
	px, py := m.store.entry(x).point, m.store.entry(y).point

	c, err := m.valueCmp(py.value, px.value)
	if err != nil || c != 0 {
		return c, err
	}

	return m.store.argCmp(px.arg, py.arg)
}

func (m *maximaIndex[A, V]) len() int {
	return m.tree.Len()
}

// insert adds a reference to the store entry h.
func (m *maximaIndex[A, V]) insert(h handletree.Handle) error {
	mh, err := m.tree.Insert(h)
	if err != nil {
		return err
	}

	m.store.entry(h).mx = mh

	return nil
}

// drop removes the reference to the store entry h, if there is one.
func (m *maximaIndex[A, V]) drop(h handletree.Handle) {
	e := m.store.entry(h)
	if e == nil || e.mx.IsNil() {
		return
	}

	_, _ = m.tree.Remove(e.mx)
	e.mx = handletree.Handle{}
}

// isLocalMaximum reports whether no neighbour of h, looking through exclude,
// has a greater value.
func (m *maximaIndex[A, V]) isLocalMaximum(h, exclude handletree.Handle) (bool, error) {
	v := m.store.entry(h).point.value

	for _, dir := range [...]direction{toLeft, toRight} {
		n := m.store.neighbor(h, exclude, dir)
		if n.IsNil() {
			continue
		}

		c, err := m.valueCmp(v, m.store.entry(n).point.value)
		if err != nil {
			return false, err
		}

		if c < 0 {
			return false, nil
		}
	}

	return true, nil
}

// maximaPlan lists the membership changes one mutation needs. adds is applied
// in order and may fail; drops is applied only after every add succeeded.
type maximaPlan struct {
	adds  []handletree.Handle
	drops []handletree.Handle
}

// planAround evaluates center (when withCenter) and its two neighbours as
// they are once exclude is gone. Only those three points can change status.
func (m *maximaIndex[A, V]) planAround(center, exclude handletree.Handle, withCenter bool) (plan maximaPlan, err error) {
	if withCenter {
		var isMax bool

		isMax, err = m.isLocalMaximum(center, exclude)
		if err != nil {
			return
		}

		if isMax {
			plan.adds = append(plan.adds, center)
		}
	}

	for _, dir := range [...]direction{toLeft, toRight} {
		n := m.store.neighbor(center, exclude, dir)
		if n.IsNil() {
			continue
		}

		var isMax bool

		isMax, err = m.isLocalMaximum(n, exclude)
		if err != nil {
			return
		}

		inIndex := !m.store.entry(n).mx.IsNil()

		switch {
		case isMax && !inIndex:
			plan.adds = append(plan.adds, n)
		case !isMax && inIndex:
			plan.drops = append(plan.drops, n)
		}
	}

	return
}
