package functionmaxima

import "github.com/sgostarter/libmaxima/handletree"

// PointIterator walks the points by ascending argument. It stays valid across
// mutations that do not replace or erase its own point.
type PointIterator[A, V any] struct {
	store *pointStore[A, V]
	h     handletree.Handle
}

func (it PointIterator[A, V]) IsEnd() bool {
	return it.h.IsNil()
}

// Valid is false at End and once the point was replaced or erased.
func (it PointIterator[A, V]) Valid() bool {
	return it.store != nil && it.store.tree.Valid(it.h)
}

// Point panics with ErrInvalidIterator when the iterator is not Valid.
func (it PointIterator[A, V]) Point() Point[A, V] {
	if !it.Valid() {
		panic(ErrInvalidIterator)
	}

	return it.store.entry(it.h).point
}

func (it PointIterator[A, V]) Next() PointIterator[A, V] {
	if it.store == nil || it.IsEnd() {
		return it
	}

	return PointIterator[A, V]{
		store: it.store,
		h:     it.store.tree.Next(it.h),
	}
}

// Prev steps back; from End it moves to the last point.
func (it PointIterator[A, V]) Prev() PointIterator[A, V] {
	if it.store == nil {
		return it
	}

	h := it.store.tree.Last()
	if !it.IsEnd() {
		h = it.store.tree.Prev(it.h)
	}

	return PointIterator[A, V]{
		store: it.store,
		h:     h,
	}
}

func (it PointIterator[A, V]) Equal(other PointIterator[A, V]) bool {
	return it.store == other.store && it.h == other.h
}

// MaximaIterator walks the local maxima by descending value, ties by ascending
// argument.
type MaximaIterator[A, V any] struct {
	maxima *maximaIndex[A, V]
	h      handletree.Handle
}

func (it MaximaIterator[A, V]) IsEnd() bool {
	return it.h.IsNil()
}

func (it MaximaIterator[A, V]) Valid() bool {
	return it.maxima != nil && it.maxima.tree.Valid(it.h)
}

// Point panics with ErrInvalidIterator when the iterator is not Valid.
func (it MaximaIterator[A, V]) Point() Point[A, V] {
	if !it.Valid() {
		panic(ErrInvalidIterator)
	}

	sh, _ := it.maxima.tree.Get(it.h)

	return it.maxima.store.entry(sh).point
}

func (it MaximaIterator[A, V]) Next() MaximaIterator[A, V] {
	if it.maxima == nil || it.IsEnd() {
		return it
	}

	return MaximaIterator[A, V]{
		maxima: it.maxima,
		h:      it.maxima.tree.Next(it.h),
	}
}

// Prev steps back; from MxEnd it moves to the smallest maximum.
func (it MaximaIterator[A, V]) Prev() MaximaIterator[A, V] {
	if it.maxima == nil {
		return it
	}

	h := it.maxima.tree.Last()
	if !it.IsEnd() {
		h = it.maxima.tree.Prev(it.h)
	}

	return MaximaIterator[A, V]{
		maxima: it.maxima,
		h:      h,
	}
}

func (it MaximaIterator[A, V]) Equal(other MaximaIterator[A, V]) bool {
	return it.maxima == other.maxima && it.h == other.h
}

func (impl *functionMaximaImpl[A, V]) Begin() PointIterator[A, V] {
	return PointIterator[A, V]{
		store: impl.store,
		h:     impl.store.tree.First(),
	}
}

func (impl *functionMaximaImpl[A, V]) End() PointIterator[A, V] {
	return PointIterator[A, V]{
		store: impl.store,
	}
}

func (impl *functionMaximaImpl[A, V]) MxBegin() MaximaIterator[A, V] {
	return MaximaIterator[A, V]{
		maxima: impl.maxima,
		h:      impl.maxima.tree.First(),
	}
}

func (impl *functionMaximaImpl[A, V]) MxEnd() MaximaIterator[A, V] {
	return MaximaIterator[A, V]{
		maxima: impl.maxima,
	}
}

func (impl *functionMaximaImpl[A, V]) Points(fn func(p Point[A, V]) bool) {
	impl.store.tree.Ascend(func(_ handletree.Handle, e *storeEntry[A, V]) bool {
		return fn(e.point)
	})
}

func (impl *functionMaximaImpl[A, V]) Maxima(fn func(p Point[A, V]) bool) {
	impl.maxima.tree.Ascend(func(_ handletree.Handle, h handletree.Handle) bool {
		return fn(impl.maxima.store.entry(h).point)
	})
}
