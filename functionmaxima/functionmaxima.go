package functionmaxima

import (
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libmaxima/comparator"
	"golang.org/x/exp/constraints"
)

func NewFunctionMaxima[A, V any](argCmp comparator.Func[A], valueCmp comparator.Func[V], options ...Option) FunctionMaxima[A, V] {
	return NewFunctionMaximaEx[A, V](argCmp, valueCmp, nil, nil, options...)
}

// NewFunctionMaximaEx is NewFunctionMaxima with copy functions for arguments
// and values. A nil CloneFunc keeps the plain Go copy.
func NewFunctionMaximaEx[A, V any](argCmp comparator.Func[A], valueCmp comparator.Func[V],
	argClone CloneFunc[A], valueClone CloneFunc[V], options ...Option) FunctionMaxima[A, V] {
	opts := optionNew(options...)

	logger := opts.logger.WithFields(l.StringField(l.ClsKey, "functionMaximaImpl"))

	if argCmp == nil || valueCmp == nil {
		logger.Fatal("no comparator")
	}

	return newFunctionMaximaImpl(argCmp, valueCmp, argClone, valueClone, opts, logger)
}

func NewOrderedFunctionMaxima[A, V constraints.Ordered](options ...Option) FunctionMaxima[A, V] {
	return NewFunctionMaxima[A, V](comparator.Ordered[A](), comparator.Ordered[V](), options...)
}

func newFunctionMaximaImpl[A, V any](argCmp comparator.Func[A], valueCmp comparator.Func[V],
	argClone CloneFunc[A], valueClone CloneFunc[V], opts *Options, logger l.Wrapper) *functionMaximaImpl[A, V] {
	store := newPointStore[A, V](argCmp, opts.cfg.Seed)

	return &functionMaximaImpl[A, V]{
		opts:       opts,
		logger:     logger,
		argClone:   argClone,
		valueClone: valueClone,
		store:      store,
		maxima:     newMaximaIndex[A, V](store, valueCmp, opts.cfg.Seed),
	}
}

type functionMaximaImpl[A, V any] struct {
	opts   *Options
	logger l.Wrapper

	argClone   CloneFunc[A]
	valueClone CloneFunc[V]

	store  *pointStore[A, V]
	maxima *maximaIndex[A, V]
}

func (impl *functionMaximaImpl[A, V]) SetValue(a A, v V) (err error) {
	point, err := impl.newPoint(a, v)
	if err != nil {
		return
	}

	stale, err := impl.store.find(point.arg)
	if err != nil {
		return
	}

	h, err := impl.store.insert(point)
	if err != nil {
		return
	}

	var undo undoList

	undo.push(func() {
		impl.store.remove(h)
	})

	plan, err := impl.maxima.planAround(h, stale, true)
	if err == nil {
		err = impl.applyAdds(plan, &undo)
	}

	if err != nil {
		impl.rollback(&undo, "SetValue", err)

		return
	}

	impl.maxima.drop(stale)
	impl.store.remove(stale)
	impl.applyDrops(plan)

	return
}

func (impl *functionMaximaImpl[A, V]) Erase(a A) (err error) {
	h, err := impl.store.find(a)
	if err != nil || h.IsNil() {
		return
	}

	plan, err := impl.maxima.planAround(h, h, false)
	if err != nil {
		return
	}

	var undo undoList

	if err = impl.applyAdds(plan, &undo); err != nil {
		impl.rollback(&undo, "Erase", err)

		return
	}

	impl.maxima.drop(h)
	impl.store.remove(h)
	impl.applyDrops(plan)

	return
}

func (impl *functionMaximaImpl[A, V]) ValueAt(a A) (v V, err error) {
	h, err := impl.store.find(a)
	if err != nil {
		return
	}

	if h.IsNil() {
		err = ErrArgumentNotFound

		return
	}

	return impl.store.entry(h).point.value, nil
}

func (impl *functionMaximaImpl[A, V]) Find(a A) (PointIterator[A, V], error) {
	h, err := impl.store.find(a)
	if err != nil {
		return impl.End(), err
	}

	return PointIterator[A, V]{
		store: impl.store,
		h:     h,
	}, nil
}

func (impl *functionMaximaImpl[A, V]) Size() int {
	return impl.store.len()
}

func (impl *functionMaximaImpl[A, V]) newPoint(a A, v V) (p Point[A, V], err error) {
	if impl.argClone != nil {
		if a, err = impl.argClone(a); err != nil {
			return
		}
	}

	if impl.valueClone != nil {
		if v, err = impl.valueClone(v); err != nil {
			return
		}
	}

	p = Point[A, V]{
		arg:   a,
		value: v,
	}

	return
}

func (impl *functionMaximaImpl[A, V]) applyAdds(plan maximaPlan, undo *undoList) error {
	for _, h := range plan.adds {
		if err := impl.maxima.insert(h); err != nil {
			return err
		}

		h := h

		undo.push(func() {
			impl.maxima.drop(h)
		})
	}

	return nil
}

func (impl *functionMaximaImpl[A, V]) applyDrops(plan maximaPlan) {
	for _, h := range plan.drops {
		impl.maxima.drop(h)
	}
}

func (impl *functionMaximaImpl[A, V]) rollback(undo *undoList, op string, err error) {
	undo.rollback()

	if impl.opts.cfg.DebugRollback {
		impl.logger.WithFields(l.StringField("op", op), l.IntField("size", impl.store.len()),
			l.ErrorField(err)).Debug("rolled back")
	}
}
