package functionmaxima

import (
	"github.com/sgostarter/libmaxima/handletree"
)

func (impl *functionMaximaImpl[A, V]) Clone() (FunctionMaxima[A, V], error) {
	c := newFunctionMaximaImpl(impl.store.argCmp, impl.maxima.valueCmp, impl.argClone, impl.valueClone,
		impl.opts, impl.logger)

	if err := c.Assign(impl); err != nil {
		return nil, err
	}

	return c, nil
}

// Assign copies every point of src next to the current ones, then the maxima
// references, and drops the previous content only when all of that worked.
func (impl *functionMaximaImpl[A, V]) Assign(src FunctionMaxima[A, V]) (err error) {
	other, ok := src.(*functionMaximaImpl[A, V])
	if !ok {
		err = ErrInvalidObject

		return
	}

	if other == impl {
		return
	}

	previous := impl.store.handles()

	var undo undoList

	maxima := make([]handletree.Handle, 0, other.maxima.len())

	other.store.tree.Ascend(func(_ handletree.Handle, e *storeEntry[A, V]) bool {
		var (
			p Point[A, V]
			h handletree.Handle
		)

		if p, err = impl.newPoint(e.point.arg, e.point.value); err != nil {
			return false
		}

		if h, err = impl.store.insert(p); err != nil {
			return false
		}

		undo.push(func() {
			impl.store.remove(h)
		})

		if !e.mx.IsNil() {
			maxima = append(maxima, h)
		}

		return true
	})

	if err == nil {
		err = impl.applyAdds(maximaPlan{adds: maxima}, &undo)
	}

	if err != nil {
		impl.rollback(&undo, "Assign", err)

		return
	}

	for _, h := range previous {
		impl.maxima.drop(h)
		impl.store.remove(h)
	}

	return
}
