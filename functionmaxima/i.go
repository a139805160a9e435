package functionmaxima

// Point is one (argument, value) pair of the function. A Point never changes;
// setting a new value at an argument replaces the Point.
type Point[A, V any] struct {
	arg   A
	value V
}

func (p Point[A, V]) Arg() A {
	return p.arg
}

func (p Point[A, V]) Value() V {
	return p.value
}

// CloneFunc copies an argument or a value before the container keeps it.
type CloneFunc[T any] func(T) (T, error)

// FunctionMaxima is a function over an ordered domain that keeps its local
// maxima up to date after every mutation.
//
// A point is a local maximum when neither argument-adjacent neighbour has a
// greater value, so every point of a plateau is a maximum.
//
// Mutations are atomic: when a comparator or clone function fails, the error
// is returned unchanged and the function, its maxima and all iterators are
// exactly as before the call. Implementations are not safe for concurrent
// mutation.
type FunctionMaxima[A, V any] interface {
	// SetValue makes f(a) = v, adding a to the domain when needed.
	SetValue(a A, v V) error
	// ValueAt returns f(a) or ErrArgumentNotFound.
	ValueAt(a A) (V, error)
	// Erase removes a from the domain; absent arguments are ignored.
	Erase(a A) error
	// Find returns the iterator at a, or End when a is not in the domain.
	Find(a A) (PointIterator[A, V], error)
	Size() int

	// Begin..End walks points by ascending argument.
	Begin() PointIterator[A, V]
	End() PointIterator[A, V]
	// MxBegin..MxEnd walks local maxima by descending value, ties by ascending argument.
	MxBegin() MaximaIterator[A, V]
	MxEnd() MaximaIterator[A, V]

	Points(fn func(p Point[A, V]) bool)
	Maxima(fn func(p Point[A, V]) bool)

	// Clone returns an independent copy.
	Clone() (FunctionMaxima[A, V], error)
	// Assign replaces the content with a copy of src. On failure nothing changes.
	Assign(src FunctionMaxima[A, V]) error
}
