package comparator

import (
	"errors"

	"github.com/spf13/cast"
	"golang.org/x/exp/constraints"
)

var ErrIncomparable = errors.New("incomparable values")

// Func orders a before b (negative), equal (zero) or after (positive).
// A non-nil error aborts whatever operation asked for the comparison.
type Func[T any] func(a, b T) (int, error)

func Ordered[T constraints.Ordered]() Func[T] {
	return func(a, b T) (int, error) {
		// nolint: gocritic
		if a != a || b != b {
			return 0, ErrIncomparable
		}

		switch {
		case a < b:
			return -1, nil
		case b < a:
			return 1, nil
		default:
			return 0, nil
		}
	}
}

func FromLess[T any](less func(a, b T) bool) Func[T] {
	return func(a, b T) (int, error) {
		if less(a, b) {
			return -1, nil
		}

		if less(b, a) {
			return 1, nil
		}

		return 0, nil
	}
}

func Reverse[T any](f Func[T]) Func[T] {
	return func(a, b T) (int, error) {
		return f(b, a)
	}
}

// Numeric compares loosely typed numbers ("3", 3, 3.0 are equal).
func Numeric() Func[any] {
	fnCmp := Ordered[float64]()

	return func(a, b any) (int, error) {
		fa, err := cast.ToFloat64E(a)
		if err != nil {
			return 0, errors.Join(ErrIncomparable, err)
		}

		fb, err := cast.ToFloat64E(b)
		if err != nil {
			return 0, errors.Join(ErrIncomparable, err)
		}

		return fnCmp(fa, fb)
	}
}

func Text() Func[any] {
	fnCmp := Ordered[string]()

	return func(a, b any) (int, error) {
		sa, err := cast.ToStringE(a)
		if err != nil {
			return 0, errors.Join(ErrIncomparable, err)
		}

		sb, err := cast.ToStringE(b)
		if err != nil {
			return 0, errors.Join(ErrIncomparable, err)
		}

		return fnCmp(sa, sb)
	}
}
