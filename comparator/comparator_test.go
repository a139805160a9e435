package comparator

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrdered(t *testing.T) {
	fnCmp := Ordered[int]()

	c, err := fnCmp(1, 2)
	assert.Nil(t, err)
	assert.Less(t, c, 0)

	c, err = fnCmp(2, 1)
	assert.Nil(t, err)
	assert.Greater(t, c, 0)

	c, err = fnCmp(7, 7)
	assert.Nil(t, err)
	assert.EqualValues(t, 0, c)
}

func TestOrderedNaN(t *testing.T) {
	fnCmp := Ordered[float64]()

	_, err := fnCmp(math.NaN(), 1)
	assert.True(t, errors.Is(err, ErrIncomparable))

	_, err = fnCmp(1, math.NaN())
	assert.True(t, errors.Is(err, ErrIncomparable))
}

func TestFromLessAndReverse(t *testing.T) {
	fnCmp := FromLess(func(a, b string) bool {
		return len(a) < len(b)
	})

	c, err := fnCmp("a", "bb")
	assert.Nil(t, err)
	assert.Less(t, c, 0)

	c, err = fnCmp("ab", "cd")
	assert.Nil(t, err)
	assert.EqualValues(t, 0, c)

	c, err = Reverse(fnCmp)("a", "bb")
	assert.Nil(t, err)
	assert.Greater(t, c, 0)
}

func TestNumeric(t *testing.T) {
	fnCmp := Numeric()

	c, err := fnCmp("3", 3)
	assert.Nil(t, err)
	assert.EqualValues(t, 0, c)

	c, err = fnCmp(2.5, int64(3))
	assert.Nil(t, err)
	assert.Less(t, c, 0)

	_, err = fnCmp("three", 3)
	assert.True(t, errors.Is(err, ErrIncomparable))
}

func TestText(t *testing.T) {
	fnCmp := Text()

	c, err := fnCmp(10, "9")
	assert.Nil(t, err)
	assert.Less(t, c, 0)

	_, err = fnCmp(struct{}{}, "x")
	assert.True(t, errors.Is(err, ErrIncomparable))
}
