package functionmaxima

import (
	"errors"
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type utForeignFunctionMaxima struct {
	FunctionMaxima[int, int]
}

func TestCloneIsIndependent(t *testing.T) {
	fm := NewOrderedFunctionMaxima[int, int]()

	mustSet(t, fm, utPair{1, 2}, utPair{2, 1}, utPair{3, 4})

	c, err := fm.Clone()
	require.Nil(t, err)
	assert.EqualValues(t, snapshotOf(fm), snapshotOf(c))

	mustSet(t, c, utPair{2, 10})
	require.Nil(t, c.Erase(3))

	assert.EqualValues(t, []utPair{{3, 4}, {1, 2}}, snapshotOf(fm).maxima)
	assert.EqualValues(t, []utPair{{2, 10}}, snapshotOf(c).maxima)

	requireConsistent(t, fm)
	requireConsistent(t, c)
}

func TestAssignReplacesContent(t *testing.T) {
	src := NewOrderedFunctionMaxima[int, int]()
	mustSet(t, src, utPair{1, 1}, utPair{5, 5}, utPair{9, 1})

	dst := NewOrderedFunctionMaxima[int, int]()
	mustSet(t, dst, utPair{1, 7}, utPair{2, 0}, utPair{3, 7})

	require.Nil(t, dst.Assign(src))

	assert.EqualValues(t, snapshotOf(src), snapshotOf(dst))
	assert.EqualValues(t, 3, dst.Size())

	_, err := dst.ValueAt(2)
	assert.True(t, errors.Is(err, ErrArgumentNotFound))

	empty := NewOrderedFunctionMaxima[int, int]()
	require.Nil(t, dst.Assign(empty))
	assert.EqualValues(t, 0, dst.Size())
	assert.True(t, dst.MxBegin().IsEnd())
}

func TestAssignSelf(t *testing.T) {
	fm := NewOrderedFunctionMaxima[int, int]()
	mustSet(t, fm, utPair{1, 1}, utPair{2, 2})

	before := snapshotOf(fm)
	it := fm.Begin()

	assert.Nil(t, fm.Assign(fm))
	assert.EqualValues(t, before, snapshotOf(fm))
	assert.True(t, it.Valid())
}

func TestAssignForeignObject(t *testing.T) {
	fm := NewOrderedFunctionMaxima[int, int]()

	err := fm.Assign(&utForeignFunctionMaxima{})
	assert.True(t, errors.Is(err, ErrInvalidObject))
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))
}
