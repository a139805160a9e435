// Package handletree is an ordered multiset whose elements are addressed by
// stable handles. Elements live in an index-stable arena; the order is kept by
// a treap threaded through the arena slots.
//
// Only Insert and Search call the comparator. Removing an element, walking to
// its neighbours and resolving a handle are purely structural and cannot fail.
package handletree

import (
	"math/rand"

	"github.com/sgostarter/libmaxima/comparator"
)

const nilSlot int32 = -1

// Handle refers to one element of a Tree. The zero Handle refers to nothing.
// A handle stays valid until its element is removed; after that it never
// resolves again, even if the arena slot is reused.
type Handle struct {
	ref uint32 // slot + 1
	gen uint32
}

func (h Handle) IsNil() bool {
	return h.ref == 0
}

func (h Handle) slot() int32 {
	return int32(h.ref) - 1
}

type node[T any] struct {
	item     T
	left     int32
	right    int32
	parent   int32
	priority uint32
	gen      uint32
	used     bool
}

type Tree[T any] struct {
	cmp comparator.Func[T]
	rnd *rand.Rand

	nodes  []node[T]
	free   []int32
	root   int32
	length int
}

func New[T any](cmp comparator.Func[T], seed int64) *Tree[T] {
	return &Tree[T]{
		cmp:  cmp,
		rnd:  rand.New(rand.NewSource(seed)), // nolint: gosec
		root: nilSlot,
	}
}

func (t *Tree[T]) Len() int {
	return t.length
}

// Insert adds item after every element that compares equal to it.
// When the comparator fails the tree is left untouched.
func (t *Tree[T]) Insert(item T) (Handle, error) {
	parent, toLeft := nilSlot, false

	for cur := t.root; cur != nilSlot; {
		c, err := t.cmp(item, t.nodes[cur].item)
		if err != nil {
			return Handle{}, err
		}

		parent = cur
		toLeft = c < 0

		if toLeft {
			cur = t.nodes[cur].left
		} else {
			cur = t.nodes[cur].right
		}
	}

	x := t.alloc(item)
	t.nodes[x].parent = parent

	switch {
	case parent == nilSlot:
		t.root = x
	case toLeft:
		t.nodes[parent].left = x
	default:
		t.nodes[parent].right = x
	}

	for p := t.nodes[x].parent; p != nilSlot && t.nodes[x].priority > t.nodes[p].priority; p = t.nodes[x].parent {
		t.rotateUp(x)
	}

	t.length++

	return t.handle(x), nil
}

// Remove unlinks the element behind h. It returns false for a nil or stale handle.
func (t *Tree[T]) Remove(h Handle) (item T, ok bool) {
	x, ok := t.resolve(h)
	if !ok {
		return
	}

	for {
		l, r := t.nodes[x].left, t.nodes[x].right
		if l == nilSlot && r == nilSlot {
			break
		}

		if r == nilSlot || (l != nilSlot && t.nodes[l].priority > t.nodes[r].priority) {
			t.rotateUp(l)
		} else {
			t.rotateUp(r)
		}
	}

	t.replaceChild(t.nodes[x].parent, x, nilSlot)

	item = t.nodes[x].item
	t.release(x)
	t.length--

	return item, true
}

func (t *Tree[T]) Valid(h Handle) bool {
	_, ok := t.resolve(h)

	return ok
}

func (t *Tree[T]) Get(h Handle) (item T, ok bool) {
	x, ok := t.resolve(h)
	if !ok {
		return
	}

	return t.nodes[x].item, true
}

// Search returns the leftmost element for which probe reports zero, or a nil
// handle. probe(item) must order the searched key against item, consistently
// with the tree order.
func (t *Tree[T]) Search(probe func(item T) (int, error)) (Handle, error) {
	found := nilSlot

	for cur := t.root; cur != nilSlot; {
		c, err := probe(t.nodes[cur].item)
		if err != nil {
			return Handle{}, err
		}

		if c <= 0 {
			if c == 0 {
				found = cur
			}

			cur = t.nodes[cur].left
		} else {
			cur = t.nodes[cur].right
		}
	}

	if found == nilSlot {
		return Handle{}, nil
	}

	return t.handle(found), nil
}

func (t *Tree[T]) First() Handle {
	if t.root == nilSlot {
		return Handle{}
	}

	return t.handle(t.leftmost(t.root))
}

func (t *Tree[T]) Last() Handle {
	if t.root == nilSlot {
		return Handle{}
	}

	return t.handle(t.rightmost(t.root))
}

// Next returns the in-order successor of h, or a nil handle past the end.
func (t *Tree[T]) Next(h Handle) Handle {
	x, ok := t.resolve(h)
	if !ok {
		return Handle{}
	}

	if r := t.nodes[x].right; r != nilSlot {
		return t.handle(t.leftmost(r))
	}

	p := t.nodes[x].parent
	for p != nilSlot && t.nodes[p].right == x {
		x, p = p, t.nodes[p].parent
	}

	return t.handle(p)
}

// Prev returns the in-order predecessor of h, or a nil handle before the start.
func (t *Tree[T]) Prev(h Handle) Handle {
	x, ok := t.resolve(h)
	if !ok {
		return Handle{}
	}

	if l := t.nodes[x].left; l != nilSlot {
		return t.handle(t.rightmost(l))
	}

	p := t.nodes[x].parent
	for p != nilSlot && t.nodes[p].left == x {
		x, p = p, t.nodes[p].parent
	}

	return t.handle(p)
}

// Ascend calls fn for every element in order until fn returns false.
func (t *Tree[T]) Ascend(fn func(h Handle, item T) bool) {
	for h := t.First(); !h.IsNil(); h = t.Next(h) {
		if !fn(h, t.nodes[h.slot()].item) {
			return
		}
	}
}

func (t *Tree[T]) resolve(h Handle) (int32, bool) {
	if h.IsNil() {
		return nilSlot, false
	}

	x := h.slot()
	if int(x) >= len(t.nodes) || !t.nodes[x].used || t.nodes[x].gen != h.gen {
		return nilSlot, false
	}

	return x, true
}

func (t *Tree[T]) handle(x int32) Handle {
	if x == nilSlot {
		return Handle{}
	}

	return Handle{
		ref: uint32(x) + 1,
		gen: t.nodes[x].gen,
	}
}

func (t *Tree[T]) alloc(item T) int32 {
	var x int32

	if n := len(t.free); n > 0 {
		x = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		t.nodes = append(t.nodes, node[T]{})
		x = int32(len(t.nodes) - 1)
	}

	gen := t.nodes[x].gen + 1
	if gen == 0 {
		gen = 1
	}

	t.nodes[x] = node[T]{
		item:     item,
		left:     nilSlot,
		right:    nilSlot,
		parent:   nilSlot,
		priority: t.rnd.Uint32(),
		gen:      gen,
		used:     true,
	}

	return x
}

func (t *Tree[T]) release(x int32) {
	var zero T

	t.nodes[x].item = zero
	t.nodes[x].used = false
	t.nodes[x].left, t.nodes[x].right, t.nodes[x].parent = nilSlot, nilSlot, nilSlot
	t.free = append(t.free, x)
}

// rotateUp moves x above its parent, keeping the in-order sequence.
func (t *Tree[T]) rotateUp(x int32) {
	p := t.nodes[x].parent
	g := t.nodes[p].parent

	if t.nodes[p].left == x {
		b := t.nodes[x].right
		t.nodes[p].left = b

		if b != nilSlot {
			t.nodes[b].parent = p
		}

		t.nodes[x].right = p
	} else {
		b := t.nodes[x].left
		t.nodes[p].right = b

		if b != nilSlot {
			t.nodes[b].parent = p
		}

		t.nodes[x].left = p
	}

	t.nodes[p].parent = x
	t.nodes[x].parent = g
	t.replaceChild(g, p, x)
}

func (t *Tree[T]) replaceChild(parent, old, x int32) {
	switch {
	case parent == nilSlot:
		t.root = x
	case t.nodes[parent].left == old:
		t.nodes[parent].left = x
	default:
		t.nodes[parent].right = x
	}
}

func (t *Tree[T]) leftmost(x int32) int32 {
	for t.nodes[x].left != nilSlot {
		x = t.nodes[x].left
	}

	return x
}

func (t *Tree[T]) rightmost(x int32) int32 {
	for t.nodes[x].right != nilSlot {
		x = t.nodes[x].right
	}

	return x
}
