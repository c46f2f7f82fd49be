// Package binheap implements an array-backed binary heap whose ordering is
// chosen at construction: Regular yields a min-heap, Reverse a max-heap.
//
// A Heap is not safe for concurrent use. Callers sharing one across
// goroutines must guard it with their own lock.
package binheap

import "cmp"

// Heap is a binary heap stored as a complete binary tree in a slice.
// The root (index 0) always holds the element preferred by the heap's Order.
type Heap[T any] struct {
	data    []T
	order   Order
	compare func(a, b T) int
}

// New returns an empty heap over a naturally ordered type.
//
// Elements are compared with cmp.Compare, which is a total order even for
// floating point: NaN sorts before every other value and NaNs compare equal
// to each other. A Regular heap therefore pops NaNs first, a Reverse heap
// pops them last.
func New[T cmp.Ordered](order Order) *Heap[T] {
	return NewFunc(order, cmp.Compare[T])
}

// NewFunc returns an empty heap ordered by compare, which must return a
// negative number when a < b, zero when a == b and a positive number when
// a > b. compare must be a consistent total order; the heap does not detect
// violations, and an inconsistent comparator leaves pop order unspecified.
func NewFunc[T any](order Order, compare func(a, b T) int) *Heap[T] {
	if compare == nil {
		panic("binheap: nil compare func")
	}
	order.Prefers(0) // panics on an invalid order
	return &Heap[T]{order: order, compare: compare}
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int { return len(h.data) }

// Order returns the ordering the heap was constructed with.
func (h *Heap[T]) Order() Order { return h.order }

// Push adds item to the heap.
func (h *Heap[T]) Push(item T) {
	h.data = append(h.data, item)
	h.up(len(h.data) - 1)
}

// Pop removes and returns the preferred element. ok is false if the heap
// is empty, in which case the heap is left untouched.
func (h *Heap[T]) Pop() (item T, ok bool) {
	n := len(h.data) - 1
	if n < 0 {
		return item, false
	}

	h.swap(0, n)
	item = h.data[n]
	var zero T
	h.data[n] = zero // avoid memory leak
	h.data = h.data[:n]
	h.down(0)

	return item, true
}

// Peek returns the preferred element without removing it. ok is false if
// the heap is empty.
func (h *Heap[T]) Peek() (item T, ok bool) {
	if len(h.data) == 0 {
		return item, false
	}
	return h.data[0], true
}

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }

// before reports whether the element at i is strictly preferred over the
// element at j.
func (h *Heap[T]) before(i, j int) bool {
	return h.order.Prefers(h.compare(h.data[i], h.data[j]))
}

func (h *Heap[T]) swap(i, j int) {
	h.data[i], h.data[j] = h.data[j], h.data[i]
}

func (h *Heap[T]) up(i int) {
	for i > 0 {
		p := parent(i)
		if !h.before(i, p) {
			break
		}
		h.swap(i, p)
		i = p
	}
}

func (h *Heap[T]) down(i int) {
	n := len(h.data)
	for left(i) < n {
		best := i
		if l := left(i); h.before(l, best) {
			best = l
		}
		if r := right(i); r < n && h.before(r, best) {
			best = r
		}
		// ties stay with the current node
		if best == i {
			break
		}
		h.swap(i, best)
		i = best
	}
}
