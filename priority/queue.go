package priority

import (
	"cmp"
	"errors"
	"iter"
	"math/bits"
	"slices"

	"github.com/sirupsen/logrus"
)

// ErrEmptyQueue is returned by Peek and Pop when the queue holds no elements.
var ErrEmptyQueue = errors.New("priority: queue is empty")

// item represents an element in the queue together with its ordering data.
type item[V, K any] struct {
	value V
	key   K      // computed once, on insertion
	seq   uint64 // insertion order, breaks ties between equal keys
}

// Queue implements a priority queue using an array-backed binary min-heap.
//
// Elements are ordered by the key extracted from each value, and elements with
// equal keys are served in the order they were inserted. A Queue is not safe
// for concurrent use.
type Queue[V, K any] struct {
	items   []item[V, K]
	key     func(V) K
	compare func(a, b K) int
	seq     uint64
	opts    options
}

func identity[V any](v V) V { return v }

// New creates an empty queue ordering values by their natural order.
func New[V cmp.Ordered](opts ...Option) *Queue[V, V] {
	return NewFunc(identity[V], cmp.Compare[V], opts...)
}

// NewCompare creates an empty queue ordering values with compare.
func NewCompare[V any](compare func(a, b V) int, opts ...Option) *Queue[V, V] {
	return NewFunc(identity[V], compare, opts...)
}

// NewKey creates an empty queue ordering values by the natural order of the
// key extracted from each value.
func NewKey[V any, K cmp.Ordered](key func(V) K, opts ...Option) *Queue[V, K] {
	return NewFunc(key, cmp.Compare[K], opts...)
}

// NewFunc creates an empty queue that extracts a key from every value with key
// and orders keys with compare. compare must define a total order and return a
// negative number, zero or a positive number like cmp.Compare. Neither function
// may be nil.
func NewFunc[V, K any](key func(V) K, compare func(a, b K) int, opts ...Option) *Queue[V, K] {
	o := buildOptions(opts)
	if o.reverse {
		forward := compare
		compare = func(a, b K) int { return forward(b, a) }
	}
	return &Queue[V, K]{
		items:   make([]item[V, K], 0, o.capacity),
		key:     key,
		compare: compare,
		opts:    o,
	}
}

// From builds a queue holding values, ordered by their natural order.
// The complexity is O(n).
func From[V cmp.Ordered](values iter.Seq[V], opts ...Option) *Queue[V, V] {
	q := New[V](opts...)
	q.Extend(values)
	return q
}

// FromFunc builds a queue holding values, configured as by NewFunc.
// The complexity is O(n).
func FromFunc[V, K any](values iter.Seq[V], key func(V) K, compare func(a, b K) int, opts ...Option) *Queue[V, K] {
	q := NewFunc(key, compare, opts...)
	q.Extend(values)
	return q
}

// Len returns the number of elements in the queue.
func (q *Queue[V, K]) Len() int {
	return len(q.items)
}

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[V, K]) IsEmpty() bool {
	return len(q.items) == 0
}

// Push adds a value to the queue.
// The complexity is O(log n).
func (q *Queue[V, K]) Push(v V) {
	q.items = append(q.items, q.wrap(v))
	q.up(q.items, len(q.items)-1)
}

// Insert is an alias for Push.
func (q *Queue[V, K]) Insert(v V) {
	q.Push(v)
}

// Extend adds all values to the queue. When m values are added to n held, heap
// order is restored either by one bottom-up pass over the whole heap, O(n+m),
// or, when m is small next to n, by sifting up each new value, O(m log n).
func (q *Queue[V, K]) Extend(values iter.Seq[V]) {
	before := len(q.items)
	for v := range values {
		q.items = append(q.items, q.wrap(v))
	}
	added := len(q.items) - before
	if added == 0 {
		return
	}

	rebuild := added*bits.Len(uint(len(q.items))) >= len(q.items)
	if rebuild {
		q.heapify(q.items)
	} else {
		for i := before; i < len(q.items); i++ {
			q.up(q.items, i)
		}
	}
	q.opts.logger.WithFields(logrus.Fields{
		"count":   added,
		"size":    len(q.items),
		"rebuild": rebuild,
	}).Debug("priority: bulk insert")
}

// Peek returns the smallest value without removing it.
func (q *Queue[V, K]) Peek() (V, error) {
	if len(q.items) == 0 {
		var zero V
		return zero, ErrEmptyQueue
	}
	return q.items[0].value, nil
}

// Pop removes and returns the smallest value.
// The complexity is O(log n).
func (q *Queue[V, K]) Pop() (V, error) {
	if len(q.items) == 0 {
		var zero V
		return zero, ErrEmptyQueue
	}
	var top item[V, K]
	top, q.items = q.pop(q.items)
	return top.value, nil
}

// All returns an iterator over the values in the queue from the smallest to
// the largest. The queue is left untouched: every iteration works on a private
// copy of the elements held when it starts.
func (q *Queue[V, K]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for it := range q.ordered() {
			if !yield(it.value) {
				return
			}
		}
	}
}

// Values returns the values in the queue from the smallest to the largest.
// The complexity is O(n log n).
func (q *Queue[V, K]) Values() []V {
	return slices.AppendSeq(make([]V, 0, len(q.items)), q.All())
}

// Contains reports whether the queue holds a value whose key is equal to the
// key of v.
func (q *Queue[V, K]) Contains(v V) bool {
	k := q.key(v)
	stack := []int{0}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if i >= len(q.items) {
			continue
		}
		c := q.compare(q.items[i].key, k)
		if c == 0 {
			return true
		}
		// Every key below a greater key is greater as well.
		if c < 0 {
			stack = append(stack, 2*i+1, 2*i+2)
		}
	}
	return false
}

// Clear removes all values from the queue.
func (q *Queue[V, K]) Clear() {
	n := len(q.items)
	clear(q.items)
	q.items = q.items[:0]
	q.opts.logger.WithField("count", n).Debug("priority: cleared queue")
}

// Clone returns an independent copy of the queue with the same configuration.
func (q *Queue[V, K]) Clone() *Queue[V, K] {
	c := q.empty()
	c.items = append(c.items, q.items...)
	c.seq = q.seq
	return c
}

// empty returns an empty queue sharing the configuration of q.
func (q *Queue[V, K]) empty() *Queue[V, K] {
	return &Queue[V, K]{
		items:   make([]item[V, K], 0, q.opts.capacity),
		key:     q.key,
		compare: q.compare,
		opts:    q.opts,
	}
}

// wrap pairs v with its key and the next sequence number.
func (q *Queue[V, K]) wrap(v V) item[V, K] {
	it := item[V, K]{value: v, key: q.key(v), seq: q.seq}
	q.seq++
	return it
}

// ordered yields the elements of q in order by extracting them one at a time
// from a copy of the heap.
func (q *Queue[V, K]) ordered() iter.Seq[item[V, K]] {
	return func(yield func(item[V, K]) bool) {
		work := slices.Clone(q.items)
		for len(work) > 0 {
			var top item[V, K]
			top, work = q.pop(work)
			if !yield(top) {
				return
			}
		}
	}
}

// pop removes the root of a non-empty heap and returns it with the shrunk heap.
func (q *Queue[V, K]) pop(items []item[V, K]) (item[V, K], []item[V, K]) {
	top := items[0]
	n := len(items) - 1
	items[0] = items[n]
	items[n] = item[V, K]{}
	items = items[:n]
	q.down(items, 0)
	return top, items
}

// less orders elements by key, then by insertion order.
func (q *Queue[V, K]) less(a, b *item[V, K]) bool {
	if c := q.compare(a.key, b.key); c != 0 {
		return c < 0
	}
	return a.seq < b.seq
}

// heapify establishes heap order over the whole slice.
func (q *Queue[V, K]) heapify(items []item[V, K]) {
	for i := len(items)/2 - 1; i >= 0; i-- {
		q.down(items, i)
	}
}

// up moves the element at index i up to its proper position.
func (q *Queue[V, K]) up(items []item[V, K], i int) {
	for {
		parent := (i - 1) / 2
		if parent == i || !q.less(&items[i], &items[parent]) {
			break
		}
		items[i], items[parent] = items[parent], items[i]
		i = parent
	}
}

// down moves the element at index i down to its proper position.
func (q *Queue[V, K]) down(items []item[V, K], i int) {
	for {
		smallest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < len(items) && q.less(&items[left], &items[smallest]) {
			smallest = left
		}
		if right < len(items) && q.less(&items[right], &items[smallest]) {
			smallest = right
		}

		if smallest == i {
			break
		}

		items[i], items[smallest] = items[smallest], items[i]
		i = smallest
	}
}
