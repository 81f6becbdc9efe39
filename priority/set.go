package priority

import "iter"

// The operations below treat queues as multisets. Two values are equivalent
// when the receiver's comparator reports their keys as equal; the receiver's
// key function is applied to the values of the other queue. Results are new
// queues configured like the receiver.

// Equal reports whether both queues hold the same number of values and yield
// equivalent values at every position of their ordered iteration.
func (q *Queue[V, K]) Equal(other *Queue[V, K]) bool {
	if q == other {
		return true
	}
	if len(q.items) != len(other.items) {
		return false
	}

	next, stop := iter.Pull(other.All())
	defer stop()
	for it := range q.ordered() {
		v, ok := next()
		if !ok || q.compare(it.key, q.key(v)) != 0 {
			return false
		}
	}
	return true
}

// Union returns the values present in either queue. A value held several
// times appears as many times as in the side holding it most.
func (q *Queue[V, K]) Union(other *Queue[V, K]) *Queue[V, K] {
	r := q.empty()
	q.walk(other,
		r.appendItem,
		r.appendItem,
		func(l, _ item[V, K]) bool { return r.appendItem(l) },
	)
	r.heapify(r.items)
	return r
}

// Intersection returns the values present in both queues.
func (q *Queue[V, K]) Intersection(other *Queue[V, K]) *Queue[V, K] {
	r := q.empty()
	q.walk(other,
		skip[V, K],
		skip[V, K],
		func(l, _ item[V, K]) bool { return r.appendItem(l) },
	)
	r.heapify(r.items)
	return r
}

// Difference returns the values of q that are not matched by a value of other.
func (q *Queue[V, K]) Difference(other *Queue[V, K]) *Queue[V, K] {
	r := q.empty()
	q.walk(other, r.appendItem, skip[V, K], skipBoth[V, K])
	r.heapify(r.items)
	return r
}

// SymmetricDifference returns the values of either queue that are not matched
// by a value of the other one.
func (q *Queue[V, K]) SymmetricDifference(other *Queue[V, K]) *Queue[V, K] {
	r := q.empty()
	q.walk(other, r.appendItem, r.appendItem, skipBoth[V, K])
	r.heapify(r.items)
	return r
}

// IsDisjoint reports whether the queues have no equivalent values.
func (q *Queue[V, K]) IsDisjoint(other *Queue[V, K]) bool {
	disjoint := true
	q.walk(other, skip[V, K], skip[V, K], func(_, _ item[V, K]) bool {
		disjoint = false
		return false
	})
	return disjoint
}

// IsSubset reports whether every value of q is matched by a value of other.
func (q *Queue[V, K]) IsSubset(other *Queue[V, K]) bool {
	if len(q.items) > len(other.items) {
		return false
	}
	subset := true
	q.walk(other, func(item[V, K]) bool {
		subset = false
		return false
	}, skip[V, K], skipBoth[V, K])
	return subset
}

// IsProperSubset reports whether q is a subset of other and other holds more
// values.
func (q *Queue[V, K]) IsProperSubset(other *Queue[V, K]) bool {
	return len(q.items) < len(other.items) && q.IsSubset(other)
}

// walk visits the elements of q and other in order, pairing equivalent
// elements one to one. onLeft and onRight receive unmatched elements of q and
// other respectively, onBoth receives matched pairs. A callback returning
// false stops the walk.
func (q *Queue[V, K]) walk(
	other *Queue[V, K],
	onLeft, onRight func(item[V, K]) bool,
	onBoth func(l, r item[V, K]) bool,
) {
	nextL, stopL := iter.Pull(q.ordered())
	defer stopL()
	nextR, stopR := iter.Pull(q.adopt(other).ordered())
	defer stopR()

	l, okL := nextL()
	r, okR := nextR()
	for okL && okR {
		switch c := q.compare(l.key, r.key); {
		case c < 0:
			if !onLeft(l) {
				return
			}
			l, okL = nextL()
		case c > 0:
			if !onRight(r) {
				return
			}
			r, okR = nextR()
		default:
			if !onBoth(l, r) {
				return
			}
			l, okL = nextL()
			r, okR = nextR()
		}
	}
	for ; okL; l, okL = nextL() {
		if !onLeft(l) {
			return
		}
	}
	for ; okR; r, okR = nextR() {
		if !onRight(r) {
			return
		}
	}
}

// adopt returns the values of other in a queue configured like q, inserted in
// the order other serves them.
func (q *Queue[V, K]) adopt(other *Queue[V, K]) *Queue[V, K] {
	r := q.empty()
	r.items = make([]item[V, K], 0, len(other.items))
	for v := range other.All() {
		r.items = append(r.items, r.wrap(v))
	}
	r.heapify(r.items)
	return r
}

// appendItem stores the value of it without restoring heap order.
func (q *Queue[V, K]) appendItem(it item[V, K]) bool {
	q.items = append(q.items, q.wrap(it.value))
	return true
}

func skip[V, K any](item[V, K]) bool { return true }

func skipBoth[V, K any](_, _ item[V, K]) bool { return true }
