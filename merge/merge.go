package merge

import (
	"cmp"
	"iter"
	"slices"

	"github.com/davidvella/prioq/priority"
)

// cursor is the current head of one input sequence.
type cursor[E any] struct {
	value  E
	source int
}

// Ordered merges sorted sequences of naturally ordered elements.
func Ordered[E cmp.Ordered](seqs ...iter.Seq[E]) iter.Seq[E] {
	return Sorted(cmp.Compare[E], seqs...)
}

// Sorted merges sequences that are each sorted according to compare. Equal
// elements are produced in the order of the sequences they come from.
func Sorted[E any](compare func(a, b E) int, seqs ...iter.Seq[E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		nexts := make([]func() (E, bool), len(seqs))
		heads := make([]cursor[E], 0, len(seqs))
		for i, s := range seqs {
			next, stop := iter.Pull(s)
			//nolint:gocritic // stopped when the merge returns.
			defer stop()
			nexts[i] = next
			if v, ok := next(); ok {
				heads = append(heads, cursor[E]{value: v, source: i})
			}
		}

		pq := priority.NewCompare(func(a, b cursor[E]) int {
			if c := compare(a.value, b.value); c != 0 {
				return c
			}
			return cmp.Compare(a.source, b.source)
		}, priority.WithCapacity(len(seqs)))
		pq.Extend(slices.Values(heads))

		for !pq.IsEmpty() {
			c, _ := pq.Pop()
			if !yield(c.value) {
				return
			}
			if v, ok := nexts[c.source](); ok {
				pq.Push(cursor[E]{value: v, source: c.source})
			}
		}
	}
}
