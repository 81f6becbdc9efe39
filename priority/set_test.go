package priority_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidvella/prioq/priority"
)

func queueOf(values ...int) *priority.Queue[int, int] {
	return priority.From(slices.Values(values))
}

func TestQueue_SetOperations(t *testing.T) {
	tests := []struct {
		name      string
		a, b      []int
		union     []int
		inter     []int
		diff      []int
		symDiff   []int
		disjoint  bool
		subset    bool
		properSub bool
		equal     bool
	}{
		{
			name:     "both empty",
			union:    []int{},
			inter:    []int{},
			diff:     []int{},
			symDiff:  []int{},
			disjoint: true,
			subset:   true,
			equal:    true,
		},
		{
			name:      "left empty",
			b:         []int{1, 2},
			union:     []int{1, 2},
			inter:     []int{},
			diff:      []int{},
			symDiff:   []int{1, 2},
			disjoint:  true,
			subset:    true,
			properSub: true,
		},
		{
			name:     "right empty",
			a:        []int{1, 2},
			union:    []int{1, 2},
			inter:    []int{},
			diff:     []int{1, 2},
			symDiff:  []int{1, 2},
			disjoint: true,
		},
		{
			name:    "overlapping multisets",
			a:       []int{5, 1, 2, 2},
			b:       []int{3, 2, 5},
			union:   []int{1, 2, 2, 3, 5},
			inter:   []int{2, 5},
			diff:    []int{1, 2},
			symDiff: []int{1, 2, 3},
		},
		{
			name:     "disjoint",
			a:        []int{1, 3},
			b:        []int{2, 4},
			union:    []int{1, 2, 3, 4},
			inter:    []int{},
			diff:     []int{1, 3},
			symDiff:  []int{1, 2, 3, 4},
			disjoint: true,
		},
		{
			name:    "same contents",
			a:       []int{3, 1, 2},
			b:       []int{2, 3, 1},
			union:   []int{1, 2, 3},
			inter:   []int{1, 2, 3},
			diff:    []int{},
			symDiff: []int{},
			subset:  true,
			equal:   true,
		},
		{
			name:      "proper subset",
			a:         []int{2, 2},
			b:         []int{2, 2, 2, 1},
			union:     []int{1, 2, 2, 2},
			inter:     []int{2, 2},
			diff:      []int{},
			symDiff:   []int{1, 2},
			subset:    true,
			properSub: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := queueOf(tt.a...), queueOf(tt.b...)

			assert.Equal(t, tt.union, a.Union(b).Values(), "union")
			assert.Equal(t, tt.inter, a.Intersection(b).Values(), "intersection")
			assert.Equal(t, tt.diff, a.Difference(b).Values(), "difference")
			assert.Equal(t, tt.symDiff, a.SymmetricDifference(b).Values(), "symmetric difference")
			assert.Equal(t, tt.disjoint, a.IsDisjoint(b), "disjoint")
			assert.Equal(t, tt.disjoint, b.IsDisjoint(a), "disjoint is symmetric")
			assert.Equal(t, tt.subset, a.IsSubset(b), "subset")
			assert.Equal(t, tt.properSub, a.IsProperSubset(b), "proper subset")
			assert.Equal(t, tt.equal, a.Equal(b), "equal")
			assert.Equal(t, tt.equal, b.Equal(a), "equal is symmetric")

			// Operands are left untouched.
			assert.Equal(t, len(tt.a), a.Len())
			assert.Equal(t, len(tt.b), b.Len())
		})
	}
}

func TestQueue_EqualHonoursOrder(t *testing.T) {
	forward := queueOf(0, 1, 2, 3)
	backward := priority.From(slices.Values([]int{0, 1, 2, 3}), priority.WithReverse())

	assert.True(t, forward.Equal(forward))
	assert.False(t, forward.Equal(backward))
	assert.False(t, backward.Equal(forward))
	assert.False(t, forward.Equal(queueOf(0, 1, 2)))
}

func TestQueue_SetOperationsKeepReceiverConfiguration(t *testing.T) {
	a := priority.From(slices.Values([]int{1, 4}), priority.WithReverse())
	b := queueOf(2, 3, 4)

	assert.Equal(t, []int{4, 3, 2, 1}, a.Union(b).Values())
	assert.Equal(t, []int{1}, a.Difference(b).Values())
	assert.Equal(t, []int{1, 2, 3, 4}, b.Union(a).Values())
}

func TestQueue_SetOperationsUseKeys(t *testing.T) {
	a := priority.NewKey(pairKey)
	a.Extend(slices.Values([]pair{{1, "a1"}, {2, "a2"}}))
	b := priority.NewKey(pairKey)
	b.Extend(slices.Values([]pair{{2, "b2"}, {3, "b3"}}))

	assert.Equal(t, []string{"a2"}, names(a.Intersection(b).Values()))
	assert.Equal(t, []string{"b2"}, names(b.Intersection(a).Values()))
	assert.Equal(t, []string{"a1", "a2", "b3"}, names(a.Union(b).Values()))
	assert.Equal(t, []string{"a1", "b3"}, names(a.SymmetricDifference(b).Values()))
}

// counts tallies values in a red-black tree keyed by value.
func counts(values []int) *redblacktree.Tree {
	tree := redblacktree.NewWithIntComparator()
	for _, v := range values {
		n := 0
		if c, ok := tree.Get(v); ok {
			n = c.(int)
		}
		tree.Put(v, n+1)
	}
	return tree
}

func count(tree *redblacktree.Tree, v int) int {
	if c, ok := tree.Get(v); ok {
		return c.(int)
	}
	return 0
}

// expand combines the tallies of both trees with f, in key order.
func expand(a, b *redblacktree.Tree, f func(x, y int) int) []int {
	keys := counts(nil)
	for _, k := range append(a.Keys(), b.Keys()...) {
		keys.Put(k, 0)
	}
	out := []int{}
	for _, k := range keys.Keys() {
		v := k.(int)
		for n := f(count(a, v), count(b, v)); n > 0; n-- {
			out = append(out, v)
		}
	}
	return out
}

func TestQueue_SetOperationsRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	randomValues := func() []int {
		values := make([]int, rng.Intn(40))
		for i := range values {
			values[i] = rng.Intn(15)
		}
		return values
	}

	for i := 0; i < 200; i++ {
		av, bv := randomValues(), randomValues()
		a, b := queueOf(av...), queueOf(bv...)
		ca, cb := counts(av), counts(bv)

		require.Equal(t, expand(ca, cb, func(x, y int) int { return max(x, y) }), a.Union(b).Values())
		require.Equal(t, expand(ca, cb, func(x, y int) int { return min(x, y) }), a.Intersection(b).Values())
		require.Equal(t, expand(ca, cb, func(x, y int) int { return x - y }), a.Difference(b).Values())
		require.Equal(t, expand(ca, cb, func(x, y int) int {
			if x > y {
				return x - y
			}
			return y - x
		}), a.SymmetricDifference(b).Values())

		union := a.Union(b)
		require.True(t, union.Valid())
		require.True(t, a.IsSubset(union))
		require.True(t, a.Intersection(union).Equal(a))
		require.Equal(t, a.IsDisjoint(b), a.Intersection(b).IsEmpty())
		require.Equal(t, a.IsSubset(b) && b.IsSubset(a), a.Equal(b))
	}
}
