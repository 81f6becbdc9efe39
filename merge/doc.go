// Package merge combines already sorted sequences into a single sorted
// sequence. It keeps the head of every input in a priority.Queue, so merging
// k sequences costs O(log k) comparisons per element.
//
// Basic usage:
//
//	seq1 := slices.Values([]int{1, 4, 7})
//	seq2 := slices.Values([]int{2, 5, 8})
//	seq3 := slices.Values([]int{3, 6, 9})
//
//	for v := range merge.Ordered(seq1, seq2, seq3) {
//	    fmt.Println(v) // Will print: 1, 2, 3, 4, 5, 6, 7, 8, 9
//	}
//
// The merge is stable: equal elements are produced in the order of the
// sequences they come from, and elements of one sequence keep their relative
// order. Inputs are consumed lazily with iter.Pull and released as soon as the
// caller stops iterating.
package merge
