// Package priority implements a generic priority queue backed by a binary
// min-heap. The queue supports efficient insertion, inspection of the smallest
// element and removal of the smallest element.
//
// Every value pushed onto the queue is paired with a key, computed once by the
// queue's key function, and with a sequence number taken from a counter that
// only ever grows. Values are ordered by key using the queue's comparator and,
// among equal keys, by sequence number, so values with equal priority are
// served first in, first out.
//
// Key features:
//   - Generic implementation supporting any value type and any key type
//   - Natural ordering, custom comparators and key functions
//   - O(log n) insertion and removal
//   - O(1) peek operations
//   - O(n) construction from an existing collection
//   - Non-destructive ordered iteration using Go's iter.Seq
//   - Multiset algebra (union, intersection, difference) between queues
//
// Basic usage:
//
//	// Create a min-heap priority queue
//	pq := priority.From(slices.Values([]int{5, 3, 8, 1}))
//
//	// Add items
//	pq.Push(4)
//
//	// Get the smallest item
//	v, err := pq.Peek()
//	if err == nil {
//	    fmt.Printf("Smallest: %d\n", v)
//	}
//
//	// Walk the queue in order without consuming it
//	for v := range pq.All() {
//	    fmt.Println(v)
//	}
//
//	// Remove and return the smallest item
//	v, err = pq.Pop()
//	if errors.Is(err, priority.ErrEmptyQueue) {
//	    // nothing left
//	}
//
// Ordering by a field of a struct:
//
//	type Task struct {
//	    Priority int
//	    Name     string
//	}
//
//	pq := priority.NewKey(func(t Task) int { return t.Priority })
//
// The queue keeps its elements in a slice where the children of the element
// at index i live at 2i+1 and 2i+2, and every element is ordered before its
// children. Only the element at index 0 is guaranteed to be the smallest,
// which is why All extracts elements from a private copy of the heap instead
// of walking the slice.
//
// Queues are not safe for concurrent use. A comparator that panics leaves the
// queue in an unspecified state.
package priority
