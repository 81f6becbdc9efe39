package priority

import "github.com/sirupsen/logrus"

// Valid reports whether every element of the backing store is ordered before
// its children.
func (q *Queue[V, K]) Valid() bool {
	n := len(q.items)
	for i := 0; i < n; i++ {
		left, right := 2*i+1, 2*i+2
		if left < n && q.less(&q.items[left], &q.items[i]) {
			return false
		}
		if right < n && q.less(&q.items[right], &q.items[i]) {
			return false
		}
	}
	return true
}

// NextSeq returns the sequence number the next inserted value will receive.
func (q *Queue[V, K]) NextSeq() uint64 {
	return q.seq
}

// Cap returns the capacity of the backing store.
func (q *Queue[V, K]) Cap() int {
	return cap(q.items)
}

// Logger returns the logger the queue writes debug entries to.
func (q *Queue[V, K]) Logger() logrus.FieldLogger {
	return q.opts.logger
}
