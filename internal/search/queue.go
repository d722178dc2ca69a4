package search

import (
	"container/heap"
	"sync"
)

// foundHeap is a max-heap over Found.Value: index 0 always holds the
// best-scoring pending candidate.
type foundHeap []*Found

func (h foundHeap) Len() int            { return len(h) }
func (h foundHeap) Less(i, j int) bool  { return h[j].Value.Less(h[i].Value) }
func (h foundHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *foundHeap) Push(x interface{}) { *h = append(*h, x.(*Found)) }
func (h *foundHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// foundQueue is a thread-safe best-first collection point for accepted
// candidates: every worker lane calls add as it finishes; the consumer
// drains whatever arrived with drainAll once every lane is done. Unlike a
// plain buffered channel, a concurrent consumer could call popBest
// mid-run and always get the best candidate seen so far.
type foundQueue struct {
	mutex  sync.Mutex
	cond   *sync.Cond
	items  foundHeap
	closed bool
}

func newFoundQueue() *foundQueue {
	q := &foundQueue{}
	q.cond = sync.NewCond(&q.mutex)
	return q
}

// add enqueues a lane's result. A nil f (a lane in which no slot ever
// held a solvable candidate) is dropped rather than enqueued.
func (q *foundQueue) add(f *Found) {
	if f == nil {
		return
	}
	q.mutex.Lock()
	defer q.mutex.Unlock()
	if q.closed {
		return
	}
	heap.Push(&q.items, f)
	q.cond.Signal()
}

// close marks the queue as done accepting: no further add calls will
// enqueue, and popBest stops blocking once drained.
func (q *foundQueue) close() {
	q.mutex.Lock()
	defer q.mutex.Unlock()
	q.closed = true
	q.cond.Broadcast()
}

// popBest blocks until a candidate is available or the queue is closed
// and empty, in which case it returns (nil, false).
func (q *foundQueue) popBest() (*Found, bool) {
	q.mutex.Lock()
	defer q.mutex.Unlock()
	for len(q.items) == 0 {
		if q.closed {
			return nil, false
		}
		q.cond.Wait()
	}
	return heap.Pop(&q.items).(*Found), true
}

// drainAll pops every remaining candidate in best-first order.
func (q *foundQueue) drainAll() []*Found {
	var out []*Found
	for {
		f, ok := q.popBest()
		if !ok {
			return out
		}
		out = append(out, f)
	}
}
