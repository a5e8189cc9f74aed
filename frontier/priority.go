package frontier

import "container/heap"

// PriorityQueue is a min-priority queue holding at most one entry per key.
//
// Ordering: lower priority first; equal priorities pop in the order their
// keys were first inserted.
type PriorityQueue[K comparable, V any] struct {
	h     entryHeap[K, V]
	index map[K]*entry[K, V]
	seq   uint64
}

// entry is one queued key with its payload and heap bookkeeping.
type entry[K comparable, V any] struct {
	key      K
	value    V
	priority float64
	seq      uint64 // insertion sequence, tie-breaker
	pos      int    // index in the heap slice
}

// NewPriorityQueue returns an empty queue with room for capacity entries.
func NewPriorityQueue[K comparable, V any](capacity int) *PriorityQueue[K, V] {
	return &PriorityQueue[K, V]{
		h:     make(entryHeap[K, V], 0, capacity),
		index: make(map[K]*entry[K, V], capacity),
	}
}

// Update offers key with value at priority and reports whether the queue
// changed.
//
//   - key absent: a new entry is inserted.
//   - key queued with priority <= the offered one: nothing changes.
//   - key queued with a higher priority: its priority is lowered and its
//     value replaced in place. The entry keeps its insertion sequence.
func (pq *PriorityQueue[K, V]) Update(key K, value V, priority float64) bool {
	if pq.index == nil {
		pq.index = make(map[K]*entry[K, V])
	}
	if e, ok := pq.index[key]; ok {
		if e.priority <= priority {
			return false
		}
		e.priority = priority
		e.value = value
		heap.Fix(&pq.h, e.pos)

		return true
	}

	e := &entry[K, V]{key: key, value: value, priority: priority, seq: pq.seq}
	pq.seq++
	pq.index[key] = e
	heap.Push(&pq.h, e)

	return true
}

// Pop removes and returns the entry with the lowest priority.
// ok is false when the queue is empty.
func (pq *PriorityQueue[K, V]) Pop() (key K, value V, priority float64, ok bool) {
	if len(pq.h) == 0 {
		return key, value, 0, false
	}
	e := heap.Pop(&pq.h).(*entry[K, V])
	delete(pq.index, e.key)

	return e.key, e.value, e.priority, true
}

// Contains reports whether key is queued.
func (pq *PriorityQueue[K, V]) Contains(key K) bool {
	_, ok := pq.index[key]

	return ok
}

// Priority returns the queued priority of key.
func (pq *PriorityQueue[K, V]) Priority(key K) (float64, bool) {
	e, ok := pq.index[key]
	if !ok {
		return 0, false
	}

	return e.priority, true
}

// Len returns the number of queued entries.
func (pq *PriorityQueue[K, V]) Len() int { return len(pq.h) }

// Empty reports whether the queue holds no entries.
func (pq *PriorityQueue[K, V]) Empty() bool { return len(pq.h) == 0 }

// entryHeap implements heap.Interface over *entry, ordered by
// (priority, seq) ascending.
type entryHeap[K comparable, V any] []*entry[K, V]

func (h entryHeap[K, V]) Len() int { return len(h) }

func (h entryHeap[K, V]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].seq < h[j].seq
}

func (h entryHeap[K, V]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].pos = i
	h[j].pos = j
}

// Push is called by heap.Push; x must be *entry.
func (h *entryHeap[K, V]) Push(x any) {
	e := x.(*entry[K, V])
	e.pos = len(*h)
	*h = append(*h, e)
}

// Pop is called by heap.Pop and removes the last element.
func (h *entryHeap[K, V]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.pos = -1
	*h = old[:n-1]

	return e
}
