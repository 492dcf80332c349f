package gridsearch

import (
	"container/heap"
	"math"
)

// Epsilon is the tolerance under which two estimated costs are treated as equal.
const Epsilon = 1.1920929e-07

// PriorityQueueItem is a candidate on the frontier: a cell, the cell it was
// reached from, and the direction of the move or jump that reached it.
type PriorityQueueItem struct {
	Cell         Cell
	Parent       Cell
	Direction    Direction
	GScore       float64
	FCost        float64
	IndexInQueue int
	sequence     uint64
}

// PriorityQueue orders items by FCost. Items whose costs are within Epsilon
// pop in reverse insertion order.
type PriorityQueue []*PriorityQueueItem

func (queue PriorityQueue) Len() int { return len(queue) }
func (queue PriorityQueue) Less(i, j int) bool {
	a, b := queue[i], queue[j]
	if !costEqual(a.FCost, b.FCost) {
		return a.FCost < b.FCost
	}
	return a.sequence > b.sequence
}
func (queue PriorityQueue) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].IndexInQueue = i
	queue[j].IndexInQueue = j
}

func (queue *PriorityQueue) Push(x any) {
	item := x.(*PriorityQueueItem)
	item.IndexInQueue = len(*queue)
	*queue = append(*queue, item)
}

func (queue *PriorityQueue) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	item.IndexInQueue = -1
	*queue = oldQueue[:n-1]
	return item
}

func costEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// frontier wraps the heap and stamps every pushed item with its insertion order.
type frontier struct {
	queue    PriorityQueue
	inserted uint64
}

func newFrontier() *frontier {
	f := &frontier{queue: make(PriorityQueue, 0)}
	heap.Init(&f.queue)
	return f
}

func (f *frontier) push(item *PriorityQueueItem) {
	f.inserted++
	item.sequence = f.inserted
	heap.Push(&f.queue, item)
}

func (f *frontier) pop() *PriorityQueueItem {
	return heap.Pop(&f.queue).(*PriorityQueueItem)
}

func (f *frontier) len() int { return f.queue.Len() }

func (f *frontier) cells() map[Cell]bool {
	m := make(map[Cell]bool, len(f.queue))
	for _, item := range f.queue {
		m[item.Cell] = true
	}
	return m
}
