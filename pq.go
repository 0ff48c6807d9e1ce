package searchclient

import "container/heap"

var _ heap.Interface = (*priorityQueue[State])(nil)

// queueItem is a frontier entry of the best-first strategy.
// Score is fixed at insertion; Seq breaks ties in insertion order.
type queueItem[S State] struct {
	State        S
	ID           uint32
	Score        int
	Seq          uint64
	IndexInQueue int
}

type priorityQueue[S State] []*queueItem[S]

func (queue priorityQueue[S]) Len() int { return len(queue) }

func (queue priorityQueue[S]) Less(i, j int) bool {
	if queue[i].Score != queue[j].Score {
		return queue[i].Score < queue[j].Score
	}
	return queue[i].Seq < queue[j].Seq
}

func (queue priorityQueue[S]) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].IndexInQueue = i
	queue[j].IndexInQueue = j
}

func (queue *priorityQueue[S]) Push(x any) {
	item := x.(*queueItem[S])
	item.IndexInQueue = len(*queue)
	*queue = append(*queue, item)
}

func (queue *priorityQueue[S]) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	item.IndexInQueue = -1
	*queue = oldQueue[:n-1]
	return item
}
