package local

import (
	"container/heap"

	"github.com/m-mizutani/octosched/pkg/domain/model"
)

// jobQueue is a min-heap of queued jobs ordered by priority, then enqueue time.
type jobQueue []*model.QueuedJob

var _ heap.Interface = (*jobQueue)(nil)

func (q jobQueue) Len() int           { return len(q) }
func (q jobQueue) Less(i, j int) bool { return q[i].Before(q[j]) }
func (q jobQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }

func (q *jobQueue) Push(x any) {
	*q = append(*q, x.(*model.QueuedJob))
}

func (q *jobQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}
