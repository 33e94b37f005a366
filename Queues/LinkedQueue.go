package Queues

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

// linkedQ is a Queue over a singly linked list. Nodes are allocated per Push, so
// there's no resize cost, but more garbage than circArrQ.
type linkedQ[T any] struct {
	l *linkedlistqueue.Queue
}

// MakeLinkedQueue returns an empty linked list backed Queue.
func MakeLinkedQueue[T any]() Queue[T] {
	return &linkedQ[T]{linkedlistqueue.New()}
}

func (this *linkedQ[T]) Push(item T) {
	this.l.Enqueue(item)
}

func (this *linkedQ[T]) Pop() (T, error) {
	if v, ok := this.l.Dequeue(); ok {
		t, _ := v.(T) // v is nil when a nil interface was pushed
		return t, nil
	}
	return *new(T), &EmptyQueueError{}
}

func (this *linkedQ[T]) Peek() T {
	if v, ok := this.l.Peek(); ok {
		t, _ := v.(T)
		return t
	}
	return *new(T)
}

func (this *linkedQ[T]) Empty() bool {
	return this.l.Empty()
}
