// Package Queues implements FIFO queues. Trees uses them for level order traversal.
package Queues

// Queue is a first in first out container.
type Queue[T any] interface {
	// Push item to the back.
	Push(item T)
	// Pop removes and returns the front item. Returns *EmptyQueueError when empty.
	Pop() (T, error)
	// Peek the front item without removing it. The zero value when empty.
	Peek() T
	Empty() bool
}

// ArrayQueue is a Queue backed by a circular slice.
type ArrayQueue[T any] interface {
	Queue[T]
	Shrink()
	Clear()
	Size() uint
	resize(newLen uint)
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
