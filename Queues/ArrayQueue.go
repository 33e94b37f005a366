package Queues

type circArrQ[T any] struct {
	sz, head, tail uint
	content        []T
}

// MakeArrayQueue with room for initCap items before the first resize. initCap can be 0.
func MakeArrayQueue[T any](initCap uint) ArrayQueue[T] {
	return &circArrQ[T]{0, 0, 0, make([]T, initCap)}
}

func (this circArrQ[T]) Empty() bool {
	return this.sz == 0
}

// resize moves the items to a new slice of newLen, newLen>=sz. head is 0 afterward.
func (this *circArrQ[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if this.sz > 0 {
		if this.head < this.tail {
			copy(nc, this.content[this.head:this.tail])
		} else {
			n := copy(nc, this.content[this.head:])
			copy(nc[n:], this.content[:this.tail])
		}
	}
	this.content = nc
	this.head, this.tail = 0, this.sz%max(newLen, 1)
}

// Shrink the underlying slice to fit the current items.
func (this *circArrQ[T]) Shrink() {
	this.resize(this.sz | 1)
}

// Clear the queue. Keeps the underlying slice.
func (this *circArrQ[T]) Clear() {
	clear(this.content)
	this.tail, this.head, this.sz = 0, 0, 0
}

func (this circArrQ[T]) Size() uint {
	return this.sz
}

// Push grows the slice by 3/2 when full, by at least one slot.
func (this *circArrQ[T]) Push(item T) {
	if this.sz == uint(len(this.content)) {
		this.resize(max(this.sz*3/2, this.sz+1))
	}
	this.content[this.tail] = item
	this.tail = (this.tail + 1) % uint(len(this.content))
	this.sz++
}

func (this *circArrQ[T]) Pop() (item T, e error) {
	if this.Empty() {
		return *new(T), &EmptyQueueError{}
	} else {
		t := this.content[this.head]
		this.content[this.head] = *new(T)
		this.head = (this.head + 1) % uint(len(this.content))
		this.sz--
		return t, nil
	}
}

func (this circArrQ[T]) Peek() (item T) {
	if this.Empty() {
		return *new(T)
	} else {
		return this.content[this.head]
	}
}
