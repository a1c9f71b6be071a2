// Package queue defines a generic FIFO queue.
package queue

// Queue is a first-in-first-out container.
type Queue[T any] struct {
	items []T
	head  int
}

func New[T any](items ...T) *Queue[T] {
	q := &Queue[T]{}
	q.items = append(q.items, items...)
	return q
}

func (q *Queue[T]) IsEmpty() bool {
	return q.head >= len(q.items)
}

func (q *Queue[T]) Len() int {
	return len(q.items) - q.head
}

func (q *Queue[T]) Append(item T) *Queue[T] {
	q.items = append(q.items, item)
	return q
}

// First removes and returns the oldest item.
func (q *Queue[T]) First() (T, bool) {
	if q.IsEmpty() {
		var zero T
		return zero, false
	}

	item := q.items[q.head]
	q.head++
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}
	return item, true
}
