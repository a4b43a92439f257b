// Package linkedlist implements a generic doubly linked list.
//
// Mutating methods return the list itself so calls can be chained:
//
//	l := linkedlist.New[int]().Push(1).Push(2).Unshift(0)
//
// A List is not safe for concurrent use.
package linkedlist

import "iter"

// Node is an element of a List.
type Node[T any] struct {
	Value T
	next  *Node[T]
	prev  *Node[T]
}

// Next returns the following node, or nil at the tail.
func (n *Node[T]) Next() *Node[T] { return n.next }

// Prev returns the preceding node, or nil at the head.
func (n *Node[T]) Prev() *Node[T] { return n.prev }

// List is a doubly linked list. The zero value is an empty list.
type List[T any] struct {
	head   *Node[T]
	tail   *Node[T]
	length int
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// From returns a list holding vals in order.
func From[T any](vals ...T) *List[T] {
	l := New[T]()
	for _, v := range vals {
		l.Push(v)
	}
	return l
}

// Len is the number of elements.
func (l *List[T]) Len() int { return l.length }

// Head returns the first node, or nil when empty.
func (l *List[T]) Head() *Node[T] { return l.head }

// Tail returns the last node, or nil when empty.
func (l *List[T]) Tail() *Node[T] { return l.tail }

// Empty removes every element.
func (l *List[T]) Empty() *List[T] {
	l.head, l.tail, l.length = nil, nil, 0
	return l
}

// Push appends v at the tail.
func (l *List[T]) Push(v T) *List[T] {
	n := &Node[T]{Value: v, prev: l.tail}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.length++
	return l
}

// Unshift prepends v at the head.
func (l *List[T]) Unshift(v T) *List[T] {
	n := &Node[T]{Value: v, next: l.head}
	if l.head == nil {
		l.tail = n
	} else {
		l.head.prev = n
	}
	l.head = n
	l.length++
	return l
}

// Pop removes and returns the tail value.
func (l *List[T]) Pop() (T, bool) {
	n := l.tail
	if n == nil {
		var zero T
		return zero, false
	}
	l.tail = n.prev
	if l.tail == nil {
		l.head = nil
	} else {
		l.tail.next = nil
	}
	l.length--
	n.prev, n.next = nil, nil
	return n.Value, true
}

// Shift removes and returns the head value.
func (l *List[T]) Shift() (T, bool) {
	n := l.head
	if n == nil {
		var zero T
		return zero, false
	}
	l.head = n.next
	if l.head == nil {
		l.tail = nil
	} else {
		l.head.prev = nil
	}
	l.length--
	n.prev, n.next = nil, nil
	return n.Value, true
}

// Index returns the i-th node, walking from whichever end is nearer.
func (l *List[T]) Index(i int) *Node[T] {
	if i < 0 || i >= l.length {
		return nil
	}
	if i < l.length/2 {
		cur := l.head
		for ; i > 0; i-- {
			cur = cur.next
		}
		return cur
	}
	cur := l.tail
	for j := l.length - 1; j > i; j-- {
		cur = cur.prev
	}
	return cur
}

// At returns the value of the i-th element.
func (l *List[T]) At(i int) (T, bool) {
	if n := l.Index(i); n != nil {
		return n.Value, true
	}
	var zero T
	return zero, false
}

// Truncate shortens the list in place to keep elements.
// With fromHead the surplus is dropped from the head, keeping the last keep
// elements; otherwise it is dropped from the tail.
func (l *List[T]) Truncate(keep int, fromHead bool) *List[T] {
	if keep <= 0 {
		return l.Empty()
	}
	if keep >= l.length {
		return l
	}
	if fromHead {
		l.head = l.Index(l.length - keep)
		l.head.prev.next = nil
		l.head.prev = nil
	} else {
		l.tail = l.Index(keep - 1)
		l.tail.next.prev = nil
		l.tail.next = nil
	}
	l.length = keep
	return l
}

// All iterates values from head to tail.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := l.head; cur != nil; cur = cur.next {
			if !yield(cur.Value) {
				return
			}
		}
	}
}

// Backward iterates values from tail to head.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := l.tail; cur != nil; cur = cur.prev {
			if !yield(cur.Value) {
				return
			}
		}
	}
}

// Items returns the values as a slice, head first.
func (l *List[T]) Items() []T {
	items := make([]T, 0, l.length)
	for v := range l.All() {
		items = append(items, v)
	}
	return items
}
