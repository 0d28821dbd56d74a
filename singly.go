package linkedlist

import "iter"

type singlyNode[T comparable] struct {
	value T
	next  *singlyNode[T]
}

// Singly is a singly-linked list. Values can be inserted at both ends of the
// list in constant time, but the list can only be traversed from front to
// back, so deletions have to track the predecessor of the removed value.
//
// The zero-value is a valid, empty list.
type Singly[T comparable] struct {
	head *singlyNode[T]
	tail *singlyNode[T]
	size int
}

// NewSingly returns a new, empty singly-linked list.
func NewSingly[T comparable]() *Singly[T] {
	return new(Singly[T])
}

// Len returns the number of values in the list.
func (l *Singly[T]) Len() int { return l.size }

// InsertFirst inserts value at the front of the list.
func (l *Singly[T]) InsertFirst(value T) {
	node := &singlyNode[T]{value: value, next: l.head}
	if l.head == nil {
		l.tail = node
	}
	l.head = node
	l.size++
}

// InsertLast inserts value at the back of the list.
func (l *Singly[T]) InsertLast(value T) {
	node := &singlyNode[T]{value: value}
	if l.tail == nil {
		l.head = node
	} else {
		l.tail.next = node
	}
	l.tail = node
	l.size++
}

// Search reports whether value is present in the list.
func (l *Singly[T]) Search(value T) bool {
	for node := l.head; node != nil; node = node.next {
		if node.value == value {
			return true
		}
	}
	return false
}

// Delete removes the first occurrence of value from the list. The method
// does nothing and returns false if the value could not be found.
func (l *Singly[T]) Delete(value T) bool {
	if l.head == nil {
		return false
	}

	if node := l.head; node.value == value {
		l.head = node.next
		if l.head == nil {
			l.tail = nil
		}
		node.next = nil
		l.size--
		return true
	}

	prev := l.head
	for prev.next != nil && prev.next.value != value {
		prev = prev.next
	}

	node := prev.next
	if node == nil {
		return false
	}

	prev.next = node.next
	if node == l.tail {
		l.tail = prev
	}
	node.next = nil
	l.size--
	return true
}

// All returns a sequence yielding the values of the list from front to back.
//
// The list must not be modified while the sequence is being consumed.
func (l *Singly[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := l.head; node != nil; node = node.next {
			if !yield(node.value) {
				return
			}
		}
	}
}

func (l *Singly[T]) String() string {
	return format(l.All(), "->")
}
