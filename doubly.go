package linkedlist

import "iter"

type doublyNode[T comparable] struct {
	value T
	prev  *doublyNode[T]
	next  *doublyNode[T]
}

// Doubly is a doubly-linked list. Each value keeps a reference to its
// predecessor, which allows traversal in both directions and unlinking a
// value in constant time once it has been located.
//
// The zero-value is a valid, empty list.
type Doubly[T comparable] struct {
	head *doublyNode[T]
	tail *doublyNode[T]
	size int
}

// NewDoubly returns a new, empty doubly-linked list.
func NewDoubly[T comparable]() *Doubly[T] {
	return new(Doubly[T])
}

// Len returns the number of values in the list.
func (list *Doubly[T]) Len() int { return list.size }

// InsertFirst inserts value at the front of the list.
func (list *Doubly[T]) InsertFirst(value T) {
	node := &doublyNode[T]{value: value}
	if list.head == nil {
		list.tail = node
	} else {
		node.next = list.head
		list.head.prev = node
	}
	list.head = node
	list.size++
}

// InsertLast inserts value at the back of the list.
func (list *Doubly[T]) InsertLast(value T) {
	node := &doublyNode[T]{value: value}
	if list.tail == nil {
		list.head = node
	} else {
		node.prev = list.tail
		list.tail.next = node
	}
	list.tail = node
	list.size++
}

// Search reports whether value is present in the list.
func (list *Doubly[T]) Search(value T) bool {
	return list.find(value) != nil
}

// Delete removes the first occurrence of value from the list, scanning from
// the front. The method does nothing and returns false if the value could not
// be found.
func (list *Doubly[T]) Delete(value T) bool {
	node := list.find(value)
	if node == nil {
		return false
	}
	list.remove(node)
	return true
}

// All returns a sequence yielding the values of the list from front to back.
//
// The list must not be modified while the sequence is being consumed.
func (list *Doubly[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := list.head; node != nil; node = node.next {
			if !yield(node.value) {
				return
			}
		}
	}
}

// Backward returns a sequence yielding the values of the list from back to
// front.
func (list *Doubly[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := list.tail; node != nil; node = node.prev {
			if !yield(node.value) {
				return
			}
		}
	}
}

func (list *Doubly[T]) String() string {
	return format(list.All(), "<->")
}

func (list *Doubly[T]) find(value T) *doublyNode[T] {
	for node := list.head; node != nil; node = node.next {
		if node.value == value {
			return node
		}
	}
	return nil
}

func (list *Doubly[T]) remove(node *doublyNode[T]) {
	prev := node.prev
	next := node.next

	node.prev = nil
	node.next = nil

	if prev != nil {
		prev.next = next
	} else {
		list.head = next
	}

	if next != nil {
		next.prev = prev
	} else {
		list.tail = prev
	}

	list.size--
}
