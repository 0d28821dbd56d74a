// Package linkedlist contains generic, type-safe linked lists in two
// topologies: singly-linked lists, which can only be traversed forward, and
// doubly-linked lists, which can be traversed in both directions.
//
// Both list types implement the same Interface, so programs can pick a
// topology without changing the code that uses the list:
//
//	var l linkedlist.Interface[string] = linkedlist.NewDoubly[string]()
//	l.InsertLast("B")
//	l.InsertFirst("A")
//
//	for v := range l.All() {
//		...
//	}
//
// Values are compared with the == operator, which is why the element type is
// bounded by comparable. Lists may contain duplicate values; Delete only
// removes the first one found when scanning from the front of the list.
//
// The zero-value of each list type is a valid, empty list. Lists perform no
// synchronization, which makes them unsafe to use concurrently from multiple
// goroutines.
package linkedlist

import (
	"fmt"
	"io"
	"iter"
)

// Interface is the interface implemented by linked lists.
type Interface[T comparable] interface {
	// Returns the number of values in the list.
	Len() int

	// Inserts a value at the front of the list.
	InsertFirst(value T)

	// Inserts a value at the back of the list.
	InsertLast(value T)

	// Reports whether value is present in the list.
	Search(value T) bool

	// Deletes the first occurrence of value from the list, returning false if
	// the value was not found.
	Delete(value T) (deleted bool)

	// Returns a sequence of the values in the list, from front to back.
	All() iter.Seq[T]
}

var (
	_ Interface[int] = (*Singly[int])(nil)
	_ Interface[int] = (*Doubly[int])(nil)
)

// Print writes the values of list to w, from front to back, separated by sep
// and followed by a newline.
func Print[T comparable](w io.Writer, list Interface[T], sep string) error {
	prefix := ""

	for value := range list.All() {
		if _, err := fmt.Fprintf(w, "%s%v", prefix, value); err != nil {
			return err
		}
		prefix = sep
	}

	_, err := io.WriteString(w, "\n")
	return err
}

// format renders values followed by a terminating "nil", each element being
// followed by arrow.
func format[T any](values iter.Seq[T], arrow string) string {
	s := ""
	for v := range values {
		s += fmt.Sprintf("%v %s ", v, arrow)
	}
	return s + "nil"
}
