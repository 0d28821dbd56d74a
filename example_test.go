package linkedlist_test

import (
	"fmt"
	"os"

	"github.com/segmentio/linkedlist"
)

func ExampleSingly() {
	list := linkedlist.NewSingly[int]()
	list.InsertLast(1)
	list.InsertLast(2)
	list.InsertLast(3)
	list.Delete(2)

	fmt.Println(list, list.Len())
	// Output: 1 -> 3 -> nil 2
}

func ExampleDoubly_Backward() {
	list := linkedlist.NewDoubly[string]()
	list.InsertLast("B")
	list.InsertLast("C")
	list.InsertFirst("A")

	for v := range list.Backward() {
		fmt.Println(v)
	}
	// Output:
	// C
	// B
	// A
}

func ExamplePrint() {
	var list linkedlist.Interface[int] = linkedlist.NewDoubly[int]()
	list.InsertFirst(5)
	list.InsertFirst(10)

	linkedlist.Print(os.Stdout, list, ", ")
	// Output: 10, 5
}
