package access_test

import (
	"fmt"

	"github.com/on-the-ground/toolkit_ive_go/access"
)

func ExampleIndexOf() {
	fmt.Println(access.IndexOf([]any{"a", "b"}, -1))
	fmt.Println(access.IndexOf(map[string]any{"k": 1}, "k"))
	fmt.Println(access.IndexOf([]any{"a"}, 5, "default"))
	fmt.Println(access.IndexOf([]any{"a"}, "k", "default"))
	// Output:
	// b
	// 1
	// default
	// <nil>
}

func ExampleSetIndex() {
	list := []any{"a"}
	_, _ = access.SetIndex(&list, 2, "c")
	fmt.Println(list)
	// Output:
	// [a <nil> c]
}
