package binheap_test

import (
	"fmt"

	"github.com/PabloNicolla/binheap"
)

func ExampleNew() {
	maxHeap := binheap.New[int](binheap.Reverse)
	minHeap := binheap.New[int](binheap.Regular)
	for _, v := range []int{5, 3, 8} {
		maxHeap.Push(v)
		minHeap.Push(v)
	}

	fmt.Println("Max Heap:")
	for v, ok := maxHeap.Pop(); ok; v, ok = maxHeap.Pop() {
		fmt.Println(v)
	}
	fmt.Println("Min Heap:")
	for v, ok := minHeap.Pop(); ok; v, ok = minHeap.Pop() {
		fmt.Println(v)
	}
	// Output:
	// Max Heap:
	// 8
	// 5
	// 3
	// Min Heap:
	// 3
	// 5
	// 8
}
