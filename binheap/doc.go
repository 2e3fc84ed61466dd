// Package binheap implements an indexed min-priority queue backed by an
// array binary heap: the straightforward sift-up/sift-down baseline with the
// same external contract as the fibheap package.
//
// Elements are addressed by a dense non-negative integer id chosen by the
// caller; a dense position index maps each live id to its current array
// index, so DecreaseKey finds its element in O(1) before sifting it up.
//
// Key features:
//   - O(log n) Insert, DeleteMin and DecreaseKey
//   - O(1) GetMin, Len and IsEmpty
//   - Build constructs a heap from a slice in O(n) via bottom-up heapify
//   - Contiguous storage, two plain slices, no per-element allocation
//
// Basic usage:
//
//	h := binheap.New[int]()
//
//	_ = h.Insert(3, 15)
//	_ = h.Insert(2, 25)
//	_ = h.Insert(5, 5)
//
//	item, _ := h.DeleteMin()
//	fmt.Println(item.ID, item.Key) // 5 5
//
// The package exists as the simple peer of fibheap: identical semantics,
// none of the subtle invariants. The module's differential tests run both
// implementations against each other on the same inputs.
//
// A Heap is not safe for concurrent use.
package binheap
