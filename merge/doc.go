// Package merge provides k-way ordered merging of item streams using a
// tournament (loser) tree, after the design by Bryan Boreham
// (https://github.com/bboreham/go-loser).
//
// Each source is an iter.Seq of heapix.Item values already in ascending
// (Key, ID) order - typically the drain order of an indexed priority queue.
// Sorted interleaves the sources into one globally sorted stream with
// O(log k) comparisons per element for k sources.
//
// This merges already-drained streams; no heap structure is melded.
//
// Basic usage:
//
//	a, _ := fibheap.Build([]heapix.Item[int]{{ID: 0, Key: 3}, {ID: 1, Key: 1}})
//	b, _ := fibheap.Build([]heapix.Item[int]{{ID: 2, Key: 2}, {ID: 3, Key: 4}})
//
//	for item := range merge.Sorted(heapix.Drain[int](a), heapix.Drain[int](b)) {
//	    fmt.Println(item.ID, item.Key) // (1,1) (2,2) (0,3) (3,4)
//	}
//
// Implementation details:
// The tournament tree is a binary tree laid out in an array: for k sources,
// leaves sit at positions k..2k-1 and internal nodes at 1..k-1, with node 0
// holding the current overall winner. Each internal node records the loser
// of the contest between its subtrees, so advancing the winner only replays
// the games along one leaf-to-root path. Exhausted sources are tracked with
// an explicit flag and lose every contest, so no maximum sentinel value is
// needed from the caller.
package merge
