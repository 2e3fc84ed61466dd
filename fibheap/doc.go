// Package fibheap implements an indexed min-priority queue backed by a
// Fibonacci heap: a forest of heap-ordered multi-way trees whose roots are
// linked into a circular ring.
//
// Elements are addressed by a dense non-negative integer id chosen by the
// caller, so a key can be lowered in place without knowing where its node
// currently sits. This is the shape Dijkstra-style algorithms want: Insert
// and DecreaseKey run in amortized O(1), DeleteMin in amortized O(log n).
//
// Key features:
//   - Amortized O(1) Insert and DecreaseKey, amortized O(log n) DeleteMin
//   - O(1) GetMin, Len and IsEmpty
//   - Elements addressed by stable external id, not internal position
//   - Index-addressed arena storage: nodes reference each other by slot
//     index, never by pointer, so the cyclic sibling rings carry no
//     ownership cycles
//
// Basic usage:
//
//	h := fibheap.New[int]()
//
//	_ = h.Insert(0, 100)
//	_ = h.Insert(1, 200)
//	_ = h.Insert(2, 300)
//
//	_ = h.DecreaseKey(2, 50)
//
//	for {
//	    item, ok := h.DeleteMin()
//	    if !ok {
//	        break
//	    }
//	    fmt.Println(item.ID, item.Key) // (2,50) (0,100) (1,200)
//	}
//
// Implementation details:
// All nodes live in a single append-only arena; left/right sibling links,
// the parent back-reference and the child representative are plain slot
// indices with -1 meaning "none". A node belongs to exactly one circular
// ring at a time: its parent's child ring if it has a parent, otherwise the
// root ring. Arena slots are not reused while the heap is live; extraction
// only clears the id's position-index entry, and Clear releases everything
// in bulk.
//
// DeleteMin promotes the minimum root's children into the root ring and then
// consolidates: trees of equal degree are linked pairwise through an
// auxiliary degree table until at most one root per degree remains, which is
// what restores the amortized bound. DecreaseKey cuts a node loose when it
// undercuts its parent, and cascading cuts walk the ancestor line guided by
// per-node mark bits, bounding the amortized cost of a single decrease.
//
// A Heap is not safe for concurrent use.
package fibheap
