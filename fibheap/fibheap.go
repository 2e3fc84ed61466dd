package fibheap

import (
	"cmp"
	"fmt"
	"math/bits"

	"github.com/PlotoZypresse/heapix"
)

// notInHeap marks an empty slot reference: an absent parent, child or
// minimum, or a position-index entry whose id is not live.
const notInHeap = -1

// node is the arena record for one live item. left and right link the node
// into whichever circular ring currently holds it: its parent's child ring
// when parent is set, the root ring otherwise. A detached node is a
// self-referencing singleton ring.
type node[K cmp.Ordered] struct {
	item   heapix.Item[K]
	degree int  // number of direct children
	mark   bool // lost a child since last becoming a child itself
	parent int
	child  int // one arbitrary member of this node's child ring
	left   int
	right  int
}

// Heap is an indexed min-priority queue backed by a Fibonacci heap. The zero
// value is not ready for use; call New.
type Heap[K cmp.Ordered] struct {
	nodes     []node[K] // arena; slots are never reused until Clear
	positions []int     // id -> arena slot, or notInHeap
	minRoot   int
	n         int // live items, maintained incrementally
}

// New returns an empty heap.
func New[K cmp.Ordered](opts ...Option) *Heap[K] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	h := &Heap[K]{
		minRoot: notInHeap,
	}
	if o.capacity > 0 {
		h.nodes = make([]node[K], 0, o.capacity)
	}
	if o.idCapacity > 0 {
		h.positions = make([]int, 0, o.idCapacity)
	}
	return h
}

// Build returns a heap holding all the given items, equivalent to inserting
// them in sequence. It stops at the first contract violation and returns
// that item's error.
func Build[K cmp.Ordered](items []heapix.Item[K], opts ...Option) (*Heap[K], error) {
	h := New[K](opts...)
	for _, item := range items {
		if err := h.Insert(item.ID, item.Key); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// Len returns the number of live items.
func (h *Heap[K]) Len() int {
	return h.n
}

// IsEmpty reports whether the heap holds no live items.
func (h *Heap[K]) IsEmpty() bool {
	return h.n == 0
}

// Clear invalidates all live ids and resets the heap to empty, releasing the
// arena and the position index in bulk.
func (h *Heap[K]) Clear() {
	h.nodes = nil
	h.positions = nil
	h.minRoot = notInHeap
	h.n = 0
}

// Insert adds a new live item as a singleton tree in the root ring. It
// returns heapix.ErrNegativeID or heapix.ErrDuplicateID on a contract
// violation.
func (h *Heap[K]) Insert(id int, key K) error {
	if id < 0 {
		return fmt.Errorf("insert id %d: %w", id, heapix.ErrNegativeID)
	}
	if id < len(h.positions) && h.positions[id] != notInHeap {
		return fmt.Errorf("insert id %d: %w", id, heapix.ErrDuplicateID)
	}

	s := len(h.nodes)
	h.nodes = append(h.nodes, node[K]{
		item:   heapix.Item[K]{ID: id, Key: key},
		parent: notInHeap,
		child:  notInHeap,
		left:   s,
		right:  s,
	})

	for id >= len(h.positions) {
		h.positions = append(h.positions, notInHeap)
	}
	h.positions[id] = s

	h.addToRoot(s)
	h.n++
	return nil
}

// GetMin returns the item with the smallest key without removing it. The
// second result is false when the heap is empty.
func (h *Heap[K]) GetMin() (heapix.Item[K], bool) {
	if h.minRoot == notInHeap {
		var zero heapix.Item[K]
		return zero, false
	}
	return h.nodes[h.minRoot].item, true
}

// DeleteMin removes and returns the item with the smallest key. The second
// result is false when the heap is empty. Amortized O(log n); a single call
// may cost O(n) when it consolidates a wide root ring.
func (h *Heap[K]) DeleteMin() (heapix.Item[K], bool) {
	if h.minRoot == notInHeap {
		var zero heapix.Item[K]
		return zero, false
	}
	z := h.minRoot

	// Promote all of z's children to the root ring. The child ring shrinks
	// as members are detached, so it cannot be walked by waiting to come
	// back around to the first child; the degree bounds the walk instead.
	if c := h.nodes[z].child; c != notInHeap {
		for i := h.nodes[z].degree; i > 0; i-- {
			next := h.nodes[c].right // save before detaching
			h.nodes[c].parent = notInHeap
			h.nodes[c].mark = false
			h.detach(c)
			h.addToRoot(c)
			c = next
		}
		h.nodes[z].child = notInHeap
	}

	successor := h.nodes[z].right
	h.detach(z)

	h.n--
	item := h.nodes[z].item
	h.positions[item.ID] = notInHeap

	if h.n == 0 {
		h.minRoot = notInHeap
	} else {
		// The successor is only a provisional minimum; consolidation
		// recomputes the real one.
		h.minRoot = successor
		h.consolidate()
	}

	return item, true
}

// DecreaseKey lowers the key of the live item with the given id. It returns
// heapix.ErrIDNotPresent or heapix.ErrKeyNotDecreasing on a contract
// violation.
func (h *Heap[K]) DecreaseKey(id int, key K) error {
	if id < 0 || id >= len(h.positions) || h.positions[id] == notInHeap {
		return fmt.Errorf("decrease key of id %d: %w", id, heapix.ErrIDNotPresent)
	}
	s := h.positions[id]
	if key >= h.nodes[s].item.Key {
		return fmt.Errorf("decrease key of id %d: %w", id, heapix.ErrKeyNotDecreasing)
	}

	h.nodes[s].item.Key = key

	if p := h.nodes[s].parent; p != notInHeap && key < h.nodes[p].item.Key {
		h.cut(s, p)
		h.cascadingCut(p)
	}
	h.updateMin(s)
	return nil
}

// updateMin re-points the minimum at slot s if its key undercuts the current
// minimum, or unconditionally if there is none.
func (h *Heap[K]) updateMin(s int) {
	if h.minRoot == notInHeap || h.nodes[s].item.Key < h.nodes[h.minRoot].item.Key {
		h.minRoot = s
	}
}

// addToRoot splices a detached singleton node into the root ring next to the
// current minimum and updates the minimum pointer. O(1), no allocation.
func (h *Heap[K]) addToRoot(s int) {
	if h.minRoot != notInHeap {
		left := h.nodes[h.minRoot].left
		h.nodes[s].left = left
		h.nodes[s].right = h.minRoot
		h.nodes[left].right = s
		h.nodes[h.minRoot].left = s
	}
	h.updateMin(s)
}

// detach unlinks a node from whatever ring currently holds it and resets it
// to a self-referencing singleton. It does not touch parent or child links.
func (h *Heap[K]) detach(s int) {
	l := h.nodes[s].left
	r := h.nodes[s].right
	h.nodes[l].right = r
	h.nodes[r].left = l
	h.nodes[s].left = s
	h.nodes[s].right = s
}

// link makes y a child of x. The caller guarantees key(x) <= key(y).
func (h *Heap[K]) link(y, x int) {
	h.detach(y)
	if c := h.nodes[x].child; c != notInHeap {
		left := h.nodes[c].left
		h.nodes[y].left = left
		h.nodes[y].right = c
		h.nodes[left].right = y
		h.nodes[c].left = y
	} else {
		h.nodes[x].child = y
	}
	h.nodes[y].parent = x
	h.nodes[y].mark = false
	h.nodes[x].degree++
}

// consolidate merges root trees of equal degree until each degree occurs at
// most once in the root ring, then rebuilds the ring and recomputes the
// minimum.
func (h *Heap[K]) consolidate() {
	if h.minRoot == notInHeap {
		return
	}

	// ceil(log2(n)) + 2 slots covers any degree that can arise; grown on
	// demand below if a link chain outruns it.
	aux := make([]int, bits.Len(uint(h.n-1))+2)
	for i := range aux {
		aux[i] = notInHeap
	}

	// Freeze the ring membership first: linking mutates the ring pointers.
	var roots []int
	start := h.minRoot
	for w := start; ; {
		roots = append(roots, w)
		w = h.nodes[w].right
		if w == start {
			break
		}
	}

	for _, x := range roots {
		d := h.nodes[x].degree
		for aux[d] != notInHeap {
			y := aux[d]
			if h.nodes[y].item.Key < h.nodes[x].item.Key {
				x, y = y, x
			}
			aux[d] = notInHeap
			h.link(y, x)
			d++
			if d >= len(aux) {
				aux = append(aux, notInHeap)
			}
		}
		aux[d] = x
	}

	// Rebuild the root ring from the degree table; addToRoot re-establishes
	// the true minimum.
	h.minRoot = notInHeap
	for _, s := range aux {
		if s == notInHeap {
			continue
		}
		h.nodes[s].left = s
		h.nodes[s].right = s
		h.nodes[s].parent = notInHeap
		h.addToRoot(s)
	}
}

// cut detaches node s from its parent p's child ring and promotes it to the
// root ring, clearing its mark.
func (h *Heap[K]) cut(s, p int) {
	if h.nodes[s].right == s {
		h.nodes[p].child = notInHeap
	} else {
		if h.nodes[p].child == s {
			h.nodes[p].child = h.nodes[s].right
		}
		h.detach(s)
	}
	h.nodes[p].degree--
	h.nodes[s].parent = notInHeap
	h.nodes[s].mark = false
	h.addToRoot(s)
}

// cascadingCut walks upward from s: an unmarked node is marked and the walk
// stops; a marked node has lost a second child, so it is cut and the walk
// continues from its former parent.
func (h *Heap[K]) cascadingCut(s int) {
	for {
		p := h.nodes[s].parent
		if p == notInHeap {
			return
		}
		if !h.nodes[s].mark {
			h.nodes[s].mark = true
			return
		}
		h.cut(s, p)
		s = p
	}
}
