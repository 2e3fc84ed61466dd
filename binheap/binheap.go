package binheap

import (
	"cmp"
	"fmt"

	"github.com/PlotoZypresse/heapix"
)

// notInHeap marks a position-index entry whose id is not live.
const notInHeap = -1

// Heap is an indexed min-priority queue backed by an array binary heap.
type Heap[K cmp.Ordered] struct {
	entries   []heapix.Item[K]
	positions []int // id -> index in entries, or notInHeap
}

// New returns an empty heap.
func New[K cmp.Ordered]() *Heap[K] {
	return &Heap[K]{}
}

// NewWithCapacity returns an empty heap pre-sized for the expected number of
// items and the expected largest id. Both still grow on demand.
func NewWithCapacity[K cmp.Ordered](items, ids int) *Heap[K] {
	return &Heap[K]{
		entries:   make([]heapix.Item[K], 0, items),
		positions: make([]int, 0, ids),
	}
}

// Build returns a heap holding all the given items, observably equivalent to
// inserting them in sequence but built bottom-up in O(n). It returns the
// first item's error on a contract violation.
func Build[K cmp.Ordered](items []heapix.Item[K]) (*Heap[K], error) {
	h := NewWithCapacity[K](len(items), len(items))
	for _, item := range items {
		if item.ID < 0 {
			return nil, fmt.Errorf("build id %d: %w", item.ID, heapix.ErrNegativeID)
		}
		for item.ID >= len(h.positions) {
			h.positions = append(h.positions, notInHeap)
		}
		if h.positions[item.ID] != notInHeap {
			return nil, fmt.Errorf("build id %d: %w", item.ID, heapix.ErrDuplicateID)
		}
		h.positions[item.ID] = len(h.entries)
		h.entries = append(h.entries, item)
	}

	// Bottom-up heapify: sift down every internal node, deepest first.
	for i := len(h.entries)/2 - 1; i >= 0; i-- {
		h.down(i)
	}
	return h, nil
}

// Len returns the number of live items.
func (h *Heap[K]) Len() int {
	return len(h.entries)
}

// IsEmpty reports whether the heap holds no live items.
func (h *Heap[K]) IsEmpty() bool {
	return len(h.entries) == 0
}

// Clear invalidates all live ids and resets the heap to empty.
func (h *Heap[K]) Clear() {
	h.entries = nil
	h.positions = nil
}

// Insert adds a new live item. It returns heapix.ErrNegativeID or
// heapix.ErrDuplicateID on a contract violation.
func (h *Heap[K]) Insert(id int, key K) error {
	if id < 0 {
		return fmt.Errorf("insert id %d: %w", id, heapix.ErrNegativeID)
	}
	if id < len(h.positions) && h.positions[id] != notInHeap {
		return fmt.Errorf("insert id %d: %w", id, heapix.ErrDuplicateID)
	}

	i := len(h.entries)
	h.entries = append(h.entries, heapix.Item[K]{ID: id, Key: key})
	for id >= len(h.positions) {
		h.positions = append(h.positions, notInHeap)
	}
	h.positions[id] = i

	h.up(i)
	return nil
}

// GetMin returns the item with the smallest key without removing it. The
// second result is false when the heap is empty.
func (h *Heap[K]) GetMin() (heapix.Item[K], bool) {
	if len(h.entries) == 0 {
		var zero heapix.Item[K]
		return zero, false
	}
	return h.entries[0], true
}

// DeleteMin removes and returns the item with the smallest key. The second
// result is false when the heap is empty.
func (h *Heap[K]) DeleteMin() (heapix.Item[K], bool) {
	if len(h.entries) == 0 {
		var zero heapix.Item[K]
		return zero, false
	}

	last := len(h.entries) - 1
	h.swap(0, last)
	min := h.entries[last]
	h.entries = h.entries[:last]
	h.positions[min.ID] = notInHeap

	if last > 0 {
		h.down(0)
	}
	return min, true
}

// DecreaseKey lowers the key of the live item with the given id. It returns
// heapix.ErrIDNotPresent or heapix.ErrKeyNotDecreasing on a contract
// violation.
func (h *Heap[K]) DecreaseKey(id int, key K) error {
	if id < 0 || id >= len(h.positions) || h.positions[id] == notInHeap {
		return fmt.Errorf("decrease key of id %d: %w", id, heapix.ErrIDNotPresent)
	}
	i := h.positions[id]
	if key >= h.entries[i].Key {
		return fmt.Errorf("decrease key of id %d: %w", id, heapix.ErrKeyNotDecreasing)
	}

	h.entries[i].Key = key
	h.up(i)
	return nil
}

// swap exchanges the entries at indices i and j and fixes their positions.
func (h *Heap[K]) swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
	h.positions[h.entries[i].ID] = i
	h.positions[h.entries[j].ID] = j
}

// up sifts the entry at index i toward the root until heap order holds.
func (h *Heap[K]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.entries[parent].Key <= h.entries[i].Key {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

// down sifts the entry at index i toward the leaves until heap order holds.
func (h *Heap[K]) down(i int) {
	n := len(h.entries)
	for {
		smallest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && h.entries[left].Key < h.entries[smallest].Key {
			smallest = left
		}
		if right < n && h.entries[right].Key < h.entries[smallest].Key {
			smallest = right
		}

		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}
