package heapix

import (
	"cmp"
	"iter"
)

// Item is the external value held by a queue: a dense non-negative integer id
// paired with an ordered key. At most one live item per id exists in a queue
// at any time.
type Item[K cmp.Ordered] struct {
	ID  int
	Key K
}

// Less reports whether i orders before other under lexicographic (Key, ID)
// order. The queues themselves order by Key alone; Less exists for
// collaborators that need a strict total order over whole items, such as
// sorted oracles and stream merging.
func (i Item[K]) Less(other Item[K]) bool {
	if i.Key != other.Key {
		return i.Key < other.Key
	}
	return i.ID < other.ID
}

// Queue is the contract shared by every indexed priority queue in this
// module. Implementations report empty-queue reads through the ok-bool and
// contract violations through the sentinel errors in this package.
type Queue[K cmp.Ordered] interface {
	// Len returns the number of live items.
	Len() int

	// IsEmpty reports whether the queue holds no live items.
	IsEmpty() bool

	// Clear invalidates all live ids and resets the queue to empty.
	Clear()

	// Insert adds a new live item. It returns ErrNegativeID or
	// ErrDuplicateID on a contract violation.
	Insert(id int, key K) error

	// GetMin returns the item with the smallest key without removing it.
	// The second result is false when the queue is empty.
	GetMin() (Item[K], bool)

	// DeleteMin removes and returns the item with the smallest key. The
	// second result is false when the queue is empty.
	DeleteMin() (Item[K], bool)

	// DecreaseKey lowers the key of a live item. It returns ErrIDNotPresent
	// or ErrKeyNotDecreasing on a contract violation.
	DecreaseKey(id int, key K) error
}

// Drain returns an iterator that repeatedly deletes the minimum of q until it
// is empty, yielding items in non-decreasing key order. The iteration
// consumes q.
func Drain[K cmp.Ordered](q Queue[K]) iter.Seq[Item[K]] {
	return func(yield func(Item[K]) bool) {
		for {
			item, ok := q.DeleteMin()
			if !ok {
				return
			}
			if !yield(item) {
				return
			}
		}
	}
}
