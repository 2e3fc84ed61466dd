// Package heapix defines the shared vocabulary for a family of indexed
// min-priority queues: queues whose elements are addressed by a stable,
// caller-assigned integer id rather than only by relative position.
//
// An element is an Item: an (ID, Key) pair where ID is a dense non-negative
// integer and Key belongs to a single totally ordered type fixed per queue
// instance. The Queue interface captures the contract every implementation in
// this module satisfies:
//   - fibheap: a Fibonacci heap with amortized O(1) Insert/DecreaseKey and
//     amortized O(log n) DeleteMin
//   - binheap: an array-backed binary heap with O(log n) Insert/DeleteMin,
//     used as the simple baseline the fibheap is differentially tested against
//
// Two classes of outcome are kept strictly apart. Querying an empty queue is a
// normal state reported through an ok-bool, never an error. Contract
// violations - inserting a duplicate or negative id, decreasing the key of an
// absent id, or "decreasing" a key to a value that is not strictly smaller -
// are reported as distinct sentinel errors so callers can discriminate them
// with errors.Is.
//
// Basic usage:
//
//	h := fibheap.New[int]()
//	_ = h.Insert(0, 20)
//	_ = h.Insert(1, 10)
//
//	if item, ok := h.GetMin(); ok {
//	    fmt.Println(item.ID, item.Key) // 1 10
//	}
//
//	for item := range heapix.Drain[int](h) {
//	    fmt.Println(item.ID, item.Key)
//	}
//
// Keys must carry a total order. Float keys are supported, but NaN has no
// place in a total order and passing it is outside the contract.
//
// Queues are not safe for concurrent use; every operation is assumed to run
// to completion without interleaving with another operation on the same
// instance.
package heapix
