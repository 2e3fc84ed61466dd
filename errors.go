package heapix

import "errors"

// Contract violations shared by every Queue implementation. Enforcement is
// unconditional: the amortized cost bounds assume all preconditions hold, so
// a violation is surfaced immediately rather than corrupting heap state.
var (
	ErrDuplicateID      = errors.New("heapix: id already present")
	ErrNegativeID       = errors.New("heapix: id must be non-negative")
	ErrIDNotPresent     = errors.New("heapix: id not present")
	ErrKeyNotDecreasing = errors.New("heapix: new key not smaller than current key")
)
