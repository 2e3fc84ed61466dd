package fibheap

// options defines all configuration options for a heap.
type options struct {
	capacity   int // initial node arena capacity
	idCapacity int // initial position index capacity
}

// Option is a function that configures the heap options.
type Option func(*options)

// WithCapacity pre-sizes the node arena for the expected number of inserts.
// The arena still grows on demand when exceeded.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithIDCapacity pre-sizes the position index for the expected largest id.
// The index still grows on demand when exceeded.
func WithIDCapacity(n int) Option {
	return func(o *options) {
		o.idCapacity = n
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		capacity:   0,
		idCapacity: 0,
	}
}
