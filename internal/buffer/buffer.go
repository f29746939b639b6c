package buffer

// MultiBuffer is a multi-dimensional float slice buffer that acts like a constant size queue
type MultiBuffer struct {
	size   int
	values [][]float64
}

// NewMultiBuffer creates a new buffer.
func NewMultiBuffer(size int) *MultiBuffer {
	return &MultiBuffer{
		size:   size,
		values: make([][]float64, 0),
	}
}

// Push adds an element to the buffer.
// If the buffer exceeded its size, the evicted element is returned.
func (b *MultiBuffer) Push(x ...float64) ([]float64, bool) {
	b.values = append(b.values, x)
	if len(b.values) > b.size {
		value := b.values[0]
		b.values = b.values[1:]
		return value, true
	}
	return nil, false
}

// Get returns the buffer elements in the order they were added.
func (b *MultiBuffer) Get() [][]float64 {
	vv := make([][]float64, len(b.values))
	copy(vv, b.values)
	return vv
}

// Len returns the current length of the buffer.
func (b *MultiBuffer) Len() int {
	return len(b.values)
}

// Last returns the last element in the buffer.
func (b *MultiBuffer) Last() []float64 {
	size := len(b.values)
	if size > 0 {
		return b.values[size-1]
	}
	return []float64{}
}
