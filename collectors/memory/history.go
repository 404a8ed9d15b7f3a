package memory

// History holds the two parallel bounded sequences of percentage samples.
// Both sequences always have equal length; when an append would exceed the
// capacity, the oldest entry of both is evicted. The zero value is not
// usable; construct with NewHistory.
type History struct {
	capacity int
	memory   []float64
	swap     []float64
}

// NewHistory creates an empty history with the given capacity. A capacity
// of zero or less falls back to MaxHistorySamples.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = MaxHistorySamples
	}
	return &History{capacity: capacity}
}

// Append records one sample pair, evicting the oldest pair if the buffer
// is full.
func (h *History) Append(memoryPct, swapPct float64) {
	h.memory = append(h.memory, memoryPct)
	h.swap = append(h.swap, swapPct)
	if len(h.memory) > h.capacity {
		h.memory = h.memory[len(h.memory)-h.capacity:]
		h.swap = h.swap[len(h.swap)-h.capacity:]
	}
}

// Snapshot returns copies of the memory and swap sequences in chronological
// order, oldest first. Callers may mutate the returned slices freely.
func (h *History) Snapshot() (memory, swap []float64) {
	memory = make([]float64, len(h.memory))
	copy(memory, h.memory)
	swap = make([]float64, len(h.swap))
	copy(swap, h.swap)
	return memory, swap
}

// Len returns the number of sample pairs currently held.
func (h *History) Len() int {
	return len(h.memory)
}

// Capacity returns the maximum number of sample pairs held.
func (h *History) Capacity() int {
	return h.capacity
}

// Restore replaces the buffer contents with previously persisted sequences,
// keeping the chronological tail when either exceeds capacity. If the two
// sequences disagree in length, both are truncated from the front to the
// shorter length so the equal-length invariant holds.
func (h *History) Restore(memory, swap []float64) {
	n := len(memory)
	if len(swap) < n {
		n = len(swap)
	}
	memory = memory[len(memory)-n:]
	swap = swap[len(swap)-n:]

	if n > h.capacity {
		memory = memory[n-h.capacity:]
		swap = swap[n-h.capacity:]
		n = h.capacity
	}

	h.memory = make([]float64, n)
	copy(h.memory, memory)
	h.swap = make([]float64, n)
	copy(h.swap, swap)
}
