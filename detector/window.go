package detector

// window is a bounded FIFO of samples backed by a ring buffer.
type window struct {
	values   []float64
	position int // index of the next write
	samples  int
}

func newWindow(capacity int) *window {
	return &window{values: make([]float64, capacity)}
}

// Push appends v. When the window is already full the oldest sample is
// overwritten and returned with ok set to true.
func (w *window) Push(v float64) (evicted float64, ok bool) {
	capacity := len(w.values)
	if capacity == 0 {
		return v, true
	}

	if w.samples < capacity {
		w.values[w.position] = v
		w.position = (w.position + 1) % capacity
		w.samples++

		return 0, false
	}

	evicted = w.values[w.position]
	w.values[w.position] = v
	w.position = (w.position + 1) % capacity

	return evicted, true
}

func (w *window) Len() int {
	return w.samples
}

func (w *window) Cap() int {
	return len(w.values)
}

func (w *window) Full() bool {
	return w.samples == len(w.values)
}

// CopyTo copies the samples in arrival order into dst and returns the number
// of samples copied, which is min(len(dst), Len()).
func (w *window) CopyTo(dst []float64) int {
	n := min(len(dst), w.samples)
	if n == 0 {
		return 0
	}

	start := w.position - w.samples
	if start < 0 {
		start += len(w.values)
	}

	first := copy(dst[:n], w.values[start:min(start+w.samples, len(w.values))])
	if first < n {
		copy(dst[first:n], w.values[:n-first])
	}

	return n
}

// Values returns a copy of the samples in arrival order.
func (w *window) Values() []float64 {
	out := make([]float64, w.samples)
	w.CopyTo(out)

	return out
}

func (w *window) Reset() {
	w.position = 0
	w.samples = 0
}
