package metrics

// DefaultHistorySize is the number of samples retained per metric.
const DefaultHistorySize = 60

// History keeps a short rolling window of normalized values per metric.
// It feeds the wave animation and sparkline-style rendering. It is only
// touched from the UI event loop, so no locking is needed.
type History struct {
	size    int
	buffers map[MetricID]*ringBuffer
}

// ringBuffer is a fixed-size circular buffer for float64 values.
type ringBuffer struct {
	data  []float64
	head  int
	count int
}

func newRingBuffer(size int) *ringBuffer {
	return &ringBuffer{data: make([]float64, size)}
}

func (r *ringBuffer) push(v float64) {
	r.data[r.head] = v
	r.head = (r.head + 1) % len(r.data)
	if r.count < len(r.data) {
		r.count++
	}
}

// getLast returns up to n of the most recent values, oldest first.
func (r *ringBuffer) getLast(n int) []float64 {
	if n > r.count {
		n = r.count
	}
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	start := r.head - n
	if start < 0 {
		start += len(r.data)
	}
	for i := 0; i < n; i++ {
		out[i] = r.data[(start+i)%len(r.data)]
	}
	return out
}

// NewHistory creates a history tracker holding size samples per metric.
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{
		size:    size,
		buffers: make(map[MetricID]*ringBuffer),
	}
}

// Push records every metric of snap into its rolling window.
func (h *History) Push(snap *Snapshot) {
	if snap == nil {
		return
	}
	for id, v := range snap.Values {
		buf, ok := h.buffers[id]
		if !ok {
			buf = newRingBuffer(h.size)
			h.buffers[id] = buf
		}
		buf.push(v.Normalized)
	}
}

// Last returns up to n recent normalized values for id, oldest first.
func (h *History) Last(id MetricID, n int) []float64 {
	buf, ok := h.buffers[id]
	if !ok {
		return nil
	}
	return buf.getLast(n)
}
