package debugui

// FrameHistory is a fixed ring of frame times in milliseconds.
type FrameHistory struct {
	samples []float32
	offset  int
	count   int
}

func NewFrameHistory(size int) *FrameHistory {
	return &FrameHistory{samples: make([]float32, max(size, 1))}
}

// Push records one frame time, overwriting the oldest once full.
func (h *FrameHistory) Push(ms float32) {
	h.samples[h.offset] = ms
	h.offset = (h.offset + 1) % len(h.samples)
	if h.count < len(h.samples) {
		h.count++
	}
}

// Len is the number of recorded samples.
func (h *FrameHistory) Len() int {
	return h.count
}

// Samples returns the recorded frame times, oldest first, in a new slice.
func (h *FrameHistory) Samples() []float32 {
	out := make([]float32, h.count)
	start := (h.offset - h.count + len(h.samples)) % len(h.samples)
	for i := range out {
		out[i] = h.samples[(start+i)%len(h.samples)]
	}
	return out
}

// Summary returns the average, minimum and maximum frame time. All are zero
// when nothing has been recorded.
func (h *FrameHistory) Summary() (avg, lo, hi float32) {
	if h.count == 0 {
		return 0, 0, 0
	}
	samples := h.Samples()
	lo, hi = samples[0], samples[0]
	var sum float32
	for _, s := range samples {
		sum += s
		lo = min(lo, s)
		hi = max(hi, s)
	}
	return sum / float32(h.count), lo, hi
}

// FPS is the frame rate implied by the average frame time.
func (h *FrameHistory) FPS() float32 {
	avg, _, _ := h.Summary()
	if avg <= 0 {
		return 0
	}
	return 1000 / avg
}
