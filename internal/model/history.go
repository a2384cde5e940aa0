package model

// History is an append-only sequence of power-factor values, one per
// recomputation. It grows for the lifetime of the session and is never
// truncated; the trace panel windows the tail at render time.
type History struct {
	values []float64
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{}
}

// Append records one power-factor value.
func (h *History) Append(pf float64) {
	h.values = append(h.values, pf)
}

// Values returns a chronological copy of all recorded values.
func (h *History) Values() []float64 {
	if len(h.values) == 0 {
		return nil
	}
	out := make([]float64, len(h.values))
	copy(out, h.values)
	return out
}

// Tail returns a copy of the most recent n values (all of them if fewer).
func (h *History) Tail(n int) []float64 {
	if n <= 0 || len(h.values) == 0 {
		return nil
	}
	if n > len(h.values) {
		n = len(h.values)
	}
	out := make([]float64, n)
	copy(out, h.values[len(h.values)-n:])
	return out
}

// Last returns the most recent value, or 0 if empty.
func (h *History) Last() float64 {
	if len(h.values) == 0 {
		return 0
	}
	return h.values[len(h.values)-1]
}

// Len returns the number of recorded values.
func (h *History) Len() int {
	return len(h.values)
}
