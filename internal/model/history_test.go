package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"syncon-sim.gridlab.dev/internal/model"
)

func TestHistoryAppendOrder(t *testing.T) {
	h := model.NewHistory()
	assert.Zero(t, h.Len())
	assert.Nil(t, h.Values())
	assert.Zero(t, h.Last())

	h.Append(0.7)
	h.Append(0.9)
	h.Append(1.0)

	assert.Equal(t, 3, h.Len())
	assert.Equal(t, []float64{0.7, 0.9, 1.0}, h.Values())
	assert.Equal(t, 1.0, h.Last())
}

func TestHistoryValuesIsCopy(t *testing.T) {
	h := model.NewHistory()
	h.Append(0.5)

	v := h.Values()
	v[0] = 0.99

	assert.Equal(t, 0.5, h.Last(), "mutating the returned slice must not touch the history")
}

func TestHistoryTail(t *testing.T) {
	h := model.NewHistory()
	for _, v := range []float64{0.1, 0.2, 0.3, 0.4} {
		h.Append(v)
	}

	assert.Equal(t, []float64{0.3, 0.4}, h.Tail(2))
	assert.Equal(t, []float64{0.1, 0.2, 0.3, 0.4}, h.Tail(10))
	assert.Nil(t, h.Tail(0))
	assert.Nil(t, h.Tail(-1))
}
