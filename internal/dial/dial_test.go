package dial_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"syncon-sim.gridlab.dev/internal/dial"
)

func TestPointerAngle(t *testing.T) {
	assert.Equal(t, 0.0, dial.PointerAngle(1, 1, 20))
	assert.InDelta(t, 2*math.Pi, dial.PointerAngle(20, 1, 20), 1e-9)
	assert.InDelta(t, math.Pi, dial.PointerAngle(10.5, 1, 20), 1e-9)

	// Out-of-range values clamp to the sweep ends
	assert.Equal(t, 0.0, dial.PointerAngle(-5, 1, 20))
	assert.InDelta(t, 2*math.Pi, dial.PointerAngle(50, 1, 20), 1e-9)

	// Degenerate range
	assert.Equal(t, 0.0, dial.PointerAngle(3, 3, 3))
}

func TestQuantize(t *testing.T) {
	assert.Equal(t, 5.0, dial.Quantize(5.2, 1, 20, 0.5))
	assert.Equal(t, 5.5, dial.Quantize(5.3, 1, 20, 0.5))
	assert.Equal(t, 20.0, dial.Quantize(99, 1, 20, 0.5))
	assert.Equal(t, 1.0, dial.Quantize(-3, 1, 20, 0.5))
}

func TestRenderShowsValueAndLabel(t *testing.T) {
	out := dial.Render(21, 9, "Real Impedance", 5.0, 1, 20, false)

	assert.Contains(t, out, "5.0")
	assert.Contains(t, out, "Real Impedance")
	assert.Equal(t, 9, strings.Count(out, "\n"), "grid rows plus label line")
}

func TestRenderTooSmall(t *testing.T) {
	assert.Empty(t, dial.Render(5, 3, "x", 1, 1, 20, false))
}
