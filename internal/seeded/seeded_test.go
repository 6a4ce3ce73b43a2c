package seeded

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueIsDeterministic(t *testing.T) {
	first := Value("New York, New York-Los Angeles, California-2026-09-01-Hertz-price", 0, 100)
	second := Value("New York, New York-Los Angeles, California-2026-09-01-Hertz-price", 0, 100)
	assert.Equal(t, first, second)
}

func TestValueStaysInRange(t *testing.T) {
	seeds := []string{"", "a", "b", "Miami, Florida", "seed-1", "seed-2", "seed-3"}
	for _, seed := range seeds {
		v := Value(seed, -5, 5)
		assert.GreaterOrEqual(t, v, -5, "seed %q", seed)
		assert.LessOrEqual(t, v, 5, "seed %q", seed)
	}
}

func TestValueSingletonRange(t *testing.T) {
	assert.Equal(t, 7, Value("anything", 7, 7))
}

func TestValueSwapsInvertedBounds(t *testing.T) {
	v := Value("seed", 10, 0)
	assert.GreaterOrEqual(t, v, 0)
	assert.LessOrEqual(t, v, 10)
}

func TestValueVariesAcrossSeeds(t *testing.T) {
	// Not guaranteed in general, but these seeds are known to differ.
	values := map[int]bool{}
	for _, seed := range []string{"alpha", "bravo", "charlie", "delta", "echo"} {
		values[Value(seed, 0, 1000)] = true
	}
	assert.Greater(t, len(values), 1)
}

func TestPick(t *testing.T) {
	options := []string{"Economy", "Compact", "Mid-size"}

	choice := Pick("trip-seed", options)
	assert.Contains(t, options, choice)
	assert.Equal(t, choice, Pick("trip-seed", options))

	assert.Empty(t, Pick("trip-seed", nil))
}
