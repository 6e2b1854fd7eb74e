package internal

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMax(t *testing.T) {
	a := 1
	b := -1
	assert.Equal(t, Max(a, b), a)
	assert.Equal(t, Max(b, a), a)
	assert.Equal(t, Max(a, a), a)
}

func TestHeightBound(t *testing.T) {
	assert.Equal(t, 0, HeightBound(0))
	assert.Equal(t, 0, HeightBound(-5))
	assert.Equal(t, 4, HeightBound(1))
	assert.Equal(t, 4, HeightBound(2))
	assert.Equal(t, 6, HeightBound(3))
	assert.Equal(t, 20, HeightBound(1000))
	for n := 1; n < 5000; n++ {
		// the shortest possible tree is never higher than the bound
		assert.True(t, bits.Len(uint(n)) <= HeightBound(n))
	}
}
