package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCryptoRandomStaysInRange(t *testing.T) {
	r := New()
	for n := 1; n <= 50; n++ {
		for i := 0; i < 20; i++ {
			v := r.Intn(n)
			assert.GreaterOrEqual(t, v, 0)
			assert.Less(t, v, n)
		}
	}
	assert.Equal(t, 0, r.Intn(0))
	assert.Equal(t, 0, r.Intn(-3))
}

func TestSeededRandomReplays(t *testing.T) {
	a, b := NewSeeded(42), NewSeeded(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
	assert.Equal(t, uint64(42), a.Seed())
}

func TestSeededRandomDiffersBySeed(t *testing.T) {
	a, b := NewSeeded(1), NewSeeded(2)
	same := 0
	for i := 0; i < 100; i++ {
		if a.Intn(1<<30) == b.Intn(1<<30) {
			same++
		}
	}
	assert.Less(t, same, 5)
}

func TestSeededRandomStaysInRange(t *testing.T) {
	r := NewSeeded(7)
	for i := 0; i < 1000; i++ {
		v := r.Intn(6)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 6)
	}
	assert.Equal(t, 0, r.Intn(0))
}
