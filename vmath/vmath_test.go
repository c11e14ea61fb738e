package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFastRandFloat64Range(t *testing.T) {
	r := NewFastRand(42)
	var sum float64
	const n = 100000
	for i := 0; i < n; i++ {
		v := r.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("sample %d out of [0,1): %v", i, v)
		}
		sum += v
	}
	assert.InDelta(t, 0.5, sum/n, 0.01)
}

func TestFastRandDeterministic(t *testing.T) {
	a, b := NewFastRand(7), NewFastRand(7)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}

	// Zero seed would lock xorshift at zero
	z := NewFastRand(0)
	assert.NotZero(t, z.Next())
}

func TestFastRandRange(t *testing.T) {
	r := NewFastRand(3)
	for i := 0; i < 10000; i++ {
		v := r.Range(-8, 8)
		assert.True(t, v >= -8 && v < 8, "got %v", v)
	}
}

func TestV2Normalize(t *testing.T) {
	n := V2Normalize(Vec2{3, 4})
	assert.InDelta(t, 0.6, n.X, 1e-12)
	assert.InDelta(t, 0.8, n.Y, 1e-12)
	assert.InDelta(t, 1.0, V2Mag(n), 1e-12)

	assert.Equal(t, Vec2{}, V2Normalize(Vec2{}))
}

func TestV2Ops(t *testing.T) {
	a, b := Vec2{1, 2}, Vec2{4, 6}
	assert.Equal(t, Vec2{5, 8}, V2Add(a, b))
	assert.Equal(t, Vec2{3, 4}, V2Sub(b, a))
	assert.Equal(t, Vec2{2, 4}, V2Scale(a, 2))
	assert.Equal(t, 25.0, V2DistSq(a, b))
	assert.Equal(t, 5.0, V2Mag(V2Sub(b, a)))
}

func TestArena(t *testing.T) {
	a := Arena{Center: Vec2{10, -10}, Side: 20}
	assert.Equal(t, Vec2{0, -20}, a.Min())
	assert.Equal(t, Vec2{20, 0}, a.Max())

	assert.True(t, a.Contains(Vec2{0, -20}), "edges are inside")
	assert.True(t, a.Contains(Vec2{20, 0}))
	assert.False(t, a.Contains(Vec2{20.0001, 0}))
	assert.False(t, a.Contains(Vec2{math.NaN(), 0}))
}

func TestArenaRandomPointDrawOrder(t *testing.T) {
	a := Arena{Side: 100}
	rng, ref := NewFastRand(11), NewFastRand(11)

	for i := 0; i < 1000; i++ {
		p := ArenaRandomPoint(a, rng)
		assert.True(t, a.Contains(p))
		assert.Equal(t, ref.Range(-50, 50), p.X)
		assert.Equal(t, ref.Range(-50, 50), p.Y)
	}
}
