package vmath

// Arena is the axis-aligned square agents are softly contained within
type Arena struct {
	Center Vec2
	Side   float64
}

// Min returns the lower-left corner
func (a Arena) Min() Vec2 {
	h := a.Side / 2
	return Vec2{a.Center.X - h, a.Center.Y - h}
}

// Max returns the upper-right corner
func (a Arena) Max() Vec2 {
	h := a.Side / 2
	return Vec2{a.Center.X + h, a.Center.Y + h}
}

// Contains reports whether p lies inside the arena, edges inclusive
func (a Arena) Contains(p Vec2) bool {
	lo, hi := a.Min(), a.Max()
	return p.X >= lo.X && p.X <= hi.X && p.Y >= lo.Y && p.Y <= hi.Y
}

// ArenaRandomPoint returns a uniform point inside the arena
// Draws x then y from rng
func ArenaRandomPoint(a Arena, rng *FastRand) Vec2 {
	lo, hi := a.Min(), a.Max()
	x := rng.Range(lo.X, hi.X)
	y := rng.Range(lo.Y, hi.Y)
	return Vec2{x, y}
}
