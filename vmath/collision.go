package vmath

// CirclesOverlap reports whether two circles intersect
// Strict inequality: touching circles do not collide
func CirclesOverlap(a Vec2, ra float64, b Vec2, rb float64) bool {
	r := ra + rb
	return a.DistSq(b) < r*r
}
