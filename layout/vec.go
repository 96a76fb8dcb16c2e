package layout

import "math"

// Vec2 is a point or displacement in screen space (y-up, pixels).
type Vec2 struct {
	X, Y float32
}

// V2 is a convenience function to create a Vec2.
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// DistanceSq returns the squared distance between v and w.
// Use it instead of Distance when only comparing.
func (v Vec2) DistanceSq(w Vec2) float32 {
	dx, dy := v.X-w.X, v.Y-w.Y
	return dx*dx + dy*dy
}

// Distance returns the Euclidean distance between v and w.
func (v Vec2) Distance(w Vec2) float32 {
	return float32(math.Sqrt(float64(v.DistanceSq(w))))
}
