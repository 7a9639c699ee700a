package vmath

// AABB is an axis-aligned box given by its center and half extents.
type AABB struct {
	Center Vec2
	HalfW  float64
	HalfH  float64
}

func (b AABB) Min() Vec2 { return Vec2{b.Center.X - b.HalfW, b.Center.Y - b.HalfH} }
func (b AABB) Max() Vec2 { return Vec2{b.Center.X + b.HalfW, b.Center.Y + b.HalfH} }
