package vmath

import "testing"

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 3) != 3 || Clamp(-1, 0, 3) != 0 || Clamp(2, 0, 3) != 2 {
		t.Error("Clamp out of range")
	}
}

func TestAABBCorners(t *testing.T) {
	b := AABB{Center: V(20, 360), HalfW: 5, HalfH: 75}
	if b.Min() != V(15, 285) || b.Max() != V(25, 435) {
		t.Errorf("corners = %v %v", b.Min(), b.Max())
	}
}

func TestVecOps(t *testing.T) {
	v := V(3, 4)
	if v.Len() != 5 {
		t.Errorf("Len = %v", v.Len())
	}
	if got := v.Sub(V(1, 1)).Scale(2); got != V(4, 6) {
		t.Errorf("Sub/Scale = %v", got)
	}
	if !V(0.1+0.2, 0).Approx(V(0.3, 0)) {
		t.Error("Approx too strict")
	}
	if V(1, 2).String() != "{1.00, 2.00}" {
		t.Errorf("String = %s", V(1, 2))
	}
}
