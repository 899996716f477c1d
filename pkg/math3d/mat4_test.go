package math3d

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const eps = 1e-9

func vecNear(a, b Vec3) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

func matNear(a, b Mat4) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

func TestRotateYMatchesMathgl(t *testing.T) {
	for _, angle := range []float64{0, 0.3, math.Pi / 2, math.Pi, -1.2, 5} {
		got := RotateY(angle)
		want := Mat4(mgl64.HomogRotate3DY(angle))
		if !matNear(got, want) {
			t.Errorf("RotateY(%v) = %v, want %v", angle, got, want)
		}
	}
}

func TestRotateYFormula(t *testing.T) {
	// x' = x cos + z sin, z' = -x sin + z cos
	angle := 0.7
	c, s := math.Cos(angle), math.Sin(angle)
	v := V3(1.5, -2, 3)

	got := RotateY(angle).MulVec3(v)
	want := V3(v.X*c+v.Z*s, v.Y, -v.X*s+v.Z*c)
	if !vecNear(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRotateYAroundMatchesMathgl(t *testing.T) {
	center := V3(2, -1, 0.5)
	angle := 1.1

	got := RotateYAround(angle, center)
	want := Mat4(mgl64.Translate3D(center.X, center.Y, center.Z).
		Mul4(mgl64.HomogRotate3DY(angle)).
		Mul4(mgl64.Translate3D(-center.X, -center.Y, -center.Z)))
	if !matNear(got, want) {
		t.Errorf("RotateYAround = %v, want %v", got, want)
	}
}

func TestRotateYAroundKeepsCenterFixed(t *testing.T) {
	center := V3(3, 7, -2)
	got := RotateYAround(2.3, center).MulVec3(center)
	if !vecNear(got, center) {
		t.Errorf("center moved to %v", got)
	}
}

func TestRotateYAroundRoundTrip(t *testing.T) {
	center := V3(0.25, 1, -0.75)
	points := []Vec3{
		V3(-1, 1, 1), V3(1, -1, -1), V3(10, 0, -3), V3(0, 0, 0),
	}

	for _, angle := range []float64{0.1, 1, math.Pi, 4.2} {
		forward := RotateYAround(angle, center)
		back := RotateYAround(-angle, center)
		for _, p := range points {
			got := back.MulVec3(forward.MulVec3(p))
			if !vecNear(got, p) {
				t.Errorf("angle %v: %v -> %v", angle, p, got)
			}
		}
	}
}

func TestSetTranslationOverwrites(t *testing.T) {
	m := RotateYAround(math.Pi/2, V3(1, 0, 0))
	if m.Translation() == Zero3() {
		t.Fatal("expected a translation residual from the off-origin pivot")
	}

	m.SetTranslation(V3(0, 0, -4))
	if m.Translation() != V3(0, 0, -4) {
		t.Errorf("Translation() = %v", m.Translation())
	}

	// Basis is untouched: the result is R*v + offset.
	v := V3(1, 2, 3)
	want := RotateY(math.Pi / 2).MulVec3(v).Add(V3(0, 0, -4))
	if got := m.MulVec3(v); !vecNear(got, want) {
		t.Errorf("MulVec3 = %v, want %v", got, want)
	}
}

func TestMulOrder(t *testing.T) {
	// Translate after rotate: rotate (1,0,0) by 90deg to (0,0,-1) then shift.
	m := Translate(V3(5, 0, 0)).Mul(RotateY(math.Pi / 2))
	got := m.MulVec3(V3(1, 0, 0))
	if !vecNear(got, V3(5, 0, -1)) {
		t.Errorf("got %v, want (5, 0, -1)", got)
	}
}

func TestIdentityGet(t *testing.T) {
	id := Identity()
	for row := range 4 {
		for col := range 4 {
			want := 0.0
			if row == col {
				want = 1
			}
			if id.Get(row, col) != want {
				t.Errorf("Get(%d, %d) = %v", row, col, id.Get(row, col))
			}
		}
	}
}
