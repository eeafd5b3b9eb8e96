package dim2

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

// =============================================================================
// Rotation Tests
// =============================================================================

func TestRotation_Integrate(t *testing.T) {
	tests := []struct {
		name string
		r    Rotation
		vel  Angular
		dt   float64
		want float64
	}{
		{name: "zero velocity keeps angle", r: 1.2, vel: 0, dt: 0.1, want: 1.2},
		{name: "positive spin", r: 0, vel: 2, dt: 0.25, want: 0.5},
		{name: "negative spin composes", r: math.Pi, vel: -1, dt: 0.5, want: math.Pi - 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.r.Integrate(tt.vel, tt.dt)
			if !almostEqual(float64(got), tt.want, 1e-12) {
				t.Errorf("Integrate() = %v, want %v", float64(got), tt.want)
			}
		})
	}
}

func TestRotation_Rotate(t *testing.T) {
	r := Rotation(math.Pi / 2)
	got := r.Rotate(mgl64.Vec2{1, 0})

	if !almostEqual(got.X(), 0, 1e-12) || !almostEqual(got.Y(), 1, 1e-12) {
		t.Errorf("quarter turn of +X = %v, want (0, 1)", got)
	}
}

// =============================================================================
// Inertia Tests
// =============================================================================

func TestInertia_InverseApply(t *testing.T) {
	i := Inertia(4)

	got := i.InverseApply(Rotation(0.7), Angular(2))
	if !almostEqual(float64(got), 0.5, 1e-12) {
		t.Errorf("InverseApply() = %v, want 0.5", float64(got))
	}
}

func TestInertiaHelpers(t *testing.T) {
	if got := DiscInertia(2, 3); !almostEqual(float64(got), 9, 1e-12) {
		t.Errorf("DiscInertia(2, 3) = %v, want 9", float64(got))
	}
	// (m/12)*(w² + h²) = (6/12)*(4+9)
	if got := BoxInertia(6, 2, 3); !almostEqual(float64(got), 6.5, 1e-12) {
		t.Errorf("BoxInertia(6, 2, 3) = %v, want 6.5", float64(got))
	}
}

// =============================================================================
// AddForceAt Tests
// =============================================================================

func TestAddForceAt_TorqueSign(t *testing.T) {
	w := NewWorld(mgl64.Vec2{})

	e := w.CreateBody(
		Mass{Value: 1, Inertia: 1},
		Pose{Position: mgl64.Vec2{0, 0}},
	)

	// Pushing +Y at a point right of the center spins counter-clockwise.
	AddForceAt(w, e, mgl64.Vec2{0, 3}, mgl64.Vec2{2, 0})

	forces := w.Forces.Borrow()
	defer forces.Release()
	acc, _ := forces.Get(e)

	if acc.Force != (mgl64.Vec2{0, 3}) {
		t.Errorf("accumulated force = %v, want (0, 3)", acc.Force)
	}
	if !almostEqual(float64(acc.Torque), 6, 1e-12) {
		t.Errorf("accumulated torque = %v, want +6", float64(acc.Torque))
	}
}
