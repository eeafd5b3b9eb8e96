package dim3

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

func vec3AlmostEqual(a, b mgl64.Vec3, epsilon float64) bool {
	return almostEqual(a.X(), b.X(), epsilon) &&
		almostEqual(a.Y(), b.Y(), epsilon) &&
		almostEqual(a.Z(), b.Z(), epsilon)
}

// =============================================================================
// Rotation Tests
// =============================================================================

func TestRotation_IntegrateZeroVelocity(t *testing.T) {
	r := Rotation{Q: mgl64.QuatRotate(0.8, mgl64.Vec3{0, 1, 0})}

	got := r.Integrate(mgl64.Vec3{}, 0.1)
	if !almostEqual(got.Q.W, r.Q.W, 1e-12) || !vec3AlmostEqual(got.Q.V, r.Q.V, 1e-12) {
		t.Errorf("Integrate(zero) = %v, want %v unchanged", got.Q, r.Q)
	}
}

func TestRotation_IntegrateStaysUnit(t *testing.T) {
	r := RotationIdent()

	for i := 0; i < 1000; i++ {
		r = r.Integrate(mgl64.Vec3{0.3, -1.1, 0.7}, 0.01)
	}

	if !almostEqual(r.Q.Len(), 1, 1e-9) {
		t.Errorf("quaternion norm drifted to %v after 1000 steps", r.Q.Len())
	}
}

func TestRotation_IntegrateMatchesAxisAngle(t *testing.T) {
	// Many small steps about a fixed axis converge on the exact axis-angle
	// rotation.
	axis := mgl64.Vec3{0, 0, 1}
	omega := 2.0
	dt := 0.0001
	steps := 5000 // total angle 1 rad

	r := RotationIdent()
	for i := 0; i < steps; i++ {
		r = r.Integrate(axis.Mul(omega), dt)
	}

	want := mgl64.QuatRotate(omega*dt*float64(steps), axis)
	got := r.Rotate(mgl64.Vec3{1, 0, 0})
	ref := want.Rotate(mgl64.Vec3{1, 0, 0})
	if !vec3AlmostEqual(got, ref, 1e-6) {
		t.Errorf("integrated rotation of +X = %v, axis-angle reference = %v", got, ref)
	}
}

// =============================================================================
// Inertia Tests
// =============================================================================

func TestInertia_InverseApplyIdentityOrientation(t *testing.T) {
	i := NewInertia(mgl64.Mat3{
		2, 0, 0,
		0, 4, 0,
		0, 0, 8,
	})

	got := i.InverseApply(RotationIdent(), mgl64.Vec3{2, 4, 8})
	if !vec3AlmostEqual(got, mgl64.Vec3{1, 1, 1}, 1e-12) {
		t.Errorf("InverseApply() = %v, want (1, 1, 1)", got)
	}
}

func TestInertia_InverseApplyRotatedOrientation(t *testing.T) {
	// Quarter turn about Z swaps the X and Y principal moments.
	i := NewInertia(mgl64.Mat3{
		2, 0, 0,
		0, 8, 0,
		0, 0, 4,
	})
	orientation := Rotation{Q: mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1})}

	got := i.InverseApply(orientation, mgl64.Vec3{8, 0, 0})
	// World X now aligns with the body's Y axis, moment 8.
	if !vec3AlmostEqual(got, mgl64.Vec3{1, 0, 0}, 1e-9) {
		t.Errorf("InverseApply() = %v, want (1, 0, 0)", got)
	}
}

func TestSphereInertia(t *testing.T) {
	i := SphereInertia(5, 2)

	// (2/5)*5*4 = 8 on every axis.
	want := mgl64.Mat3{8, 0, 0, 0, 8, 0, 0, 0, 8}
	if i.Tensor() != want {
		t.Errorf("SphereInertia(5, 2) = %v, want %v", i.Tensor(), want)
	}
}

func TestBoxInertia(t *testing.T) {
	mass := 12.0
	i := BoxInertia(mass, mgl64.Vec3{0.5, 1.0, 1.5})

	// Full dimensions 1 x 2 x 3, factor m/12 = 1.
	want := mgl64.Mat3{
		(2.0*2.0 + 3.0*3.0), 0, 0,
		0, (1.0*1.0 + 3.0*3.0), 0,
		0, 0, (1.0*1.0 + 2.0*2.0),
	}
	if i.Tensor() != want {
		t.Errorf("BoxInertia() = %v, want %v", i.Tensor(), want)
	}
}

// =============================================================================
// AddForceAt Tests
// =============================================================================

func TestAddForceAt_TorqueDirection(t *testing.T) {
	w := NewWorld(mgl64.Vec3{})

	e := w.CreateBody(
		Mass{Value: 1, Inertia: SphereInertia(1, 1)},
		Pose{Position: mgl64.Vec3{0, 0, 0}, Orientation: RotationIdent()},
	)

	// +Y force applied at +X produces torque about +Z.
	AddForceAt(w, e, mgl64.Vec3{0, 3, 0}, mgl64.Vec3{2, 0, 0})

	forces := w.Forces.Borrow()
	defer forces.Release()
	acc, _ := forces.Get(e)

	if acc.Force != (mgl64.Vec3{0, 3, 0}) {
		t.Errorf("accumulated force = %v, want (0, 3, 0)", acc.Force)
	}
	if !vec3AlmostEqual(acc.Torque, mgl64.Vec3{0, 0, 6}, 1e-12) {
		t.Errorf("accumulated torque = %v, want (0, 0, 6)", acc.Torque)
	}
}
