// Package dim3 instantiates the stride integration step for spatial
// simulations: mgl64.Vec3 positions, velocities and angular velocities, a
// quaternion orientation, and a full inertia tensor.
package dim3

import (
	"github.com/akmonengine/stride"
	"github.com/akmonengine/stride/body"
	"github.com/akmonengine/stride/ecs"
	"github.com/go-gl/mathgl/mgl64"
)

// Rotation is a spatial orientation, as a unit quaternion.
type Rotation struct {
	Q mgl64.Quat
}

// RotationIdent returns the identity orientation.
func RotationIdent() Rotation {
	return Rotation{Q: mgl64.QuatIdent()}
}

// Integrate advances the orientation by the angular velocity over dt, using
// the quaternion derivative q' = q + 0.5*(omega*q)*dt, renormalized.
func (r Rotation) Integrate(vel mgl64.Vec3, dt float64) Rotation {
	omega := mgl64.Quat{W: 0, V: vel}
	dq := omega.Mul(r.Q).Scale(0.5 * dt)

	return Rotation{Q: r.Q.Add(dq).Normalize()}
}

// Rotate applies the orientation to a vector.
func (r Rotation) Rotate(v mgl64.Vec3) mgl64.Vec3 {
	return r.Q.Rotate(v)
}

// Inertia is a body-local inertia tensor. Construction precomputes the
// inverse; InverseApply re-expresses it in world space for the body's
// orientation.
type Inertia struct {
	tensor  mgl64.Mat3
	inverse mgl64.Mat3
}

// NewInertia builds an Inertia from a body-local tensor. The tensor must be
// invertible for any dynamic body.
func NewInertia(tensor mgl64.Mat3) Inertia {
	return Inertia{tensor: tensor, inverse: tensor.Inv()}
}

// Tensor returns the body-local inertia tensor.
func (i Inertia) Tensor() mgl64.Mat3 {
	return i.tensor
}

// InverseApply converts a torque into an angular acceleration at the given
// orientation: I_world^-1 = R * I_local^-1 * R^T.
func (i Inertia) InverseApply(orientation Rotation, torque mgl64.Vec3) mgl64.Vec3 {
	rot := orientation.Q.Mat4().Mat3()

	return rot.Mul3(i.inverse).Mul3(rot.Transpose()).Mul3x1(torque)
}

// SphereInertia is the tensor of a solid sphere: I = (2/5)*m*r² on all axes.
func SphereInertia(mass, radius float64) Inertia {
	moment := (2.0 / 5.0) * mass * radius * radius

	return NewInertia(mgl64.Mat3{
		moment, 0, 0,
		0, moment, 0,
		0, 0, moment,
	})
}

// BoxInertia is the tensor of a solid box given its half-extents:
// I = (m/12) * (dimension1² + dimension2²) per axis.
func BoxInertia(mass float64, halfExtents mgl64.Vec3) Inertia {
	x := halfExtents.X() * 2
	y := halfExtents.Y() * 2
	z := halfExtents.Z() * 2

	factor := mass / 12.0
	ix := factor * (y*y + z*z)
	iy := factor * (x*x + z*z)
	iz := factor * (x*x + y*y)

	return NewInertia(mgl64.Mat3{
		ix, 0, 0,
		0, iy, 0,
		0, 0, iz,
	})
}

// World is a simulation world instantiated for spatial types.
type World = stride.World[mgl64.Vec3, mgl64.Vec3, Rotation, Inertia]

// Pose, Velocity, Mass and ForceAccumulator are the spatial component types.
type (
	Pose             = body.Pose[mgl64.Vec3, Rotation]
	Velocity         = body.Velocity[mgl64.Vec3, mgl64.Vec3]
	Mass             = body.Mass[Inertia]
	ForceAccumulator = body.ForceAccumulator[mgl64.Vec3, mgl64.Vec3]
)

// NewWorld creates a spatial world with the given gravity, the integration
// system and the commit step registered.
func NewWorld(gravity mgl64.Vec3) *World {
	w := stride.New[mgl64.Vec3, mgl64.Vec3, Rotation, Inertia](body.WorldParameters[mgl64.Vec3]{
		Gravity: gravity,
	})
	w.AddSystem(stride.NewCurrentFrameSystem(w))

	return w
}

// AddForceAt accumulates a force acting at a world-space point, producing
// the matching torque about the body's center of mass. Bodies without an
// accumulator or a pose are ignored.
func AddForceAt(w *World, e ecs.Entity, force, point mgl64.Vec3) {
	pose, ok := w.Pose(e)
	if !ok {
		return
	}

	arm := point.Sub(pose.Position)
	w.AddForce(e, force)
	w.AddTorque(e, arm.Cross(force))
}
