// Package dim2 instantiates the stride integration step for planar
// simulations: mgl64.Vec2 positions and velocities, a scalar angle for
// orientation, and a scalar moment of inertia.
package dim2

import (
	"github.com/akmonengine/stride"
	"github.com/akmonengine/stride/body"
	"github.com/akmonengine/stride/ecs"
	"github.com/go-gl/mathgl/mgl64"
)

// Angular is a planar angular velocity in rad/s, positive counter-clockwise.
type Angular float64

func (a Angular) Add(b Angular) Angular { return a + b }

func (a Angular) Mul(c float64) Angular { return a * Angular(c) }

// Rotation is a planar orientation, as an angle in radians.
type Rotation float64

// Integrate advances the angle by vel over dt.
func (r Rotation) Integrate(vel Angular, dt float64) Rotation {
	return r + Rotation(float64(vel)*dt)
}

// Mat returns the rotation matrix for this orientation.
func (r Rotation) Mat() mgl64.Mat2 {
	return mgl64.Rotate2D(float64(r))
}

// Rotate applies the orientation to a vector.
func (r Rotation) Rotate(v mgl64.Vec2) mgl64.Vec2 {
	return r.Mat().Mul2x1(v)
}

// Inertia is a scalar moment of inertia in kg·m². It must be positive for
// any dynamic body.
type Inertia float64

// InverseApply converts a torque into an angular acceleration. A scalar
// moment is orientation-independent.
func (i Inertia) InverseApply(_ Rotation, torque Angular) Angular {
	return Angular(float64(torque) / float64(i))
}

// DiscInertia is the moment of a solid disc about its center.
func DiscInertia(mass, radius float64) Inertia {
	return Inertia(0.5 * mass * radius * radius)
}

// BoxInertia is the moment of a solid rectangle about its center.
func BoxInertia(mass, width, height float64) Inertia {
	return Inertia(mass / 12.0 * (width*width + height*height))
}

// World is a simulation world instantiated for planar types.
type World = stride.World[mgl64.Vec2, Angular, Rotation, Inertia]

// Pose, Velocity, Mass and ForceAccumulator are the planar component types.
type (
	Pose             = body.Pose[mgl64.Vec2, Rotation]
	Velocity         = body.Velocity[mgl64.Vec2, Angular]
	Mass             = body.Mass[Inertia]
	ForceAccumulator = body.ForceAccumulator[mgl64.Vec2, Angular]
)

// NewWorld creates a planar world with the given gravity, the integration
// system and the commit step registered.
func NewWorld(gravity mgl64.Vec2) *World {
	w := stride.New[mgl64.Vec2, Angular, Rotation, Inertia](body.WorldParameters[mgl64.Vec2]{
		Gravity: gravity,
	})
	w.AddSystem(stride.NewCurrentFrameSystem(w))

	return w
}

// AddForceAt accumulates a force acting at a world-space point, producing
// the matching torque about the body's center of mass. Bodies without an
// accumulator or a pose are ignored.
func AddForceAt(w *World, e ecs.Entity, force, point mgl64.Vec2) {
	pose, ok := w.Pose(e)
	if !ok {
		return
	}

	arm := point.Sub(pose.Position)
	w.AddForce(e, force)
	w.AddTorque(e, Angular(arm.X()*force.Y()-arm.Y()*force.X()))
}
