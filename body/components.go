package body

// Dynamic marks an entity as subject to force integration. Entities without
// it (static geometry, kinematic bodies) are skipped by the force phase.
type Dynamic struct{}

// Mass holds a body's scalar mass and its inertia representation, valid for
// the body's current orientation. Mass must be positive and the inertia
// invertible; neither is checked here.
type Mass[I any] struct {
	Value   float64
	Inertia I
}

// Pose is a position plus an orientation.
type Pose[L, R any] struct {
	Position    L
	Orientation R
}

// Velocity is a linear velocity plus an angular velocity.
type Velocity[L, A any] struct {
	Linear  L
	Angular A
}

// NextFrame wraps a component's predicted value for the upcoming tick,
// distinct from the authoritative current-tick value so a tick never reads
// what it is writing.
type NextFrame[T any] struct {
	Value T
}

// ForceAccumulator collects force and torque contributions from any number
// of sources during a tick. The force phase drains it exactly once per tick;
// a non-drained accumulator would double-apply on the next tick.
type ForceAccumulator[L Linear[L], A Angular[A]] struct {
	Force  L
	Torque A
}

// AddForce accumulates a force acting through the center of mass.
func (f *ForceAccumulator[L, A]) AddForce(force L) {
	f.Force = f.Force.Add(force)
}

// AddTorque accumulates a torque.
func (f *ForceAccumulator[L, A]) AddTorque(torque A) {
	f.Torque = f.Torque.Add(torque)
}
