// Package body defines the dimension-agnostic building blocks of the
// integration step: the algebraic capability contracts a spatial
// representation must satisfy, the per-entity components, the global
// resources, and the two pure step functions built on them.
//
// The contracts are deliberately minimal. 2D and 3D are not special-cased
// anywhere; a conforming set of types (see dim2 and dim3) is all the
// algorithm needs.
package body

// Linear is a vector in the positional difference space. mgl64.Vec2 and
// mgl64.Vec3 satisfy it structurally.
type Linear[L any] interface {
	Add(L) L
	Mul(c float64) L
}

// Angular is an angular velocity: a scalar in 2D, a vector in 3D.
type Angular[A any] interface {
	Add(A) A
	Mul(c float64) A
}

// Orientation is a rotation representation that can absorb an angular
// velocity applied over a time step, via its own composition rule (angle
// addition in 2D, quaternion derivative in 3D).
type Orientation[R, A any] interface {
	Integrate(vel A, dt float64) R
}

// Inertia converts a torque into an angular acceleration for a body at the
// given orientation. The representation must be invertible; a degenerate
// inertia is a caller error and propagates as non-finite values.
type Inertia[A, R any] interface {
	InverseApply(orientation R, torque A) A
}
