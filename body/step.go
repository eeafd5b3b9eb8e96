package body

import "math"

// StepVelocity performs one semi-implicit Euler velocity update: the
// accumulated force and torque, the ambient acceleration, and optional
// damping are folded into the velocity over dt.
//
//	linear'  = (linear  + (force/mass + gravity) * dt) * exp(-cl*dt)
//	angular' = (angular + I^-1(torque) * dt)           * exp(-ca*dt)
//
// The inertia inversion happens at the body's current orientation. The input
// accumulator is not cleared here; draining it is the caller's side of the
// contract.
func StepVelocity[L Linear[L], A Angular[A], R any, I Inertia[A, R]](
	vel Velocity[L, A],
	acc ForceAccumulator[L, A],
	mass Mass[I],
	orientation R,
	params WorldParameters[L],
	dt float64,
) Velocity[L, A] {
	linear := vel.Linear.Add(acc.Force.Mul(1.0 / mass.Value).Add(params.Gravity).Mul(dt))
	if params.LinearDamping > 0 {
		linear = linear.Mul(math.Exp(-params.LinearDamping * dt))
	}

	angular := vel.Angular.Add(mass.Inertia.InverseApply(orientation, acc.Torque).Mul(dt))
	if params.AngularDamping > 0 {
		angular = angular.Mul(math.Exp(-params.AngularDamping * dt))
	}

	return Velocity[L, A]{Linear: linear, Angular: angular}
}

// StepPose advances a pose by a velocity over dt. For semi-implicit Euler the
// velocity must be the one already updated for this tick.
func StepPose[L Linear[L], A Angular[A], R Orientation[R, A]](
	pose Pose[L, R],
	vel Velocity[L, A],
	dt float64,
) Pose[L, R] {
	return Pose[L, R]{
		Position:    pose.Position.Add(vel.Linear.Mul(dt)),
		Orientation: pose.Orientation.Integrate(vel.Angular, dt),
	}
}
