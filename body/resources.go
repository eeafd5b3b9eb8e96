package body

// DeltaTime is the elapsed simulated time for the current tick. Set once per
// tick by the scheduler, read-only everywhere else.
type DeltaTime struct {
	Seconds float64
}

// WorldParameters are the simulation-wide constants shared read-only by all
// bodies: an ambient acceleration (gravity) and optional velocity damping.
//
// Damping coefficients default to zero, meaning none. A positive coefficient
// c scales the matching velocity by exp(-c*dt) each tick.
type WorldParameters[L any] struct {
	Gravity        L
	LinearDamping  float64
	AngularDamping float64
}
