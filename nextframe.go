// Package stride is a rigid-body integration layer for entity-based
// simulations. Once per tick it turns the forces accumulated against each
// dynamic body into a predicted next-frame velocity and pose, using
// semi-implicit Euler, without committing either as current state.
//
// The algorithm is written once against the algebraic contracts in package
// body; dim2 and dim3 supply the concrete 2D and 3D spatial types.
package stride

import (
	"github.com/akmonengine/stride/body"
	"github.com/akmonengine/stride/ecs"
)

// NextFrameSystem computes next-frame velocities and poses.
//
// It runs two strictly ordered phases in one invocation. The force phase
// folds each eligible entity's force accumulator, mass and the world
// parameters into its next-frame velocity and drains the accumulator. The
// pose phase then advances each eligible entity's current pose by its
// next-frame velocity. The velocity read by the force phase is whatever the
// next-frame slot last held; seeding it from committed state is the commit
// step's job.
//
// Entities missing any component of a phase's join are left untouched. The
// system keeps no state between invocations.
type NextFrameSystem[L body.Linear[L], A body.Angular[A], R body.Orientation[R, A], I body.Inertia[A, R]] struct {
	w *World[L, A, R, I]
}

// NewNextFrameSystem creates the integration system for a world.
func NewNextFrameSystem[L body.Linear[L], A body.Angular[A], R body.Orientation[R, A], I body.Inertia[A, R]](w *World[L, A, R, I]) *NextFrameSystem[L, A, R, I] {
	return &NextFrameSystem[L, A, R, I]{w: w}
}

// Run performs one tick of integration.
//
// Borrow declaration: read time, world parameters, dynamic markers, masses
// and current poses; write next-frame velocities, next-frame poses and force
// accumulators.
func (s *NextFrameSystem[L, A, R, I]) Run() {
	w := s.w

	time := w.Time.Borrow()
	defer time.Release()
	params := w.Params.Borrow()
	defer params.Release()
	bodies := w.Bodies.Borrow()
	defer bodies.Release()
	masses := w.Masses.Borrow()
	defer masses.Release()
	poses := w.Poses.Borrow()
	defer poses.Release()
	nextVelocities := w.NextVelocities.BorrowMut()
	defer nextVelocities.Release()
	nextPoses := w.NextPoses.BorrowMut()
	defer nextPoses.Release()
	forces := w.Forces.BorrowMut()
	defer forces.Release()

	dt := time.Get().Seconds
	wp := params.Get()

	// Force phase. Each entity reads and writes only its own slots, so the
	// fold may be chunked across workers; results do not depend on order.
	task(w.workers(), forces.Entities(), func(e ecs.Entity) {
		if !bodies.Has(e) {
			return
		}
		mass, ok := masses.Get(e)
		if !ok {
			return
		}
		pose, ok := poses.Get(e)
		if !ok {
			return
		}
		vel, ok := nextVelocities.Get(e)
		if !ok {
			return
		}
		acc, _ := forces.Get(e)

		vel.Value = body.StepVelocity(vel.Value, acc, mass, pose.Orientation, wp, dt)
		nextVelocities.Set(e, vel)
		forces.Set(e, body.ForceAccumulator[L, A]{})
	})

	// Pose phase. Starts only after the force phase has fully completed, so
	// every pose advances by this tick's velocity, never last tick's. Only
	// marked bodies advance; an unmarked entity keeps its prediction slots
	// untouched just as in the force phase.
	task(w.workers(), nextVelocities.Entities(), func(e ecs.Entity) {
		if !bodies.Has(e) {
			return
		}
		pose, ok := poses.Get(e)
		if !ok {
			return
		}
		if !nextPoses.Has(e) {
			return
		}
		vel, _ := nextVelocities.Get(e)

		nextPoses.Set(e, body.NextFrame[body.Pose[L, R]]{
			Value: body.StepPose(pose, vel.Value, dt),
		})
	})
}
