package stride

import (
	"github.com/akmonengine/stride/body"
	"github.com/akmonengine/stride/ecs"
)

// CurrentFrameSystem commits predictions: it copies every next-frame
// velocity and pose into the matching current-frame component. Run it after
// NextFrameSystem (and after any collision or constraint pass that edits the
// predictions) and before the next tick's force phase.
//
// Entities that carry a next-frame slot but no current-frame component are
// skipped.
type CurrentFrameSystem[L body.Linear[L], A body.Angular[A], R body.Orientation[R, A], I body.Inertia[A, R]] struct {
	w *World[L, A, R, I]
}

// NewCurrentFrameSystem creates the commit system for a world.
func NewCurrentFrameSystem[L body.Linear[L], A body.Angular[A], R body.Orientation[R, A], I body.Inertia[A, R]](w *World[L, A, R, I]) *CurrentFrameSystem[L, A, R, I] {
	return &CurrentFrameSystem[L, A, R, I]{w: w}
}

// Run performs one commit pass.
//
// Borrow declaration: read next-frame velocities and poses; write current
// velocities and poses.
func (s *CurrentFrameSystem[L, A, R, I]) Run() {
	w := s.w

	nextVelocities := w.NextVelocities.Borrow()
	defer nextVelocities.Release()
	nextPoses := w.NextPoses.Borrow()
	defer nextPoses.Release()
	velocities := w.Velocities.BorrowMut()
	defer velocities.Release()
	poses := w.Poses.BorrowMut()
	defer poses.Release()

	task(w.workers(), nextVelocities.Entities(), func(e ecs.Entity) {
		if !velocities.Has(e) {
			return
		}
		next, _ := nextVelocities.Get(e)
		velocities.Set(e, next.Value)
	})

	task(w.workers(), nextPoses.Entities(), func(e ecs.Entity) {
		if !poses.Has(e) {
			return
		}
		next, _ := nextPoses.Get(e)
		poses.Set(e, next.Value)
	})
}
