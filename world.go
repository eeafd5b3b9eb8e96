package stride

import (
	"github.com/akmonengine/stride/body"
	"github.com/akmonengine/stride/ecs"
)

const DEFAULT_WORKERS = 1

// World bundles the entity registry, the per-entity storages, the global
// resources and the system order for one simulation, instantiated for a
// spatial representation (L linear, A angular, R orientation, I inertia).
//
// Storages and resources are exported so external systems (collision,
// constraint solving, game logic) can borrow exactly what they declare.
type World[L body.Linear[L], A body.Angular[A], R body.Orientation[R, A], I body.Inertia[A, R]] struct {
	registry *ecs.Registry

	// Global resources, set by the scheduler, read by systems.
	Time   *ecs.Resource[body.DeltaTime]
	Params *ecs.Resource[body.WorldParameters[L]]

	// Per-entity storages.
	Bodies         *ecs.Store[body.Dynamic]
	Masses         *ecs.Store[body.Mass[I]]
	Poses          *ecs.Store[body.Pose[L, R]]
	Velocities     *ecs.Store[body.Velocity[L, A]]
	NextVelocities *ecs.Store[body.NextFrame[body.Velocity[L, A]]]
	NextPoses      *ecs.Store[body.NextFrame[body.Pose[L, R]]]
	Forces         *ecs.Store[body.ForceAccumulator[L, A]]

	// Workers chunks the per-entity folds across goroutines. 1 (the
	// default) is sequential and deterministic.
	Workers int

	systems []ecs.System
}

// New creates a world with the given parameters and the integration system
// registered. The commit step is not registered; add a CurrentFrameSystem
// (or an equivalent external collaborator) to promote predictions to
// current state between ticks.
func New[L body.Linear[L], A body.Angular[A], R body.Orientation[R, A], I body.Inertia[A, R]](params body.WorldParameters[L]) *World[L, A, R, I] {
	w := &World[L, A, R, I]{
		registry:       ecs.NewRegistry(),
		Time:           ecs.NewResource(body.DeltaTime{}),
		Params:         ecs.NewResource(params),
		Bodies:         ecs.NewStore[body.Dynamic](),
		Masses:         ecs.NewStore[body.Mass[I]](),
		Poses:          ecs.NewStore[body.Pose[L, R]](),
		Velocities:     ecs.NewStore[body.Velocity[L, A]](),
		NextVelocities: ecs.NewStore[body.NextFrame[body.Velocity[L, A]]](),
		NextPoses:      ecs.NewStore[body.NextFrame[body.Pose[L, R]]](),
		Forces:         ecs.NewStore[body.ForceAccumulator[L, A]](),
	}

	w.registry.Track(w.Bodies)
	w.registry.Track(w.Masses)
	w.registry.Track(w.Poses)
	w.registry.Track(w.Velocities)
	w.registry.Track(w.NextVelocities)
	w.registry.Track(w.NextPoses)
	w.registry.Track(w.Forces)

	w.systems = []ecs.System{NewNextFrameSystem(w)}

	return w
}

// AddSystem appends a system to the per-tick run order.
func (w *World[L, A, R, I]) AddSystem(s ecs.System) {
	w.systems = append(w.systems, s)
}

// Step advances the simulation by dt seconds: it publishes the time step and
// runs every registered system once, in order.
func (w *World[L, A, R, I]) Step(dt float64) {
	time := w.Time.BorrowMut()
	time.Set(body.DeltaTime{Seconds: dt})
	time.Release()

	for _, s := range w.systems {
		s.Run()
	}
}

// CreateEntity reserves an entity with no components.
func (w *World[L, A, R, I]) CreateEntity() ecs.Entity {
	return w.registry.Create()
}

// CreateBody creates a fully equipped dynamic body: marker, mass, current
// pose, zero current and next-frame velocities, next-frame pose seeded from
// the current pose, and an empty force accumulator.
func (w *World[L, A, R, I]) CreateBody(mass body.Mass[I], pose body.Pose[L, R]) ecs.Entity {
	e := w.registry.Create()

	bodies := w.Bodies.BorrowMut()
	bodies.Set(e, body.Dynamic{})
	bodies.Release()

	masses := w.Masses.BorrowMut()
	masses.Set(e, mass)
	masses.Release()

	poses := w.Poses.BorrowMut()
	poses.Set(e, pose)
	poses.Release()

	velocities := w.Velocities.BorrowMut()
	velocities.Set(e, body.Velocity[L, A]{})
	velocities.Release()

	nextVelocities := w.NextVelocities.BorrowMut()
	nextVelocities.Set(e, body.NextFrame[body.Velocity[L, A]]{})
	nextVelocities.Release()

	nextPoses := w.NextPoses.BorrowMut()
	nextPoses.Set(e, body.NextFrame[body.Pose[L, R]]{Value: pose})
	nextPoses.Release()

	forces := w.Forces.BorrowMut()
	forces.Set(e, body.ForceAccumulator[L, A]{})
	forces.Release()

	return e
}

// RemoveBody removes an entity from every storage.
func (w *World[L, A, R, I]) RemoveBody(e ecs.Entity) {
	w.registry.Destroy(e)
}

// AddForce accumulates a force through the center of mass of a body. Bodies
// without an accumulator are ignored.
func (w *World[L, A, R, I]) AddForce(e ecs.Entity, force L) {
	forces := w.Forces.BorrowMut()
	defer forces.Release()

	acc, ok := forces.Get(e)
	if !ok {
		return
	}
	acc.AddForce(force)
	forces.Set(e, acc)
}

// AddTorque accumulates a torque on a body.
func (w *World[L, A, R, I]) AddTorque(e ecs.Entity, torque A) {
	forces := w.Forces.BorrowMut()
	defer forces.Release()

	acc, ok := forces.Get(e)
	if !ok {
		return
	}
	acc.AddTorque(torque)
	forces.Set(e, acc)
}

// SetVelocity seeds both the current and the next-frame velocity of a body,
// e.g. when spawning it already in motion.
func (w *World[L, A, R, I]) SetVelocity(e ecs.Entity, vel body.Velocity[L, A]) {
	velocities := w.Velocities.BorrowMut()
	velocities.Set(e, vel)
	velocities.Release()

	nextVelocities := w.NextVelocities.BorrowMut()
	nextVelocities.Set(e, body.NextFrame[body.Velocity[L, A]]{Value: vel})
	nextVelocities.Release()
}

// Pose returns the current pose of an entity.
func (w *World[L, A, R, I]) Pose(e ecs.Entity) (body.Pose[L, R], bool) {
	poses := w.Poses.Borrow()
	defer poses.Release()
	return poses.Get(e)
}

// NextPose returns the predicted pose for the upcoming tick.
func (w *World[L, A, R, I]) NextPose(e ecs.Entity) (body.Pose[L, R], bool) {
	nextPoses := w.NextPoses.Borrow()
	defer nextPoses.Release()

	next, ok := nextPoses.Get(e)
	return next.Value, ok
}

// Velocity returns the current committed velocity of an entity.
func (w *World[L, A, R, I]) Velocity(e ecs.Entity) (body.Velocity[L, A], bool) {
	velocities := w.Velocities.Borrow()
	defer velocities.Release()
	return velocities.Get(e)
}

// NextVelocity returns the predicted velocity for the upcoming tick.
func (w *World[L, A, R, I]) NextVelocity(e ecs.Entity) (body.Velocity[L, A], bool) {
	nextVelocities := w.NextVelocities.Borrow()
	defer nextVelocities.Release()

	next, ok := nextVelocities.Get(e)
	return next.Value, ok
}

func (w *World[L, A, R, I]) workers() int {
	return max(DEFAULT_WORKERS, w.Workers)
}
