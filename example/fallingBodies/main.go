package main

import (
	"fmt"

	"github.com/akmonengine/stride/dim3"
	"github.com/go-gl/mathgl/mgl64"
)

func main() {
	world := dim3.NewWorld(mgl64.Vec3{0, -9.81, 0})

	ball := world.CreateBody(
		dim3.Mass{Value: 2.0, Inertia: dim3.SphereInertia(2.0, 0.5)},
		dim3.Pose{Position: mgl64.Vec3{0, 20, 0}, Orientation: dim3.RotationIdent()},
	)

	crate := world.CreateBody(
		dim3.Mass{Value: 5.0, Inertia: dim3.BoxInertia(5.0, mgl64.Vec3{0.5, 0.5, 0.5})},
		dim3.Pose{Position: mgl64.Vec3{3, 20, 0}, Orientation: dim3.RotationIdent()},
	)

	// Shove the crate sideways at a corner so it tumbles while it falls.
	dim3.AddForceAt(world, crate, mgl64.Vec3{40, 0, 0}, mgl64.Vec3{3.5, 20.5, 0})

	dt := 1.0 / 60.0
	for i := 0; i < 120; i++ {
		world.Step(dt)

		if i%30 == 29 {
			ballPose, _ := world.Pose(ball)
			cratePose, _ := world.Pose(crate)
			fmt.Printf("t=%.2fs ball=%v crate=%v\n",
				float64(i+1)*dt, ballPose.Position, cratePose.Position)
		}
	}
}
