package integrator

import (
	"math/rand"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the radiance arriving along ray.
	// Returns (color, number of scatter events traced).
	RayColor(ray core.Ray, world geometry.Shape, random *rand.Rand) (core.Vec3, int)
}
