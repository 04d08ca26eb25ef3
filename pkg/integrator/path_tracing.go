package integrator

import (
	"math"
	"math/rand"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
)

// ShadowEpsilon keeps a scattered ray from hitting the surface it leaves
const ShadowEpsilon = 0.001

var (
	skyBottom = core.NewVec3(1.0, 1.0, 1.0) // White horizon
	skyTop    = core.NewVec3(0.5, 0.7, 1.0) // Light blue zenith
)

// PathTracingIntegrator implements unidirectional path tracing with a sky gradient background
type PathTracingIntegrator struct {
	config core.SamplingConfig
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config core.SamplingConfig) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		config: config,
	}
}

// RayColor follows one light path through the world. The path ends on a
// miss (sky), on absorption (black), or after MaxDepth scatter events (black).
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Shape, random *rand.Rand) (core.Vec3, int) {
	throughput := core.NewVec3(1, 1, 1)
	rays := 0

	for depth := 0; ; depth++ {
		hit, isHit := world.Hit(ray, ShadowEpsilon, math.Inf(1))
		if !isHit {
			return throughput.MultiplyVec(BackgroundGradient(ray)), rays
		}

		// Bounce limit reached, no more light is gathered
		if depth >= pt.config.MaxDepth {
			return core.Vec3{}, rays
		}

		scatter, didScatter := hit.Material.Scatter(ray, *hit, random)
		if !didScatter {
			return core.Vec3{}, rays
		}

		rays++
		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}
}

// BackgroundGradient returns the sky color seen along a ray that hits nothing
func BackgroundGradient(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	t := 0.5*unitDirection.Y + 0.5

	// Linear interpolation: (1-t)*bottom + t*top
	return skyBottom.Multiply(1.0 - t).Add(skyTop.Multiply(t))
}
