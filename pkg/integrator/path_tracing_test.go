package integrator

import (
	"math/rand"
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// MockMaterial implements material.Material for testing
type MockMaterial struct {
	scatterFn func(rayIn core.Ray, hit material.HitRecord, random *rand.Rand) (material.ScatterResult, bool)
}

func (m MockMaterial) Scatter(rayIn core.Ray, hit material.HitRecord, random *rand.Rand) (material.ScatterResult, bool) {
	return m.scatterFn(rayIn, hit, random)
}

// MockShape implements geometry.Shape for testing
type MockShape struct {
	hitFn func(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
}

func (m MockShape) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return m.hitFn(ray, tMin, tMax)
}

// alwaysHit returns a shape that every ray hits one unit ahead, facing the ray
func alwaysHit(mat material.Material) geometry.Shape {
	return MockShape{
		hitFn: func(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
			return &material.HitRecord{
				T:        1.0,
				Point:    ray.At(1.0 / ray.Direction.Length()),
				Normal:   ray.Direction.Normalize().Negate(),
				Material: mat,
			}, true
		},
	}
}

func TestPathTracing_MissReturnsSky(t *testing.T) {
	world := geometry.NewHittableList()
	random := rand.New(rand.NewSource(42))

	directions := []core.Vec3{
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, -1, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0.3, 0.4, -1),
	}

	for _, maxDepth := range []int{0, 1, 50} {
		pt := NewPathTracingIntegrator(core.SamplingConfig{MaxDepth: maxDepth})
		for _, dir := range directions {
			ray := core.NewRay(core.NewVec3(0, 0, 0), dir)
			color, rays := pt.RayColor(ray, world, random)

			expected := BackgroundGradient(ray)
			if !color.Equals(expected) {
				t.Errorf("maxDepth %d dir %v: expected sky %v, got %v", maxDepth, dir, expected, color)
			}
			if rays != 0 {
				t.Errorf("maxDepth %d dir %v: expected no scatter events, got %d", maxDepth, dir, rays)
			}
		}
	}
}

func TestBackgroundGradient(t *testing.T) {
	tests := []struct {
		name     string
		dir      core.Vec3
		expected core.Vec3
	}{
		{"straight up", core.NewVec3(0, 1, 0), core.NewVec3(0.5, 0.7, 1.0)},
		{"straight down", core.NewVec3(0, -3, 0), core.NewVec3(1, 1, 1)},
		{"horizon", core.NewVec3(1, 0, 0), core.NewVec3(0.75, 0.85, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			color := BackgroundGradient(core.NewRay(core.NewVec3(0, 0, 0), tt.dir))
			if color.Subtract(tt.expected).Length() > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.expected, color)
			}
		})
	}
}

func TestPathTracing_DepthCutoffReturnsBlack(t *testing.T) {
	materials := map[string]material.Material{
		"lambertian": material.NewLambertian(core.NewVec3(0.9, 0.9, 0.9)),
		"metal":      material.NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0.0),
		"dielectric": material.NewDielectric(1.5),
		"mock": MockMaterial{
			scatterFn: func(rayIn core.Ray, hit material.HitRecord, random *rand.Rand) (material.ScatterResult, bool) {
				return material.ScatterResult{
					Scattered:   core.NewRay(hit.Point, rayIn.Direction),
					Attenuation: core.NewVec3(1, 1, 1),
				}, true
			},
		},
	}

	pt := NewPathTracingIntegrator(core.SamplingConfig{MaxDepth: 50})
	for name, mat := range materials {
		t.Run(name, func(t *testing.T) {
			random := rand.New(rand.NewSource(42))
			ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

			color, rays := pt.RayColor(ray, alwaysHit(mat), random)
			if !color.Equals(core.Vec3{}) {
				t.Errorf("Expected black after depth cutoff, got %v", color)
			}
			if rays != 50 {
				t.Errorf("Expected 50 scatter events before cutoff, got %d", rays)
			}
		})
	}
}

func TestPathTracing_AbsorptionReturnsBlack(t *testing.T) {
	pt := NewPathTracingIntegrator(core.SamplingConfig{MaxDepth: 50})
	random := rand.New(rand.NewSource(42))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	color, rays := pt.RayColor(ray, alwaysHit(material.NewNullMaterial()), random)
	if !color.Equals(core.Vec3{}) {
		t.Errorf("Expected black for absorbed ray, got %v", color)
	}
	if rays != 0 {
		t.Errorf("Expected no scatter events, got %d", rays)
	}
}

func TestPathTracing_SingleBounceAttenuation(t *testing.T) {
	mat := MockMaterial{
		scatterFn: func(rayIn core.Ray, hit material.HitRecord, random *rand.Rand) (material.ScatterResult, bool) {
			return material.ScatterResult{
				Scattered:   core.NewRay(hit.Point, core.NewVec3(0, 1, 0)),
				Attenuation: core.NewVec3(0.5, 0.25, 1.0),
			}, true
		},
	}

	// Only downward rays hit; the bounced ray escapes to the sky
	floor := MockShape{
		hitFn: func(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
			if ray.Direction.Y >= 0 {
				return nil, false
			}
			return &material.HitRecord{
				T:        1.0,
				Point:    core.NewVec3(0, 0, 0),
				Normal:   core.NewVec3(0, 1, 0),
				Material: mat,
			}, true
		},
	}

	random := rand.New(rand.NewSource(42))
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	tests := []struct {
		name     string
		maxDepth int
		expected core.Vec3
		rays     int
	}{
		{"bounce allowed", 50, core.NewVec3(0.25, 0.175, 1.0), 1},
		{"depth one allows one bounce", 1, core.NewVec3(0.25, 0.175, 1.0), 1},
		{"depth zero stops at first hit", 0, core.Vec3{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pt := NewPathTracingIntegrator(core.SamplingConfig{MaxDepth: tt.maxDepth})
			color, rays := pt.RayColor(ray, floor, random)

			if color.Subtract(tt.expected).Length() > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.expected, color)
			}
			if rays != tt.rays {
				t.Errorf("Expected %d scatter events, got %d", tt.rays, rays)
			}
		})
	}
}
