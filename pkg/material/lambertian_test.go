package material

import (
	"math/rand"
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

func TestLambertian_AlwaysScatters(t *testing.T) {
	albedo := core.NewVec3(0.5, 0.7, 0.9)
	lambertian := NewLambertian(albedo)
	random := rand.New(rand.NewSource(42))

	normal := core.NewVec3(0, 0, 1)
	hit := HitRecord{
		Point:  core.NewVec3(1, 2, 3),
		Normal: normal,
	}
	ray := core.NewRay(core.NewVec3(1, 2, 4), core.NewVec3(0, 0, -1))

	for i := 0; i < 1000; i++ {
		scatter, didScatter := lambertian.Scatter(ray, hit, random)
		if !didScatter {
			t.Fatal("Lambertian should always scatter")
		}

		if !scatter.Attenuation.Equals(albedo) {
			t.Fatalf("Attenuation should equal albedo: expected %v, got %v", albedo, scatter.Attenuation)
		}

		if !scatter.Scattered.Origin.Equals(hit.Point) {
			t.Fatalf("Scattered ray should start at hit point, got %v", scatter.Scattered.Origin)
		}

		// Direction is normal + a point inside the unit sphere
		offset := scatter.Scattered.Direction.Subtract(normal)
		if offset.LengthSquared() >= 1.0+1e-12 {
			t.Fatalf("Scatter target outside unit sphere around p+n: offset %v", offset)
		}
	}
}

func TestLambertian_PrefersNormalHemisphere(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.8, 0.8, 0.8))
	random := rand.New(rand.NewSource(7))

	normal := core.NewVec3(0, 1, 0)
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: normal}
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	sum := core.Vec3{}
	n := 5000
	for i := 0; i < n; i++ {
		scatter, _ := lambertian.Scatter(ray, hit, random)
		sum = sum.Add(scatter.Scattered.Direction)
	}
	mean := sum.Multiply(1.0 / float64(n))

	// The random offset averages out, leaving the normal
	if mean.Subtract(normal).Length() > 0.05 {
		t.Errorf("Mean scatter direction should approach the normal, got %v", mean)
	}
}
