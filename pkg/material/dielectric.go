package material

import (
	"math"
	"math/rand"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	RefractiveIndex float64 // Index of refraction (e.g., 1.5 for glass)
}

// dielectricTransmittance is the fixed near-white attenuation applied on every bounce
var dielectricTransmittance = core.NewVec3(0.95, 0.95, 0.95)

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter implements the Material interface for dielectric scattering
func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool) {
	incidentDot := rayIn.Direction.Dot(hit.Normal)

	// The hit normal is not face-oriented, so work out which side we are on
	var outwardNormal core.Vec3
	var refractionRatio, cosine float64
	if incidentDot > 0 {
		// Ray is exiting the material (from glass to air)
		outwardNormal = hit.Normal.Negate()
		refractionRatio = d.RefractiveIndex
		cosine = d.RefractiveIndex * incidentDot / rayIn.Direction.Length()
	} else {
		// Ray is entering the material (from air to glass)
		outwardNormal = hit.Normal
		refractionRatio = 1.0 / d.RefractiveIndex
		cosine = -incidentDot / rayIn.Direction.Length()
	}

	refracted, canRefract := Refract(rayIn.Direction, outwardNormal, refractionRatio)

	// Total internal reflection forces a reflection
	reflectProbability := 1.0
	if canRefract {
		reflectProbability = Reflectance(cosine, d.RefractiveIndex)
	}

	var direction core.Vec3
	if random.Float64() < reflectProbability {
		direction = Reflect(rayIn.Direction, hit.Normal)
	} else {
		direction = refracted
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: dielectricTransmittance,
	}, true
}

// Refract bends v through a surface with normal n using Snell's law.
// Returns false when the discriminant is not positive (total internal reflection).
func Refract(v, n core.Vec3, niOverNt float64) (core.Vec3, bool) {
	uv := v.Normalize()
	dt := uv.Dot(n)
	discriminant := 1.0 - niOverNt*niOverNt*(1.0-dt*dt)
	if discriminant <= 0 {
		return core.Vec3{}, false
	}
	return uv.Subtract(n.Multiply(dt)).Multiply(niOverNt).Subtract(n.Multiply(math.Sqrt(discriminant))), true
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractiveIndex float64) float64 {
	// R0 is the reflectance at normal incidence
	r0 := (1 - refractiveIndex) / (1 + refractiveIndex)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
