package material

import (
	"math/rand"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// NullMaterial never scatters. It fills the material slot of records that
// describe a miss and is never attached to a real surface.
type NullMaterial struct{}

// NewNullMaterial creates a new null material
func NewNullMaterial() *NullMaterial {
	return &NullMaterial{}
}

// Scatter always reports absorption
func (n *NullMaterial) Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool) {
	return ScatterResult{}, false
}
