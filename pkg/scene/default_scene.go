package scene

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// NewDefaultScene creates the five sphere scene: diffuse, metal and hollow glass
// spheres resting on a large ground sphere
func NewDefaultScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Center:        core.NewVec3(-1.5, 1.5, 0.75),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		Width:         1000,
		AspectRatio:   2.0,
		VFov:          60.0,
		Aperture:      0.2,
		FocusDistance: 0.0, // Focus on the glass sphere
	}

	samplingConfig := core.SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}

	s := newScene(defaultCameraConfig, samplingConfig, cameraOverrides)

	// Create materials
	lambertianRed := material.NewLambertian(core.NewVec3(0.8, 0.3, 0.3))
	lambertianGray := material.NewLambertian(core.NewVec3(0.6, 0.6, 0.6))
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.1)
	glass := material.NewDielectric(1.5)

	// The negative radius inner shell shares the glass material and turns
	// the center sphere into a bubble
	s.Add(
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, lambertianRed),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, lambertianGray),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, metalGold),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, glass),
		geometry.NewSphere(core.NewVec3(0, 0, -1), -0.47, glass),
	)

	return s
}
