package scene

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// NewGroundScene creates a single huge diffuse sphere seen from straight above.
// With one bounce the image is a nearly flat tint of the sky.
func NewGroundScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(0, 1, 0),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 0, -1), // Looking down, so up cannot be +Y
		Width:       200,
		AspectRatio: 2.0,
		VFov:        30.0,
	}

	samplingConfig := core.SamplingConfig{
		SamplesPerPixel: 1,
		MaxDepth:        1,
	}

	s := newScene(defaultCameraConfig, samplingConfig, cameraOverrides)
	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))

	return s
}
