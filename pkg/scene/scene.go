package scene

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
)

// Scene contains all the elements needed for rendering.
// It is built once and treated as read-only while rendering.
type Scene struct {
	Camera         *geometry.Camera
	CameraConfig   geometry.CameraConfig
	World          *geometry.HittableList // Objects in the scene
	SamplingConfig core.SamplingConfig
}

// newScene creates an empty scene with a camera built from the merged config
func newScene(defaultCameraConfig geometry.CameraConfig, samplingConfig core.SamplingConfig, cameraOverrides []geometry.CameraConfig) *Scene {
	// Apply any overrides using the reusable merge function
	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	// Keep the image height consistent with the camera aspect ratio
	if cameraConfig.Width > 0 && cameraConfig.AspectRatio > 0 {
		samplingConfig.Width = cameraConfig.Width
		samplingConfig.Height = int(float64(cameraConfig.Width) / cameraConfig.AspectRatio)
	}

	return &Scene{
		Camera:         geometry.NewCamera(cameraConfig),
		CameraConfig:   cameraConfig,
		World:          geometry.NewHittableList(),
		SamplingConfig: samplingConfig,
	}
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.World.Add(shapes...)
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *geometry.Camera {
	return s.Camera
}

// GetWorld returns the aggregate of every object in the scene
func (s *Scene) GetWorld() geometry.Shape {
	return s.World
}

// GetSamplingConfig returns the scene's recommended sampling configuration
func (s *Scene) GetSamplingConfig() core.SamplingConfig {
	return s.SamplingConfig
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.World.Objects)
}
