package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-sphere-raytracer/pkg/geometry"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Name used on the command line
	DisplayName string // Human readable name
	Description string
	create      func(cameraOverrides ...geometry.CameraConfig) *Scene
}

var builtinScenes = map[string]SceneInfo{
	"default": {
		ID:          "default",
		DisplayName: "Default",
		Description: "Diffuse, metal and hollow glass spheres on a ground sphere",
		create:      NewDefaultScene,
	},
	"ground": {
		ID:          "ground",
		DisplayName: "Ground",
		Description: "One huge diffuse sphere seen from above, one bounce",
		create:      NewGroundScene,
	},
	"spheregrid": {
		ID:          "spheregrid",
		DisplayName: "Sphere Grid",
		Description: "10x10 grid of diffuse, metal and glass spheres",
		create:      NewSphereGridScene,
	},
}

// ListBuiltinScenes returns every built-in scene sorted by ID
func ListBuiltinScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, info := range builtinScenes {
		scenes = append(scenes, info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// CreateScene builds the built-in scene with the given ID
func CreateScene(id string, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	info, ok := builtinScenes[id]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q", id)
	}
	return info.create(cameraOverrides...), nil
}
