package geometry

import (
	"math"
	"math/rand"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// CameraConfig contains the extrinsic parameters of a thin-lens camera
type CameraConfig struct {
	Center        core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera is looking at
	Up            core.Vec3 // Up direction hint, must not be parallel to the view direction
	Width         int       // Image width in pixels
	AspectRatio   float64   // Width / height
	VFov          float64   // Vertical field of view in degrees
	Aperture      float64   // Lens diameter (0 = pinhole)
	FocusDistance float64   // Distance to the focus plane (0 = distance to LookAt)
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	zero := core.Vec3{}
	if !override.Center.Equals(zero) {
		result.Center = override.Center
	}
	if !override.LookAt.Equals(zero) {
		result.LookAt = override.LookAt
	}
	if !override.Up.Equals(zero) {
		result.Up = override.Up
	}
	if override.Width > 0 {
		result.Width = override.Width
	}
	if override.AspectRatio > 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.VFov > 0 {
		result.VFov = override.VFov
	}
	if override.Aperture > 0 {
		result.Aperture = override.Aperture
	}
	if override.FocusDistance > 0 {
		result.FocusDistance = override.FocusDistance
	}
	return result
}

// Camera generates rays for rendering, with depth of field
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	right           core.Vec3
	up              core.Vec3
	lensRadius      float64
}

// NewCamera creates a camera whose viewport lies on the focus plane
func NewCamera(config CameraConfig) *Camera {
	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.LookAt.Subtract(config.Center).Length()
	}

	theta := config.VFov * math.Pi / 180.0
	halfHeight := math.Tan(theta / 2)
	halfWidth := config.AspectRatio * halfHeight

	// Orthonormal basis; back points away from the scene
	back := config.Center.Subtract(config.LookAt).Normalize()
	right := config.Up.Cross(back).Normalize()
	up := back.Cross(right)

	origin := config.Center
	lowerLeftCorner := origin.
		Subtract(right.Multiply(halfWidth * focusDistance)).
		Subtract(up.Multiply(halfHeight * focusDistance)).
		Subtract(back.Multiply(focusDistance))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      right.Multiply(2 * halfWidth * focusDistance),
		vertical:        up.Multiply(2 * halfHeight * focusDistance),
		right:           right,
		up:              up,
		lensRadius:      config.Aperture / 2,
	}
}

// GetRay generates a ray for screen coordinates (u, v) where 0 <= u,v <= 1,
// u=0 at the left edge and v=0 at the bottom edge
func (c *Camera) GetRay(u, v float64, random *rand.Rand) core.Ray {
	rd := core.RandomInUnitDisk(random).Multiply(c.lensRadius)
	offset := c.right.Multiply(rd.X).Add(c.up.Multiply(rd.Y))

	origin := c.origin.Add(offset)
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(u)).
		Add(c.vertical.Multiply(v)).
		Subtract(origin)

	return core.NewRay(origin, direction)
}

// Origin returns the center of the lens
func (c *Camera) Origin() core.Vec3 {
	return c.origin
}

// LensRadius returns the radius of the lens disk
func (c *Camera) LensRadius() float64 {
	return c.lensRadius
}
