package renderer

import (
	"image"
	"image/color"
	"math/rand"
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/integrator"
)

// DefaultSeed is the base seed used when none is set
const DefaultSeed int64 = 42

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *geometry.Camera
	GetWorld() geometry.Shape
	GetSamplingConfig() core.SamplingConfig
}

// Raytracer samples pixels of a scene and writes them into an image
type Raytracer struct {
	scene       Scene
	width       int
	height      int
	config      core.SamplingConfig
	integrator  integrator.Integrator
	seed        int64
	logger      core.Logger
	rowCallback func(RowResult)
}

// NewRaytracer creates a new raytracer using the scene's recommended sampling config
func NewRaytracer(scene Scene, width, height int) *Raytracer {
	config := core.MergeSamplingConfig(core.DefaultSamplingConfig(), scene.GetSamplingConfig())
	config.Width = width
	config.Height = height

	return &Raytracer{
		scene:      scene,
		width:      width,
		height:     height,
		config:     config,
		integrator: integrator.NewPathTracingIntegrator(config),
		seed:       DefaultSeed,
		logger:     NewDefaultLogger(),
	}
}

// SetSamplingConfig applies the non-zero fields of config
func (rt *Raytracer) SetSamplingConfig(config core.SamplingConfig) {
	rt.config = core.MergeSamplingConfig(rt.config, config)
	rt.config.Width = rt.width
	rt.config.Height = rt.height
	rt.integrator = integrator.NewPathTracingIntegrator(rt.config)
}

// SamplingConfig returns the active sampling configuration
func (rt *Raytracer) SamplingConfig() core.SamplingConfig {
	return rt.config
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(integratorInst integrator.Integrator) {
	rt.integrator = integratorInst
}

// SetSeed sets the base seed; row y is rendered with seed+y
func (rt *Raytracer) SetSeed(seed int64) {
	rt.seed = seed
}

// SetLogger sets the logger used for render progress
func (rt *Raytracer) SetLogger(logger core.Logger) {
	rt.logger = logger
}

// SetRowCallback registers a function called once per completed row during a
// render. It is always called from the goroutine that started the render.
func (rt *Raytracer) SetRowCallback(callback func(RowResult)) {
	rt.rowCallback = callback
}

// rowRandom returns the private random stream for a row
func (rt *Raytracer) rowRandom(y int) *rand.Rand {
	return rand.New(rand.NewSource(rt.seed + int64(y)))
}

// SamplePixel averages SamplesPerPixel jittered samples for pixel (x, y), with
// y increasing downward. Returns the linear color and the number of rays traced.
func (rt *Raytracer) SamplePixel(camera *geometry.Camera, world geometry.Shape, x, y int, random *rand.Rand) (core.Vec3, int) {
	colorAccum := core.Vec3{}
	rays := 0

	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		u := (float64(x) + random.Float64()) / float64(rt.width)
		v := 1.0 - (float64(y)+random.Float64())/float64(rt.height)

		ray := camera.GetRay(u, v, random)
		sampleColor, bounces := rt.integrator.RayColor(ray, world, random)

		colorAccum = colorAccum.Add(sampleColor)
		rays += 1 + bounces
	}

	return colorAccum.Divide(float64(rt.config.SamplesPerPixel)), rays
}

// RenderRow renders every pixel of row y into img and returns the rays traced
func (rt *Raytracer) RenderRow(img *image.RGBA, y int, random *rand.Rand) int {
	camera := rt.scene.GetCamera()
	world := rt.scene.GetWorld()
	rays := 0

	for x := 0; x < rt.width; x++ {
		colorVec, pixelRays := rt.SamplePixel(camera, world, x, y, random)
		img.SetRGBA(x, y, Vec3ToColor(colorVec))
		rays += pixelRays
	}

	return rays
}

// RenderSerial renders all rows in order on the calling goroutine. For a given
// seed the output is bit-identical to RenderParallel.
func (rt *Raytracer) RenderSerial() (*image.RGBA, RenderStats) {
	img := image.NewRGBA(image.Rect(0, 0, rt.width, rt.height))
	startTime := time.Now()

	rt.logger.Printf("Rendering %dx%d at %d samples per pixel (serial)...\n",
		rt.width, rt.height, rt.config.SamplesPerPixel)

	totalRays := 0
	for y := 0; y < rt.height; y++ {
		rays := rt.RenderRow(img, y, rt.rowRandom(y))
		totalRays += rays

		if rt.rowCallback != nil {
			offset := img.PixOffset(0, y)
			pixels := make([]uint8, img.Stride)
			copy(pixels, img.Pix[offset:offset+img.Stride])
			rt.rowCallback(RowResult{TaskID: y, Y: y, Rays: rays, Pixels: pixels})
		}
	}

	stats := rt.newRenderStats(int64(totalRays), time.Since(startTime))
	rt.logger.Printf("Render completed in %v\n", stats.Elapsed)
	return img, stats
}

// Vec3ToColor converts a linear Vec3 color to RGBA with clamping and gamma 2 correction
func Vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.Clamp(0.0, 1.0).Sqrt()

	return color.RGBA{
		R: uint8(255.99 * colorVec.X),
		G: uint8(255.99 * colorVec.Y),
		B: uint8(255.99 * colorVec.Z),
		A: 255,
	}
}
