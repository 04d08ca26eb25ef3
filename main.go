package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/preview"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

// Config holds the command line options
type Config struct {
	SceneType string
	Width     int
	Height    int
	Samples   int
	MaxDepth  int
	Workers   int
	Seed      int64
	Serial    bool
	Preview   bool
	Output    string
}

func main() {
	config := parseFlags()
	if config == nil {
		return
	}

	fmt.Println("Starting Sphere Raytracer...")

	selectedScene, err := createScene(config.SceneType, cameraOverride(config))
	if err != nil {
		fmt.Printf("Error creating scene: %v\n", err)
		os.Exit(1)
	}

	width, height := imageSize(selectedScene.SamplingConfig, config)
	raytracer := renderer.NewRaytracer(selectedScene, width, height)
	raytracer.SetSamplingConfig(core.SamplingConfig{
		SamplesPerPixel: config.Samples,
		MaxDepth:        config.MaxDepth,
	})
	raytracer.SetSeed(config.Seed)

	fmt.Printf("Scene: %s (%d objects)\n", config.SceneType, selectedScene.GetPrimitiveCount())

	var img *image.RGBA
	var stats renderer.RenderStats
	if config.Preview {
		img, stats, err = renderWithPreview(raytracer, config, width, height)
	} else {
		img, stats, err = render(raytracer, config)
	}
	if err != nil {
		fmt.Printf("Error rendering: %v\n", err)
		os.Exit(1)
	}

	filename := config.Output
	if filename == "" {
		filename = defaultOutputPath(config.SceneType, time.Now())
	}
	if err := saveImage(img, filename); err != nil {
		fmt.Printf("Error saving image: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
	fmt.Printf("Total time: %v\n", stats.Elapsed)
	fmt.Printf("Total rays: %d\n", stats.TotalRays)
	fmt.Printf("Rays per second: %.0f\n", stats.RaysPerSecond)
}

// parseFlags parses command line flags. Returns nil when help was printed.
func parseFlags() *Config {
	config := &Config{}
	flag.StringVar(&config.SceneType, "scene", "default", "Scene type: 'default', 'ground' or 'spheregrid'")
	flag.IntVar(&config.Width, "width", 0, "Image width in pixels (0 = scene default)")
	flag.IntVar(&config.Height, "height", 0, "Image height in pixels (0 = follow the camera aspect ratio)")
	flag.IntVar(&config.Samples, "samples", 0, "Samples per pixel (0 = scene default)")
	flag.IntVar(&config.MaxDepth, "depth", 0, "Maximum ray bounces (0 = scene default)")
	flag.IntVar(&config.Workers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.Int64Var(&config.Seed, "seed", renderer.DefaultSeed, "Base random seed")
	flag.BoolVar(&config.Serial, "serial", false, "Render on a single goroutine")
	flag.BoolVar(&config.Preview, "preview", false, "Show the render in a window while it runs")
	flag.StringVar(&config.Output, "output", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		showHelp()
		return nil
	}
	return config
}

func showHelp() {
	fmt.Println("Sphere Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListBuiltinScenes() {
		fmt.Printf("  %-10s - %s\n", info.ID, info.Description)
	}
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene_type>/render_<timestamp>.png")
}

// createScene creates a built-in scene by name
func createScene(sceneType string, cameraOverrides ...geometry.CameraConfig) (*scene.Scene, error) {
	s, err := scene.CreateScene(sceneType, cameraOverrides...)
	if err != nil {
		return nil, fmt.Errorf("create scene: %w", err)
	}
	return s, nil
}

// cameraOverride converts size flags into a camera override.
// When both sides are given the aspect ratio follows them.
func cameraOverride(config *Config) geometry.CameraConfig {
	override := geometry.CameraConfig{Width: config.Width}
	if config.Width > 0 && config.Height > 0 {
		override.AspectRatio = float64(config.Width) / float64(config.Height)
	}
	return override
}

// imageSize returns the final image size, with an explicit height taking priority
func imageSize(sceneConfig core.SamplingConfig, config *Config) (int, int) {
	width, height := sceneConfig.Width, sceneConfig.Height
	if config.Height > 0 {
		height = config.Height
	}
	return width, height
}

func render(raytracer *renderer.Raytracer, config *Config) (*image.RGBA, renderer.RenderStats, error) {
	if config.Serial {
		img, stats := raytracer.RenderSerial()
		return img, stats, nil
	}
	return raytracer.RenderParallel(config.Workers)
}

// renderWithPreview renders on a background goroutine while the window owns the main goroutine
func renderWithPreview(raytracer *renderer.Raytracer, config *Config, width, height int) (*image.RGBA, renderer.RenderStats, error) {
	window := preview.NewWindow(width, height)
	raytracer.SetRowCallback(func(result renderer.RowResult) {
		window.SetRow(result.Y, result.Pixels)
	})

	type renderOutcome struct {
		img   *image.RGBA
		stats renderer.RenderStats
		err   error
	}
	outcome := make(chan renderOutcome, 1)
	go func() {
		img, stats, err := render(raytracer, config)
		window.MarkDone()
		outcome <- renderOutcome{img, stats, err}
	}()

	if err := window.Run(fmt.Sprintf("Sphere Raytracer - %s", config.SceneType)); err != nil {
		fmt.Printf("Error running preview: %v\n", err)
	}

	// Closing the window early still waits for the image
	result := <-outcome
	return result.img, result.stats, result.err
}

// defaultOutputPath returns output/<scene>/render_<timestamp>.png
func defaultOutputPath(sceneType string, now time.Time) string {
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", sceneType, fmt.Sprintf("render_%s.png", timestamp))
}

// saveImage writes img as a PNG, creating parent directories as needed
func saveImage(img image.Image, filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}
