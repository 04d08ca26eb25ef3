package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels   int           // Total number of pixels rendered
	TotalSamples  int           // Total number of camera samples taken
	TotalRays     int64         // Camera rays plus scattered rays
	Elapsed       time.Duration // Wall-clock render time
	RaysPerSecond float64       // Ray throughput
}

// newRenderStats builds the statistics for a finished render
func (rt *Raytracer) newRenderStats(totalRays int64, elapsed time.Duration) RenderStats {
	pixels := rt.width * rt.height
	stats := RenderStats{
		TotalPixels:  pixels,
		TotalSamples: pixels * rt.config.SamplesPerPixel,
		TotalRays:    totalRays,
		Elapsed:      elapsed,
	}
	if seconds := elapsed.Seconds(); seconds > 0 {
		stats.RaysPerSecond = float64(totalRays) / seconds
	}
	return stats
}
