package preflight

import (
	"cococonv/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes the filesystem checks for both converters.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result

	results = append(results, CheckInputDir("Tracking frames", cfg.TrackingFramesPath()))
	results = append(results, CheckOutputDir("Tracking output", cfg.Tracking.OutDir))

	for _, split := range cfg.PoseTrack.Splits {
		results = append(results, CheckInputDir("PoseTrack "+split+" annotations", cfg.PoseTrackAnnotationPath(split)))
	}
	results = append(results, CheckOutputDir("PoseTrack output", cfg.PoseTrack.OutDir))

	return results
}

// Failed returns the results that did not pass.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}
