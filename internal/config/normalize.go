package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeTracking(); err != nil {
		return err
	}
	if err := c.normalizePoseTrack(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeTracking() error {
	var err error
	if c.Tracking.DataDir, err = expandPath(strings.TrimSpace(c.Tracking.DataDir)); err != nil {
		return fmt.Errorf("tracking.data_dir: %w", err)
	}
	if c.Tracking.OutDir, err = expandPath(strings.TrimSpace(c.Tracking.OutDir)); err != nil {
		return fmt.Errorf("tracking.out_dir: %w", err)
	}
	c.Tracking.FramesDir = strings.TrimSpace(c.Tracking.FramesDir)
	if c.Tracking.FramesDir == "" {
		c.Tracking.FramesDir = defaultTrackingFramesDir
	}
	c.Tracking.OutputName = strings.TrimSpace(c.Tracking.OutputName)
	if c.Tracking.OutputName == "" {
		c.Tracking.OutputName = defaultTrackingOutputName
	}
	c.Tracking.Extensions = normalizeExtensions(c.Tracking.Extensions)
	if len(c.Tracking.Extensions) == 0 {
		c.Tracking.Extensions = append([]string(nil), defaultImageExtensions...)
	}
	return nil
}

func (c *Config) normalizePoseTrack() error {
	var err error
	if c.PoseTrack.DataDir, err = expandPath(strings.TrimSpace(c.PoseTrack.DataDir)); err != nil {
		return fmt.Errorf("posetrack.data_dir: %w", err)
	}
	if c.PoseTrack.OutDir, err = expandPath(strings.TrimSpace(c.PoseTrack.OutDir)); err != nil {
		return fmt.Errorf("posetrack.out_dir: %w", err)
	}
	splits := make([]string, 0, len(c.PoseTrack.Splits))
	seen := make(map[string]struct{}, len(c.PoseTrack.Splits))
	for _, split := range c.PoseTrack.Splits {
		split = strings.TrimSpace(split)
		if split == "" {
			continue
		}
		if _, ok := seen[split]; ok {
			continue
		}
		seen[split] = struct{}{}
		splits = append(splits, split)
	}
	c.PoseTrack.Splits = splits
	c.PoseTrack.OutputPattern = strings.TrimSpace(c.PoseTrack.OutputPattern)
	if c.PoseTrack.OutputPattern == "" {
		c.PoseTrack.OutputPattern = defaultPoseTrackOutputFmt
	}
	return nil
}

func (c *Config) normalizeLogging() {
	if value, ok := os.LookupEnv(envLogLevel); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

// normalizeExtensions trims entries, adds a missing leading dot, and drops
// duplicates. Case is preserved because matching is case-sensitive.
func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	seen := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		if ext == "" || ext == "." {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if _, ok := seen[ext]; ok {
			continue
		}
		seen[ext] = struct{}{}
		out = append(out, ext)
	}
	return out
}
