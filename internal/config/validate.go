package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTracking(); err != nil {
		return err
	}
	if err := c.validatePoseTrack(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateTracking() error {
	if c.Tracking.DataDir == "" {
		return errors.New("tracking.data_dir must be set")
	}
	if c.Tracking.OutDir == "" {
		return errors.New("tracking.out_dir must be set")
	}
	if strings.ContainsAny(c.Tracking.OutputName, `/\`) {
		return fmt.Errorf("tracking.output_name must be a file name, got %q", c.Tracking.OutputName)
	}
	return nil
}

func (c *Config) validatePoseTrack() error {
	if c.PoseTrack.DataDir == "" {
		return errors.New("posetrack.data_dir must be set")
	}
	if c.PoseTrack.OutDir == "" {
		return errors.New("posetrack.out_dir must be set")
	}
	if len(c.PoseTrack.Splits) == 0 {
		return errors.New("posetrack.splits must list at least one split")
	}
	for _, split := range c.PoseTrack.Splits {
		if strings.ContainsAny(split, `/\`) || split == "." || split == ".." {
			return fmt.Errorf("posetrack.splits: invalid split name %q", split)
		}
	}
	pattern := c.PoseTrack.OutputPattern
	if strings.Count(pattern, "%s") != 1 || strings.Count(pattern, "%") != 1 {
		return fmt.Errorf("posetrack.output_pattern must contain exactly one %%s, got %q", pattern)
	}
	if strings.ContainsAny(pattern, `/\`) {
		return fmt.Errorf("posetrack.output_pattern must be a file name, got %q", pattern)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (want console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
