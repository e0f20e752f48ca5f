package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"cococonv/internal/config"
	"cococonv/internal/logging"
	"cococonv/internal/progress"
)

type globalFlags struct {
	config     string
	logLevel   string
	logFormat  string
	noProgress bool
}

type commandContext struct {
	flags *globalFlags

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, _, err := config.Load(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = err
			return
		}
		if level := strings.TrimSpace(c.flags.logLevel); level != "" {
			cfg.Logging.Level = strings.ToLower(level)
		}
		if format := strings.TrimSpace(c.flags.logFormat); format != "" {
			cfg.Logging.Format = strings.ToLower(format)
		}
		if err := cfg.Validate(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = path
	})
	return c.config, c.configErr
}

// newLogger builds the run logger on w, tagged with a fresh run id.
func (c *commandContext) newLogger(w io.Writer) (*slog.Logger, string, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, "", err
	}
	logger, err := logging.NewFromConfig(cfg, w)
	if err != nil {
		return nil, "", fmt.Errorf("init logger: %w", err)
	}
	runID := uuid.NewString()
	return logging.WithRunID(logger, runID), runID, nil
}

func (c *commandContext) progressFactory(w io.Writer) progress.Factory {
	return progress.NewTerminal(w, !c.flags.noProgress)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func overrideString(target *string, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	expanded, err := config.ExpandPath(value)
	if err != nil {
		return err
	}
	*target = expanded
	return nil
}
