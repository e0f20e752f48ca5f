package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"cococonv/internal/logging"
	"cococonv/internal/posetrack"
)

func newPoseTrackCommand(ctx *commandContext) *cobra.Command {
	var dataDir string
	var outDir string
	var splits []string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "posetrack",
		Short: "Convert PoseTrack splits to COCO person datasets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			opts := posetrack.Options{
				DataDir:       cfg.PoseTrack.DataDir,
				OutDir:        cfg.PoseTrack.OutDir,
				Splits:        cfg.PoseTrack.Splits,
				OutputPattern: cfg.PoseTrack.OutputPattern,
			}
			if err := overrideString(&opts.DataDir, dataDir); err != nil {
				return fmt.Errorf("resolve --datadir: %w", err)
			}
			if err := overrideString(&opts.OutDir, outDir); err != nil {
				return fmt.Errorf("resolve --outdir: %w", err)
			}
			if len(splits) > 0 {
				override := *cfg
				override.PoseTrack.Splits = trimSplits(splits)
				if err := override.Validate(); err != nil {
					return fmt.Errorf("--split: %w", err)
				}
				opts.Splits = override.PoseTrack.Splits
			}

			logger, _, err := ctx.newLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			conv := posetrack.NewConverter(
				posetrack.WithLogger(logger),
				posetrack.WithProgress(ctx.progressFactory(cmd.ErrOrStderr())),
			)
			results, err := conv.Convert(cmd.Context(), opts)
			if err != nil {
				logger.Error("posetrack conversion failed", logging.Error(err), slog.String(logging.FieldPath, opts.DataDir))
				return fmt.Errorf("convert posetrack dataset: %w", err)
			}

			return printSummary(cmd, jsonOutput, results, func() string {
				return renderPoseTrackSummary(results)
			})
		},
	}

	cmd.Flags().StringVar(&dataDir, "datadir", "", "PoseTrack root containing annotations/<split>")
	cmd.Flags().StringVar(&outDir, "outdir", "", "Directory receiving the per-split datasets")
	cmd.Flags().StringSliceVar(&splits, "split", nil, "Split to convert (repeatable; default from config)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the summary as JSON")
	return cmd
}

func trimSplits(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			out = append(out, value)
		}
	}
	return out
}
