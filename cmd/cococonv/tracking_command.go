package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"cococonv/internal/logging"
	"cococonv/internal/tracking"
)

func newTrackingCommand(ctx *commandContext) *cobra.Command {
	var dataDir string
	var outDir string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "tracking",
		Aliases: []string{"aifi"},
		Short:   "List tracking frames as a COCO image index",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			opts := tracking.Options{
				DataDir:    cfg.Tracking.DataDir,
				OutDir:     cfg.Tracking.OutDir,
				FramesDir:  cfg.Tracking.FramesDir,
				OutputName: cfg.Tracking.OutputName,
				Extensions: cfg.Tracking.Extensions,
			}
			if err := overrideString(&opts.DataDir, dataDir); err != nil {
				return fmt.Errorf("resolve --datadir: %w", err)
			}
			if err := overrideString(&opts.OutDir, outDir); err != nil {
				return fmt.Errorf("resolve --outdir: %w", err)
			}

			logger, _, err := ctx.newLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			conv := tracking.NewConverter(
				tracking.WithLogger(logger),
				tracking.WithProgress(ctx.progressFactory(cmd.ErrOrStderr())),
			)
			result, err := conv.Convert(cmd.Context(), opts)
			if err != nil {
				logger.Error("tracking conversion failed", logging.Error(err), slog.String(logging.FieldPath, opts.DataDir))
				return fmt.Errorf("convert tracking dataset: %w", err)
			}

			return printSummary(cmd, jsonOutput, result, func() string {
				return renderTrackingSummary(result)
			})
		},
	}

	cmd.Flags().StringVar(&dataDir, "datadir", "", "Dataset root containing the frames directory")
	cmd.Flags().StringVar(&outDir, "outdir", "", "Directory receiving the image index")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the summary as JSON")
	return cmd
}
