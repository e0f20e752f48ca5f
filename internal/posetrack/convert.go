package posetrack

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"cococonv/internal/coco"
	"cococonv/internal/imagesize"
	"cococonv/internal/logging"
	"cococonv/internal/progress"
)

// DefaultSplits are the PoseTrack partitions converted when none are given.
var DefaultSplits = []string{"train", "val", "test"}

// DefaultOutputPattern names the per-split output file; %s is the split.
const DefaultOutputPattern = "posetrack_instances_%s.json"

// Options selects the dataset and output locations.
type Options struct {
	DataDir       string
	OutDir        string
	Splits        []string
	OutputPattern string
}

// AnnotationDir returns <DataDir>/annotations/<split>.
func (o Options) AnnotationDir(split string) string {
	return filepath.Join(o.DataDir, "annotations", split)
}

// OutputPath returns the dataset file written for split.
func (o Options) OutputPath(split string) string {
	pattern := o.OutputPattern
	if pattern == "" {
		pattern = DefaultOutputPattern
	}
	return filepath.Join(o.OutDir, fmt.Sprintf(pattern, split))
}

// Result summarizes one converted split.
type Result struct {
	Split       string
	Path        string
	Categories  int
	Images      int
	Annotations int
	Skipped     int
	Sequences   int
}

// Converter turns PoseTrack splits into COCO datasets.
type Converter struct {
	decoder  imagesize.Decoder
	logger   *slog.Logger
	progress progress.Factory
}

// Option customizes a Converter.
type Option func(*Converter)

// WithDecoder overrides the image dimension decoder.
func WithDecoder(decoder imagesize.Decoder) Option {
	return func(c *Converter) {
		c.decoder = decoder
	}
}

// WithLogger sets the logger; the converter tags it with its component name.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		c.logger = logger
	}
}

// WithProgress renders per-split progress through factory.
func WithProgress(factory progress.Factory) Option {
	return func(c *Converter) {
		c.progress = factory
	}
}

// NewConverter builds a Converter.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{}
	for _, opt := range opts {
		opt(c)
	}
	if c.decoder == nil {
		c.decoder = imagesize.DefaultDecoder()
	}
	c.logger = logging.NewComponentLogger(c.logger, "posetrack")
	return c
}

// Convert converts every split in order, writing one dataset file per split.
// The first failure aborts the run; files of earlier splits stay written.
func (c *Converter) Convert(ctx context.Context, opts Options) ([]Result, error) {
	splits := opts.Splits
	if len(splits) == 0 {
		splits = DefaultSplits
	}

	results := make([]Result, 0, len(splits))
	for _, split := range splits {
		result, err := c.convertAndWrite(ctx, opts, split)
		if err != nil {
			return results, fmt.Errorf("split %s: %w", split, err)
		}
		results = append(results, result)
	}
	return results, nil
}

func (c *Converter) convertAndWrite(ctx context.Context, opts Options, split string) (Result, error) {
	logger := c.logger.With(slog.String(logging.FieldSplit, split))
	annDir := opts.AnnotationDir(split)
	logger.Info("starting split", slog.String(logging.FieldPath, annDir))

	index, err := LoadAnnotations(annDir)
	if err != nil {
		return Result{}, err
	}

	dataset, stats, err := c.ConvertSplit(ctx, split, opts.DataDir, index)
	if err != nil {
		return Result{}, err
	}

	out := opts.OutputPath(split)
	logger.Info("num categories", slog.Int("count", len(dataset.Categories)))
	logger.Info("num images", slog.Int("count", len(dataset.Images)))
	logger.Info("num annotations", slog.Int("count", len(dataset.Annotations)))
	if err := coco.WriteDataset(out, dataset); err != nil {
		return Result{}, err
	}
	logger.Info("split written", slog.String(logging.FieldPath, out))

	return Result{
		Split:       split,
		Path:        out,
		Categories:  len(dataset.Categories),
		Images:      len(dataset.Images),
		Annotations: len(dataset.Annotations),
		Skipped:     stats.Skipped,
		Sequences:   len(index.Sequences()),
	}, nil
}

// SplitStats counts records dropped while converting a split.
type SplitStats struct {
	Skipped int
	Decoded int
}

// ConvertSplit builds the dataset for one loaded split. Image file names are
// resolved against dataDir to read frame sizes, once per sequence.
// Annotations without a bbox are skipped; a malformed or negative bbox is an
// error.
func (c *Converter) ConvertSplit(ctx context.Context, split, dataDir string, index *Index) (*coco.Dataset, SplitStats, error) {
	var stats SplitStats
	resolver := imagesize.NewResolver(c.decoder)
	dataset := coco.NewDataset()
	images := index.Images()

	bar := progress.Start(c.progress, len(images), split)
	defer func() {
		_ = bar.Finish()
	}()

	for _, raw := range images {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}

		size, err := resolver.Resolve(raw.SeqName, filepath.Join(dataDir, raw.FileName))
		if err != nil {
			return nil, stats, err
		}
		dataset.AddImage(coco.Image{
			ID:       raw.ID,
			FileName: raw.FileName,
			Width:    size.Width,
			Height:   size.Height,
		})

		for _, ann := range index.AnnotationsFor(raw.ID) {
			if !ann.HasBBox() {
				stats.Skipped++
				c.logger.Debug("annotation without bbox skipped",
					slog.String(logging.FieldSplit, split),
					slog.String(logging.FieldSequence, raw.SeqName),
					slog.Int64("annotation_id", ann.ID),
				)
				continue
			}
			bbox, err := coco.ParseBBox(ann.BBox)
			if err == nil {
				err = bbox.Validate()
			}
			if err != nil {
				return nil, stats, fmt.Errorf("annotation %d of image %d (%s): %w", ann.ID, raw.ID, raw.SeqName, err)
			}
			dataset.AddAnnotation(coco.NewPersonAnnotation(ann.ID, raw.ID, bbox))
		}
		_ = bar.Add(1)
	}

	stats.Decoded = resolver.Decoded()
	c.logger.Debug("split converted",
		slog.String(logging.FieldSplit, split),
		slog.Int("sequences", len(index.Sequences())),
		slog.Int("decoded", stats.Decoded),
		slog.Int("skipped", stats.Skipped),
	)
	return dataset, stats, nil
}
