package tracking

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"cococonv/internal/coco"
	"cococonv/internal/imagelist"
	"cococonv/internal/imagesize"
	"cococonv/internal/logging"
	"cococonv/internal/progress"
)

const (
	// DefaultFramesDir is the frames directory below the data dir.
	DefaultFramesDir = "frames"
	// DefaultOutputName is the file written into the output directory.
	DefaultOutputName = "image_names.json"
)

// sizeGroup is the single resolver group shared by every frame.
const sizeGroup = "frames"

// Options selects the dataset and output locations.
type Options struct {
	DataDir    string
	OutDir     string
	FramesDir  string
	OutputName string
	Extensions []string
}

// FramesPath returns the directory that is enumerated for images.
func (o Options) FramesPath() string {
	dir := o.FramesDir
	if dir == "" {
		dir = DefaultFramesDir
	}
	return filepath.Join(o.DataDir, dir)
}

// OutputPath returns the dataset file Convert writes.
func (o Options) OutputPath() string {
	name := o.OutputName
	if name == "" {
		name = DefaultOutputName
	}
	return filepath.Join(o.OutDir, name)
}

// Result summarizes a tracking conversion.
type Result struct {
	Path        string
	Categories  int
	Images      int
	Annotations int
	Width       int
	Height      int
}

// Converter writes frame listings.
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

// WithLogger sets the base logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		c.logger = logger
	}
}

// WithProgress renders progress through factory.
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
	c.logger = logging.NewComponentLogger(c.logger, "tracking")
	return c
}

// Convert enumerates the frames and writes the image index.
func (c *Converter) Convert(ctx context.Context, opts Options) (Result, error) {
	framesDir := opts.FramesPath()
	c.logger.Info("processing", slog.String(logging.FieldPath, opts.DataDir))

	names, err := imagelist.Enumerate(framesDir, opts.Extensions)
	if err != nil {
		return Result{}, err
	}

	dataset, err := c.Build(ctx, framesDir, names)
	if err != nil {
		return Result{}, err
	}

	out := opts.OutputPath()
	c.logger.Info("num categories", slog.Int("count", len(dataset.Categories)))
	c.logger.Info("num images", slog.Int("count", len(dataset.Images)))
	c.logger.Info("num annotations", slog.Int("count", len(dataset.Annotations)))
	if err := coco.WriteDataset(out, dataset); err != nil {
		return Result{}, err
	}
	c.logger.Info("image index written", slog.String(logging.FieldPath, out))

	result := Result{
		Path:        out,
		Categories:  len(dataset.Categories),
		Images:      len(dataset.Images),
		Annotations: len(dataset.Annotations),
	}
	if len(dataset.Images) > 0 {
		result.Width = dataset.Images[0].Width
		result.Height = dataset.Images[0].Height
	}
	return result, nil
}

// Build turns the enumerated names into a dataset. Only the first frame is
// decoded; its size is assigned to every image.
func (c *Converter) Build(ctx context.Context, framesDir string, names []string) (*coco.Dataset, error) {
	resolver := imagesize.NewResolver(c.decoder)
	dataset := coco.NewDataset()

	bar := progress.Start(c.progress, len(names), "frames")
	defer func() {
		_ = bar.Finish()
	}()

	for i, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		size, err := resolver.Resolve(sizeGroup, filepath.Join(framesDir, filepath.FromSlash(name)))
		if err != nil {
			return nil, fmt.Errorf("frame %s: %w", name, err)
		}
		dataset.AddImage(coco.Image{
			ID:       int64(i + 1),
			FileName: name,
			Width:    size.Width,
			Height:   size.Height,
		})
		_ = bar.Add(1)
	}
	return dataset, nil
}
