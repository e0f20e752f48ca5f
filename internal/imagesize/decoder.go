package imagesize

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Size is an image's pixel dimensions.
type Size struct {
	Width  int
	Height int
}

// Decoder reports the dimensions of the image stored at path.
type Decoder interface {
	Decode(path string) (Size, error)
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc func(path string) (Size, error)

// Decode calls f(path).
func (f DecoderFunc) Decode(path string) (Size, error) {
	return f(path)
}

// ConfigDecoder reads dimensions from the image header without decoding
// pixel data. A file whose header is intact but whose pixel data is corrupt
// or truncated therefore still reports a size, and EXIF orientation is not
// applied, so a rotated JPEG reports its stored, unrotated width and height.
// Builds that need full-decode validation and OpenCV's sizes use the opencv
// build tag, which makes OpenCVDecoder the default.
type ConfigDecoder struct{}

// Decode implements Decoder.
func (ConfigDecoder) Decode(path string) (Size, error) {
	f, err := os.Open(path)
	if err != nil {
		return Size{}, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return Size{}, fmt.Errorf("decode image %s: %w", path, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Size{}, fmt.Errorf("decode image %s: %s header reports %dx%d", path, format, cfg.Width, cfg.Height)
	}
	return Size{Width: cfg.Width, Height: cfg.Height}, nil
}
