//go:build opencv

package imagesize

import (
	"fmt"
	"os"

	"gocv.io/x/gocv"
)

// OpenCVDecoder decodes the full image through OpenCV, accepting every format
// the linked OpenCV build supports.
type OpenCVDecoder struct{}

// Decode implements Decoder.
func (OpenCVDecoder) Decode(path string) (Size, error) {
	if _, err := os.Stat(path); err != nil {
		return Size{}, fmt.Errorf("open image: %w", err)
	}
	mat := gocv.IMRead(path, gocv.IMReadColor)
	defer mat.Close()
	if mat.Empty() {
		return Size{}, fmt.Errorf("decode image %s: opencv could not read file", path)
	}
	return Size{Width: mat.Cols(), Height: mat.Rows()}, nil
}

func init() {
	defaultDecoder = OpenCVDecoder{}
}
