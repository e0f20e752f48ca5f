package coco

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// ErrInvalidBBox reports a bounding box that cannot be converted.
var ErrInvalidBBox = errors.New("invalid bbox")

// BBox is an axis-aligned box stored as [x, y, width, height].
type BBox [4]float64

// Width returns the box width.
func (b BBox) Width() float64 { return b[2] }

// Height returns the box height.
func (b BBox) Height() float64 { return b[3] }

// Corners returns the top-left and bottom-right corners.
func (b BBox) Corners() (x1, y1, x2, y2 float64) {
	x1, y1 = b[0], b[1]
	return x1, y1, x1 + b[2], y1 + b[3]
}

// Area returns width*height.
func (b BBox) Area() float64 {
	return b[2] * b[3]
}

// Polygon returns the rectangle as a closed-order polygon
// [x1,y1, x1,y2, x2,y2, x2,y1].
func (b BBox) Polygon() []float64 {
	x1, y1, x2, y2 := b.Corners()
	return []float64{x1, y1, x1, y2, x2, y2, x2, y1}
}

// Validate rejects negative extents and non-finite coordinates.
func (b BBox) Validate() error {
	for i, v := range b {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: component %d is not finite", ErrInvalidBBox, i)
		}
	}
	if b[2] < 0 || b[3] < 0 {
		return fmt.Errorf("%w: negative size %gx%g", ErrInvalidBBox, b[2], b[3])
	}
	return nil
}

// BBoxFromPolygon returns the tightest box around the polygon's points.
func BBoxFromPolygon(points []float64) (BBox, error) {
	if len(points) < 2 || len(points)%2 != 0 {
		return BBox{}, fmt.Errorf("%w: polygon needs an even, non-zero coordinate count, got %d", ErrInvalidBBox, len(points))
	}
	minX, minY := points[0], points[1]
	maxX, maxY := minX, minY
	for i := 2; i < len(points); i += 2 {
		minX = math.Min(minX, points[i])
		maxX = math.Max(maxX, points[i])
		minY = math.Min(minY, points[i+1])
		maxY = math.Max(maxY, points[i+1])
	}
	return BBox{minX, minY, maxX - minX, maxY - minY}, nil
}

// ParseBBox decodes a raw JSON bbox value. Anything other than an array of
// exactly four numbers is rejected.
func ParseBBox(raw json.RawMessage) (BBox, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return BBox{}, fmt.Errorf("%w: missing value", ErrInvalidBBox)
	}
	var values []float64
	if err := json.Unmarshal(trimmed, &values); err != nil {
		return BBox{}, fmt.Errorf("%w: %v", ErrInvalidBBox, err)
	}
	if len(values) != 4 {
		return BBox{}, fmt.Errorf("%w: want 4 values, got %d", ErrInvalidBBox, len(values))
	}
	return BBox{values[0], values[1], values[2], values[3]}, nil
}
