// Package coco models the COCO annotation schema emitted by the converters.
//
// It owns the image, annotation, and category records, the bounding-box
// geometry used to derive area and rectangular segmentation polygons, and the
// writer that serializes a dataset bundle to disk. Every bundle carries the
// single "person" category; source categories are collapsed into it.
package coco
