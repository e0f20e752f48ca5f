// Package posetrack converts PoseTrack per-sequence annotation files into
// COCO person datasets, one per split.
//
// The loader merges every sequence file of a split into an Index keyed by
// image id; the converter resolves each sequence's frame size once, turns
// every annotation carrying a bbox into a person annotation with a
// rectangular segmentation, and writes posetrack_instances_<split>.json.
package posetrack
