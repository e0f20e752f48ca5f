// Package imagesize resolves pixel dimensions of dataset images.
//
// A Decoder reads one image's width and height; the Resolver caches the
// result per logical group (a sequence, or the whole dataset) so each group
// is decoded once. Every image in a group is assumed to share the first
// image's dimensions; the assumption is not checked.
//
// The default decoder reads only the image header through image.DecodeConfig
// with JPEG, PNG, GIF, BMP, TIFF, and WebP registered. Building with the
// opencv tag adds OpenCVDecoder, which decodes through gocv.
package imagesize
